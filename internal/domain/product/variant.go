package product

import (
	"github.com/google/uuid"
)

// ProductVariant is a purchasable variation of a product. It belongs to
// exactly one Product and has no independent lifecycle. Immutable; all
// mutators return a new instance.
type ProductVariant struct {
	id               uuid.UUID
	shopifyVariantID int64
	sku              Sku
	price            Price
	inventory        int
	weight           *float64
	weightUnit       string
}

// VariantParams carries the fields for constructing a ProductVariant.
// ID and ShopifyVariantID are optional; a zero value means unassigned.
type VariantParams struct {
	ID               uuid.UUID
	ShopifyVariantID int64
	Sku              Sku
	Price            Price
	Inventory        int
	Weight           *float64
	WeightUnit       string
}

// NewProductVariant validates params and constructs a variant
func NewProductVariant(params VariantParams) (ProductVariant, error) {
	if params.Sku.IsZero() {
		return ProductVariant{}, ErrSkuEmpty
	}
	if params.Inventory < 0 {
		return ProductVariant{}, ErrNegativeInventory
	}
	if params.Weight != nil && *params.Weight < 0 {
		return ProductVariant{}, ErrNegativeWeight
	}
	return ProductVariant{
		id:               params.ID,
		shopifyVariantID: params.ShopifyVariantID,
		sku:              params.Sku,
		price:            params.Price,
		inventory:        params.Inventory,
		weight:           params.Weight,
		weightUnit:       params.WeightUnit,
	}, nil
}

// ID returns the local identifier, uuid.Nil if not yet persisted
func (v ProductVariant) ID() uuid.UUID { return v.id }

// ShopifyVariantID returns the remote variant identifier, 0 if unknown
func (v ProductVariant) ShopifyVariantID() int64 { return v.shopifyVariantID }

// Sku returns the variant SKU
func (v ProductVariant) Sku() Sku { return v.sku }

// Price returns the variant price
func (v ProductVariant) Price() Price { return v.price }

// InventoryQuantity returns the variant stock level
func (v ProductVariant) InventoryQuantity() int { return v.inventory }

// Weight returns the variant weight, nil if unknown
func (v ProductVariant) Weight() *float64 { return v.weight }

// WeightUnit returns the unit for Weight, empty if unknown
func (v ProductVariant) WeightUnit() string { return v.weightUnit }

// IsInStock returns true if the variant has stock available
func (v ProductVariant) IsInStock() bool { return v.inventory > 0 }

// WithID returns a copy with the local identifier set
func (v ProductVariant) WithID(id uuid.UUID) ProductVariant {
	v.id = id
	return v
}

// WithPrice returns a copy with a new price
func (v ProductVariant) WithPrice(price Price) ProductVariant {
	v.price = price
	return v
}

// WithInventoryQuantity returns a copy with a new stock level
func (v ProductVariant) WithInventoryQuantity(quantity int) (ProductVariant, error) {
	if quantity < 0 {
		return ProductVariant{}, ErrNegativeInventory
	}
	v.inventory = quantity
	return v, nil
}
