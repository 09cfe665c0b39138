package product

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopsync/backend/internal/domain/shopify"
)

// DefaultTitle is used for remote products that arrive without a title.
const DefaultTitle = "Untitled Product"

// Product is the aggregate root of the catalog. It owns its variants and
// is immutable: every mutator returns a new copy with updatedAt advanced
// and createdAt preserved.
type Product struct {
	id        uuid.UUID
	shopifyID string
	sku       Sku
	title     string
	desc      string
	price     Price
	status    ProductStatus
	inventory int
	variants  []ProductVariant
	createdAt time.Time
	updatedAt time.Time
}

// ProductParams carries the fields for constructing a Product.
// ID and ShopifyID are optional. Zero CreatedAt/UpdatedAt default to now;
// non-zero values rehydrate persisted timestamps unchanged.
type ProductParams struct {
	ID        uuid.UUID
	ShopifyID string
	Sku       Sku
	Title     string
	Desc      string
	Price     Price
	Status    ProductStatus
	Inventory int
	Variants  []ProductVariant
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct validates params and constructs a product
func NewProduct(params ProductParams) (Product, error) {
	if params.Sku.IsZero() {
		return Product{}, ErrSkuEmpty
	}
	if params.Inventory < 0 {
		return Product{}, ErrNegativeInventory
	}

	status := params.Status
	if status == "" {
		status = StatusDraft
	}

	now := time.Now().UTC()
	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := params.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	title := params.Title
	if title == "" {
		title = DefaultTitle
	}

	return Product{
		id:        params.ID,
		shopifyID: params.ShopifyID,
		sku:       params.Sku,
		title:     title,
		desc:      params.Desc,
		price:     params.Price,
		status:    status,
		inventory: params.Inventory,
		variants:  params.Variants,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// FromShopifyData builds a Product from the remote catalog representation.
// The first variant carrying a SKU seeds the product-level SKU, price and
// inventory quantity. Variants without a SKU are skipped. An unrecognized
// status falls back to draft so unexpected vendor values never abort a sync.
func FromShopifyData(data shopify.ProductData) (Product, error) {
	if len(data.Variants) == 0 {
		return Product{}, ErrMissingVariants
	}

	variants := make([]ProductVariant, 0, len(data.Variants))
	for _, v := range data.Variants {
		if strings.TrimSpace(v.SKU) == "" {
			continue
		}
		sku, err := NewSku(v.SKU)
		if err != nil {
			return Product{}, err
		}
		price, err := parseVariantPrice(v.Price)
		if err != nil {
			return Product{}, err
		}
		variant, err := NewProductVariant(VariantParams{
			ShopifyVariantID: v.ID,
			Sku:              sku,
			Price:            price,
			Inventory:        max(0, v.InventoryQuantity),
			Weight:           v.Weight,
			WeightUnit:       v.WeightUnit,
		})
		if err != nil {
			return Product{}, err
		}
		variants = append(variants, variant)
	}

	if len(variants) == 0 {
		return Product{}, ErrMissingVariantSku
	}

	first := variants[0]

	status, err := ParseStatus(data.Status)
	if err != nil {
		status = StatusDraft
	}

	return NewProduct(ProductParams{
		ShopifyID: strconv.FormatInt(data.ID, 10),
		Sku:       first.Sku(),
		Title:     data.Title,
		Desc:      data.BodyHTML,
		Price:     first.Price(),
		Status:    status,
		Inventory: first.InventoryQuantity(),
		Variants:  variants,
	})
}

func parseVariantPrice(raw string) (Price, error) {
	if strings.TrimSpace(raw) == "" {
		return ZeroPrice(DefaultCurrency), nil
	}
	return ParsePrice(raw, DefaultCurrency)
}

// ID returns the local identifier, uuid.Nil if not yet persisted
func (p Product) ID() uuid.UUID { return p.id }

// ShopifyID returns the remote product identifier, empty if unknown
func (p Product) ShopifyID() string { return p.shopifyID }

// Sku returns the product SKU
func (p Product) Sku() Sku { return p.sku }

// Title returns the product title
func (p Product) Title() string { return p.title }

// Description returns the product description
func (p Product) Description() string { return p.desc }

// Price returns the product price
func (p Product) Price() Price { return p.price }

// Status returns the publication status
func (p Product) Status() ProductStatus { return p.status }

// InventoryQuantity returns the product-level stock quantity.
// It is tracked independently of variant quantities.
func (p Product) InventoryQuantity() int { return p.inventory }

// Variants returns a copy of the variant list
func (p Product) Variants() []ProductVariant {
	out := make([]ProductVariant, len(p.variants))
	copy(out, p.variants)
	return out
}

// CreatedAt returns the creation timestamp
func (p Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp
func (p Product) UpdatedAt() time.Time { return p.updatedAt }

// IsInStock returns true if the product has stock available
func (p Product) IsInStock() bool { return p.inventory > 0 }

// IsActive returns true if the product is published
func (p Product) IsActive() bool { return p.status.IsActive() }

// HasShopifyID reports whether the product is linked to a remote product
func (p Product) HasShopifyID() bool { return p.shopifyID != "" }

// WithID returns a copy carrying the given local identifier. Used when
// reconciling freshly parsed remote data against an existing local row so
// persistence updates instead of inserting a duplicate. Does not advance
// updatedAt since no attribute changed.
func (p Product) WithID(id uuid.UUID) Product {
	p.id = id
	return p
}

// WithTitle returns a copy with a new title
func (p Product) WithTitle(title string) Product {
	p.title = title
	return p.touched()
}

// WithDescription returns a copy with a new description
func (p Product) WithDescription(desc string) Product {
	p.desc = desc
	return p.touched()
}

// WithPrice returns a copy with a new price
func (p Product) WithPrice(price Price) Product {
	p.price = price
	return p.touched()
}

// WithStatus returns a copy with a new publication status
func (p Product) WithStatus(status ProductStatus) Product {
	p.status = status
	return p.touched()
}

// WithInventoryQuantity returns a copy with a new stock quantity
func (p Product) WithInventoryQuantity(quantity int) (Product, error) {
	if quantity < 0 {
		return Product{}, ErrNegativeInventory
	}
	p.inventory = quantity
	return p.touched(), nil
}

// AddVariant returns a copy with the variant appended
func (p Product) AddVariant(variant ProductVariant) Product {
	variants := make([]ProductVariant, len(p.variants), len(p.variants)+1)
	copy(variants, p.variants)
	p.variants = append(variants, variant)
	return p.touched()
}

func (p Product) touched() Product {
	p.updatedAt = time.Now().UTC()
	return p
}
