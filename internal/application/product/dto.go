package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopsync/backend/internal/domain/product"
)

// PriceDTO is the wire representation of a price
type PriceDTO struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// VariantDTO is the wire representation of a product variant
type VariantDTO struct {
	ID                string   `json:"id,omitempty"`
	ShopifyVariantID  int64    `json:"shopify_variant_id,omitempty"`
	Sku               string   `json:"sku"`
	Price             PriceDTO `json:"price"`
	InventoryQuantity int      `json:"inventory_quantity"`
}

// ProductDTO is the wire representation of a product
type ProductDTO struct {
	ID                string       `json:"id,omitempty"`
	Sku               string       `json:"sku"`
	Title             string       `json:"title"`
	Description       string       `json:"description,omitempty"`
	Price             PriceDTO     `json:"price"`
	Status            string       `json:"status"`
	InventoryQuantity int          `json:"inventory_quantity"`
	InStock           bool         `json:"in_stock"`
	ShopifyID         string       `json:"shopify_id,omitempty"`
	Variants          []VariantDTO `json:"variants"`
	CreatedAt         string       `json:"created_at"`
	UpdatedAt         string       `json:"updated_at"`
}

// ProductListDTO is one page of the product listing
type ProductListDTO struct {
	Data    []ProductDTO `json:"data"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
}

// ToPriceDTO maps a domain price to its wire representation
func ToPriceDTO(p product.Price) PriceDTO {
	return PriceDTO{
		Amount:    p.Amount(),
		Currency:  p.Currency().String(),
		Formatted: p.Format(),
	}
}

// ToProductDTO maps a domain product to its wire representation
func ToProductDTO(p product.Product) ProductDTO {
	variants := make([]VariantDTO, 0, len(p.Variants()))
	for _, v := range p.Variants() {
		dto := VariantDTO{
			ShopifyVariantID:  v.ShopifyVariantID(),
			Sku:               v.Sku().Value(),
			Price:             ToPriceDTO(v.Price()),
			InventoryQuantity: v.InventoryQuantity(),
		}
		if v.ID() != uuid.Nil {
			dto.ID = v.ID().String()
		}
		variants = append(variants, dto)
	}

	dto := ProductDTO{
		Sku:               p.Sku().Value(),
		Title:             p.Title(),
		Description:       p.Description(),
		Price:             ToPriceDTO(p.Price()),
		Status:            p.Status().String(),
		InventoryQuantity: p.InventoryQuantity(),
		InStock:           p.IsInStock(),
		ShopifyID:         p.ShopifyID(),
		Variants:          variants,
		CreatedAt:         p.CreatedAt().Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt().Format(time.RFC3339),
	}
	if p.ID() != uuid.Nil {
		dto.ID = p.ID().String()
	}
	return dto
}
