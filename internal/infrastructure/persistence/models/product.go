// Package models contains the GORM persistence models for the catalog
// and their conversions to and from the domain types.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopsync/backend/internal/domain/product"
)

// ProductModel is the persistence representation of a Product
type ProductModel struct {
	ID                uuid.UUID             `gorm:"type:uuid;primary_key"`
	Sku               string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title             string                `gorm:"type:varchar(255);not null"`
	Description       string                `gorm:"type:text"`
	PriceCents        int64                 `gorm:"not null;default:0"`
	Currency          string                `gorm:"type:varchar(3);not null"`
	Status            string                `gorm:"type:varchar(20);not null;index"`
	InventoryQuantity int                   `gorm:"not null;default:0"`
	ShopifyID         *string               `gorm:"type:varchar(50);uniqueIndex"`
	Variants          []ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time             `gorm:"not null"`
	UpdatedAt         time.Time             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is the persistence representation of a ProductVariant
type ProductVariantModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_variant_product_sku,priority:1"`
	Sku               string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_product_sku,priority:2"`
	ShopifyVariantID  int64     `gorm:"index"`
	PriceCents        int64     `gorm:"not null;default:0"`
	Currency          string    `gorm:"type:varchar(3);not null"`
	InventoryQuantity int       `gorm:"not null;default:0"`
	Weight            *float64
	WeightUnit        string    `gorm:"type:varchar(10)"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ProductModelFromDomain maps a domain product onto its persistence model.
// The caller is responsible for assigning IDs that are still uuid.Nil.
func ProductModelFromDomain(p product.Product) *ProductModel {
	model := &ProductModel{
		ID:                p.ID(),
		Sku:               p.Sku().Value(),
		Title:             p.Title(),
		Description:       p.Description(),
		PriceCents:        p.Price().Amount(),
		Currency:          p.Price().Currency().String(),
		Status:            p.Status().String(),
		InventoryQuantity: p.InventoryQuantity(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
	if p.ShopifyID() != "" {
		shopifyID := p.ShopifyID()
		model.ShopifyID = &shopifyID
	}
	for _, v := range p.Variants() {
		model.Variants = append(model.Variants, ProductVariantModel{
			ID:                v.ID(),
			ProductID:         p.ID(),
			Sku:               v.Sku().Value(),
			ShopifyVariantID:  v.ShopifyVariantID(),
			PriceCents:        v.Price().Amount(),
			Currency:          v.Price().Currency().String(),
			InventoryQuantity: v.InventoryQuantity(),
			Weight:            v.Weight(),
			WeightUnit:        v.WeightUnit(),
		})
	}
	return model
}

// ToDomain rebuilds the domain product, preserving persisted timestamps
func (m *ProductModel) ToDomain() (product.Product, error) {
	sku, err := product.NewSku(m.Sku)
	if err != nil {
		return product.Product{}, err
	}
	currency, err := product.ParseCurrency(m.Currency)
	if err != nil {
		return product.Product{}, err
	}
	price, err := product.NewPrice(m.PriceCents, currency)
	if err != nil {
		return product.Product{}, err
	}
	status, err := product.ParseStatus(m.Status)
	if err != nil {
		return product.Product{}, err
	}

	variants := make([]product.ProductVariant, 0, len(m.Variants))
	for _, v := range m.Variants {
		variant, err := v.ToDomain()
		if err != nil {
			return product.Product{}, err
		}
		variants = append(variants, variant)
	}

	shopifyID := ""
	if m.ShopifyID != nil {
		shopifyID = *m.ShopifyID
	}

	return product.NewProduct(product.ProductParams{
		ID:        m.ID,
		ShopifyID: shopifyID,
		Sku:       sku,
		Title:     m.Title,
		Desc:      m.Description,
		Price:     price,
		Status:    status,
		Inventory: m.InventoryQuantity,
		Variants:  variants,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	})
}

// ToDomain rebuilds the domain variant
func (m *ProductVariantModel) ToDomain() (product.ProductVariant, error) {
	sku, err := product.NewSku(m.Sku)
	if err != nil {
		return product.ProductVariant{}, err
	}
	currency, err := product.ParseCurrency(m.Currency)
	if err != nil {
		return product.ProductVariant{}, err
	}
	price, err := product.NewPrice(m.PriceCents, currency)
	if err != nil {
		return product.ProductVariant{}, err
	}

	return product.NewProductVariant(product.VariantParams{
		ID:               m.ID,
		ShopifyVariantID: m.ShopifyVariantID,
		Sku:              sku,
		Price:            price,
		Inventory:        m.InventoryQuantity,
		Weight:           m.Weight,
		WeightUnit:       m.WeightUnit,
	})
}
