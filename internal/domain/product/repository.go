package product

import (
	"context"

	"github.com/google/uuid"
)

// ProductPage is one page of a product listing
type ProductPage struct {
	Data    []Product
	Total   int64
	Page    int
	PerPage int
}

// ProductRepository is the persistence port for the catalog aggregate.
// Save performs an upsert keyed by shopify id when present, else by SKU.
// Lookups return ErrProductNotFound when no row matches.
type ProductRepository interface {
	Save(ctx context.Context, p Product) (Product, error)
	FindBySku(ctx context.Context, sku Sku) (*Product, error)
	FindByShopifyID(ctx context.Context, shopifyID string) (*Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, page, perPage int) (*ProductPage, error)
	Delete(ctx context.Context, sku Sku) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ExistsBySku(ctx context.Context, sku Sku) (bool, error)
	ExistsByShopifyID(ctx context.Context, shopifyID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
