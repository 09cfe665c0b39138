// Package shopify defines the port to the remote Shopify catalog: the
// wire-level product representation and the client contract implemented
// by the infrastructure adapters.
package shopify

import (
	"context"
	"errors"
)

// Errors returned by client implementations. Callers match with errors.Is.
var (
	ErrProductNotFound = errors.New("shopify: product not found")
	ErrRateLimited     = errors.New("shopify: rate limited")
	ErrUnauthorized    = errors.New("shopify: unauthorized")
)

// VariantData is the wire representation of a product variant
type VariantData struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	SKU               string   `json:"sku"`
	Price             string   `json:"price"`
	InventoryQuantity int      `json:"inventory_quantity"`
	InventoryItemID   int64    `json:"inventory_item_id"`
	Weight            *float64 `json:"weight,omitempty"`
	WeightUnit        string   `json:"weight_unit,omitempty"`
}

// ProductData is the wire representation of a remote product
type ProductData struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	BodyHTML string        `json:"body_html"`
	Status   string        `json:"status"`
	Handle   string        `json:"handle,omitempty"`
	Variants []VariantData `json:"variants"`
}

// InventoryLevelData is the wire representation of a stock level at a location
type InventoryLevelData struct {
	InventoryItemID int64 `json:"inventory_item_id"`
	LocationID      int64 `json:"location_id"`
	Available       int   `json:"available"`
}

// ProductUpdate carries a partial remote product update. Nil fields are
// left untouched on the remote side.
type ProductUpdate struct {
	Title    *string `json:"title,omitempty"`
	BodyHTML *string `json:"body_html,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Client is the remote catalog contract. Implementations map transport
// failures onto the sentinel errors above where applicable.
type Client interface {
	GetProduct(ctx context.Context, productID string) (*ProductData, error)
	GetProducts(ctx context.Context, limit int) ([]ProductData, error)
	GetProductsCount(ctx context.Context) (int64, error)
	UpdateProduct(ctx context.Context, productID string, update ProductUpdate) (*ProductData, error)
	UpdateInventory(ctx context.Context, inventoryItemID int64, quantity int) (*InventoryLevelData, error)
}
