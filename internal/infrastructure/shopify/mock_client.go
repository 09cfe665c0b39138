package shopify

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/shopify"
)

// MockClient is a deterministic in-memory client for development and
// tests. It always starts from the same fixture data; inventory updates
// mutate the in-memory copy.
type MockClient struct {
	mu       sync.RWMutex
	products map[int64]shopify.ProductData
	levels   map[int64]shopify.InventoryLevelData
	logger   *zap.Logger
}

// NewMockClient creates a client seeded with fixture products
func NewMockClient(logger *zap.Logger) *MockClient {
	c := &MockClient{
		products: make(map[int64]shopify.ProductData),
		levels:   make(map[int64]shopify.InventoryLevelData),
		logger:   logger.Named("shopify.mock"),
	}
	c.seed()
	return c
}

func (c *MockClient) seed() {
	weight := 0.2
	c.products[632910392] = shopify.ProductData{
		ID:       632910392,
		Title:    "IPod Nano - 8GB",
		BodyHTML: "<p>It's the small iPod with one big idea: Video.</p>",
		Status:   "active",
		Handle:   "ipod-nano-8gb",
		Variants: []shopify.VariantData{
			{ID: 808950810, Title: "Pink", SKU: "IPOD2008PINK", Price: "199.00", InventoryQuantity: 10, InventoryItemID: 808950810, Weight: &weight, WeightUnit: "kg"},
			{ID: 49148385, Title: "Red", SKU: "IPOD2008RED", Price: "199.00", InventoryQuantity: 20, InventoryItemID: 49148385, Weight: &weight, WeightUnit: "kg"},
			{ID: 39072856, Title: "Green", SKU: "IPOD2008GREEN", Price: "199.00", InventoryQuantity: 30, InventoryItemID: 39072856, Weight: &weight, WeightUnit: "kg"},
		},
	}
	c.products[921728736] = shopify.ProductData{
		ID:       921728736,
		Title:    "IPod Touch 8GB",
		BodyHTML: "<p>The iPod Touch has the iPhone's multi-touch interface.</p>",
		Status:   "active",
		Handle:   "ipod-touch-8gb",
		Variants: []shopify.VariantData{
			{ID: 447654529, Title: "Black", SKU: "IPOD2009BLACK", Price: "199.00", InventoryQuantity: 13, InventoryItemID: 447654529},
		},
	}
	for _, p := range c.products {
		for _, v := range p.Variants {
			c.levels[v.InventoryItemID] = shopify.InventoryLevelData{
				InventoryItemID: v.InventoryItemID,
				LocationID:      1001,
				Available:       v.InventoryQuantity,
			}
		}
	}
}

// GetProduct returns the fixture product with the given id
func (c *MockClient) GetProduct(_ context.Context, productID string) (*shopify.ProductData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id, p := range c.products {
		if formatID(id) == productID {
			copied := p
			return &copied, nil
		}
	}
	return nil, shopify.ErrProductNotFound
}

// GetProducts returns up to limit fixture products
func (c *MockClient) GetProducts(_ context.Context, limit int) ([]shopify.ProductData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]shopify.ProductData, 0, len(c.products))
	for _, p := range c.products {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProductsCount returns the number of fixture products
func (c *MockClient) GetProductsCount(context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.products)), nil
}

// UpdateProduct applies the update to the in-memory fixture
func (c *MockClient) UpdateProduct(_ context.Context, productID string, update shopify.ProductUpdate) (*shopify.ProductData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, p := range c.products {
		if formatID(id) != productID {
			continue
		}
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.BodyHTML != nil {
			p.BodyHTML = *update.BodyHTML
		}
		if update.Status != nil {
			p.Status = *update.Status
		}
		c.products[id] = p
		copied := p
		return &copied, nil
	}
	return nil, shopify.ErrProductNotFound
}

// UpdateInventory sets the available quantity for an inventory item,
// creating a level entry when the item is unknown
func (c *MockClient) UpdateInventory(_ context.Context, inventoryItemID int64, quantity int) (*shopify.InventoryLevelData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	level, ok := c.levels[inventoryItemID]
	if !ok {
		c.logger.Warn("Inventory item not found, creating mock entry",
			zap.Int64("inventory_item_id", inventoryItemID),
		)
		level = shopify.InventoryLevelData{
			InventoryItemID: inventoryItemID,
			LocationID:      1001,
		}
	}
	level.Available = quantity
	c.levels[inventoryItemID] = level

	for id, p := range c.products {
		for i, v := range p.Variants {
			if v.InventoryItemID == inventoryItemID {
				p.Variants[i].InventoryQuantity = quantity
				c.products[id] = p
			}
		}
	}

	copied := level
	return &copied, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

var _ shopify.Client = (*MockClient)(nil)
