package product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shopsync/backend/internal/domain/product"
	"github.com/shopsync/backend/internal/domain/shared"
	"github.com/shopsync/backend/internal/domain/shopify"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Save(ctx context.Context, p product.Product) (product.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *mockProductRepository) FindBySku(ctx context.Context, sku product.Sku) (*product.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepository) FindByShopifyID(ctx context.Context, shopifyID string) (*product.Product, error) {
	args := m.Called(ctx, shopifyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context, page, perPage int) (*product.ProductPage, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ProductPage), args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, sku product.Sku) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) ExistsBySku(ctx context.Context, sku product.Sku) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) ExistsByShopifyID(ctx context.Context, shopifyID string) (bool, error) {
	args := m.Called(ctx, shopifyID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockShopifyClient struct {
	mock.Mock
}

func (m *mockShopifyClient) GetProduct(ctx context.Context, productID string) (*shopify.ProductData, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopify.ProductData), args.Error(1)
}

func (m *mockShopifyClient) GetProducts(ctx context.Context, limit int) ([]shopify.ProductData, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shopify.ProductData), args.Error(1)
}

func (m *mockShopifyClient) GetProductsCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockShopifyClient) UpdateProduct(ctx context.Context, productID string, update shopify.ProductUpdate) (*shopify.ProductData, error) {
	args := m.Called(ctx, productID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopify.ProductData), args.Error(1)
}

func (m *mockShopifyClient) UpdateInventory(ctx context.Context, inventoryItemID int64, quantity int) (*shopify.InventoryLevelData, error) {
	args := m.Called(ctx, inventoryItemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopify.InventoryLevelData), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Forget(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Has(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockCache) SetWithTags(ctx context.Context, tags []string, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, tags, key, value, ttl)
	return args.Error(0)
}

// RememberWithTags returns the canned value as a cache hit when it is
// non-empty, otherwise it runs the loader like a cache miss would.
func (m *mockCache) RememberWithTags(ctx context.Context, tags []string, key string, ttl time.Duration, fn func() (string, error)) (string, error) {
	args := m.Called(ctx, tags, key, ttl)
	if err := args.Error(1); err != nil {
		return "", err
	}
	if cached := args.String(0); cached != "" {
		return cached, nil
	}
	return fn()
}

func (m *mockCache) FlushTags(ctx context.Context, tags []string) error {
	args := m.Called(ctx, tags)
	return args.Error(0)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, event shared.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockDispatcher) DispatchMany(ctx context.Context, events []shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
