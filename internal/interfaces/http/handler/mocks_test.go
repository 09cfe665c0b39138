package handler

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopsync/backend/internal/domain/product"
	"github.com/shopsync/backend/internal/domain/shopify"
	"github.com/shopsync/backend/internal/interfaces/http/middleware"
	"github.com/shopsync/backend/internal/interfaces/http/router"
)

// mockProductRepository implements product.ProductRepository for testing
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
	return m.Called(ctx, sku).Error(0)
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
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

// mockShopifyClient implements shopify.Client for testing
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

// buildProduct constructs a persisted-looking product for test fixtures
func buildProduct(t *testing.T, sku string, cents int64, quantity int) product.Product {
	t.Helper()

	price, err := product.NewPrice(cents, product.USD)
	require.NoError(t, err)

	p, err := product.NewProduct(product.ProductParams{
		ID:        uuid.New(),
		ShopifyID: "632910392",
		Sku:       product.MustSku(sku),
		Title:     "Test Product",
		Price:     price,
		Status:    product.StatusActive,
		Inventory: quantity,
	})
	require.NoError(t, err)
	return p
}

// newTestRouter builds a gin engine with the standard middleware chain
// and the given registrars mounted under /api/v1
func newTestRouter(registrars ...router.RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine)
	for _, registrar := range registrars {
		r.Register(registrar)
	}
	r.Setup()
	return engine
}
