package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	productapp "github.com/shopsync/backend/internal/application/product"
	"github.com/shopsync/backend/internal/domain/product"
	"github.com/shopsync/backend/internal/domain/shopify"
	"github.com/shopsync/backend/internal/infrastructure/cache"
	"github.com/shopsync/backend/internal/infrastructure/event"
)

func newSyncHandler(repo *mockProductRepository, client *mockShopifyClient) *SyncHandler {
	logger := zap.NewNop()
	syncService := productapp.NewSyncService(repo, client, cache.NewMemoryCache(), event.NewInMemoryDispatcher(logger), logger)
	bulkService := productapp.NewBulkImportService(repo, syncService, logger)
	return NewSyncHandler(syncService, bulkService)
}

func postJSON(engine http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func remoteProduct() *shopify.ProductData {
	return &shopify.ProductData{
		ID:     632910392,
		Title:  "IPod Nano - 8GB",
		Status: "active",
		Variants: []shopify.VariantData{
			{ID: 808950810, SKU: "IPOD2008PINK", Price: "199.00", InventoryQuantity: 10},
		},
	}
}

func TestSyncHandlerSyncProduct(t *testing.T) {
	t.Run("imports a product", func(t *testing.T) {
		repo := new(mockProductRepository)
		client := new(mockShopifyClient)
		engine := newTestRouter(newSyncHandler(repo, client))

		repo.On("FindByShopifyID", mock.Anything, "632910392").Return(nil, product.ErrProductNotFound)
		client.On("GetProduct", mock.Anything, "632910392").Return(remoteProduct(), nil)
		repo.On("Save", mock.Anything, mock.Anything).
			Return(buildProduct(t, "IPOD2008PINK", 19900, 10), nil)

		w := postJSON(engine, "/api/v1/sync/product", `{"shopify_id":"632910392"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "IPOD2008PINK", resp.Data.(map[string]any)["sku"])
		repo.AssertExpectations(t)
		client.AssertExpectations(t)
	})

	t.Run("missing shopify_id yields 400", func(t *testing.T) {
		engine := newTestRouter(newSyncHandler(new(mockProductRepository), new(mockShopifyClient)))

		w := postJSON(engine, "/api/v1/sync/product", `{"force_update":true}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ERR_BAD_REQUEST", decodeResponse(t, w).Error.Code)
	})

	t.Run("unknown remote product yields 404", func(t *testing.T) {
		repo := new(mockProductRepository)
		client := new(mockShopifyClient)
		engine := newTestRouter(newSyncHandler(repo, client))

		repo.On("FindByShopifyID", mock.Anything, "999").Return(nil, product.ErrProductNotFound)
		client.On("GetProduct", mock.Anything, "999").Return(nil, shopify.ErrProductNotFound)

		w := postJSON(engine, "/api/v1/sync/product", `{"shopify_id":"999"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rate limiting surfaces as 429", func(t *testing.T) {
		repo := new(mockProductRepository)
		client := new(mockShopifyClient)
		engine := newTestRouter(newSyncHandler(repo, client))

		repo.On("FindByShopifyID", mock.Anything, "1").Return(nil, product.ErrProductNotFound)
		client.On("GetProduct", mock.Anything, "1").Return(nil, shopify.ErrRateLimited)

		w := postJSON(engine, "/api/v1/sync/product", `{"shopify_id":"1"}`)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "ERR_UPSTREAM_RATE_LIMITED", decodeResponse(t, w).Error.Code)
	})
}

func TestSyncHandlerBulkImport(t *testing.T) {
	t.Run("reports per-item outcomes", func(t *testing.T) {
		repo := new(mockProductRepository)
		client := new(mockShopifyClient)
		engine := newTestRouter(newSyncHandler(repo, client))

		// First id succeeds, second id is already known and skipped.
		repo.On("ExistsByShopifyID", mock.Anything, "632910392").Return(false, nil)
		repo.On("ExistsByShopifyID", mock.Anything, "921728736").Return(true, nil)
		repo.On("FindByShopifyID", mock.Anything, "632910392").Return(nil, product.ErrProductNotFound)
		client.On("GetProduct", mock.Anything, "632910392").Return(remoteProduct(), nil)
		repo.On("Save", mock.Anything, mock.Anything).
			Return(buildProduct(t, "IPOD2008PINK", 19900, 10), nil)

		w := postJSON(engine, "/api/v1/sync/bulk",
			`{"shopify_ids":["632910392","921728736"],"skip_duplicates":true}`)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(t, w).Data.(map[string]any)
		assert.Equal(t, float64(1), data["success_count"])
		assert.Equal(t, float64(1), data["skipped_count"])
		assert.Equal(t, float64(0), data["failed_count"])
	})

	t.Run("empty id list yields 400", func(t *testing.T) {
		engine := newTestRouter(newSyncHandler(new(mockProductRepository), new(mockShopifyClient)))

		w := postJSON(engine, "/api/v1/sync/bulk", `{"shopify_ids":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
