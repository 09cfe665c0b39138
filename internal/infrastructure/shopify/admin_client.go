package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/shopify"
)

// maxResponseSize is the maximum allowed response size from the Admin API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// defaultLocationID is used when setting inventory levels for shops with
// a single location.
const defaultLocationID = int64(1)

// AdminClient talks to the Shopify Admin REST API using a static access
// token. It supports both reads and writes.
type AdminClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAdminClient creates a client for the given store
func NewAdminClient(cfg Config, logger *zap.Logger) *AdminClient {
	return &AdminClient{
		baseURL: fmt.Sprintf("https://%s/admin/api/%s", cfg.StoreDomain, cfg.APIVersion),
		token:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("shopify.admin"),
	}
}

// NewAdminClientWithBaseURL creates a client against a custom endpoint.
// Used by tests to point at a local server.
func NewAdminClientWithBaseURL(baseURL, token string, logger *zap.Logger) *AdminClient {
	return &AdminClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("shopify.admin"),
	}
}

// GetProduct fetches a single product by its remote id
func (c *AdminClient) GetProduct(ctx context.Context, productID string) (*shopify.ProductData, error) {
	var out struct {
		Product shopify.ProductData `json:"product"`
	}
	path := fmt.Sprintf("/products/%s.json", url.PathEscape(productID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// GetProducts fetches up to limit products
func (c *AdminClient) GetProducts(ctx context.Context, limit int) ([]shopify.ProductData, error) {
	if limit <= 0 || limit > 250 {
		limit = 50
	}
	var out struct {
		Products []shopify.ProductData `json:"products"`
	}
	path := fmt.Sprintf("/products.json?limit=%d", limit)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetProductsCount returns the total number of products in the store
func (c *AdminClient) GetProductsCount(ctx context.Context) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/products/count.json", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// UpdateProduct applies a partial update to a remote product
func (c *AdminClient) UpdateProduct(ctx context.Context, productID string, update shopify.ProductUpdate) (*shopify.ProductData, error) {
	body := map[string]any{"product": update}
	var out struct {
		Product shopify.ProductData `json:"product"`
	}
	path := fmt.Sprintf("/products/%s.json", url.PathEscape(productID))
	if err := c.doRequest(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// UpdateInventory sets the available quantity for an inventory item. The
// item's current location is looked up first, falling back to the
// default location when the item has no level yet.
func (c *AdminClient) UpdateInventory(ctx context.Context, inventoryItemID int64, quantity int) (*shopify.InventoryLevelData, error) {
	locationID := defaultLocationID

	var levels struct {
		InventoryLevels []shopify.InventoryLevelData `json:"inventory_levels"`
	}
	path := fmt.Sprintf("/inventory_levels.json?inventory_item_ids=%s", strconv.FormatInt(inventoryItemID, 10))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &levels); err != nil {
		return nil, err
	}
	if len(levels.InventoryLevels) > 0 {
		locationID = levels.InventoryLevels[0].LocationID
	}

	body := map[string]any{
		"location_id":       locationID,
		"inventory_item_id": inventoryItemID,
		"available":         quantity,
	}
	var out struct {
		InventoryLevel shopify.InventoryLevelData `json:"inventory_level"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/inventory_levels/set.json", body, &out); err != nil {
		return nil, err
	}
	return &out.InventoryLevel, nil
}

func (c *AdminClient) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := mapStatusError(resp.StatusCode); err != nil {
		c.logger.Warn("Shopify Admin API error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return err
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func mapStatusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return shopify.ErrUnauthorized
	case status == http.StatusNotFound:
		return shopify.ErrProductNotFound
	case status == http.StatusTooManyRequests:
		return shopify.ErrRateLimited
	default:
		return fmt.Errorf("shopify: unexpected status %d", status)
	}
}

var _ shopify.Client = (*AdminClient)(nil)
