package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/shopify"
)

// DefaultDiscoveryURL is the global product discovery endpoint.
const DefaultDiscoveryURL = "https://discover.shopifyapps.com/global/mcp"

// tokenLeeway forces a refresh shortly before the access token expires.
const tokenLeeway = time.Minute

var (
	productGIDPattern = regexp.MustCompile(`Product/(\d+)`)
	variantGIDPattern = regexp.MustCompile(`ProductVariant/(\d+)`)
)

// DiscoveryClient is the read-only fallback strategy. It authenticates
// with the OAuth client-credentials flow and searches the global product
// discovery endpoint. Write operations are rejected.
type DiscoveryClient struct {
	storeDomain  string
	apiKey       string
	apiSecret    string
	tokenURL     string
	discoveryURL string
	httpClient   *http.Client
	logger       *zap.Logger

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewDiscoveryClient creates a client for the given store
func NewDiscoveryClient(cfg Config, logger *zap.Logger) *DiscoveryClient {
	return &DiscoveryClient{
		storeDomain:  cfg.StoreDomain,
		apiKey:       cfg.APIKey,
		apiSecret:    cfg.APISecret,
		tokenURL:     fmt.Sprintf("https://%s/admin/oauth/access_token", cfg.StoreDomain),
		discoveryURL: DefaultDiscoveryURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("shopify.discovery"),
	}
}

// NewDiscoveryClientWithURLs creates a client against custom endpoints.
// Used by tests to point at a local server.
func NewDiscoveryClientWithURLs(tokenURL, discoveryURL, apiKey, apiSecret string, logger *zap.Logger) *DiscoveryClient {
	return &DiscoveryClient{
		apiKey:       apiKey,
		apiSecret:    apiSecret,
		tokenURL:     tokenURL,
		discoveryURL: discoveryURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Named("shopify.discovery"),
	}
}

// GetProduct searches the discovery endpoint for the given remote id
func (c *DiscoveryClient) GetProduct(ctx context.Context, productID string) (*shopify.ProductData, error) {
	products, err := c.search(ctx, productID, 50)
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("shopify: invalid product id %q", productID)
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, shopify.ErrProductNotFound
}

// GetProducts returns up to limit products from the discovery endpoint
func (c *DiscoveryClient) GetProducts(ctx context.Context, limit int) ([]shopify.ProductData, error) {
	if limit <= 0 || limit > 250 {
		limit = 50
	}
	return c.search(ctx, "", limit)
}

// GetProductsCount returns the number of discoverable products
func (c *DiscoveryClient) GetProductsCount(ctx context.Context) (int64, error) {
	products, err := c.search(ctx, "", 250)
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

// UpdateProduct is not available through the discovery endpoint
func (c *DiscoveryClient) UpdateProduct(context.Context, string, shopify.ProductUpdate) (*shopify.ProductData, error) {
	return nil, fmt.Errorf("discovery client is read-only: %w", shopify.ErrUnauthorized)
}

// UpdateInventory is not available through the discovery endpoint
func (c *DiscoveryClient) UpdateInventory(context.Context, int64, int) (*shopify.InventoryLevelData, error) {
	return nil, fmt.Errorf("discovery client is read-only: %w", shopify.ErrUnauthorized)
}

func (c *DiscoveryClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.expiresAt.Add(-tokenLeeway)) {
		return c.accessToken, nil
	}

	payload, err := json.Marshal(map[string]string{
		"client_id":     c.apiKey,
		"client_secret": c.apiSecret,
		"grant_type":    "client_credentials",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", shopify.ErrUnauthorized
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if out.AccessToken == "" {
		return "", shopify.ErrUnauthorized
	}

	c.accessToken = out.AccessToken
	c.expiresAt = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	c.logger.Debug("Obtained discovery access token", zap.Time("expires_at", c.expiresAt))
	return c.accessToken, nil
}

func (c *DiscoveryClient) search(ctx context.Context, query string, limit int) ([]shopify.ProductData, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]any{
			"name": "search_global_products",
			"arguments": map[string]any{
				"query": query,
				"limit": limit,
			},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.discoveryURL, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build discovery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := mapStatusError(resp.StatusCode); err != nil {
		return nil, err
	}

	var out struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode discovery response: %w", err)
	}

	return c.extractProducts(out.Result), nil
}

type discoveryVariant struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	SKU         string `json:"sku"`
	DisplayName string `json:"displayName"`
	Price       struct {
		Amount float64 `json:"amount"`
	} `json:"price"`
	InventoryQuantity int `json:"inventory_quantity"`
}

type discoveryProduct struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Variants    []discoveryVariant `json:"variants"`
}

// extractProducts converts the discovery payload to the Admin wire
// format. The result arrives either as a bare product list or wrapped in
// a content envelope; products without variants are dropped.
func (c *DiscoveryClient) extractProducts(result json.RawMessage) []shopify.ProductData {
	var items []discoveryProduct
	if err := json.Unmarshal(result, &items); err != nil {
		var wrapper struct {
			Content []discoveryProduct `json:"content"`
		}
		if err := json.Unmarshal(result, &wrapper); err != nil {
			c.logger.Warn("Unrecognized discovery payload shape")
			return nil
		}
		items = wrapper.Content
	}

	products := make([]shopify.ProductData, 0, len(items))
	for _, item := range items {
		if product, ok := c.transformProduct(item); ok {
			products = append(products, product)
		}
	}
	return products
}

func (c *DiscoveryClient) transformProduct(item discoveryProduct) (shopify.ProductData, bool) {
	if len(item.Variants) == 0 {
		c.logger.Warn("Discovery product has no variants", zap.String("product_id", item.ID))
		return shopify.ProductData{}, false
	}

	var productID int64
	if m := productGIDPattern.FindStringSubmatch(item.Variants[0].ProductID); m != nil {
		productID, _ = strconv.ParseInt(m[1], 10, 64)
	}

	variants := make([]shopify.VariantData, 0, len(item.Variants))
	for i, v := range item.Variants {
		var variantID int64 = int64(i + 1)
		if m := variantGIDPattern.FindStringSubmatch(v.ID); m != nil {
			variantID, _ = strconv.ParseInt(m[1], 10, 64)
		}

		sku := v.SKU
		if sku == "" {
			sku = fmt.Sprintf("MCP-%d-%d", productID, i+1)
		}

		// Discovery prices are in cents, the Admin format uses a
		// decimal string in major units.
		price := decimal.NewFromFloat(v.Price.Amount).Div(decimal.NewFromInt(100)).StringFixed(2)

		variants = append(variants, shopify.VariantData{
			ID:                variantID,
			Title:             v.DisplayName,
			SKU:               sku,
			Price:             price,
			InventoryQuantity: v.InventoryQuantity,
		})
	}

	return shopify.ProductData{
		ID:       productID,
		Title:    item.Title,
		BodyHTML: item.Description,
		Status:   "active",
		Variants: variants,
	}, true
}

var _ shopify.Client = (*DiscoveryClient)(nil)
