package product

import "fmt"

// ProductsTag scopes every cached product read so a sync or delete can
// invalidate all of them in one flush.
const ProductsTag = "products"

// CacheKeyGenerator builds the cache keys used by the read side
type CacheKeyGenerator struct{}

// ProductsListKey returns the key for one page of the product listing
func (CacheKeyGenerator) ProductsListKey(page, perPage int) string {
	return fmt.Sprintf("products_json_%d_%d", page, perPage)
}

// ProductBySkuKey returns the key for a single product looked up by SKU
func (CacheKeyGenerator) ProductBySkuKey(sku string) string {
	return fmt.Sprintf("product_sku_%s", sku)
}

// ProductByShopifyIDKey returns the key for a single product looked up
// by its remote identifier
func (CacheKeyGenerator) ProductByShopifyIDKey(shopifyID string) string {
	return fmt.Sprintf("product_shopify_%s", shopifyID)
}
