package product

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsync/backend/internal/domain/shopify"
)

func newTestProduct(t *testing.T) Product {
	t.Helper()
	price, err := NewPrice(2999, USD)
	require.NoError(t, err)
	p, err := NewProduct(ProductParams{
		Sku:       MustSku("TEST-001"),
		Title:     "Test Product",
		Price:     price,
		Status:    StatusActive,
		Inventory: 10,
	})
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("defaults status to draft", func(t *testing.T) {
		p, err := NewProduct(ProductParams{
			Sku:   MustSku("X-1"),
			Price: ZeroPrice(USD),
		})
		require.NoError(t, err)
		assert.Equal(t, StatusDraft, p.Status())
	})

	t.Run("defaults empty title", func(t *testing.T) {
		p, err := NewProduct(ProductParams{
			Sku:   MustSku("X-1"),
			Price: ZeroPrice(USD),
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultTitle, p.Title())
	})

	t.Run("rejects negative inventory", func(t *testing.T) {
		_, err := NewProduct(ProductParams{
			Sku:       MustSku("X-1"),
			Price:     ZeroPrice(USD),
			Inventory: -1,
		})
		assert.ErrorIs(t, err, ErrNegativeInventory)
	})

	t.Run("rejects missing sku", func(t *testing.T) {
		_, err := NewProduct(ProductParams{Price: ZeroPrice(USD)})
		assert.ErrorIs(t, err, ErrSkuEmpty)
	})

	t.Run("rehydrates persisted timestamps unchanged", func(t *testing.T) {
		created := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
		updated := time.Date(2024, 2, 10, 14, 30, 0, 0, time.UTC)
		p, err := NewProduct(ProductParams{
			Sku:       MustSku("X-1"),
			Price:     ZeroPrice(USD),
			CreatedAt: created,
			UpdatedAt: updated,
		})
		require.NoError(t, err)
		assert.Equal(t, created, p.CreatedAt())
		assert.Equal(t, updated, p.UpdatedAt())
	})
}

func TestProductWithers(t *testing.T) {
	t.Run("withers return copies and never mutate the original", func(t *testing.T) {
		original := newTestProduct(t)
		modified := original.WithTitle("Renamed")

		assert.Equal(t, "Test Product", original.Title())
		assert.Equal(t, "Renamed", modified.Title())
		assert.Equal(t, original.Sku(), modified.Sku())
	})

	t.Run("withers advance updatedAt and preserve createdAt", func(t *testing.T) {
		original := newTestProduct(t)
		time.Sleep(2 * time.Millisecond)
		modified := original.WithStatus(StatusArchived)

		assert.Equal(t, original.CreatedAt(), modified.CreatedAt())
		assert.True(t, modified.UpdatedAt().After(original.UpdatedAt()))
	})

	t.Run("with inventory quantity re-validates", func(t *testing.T) {
		original := newTestProduct(t)

		updated, err := original.WithInventoryQuantity(42)
		require.NoError(t, err)
		assert.Equal(t, 42, updated.InventoryQuantity())
		assert.Equal(t, 10, original.InventoryQuantity())

		_, err = original.WithInventoryQuantity(-5)
		assert.ErrorIs(t, err, ErrNegativeInventory)
	})

	t.Run("with price", func(t *testing.T) {
		original := newTestProduct(t)
		newPrice, _ := NewPrice(4999, USD)

		modified := original.WithPrice(newPrice)
		assert.Equal(t, int64(4999), modified.Price().Amount())
		assert.Equal(t, int64(2999), original.Price().Amount())
	})

	t.Run("add variant copies the list", func(t *testing.T) {
		original := newTestProduct(t)
		variant, err := NewProductVariant(VariantParams{
			Sku:       MustSku("TEST-001-RED"),
			Price:     ZeroPrice(USD),
			Inventory: 3,
		})
		require.NoError(t, err)

		modified := original.AddVariant(variant)
		assert.Len(t, original.Variants(), 0)
		assert.Len(t, modified.Variants(), 1)
	})

	t.Run("with id does not advance updatedAt", func(t *testing.T) {
		original := newTestProduct(t)
		id := uuid.New()
		linked := original.WithID(id)

		assert.Equal(t, id, linked.ID())
		assert.Equal(t, original.UpdatedAt(), linked.UpdatedAt())
	})
}

func TestProductPredicates(t *testing.T) {
	p := newTestProduct(t)
	assert.True(t, p.IsInStock())
	assert.True(t, p.IsActive())

	empty, err := p.WithInventoryQuantity(0)
	require.NoError(t, err)
	assert.False(t, empty.IsInStock())

	draft := p.WithStatus(StatusDraft)
	assert.False(t, draft.IsActive())
}

func TestFromShopifyData(t *testing.T) {
	validData := shopify.ProductData{
		ID:       123456,
		Title:    "Imported Widget",
		BodyHTML: "<p>A widget.</p>",
		Status:   "active",
		Variants: []shopify.VariantData{
			{ID: 808950810, SKU: "SHOPIFY-001", Price: "29.99", InventoryQuantity: 100},
			{ID: 808950811, SKU: "SHOPIFY-002", Price: "31.99", InventoryQuantity: 5},
		},
	}

	t.Run("first variant seeds product sku price and inventory", func(t *testing.T) {
		p, err := FromShopifyData(validData)
		require.NoError(t, err)

		assert.Equal(t, "SHOPIFY-001", p.Sku().Value())
		assert.Equal(t, int64(2999), p.Price().Amount())
		assert.Equal(t, 100, p.InventoryQuantity())
		assert.Equal(t, "123456", p.ShopifyID())
		assert.Equal(t, "Imported Widget", p.Title())
		assert.Equal(t, "<p>A widget.</p>", p.Description())
		assert.Equal(t, StatusActive, p.Status())
		assert.Len(t, p.Variants(), 2)
	})

	t.Run("unknown status falls back to draft", func(t *testing.T) {
		data := validData
		data.Status = "something-new"

		p, err := FromShopifyData(data)
		require.NoError(t, err)
		assert.Equal(t, StatusDraft, p.Status())
	})

	t.Run("missing title defaults", func(t *testing.T) {
		data := validData
		data.Title = ""

		p, err := FromShopifyData(data)
		require.NoError(t, err)
		assert.Equal(t, DefaultTitle, p.Title())
	})

	t.Run("variants without sku are skipped", func(t *testing.T) {
		data := validData
		data.Variants = []shopify.VariantData{
			{ID: 1, SKU: "  ", Price: "9.99"},
			{ID: 2, SKU: "KEEP-ME", Price: "19.99", InventoryQuantity: 7},
		}

		p, err := FromShopifyData(data)
		require.NoError(t, err)
		require.Len(t, p.Variants(), 1)
		assert.Equal(t, "KEEP-ME", p.Sku().Value())
		assert.Equal(t, 7, p.InventoryQuantity())
	})

	t.Run("fails without variants", func(t *testing.T) {
		data := validData
		data.Variants = nil

		_, err := FromShopifyData(data)
		assert.ErrorIs(t, err, ErrMissingVariants)
	})

	t.Run("fails when no variant carries a sku", func(t *testing.T) {
		data := validData
		data.Variants = []shopify.VariantData{{ID: 1, Price: "9.99"}}

		_, err := FromShopifyData(data)
		assert.ErrorIs(t, err, ErrMissingVariantSku)
	})

	t.Run("negative remote inventory is clamped to zero", func(t *testing.T) {
		data := validData
		data.Variants = []shopify.VariantData{
			{ID: 1, SKU: "NEG-1", Price: "9.99", InventoryQuantity: -4},
		}

		p, err := FromShopifyData(data)
		require.NoError(t, err)
		assert.Equal(t, 0, p.InventoryQuantity())
	})
}

func TestProductVariant(t *testing.T) {
	t.Run("rejects negative weight", func(t *testing.T) {
		w := -0.5
		_, err := NewProductVariant(VariantParams{
			Sku:    MustSku("V-1"),
			Price:  ZeroPrice(USD),
			Weight: &w,
		})
		assert.ErrorIs(t, err, ErrNegativeWeight)
	})

	t.Run("rejects negative inventory", func(t *testing.T) {
		_, err := NewProductVariant(VariantParams{
			Sku:       MustSku("V-1"),
			Price:     ZeroPrice(USD),
			Inventory: -1,
		})
		assert.ErrorIs(t, err, ErrNegativeInventory)
	})

	t.Run("withers copy", func(t *testing.T) {
		v, err := NewProductVariant(VariantParams{
			Sku:       MustSku("V-1"),
			Price:     ZeroPrice(USD),
			Inventory: 1,
		})
		require.NoError(t, err)

		updated, err := v.WithInventoryQuantity(9)
		require.NoError(t, err)
		assert.Equal(t, 9, updated.InventoryQuantity())
		assert.Equal(t, 1, v.InventoryQuantity())
	})
}
