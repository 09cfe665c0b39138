package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSku(t *testing.T) {
	t.Run("normalizes by trimming and uppercasing", func(t *testing.T) {
		sku, err := NewSku("  shopify-001  ")
		require.NoError(t, err)
		assert.Equal(t, "SHOPIFY-001", sku.Value())
	})

	t.Run("accepts digits hyphens and underscores", func(t *testing.T) {
		sku, err := NewSku("AB_12-34")
		require.NoError(t, err)
		assert.Equal(t, "AB_12-34", sku.Value())
	})

	t.Run("round-trips through string conversion", func(t *testing.T) {
		sku, err := NewSku("ipod2008pink")
		require.NoError(t, err)

		again, err := NewSku(sku.String())
		require.NoError(t, err)
		assert.True(t, sku.Equals(again))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewSku("")
		assert.ErrorIs(t, err, ErrSkuEmpty)

		_, err = NewSku("   ")
		assert.ErrorIs(t, err, ErrSkuEmpty)
	})

	t.Run("rejects values over 50 characters", func(t *testing.T) {
		_, err := NewSku(strings.Repeat("A", 51))
		assert.ErrorIs(t, err, ErrSkuTooLong)

		_, err = NewSku(strings.Repeat("A", 50))
		assert.NoError(t, err)
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		for _, raw := range []string{"SKU 001", "SKU#001", "SKU/001", "SKÜ"} {
			_, err := NewSku(raw)
			assert.ErrorIs(t, err, ErrSkuInvalidCharacters, "input %q", raw)
		}
	})
}

func TestSkuEquality(t *testing.T) {
	a := MustSku("abc-1")
	b := MustSku("ABC-1")
	c := MustSku("ABC-2")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMustSkuPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustSku("") })
}
