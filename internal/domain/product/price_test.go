package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		p, err := NewPrice(0, USD)
		require.NoError(t, err)
		assert.True(t, p.IsZero())

		p, err = NewPrice(2999, USD)
		require.NoError(t, err)
		assert.Equal(t, int64(2999), p.Amount())
		assert.Equal(t, USD, p.Currency())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewPrice(-1, USD)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw   string
		cents int64
	}{
		{"29.99", 2999},
		{"199.00", 19900},
		{"0.00", 0},
		{"0.1", 10},
		{"5", 500},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			p, err := ParsePrice(tc.raw, USD)
			require.NoError(t, err)
			assert.Equal(t, tc.cents, p.Amount())
		})
	}

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := ParsePrice("abc", USD)
		assert.ErrorIs(t, err, ErrInvalidPriceAmount)
	})

	t.Run("rejects negative strings", func(t *testing.T) {
		_, err := ParsePrice("-1.50", USD)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestPriceArithmetic(t *testing.T) {
	usd10, _ := NewPrice(1000, USD)
	usd3, _ := NewPrice(300, USD)
	eur5, _ := NewPrice(500, EUR)

	t.Run("add", func(t *testing.T) {
		sum, err := usd10.Add(usd3)
		require.NoError(t, err)
		assert.Equal(t, int64(1300), sum.Amount())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := usd10.Subtract(usd3)
		require.NoError(t, err)
		assert.Equal(t, int64(700), diff.Amount())
	})

	t.Run("subtract below zero fails like negative construction", func(t *testing.T) {
		_, err := usd3.Subtract(usd10)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("multiply", func(t *testing.T) {
		total, err := usd3.Multiply(4)
		require.NoError(t, err)
		assert.Equal(t, int64(1200), total.Amount())
	})

	t.Run("cross-currency operations fail", func(t *testing.T) {
		_, err := usd10.Add(eur5)
		assert.Error(t, err)

		_, err = usd10.Subtract(eur5)
		assert.Error(t, err)

		_, err = usd10.LessThan(eur5)
		assert.Error(t, err)
	})

	t.Run("operands are never mutated", func(t *testing.T) {
		_, err := usd10.Add(usd3)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), usd10.Amount())
		assert.Equal(t, int64(300), usd3.Amount())
	})
}

func TestPriceComparisons(t *testing.T) {
	low, _ := NewPrice(100, GBP)
	high, _ := NewPrice(200, GBP)

	less, err := low.LessThan(high)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := high.GreaterThan(low)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, low.Equals(low))
	assert.False(t, low.Equals(high))
}

func TestPriceFormat(t *testing.T) {
	cases := []struct {
		currency Currency
		cents    int64
		want     string
	}{
		{USD, 2999, "$29.99"},
		{EUR, 2999, "29.99 EUR"},
		{GBP, 1050, "£10.50"},
		{CAD, 500, "C$5.00"},
		{AUD, 123456, "A$1234.56"},
	}
	for _, tc := range cases {
		t.Run(string(tc.currency), func(t *testing.T) {
			p, err := NewPrice(tc.cents, tc.currency)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Format())
		})
	}
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	_, err = ParseCurrency("JPY")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestPriceToDecimal(t *testing.T) {
	p, _ := NewPrice(2999, USD)
	assert.Equal(t, "29.99", p.ToDecimal().String())
}
