package product

import (
	"regexp"
	"strings"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9\-_]+$`)

// MaxSkuLength is the maximum accepted SKU length after normalization.
const MaxSkuLength = 50

// Sku is a value object for stock keeping units.
// Input is normalized (trimmed, uppercased) before validation and the
// value is immutable once constructed.
type Sku struct {
	value string
}

// NewSku normalizes and validates the given raw SKU string
func NewSku(raw string) (Sku, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))

	if normalized == "" {
		return Sku{}, ErrSkuEmpty
	}
	if len(normalized) > MaxSkuLength {
		return Sku{}, ErrSkuTooLong
	}
	if !skuPattern.MatchString(normalized) {
		return Sku{}, ErrSkuInvalidCharacters
	}

	return Sku{value: normalized}, nil
}

// MustSku constructs a Sku and panics on validation failure.
// Intended for constants and test fixtures.
func MustSku(raw string) Sku {
	sku, err := NewSku(raw)
	if err != nil {
		panic(err)
	}
	return sku
}

// Value returns the normalized SKU string
func (s Sku) Value() string {
	return s.value
}

// String implements fmt.Stringer
func (s Sku) String() string {
	return s.value
}

// Equals returns true if both SKUs hold the same normalized value
func (s Sku) Equals(other Sku) bool {
	return s.value == other.value
}

// IsZero reports whether the Sku is the uninitialized zero value
func (s Sku) IsZero() bool {
	return s.value == ""
}
