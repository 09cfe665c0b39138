package product

import (
	"fmt"

	"github.com/shopsync/backend/internal/domain/shared"
)

// Sku validation errors
var (
	ErrSkuEmpty             = shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	ErrSkuTooLong           = shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	ErrSkuInvalidCharacters = shared.NewDomainError("INVALID_SKU", "SKU may only contain letters, digits, hyphens and underscores")
)

// Price validation errors
var (
	ErrNegativePrice      = shared.NewDomainError("INVALID_PRICE", "Price amount cannot be negative")
	ErrInvalidPriceAmount = shared.NewDomainError("INVALID_PRICE", "Price amount is not a valid decimal")
	ErrUnknownCurrency    = shared.NewDomainError("INVALID_PRICE", "Unknown currency code")
)

// Entity invariant errors
var (
	ErrNegativeInventory = shared.NewDomainError("INVALID_INVENTORY", "Inventory quantity cannot be negative")
	ErrNegativeWeight    = shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	ErrUnknownStatus     = shared.NewDomainError("INVALID_STATUS", "Unknown product status")
	ErrMissingVariants   = shared.NewDomainError("INVALID_PRODUCT_DATA", "Shopify product data must contain at least one variant")
	ErrMissingVariantSku = shared.NewDomainError("INVALID_PRODUCT_DATA", "Shopify product data must contain at least one variant with a SKU")
)

// Repository-level errors
var (
	ErrProductNotFound  = shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	ErrDuplicateProduct = shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists")
)

// NewCurrencyMismatchError reports an arithmetic or comparison operation
// attempted across two different currencies.
func NewCurrencyMismatchError(operation string, a, b Currency) *shared.DomainError {
	return shared.NewDomainError(
		"CURRENCY_MISMATCH",
		fmt.Sprintf("cannot %s prices with different currencies: %s and %s", operation, a, b),
	)
}
