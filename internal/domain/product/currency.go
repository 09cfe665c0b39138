package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD" // US Dollar (default)
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	CAD Currency = "CAD" // Canadian Dollar
	AUD Currency = "AUD" // Australian Dollar
)

// DefaultCurrency is the currency assumed for remote catalog data
// that does not carry an explicit currency code.
const DefaultCurrency = USD

// Currencies returns all supported currency codes
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, CAD, AUD}
}

// ParseCurrency validates a raw currency code
func ParseCurrency(raw string) (Currency, error) {
	code := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	switch code {
	case USD, EUR, GBP, CAD, AUD:
		return code, nil
	default:
		return "", ErrUnknownCurrency
	}
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	switch c {
	case USD:
		return "$"
	case EUR:
		return "€"
	case GBP:
		return "£"
	case CAD:
		return "C$"
	case AUD:
		return "A$"
	default:
		return string(c)
	}
}

// FormatCents renders an amount of minor units using the currency's
// display convention. EUR places the code after the amount, the others
// prefix their symbol.
func (c Currency) FormatCents(cents int64) string {
	amount := decimal.New(cents, -2).StringFixed(2)
	if c == EUR {
		return fmt.Sprintf("%s EUR", amount)
	}
	return fmt.Sprintf("%s%s", c.Symbol(), amount)
}

// String implements fmt.Stringer
func (c Currency) String() string {
	return string(c)
}
