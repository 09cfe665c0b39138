package product

import (
	"github.com/shopspring/decimal"
)

// Price is a monetary value in minor units (cents) with a currency.
// The amount is never negative; arithmetic and comparisons are only
// defined between same-currency prices. Immutable.
type Price struct {
	amount   int64
	currency Currency
}

// NewPrice creates a Price from an amount of minor units
func NewPrice(cents int64, currency Currency) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: cents, currency: currency}, nil
}

// ParsePrice creates a Price from a decimal string such as "29.99".
// The string is parsed exactly and converted to minor units.
func ParsePrice(raw string, currency Currency) (Price, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Price{}, ErrInvalidPriceAmount
	}
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return NewPrice(cents, currency)
}

// ZeroPrice returns a zero amount in the given currency
func ZeroPrice(currency Currency) Price {
	return Price{amount: 0, currency: currency}
}

// Amount returns the amount in minor units
func (p Price) Amount() int64 {
	return p.amount
}

// Currency returns the currency code
func (p Price) Currency() Currency {
	return p.currency
}

// ToDecimal returns the amount in major units as an exact decimal
func (p Price) ToDecimal() decimal.Decimal {
	return decimal.New(p.amount, -2)
}

// Format renders the price using the currency's display convention
func (p Price) Format() string {
	return p.currency.FormatCents(p.amount)
}

// IsZero returns true if the amount is zero
func (p Price) IsZero() bool {
	return p.amount == 0
}

// Add returns a new Price with the sum of both amounts
func (p Price) Add(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, NewCurrencyMismatchError("add", p.currency, other.currency)
	}
	return Price{amount: p.amount + other.amount, currency: p.currency}, nil
}

// Subtract returns a new Price with the difference. A negative result
// fails with the same error as negative construction.
func (p Price) Subtract(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, NewCurrencyMismatchError("subtract", p.currency, other.currency)
	}
	return NewPrice(p.amount-other.amount, p.currency)
}

// Multiply returns a new Price scaled by a non-negative quantity
func (p Price) Multiply(quantity int64) (Price, error) {
	return NewPrice(p.amount*quantity, p.currency)
}

// Equals returns true if both prices have the same amount and currency
func (p Price) Equals(other Price) bool {
	return p.currency == other.currency && p.amount == other.amount
}

// LessThan compares same-currency prices
func (p Price) LessThan(other Price) (bool, error) {
	if p.currency != other.currency {
		return false, NewCurrencyMismatchError("compare", p.currency, other.currency)
	}
	return p.amount < other.amount, nil
}

// GreaterThan compares same-currency prices
func (p Price) GreaterThan(other Price) (bool, error) {
	if p.currency != other.currency {
		return false, NewCurrencyMismatchError("compare", p.currency, other.currency)
	}
	return p.amount > other.amount, nil
}

// String implements fmt.Stringer
func (p Price) String() string {
	return p.Format()
}
