package ordering

import (
	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

// Money is an amount expressed in a currency's minor units (cents).
type Money struct {
	amountMinor int64
	currency    string
}

// NewMoney creates a Money value from minor units and an ISO currency code.
func NewMoney(amountMinor int64, currency string) Money {
	return Money{amountMinor: amountMinor, currency: currency}
}

// AmountMinor returns the amount in minor units.
func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

// Currency returns the ISO currency code.
func (m Money) Currency() string {
	return m.currency
}

// EqualityComponents implements basetypes.ValueObject.
func (m Money) EqualityComponents() []any {
	return []any{m.amountMinor, m.currency}
}

// Equal reports whether both values carry the same amount and currency.
func (m Money) Equal(other Money) bool {
	return basetypes.EqualValueObjects(m, other)
}
