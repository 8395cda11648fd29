package ordering

import (
	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

// OrderLine is one position of an Order: a product in a quantity at a price.
// The price is a nested value object and participates in equality.
type OrderLine struct {
	sku      string
	quantity int
	price    Money
}

// NewOrderLine creates an OrderLine value.
func NewOrderLine(sku string, quantity int, price Money) OrderLine {
	return OrderLine{sku: sku, quantity: quantity, price: price}
}

// SKU returns the product identifier of this line.
func (l OrderLine) SKU() string {
	return l.sku
}

// Quantity returns how many units this line covers.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Price returns the per-unit price.
func (l OrderLine) Price() Money {
	return l.price
}

// EqualityComponents implements basetypes.ValueObject.
func (l OrderLine) EqualityComponents() []any {
	return []any{l.sku, l.quantity, l.price}
}

// Equal reports whether both lines carry the same SKU, quantity and price.
func (l OrderLine) Equal(other OrderLine) bool {
	return basetypes.EqualValueObjects(l, other)
}
