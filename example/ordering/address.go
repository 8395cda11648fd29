package ordering

import (
	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

// Address is the shipping address of an Order.
type Address struct {
	street     string
	city       string
	postalCode string
}

// NewAddress creates an Address value.
func NewAddress(street string, city string, postalCode string) Address {
	return Address{street: street, city: city, postalCode: postalCode}
}

// Street returns the street including the house number.
func (a Address) Street() string {
	return a.street
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// EqualityComponents implements basetypes.ValueObject.
func (a Address) EqualityComponents() []any {
	return []any{a.street, a.city, a.postalCode}
}

// Equal reports whether both addresses carry the same attribute values.
func (a Address) Equal(other Address) bool {
	return basetypes.EqualValueObjects(a, other)
}
