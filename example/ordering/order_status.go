package ordering

import (
	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

// OrderStatus is the lifecycle state of an Order.
type OrderStatus struct {
	basetypes.Enumeration
}

var (
	Submitted = OrderStatus{basetypes.NewEnumeration(1, "Submitted")}
	Paid      = OrderStatus{basetypes.NewEnumeration(2, "Paid")}
	Shipped   = OrderStatus{basetypes.NewEnumeration(3, "Shipped")}
	Delivered = OrderStatus{basetypes.NewEnumeration(4, "Delivered")}
	Cancelled = OrderStatus{basetypes.NewEnumeration(5, "Cancelled")}

	// Completed is a value alias of Delivered kept for callers that still use
	// the old wording; the two compare equal.
	Completed = OrderStatus{basetypes.NewEnumeration(4, "Completed")}
)

// Declare lists every OrderStatus member. Delivered precedes its alias, so
// value lookups resolve to Delivered.
func (OrderStatus) Declare() []OrderStatus {
	return []OrderStatus{Submitted, Paid, Shipped, Delivered, Completed, Cancelled}
}

// Is reports whether both statuses carry the same value.
func (s OrderStatus) Is(other OrderStatus) bool {
	return s.Equal(other.Enumeration)
}
