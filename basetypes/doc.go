// Package basetypes provides foundational base types for modeling domain
// objects: an identity-bearing entity base, a value-equality base, a typed
// enumeration base with a compute-once member registry, a unit/void marker,
// and a structured error value.
//
// Key types:
//   - Entity: base for objects distinguished by identity, not attributes
//   - ValueObject: contract for objects distinguished by their attributes
//   - Enumeration: base for fixed, named sets of (value, display name) members
//   - Unit: the "no meaningful result" value
//   - Error: an immutable (code, message) failure value, returned not panicked
//
// Common usage pattern:
//
//	type Order struct {
//		basetypes.Entity[uuid.UUID]
//		status OrderStatus
//	}
//
//	type OrderStatus struct {
//		basetypes.Enumeration
//	}
//
//	var Submitted = OrderStatus{basetypes.NewEnumeration(1, "Submitted")}
//	var Shipped = OrderStatus{basetypes.NewEnumeration(2, "Shipped")}
//
//	func (OrderStatus) Declare() []OrderStatus {
//		return []OrderStatus{Submitted, Shipped}
//	}
//
//	status, err := basetypes.MemberByValue[OrderStatus](2)
//	if err != nil {
//		// handle error
//	}
//
// All types are immutable after construction; the only shared state is the
// enumeration member cache, which is populated once per type and safe for
// concurrent use.
package basetypes
