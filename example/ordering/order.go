package ordering

import (
	"github.com/google/uuid"

	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

// Order is an entity: two orders are the same order exactly when they carry
// the same identifier, regardless of their attribute values.
//
// State transitions return (Unit, error) so that callers chaining operations
// always receive a value; violations are reported as basetypes.Error values.
type Order struct {
	basetypes.Entity[uuid.UUID]
	status          OrderStatus
	shippingAddress Address
	lines           []OrderLine
}

// NewOrder creates a submitted order with the given identifier, shipping
// address and lines.
func NewOrder(id uuid.UUID, shippingAddress Address, lines ...OrderLine) *Order {
	return &Order{
		Entity:          basetypes.NewEntity(id),
		status:          Submitted,
		shippingAddress: shippingAddress,
		lines:           lines,
	}
}

// Status returns the current lifecycle state.
func (o *Order) Status() OrderStatus {
	return o.status
}

// ShippingAddress returns where the order ships to.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Lines returns the order's positions in the order they were added.
func (o *Order) Lines() []OrderLine {
	return o.lines
}

// Pay marks a submitted order as paid.
func (o *Order) Pay() (basetypes.Unit, error) {
	if !o.status.Is(Submitted) {
		return basetypes.UnitValue, basetypes.NewError("order/not-payable", "only a submitted order can be paid")
	}

	o.status = Paid

	return basetypes.UnitValue, nil
}

// Ship marks a paid order as shipped.
func (o *Order) Ship() (basetypes.Unit, error) {
	if !o.status.Is(Paid) {
		return basetypes.UnitValue, basetypes.NewError("order/not-shippable", "only a paid order can be shipped")
	}

	o.status = Shipped

	return basetypes.UnitValue, nil
}

// Deliver marks a shipped order as delivered.
func (o *Order) Deliver() (basetypes.Unit, error) {
	if !o.status.Is(Shipped) {
		return basetypes.UnitValue, basetypes.NewError("order/not-deliverable", "only a shipped order can be delivered")
	}

	o.status = Delivered

	return basetypes.UnitValue, nil
}

// Cancel cancels an order that has not been shipped yet.
func (o *Order) Cancel() (basetypes.Unit, error) {
	if o.status.Is(Shipped) || o.status.Is(Delivered) {
		return basetypes.UnitValue, basetypes.NewError("order/not-cancellable", "a shipped order can no longer be cancelled")
	}

	o.status = Cancelled

	return basetypes.UnitValue, nil
}
