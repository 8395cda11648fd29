package basetypes

// Unit is the value of a computation that completes without producing a
// meaningful result. It lets result-shaped signatures return "nothing"
// without resorting to nil.
type Unit struct{}

// UnitValue is the canonical Unit instance.
var UnitValue = Unit{}

// Equal always reports true: every Unit is the same value.
func (Unit) Equal(Unit) bool {
	return true
}

// String implements fmt.Stringer.
func (Unit) String() string {
	return "()"
}
