package basetypes

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// ErrNoSuchMember is wrapped by the enumeration lookups when no member
// matches the requested value or display name.
var ErrNoSuchMember = errors.New("no enumeration member matches")

// Enumeration is the base for rich enum types: a fixed, named set of
// (value, display name) members, a richer alternative to bare integer
// constants.
//
// Equality and ordering are defined purely on the value; the display name is
// informational only. Two members with equal values and different display
// names compare equal, which permits declaring aliases for the same value.
type Enumeration struct {
	value       int
	displayName string
}

// NewEnumeration creates an enumeration base with the given value and
// display name. It is meant to be called from the member declarations of a
// concrete enumeration type, not from general application code.
func NewEnumeration(value int, displayName string) Enumeration {
	return Enumeration{value: value, displayName: displayName}
}

// Value returns the member's integral value.
func (e Enumeration) Value() int {
	return e.value
}

// DisplayName returns the member's display name.
func (e Enumeration) DisplayName() string {
	return e.displayName
}

// String implements fmt.Stringer, returning the display name.
func (e Enumeration) String() string {
	return e.displayName
}

// Equal reports whether both members carry the same value.
func (e Enumeration) Equal(other Enumeration) bool {
	return e.value == other.value
}

// Compare orders members by value, returning -1, 0 or +1.
func (e Enumeration) Compare(other Enumeration) int {
	return cmp.Compare(e.value, other.value)
}

// Member constrains the registry functions to concrete enumeration types.
//
// A concrete type embeds Enumeration (which supplies Value and DisplayName)
// and declares its full member set once:
//
//	type OrderStatus struct {
//		basetypes.Enumeration
//	}
//
//	var (
//		Submitted = OrderStatus{basetypes.NewEnumeration(1, "Submitted")}
//		Shipped   = OrderStatus{basetypes.NewEnumeration(2, "Shipped")}
//	)
//
//	func (OrderStatus) Declare() []OrderStatus {
//		return []OrderStatus{Submitted, Shipped}
//	}
//
// Concrete enumeration types must be value types: the registry invokes
// Declare on the zero value of T.
type Member[T any] interface {
	// Declare returns the complete, ordered member set of T. It is invoked
	// at most once per process; the declaration order decides ties between
	// members sharing a value.
	Declare() []T

	// Value returns the member's integral value.
	Value() int

	// DisplayName returns the member's display name.
	DisplayName() string
}

// memberSets maps a concrete enumeration type to its declared member slice.
// The reflect.Type is used purely as an identity key, never introspected.
// Each entry is published once with a single-winner LoadOrStore and is
// read-only afterwards.
var memberSets sync.Map

// Members returns all declared members of T in declaration order.
//
// The first call per type invokes Declare and caches the result for the
// lifetime of the process; members declared after that first call are never
// observed. Concurrent first calls are safe and all observe the same set.
// The returned slice is a copy and may be modified freely by the caller.
func Members[T Member[T]]() []T {
	key := reflect.TypeFor[T]()

	if cached, ok := memberSets.Load(key); ok {
		return slices.Clone(cached.([]T))
	}

	var declarer T
	cached, _ := memberSets.LoadOrStore(key, declarer.Declare())

	return slices.Clone(cached.([]T))
}

// MemberByValue returns the member of T carrying the given value.
//
// When several members share the value, the first one in declaration order
// wins. When none matches, the zero T is returned together with an error
// wrapping ErrNoSuchMember.
func MemberByValue[T Member[T]](value int) (T, error) {
	for _, member := range Members[T]() {
		if member.Value() == value {
			return member, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("%w: value %d in %s", ErrNoSuchMember, value, reflect.TypeFor[T]())
}

// MemberByDisplayName returns the member of T whose display name matches
// exactly; the match is case-sensitive.
//
// When several members share the display name, the first one in declaration
// order wins. When none matches, the zero T is returned together with an
// error wrapping ErrNoSuchMember.
func MemberByDisplayName[T Member[T]](displayName string) (T, error) {
	for _, member := range Members[T]() {
		if member.DisplayName() == displayName {
			return member, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("%w: display name %q in %s", ErrNoSuchMember, displayName, reflect.TypeFor[T]())
}
