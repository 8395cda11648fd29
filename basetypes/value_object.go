package basetypes

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ValueObject is implemented by domain objects that have no identity of their
// own: two value objects are the same exactly when their attributes are.
//
// Implementers return the ordered sequence of attribute values that matter
// for equality. The order is significant: objects whose components hold the
// same values in a different order compare unequal. Components may themselves
// be value objects; comparison then recurses. Value objects are immutable by
// convention.
type ValueObject interface {
	// EqualityComponents returns the ordered attribute values that define
	// this object's equality and hash.
	EqualityComponents() []any
}

// EqualValueObjects reports whether two value objects are equal: both
// non-nil, of the exact same concrete type, with component sequences that
// are element-wise equal in order.
//
// A type mismatch yields false, never an error.
func EqualValueObjects(a, b ValueObject) bool {
	if a == nil || b == nil {
		return false
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	componentsOfA := a.EqualityComponents()
	componentsOfB := b.EqualityComponents()

	if len(componentsOfA) != len(componentsOfB) {
		return false
	}

	for idx := range componentsOfA {
		if !equalComponent(componentsOfA[idx], componentsOfB[idx]) {
			return false
		}
	}

	return true
}

func equalComponent(a, b any) bool {
	nestedA, aIsValueObject := a.(ValueObject)
	nestedB, bIsValueObject := b.(ValueObject)

	switch {
	case aIsValueObject != bIsValueObject:
		return false
	case aIsValueObject:
		return EqualValueObjects(nestedA, nestedB)
	case a == nil || b == nil:
		return a == nil && b == nil
	case reflect.TypeOf(a) != reflect.TypeOf(b):
		return false
	case reflect.TypeOf(a).Comparable():
		return a == b
	default:
		return reflect.DeepEqual(a, b)
	}
}

// HashValueObject returns an order-sensitive hash over the value object's
// component sequence, seeded with its concrete type. Equal value objects hash
// to the same value; the result is stable across calls.
func HashValueObject(v ValueObject) uint64 {
	if v == nil {
		return 0
	}

	digest := xxhash.New()
	writeHashSegment(digest, reflect.TypeOf(v).String())

	for _, component := range v.EqualityComponents() {
		writeComponent(digest, component)
	}

	return digest.Sum64()
}

func writeComponent(digest *xxhash.Digest, component any) {
	if nested, ok := component.(ValueObject); ok {
		writeHashSegment(digest, fmt.Sprintf("vo:%d", HashValueObject(nested)))
		return
	}

	writeHashSegment(digest, fmt.Sprintf("%v", component))
}
