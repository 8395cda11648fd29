package basetypes

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Entity is the base for domain objects that are distinguished by a
// persistent identity rather than by their attribute values.
//
// Concrete entity types embed Entity with a concrete identifier type:
//
//	type Order struct {
//		basetypes.Entity[uuid.UUID]
//		// attributes that do not participate in equality
//	}
//
// The identifier is assigned at construction and never changes afterwards.
// The ID type parameter carries the equality capability; any comparable type
// works (string, integer, uuid.UUID, ...).
type Entity[ID comparable] struct {
	id ID
}

// NewEntity creates an entity base with the given identifier.
func NewEntity[ID comparable](id ID) Entity[ID] {
	return Entity[ID]{id: id}
}

// ID returns the identifier this entity was constructed with.
func (e Entity[ID]) ID() ID {
	return e.id
}

// Identifiable is satisfied by every concrete type that embeds Entity.
type Identifiable[ID comparable] interface {
	ID() ID
}

// EqualEntities reports whether two entities are the same domain object:
// both non-nil, of the exact same concrete type, with equal identifiers.
//
// Entities of different concrete types are never equal, even with equal
// identifiers; a type mismatch yields false, never an error.
func EqualEntities[ID comparable](a, b Identifiable[ID]) bool {
	if a == nil || b == nil {
		return false
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return a.ID() == b.ID()
}

// HashEntity returns a hash derived from the entity's concrete type and its
// identifier. The result is stable across calls, so equal entities always
// hash to the same value.
func HashEntity[ID comparable](e Identifiable[ID]) uint64 {
	digest := xxhash.New()
	writeHashSegment(digest, reflect.TypeOf(e).String())
	writeHashSegment(digest, fmt.Sprintf("%v", e.ID()))

	return digest.Sum64()
}
