package storage

import (
	"reflect"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/sparse"
)

// DefaultReserve is the initial capacity given to new stores.
const DefaultReserve = 32

// Pool is the type-erased side of a component store. The World keeps one
// Pool per registered component type and sweeps all of them on entity
// destruction and copy.
type Pool interface {
	// Set exposes the sparse set backing the pool.
	Set() *sparse.Set
	Len() int
	Contains(e entity.Entity) bool
	// Remove erases the component of e. Absent components are a no-op.
	Remove(e entity.Entity) bool
	// Copy writes a copy of src's component onto dst. No-op when src has none.
	Copy(dst, src entity.Entity)
	ShrinkToFit()
	Clear()
}

// Store is a typed component store.
type Store[T any] interface {
	Pool

	// Read returns a pointer to e's component. The pointer is only valid
	// until the next structural change of the store.
	Read(e entity.Entity) *T
	// Write inserts or replaces e's component in place.
	Write(e entity.Entity, v T) *T
	// Emplace appends a component for e, which must not have one yet.
	Emplace(e entity.Entity, v T) *T
}

// New returns the store suited to T: a presence-only Tags store for zero
// sized types, a packed Array otherwise.
func New[T any](reserve int) Store[T] {
	if IsTag[T]() {
		return NewTags[T](reserve)
	}
	return NewArray[T](reserve)
}

// IsTag reports whether T carries no payload.
func IsTag[T any]() bool {
	return reflect.TypeFor[T]().Size() == 0
}
