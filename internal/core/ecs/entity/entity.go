package entity

import "fmt"

// Entity is an opaque handle made of an index (low bits) and a version (high bits).
// The version changes every time an index is recycled, so a stale handle never
// compares equal to the entity that reuses its slot.
type Entity uint32

const (
	IndexBits   = 20
	VersionBits = 12

	IndexMask   uint32 = 1<<IndexBits - 1
	VersionMask uint32 = 1<<VersionBits - 1

	// MaxIndex is the largest index that can be issued.
	MaxIndex = IndexMask
)

// Null is never issued as a live entity.
const Null Entity = 0

// ID builds an entity from an index and a version. Bits outside of the
// respective masks are discarded, which makes version wraparound implicit.
func ID(index, version uint32) Entity {
	return Entity(index&IndexMask | (version&VersionMask)<<IndexBits)
}

// Index returns the index part of e.
func Index(e Entity) uint32 {
	return uint32(e) & IndexMask
}

// Version returns the version part of e.
func Version(e Entity) uint32 {
	return uint32(e) >> IndexBits
}

func (e Entity) Index() uint32 {
	return Index(e)
}

func (e Entity) Version() uint32 {
	return Version(e)
}

// IsNull reports whether e is the reserved null entity.
func (e Entity) IsNull() bool {
	return e == Null
}

// Next returns the handle that replaces e when its index is recycled.
func (e Entity) Next() Entity {
	return ID(Index(e), Version(e)+1)
}

func (e Entity) String() string {
	if e.IsNull() {
		return "Entity(null)"
	}
	return fmt.Sprintf("Entity(%d:%d)", Index(e), Version(e))
}
