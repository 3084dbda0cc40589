package sparse

import (
	"slices"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
)

const (
	// PageSize is the number of entity indices covered by one sparse page.
	PageSize = 4096
	pageMask = PageSize - 1

	// Null marks an empty slot in the sparse table.
	Null = ^uint32(0)
)

// Set maps entity handles to positions in a packed dense array.
// Sparse pages are allocated lazily, so high entity indices only cost the
// page they land in.
type Set struct {
	sparse [][]uint32
	dense  []entity.Entity
}

// New returns a set with room for reserve dense entries.
func New(reserve int) *Set {
	return &Set{dense: make([]entity.Entity, 0, max(reserve, 0))}
}

// Len returns the number of entities in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Dense returns the packed entity array. The slice aliases internal storage
// and is only valid until the next structural change.
func (s *Set) Dense() []entity.Entity {
	return s.dense
}

// Contains reports whether e is in the set.
func (s *Set) Contains(e entity.Entity) bool {
	pos, ok := s.Index(e)
	return ok && s.dense[pos] == e
}

// Index returns the dense position of e.
func (s *Set) Index(e entity.Entity) (uint32, bool) {
	page, offset := locate(e)
	if page >= len(s.sparse) || s.sparse[page] == nil {
		return Null, false
	}
	pos := s.sparse[page][offset]
	if pos == Null || int(pos) >= len(s.dense) || s.dense[pos] != e {
		return Null, false
	}
	return pos, true
}

// Emplace appends e to the dense array. e must not already be present.
func (s *Set) Emplace(e entity.Entity) uint32 {
	pos := uint32(len(s.dense))
	*s.slot(e) = pos
	s.dense = append(s.dense, e)
	return pos
}

// Remove swaps e with the last dense entry and shrinks the array by one.
// It returns the dense position e occupied, or false if e was absent.
func (s *Set) Remove(e entity.Entity) (uint32, bool) {
	pos, ok := s.Index(e)
	if !ok {
		return Null, false
	}

	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[pos] = moved
	s.dense = s.dense[:last]

	*s.slot(moved) = pos
	*s.slot(e) = Null
	return pos, true
}

// Reserve grows the dense capacity to at least n entries.
func (s *Set) Reserve(n int) {
	if n > len(s.dense) {
		s.dense = slices.Grow(s.dense, n-len(s.dense))
	}
}

func (s *Set) Clear() {
	s.sparse = nil
	s.dense = s.dense[:0]
}

// ShrinkToFit releases unused dense capacity and, when empty, every page.
func (s *Set) ShrinkToFit() {
	if len(s.dense) == 0 {
		s.sparse = nil
	}
	s.dense = slices.Clip(s.dense)
}

// slot returns the sparse entry for e, allocating its page if needed.
func (s *Set) slot(e entity.Entity) *uint32 {
	page, offset := locate(e)
	if page >= len(s.sparse) {
		s.sparse = append(s.sparse, make([][]uint32, page+1-len(s.sparse))...)
	}
	if s.sparse[page] == nil {
		p := make([]uint32, PageSize)
		for i := range p {
			p[i] = Null
		}
		s.sparse[page] = p
	}
	return &s.sparse[page][offset]
}

func locate(e entity.Entity) (page int, offset int) {
	idx := entity.Index(e)
	return int(idx / PageSize), int(idx & pageMask)
}
