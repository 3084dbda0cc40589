package sparse

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
)

func TestEmplaceContains(t *testing.T) {
	s := New(8)
	a := entity.ID(1, 0)
	b := entity.ID(2, 0)

	s.Emplace(a)
	s.Emplace(b)

	assert.True(t, s.Contains(a))
	assert.True(t, s.Contains(b))
	assert.False(t, s.Contains(entity.ID(3, 0)))
	assert.Equal(t, 2, s.Len())

	pos, ok := s.Index(b)
	require.True(t, ok)
	assert.Equal(t, uint32(1), pos)
}

func TestContainsRejectsStaleVersion(t *testing.T) {
	s := New(0)
	current := entity.ID(7, 3)
	s.Emplace(current)

	assert.True(t, s.Contains(current))
	assert.False(t, s.Contains(entity.ID(7, 2)))
}

func TestRemoveLocatesThroughSparseTable(t *testing.T) {
	s := New(0)
	// Entity values far larger than the dense length: removal must resolve
	// the dense slot through the sparse table, not the raw entity value.
	ents := []entity.Entity{entity.ID(900, 1), entity.ID(5000, 2), entity.ID(12, 0), entity.ID(70000, 4)}
	for _, e := range ents {
		s.Emplace(e)
	}

	pos, ok := s.Remove(ents[1])
	require.True(t, ok)
	assert.Equal(t, uint32(1), pos)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Contains(ents[1]))

	// The last entity moved into the vacated slot.
	assert.Equal(t, ents[3], s.Dense()[1])
	moved, ok := s.Index(ents[3])
	require.True(t, ok)
	assert.Equal(t, uint32(1), moved)

	for _, e := range []entity.Entity{ents[0], ents[2], ents[3]} {
		assert.True(t, s.Contains(e), e.String())
	}
}

func TestRemoveLastAndAbsent(t *testing.T) {
	s := New(0)
	a := entity.ID(1, 0)
	s.Emplace(a)

	_, ok := s.Remove(a)
	require.True(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(a))

	_, ok = s.Remove(a)
	assert.False(t, ok)
	_, ok = s.Remove(entity.ID(99999, 0))
	assert.False(t, ok)
}

func TestPagesAllocatedLazily(t *testing.T) {
	s := New(0)
	s.Emplace(entity.ID(PageSize*3+1, 0))

	require.Len(t, s.sparse, 4)
	assert.Nil(t, s.sparse[0])
	assert.Nil(t, s.sparse[1])
	assert.Nil(t, s.sparse[2])
	assert.NotNil(t, s.sparse[3])
	assert.False(t, s.Contains(entity.ID(5, 0)))
}

func TestRandomOperationsKeepSetPacked(t *testing.T) {
	s := New(0)
	rng := rand.New(rand.NewPCG(1, 2))
	present := map[entity.Entity]bool{}

	for i := 0; i < 5000; i++ {
		e := entity.ID(uint32(rng.IntN(20000))+1, 0)
		if present[e] {
			_, ok := s.Remove(e)
			require.True(t, ok)
			delete(present, e)
		} else {
			s.Emplace(e)
			present[e] = true
		}
	}

	require.Equal(t, len(present), s.Len())
	seen := map[entity.Entity]bool{}
	for i, e := range s.Dense() {
		require.False(t, seen[e], "duplicate %s", e)
		seen[e] = true
		pos, ok := s.Index(e)
		require.True(t, ok)
		require.Equal(t, uint32(i), pos)
	}
	for e := range present {
		require.True(t, s.Contains(e))
	}
}

func TestClearAndShrink(t *testing.T) {
	s := New(64)
	s.Emplace(entity.ID(1, 0))
	s.ShrinkToFit()
	assert.Equal(t, 1, cap(s.Dense()))
	assert.NotNil(t, s.sparse)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(entity.ID(1, 0)))

	s.ShrinkToFit()
	assert.Nil(t, s.sparse)

	s.Reserve(10)
	assert.GreaterOrEqual(t, cap(s.Dense()), 10)
}
