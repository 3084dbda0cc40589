package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/ecs/entity"
)

func TestMovementStepOnce(t *testing.T) {
	w := ecs.NewWorld()
	e1 := w.MakeEntity()
	ecs.Pack(w, e1, Position{0, 0, 0})
	ecs.Pack(w, e1, Velocity{1, 0, 0})

	const dt = float32(1)
	calls := 0
	ecs.NewView2[Position, Velocity](w).Each(func(p *Position, v *Velocity) {
		calls++
		p.X += v.X * dt
		p.Y += v.Y * dt
		p.Z += v.Z * dt
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, Position{1, 0, 0}, *ecs.Unpack[Position](w, e1))
}

func TestTaggedSubset(t *testing.T) {
	type Selected struct{}
	w := ecs.NewWorld()
	tagged := map[entity.Entity]bool{}
	for i := 0; i < 1000; i++ {
		e := w.MakeInactiveEntity()
		if i%10 < 3 {
			w.SetActive(e, true)
			ecs.Pack(w, e, Selected{})
			tagged[e] = true
		}
	}

	visited := 0
	for e := range ecs.NewView1[ecs.ActiveTag](w).Entities() {
		require.True(t, tagged[e])
		visited++
	}
	assert.Equal(t, 300, visited)
	assert.Equal(t, 300, ecs.Count[ecs.ActiveTag](w))
	assert.Equal(t, 300, ecs.NewView2[ecs.ActiveTag, Selected](w).Count())
}

func TestViewAfterChurnMatchesContains(t *testing.T) {
	w := ecs.NewWorld()
	var ents []entity.Entity
	for i := 0; i < 300; i++ {
		e := w.MakeEntity()
		ents = append(ents, e)
		ecs.Pack2(w, e, Position{X: float32(i)}, Velocity{})
	}
	for i, e := range ents {
		switch i % 5 {
		case 0:
			w.DestroyEntity(e)
		case 1:
			ecs.Remove[Velocity](w, e)
		case 2:
			ecs.Remove[Position](w, e)
		}
	}
	for i := 0; i < 40; i++ {
		e := w.MakeEntity()
		ents = append(ents, e)
		ecs.Pack2(w, e, Velocity{}, Position{})
	}

	want := 0
	for _, e := range ents {
		if w.IsAlive(e) && ecs.Contains2[Position, Velocity](w, e) {
			want++
		}
	}

	got := map[entity.Entity]bool{}
	ecs.NewView2[Position, Velocity](w).EachEntity(func(e entity.Entity, _ *Position, _ *Velocity) {
		require.False(t, got[e])
		got[e] = true
		require.True(t, ecs.Contains2[Position, Velocity](w, e))
	})
	assert.Len(t, got, want)
	assert.Equal(t, 300/5*2+40, want)
}
