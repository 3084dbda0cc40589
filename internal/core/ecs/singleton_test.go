package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ecscore/internal/core/ecs"
)

type Camera struct {
	FOV float32
}

type DamageEvent struct {
	Amount int
}

func TestSingletonIsLiveReference(t *testing.T) {
	w := ecs.NewWorld()
	ecs.AddSingleton(w, Camera{FOV: 60})

	require.True(t, ecs.HasSingleton[Camera](w))
	assert.Equal(t, float32(60), ecs.GetSingleton[Camera](w).FOV)

	ecs.GetSingleton[Camera](w).FOV = 90
	assert.Equal(t, float32(90), ecs.GetSingleton[Camera](w).FOV)
}

func TestSingletonIndependentOfEntities(t *testing.T) {
	w := ecs.NewWorld()
	e := w.MakeEntity()
	ecs.AddSingleton(w, Camera{FOV: 45})
	w.DestroyEntity(e)

	assert.Equal(t, float32(45), ecs.GetSingleton[Camera](w).FOV)
	assert.False(t, ecs.Contains[Camera](w, e))
}

func TestAddSingletonReplaces(t *testing.T) {
	w := ecs.NewWorld()
	first := ecs.AddSingleton(w, Camera{FOV: 10})
	second := ecs.AddSingleton(w, Camera{FOV: 20})

	assert.NotSame(t, first, second)
	assert.Same(t, second, ecs.GetSingleton[Camera](w))
}

func TestGetSingletonBeforeAddPanics(t *testing.T) {
	w := ecs.NewWorld()
	assert.False(t, ecs.HasSingleton[Camera](w))
	assert.PanicsWithError(t, "ecs: singleton not added: ecs_test.Camera", func() {
		ecs.GetSingleton[Camera](w)
	})
}

func TestEmitShortCircuits(t *testing.T) {
	w := ecs.NewWorld()
	h2Called := false
	ecs.Bind(w, func(DamageEvent) bool { return true })
	ecs.Bind(w, func(DamageEvent) bool { h2Called = true; return false })

	assert.True(t, ecs.Emit(w, DamageEvent{Amount: 5}))
	assert.False(t, h2Called)
}

func TestEmitRegistrationOrder(t *testing.T) {
	w := ecs.NewWorld()
	var order []int
	ecs.Bind(w, func(e DamageEvent) bool { order = append(order, 1); return false })
	sub := ecs.Bind(w, func(e DamageEvent) bool { order = append(order, 2); return false })
	ecs.Bind(w, func(e DamageEvent) bool { order = append(order, 3); return false })

	assert.False(t, ecs.Emit(w, DamageEvent{}))
	assert.Equal(t, []int{1, 2, 3}, order)

	require.True(t, ecs.Unbind[DamageEvent](w, sub))
	order = nil
	ecs.Emit(w, DamageEvent{})
	assert.Equal(t, []int{1, 3}, order)
}

func TestEmitWithoutHandlers(t *testing.T) {
	w := ecs.NewWorld()
	assert.False(t, ecs.Emit(w, DamageEvent{}))
	assert.False(t, ecs.Unbind[DamageEvent](w, "missing"))
}

func TestClearEventChannels(t *testing.T) {
	w := ecs.NewWorld()
	called := false
	ecs.Bind(w, func(DamageEvent) bool { called = true; return false })

	w.ClearEventChannels()
	ecs.Emit(w, DamageEvent{})
	assert.False(t, called)
}

func TestClearEventChannelsInvalidatesSubscriptions(t *testing.T) {
	w := ecs.NewWorld()
	stale := ecs.Bind(w, func(DamageEvent) bool { return true })
	w.ClearEventChannels()

	assert.False(t, ecs.Unbind[DamageEvent](w, stale))

	total := 0
	fresh := ecs.Bind(w, func(e DamageEvent) bool { total += e.Amount; return false })
	ecs.Emit(w, DamageEvent{Amount: 4})
	assert.Equal(t, 4, total)
	assert.True(t, ecs.Unbind[DamageEvent](w, fresh))
}

func TestEventTypesAreIsolated(t *testing.T) {
	type HealEvent struct{ Amount int }
	w := ecs.NewWorld()
	healed := 0
	ecs.Bind(w, func(e HealEvent) bool { healed += e.Amount; return false })

	ecs.Emit(w, DamageEvent{Amount: 3})
	ecs.Emit(w, HealEvent{Amount: 2})
	assert.Equal(t, 2, healed)
}
