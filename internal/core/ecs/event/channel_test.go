package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type damage struct {
	Amount int
}

func TestEmitInBindOrder(t *testing.T) {
	c := NewChannel[damage]()
	var calls []string
	c.Bind(func(d damage) bool { calls = append(calls, "first"); return false })
	c.Bind(func(d damage) bool { calls = append(calls, "second"); return false })
	c.Bind(func(d damage) bool { calls = append(calls, "third"); return false })

	handled := c.Emit(damage{Amount: 3})
	assert.False(t, handled)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestHandledStopsPropagation(t *testing.T) {
	c := NewChannel[damage]()
	secondCalled := false
	c.Bind(func(d damage) bool { return d.Amount > 0 })
	c.Bind(func(damage) bool { secondCalled = true; return false })

	require.True(t, c.Emit(damage{Amount: 1}))
	assert.False(t, secondCalled)

	require.False(t, c.Emit(damage{Amount: 0}))
	assert.True(t, secondCalled)
}

func TestUnbindKeepsOrder(t *testing.T) {
	c := NewChannel[damage]()
	var calls []int
	c.Bind(func(damage) bool { calls = append(calls, 1); return false })
	middle := c.Bind(func(damage) bool { calls = append(calls, 2); return false })
	c.Bind(func(damage) bool { calls = append(calls, 3); return false })

	require.True(t, c.Unbind(middle))
	assert.False(t, c.Unbind(middle))
	assert.Equal(t, 2, c.Len())

	c.Emit(damage{})
	assert.Equal(t, []int{1, 3}, calls)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Emit(damage{}))
}

func TestHandlerUnbindsItselfDuringEmit(t *testing.T) {
	c := NewChannel[damage]()
	var calls []string
	var once Subscription
	once = c.Bind(func(damage) bool {
		calls = append(calls, "once")
		require.True(t, c.Unbind(once))
		return false
	})
	c.Bind(func(damage) bool { calls = append(calls, "second"); return false })
	c.Bind(func(damage) bool { calls = append(calls, "third"); return false })

	require.NotPanics(t, func() { c.Emit(damage{Amount: 1}) })
	assert.Equal(t, []string{"once", "second", "third"}, calls)
	assert.Equal(t, 2, c.Len())

	calls = nil
	c.Emit(damage{Amount: 1})
	assert.Equal(t, []string{"second", "third"}, calls)
}

func TestUnbindLaterHandlerDuringEmitAppliesNextTime(t *testing.T) {
	c := NewChannel[damage]()
	var calls []string
	var last Subscription
	c.Bind(func(damage) bool {
		calls = append(calls, "first")
		c.Unbind(last)
		return false
	})
	last = c.Bind(func(damage) bool { calls = append(calls, "last"); return false })

	c.Emit(damage{})
	c.Emit(damage{})
	assert.Equal(t, []string{"first", "last", "first"}, calls)
}
