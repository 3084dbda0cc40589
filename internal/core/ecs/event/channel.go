package event

import (
	"slices"

	"github.com/google/uuid"
)

// Handler receives an event. Returning true marks the event as handled and
// stops delivery to handlers bound after it.
type Handler[E any] func(event E) bool

// Subscription identifies a bound handler.
type Subscription string

type binding[E any] struct {
	id      Subscription
	handler Handler[E]
}

// Channel delivers events of a single type synchronously, in bind order.
// It is not safe for concurrent use.
type Channel[E any] struct {
	bindings []binding[E]
}

func NewChannel[E any]() *Channel[E] {
	return &Channel[E]{}
}

// Bind appends handler to the delivery chain.
func (c *Channel[E]) Bind(handler Handler[E]) Subscription {
	id := Subscription(uuid.NewString())
	c.bindings = append(c.bindings, binding[E]{id: id, handler: handler})
	return id
}

// Unbind removes the handler registered under id, keeping the order of the
// remaining handlers. It reports whether a handler was removed. Handlers may
// unbind during Emit; the change applies from the next Emit.
func (c *Channel[E]) Unbind(id Subscription) bool {
	i := slices.IndexFunc(c.bindings, func(b binding[E]) bool { return b.id == id })
	if i < 0 {
		return false
	}
	// A fresh array leaves the one an in-flight Emit ranges over untouched.
	c.bindings = slices.Concat(c.bindings[:i:i], c.bindings[i+1:])
	return true
}

// Emit calls every handler bound when it starts, until one reports the
// event as handled. It returns whether the event was handled.
func (c *Channel[E]) Emit(event E) bool {
	for _, b := range c.bindings {
		if b.handler(event) {
			return true
		}
	}
	return false
}

// Len returns the number of bound handlers.
func (c *Channel[E]) Len() int {
	return len(c.bindings)
}

func (c *Channel[E]) Clear() {
	c.bindings = nil
}
