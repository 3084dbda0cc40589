package ecs

import "github.com/zeusync/ecscore/internal/core/ecs/event"

// channel is the type-erased handle the World keeps per event type.
type channel interface {
	Clear()
}

// Bind registers handler for events of type E. Handlers run in bind order;
// the first one returning true stops delivery.
func Bind[E any](w *World, handler event.Handler[E]) event.Subscription {
	return channelOf[E](w, true).Bind(handler)
}

// Unbind removes a handler returned by Bind.
func Unbind[E any](w *World, id event.Subscription) bool {
	c := channelOf[E](w, false)
	return c != nil && c.Unbind(id)
}

// Emit delivers ev synchronously and reports whether a handler consumed it.
func Emit[E any](w *World, ev E) bool {
	c := channelOf[E](w, false)
	return c != nil && c.Emit(ev)
}

// ClearEventChannels drops every bound handler. Subscriptions issued before
// the call no longer unbind anything.
func (w *World) ClearEventChannels() {
	for _, c := range w.channels {
		c.Clear()
	}
}

func channelOf[E any](w *World, create bool) *event.Channel[E] {
	key := KeyOf[E]()
	if c, ok := w.channels[key]; ok {
		return c.(*event.Channel[E])
	}
	if !create {
		return nil
	}
	c := event.NewChannel[E]()
	w.channels[key] = c
	return c
}
