package ecs

import (
	"fmt"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/storage"
	"github.com/zeusync/ecscore/internal/core/observability/log"
)

// Assure returns the store for T, registering it on first use. Every other
// component function registers implicitly, so calling this is rarely needed.
func Assure[T any](w *World) storage.Store[T] {
	key := KeyOf[T]()
	if p, ok := w.pools[key]; ok {
		return p.(storage.Store[T])
	}

	s := storage.New[T](w.reserve)
	w.pools[key] = s
	w.poolOrder = append(w.poolOrder, s)
	w.logger.Debug("component type registered",
		log.String("type", TypeName(key)),
		log.Bool("tag", storage.IsTag[T]()),
	)
	return s
}

func lookup[T any](w *World) (storage.Store[T], bool) {
	p, ok := w.pools[KeyOf[T]()]
	if !ok {
		return nil, false
	}
	return p.(storage.Store[T]), true
}

// Pack attaches v to e, replacing any existing T in place. Replacing never
// moves other entities' components.
func Pack[T any](w *World, e entity.Entity, v T) *T {
	w.assertAlive(e)
	s := Assure[T](w)
	if !s.Contains(e) {
		return s.Emplace(e, v)
	}
	return s.Write(e, v)
}

func Pack2[A, B any](w *World, e entity.Entity, a A, b B) {
	Pack(w, e, a)
	Pack(w, e, b)
}

func Pack3[A, B, C any](w *World, e entity.Entity, a A, b B, c C) {
	Pack(w, e, a)
	Pack(w, e, b)
	Pack(w, e, c)
}

func Pack4[A, B, C, D any](w *World, e entity.Entity, a A, b B, c C, d D) {
	Pack(w, e, a)
	Pack(w, e, b)
	Pack(w, e, c)
	Pack(w, e, d)
}

// Unpack returns a pointer to e's T. The caller must know e is alive and
// has a T; the checks only exist in builds without the ecsrelease tag.
//
// The pointer stays valid until the next Remove of a T or until the T pool
// grows. Copy the value out if it has to outlive that:
//
//	v := *ecs.Unpack[Velocity](w, e)
//	ecs.Remove[Velocity](w, other)
//	v.X = 5
//	ecs.Pack(w, e, v)
func Unpack[T any](w *World, e entity.Entity) *T {
	w.assertAlive(e)
	s := Assure[T](w)
	if debugAssertions && !s.Contains(e) {
		panic(fmt.Errorf("%w: %s has no %s", ErrMissingComponent, e, TypeName(KeyOf[T]())))
	}
	return s.Read(e)
}

// TryUnpack is the checked variant of Unpack.
func TryUnpack[T any](w *World, e entity.Entity) (*T, bool) {
	s, ok := lookup[T](w)
	if !ok || !s.Contains(e) {
		return nil, false
	}
	return s.Read(e), true
}

// Contains reports whether e has a T. Unregistered types are never
// contained.
func Contains[T any](w *World, e entity.Entity) bool {
	s, ok := lookup[T](w)
	return ok && s.Contains(e)
}

func Contains2[A, B any](w *World, e entity.Entity) bool {
	return Contains[A](w, e) && Contains[B](w, e)
}

func Contains3[A, B, C any](w *World, e entity.Entity) bool {
	return Contains2[A, B](w, e) && Contains[C](w, e)
}

func Contains4[A, B, C, D any](w *World, e entity.Entity) bool {
	return Contains2[A, B](w, e) && Contains2[C, D](w, e)
}

// Remove detaches e's T. It returns false when there was nothing to remove.
func Remove[T any](w *World, e entity.Entity) bool {
	s, ok := lookup[T](w)
	if !ok {
		return false
	}
	return s.Remove(e)
}

// Count returns how many entities have a T.
func Count[T any](w *World) int {
	s, ok := lookup[T](w)
	if !ok {
		return 0
	}
	return s.Len()
}
