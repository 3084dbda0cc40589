package ecs

import "fmt"

// AddSingleton stores the one World-wide instance of T, replacing any
// previous one, and returns a pointer to it.
//
//	cam := ecs.AddSingleton(w, Camera{FOV: 60})
func AddSingleton[T any](w *World, initial T) *T {
	p := new(T)
	*p = initial
	w.singletons[KeyOf[T]()] = p
	return p
}

// GetSingleton returns the live instance added by AddSingleton. Changes
// through the pointer are seen by every later caller. It panics if T was
// never added.
func GetSingleton[T any](w *World) *T {
	p, ok := w.singletons[KeyOf[T]()]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrMissingSingleton, TypeName(KeyOf[T]())))
	}
	return p.(*T)
}

func HasSingleton[T any](w *World) bool {
	_, ok := w.singletons[KeyOf[T]()]
	return ok
}
