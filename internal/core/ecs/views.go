package ecs

import (
	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/sparse"
	"github.com/zeusync/ecscore/internal/core/ecs/storage"
)

// View1 iterates entities that have an A. Views hold no data of their own
// and must not outlive the World, nor a Remove or DestroyEntity that
// reorders their pools.
type View1[A any] struct {
	query
	a storage.Store[A]
}

func NewView1[A any](w *World, filters ...Filter) *View1[A] {
	a := Assure[A](w)
	return &View1[A]{
		query: newQuery(w, []*sparse.Set{a.Set()}, filters),
		a:     a,
	}
}

func (v *View1[A]) Each(fn func(*A)) {
	it := v.Iter()
	for it.Next() {
		fn(v.a.Read(it.Entity()))
	}
}

func (v *View1[A]) EachEntity(fn func(entity.Entity, *A)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(e, v.a.Read(e))
	}
}

// View2 iterates entities that have both an A and a B.
//
//	ecs.NewView2[Position, Velocity](w, ecs.With[ecs.ActiveTag]()).Each(func(p *Position, v *Velocity) {
//		p.X += v.X * dt
//	})
type View2[A, B any] struct {
	query
	a storage.Store[A]
	b storage.Store[B]
}

func NewView2[A, B any](w *World, filters ...Filter) *View2[A, B] {
	a, b := Assure[A](w), Assure[B](w)
	return &View2[A, B]{
		query: newQuery(w, []*sparse.Set{a.Set(), b.Set()}, filters),
		a:     a,
		b:     b,
	}
}

func (v *View2[A, B]) Each(fn func(*A, *B)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(v.a.Read(e), v.b.Read(e))
	}
}

func (v *View2[A, B]) EachEntity(fn func(entity.Entity, *A, *B)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(e, v.a.Read(e), v.b.Read(e))
	}
}

type View3[A, B, C any] struct {
	query
	a storage.Store[A]
	b storage.Store[B]
	c storage.Store[C]
}

func NewView3[A, B, C any](w *World, filters ...Filter) *View3[A, B, C] {
	a, b, c := Assure[A](w), Assure[B](w), Assure[C](w)
	return &View3[A, B, C]{
		query: newQuery(w, []*sparse.Set{a.Set(), b.Set(), c.Set()}, filters),
		a:     a,
		b:     b,
		c:     c,
	}
}

func (v *View3[A, B, C]) Each(fn func(*A, *B, *C)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(v.a.Read(e), v.b.Read(e), v.c.Read(e))
	}
}

func (v *View3[A, B, C]) EachEntity(fn func(entity.Entity, *A, *B, *C)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(e, v.a.Read(e), v.b.Read(e), v.c.Read(e))
	}
}

type View4[A, B, C, D any] struct {
	query
	a storage.Store[A]
	b storage.Store[B]
	c storage.Store[C]
	d storage.Store[D]
}

func NewView4[A, B, C, D any](w *World, filters ...Filter) *View4[A, B, C, D] {
	a, b, c, d := Assure[A](w), Assure[B](w), Assure[C](w), Assure[D](w)
	return &View4[A, B, C, D]{
		query: newQuery(w, []*sparse.Set{a.Set(), b.Set(), c.Set(), d.Set()}, filters),
		a:     a,
		b:     b,
		c:     c,
		d:     d,
	}
}

func (v *View4[A, B, C, D]) Each(fn func(*A, *B, *C, *D)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(v.a.Read(e), v.b.Read(e), v.c.Read(e), v.d.Read(e))
	}
}

func (v *View4[A, B, C, D]) EachEntity(fn func(entity.Entity, *A, *B, *C, *D)) {
	it := v.Iter()
	for it.Next() {
		e := it.Entity()
		fn(e, v.a.Read(e), v.b.Read(e), v.c.Read(e), v.d.Read(e))
	}
}
