package ecs

import (
	"iter"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/sparse"
)

// Filter adds a containment requirement to a view without adding the type
// to the Each callback. Use it for tag components.
type Filter func(w *World) *sparse.Set

// With requires entities in the view to also have a T.
func With[T any]() Filter {
	return func(w *World) *sparse.Set {
		return Assure[T](w).Set()
	}
}

// query is the part of a view shared by every arity: the primary set that
// drives iteration and the sets every visited entity must also be in.
type query struct {
	primary *sparse.Set
	others  []*sparse.Set
}

func newQuery(w *World, sets []*sparse.Set, filters []Filter) query {
	for _, f := range filters {
		sets = append(sets, f(w))
	}

	primary := 0
	for i, s := range sets {
		if s.Len() < sets[primary].Len() {
			primary = i
		}
	}

	q := query{primary: sets[primary], others: make([]*sparse.Set, 0, len(sets)-1)}
	for i, s := range sets {
		if i != primary && s != q.primary {
			q.others = append(q.others, s)
		}
	}
	return q
}

func (q *query) valid(e entity.Entity) bool {
	for _, s := range q.others {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Iter returns an iterator positioned before the first match.
func (q *query) Iter() *Iterator {
	return &Iterator{q: q, pos: q.primary.Len()}
}

// Entities yields every matching entity in reverse dense order of the
// primary set.
func (q *query) Entities() iter.Seq[entity.Entity] {
	return func(yield func(entity.Entity) bool) {
		it := q.Iter()
		for it.Next() {
			if !yield(it.Entity()) {
				return
			}
		}
	}
}

// Count walks the view and returns the number of matches.
func (q *query) Count() int {
	n := 0
	it := q.Iter()
	for it.Next() {
		n++
	}
	return n
}

// Iterator walks the primary set from its last dense slot toward the first,
// skipping entities missing from any other set. Membership is checked again
// on every step. Walking backwards means removing the current entity only
// moves an already visited entity into its slot.
type Iterator struct {
	q   *query
	pos int
}

// Next moves to the next match and reports whether there is one.
func (it *Iterator) Next() bool {
	dense := it.q.primary.Dense()
	if it.pos > len(dense) {
		it.pos = len(dense)
	}
	for it.pos--; it.pos >= 0; it.pos-- {
		if it.q.valid(dense[it.pos]) {
			return true
		}
	}
	it.pos = -1
	return false
}

// Prev moves back to the previous match and reports whether there is one.
func (it *Iterator) Prev() bool {
	dense := it.q.primary.Dense()
	for it.pos++; it.pos < len(dense); it.pos++ {
		if it.q.valid(dense[it.pos]) {
			return true
		}
	}
	it.pos = len(dense)
	return false
}

// Entity returns the current match. Only valid after Next or Prev returned
// true.
func (it *Iterator) Entity() entity.Entity {
	return it.q.primary.Dense()[it.pos]
}
