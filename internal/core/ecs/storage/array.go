package storage

import (
	"slices"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/sparse"
)

var _ Store[struct{ X int }] = (*Array[struct{ X int }])(nil)

// Array stores every T instance contiguously. values[i] belongs to
// set.Dense()[i].
type Array[T any] struct {
	set    *sparse.Set
	values []T
}

func NewArray[T any](reserve int) *Array[T] {
	return &Array[T]{
		set:    sparse.New(reserve),
		values: make([]T, 0, max(reserve, 0)),
	}
}

func (a *Array[T]) Set() *sparse.Set {
	return a.set
}

func (a *Array[T]) Len() int {
	return a.set.Len()
}

func (a *Array[T]) Contains(e entity.Entity) bool {
	return a.set.Contains(e)
}

// Values returns the packed values in dense order.
func (a *Array[T]) Values() []T {
	return a.values
}

func (a *Array[T]) Read(e entity.Entity) *T {
	pos, _ := a.set.Index(e)
	return &a.values[pos]
}

func (a *Array[T]) Write(e entity.Entity, v T) *T {
	if pos, ok := a.set.Index(e); ok {
		a.values[pos] = v
		return &a.values[pos]
	}
	return a.Emplace(e, v)
}

func (a *Array[T]) Emplace(e entity.Entity, v T) *T {
	a.values = append(a.values, v)
	a.set.Emplace(e)
	return &a.values[len(a.values)-1]
}

func (a *Array[T]) Remove(e entity.Entity) bool {
	pos, ok := a.set.Remove(e)
	if !ok {
		return false
	}

	last := len(a.values) - 1
	a.values[pos] = a.values[last]
	var zero T
	a.values[last] = zero
	a.values = a.values[:last]
	return true
}

func (a *Array[T]) Copy(dst, src entity.Entity) {
	pos, ok := a.set.Index(src)
	if !ok {
		return
	}
	v := a.values[pos]
	a.Write(dst, v)
}

func (a *Array[T]) ShrinkToFit() {
	a.set.ShrinkToFit()
	a.values = slices.Clip(a.values)
}

func (a *Array[T]) Clear() {
	a.set.Clear()
	clear(a.values)
	a.values = a.values[:0]
}
