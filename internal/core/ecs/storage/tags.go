package storage

import (
	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/sparse"
)

var _ Store[struct{}] = (*Tags[struct{}])(nil)

// Tags is the store for zero sized marker components. Only presence is
// tracked; every Read hands out the same placeholder.
type Tags[T any] struct {
	set         *sparse.Set
	count       int
	placeholder T
}

func NewTags[T any](reserve int) *Tags[T] {
	return &Tags[T]{set: sparse.New(reserve)}
}

func (t *Tags[T]) Set() *sparse.Set {
	return t.set
}

func (t *Tags[T]) Len() int {
	return t.count
}

func (t *Tags[T]) Contains(e entity.Entity) bool {
	return t.set.Contains(e)
}

func (t *Tags[T]) Read(entity.Entity) *T {
	return &t.placeholder
}

func (t *Tags[T]) Write(e entity.Entity, _ T) *T {
	if !t.set.Contains(e) {
		t.set.Emplace(e)
		t.count++
	}
	return &t.placeholder
}

func (t *Tags[T]) Emplace(e entity.Entity, _ T) *T {
	t.set.Emplace(e)
	t.count++
	return &t.placeholder
}

func (t *Tags[T]) Remove(e entity.Entity) bool {
	if _, ok := t.set.Remove(e); !ok {
		return false
	}
	t.count--
	return true
}

func (t *Tags[T]) Copy(dst, src entity.Entity) {
	if t.set.Contains(src) && !t.set.Contains(dst) {
		t.set.Emplace(dst)
		t.count++
	}
}

func (t *Tags[T]) ShrinkToFit() {
	t.set.ShrinkToFit()
}

func (t *Tags[T]) Clear() {
	t.set.Clear()
	t.count = 0
}
