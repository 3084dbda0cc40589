package ecs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/ecs/storage"
	"github.com/zeusync/ecscore/internal/core/observability/log"
)

// ActiveTag marks entities that systems should consider live. MakeEntity
// attaches it; MakeInactiveEntity does not.
type ActiveTag struct{}

// World owns every component pool, singleton and event channel, and hands
// out entity handles. A World is not safe for concurrent use.
type World struct {
	id      uuid.UUID
	logger  log.Log
	reserve int

	// next is the first index never handed out. Index 0 is the null entity.
	next     uint32
	recycled []entity.Entity
	// entities is indexed by entity index; destroyed slots hold entity.Null.
	entities []entity.Entity
	alive    int

	pools      map[TypeKey]storage.Pool
	poolOrder  []storage.Pool
	singletons map[TypeKey]any
	channels   map[TypeKey]channel
}

type WorldOption func(*World)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(logger log.Log) WorldOption {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithReserve sets the initial capacity of every component pool.
func WithReserve(n int) WorldOption {
	return func(w *World) {
		if n >= 0 {
			w.reserve = n
		}
	}
}

// NewWorld constructs an empty world.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		id:         uuid.New(),
		logger:     log.Nop(),
		reserve:    storage.DefaultReserve,
		next:       1,
		entities:   []entity.Entity{entity.Null},
		pools:      make(map[TypeKey]storage.Pool),
		singletons: make(map[TypeKey]any),
		channels:   make(map[TypeKey]channel),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With(log.String("world", w.id.String()))
	return w
}

// ID identifies the world in logs.
func (w *World) ID() uuid.UUID {
	return w.id
}

func (w *World) Logger() log.Log {
	return w.logger
}

// MakeEntity creates an entity carrying ActiveTag.
func (w *World) MakeEntity() entity.Entity {
	e := w.MakeInactiveEntity()
	Assure[ActiveTag](w).Emplace(e, ActiveTag{})
	return e
}

// MakeEntityFrom creates an active entity and copies every component of
// archetype onto it.
func (w *World) MakeEntityFrom(archetype entity.Entity) entity.Entity {
	assertEntity(archetype)
	e := w.MakeEntity()
	w.CopyEntity(e, archetype)
	return e
}

// MakeInactiveEntity creates an entity without ActiveTag. It reuses a
// recycled index with a bumped version when one is available.
func (w *World) MakeInactiveEntity() entity.Entity {
	var e entity.Entity
	if n := len(w.recycled); n > 0 {
		e = w.recycled[n-1].Next()
		w.recycled = w.recycled[:n-1]
		w.entities[e.Index()] = e
	} else {
		if w.next > entity.MaxIndex {
			w.logger.Error("entity limit reached", log.Int("alive", w.alive))
			panic(fmt.Errorf("%w: %d live entities", ErrEntityLimit, w.alive))
		}
		e = entity.ID(w.next, 0)
		w.next++
		w.entities = append(w.entities, e)
	}
	w.alive++
	return e
}

// CopyEntity copies every component src has onto dst, replacing the ones dst
// already has. Cost is linear in the number of registered component types.
func (w *World) CopyEntity(dst, src entity.Entity) {
	assertEntity(dst)
	for _, p := range w.poolOrder {
		if p.Contains(src) {
			p.Copy(dst, src)
		}
	}
}

// DestroyEntity strips every component from e and recycles its index.
// Destroying a handle that is no longer alive does nothing.
func (w *World) DestroyEntity(e entity.Entity) {
	assertEntity(e)
	if !w.IsAlive(e) {
		w.logger.Debug("destroy of dead entity ignored", log.Stringer("entity", e))
		return
	}

	for _, p := range w.poolOrder {
		p.Remove(e)
	}

	w.recycled = append(w.recycled, e)
	w.entities[e.Index()] = entity.Null
	w.alive--
}

// IsAlive reports whether e is the current handle of its index.
func (w *World) IsAlive(e entity.Entity) bool {
	idx := e.Index()
	return !e.IsNull() && int(idx) < len(w.entities) && w.entities[idx] == e
}

// Alive returns the number of live entities.
func (w *World) Alive() int {
	return w.alive
}

// Entities returns every entity slot indexed by entity index, including the
// null slot at index 0 and entity.Null for destroyed entities. The slice
// aliases world state; it must not be modified nor held across
// MakeEntity calls.
func (w *World) Entities() []entity.Entity {
	return w.entities
}

// SetActive adds or removes ActiveTag.
func (w *World) SetActive(e entity.Entity, active bool) {
	assertEntity(e)
	tags := Assure[ActiveTag](w)
	if active {
		tags.Write(e, ActiveTag{})
	} else {
		tags.Remove(e)
	}
}

func (w *World) IsActive(e entity.Entity) bool {
	return Contains[ActiveTag](w, e)
}

// ComponentTypes returns the number of registered component types.
func (w *World) ComponentTypes() int {
	return len(w.poolOrder)
}

// ShrinkToFit releases spare capacity in every pool. Avoid it if more
// components will be added soon.
func (w *World) ShrinkToFit() {
	for _, p := range w.poolOrder {
		p.ShrinkToFit()
	}
}

func assertEntity(e entity.Entity) {
	if debugAssertions && e.IsNull() {
		panic(ErrNullEntity)
	}
}

// assertAlive rejects stale handles, whose index may already belong to a
// newer entity sharing the same sparse slot.
func (w *World) assertAlive(e entity.Entity) {
	assertEntity(e)
	if debugAssertions && !w.IsAlive(e) {
		panic(fmt.Errorf("%w: %s", ErrDeadEntity, e))
	}
}
