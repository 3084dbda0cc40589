package system

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/observability/log"
)

// Manager owns an ordered list of systems and drives them once per frame.
// Registration order is the only ordering there is; there is no dependency
// graph. A Manager is not safe for concurrent use.
type Manager struct {
	world    *ecs.World
	logger   log.Log
	now      func() time.Time
	entries  []*entry
	updating bool
	metrics  ManagerMetrics
}

type entry struct {
	system  System
	name    string
	metrics Metrics
}

type Option func(*Manager)

func WithLogger(logger log.Log) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock replaces time.Now for update timing.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(world *ecs.World, opts ...Option) *Manager {
	m := &Manager{
		world:  world,
		logger: world.Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// World returns the world systems are run against.
func (m *Manager) World() *ecs.World {
	return m.world
}

// Add appends sys to the update order and calls its Init. Different
// instances of the same type may coexist; adding the same instance twice
// panics. Systems must be pointers, as instances are told apart by address.
func (m *Manager) Add(sys System) System {
	m.checkNew(sys)
	e := &entry{system: sys, name: nameOf(sys)}
	m.entries = append(m.entries, e)
	m.init(e)
	return sys
}

// AddBefore schedules sys immediately before the first registered system
// of type Before and calls its Init. When no such system exists, sys is
// neither scheduled nor initialised and false is returned.
func AddBefore[Before System](m *Manager, sys System) bool {
	m.guard("add before")
	m.checkNew(sys)

	at := slices.IndexFunc(m.entries, func(e *entry) bool {
		_, ok := e.system.(Before)
		return ok
	})
	if at < 0 {
		m.logger.Warn("system not scheduled, target missing",
			log.String("system", nameOf(sys)),
			log.String("before", reflect.TypeFor[Before]().String()),
		)
		return false
	}

	e := &entry{system: sys, name: nameOf(sys)}
	m.entries = slices.Insert(m.entries, at, e)
	m.init(e)
	return true
}

// Get returns the first registered system of type T.
func Get[T System](m *Manager) (T, bool) {
	for _, e := range m.entries {
		if s, ok := e.system.(T); ok {
			return s, true
		}
	}
	var zero T
	return zero, false
}

// All returns every registered system of type T in update order.
func All[T System](m *Manager) []T {
	var out []T
	for _, e := range m.entries {
		if s, ok := e.system.(T); ok {
			out = append(out, s)
		}
	}
	return out
}

// Systems returns the registered systems in update order.
func (m *Manager) Systems() []System {
	out := make([]System, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.system
	}
	return out
}

func (m *Manager) Len() int {
	return len(m.entries)
}

// Update runs every system once, in order. Systems added during the update
// first run on the next one.
func (m *Manager) Update(dt float32) {
	m.updating = true
	defer func() { m.updating = false }()

	frameStart := m.now()
	for _, e := range m.entries {
		start := m.now()
		e.system.Update(m.world, dt)
		e.metrics.observe(m.now().Sub(start), start)
	}
	m.metrics.observe(m.now().Sub(frameStart), frameStart)
}

// Destroy calls Uninit on sys and drops it. It must not be called from
// inside Update.
func (m *Manager) Destroy(sys System) bool {
	m.guard("destroy")
	if t := reflect.TypeOf(sys); t == nil || t.Kind() != reflect.Pointer {
		return false
	}
	i := m.index(sys)
	if i < 0 {
		return false
	}
	e := m.entries[i]
	e.system.Uninit(m.world)
	m.entries = slices.Delete(m.entries, i, i+1)
	m.logger.Debug("system destroyed", log.String("system", e.name))
	return true
}

// DestroyAll uninitialises every system in update order.
func (m *Manager) DestroyAll() {
	m.guard("destroy all")
	for _, e := range m.entries {
		e.system.Uninit(m.world)
	}
	m.logger.Debug("systems destroyed", log.Int("count", len(m.entries)))
	m.entries = nil
}

func (m *Manager) init(e *entry) {
	e.system.Init(m.world)
	m.logger.Debug("system registered",
		log.String("system", e.name),
		log.Int("position", m.index(e.system)),
	)
}

func (m *Manager) checkNew(sys System) {
	if t := reflect.TypeOf(sys); t == nil || t.Kind() != reflect.Pointer {
		panic(fmt.Errorf("%w: got %v", ErrNotPointer, t))
	}
	if m.index(sys) >= 0 {
		panic(fmt.Errorf("%w: %s", ErrDuplicateSystem, nameOf(sys)))
	}
}

func (m *Manager) index(sys System) int {
	return slices.IndexFunc(m.entries, func(e *entry) bool { return e.system == sys })
}

func (m *Manager) guard(op string) {
	if m.updating {
		panic(fmt.Errorf("%w: %s", ErrMutateDuringUpdate, op))
	}
}

func nameOf(sys System) string {
	return reflect.TypeOf(sys).String()
}
