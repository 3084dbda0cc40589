package physics

import (
	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/ecs/entity"
	"github.com/zeusync/ecscore/internal/core/observability/log"
	"github.com/zeusync/ecscore/internal/core/system"
)

// LifetimeSystem ticks Lifetime down and destroys entities whose lifetime
// ran out, emitting Expired for each first. Inactive entities do not age.
type LifetimeSystem struct {
	system.Base

	// Expired is the number of entities destroyed by the last update.
	Expired int

	logger  log.Log
	pending []entity.Entity
}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Init(w *ecs.World) {
	s.logger = w.Logger().With(log.String("system", "lifetime"))
	ecs.Assure[Lifetime](w)
}

func (s *LifetimeSystem) Update(w *ecs.World, dt float32) {
	s.pending = s.pending[:0]
	ecs.NewView1[Lifetime](w, ecs.With[ecs.ActiveTag]()).EachEntity(func(e entity.Entity, l *Lifetime) {
		l.Remaining -= dt
		if l.Remaining <= 0 {
			s.pending = append(s.pending, e)
		}
	})

	for _, e := range s.pending {
		ecs.Emit(w, Expired{Entity: e})
		w.DestroyEntity(e)
	}
	s.Expired = len(s.pending)
	if s.Expired > 0 {
		s.logger.Debug("entities expired", log.Int("count", s.Expired))
	}
}
