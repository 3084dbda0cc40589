package physics

import (
	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/observability/log"
	"github.com/zeusync/ecscore/internal/core/system"
)

// MovementSystem integrates Velocity into Position for every active entity.
type MovementSystem struct {
	system.Base

	// MaxSpeed clamps velocities before integration; zero disables it.
	MaxSpeed float32
	// Moved is the number of entities integrated by the last update.
	Moved int

	logger log.Log
}

func NewMovementSystem(maxSpeed float32) *MovementSystem {
	return &MovementSystem{MaxSpeed: maxSpeed}
}

func (s *MovementSystem) Init(w *ecs.World) {
	s.logger = w.Logger().With(log.String("system", "movement"))
	ecs.Assure[Position](w)
	ecs.Assure[Velocity](w)
}

func (s *MovementSystem) Update(w *ecs.World, dt float32) {
	s.Moved = 0
	ecs.NewView2[Position, Velocity](w, ecs.With[ecs.ActiveTag]()).Each(func(p *Position, v *Velocity) {
		v.Vec3 = v.ClampLength(s.MaxSpeed)
		p.Vec3 = p.Add(v.Scale(dt))
		s.Moved++
	})
}

func (s *MovementSystem) Uninit(*ecs.World) {
	if s.logger != nil {
		s.logger.Debug("movement stopped", log.Int("last_moved", s.Moved))
	}
}
