package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/observability/log"
	"github.com/zeusync/ecscore/internal/core/systems/physics"
	"github.com/zeusync/ecscore/internal/injector"
	"github.com/zeusync/ecscore/internal/telemetry"
)

// Publisher receives frame snapshots from the loop.
type Publisher interface {
	Publish(telemetry.FrameStats) error
}

type demo struct {
	rt        *injector.Runtime
	logger    log.Log
	publisher Publisher

	movement *physics.MovementSystem
	lifetime *physics.LifetimeSystem
	expired  int
	tick     uint64
}

func newDemo(rt *injector.Runtime, publisher Publisher) *demo {
	d := &demo{
		rt:        rt,
		logger:    rt.Logger.With(log.String("component", "loop")),
		publisher: publisher,
		movement:  physics.NewMovementSystem(rt.Config.World.MaxSpeed),
		lifetime:  physics.NewLifetimeSystem(),
	}
	rt.Manager.Add(d.movement)
	rt.Manager.Add(d.lifetime)
	ecs.Bind(rt.World, func(physics.Expired) bool {
		d.expired++
		return false
	})
	return d
}

// spawn populates the world with moving, ageing entities.
func (d *demo) spawn() {
	cfg := d.rt.Config.World
	w := d.rt.World
	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Entities; i++ {
		e := w.MakeEntity()
		if rng.Float64() < cfg.InactiveRatio {
			w.SetActive(e, false)
		}
		ecs.Pack3(w, e,
			physics.NewPosition(rng.Float32()*100, rng.Float32()*100, 0),
			physics.NewVelocity(rng.Float32()*2-1, rng.Float32()*2-1, 0),
			physics.Lifetime{Remaining: rng.Float32() * cfg.MaxLifetime},
		)
	}
	d.logger.Info("world populated",
		log.Int("entities", w.Alive()),
		log.Int("active", ecs.Count[ecs.ActiveTag](w)),
	)
}

// run steps the manager at the configured rate until ctx is done or the
// tick limit is reached.
func (d *demo) run(ctx context.Context) error {
	cfg := d.rt.Config
	step := cfg.Step()
	dt := float32(step.Seconds())

	var pace <-chan time.Time
	if cfg.Loop.Realtime {
		ticker := time.NewTicker(step)
		defer ticker.Stop()
		pace = ticker.C
	}

	for cfg.Loop.MaxTicks == 0 || d.tick < cfg.Loop.MaxTicks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		d.rt.Manager.Update(dt)
		d.tick++

		if d.publisher != nil && cfg.Telemetry.Every > 0 && d.tick%cfg.Telemetry.Every == 0 {
			if err := d.publisher.Publish(telemetry.Snapshot(d.rt.World, d.rt.Manager, d.tick, dt)); err != nil {
				d.logger.Warn("telemetry publish failed", log.Error(err))
			}
		}
	}
	return nil
}

func (d *demo) shutdown() {
	m := d.rt.Manager.Metrics()
	d.logger.Info("loop finished",
		log.Uint64("ticks", d.tick),
		log.Int("alive", d.rt.World.Alive()),
		log.Int("expired", d.expired),
		log.Duration("avg_frame", m.AverageUpdateTime),
	)
	d.rt.Manager.DestroyAll()
}
