package telemetry

import (
	"time"

	"github.com/zeusync/ecscore/internal/core/ecs"
	"github.com/zeusync/ecscore/internal/core/system"
)

// FrameStats is an immutable snapshot of one loop step.
type FrameStats struct {
	World      string        `json:"world"`
	Tick       uint64        `json:"tick"`
	DT         float32       `json:"dt"`
	Alive      int           `json:"alive"`
	Components int           `json:"components"`
	FrameTime  time.Duration `json:"frame_time_ns"`
	Systems    []SystemStats `json:"systems"`
}

type SystemStats struct {
	Name       string        `json:"name"`
	Updates    uint64        `json:"updates"`
	LastUpdate time.Duration `json:"last_update_ns"`
	MaxUpdate  time.Duration `json:"max_update_ns"`
}

// Snapshot copies the counters of w and m. It must run on the goroutine
// that owns the world.
func Snapshot(w *ecs.World, m *system.Manager, tick uint64, dt float32) FrameStats {
	sm := m.SystemMetrics()
	systems := make([]SystemStats, len(sm))
	for i, s := range sm {
		systems[i] = SystemStats{
			Name:       s.Name,
			Updates:    s.UpdateCount,
			LastUpdate: s.LastUpdateTime,
			MaxUpdate:  s.MaxUpdateTime,
		}
	}
	return FrameStats{
		World:      w.ID().String(),
		Tick:       tick,
		DT:         dt,
		Alive:      w.Alive(),
		Components: w.ComponentTypes(),
		FrameTime:  m.Metrics().LastUpdateTime,
		Systems:    systems,
	}
}
