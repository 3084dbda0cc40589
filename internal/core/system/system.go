package system

import "github.com/zeusync/ecscore/internal/core/ecs"

// System is a unit of per-frame logic. Systems must be pointer types: the
// manager compares instances to reject double registration.
type System interface {
	// Init runs once, right after the system is scheduled.
	Init(w *ecs.World)
	// Update runs once per frame with the frame time in seconds.
	Update(w *ecs.World, dt float32)
	// Uninit runs once when the system is destroyed.
	Uninit(w *ecs.World)
}

// Base provides no-op lifecycle hooks. Embed it and override what is needed.
type Base struct{}

func (Base) Init(*ecs.World)            {}
func (Base) Update(*ecs.World, float32) {}
func (Base) Uninit(*ecs.World)          {}
