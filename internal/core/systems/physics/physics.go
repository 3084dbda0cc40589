package physics

import (
	"math"

	"github.com/zeusync/ecscore/internal/core/ecs/entity"
)

// Vec3 is a plain 3D vector.
type Vec3 struct{ X, Y, Z float32 }

func (v Vec3) Add(o Vec3) Vec3         { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float32) Vec3    { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float32         { return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z))) }
func (v Vec3) Distance(o Vec3) float32 { return Vec3{o.X - v.X, o.Y - v.Y, o.Z - v.Z}.Length() }

// ClampLength returns v scaled down to at most limit. A non-positive limit
// disables clamping.
func (v Vec3) ClampLength(limit float32) Vec3 {
	if limit <= 0 {
		return v
	}
	if l := v.Length(); l > limit {
		return v.Scale(limit / l)
	}
	return v
}

// Position is the world-space location of an entity.
type Position struct{ Vec3 }

// Velocity is expressed in units per second.
type Velocity struct{ Vec3 }

// Lifetime counts down in seconds; the entity is destroyed when it reaches
// zero.
type Lifetime struct {
	Remaining float32
}

// Expired is emitted right before an entity is destroyed for running out
// of lifetime. The entity is still alive while handlers run.
type Expired struct {
	Entity entity.Entity
}

func NewPosition(x, y, z float32) Position { return Position{Vec3{x, y, z}} }
func NewVelocity(x, y, z float32) Velocity { return Velocity{Vec3{x, y, z}} }
