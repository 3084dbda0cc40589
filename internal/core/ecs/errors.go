package ecs

import "errors"

// Contract violations. The World panics with one of these wrapped in a
// descriptive message; none of them is meant to be recovered from.
var (
	ErrNullEntity       = errors.New("ecs: null entity")
	ErrDeadEntity       = errors.New("ecs: entity is not alive")
	ErrMissingComponent = errors.New("ecs: entity has no such component")
	ErrMissingSingleton = errors.New("ecs: singleton not added")
	ErrEntityLimit      = errors.New("ecs: entity index space exhausted")
)
