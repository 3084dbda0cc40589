package system

import "errors"

var (
	ErrDuplicateSystem    = errors.New("system: instance already registered")
	ErrNotPointer         = errors.New("system: must be a pointer")
	ErrMutateDuringUpdate = errors.New("system: manager changed while updating")
)
