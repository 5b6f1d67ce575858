package animations

import "errors"

var (
	// ErrInvalidFrame is returned when a frame list cannot build a timeline.
	ErrInvalidFrame = errors.New("animations: invalid frame")
	// ErrInvalidArgument is returned for out of range rates, states, sizes and factors.
	ErrInvalidArgument = errors.New("animations: invalid argument")
)
