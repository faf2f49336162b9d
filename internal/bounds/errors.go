package bounds

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is matched by every construction-time self-check failure.
	ErrInvalidBounds = errors.New("invalid cuboid bounds")
	// ErrOutOfRange is matched by coordinates or indices outside the cuboid.
	ErrOutOfRange = errors.New("out of cuboid range")
)

// InvalidBoundsError describes why a cuboid failed its self-check.
type InvalidBoundsError struct {
	SizeX, SizeY, SizeZ int32
	Reason              string
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("%s %dx%dx%d: %s", ErrInvalidBounds, e.SizeX, e.SizeY, e.SizeZ, e.Reason)
}

func (e *InvalidBoundsError) Unwrap() error {
	return ErrInvalidBounds
}

// OutOfRangeError reports a coordinate outside [0, size) on some axis.
type OutOfRangeError struct {
	X, Y, Z             int32
	SizeX, SizeY, SizeZ int32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d, %d) %s %dx%dx%d",
		e.X, e.Y, e.Z, ErrOutOfRange, e.SizeX, e.SizeY, e.SizeZ)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// IndexOutOfRangeError reports a linear index outside [0, size).
type IndexOutOfRangeError struct {
	Index int32
	Size  int32
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d %s [0, %d)", e.Index, ErrOutOfRange, e.Size)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
