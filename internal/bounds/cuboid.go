// Package bounds maps cells of a fixed-size cuboid to a dense linear index.
package bounds

import (
	"fmt"
	"math"

	"github.com/udisondev/cuboid/internal/blockpos"
)

// MaxHeight is the vertical ceiling of the host world.
const MaxHeight = 256

// Cuboid is an axis-aligned region of fixed extents whose cells are addressed
// by a dense row-major index: x is the slowest axis, z the fastest.
//
// A Cuboid is immutable and safe to share between goroutines.
// Cuboids built by NewValidated or MustNew also assert that every coordinate
// or index handed to ToIndex and FromIndex is in range.
type Cuboid struct {
	sizeX, sizeY, sizeZ int32
	size                int32
	validate            bool
}

// New creates an unchecked cuboid in O(1).
// Invalid extents and out-of-range access are not detected.
func New(sizeX, sizeY, sizeZ int32) Cuboid {
	return Cuboid{
		sizeX: sizeX,
		sizeY: sizeY,
		sizeZ: sizeZ,
		size:  sizeX * sizeY * sizeZ,
	}
}

// NewValidated creates a cuboid in validation mode and runs the full self-check,
// which walks every cell. Use it in development and tests.
func NewValidated(sizeX, sizeY, sizeZ int32) (Cuboid, error) {
	c := New(sizeX, sizeY, sizeZ)
	c.validate = true
	if err := c.selfCheck(); err != nil {
		return Cuboid{}, err
	}
	return c, nil
}

// MustNew is like NewValidated but panics if the self-check fails.
func MustNew(sizeX, sizeY, sizeZ int32) Cuboid {
	c, err := NewValidated(sizeX, sizeY, sizeZ)
	if err != nil {
		panic(err)
	}
	return c
}

// Open creates a validated cuboid when validate is set and an unchecked one otherwise.
// The error is always nil for unchecked cuboids.
func Open(validate bool, sizeX, sizeY, sizeZ int32) (Cuboid, error) {
	if validate {
		return NewValidated(sizeX, sizeY, sizeZ)
	}
	return New(sizeX, sizeY, sizeZ), nil
}

func (c Cuboid) SizeX() int32 { return c.sizeX }
func (c Cuboid) SizeY() int32 { return c.sizeY }
func (c Cuboid) SizeZ() int32 { return c.sizeZ }

// Size returns the total cell count.
func (c Cuboid) Size() int32 { return c.size }

// Validating reports whether c asserts range on index conversions.
func (c Cuboid) Validating() bool { return c.validate }

// ToIndex returns the linear index of (x, y, z).
// In validation mode an out-of-range coordinate panics with *OutOfRangeError;
// otherwise the result is plain int32 arithmetic and may lie outside [0, Size).
func (c Cuboid) ToIndex(x, y, z int32) int32 {
	if c.validate && !c.InRange(x, y, z) {
		panic(c.outOfRange(x, y, z))
	}
	return (x*c.sizeY+y)*c.sizeZ + z
}

// ToIndexPos returns the linear index of a packed block position.
func (c Cuboid) ToIndexPos(pos int64) int32 {
	x, y, z := blockpos.Unpack(pos)
	return c.ToIndex(x, y, z)
}

// IndexOf is a checked ToIndex that reports out-of-range coordinates as an
// error regardless of mode.
func (c Cuboid) IndexOf(x, y, z int32) (int32, error) {
	if !c.InRange(x, y, z) {
		return 0, c.outOfRange(x, y, z)
	}
	return (x*c.sizeY+y)*c.sizeZ + z, nil
}

// FromIndex is the inverse of ToIndex.
// In validation mode an index outside [0, Size) panics with *IndexOutOfRangeError.
func (c Cuboid) FromIndex(index int32) (x, y, z int32) {
	if c.validate && !c.InRangeIndex(index) {
		panic(&IndexOutOfRangeError{Index: index, Size: c.size})
	}
	layer := c.sizeY * c.sizeZ
	x = index / layer
	rem := index % layer
	return x, rem / c.sizeZ, rem % c.sizeZ
}

// InRange reports whether every coordinate lies within its axis extent.
func (c Cuboid) InRange(x, y, z int32) bool {
	return x >= 0 && x < c.sizeX &&
		y >= 0 && y < c.sizeY &&
		z >= 0 && z < c.sizeZ
}

// InRangeIndex reports whether 0 <= index < Size.
func (c Cuboid) InRangeIndex(index int32) bool {
	return index >= 0 && index < c.size
}

// InRangePos reports whether a packed block position lies inside c.
func (c Cuboid) InRangePos(pos int64) bool {
	x, y, z := blockpos.Unpack(pos)
	return c.InRange(x, y, z)
}

func (c Cuboid) String() string {
	return fmt.Sprintf("%dx%dx%d", c.sizeX, c.sizeY, c.sizeZ)
}

func (c Cuboid) outOfRange(x, y, z int32) *OutOfRangeError {
	return &OutOfRangeError{
		X: x, Y: y, Z: z,
		SizeX: c.sizeX, SizeY: c.sizeY, SizeZ: c.sizeZ,
	}
}

func (c Cuboid) invalid(reason string) *InvalidBoundsError {
	return &InvalidBoundsError{
		SizeX:  c.sizeX,
		SizeY:  c.sizeY,
		SizeZ:  c.sizeZ,
		Reason: reason,
	}
}

func (c Cuboid) selfCheck() error {
	if c.sizeX <= 0 || c.sizeY <= 0 || c.sizeZ <= 0 {
		return c.invalid("extents must be positive")
	}
	if c.sizeY > MaxHeight {
		return c.invalid(fmt.Sprintf("height exceeds %d", MaxHeight))
	}
	// Positive extents with sizeY <= MaxHeight keep both products within int64.
	wide := int64(c.sizeX) * int64(c.sizeY)
	if wide > math.MaxInt32 || wide*int64(c.sizeZ) != int64(c.size) {
		return c.invalid("size overflows int32")
	}

	var index int32
	var mismatch bool
	c.visit(func(x, y, z int32) {
		if !mismatch && c.ToIndex(x, y, z) != index {
			mismatch = true
		}
		index++
	})
	if mismatch {
		return c.invalid("index is not dense in traversal order")
	}
	if index != c.size {
		return c.invalid(fmt.Sprintf("traversal visited %d of %d cells", index, c.size))
	}
	return nil
}
