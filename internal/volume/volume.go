// Package volume stores one value per cell of a cuboid in a flat slice.
package volume

import "github.com/udisondev/cuboid/internal/bounds"

// Volume is a dense cell store laid out in cuboid index order.
// It is not safe for concurrent mutation; the caller must synchronize.
type Volume[T any] struct {
	bounds bounds.Cuboid
	cells  []T
}

// New allocates a zeroed volume covering b.
func New[T any](b bounds.Cuboid) *Volume[T] {
	return &Volume[T]{
		bounds: b,
		cells:  make([]T, b.Size()),
	}
}

// Bounds returns the cuboid the volume is addressed by.
func (v *Volume[T]) Bounds() bounds.Cuboid {
	return v.bounds
}

// Cells exposes the backing slice so callers can read/write values directly.
func (v *Volume[T]) Cells() []T {
	return v.cells
}

// Get returns the value at (x, y, z).
// Out-of-range coordinates panic on a validated cuboid; on an unchecked one they
// may alias another cell.
func (v *Volume[T]) Get(x, y, z int32) T {
	return v.cells[v.bounds.ToIndex(x, y, z)]
}

// Set stores val at (x, y, z). Range handling matches Get.
func (v *Volume[T]) Set(x, y, z int32, val T) {
	v.cells[v.bounds.ToIndex(x, y, z)] = val
}

// GetPos returns the value at a packed block position.
func (v *Volume[T]) GetPos(pos int64) T {
	return v.cells[v.bounds.ToIndexPos(pos)]
}

// SetPos stores val at a packed block position.
func (v *Volume[T]) SetPos(pos int64, val T) {
	v.cells[v.bounds.ToIndexPos(pos)] = val
}

// Lookup returns the value at (x, y, z) and whether the coordinate is inside the volume.
func (v *Volume[T]) Lookup(x, y, z int32) (T, bool) {
	if !v.bounds.InRange(x, y, z) {
		var zero T
		return zero, false
	}
	return v.cells[v.bounds.ToIndex(x, y, z)], true
}

// Fill sets every cell to val.
func (v *Volume[T]) Fill(val T) {
	for i := range v.cells {
		v.cells[i] = val
	}
}

// Count returns the number of cells for which match returns true.
func (v *Volume[T]) Count(match func(T) bool) int {
	n := 0
	for _, c := range v.cells {
		if match(c) {
			n++
		}
	}
	return n
}

// ForEach calls fn for every cell in index order.
func (v *Volume[T]) ForEach(fn func(x, y, z int32, val T)) {
	i := 0
	v.bounds.ForEach(func(x, y, z int32) {
		fn(x, y, z, v.cells[i])
		i++
	})
}
