package bounds

import "github.com/udisondev/cuboid/internal/blockpos"

// visit calls fn for every cell with x outermost and z innermost.
// The sequence of ToIndex values it produces is 0, 1, ..., Size-1.
func (c Cuboid) visit(fn func(x, y, z int32)) {
	for x := int32(0); x < c.sizeX; x++ {
		for y := int32(0); y < c.sizeY; y++ {
			for z := int32(0); z < c.sizeZ; z++ {
				fn(x, y, z)
			}
		}
	}
}

// ForEach calls fn with the coordinates of every cell, Size times in index order.
func (c Cuboid) ForEach(fn func(x, y, z int32)) {
	c.visit(fn)
}

// ForEachPos calls fn with the packed block position of every cell.
// The value passed is a blockpos-packed coordinate, not the linear index.
func (c Cuboid) ForEachPos(fn func(pos int64)) {
	c.visit(func(x, y, z int32) {
		fn(blockpos.Pack(x, y, z))
	})
}

// ForEachCoordPos calls fn with both the coordinates and packed position of every cell.
func (c Cuboid) ForEachCoordPos(fn func(x, y, z int32, pos int64)) {
	c.visit(func(x, y, z int32) {
		fn(x, y, z, blockpos.Pack(x, y, z))
	})
}
