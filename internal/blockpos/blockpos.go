package blockpos

import "fmt"

// Bit layout of a packed block position (most significant first):
// X (26 bits) | Y (12 bits) | Z (26 bits).
const (
	BitsX = 26
	BitsY = 12
	BitsZ = 26

	ShiftZ = 0
	ShiftY = ShiftZ + BitsZ // 26
	ShiftX = ShiftY + BitsY // 38

	MaskX = 1<<BitsX - 1
	MaskY = 1<<BitsY - 1
	MaskZ = 1<<BitsZ - 1
)

// Representable coordinate ranges (inclusive).
const (
	MinX = -1 << (BitsX - 1)
	MaxX = 1<<(BitsX-1) - 1
	MinY = -1 << (BitsY - 1)
	MaxY = 1<<(BitsY-1) - 1
	MinZ = -1 << (BitsZ - 1)
	MaxZ = 1<<(BitsZ-1) - 1
)

// Pack encodes (x, y, z) into a single int64.
// Coordinates outside the representable range are truncated to their field width.
func Pack(x, y, z int32) int64 {
	return (int64(x)&MaskX)<<ShiftX | (int64(y)&MaskY)<<ShiftY | (int64(z)&MaskZ)<<ShiftZ
}

// Unpack decodes a packed position into (x, y, z).
func Unpack(pos int64) (x, y, z int32) {
	return X(pos), Y(pos), Z(pos)
}

// X extracts the sign-extended X coordinate.
func X(pos int64) int32 {
	return int32(pos << (64 - ShiftX - BitsX) >> (64 - BitsX))
}

// Y extracts the sign-extended Y coordinate.
func Y(pos int64) int32 {
	return int32(pos << (64 - ShiftY - BitsY) >> (64 - BitsY))
}

// Z extracts the sign-extended Z coordinate.
func Z(pos int64) int32 {
	return int32(pos << (64 - ShiftZ - BitsZ) >> (64 - BitsZ))
}

// Pos is an unpacked block position.
type Pos struct {
	X, Y, Z int32
}

// FromLong decodes a packed position.
func FromLong(pos int64) Pos {
	x, y, z := Unpack(pos)
	return Pos{X: x, Y: y, Z: z}
}

// Pack returns the packed form of p.
func (p Pos) Pack() int64 {
	return Pack(p.X, p.Y, p.Z)
}

// Offset returns p shifted by (dx, dy, dz).
func (p Pos) Offset(dx, dy, dz int32) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Valid reports whether p survives a Pack/Unpack round trip.
func (p Pos) Valid() bool {
	return p.X >= MinX && p.X <= MaxX &&
		p.Y >= MinY && p.Y <= MaxY &&
		p.Z >= MinZ && p.Z <= MaxZ
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
