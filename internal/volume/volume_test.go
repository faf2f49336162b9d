package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cuboid/internal/blockpos"
	"github.com/udisondev/cuboid/internal/bounds"
)

type blockState uint16

const (
	air blockState = iota
	stone
	dirt
)

func TestVolume_GetSet(t *testing.T) {
	v := New[blockState](bounds.MustNew(4, 8, 4))
	require.Len(t, v.Cells(), 128)

	v.Set(1, 2, 3, stone)
	assert.Equal(t, stone, v.Get(1, 2, 3))
	assert.Equal(t, air, v.Get(0, 0, 0))
	assert.Equal(t, stone, v.Cells()[v.Bounds().ToIndex(1, 2, 3)])
}

func TestVolume_PackedPositions(t *testing.T) {
	v := New[blockState](bounds.New(3, 3, 3))

	pos := blockpos.Pack(2, 1, 0)
	v.SetPos(pos, dirt)

	assert.Equal(t, dirt, v.GetPos(pos))
	assert.Equal(t, dirt, v.Get(2, 1, 0))
}

func TestVolume_Lookup(t *testing.T) {
	v := New[blockState](bounds.New(2, 2, 2))
	v.Set(1, 1, 1, stone)

	got, ok := v.Lookup(1, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, stone, got)

	got, ok = v.Lookup(2, 0, 0)
	assert.False(t, ok)
	assert.Equal(t, air, got)
}

func TestVolume_OutOfRangePanicsWhenValidated(t *testing.T) {
	v := New[blockState](bounds.MustNew(2, 2, 2))

	assert.Panics(t, func() { v.Get(0, 2, 0) })
	assert.Panics(t, func() { v.Set(-1, 0, 0, stone) })
}

func TestVolume_FillAndCount(t *testing.T) {
	v := New[blockState](bounds.New(5, 2, 3))
	v.Fill(dirt)
	v.Set(0, 0, 0, stone)
	v.Set(4, 1, 2, stone)

	isStone := func(b blockState) bool { return b == stone }
	assert.Equal(t, 2, v.Count(isStone))
	assert.Equal(t, 28, v.Count(func(b blockState) bool { return b == dirt }))
}

func TestVolume_ForEach(t *testing.T) {
	v := New[int32](bounds.MustNew(2, 3, 2))
	for i := range v.Cells() {
		v.Cells()[i] = int32(i)
	}

	calls := 0
	v.ForEach(func(x, y, z int32, val int32) {
		assert.Equal(t, v.Bounds().ToIndex(x, y, z), val)
		calls++
	})
	assert.Equal(t, 12, calls)
}
