package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	v := NewVector[float64](4)

	assert.Equal(t, 4, v.Len())
	assert.Equal(t, Shape{4}, v.Shape())
	assert.Equal(t, Float64, v.DType())
	assert.True(t, v.OwnsData())
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Data())
	assert.Len(t, v.Bytes(), 32)
}

func TestNewVectorNegativePanics(t *testing.T) {
	assert.Panics(t, func() { NewVector[int32](-1) })
}

func TestVectorOfCopies(t *testing.T) {
	values := []int32{1, 2, 3}
	v := VectorOf(values...)
	values[0] = 99

	assert.Equal(t, int32(1), v.At(0))
	assert.True(t, v.OwnsData())
}

func TestWrapVectorAliases(t *testing.T) {
	values := []float32{1, 2, 3}
	v := WrapVector(values)

	assert.False(t, v.OwnsData())
	v.Set(1, 20)
	assert.Equal(t, float32(20), values[1])
	assert.Equal(t, v.Pointer(), WrapVector(values).Pointer())
}

func TestWrapVectorCapsCapacity(t *testing.T) {
	backing := []uint8{1, 2, 3, 4}
	v := WrapVector(backing[:2])

	grown := append(v.Data(), 9)
	require.Len(t, grown, 3)
	assert.Equal(t, uint8(3), backing[2], "append must not write past the wrapped region")
}

func TestVectorBoundsPanics(t *testing.T) {
	v := NewVector[int64](2)
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.Set(-1, 0) })
}

func TestEmptyVectorPointer(t *testing.T) {
	assert.Nil(t, NewVector[float32](0).Pointer())
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "Vector[float32][1 2]", VectorOf[float32](1, 2).String())
}
