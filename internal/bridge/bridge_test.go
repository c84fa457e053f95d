package bridge

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/arrayview/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorRoundTripPreservesPointer(t *testing.T) {
	b := New[float32]()
	v := tensor.VectorOf[float32](1, 2, 3, 4, 5)

	view, err := b.VectorView(nil, v)
	require.NoError(t, err)

	back, err := b.VectorFromView(view, tensor.Shape{v.Len()})
	require.NoError(t, err)

	assert.Equal(t, v.Pointer(), back.Pointer())
	assert.Equal(t, v.Len(), back.Len())
	assert.False(t, back.OwnsData())
}

func TestMatrixRoundTripPreservesPointer(t *testing.T) {
	b := New[float32]()
	m := tensor.NewMatrix[float32](2, 3)

	view, err := b.MatrixView(Heap, m)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, view.Shape())
	assert.Equal(t, []int{12, 4}, view.Strides())

	back, err := b.MatrixFromView(view, tensor.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, m.Pointer(), back.Pointer())
	assert.Equal(t, 2, back.Rows())
	assert.Equal(t, 3, back.Cols())
}

func TestVectorViewAliasesNativeMemory(t *testing.T) {
	b := New[float32]()
	v := tensor.VectorOf[float32](1.0, 2.0, 3.0)

	view, err := b.VectorView(nil, v)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3}, view.Shape())
	assert.Equal(t, "float32", view.Tag().Name)
	assert.False(t, view.OwnsData())

	for i, want := range []float64{1, 2, 3} {
		got, err := view.Float(i)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 0)
	}

	require.NoError(t, view.SetFloat(0, 9.0))
	assert.Equal(t, []float32{9.0, 2.0, 3.0}, v.Data())

	// And the other way round.
	v.Set(2, 7)
	got, err := view.Float(2)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got, 0)
}

func TestMatrixViewAliasesNativeMemory(t *testing.T) {
	b := New[int32]()
	m := tensor.NewMatrix[int32](2, 3)

	view, err := b.MatrixView(nil, m)
	require.NoError(t, err)

	// Row-major: (1, 2) is flat index 5.
	require.NoError(t, view.SetInt(5, 42))
	assert.Equal(t, int32(42), m.At(1, 2))
}

func TestVectorFromViewShapeMismatch(t *testing.T) {
	b := New[float32]()
	view, err := b.VectorView(nil, tensor.NewVector[float32](6))
	require.NoError(t, err)

	tests := []struct {
		name  string
		shape tensor.Shape
	}{
		{"shorter", tensor.Shape{4}},
		{"longer", tensor.Shape{7}},
		{"negative", tensor.Shape{-6}},
		{"two dimensions", tensor.Shape{2, 3}},
		{"no dimensions", tensor.Shape{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.VectorFromView(view, tt.shape)
			assert.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestMatrixFromViewShapeMismatch(t *testing.T) {
	b := New[float64]()
	view, err := b.MatrixView(nil, tensor.NewMatrix[float64](2, 3))
	require.NoError(t, err)

	tests := []struct {
		name  string
		shape tensor.Shape
	}{
		{"too many elements", tensor.Shape{3, 3}},
		{"too few elements", tensor.Shape{1, 5}},
		{"one dimension", tensor.Shape{6}},
		{"three dimensions", tensor.Shape{1, 2, 3}},
		{"negative", tensor.Shape{-2, -3}},
		{"product wraps to count", tensor.Shape{1<<62 + 2, 4}},
		{"product overflows", tensor.Shape{math.MaxInt, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.MatrixFromView(view, tt.shape)
			assert.ErrorIs(t, err, ErrShapeMismatch)
		})
	}

	// A different factorization of the same element count is accepted.
	m, err := b.MatrixFromView(view, tensor.Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
}

func TestMatrixFromViewRejectsWrappedProduct(t *testing.T) {
	b := New[float32]()
	view, err := b.VectorView(nil, tensor.VectorOf[float32](1, 2, 3, 4))
	require.NoError(t, err)

	// (2^62+1)*4 is 4 modulo 2^64.
	m, err := b.MatrixFromView(view, tensor.Shape{1<<62 + 1, 4})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorIs(t, err, tensor.ErrOverflow)
	assert.Nil(t, m)
}

func TestFromViewTypeMismatch(t *testing.T) {
	f64 := New[float64]()
	view, err := f64.VectorView(nil, tensor.VectorOf[float64](1, 2))
	require.NoError(t, err)

	f32 := New[float32]()
	_, err = f32.VectorFromView(view, tensor.Shape{2})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = f32.MatrixFromView(view, tensor.Shape{1, 2})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestNilInputs(t *testing.T) {
	b := New[float32]()

	_, err := b.VectorView(nil, nil)
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = b.MatrixView(nil, nil)
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = b.VectorFromView(nil, tensor.Shape{0})
	assert.ErrorIs(t, err, ErrNilInput)

	var view *View
	_, err = b.MatrixFromView(view, tensor.Shape{0, 0})
	assert.ErrorIs(t, err, ErrNilInput)
}

type failingRuntime struct{ err error }

func (r failingRuntime) Wrap([]byte, Tag, tensor.Shape) (*View, error) { return nil, r.err }

func (r failingRuntime) NewArray(Tag, tensor.Shape) (*View, error) { return nil, r.err }

func TestRuntimeFailureIsAllocationError(t *testing.T) {
	b := New[float32]()
	v := tensor.NewVector[float32](3)

	_, err := b.VectorView(failingRuntime{err: ErrAllocation}, v)
	assert.ErrorIs(t, err, ErrAllocation)

	cause := errors.New("out of handles")
	_, err = b.MatrixView(failingRuntime{err: cause}, tensor.NewMatrix[float32](1, 1))
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, cause)
}

func TestEmptyVectorRoundTrip(t *testing.T) {
	b := New[uint16]()
	v := tensor.NewVector[uint16](0)

	view, err := b.VectorView(nil, v)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Len())
	assert.Nil(t, view.Pointer())

	back, err := b.VectorFromView(view, tensor.Shape{0})
	require.NoError(t, err)
	assert.Equal(t, 0, back.Len())
}

// rawBuffer is a Buffer that is not a View, as a runtime might hand over.
type rawBuffer struct {
	data []byte
	tag  Tag
}

func (r rawBuffer) Bytes() []byte { return r.data }
func (r rawBuffer) Tag() Tag      { return r.tag }

func TestFromViewAcceptsAnyBuffer(t *testing.T) {
	b := New[int16]()
	raw := rawBuffer{data: tensor.AllocBytes(8), tag: TagFor[int16]()}

	v, err := b.VectorFromView(raw, tensor.Shape{4})
	require.NoError(t, err)
	v.Set(3, -1)
	assert.Equal(t, byte(0xff), raw.data[6])
}

func TestFromViewPartialElement(t *testing.T) {
	b := New[int32]()
	raw := rawBuffer{data: tensor.AllocBytes(7), tag: TagFor[int32]()}

	_, err := b.VectorFromView(raw, tensor.Shape{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromViewMisaligned(t *testing.T) {
	b := New[float64]()
	backing := tensor.AllocBytes(17)
	raw := rawBuffer{data: backing[1:], tag: TagFor[float64]()}

	_, err := b.VectorFromView(raw, tensor.Shape{2})
	assert.ErrorIs(t, err, ErrMisaligned)
}

func TestBridgeTag(t *testing.T) {
	assert.Equal(t, tensor.Uint32, New[uint32]().Tag().DType)
	assert.Equal(t, 4, New[uint32]().Tag().ItemSize)
}
