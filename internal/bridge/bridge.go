package bridge

import (
	"errors"
	"fmt"

	"github.com/born-ml/arrayview/internal/tensor"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Bridge converts between native vectors/matrices of T and runtime views
// sharing the same memory.
//
// Bridge holds no state; it exists to fix the element type T. It must not be
// copied (go vet reports copies). Create one with New.
//
// Views never own native memory and native objects built from views never own
// view memory. Go's garbage collector keeps a shared Go-heap buffer alive while
// either side references it; for memory obtained elsewhere (mmap, cgo) the
// owner must outlive every alias.
type Bridge[T tensor.Numeric] struct {
	noCopy noCopy
}

// New returns a bridge for element type T.
//
// Example:
//
//	b := bridge.New[float32]()
//	view, err := b.VectorView(nil, tensor.VectorOf[float32](1, 2, 3))
func New[T tensor.Numeric]() *Bridge[T] {
	return &Bridge[T]{}
}

// Tag returns the element type tag handled by this bridge.
func (b *Bridge[T]) Tag() Tag {
	return TagFor[T]()
}

// VectorView exposes v to the runtime as a one-dimensional view of length
// v.Len() over the same memory. A nil runtime means Heap.
func (b *Bridge[T]) VectorView(rt Runtime, v *tensor.Vector[T]) (*View, error) {
	if v == nil {
		return nil, fmt.Errorf("vector view: %w", ErrNilInput)
	}
	view, err := wrap(rt, b.Tag(), v.Bytes(), v.Shape())
	if err != nil {
		return nil, fmt.Errorf("vector view: %w", err)
	}
	return view, nil
}

// MatrixView exposes m to the runtime as a (rows, cols) row-major view over
// the same memory. A nil runtime means Heap.
func (b *Bridge[T]) MatrixView(rt Runtime, m *tensor.Matrix[T]) (*View, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix view: %w", ErrNilInput)
	}
	view, err := wrap(rt, b.Tag(), m.Bytes(), m.Shape())
	if err != nil {
		return nil, fmt.Errorf("matrix view: %w", err)
	}
	return view, nil
}

// VectorFromView returns a vector aliasing buf's memory.
//
// shape is the requested (length,) and must match the buffer's element count
// exactly; the buffer's own shape metadata is not consulted. The returned
// vector does not own its data: buf's owner must keep the memory alive.
func (b *Bridge[T]) VectorFromView(buf Buffer, shape tensor.Shape) (*tensor.Vector[T], error) {
	data, err := elements[T](buf)
	if err != nil {
		return nil, fmt.Errorf("vector from view: %w", err)
	}
	if len(shape) != 1 || shape[0] < 0 {
		return nil, fmt.Errorf("vector from view: %w: requested shape %v is not one-dimensional",
			ErrShapeMismatch, shape)
	}
	if shape[0] != len(data) {
		return nil, fmt.Errorf("vector from view: %w: requested %d elements, buffer has %d",
			ErrShapeMismatch, shape[0], len(data))
	}
	return tensor.WrapVector(data), nil
}

// MatrixFromView returns a matrix aliasing buf's memory.
//
// shape is the requested (rows, cols); rows*cols must equal the buffer's
// element count exactly. The returned matrix does not own its data.
func (b *Bridge[T]) MatrixFromView(buf Buffer, shape tensor.Shape) (*tensor.Matrix[T], error) {
	data, err := elements[T](buf)
	if err != nil {
		return nil, fmt.Errorf("matrix from view: %w", err)
	}
	if len(shape) != 2 || shape[0] < 0 || shape[1] < 0 {
		return nil, fmt.Errorf("matrix from view: %w: requested shape %v is not (rows, cols)",
			ErrShapeMismatch, shape)
	}
	n, err := shape.NumElements()
	if err != nil {
		return nil, fmt.Errorf("matrix from view: %w: %w", ErrShapeMismatch, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("matrix from view: %w: requested %v needs %d elements, buffer has %d",
			ErrShapeMismatch, shape, n, len(data))
	}
	m, err := tensor.WrapMatrix(shape[0], shape[1], data)
	if err != nil {
		return nil, fmt.Errorf("matrix from view: %w: %w", ErrShapeMismatch, err)
	}
	return m, nil
}

func wrap(rt Runtime, tag Tag, data []byte, shape tensor.Shape) (*View, error) {
	if rt == nil {
		rt = Heap
	}
	view, err := rt.Wrap(data, tag, shape)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return view, nil
}
