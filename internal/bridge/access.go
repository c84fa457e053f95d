package bridge

import (
	"fmt"

	"github.com/born-ml/arrayview/internal/tensor"
)

// Element accessors used by runtimes that only deal in float64 and int64
// numbers. Indices are flat, zero-based, row-major.

// Float reads element i converted to float64.
func (v *View) Float(i int) (float64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return entryFor(v.tag).getFloat(v.data, i), nil
}

// SetFloat converts x to the element type and stores it at i.
func (v *View) SetFloat(i int, x float64) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	entryFor(v.tag).setFloat(v.data, i, x)
	return nil
}

// Int reads element i converted to int64.
func (v *View) Int(i int) (int64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return entryFor(v.tag).getInt(v.data, i), nil
}

// SetInt converts x to the element type and stores it at i.
func (v *View) SetInt(i int, x int64) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	entryFor(v.tag).setInt(v.data, i, x)
	return nil
}

// Fill stores x in every element.
func (v *View) Fill(x float64) {
	e := entryFor(v.tag)
	for i := 0; i < v.Len(); i++ {
		e.setFloat(v.data, i, x)
	}
}

func (v *View) checkIndex(i int) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: index %d for %d elements", ErrIndexOutOfRange, i, v.Len())
	}
	return nil
}

// As returns the buffer's elements as a []T aliasing its memory.
func As[T tensor.Numeric](buf Buffer) ([]T, error) {
	return elements[T](buf)
}

// Concrete forms of As for callers that cannot instantiate generics,
// such as interpreted scripts.

// AsFloat32 returns the view as []float32.
func AsFloat32(v *View) ([]float32, error) { return As[float32](v) }

// AsFloat64 returns the view as []float64.
func AsFloat64(v *View) ([]float64, error) { return As[float64](v) }

// AsInt32 returns the view as []int32.
func AsInt32(v *View) ([]int32, error) { return As[int32](v) }

// AsInt64 returns the view as []int64.
func AsInt64(v *View) ([]int64, error) { return As[int64](v) }

// AsUint8 returns the view as []uint8.
func AsUint8(v *View) ([]uint8, error) { return As[uint8](v) }

// elements checks that buf holds T elements and reinterprets its bytes.
func elements[T tensor.Numeric](buf Buffer) ([]T, error) {
	if isNilBuffer(buf) {
		return nil, ErrNilInput
	}
	want := TagFor[T]()
	if got := buf.Tag(); got != want {
		return nil, fmt.Errorf("%w: buffer holds %s, want %s", ErrTypeMismatch, got, want)
	}
	raw := buf.Bytes()
	if len(raw)%want.ItemSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %s elements",
			ErrShapeMismatch, len(raw), want)
	}
	data, err := tensor.Reinterpret[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMisaligned, err)
	}
	return data, nil
}

func isNilBuffer(buf Buffer) bool {
	if buf == nil {
		return true
	}
	v, ok := buf.(*View)
	return ok && v == nil
}
