package tensor

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a shape describes more elements or bytes than
// an int can count.
var ErrOverflow = errors.New("tensor: shape size overflows int")

// Shape represents the dimensions of a buffer.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// It fails for negative dimensions and when the product overflows int.
func (s Shape) NumElements() (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		var ok bool
		if n, ok = mulInt(n, dim); !ok {
			return 0, fmt.Errorf("%w: %v elements", ErrOverflow, s)
		}
	}
	return n, nil
}

// ByteSize returns the number of bytes needed for the shape's elements of
// itemSize bytes each, with the same checks as NumElements.
func (s Shape) ByteSize(itemSize int) (int, error) {
	n, err := s.NumElements()
	if err != nil {
		return 0, err
	}
	size, ok := mulInt(n, itemSize)
	if !ok {
		return 0, fmt.Errorf("%w: %v of %d-byte elements", ErrOverflow, s, itemSize)
	}
	return size, nil
}

// mulInt multiplies two non-negative ints, reporting false on overflow.
func mulInt(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// Validate checks if the shape is valid (all dimensions >= 0).
// Empty dimensions are allowed: a zero-length vector is a valid buffer.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape, in elements.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ByteStrides returns row-major strides in bytes for elements of dtype.
func (s Shape) ByteStrides(dtype DataType) []int {
	strides := s.ComputeStrides()
	size := dtype.Size()
	for i := range strides {
		strides[i] *= size
	}
	return strides
}

// String formats the shape as a tuple, e.g. (2, 3).
func (s Shape) String() string {
	switch len(s) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("(%d,)", s[0])
	}
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(dim)
	}
	return out + ")"
}
