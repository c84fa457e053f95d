package tensor

import (
	"fmt"
	"unsafe"
)

// Vector is a one-dimensional contiguous buffer of T.
//
// A Vector either owns its storage (NewVector, VectorOf) or aliases memory
// owned by someone else (WrapVector, or a vector obtained from a foreign view).
// Aliasing vectors never copy and never free the memory they point at.
type Vector[T Numeric] struct {
	data  []T
	owned bool
}

// NewVector allocates a zeroed vector of length n.
// Panics if n is negative.
func NewVector[T Numeric](n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("negative vector length %d", n))
	}
	return &Vector[T]{data: make([]T, n), owned: true}
}

// VectorOf creates a vector holding a copy of values.
//
// Example:
//
//	v := tensor.VectorOf[float32](1, 2, 3)
func VectorOf[T Numeric](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data, owned: true}
}

// WrapVector creates a vector that aliases data without copying.
//
// WARNING: the caller keeps ownership of data. Modifications through the
// vector modify data and vice versa.
func WrapVector[T Numeric](data []T) *Vector[T] {
	return &Vector[T]{data: data[:len(data):len(data)], owned: false}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Shape returns the vector's one-dimensional shape.
func (v *Vector[T]) Shape() Shape {
	return Shape{len(v.data)}
}

// DType returns the element data type.
func (v *Vector[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the elements as a slice aliasing the vector's storage.
func (v *Vector[T]) Data() []T {
	return v.data
}

// Bytes returns the vector's storage as raw bytes (zero-copy).
func (v *Vector[T]) Bytes() []byte {
	return BytesOf(v.data)
}

// Pointer returns the base address of the element storage.
// Empty vectors return nil.
func (v *Vector[T]) Pointer() unsafe.Pointer {
	return pointerOf(v.data)
}

// OwnsData reports whether the vector allocated its own storage.
func (v *Vector[T]) OwnsData() bool {
	return v.owned
}

// At returns the element at index i.
// Panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("index %d out of bounds for vector of length %d", i, len(v.data)))
	}
	return v.data[i]
}

// Set stores value at index i.
// Panics if i is out of range.
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("index %d out of bounds for vector of length %d", i, len(v.data)))
	}
	v.data[i] = value
}

// String returns a human-readable representation of the vector.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector[%s]%v", v.DType(), v.data)
}
