// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/arrayview/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for element types.
// Supported types: float32, float64, int8-int64, uint8-uint64.
type Numeric = tensor.Numeric

// DataType represents the element type of a buffer at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Shape represents the dimensions of a buffer.
// Example: Shape{2, 3} describes a 2×3 matrix.
type Shape = tensor.Shape

// Vector is a one-dimensional contiguous buffer.
type Vector[T Numeric] = tensor.Vector[T]

// Matrix is a two-dimensional contiguous row-major buffer.
type Matrix[T Numeric] = tensor.Matrix[T]

// Creation functions

// NewVector allocates a zeroed vector of length n.
func NewVector[T Numeric](n int) *Vector[T] {
	return tensor.NewVector[T](n)
}

// VectorOf creates a vector holding a copy of values.
//
// Example:
//
//	v := tensor.VectorOf[float32](1, 2, 3)
func VectorOf[T Numeric](values ...T) *Vector[T] {
	return tensor.VectorOf(values...)
}

// WrapVector creates a vector aliasing data without copying.
func WrapVector[T Numeric](data []T) *Vector[T] {
	return tensor.WrapVector(data)
}

// NewMatrix allocates a zeroed rows×cols matrix.
func NewMatrix[T Numeric](rows, cols int) *Matrix[T] {
	return tensor.NewMatrix[T](rows, cols)
}

// MatrixOf creates a matrix holding a copy of values in row-major order.
func MatrixOf[T Numeric](rows, cols int, values []T) (*Matrix[T], error) {
	return tensor.MatrixOf(rows, cols, values)
}

// WrapMatrix creates a matrix aliasing data without copying.
func WrapMatrix[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	return tensor.WrapMatrix(rows, cols, data)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Numeric]() DataType {
	return tensor.DataTypeOf[T]()
}
