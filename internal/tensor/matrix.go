package tensor

import (
	"fmt"
	"unsafe"
)

// Matrix is a two-dimensional contiguous row-major buffer of T.
// Element (r, c) lives at data[r*cols+c].
type Matrix[T Numeric] struct {
	rows, cols int
	data       []T
	owned      bool
}

// NewMatrix allocates a zeroed rows×cols matrix.
// Panics if either dimension is negative.
func NewMatrix[T Numeric](rows, cols int) *Matrix[T] {
	n, ok := mulInt(rows, cols)
	if rows < 0 || cols < 0 || !ok {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, n), owned: true}
}

// MatrixOf creates a rows×cols matrix holding a copy of values in row-major order.
func MatrixOf[T Numeric](rows, cols int, values []T) (*Matrix[T], error) {
	if err := checkMatrixDims(rows, cols, len(values)); err != nil {
		return nil, err
	}
	data := make([]T, len(values))
	copy(data, values)
	return &Matrix[T]{rows: rows, cols: cols, data: data, owned: true}, nil
}

// WrapMatrix creates a rows×cols matrix aliasing data without copying.
// len(data) must equal rows*cols.
//
// WARNING: the caller keeps ownership of data.
func WrapMatrix[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	if err := checkMatrixDims(rows, cols, len(data)); err != nil {
		return nil, err
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data[:len(data):len(data)], owned: false}, nil
}

func checkMatrixDims(rows, cols, n int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("invalid matrix dimensions %dx%d", rows, cols)
	}
	want, ok := mulInt(rows, cols)
	if !ok {
		return fmt.Errorf("%w: matrix %dx%d", ErrOverflow, rows, cols)
	}
	if want != n {
		return fmt.Errorf("matrix %dx%d requires %d elements, but got %d", rows, cols, want, n)
	}
	return nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Len returns the total number of elements.
func (m *Matrix[T]) Len() int { return len(m.data) }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() Shape {
	return Shape{m.rows, m.cols}
}

// DType returns the element data type.
func (m *Matrix[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the elements in row-major order, aliasing the matrix storage.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Bytes returns the matrix storage as raw bytes (zero-copy).
func (m *Matrix[T]) Bytes() []byte {
	return BytesOf(m.data)
}

// Pointer returns the base address of the element storage.
// Empty matrices return nil.
func (m *Matrix[T]) Pointer() unsafe.Pointer {
	return pointerOf(m.data)
}

// OwnsData reports whether the matrix allocated its own storage.
func (m *Matrix[T]) OwnsData() bool {
	return m.owned
}

// Row returns row r as a slice aliasing the matrix storage.
func (m *Matrix[T]) Row(r int) []T {
	if r < 0 || r >= m.rows {
		panic(fmt.Sprintf("row %d out of bounds for %d rows", r, m.rows))
	}
	return m.data[r*m.cols : (r+1)*m.cols : (r+1)*m.cols]
}

// At returns the element at row r, column c.
// Panics if indices are out of bounds.
func (m *Matrix[T]) At(r, c int) T {
	return m.data[m.offset(r, c)]
}

// Set stores value at row r, column c.
// Panics if indices are out of bounds.
func (m *Matrix[T]) Set(r, c int, value T) {
	m.data[m.offset(r, c)] = value
}

func (m *Matrix[T]) offset(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for %dx%d matrix", r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// String returns a human-readable representation of the matrix.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix[%s]%dx%d", m.DType(), m.rows, m.cols)
}
