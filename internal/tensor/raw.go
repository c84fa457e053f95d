package tensor

import (
	"fmt"
	"unsafe"
)

// AllocBytes returns a zeroed byte buffer of the given size whose base address
// is 8-byte aligned, so it can be reinterpreted as any Numeric element type.
func AllocBytes(size int) []byte {
	if size == 0 {
		return []byte{}
	}
	words := make([]uint64, size/8+(size%8+7)/8)
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, length bounded by len(words)*8
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}

// BytesOf returns the bytes backing data without copying.
// The returned slice aliases data: writes through either are visible in both.
func BytesOf[T Numeric](data []T) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounded by len(data)*size
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*size)
}

// Reinterpret returns data viewed as a []T without copying.
// len(data) must be a multiple of the element size and the base address must
// be aligned for T.
func Reinterpret[T Numeric](data []byte) ([]T, error) {
	dtype := DataTypeOf[T]()
	size := dtype.Size()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("buffer of %d bytes is not a whole number of %s elements", len(data), dtype)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	ptr := unsafe.Pointer(&data[0])
	if !IsAligned(ptr, dtype) {
		return nil, fmt.Errorf("address %#x is not %d-byte aligned for %s", uintptr(ptr), dtype.Alignment(), dtype)
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked above
	return unsafe.Slice((*T)(ptr), len(data)/size), nil
}

// IsAligned reports whether ptr satisfies the alignment of dtype.
func IsAligned(ptr unsafe.Pointer, dtype DataType) bool {
	return uintptr(ptr)%uintptr(dtype.Alignment()) == 0
}

// pointerOf returns the base address of data, or nil for an empty slice.
func pointerOf[T Numeric](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(data))
}
