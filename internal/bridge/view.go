package bridge

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/arrayview/internal/tensor"
)

// Buffer is the buffer-view protocol a runtime array exposes to native code:
// raw contiguous bytes plus an element type tag. Shape is intentionally absent;
// the native side always supplies the shape it expects.
type Buffer interface {
	Bytes() []byte
	Tag() Tag
}

// View is a runtime-side array that references a block of memory.
//
// A view created from a native vector or matrix never owns its memory; a view
// created by Runtime.NewArray owns a freshly allocated buffer. Strides are
// always the row-major contiguous strides implied by the shape.
type View struct {
	data  []byte
	tag   Tag
	shape tensor.Shape
	owned bool
}

// NewView wraps data as a view of the given tag and shape without copying.
// len(data) must be exactly shape.ByteSize(tag.ItemSize).
func NewView(data []byte, tag Tag, shape tensor.Shape) (*View, error) {
	if known, ok := TagOf(tag.DType); !ok || known != tag {
		return nil, fmt.Errorf("%w: unknown tag %q", ErrTypeMismatch, tag.Name)
	}
	want, err := shape.ByteSize(tag.ItemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	if len(data) != want {
		return nil, fmt.Errorf("%w: shape %v of %s needs %d bytes, buffer has %d",
			ErrShapeMismatch, shape, tag, want, len(data))
	}
	return &View{
		data:  data[:len(data):len(data)],
		tag:   tag,
		shape: shape.Clone(),
	}, nil
}

// AllocView creates a view that owns a new zeroed buffer.
func AllocView(tag Tag, shape tensor.Shape) (*View, error) {
	size, err := shape.ByteSize(tag.ItemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	v, err := NewView(tensor.AllocBytes(size), tag, shape)
	if err != nil {
		return nil, err
	}
	v.owned = true
	return v, nil
}

// Bytes returns the viewed memory (zero-copy).
func (v *View) Bytes() []byte {
	return v.data
}

// Tag returns the element type tag.
func (v *View) Tag() Tag {
	return v.tag
}

// DType returns the native data type of the elements.
func (v *View) DType() tensor.DataType {
	return v.tag.DType
}

// Shape returns the view's shape metadata.
func (v *View) Shape() tensor.Shape {
	return v.shape
}

// Strides returns the implied contiguous row-major strides in bytes.
func (v *View) Strides() []int {
	return v.shape.ByteStrides(v.tag.DType)
}

// NDim returns the number of dimensions.
func (v *View) NDim() int {
	return len(v.shape)
}

// Len returns the number of elements in the view.
func (v *View) Len() int {
	return len(v.data) / v.tag.ItemSize
}

// Pointer returns the base address of the viewed memory, nil when empty.
func (v *View) Pointer() unsafe.Pointer {
	if len(v.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(v.data))
}

// OwnsData reports whether the view allocated the memory it references.
func (v *View) OwnsData() bool {
	return v.owned
}

// String returns a human-readable representation of the view.
func (v *View) String() string {
	return fmt.Sprintf("View[%s]%v", v.tag, v.shape)
}

// ArrayInterface describes a view in the layout of the version 3 array
// interface: a typestr, shape, byte strides and the data address.
type ArrayInterface struct {
	Typestr  string
	Shape    []int
	Strides  []int
	Data     uintptr
	ReadOnly bool
	Version  int
}

// Interface returns the array-interface descriptor of the view.
func (v *View) Interface() ArrayInterface {
	return ArrayInterface{
		Typestr: v.tag.Typestr(),
		Shape:   v.shape.Clone(),
		Strides: v.Strides(),
		Data:    uintptr(v.Pointer()),
		Version: 3,
	}
}
