// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bridge exposes native vectors and matrices to script runtimes as
// zero-copy array views, and turns runtime arrays back into native objects.
//
// Example:
//
//	b := bridge.New[float32]()
//	v := tensor.VectorOf[float32](1, 2, 3)
//
//	view, _ := b.VectorView(bridge.Heap, v)
//	_ = view.SetFloat(0, 9) // v is now [9 2 3]
//
//	back, _ := b.VectorFromView(view, tensor.Shape{3})
//	// back aliases v's memory
package bridge

import (
	"github.com/born-ml/arrayview/internal/bridge"
	"github.com/born-ml/arrayview/tensor"
)

// Bridge converts between native objects of T and runtime views.
type Bridge[T tensor.Numeric] = bridge.Bridge[T]

// View is a runtime-side array referencing a block of memory.
type View = bridge.View

// Buffer is the buffer-view protocol accepted by the from-view operations.
type Buffer = bridge.Buffer

// Runtime creates the wrapper objects a scripting environment holds.
type Runtime = bridge.Runtime

// Tag identifies the element type of a runtime array.
type Tag = bridge.Tag

// ArrayInterface is the array-interface descriptor of a view.
type ArrayInterface = bridge.ArrayInterface

// Heap is the runtime used when no scripting environment is involved.
var Heap = bridge.Heap

// Errors, matched with errors.Is.
var (
	ErrAllocation      = bridge.ErrAllocation
	ErrTypeMismatch    = bridge.ErrTypeMismatch
	ErrShapeMismatch   = bridge.ErrShapeMismatch
	ErrNilInput        = bridge.ErrNilInput
	ErrMisaligned      = bridge.ErrMisaligned
	ErrIndexOutOfRange = bridge.ErrIndexOutOfRange
)

// New returns a bridge for element type T.
func New[T tensor.Numeric]() *Bridge[T] {
	return bridge.New[T]()
}

// NewView wraps data as a non-owning view.
func NewView(data []byte, tag Tag, shape tensor.Shape) (*View, error) {
	return bridge.NewView(data, tag, shape)
}

// AllocView creates a view owning a fresh zeroed buffer.
func AllocView(tag Tag, shape tensor.Shape) (*View, error) {
	return bridge.AllocView(tag, shape)
}

// As returns buf's elements as a []T aliasing its memory.
func As[T tensor.Numeric](buf Buffer) ([]T, error) {
	return bridge.As[T](buf)
}

// TagOf returns the tag for a native data type.
func TagOf(dt tensor.DataType) (Tag, bool) {
	return bridge.TagOf(dt)
}

// TagFor returns the tag for T.
func TagFor[T tensor.Numeric]() Tag {
	return bridge.TagFor[T]()
}

// TagByName looks a tag up by name, e.g. "float32".
func TagByName(name string) (Tag, bool) {
	return bridge.TagByName(name)
}

// TagByTypestr looks a tag up by array-interface type string, e.g. "<f4".
func TagByTypestr(typestr string) (Tag, bool) {
	return bridge.TagByTypestr(typestr)
}

// Tags returns every supported tag.
func Tags() []Tag {
	return bridge.Tags()
}
