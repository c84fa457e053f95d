// Package bridge shares native vector and matrix buffers with scripting
// runtimes without copying element data.
//
// The bridge works in both directions:
//
//	native -> runtime:  Bridge.VectorView, Bridge.MatrixView
//	runtime -> native:  Bridge.VectorFromView, Bridge.MatrixFromView
//
// A View carries a data pointer, an element type Tag, a shape and implied
// row-major contiguous strides. Each native DataType maps to exactly one Tag
// through a single lookup table; see TagOf, TagByName and TagByTypestr.
//
// The runtime -> native direction always takes an explicit shape from the
// caller. A view's own shape metadata is never used to derive it, because a
// runtime may hand over buffers whose metadata is absent or unreliable.
//
// Example usage:
//
//	b := bridge.New[float32]()
//	v := tensor.VectorOf[float32](1, 2, 3)
//
//	view, err := b.VectorView(bridge.Heap, v)
//	if err != nil {
//	    return err
//	}
//	_ = view.SetFloat(0, 9) // v.At(0) == 9
//
//	back, err := b.VectorFromView(view, tensor.Shape{3})
//	// back.Pointer() == v.Pointer()
//
// Neither side synchronizes access. Callers that touch a shared buffer from
// more than one goroutine must coordinate externally.
package bridge
