package bridge

import "github.com/born-ml/arrayview/internal/tensor"

// Runtime is the foreign side of the bridge: it creates the wrapper objects
// that represent arrays inside a scripting environment.
//
// Wrap must not copy data. A runtime that cannot create the wrapper returns
// an error wrapping ErrAllocation.
type Runtime interface {
	// Wrap creates a non-owning view over data.
	Wrap(data []byte, tag Tag, shape tensor.Shape) (*View, error)

	// NewArray creates a view that owns a fresh zeroed buffer.
	NewArray(tag Tag, shape tensor.Shape) (*View, error)
}

// Heap is the runtime used when no scripting environment is involved.
// Views live on the Go heap and allocation only fails on invalid arguments.
var Heap Runtime = heapRuntime{}

type heapRuntime struct{}

func (heapRuntime) Wrap(data []byte, tag Tag, shape tensor.Shape) (*View, error) {
	return NewView(data, tag, shape)
}

func (heapRuntime) NewArray(tag Tag, shape tensor.Shape) (*View, error) {
	return AllocView(tag, shape)
}
