package bridge

import "errors"

// Every message is prefixed with "bridge:" so failures are easy to grep.
// Operations wrap these sentinels with context; callers match them with errors.Is.
var (
	// ErrAllocation is returned when the runtime cannot allocate the wrapper
	// object for a view.
	ErrAllocation = errors.New("bridge: view allocation failed")

	// ErrTypeMismatch is returned when a buffer's element type tag differs
	// from the element type of the bridge instantiation, or when a value
	// handed over by a runtime is not an array buffer at all.
	ErrTypeMismatch = errors.New("bridge: element type mismatch")

	// ErrShapeMismatch is returned when a requested shape does not describe
	// exactly the elements available in the buffer.
	ErrShapeMismatch = errors.New("bridge: shape mismatch")

	// ErrNilInput is returned when a nil vector, matrix or buffer is passed.
	ErrNilInput = errors.New("bridge: nil input")

	// ErrMisaligned is returned when a buffer's base address cannot hold
	// elements of the requested type.
	ErrMisaligned = errors.New("bridge: misaligned buffer")

	// ErrIndexOutOfRange is returned by element accessors on views.
	ErrIndexOutOfRange = errors.New("bridge: index out of range")
)
