package mesh

import "errors"

// Sentinel errors for mesh construction and validation.
var (
	// ErrBufferSize indicates a buffer length that does not match
	// count × element width.
	ErrBufferSize = errors.New("mesh: buffer length does not match element count")

	// ErrIndexCount indicates an index count not divisible by 3.
	ErrIndexCount = errors.New("mesh: index count must be divisible by 3")

	// ErrIndexRange indicates an index referencing a vertex past the vertex
	// count (or a negative index in a signed format).
	ErrIndexRange = errors.New("mesh: index out of vertex range")

	// ErrBadFormat indicates an unknown vertex- or index-format tag.
	ErrBadFormat = errors.New("mesh: unknown buffer element format")
)
