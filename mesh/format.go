package mesh

// VertexFormat tags the element width of a vertex buffer: three consecutive
// scalars of the tagged width per vertex, little-endian.
type VertexFormat uint8

const (
	// VertexF32 stores positions as three float32 per vertex.
	VertexF32 VertexFormat = iota
	// VertexF64 stores positions as three float64 per vertex.
	VertexF64
)

// Size returns the byte width of one position scalar, or 0 for an unknown
// tag.
func (f VertexFormat) Size() int {
	switch f {
	case VertexF32:
		return 4
	case VertexF64:
		return 8
	}

	return 0
}

// String implements fmt.Stringer.
func (f VertexFormat) String() string {
	switch f {
	case VertexF32:
		return "f32"
	case VertexF64:
		return "f64"
	}

	return "vertex-format(?)"
}

// IndexFormat tags the element width and signedness of an index buffer.
// Signed variants exist for buffer round-tripping; negative values are
// rejected by validation.
type IndexFormat uint8

const (
	// IndexI8 stores indices as int8.
	IndexI8 IndexFormat = iota
	// IndexU8 stores indices as uint8.
	IndexU8
	// IndexI16 stores indices as int16.
	IndexI16
	// IndexU16 stores indices as uint16.
	IndexU16
	// IndexI32 stores indices as int32.
	IndexI32
	// IndexU32 stores indices as uint32.
	IndexU32
	// IndexI64 stores indices as int64.
	IndexI64
	// IndexU64 stores indices as uint64.
	IndexU64
)

// Size returns the byte width of one index, or 0 for an unknown tag.
func (f IndexFormat) Size() int {
	switch f {
	case IndexI8, IndexU8:
		return 1
	case IndexI16, IndexU16:
		return 2
	case IndexI32, IndexU32:
		return 4
	case IndexI64, IndexU64:
		return 8
	}

	return 0
}

// String implements fmt.Stringer.
func (f IndexFormat) String() string {
	switch f {
	case IndexI8:
		return "i8"
	case IndexU8:
		return "u8"
	case IndexI16:
		return "i16"
	case IndexU16:
		return "u16"
	case IndexI32:
		return "i32"
	case IndexU32:
		return "u32"
	case IndexI64:
		return "i64"
	case IndexU64:
		return "u64"
	}

	return "index-format(?)"
}
