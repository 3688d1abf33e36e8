package mesh

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/katalvlaran/wavegrid/geom"
)

// Mesh is a triangular surface mesh over typed vertex and index buffers,
// with a parallel attribute buffer of length = vertex count.
//
// The raw buffers are kept as supplied and decoded per their format tags on
// access, so same-width round-trips are bit-exact. A mesh either borrows
// the caller's buffers (AssignBuffers) or owns a private copy
// (CopyFromBuffers / New); the flag is immutable after construction and the
// borrowed buffers must not be mutated for the mesh's lifetime.
type Mesh struct {
	vb []byte
	ib []byte

	vertexCount int
	indexCount  int
	vf          VertexFormat
	idxf        IndexFormat

	attrs []Attribute
	aabb  geom.AABB
	owned bool

	// indices is the canonical decoded view of ib. The octree root aliases
	// this slice; it must never be mutated after construction.
	indices []uint32
}

// AssignBuffers constructs a Mesh borrowing the caller's buffers. vb holds
// vertexCount positions of three vf-scalars each, ib holds indexCount
// idxf-elements, both little-endian. All per-vertex attributes start as
// Solid.
// Complexity: O(V + I) for validation and decoding.
func AssignBuffers(vb []byte, vertexCount int, vf VertexFormat, ib []byte, indexCount int, idxf IndexFormat) (*Mesh, error) {
	return newMesh(vb, vertexCount, vf, ib, indexCount, idxf, false)
}

// CopyFromBuffers constructs a Mesh owning private copies of the supplied
// buffers. Semantics otherwise match AssignBuffers.
// Complexity: O(V + I).
func CopyFromBuffers(vb []byte, vertexCount int, vf VertexFormat, ib []byte, indexCount int, idxf IndexFormat) (*Mesh, error) {
	vbCopy := make([]byte, len(vb))
	copy(vbCopy, vb)
	ibCopy := make([]byte, len(ib))
	copy(ibCopy, ib)

	return newMesh(vbCopy, vertexCount, vf, ibCopy, indexCount, idxf, true)
}

// New constructs an owned Mesh from decoded vertices and canonical u32
// indices, encoding positions at 64-bit width. Attributes are taken from
// the vertices.
// Complexity: O(V + I).
func New(vertices []Vertex, indices []uint32) (*Mesh, error) {
	vb := make([]byte, len(vertices)*3*8)
	for i, v := range vertices {
		putF64 := func(k int, x geom.Real) {
			binary.LittleEndian.PutUint64(vb[(i*3+k)*8:], math.Float64bits(float64(x)))
		}
		putF64(0, v.Position.X)
		putF64(1, v.Position.Y)
		putF64(2, v.Position.Z)
	}
	ib := make([]byte, len(indices)*4)
	for i, ix := range indices {
		binary.LittleEndian.PutUint32(ib[i*4:], ix)
	}

	m, err := newMesh(vb, len(vertices), VertexF64, ib, len(indices), IndexU32, true)
	if err != nil {
		return nil, err
	}
	for i, v := range vertices {
		m.attrs[i] = v.Attr
	}

	return m, nil
}

func newMesh(vb []byte, vertexCount int, vf VertexFormat, ib []byte, indexCount int, idxf IndexFormat, owned bool) (*Mesh, error) {
	m := &Mesh{
		vb:          vb,
		ib:          ib,
		vertexCount: vertexCount,
		indexCount:  indexCount,
		vf:          vf,
		idxf:        idxf,
		owned:       owned,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	// Canonical index view plus range check in one pass.
	m.indices = make([]uint32, indexCount)
	var err error
	for i := 0; i < indexCount; i++ {
		raw := m.rawIndex(i)
		if raw < 0 || raw >= int64(vertexCount) {
			err = multierr.Append(err, fmt.Errorf("%w: index %d = %d, vertex count %d", ErrIndexRange, i, raw, vertexCount))
			continue
		}
		m.indices[i] = uint32(raw)
	}
	if err != nil {
		return nil, err
	}

	// Attributes default to Solid until the caller assigns them.
	m.attrs = make([]Attribute, vertexCount)
	for i := range m.attrs {
		m.attrs[i] = Solid()
	}

	// Derived bounding box over all positions.
	m.aabb.Reset()
	for i := 0; i < vertexCount; i++ {
		m.aabb.ExpandPoint(m.Position(i))
	}

	return m, nil
}

// validate aggregates every construction-invariant violation.
func (m *Mesh) validate() error {
	var err error
	if m.vf.Size() == 0 || m.idxf.Size() == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: vertex=%v index=%v", ErrBadFormat, m.vf, m.idxf))
		return err // element widths gate the size checks below
	}
	if m.vertexCount < 0 || len(m.vb) != m.vertexCount*3*m.vf.Size() {
		err = multierr.Append(err, fmt.Errorf("%w: vertex buffer %dB for %d %v vertices", ErrBufferSize, len(m.vb), m.vertexCount, m.vf))
	}
	if m.indexCount < 0 || len(m.ib) != m.indexCount*m.idxf.Size() {
		err = multierr.Append(err, fmt.Errorf("%w: index buffer %dB for %d %v indices", ErrBufferSize, len(m.ib), m.indexCount, m.idxf))
	}
	if m.indexCount%3 != 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrIndexCount, m.indexCount))
	}

	return err
}

// rawIndex decodes the i-th index per the format tag, sign-extended.
func (m *Mesh) rawIndex(i int) int64 {
	switch m.idxf {
	case IndexI8:
		return int64(int8(m.ib[i]))
	case IndexU8:
		return int64(m.ib[i])
	case IndexI16:
		return int64(int16(binary.LittleEndian.Uint16(m.ib[i*2:])))
	case IndexU16:
		return int64(binary.LittleEndian.Uint16(m.ib[i*2:]))
	case IndexI32:
		return int64(int32(binary.LittleEndian.Uint32(m.ib[i*4:])))
	case IndexU32:
		return int64(binary.LittleEndian.Uint32(m.ib[i*4:]))
	case IndexI64:
		return int64(binary.LittleEndian.Uint64(m.ib[i*8:]))
	case IndexU64:
		raw := binary.LittleEndian.Uint64(m.ib[i*8:])
		if raw > math.MaxInt64 {
			return -1 // out of any plausible vertex range; rejected upstream
		}
		return int64(raw)
	}
	panic("mesh: unknown index format")
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return m.vertexCount }

// IndexCount returns the number of indices (3 per face).
func (m *Mesh) IndexCount() int { return m.indexCount }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return m.indexCount / 3 }

// VertexFormat returns the vertex buffer element tag.
func (m *Mesh) VertexFormat() VertexFormat { return m.vf }

// IndexFormat returns the index buffer element tag.
func (m *Mesh) IndexFormat() IndexFormat { return m.idxf }

// Owned reports whether the mesh owns its buffers (true) or borrows them
// from the caller (false).
func (m *Mesh) Owned() bool { return m.owned }

// AABB returns the componentwise min/max over all vertex positions. Empty
// meshes return the reset box.
func (m *Mesh) AABB() geom.AABB { return m.aabb }

// Position decodes the position of vertex i. Panics if i is out of range,
// like slice indexing.
// Complexity: O(1).
func (m *Mesh) Position(i int) geom.Vec3 {
	if i < 0 || i >= m.vertexCount {
		panic("mesh: vertex index out of range")
	}
	base := i * 3 * m.vf.Size()
	at := func(k int) geom.Real {
		switch m.vf {
		case VertexF32:
			return geom.Real(math.Float32frombits(binary.LittleEndian.Uint32(m.vb[base+k*4:])))
		case VertexF64:
			return geom.Real(math.Float64frombits(binary.LittleEndian.Uint64(m.vb[base+k*8:])))
		}
		panic("mesh: unknown vertex format")
	}

	return geom.Vec3{X: at(0), Y: at(1), Z: at(2)}
}

// Index returns the i-th canonical index. Panics if i is out of range.
func (m *Mesh) Index(i int) uint32 { return m.indices[i] }

// Indices returns the canonical decoded index view. The slice is shared —
// the octree root aliases it — and must not be mutated.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Attribute returns the acoustic attribute of vertex i. Panics if i is out
// of range.
func (m *Mesh) Attribute(i int) Attribute { return m.attrs[i] }

// SetAttribute assigns the acoustic attribute of vertex i. Panics if i is
// out of range.
func (m *Mesh) SetAttribute(i int, a Attribute) { m.attrs[i] = a }

// SetAllAttributes assigns one attribute to every vertex.
// Complexity: O(V).
func (m *Mesh) SetAllAttributes(a Attribute) {
	for i := range m.attrs {
		m.attrs[i] = a
	}
}

// Face assembles the i-th triangle with positions and attributes resolved.
// Panics if i is out of face range.
// Complexity: O(1).
func (m *Mesh) Face(i int) Face {
	var f Face
	for k := 0; k < 3; k++ {
		idx := int(m.indices[i*3+k])
		f[k] = Vertex{Position: m.Position(idx), Attr: m.attrs[idx]}
	}

	return f
}

// FaceAABB returns the bounding box of the i-th triangle without
// assembling attribute data.
// Complexity: O(1).
func (m *Mesh) FaceAABB(i int) geom.AABB {
	var b geom.AABB
	b.Reset()
	for k := 0; k < 3; k++ {
		b.ExpandPoint(m.Position(int(m.indices[i*3+k])))
	}

	return b
}
