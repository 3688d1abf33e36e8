package octree

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
)

// node is one arena entry. children is the arena index of the first of 8
// contiguous children, or -1 for a leaf; parent is -1 for the root.
type node struct {
	aabb     geom.AABB
	parent   int32
	children int32
	// ib holds triangle index triples from the mesh index buffer whose
	// face AABB overlaps this node. The root's ib aliases the mesh view.
	ib []uint32
}

// Octree indexes the faces of a mesh for box queries. It borrows the mesh
// non-destructively for its own lifetime; the mesh must not be mutated
// while the octree is alive.
type Octree struct {
	mesh     *mesh.Mesh
	smallest geom.Vec3
	nodes    []node
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a zap logger to the build; progress is reported at
// debug level. Panics on nil — pass zap.NewNop() (the default) to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("octree: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}

// Build constructs the octree over m. smallest bounds subdivision: no node
// smaller than smallest on any axis is split further. An empty mesh builds
// successfully into a single-root octree with an empty index buffer.
// Complexity: O(F·D) time where D is tree depth, O(nodes + stored triples)
// memory.
func Build(m *mesh.Mesh, smallest geom.Vec3, opts ...Option) (*Octree, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if smallest.X <= 0 || smallest.Y <= 0 || smallest.Z <= 0 {
		return nil, ErrCellSize
	}
	cfg := buildConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	o := &Octree{mesh: m, smallest: smallest}
	// The root inherits the mesh AABB and aliases its entire index view.
	o.nodes = append(o.nodes, node{
		aabb:     m.AABB(),
		parent:   -1,
		children: -1,
		ib:       m.Indices(),
	})
	if m.FaceCount() == 0 {
		// Nothing to index; keep the bare root.
		cfg.logger.Debug("octree built", zap.Int("nodes", 1), zap.Int("faces", 0))
		return o, nil
	}

	// Depth-first over a work stack; the arena grows as nodes split.
	stack := []int32{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if o.nodes[i].children >= 0 {
			continue
		}
		parentIB := o.nodes[i].ib
		if len(parentIB) <= 3 {
			// At most one triangle: indexing cannot get finer.
			continue
		}
		dims := o.nodes[i].aabb.Dims()
		if dims.X < smallest.X || dims.Y < smallest.Y || dims.Z < smallest.Z {
			continue
		}

		// Face AABBs of the parent's triples, computed once for all 8
		// octants.
		faceBoxes := make([]geom.AABB, len(parentIB)/3)
		for t := range faceBoxes {
			var b geom.AABB
			b.Reset()
			for k := 0; k < 3; k++ {
				b.ExpandPoint(m.Position(int(parentIB[t*3+k])))
			}
			faceBoxes[t] = b
		}

		parentAABB := o.nodes[i].aabb
		base := int32(len(o.nodes))
		for oct := 0; oct < 8; oct++ {
			child := node{aabb: parentAABB.Octant(oct), parent: i, children: -1}
			for t, fb := range faceBoxes {
				if fb.Overlaps(child.aabb) {
					child.ib = append(child.ib, parentIB[t*3], parentIB[t*3+1], parentIB[t*3+2])
				}
			}
			o.nodes = append(o.nodes, child)
		}
		o.nodes[i].children = base
		for oct := int32(7); oct >= 0; oct-- {
			stack = append(stack, base+oct)
		}
	}

	cfg.logger.Debug("octree built",
		zap.Int("nodes", len(o.nodes)),
		zap.Int("faces", m.FaceCount()))

	return o, nil
}

// Mesh returns the indexed mesh.
func (o *Octree) Mesh() *mesh.Mesh { return o.mesh }

// Len returns the number of nodes in the arena (≥ 1).
func (o *Octree) Len() int { return len(o.nodes) }

// Root returns the root node's bounding box, equal to the mesh AABB.
func (o *Octree) Root() geom.AABB { return o.nodes[0].aabb }

// SmallestCell returns the subdivision floor the tree was built with.
func (o *Octree) SmallestCell() geom.Vec3 { return o.smallest }

// Walk visits every node in arena order (root first, then children in
// allocation order) and reports its box, leaf flag and triangle count.
// Complexity: O(nodes).
func (o *Octree) Walk(visit func(box geom.AABB, leaf bool, triangles int)) {
	for i := range o.nodes {
		n := &o.nodes[i]
		visit(n.aabb, n.children < 0, len(n.ib)/3)
	}
}

// QueryPotentialFaces descends from the root and concatenates the index
// buffers of every leaf whose box overlaps the query box. The result is a
// superset of the triangles whose AABB meets box, as index triples in the
// mesh's canonical width; a triangle spanning several leaves appears once
// per leaf. Callers intersect precisely.
// Complexity: O(touched nodes + output).
func (o *Octree) QueryPotentialFaces(box geom.AABB) []uint32 {
	var out []uint32
	stack := []int32{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &o.nodes[i]
		if !n.aabb.Overlaps(box) {
			continue
		}
		if n.children < 0 {
			out = append(out, n.ib...)
			continue
		}
		for oct := int32(7); oct >= 0; oct-- {
			stack = append(stack, n.children+oct)
		}
	}

	return out
}
