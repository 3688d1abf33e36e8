package objfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/medium"
	"github.com/katalvlaran/wavegrid/mesh"
	"github.com/katalvlaran/wavegrid/octree"
)

// wireframe accumulates box wireframes: corners deduplicated by exact
// coordinate (Vec3 value equality as a map key, so +0 and −0 coincide),
// edges as 1-based index pairs.
type wireframe struct {
	order   []geom.Vec3
	corner  map[geom.Vec3]int
	edges   [][2]int
}

func newWireframe() *wireframe {
	return &wireframe{corner: make(map[geom.Vec3]int)}
}

// add registers the 12 edges of box, sharing corners with boxes already
// added.
func (wf *wireframe) add(box geom.AABB) {
	cs := box.Corners()
	var ids [8]int
	for i, p := range cs {
		id, ok := wf.corner[p]
		if !ok {
			id = len(wf.order)
			wf.corner[p] = id
			wf.order = append(wf.order, p)
		}
		ids[i] = id
	}
	for _, e := range geom.BoxEdges {
		wf.edges = append(wf.edges, [2]int{ids[e[0]], ids[e[1]]})
	}
}

// writeTo emits all v lines followed by all 2-index f lines, 1-based.
func (wf *wireframe) writeTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range wf.order {
		fmt.Fprintf(bw, "v %g %g %g\n", float64(p.X), float64(p.Y), float64(p.Z))
	}
	for _, e := range wf.edges {
		fmt.Fprintf(bw, "f %d %d\n", e[0]+1, e[1]+1)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "objfile: write wireframe")
	}

	return nil
}

// WriteMesh exports the triangle surface of m: one v line per vertex, one
// 3-index f line per face, 1-based.
// Complexity: O(V + F).
func WriteMesh(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		fmt.Fprintf(bw, "v %g %g %g\n", float64(p.X), float64(p.Y), float64(p.Z))
	}
	for f := 0; f < m.FaceCount(); f++ {
		fmt.Fprintf(bw, "f %d %d %d\n", m.Index(f*3)+1, m.Index(f*3+1)+1, m.Index(f*3+2)+1)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "objfile: write mesh")
	}

	return nil
}

// WriteMeshAABB exports the wireframe of the mesh bounding box: 8 corners,
// 12 edges.
func WriteMeshAABB(w io.Writer, m *mesh.Mesh) error {
	wf := newWireframe()
	if !m.AABB().IsEmpty() {
		wf.add(m.AABB())
	}

	return wf.writeTo(w)
}

// WriteOctree exports the wireframe of every node box of o, the root and
// all descendants, in arena order.
// Complexity: O(nodes).
func WriteOctree(w io.Writer, o *octree.Octree) error {
	wf := newWireframe()
	o.Walk(func(box geom.AABB, _ bool, _ int) {
		if !box.IsEmpty() {
			wf.add(box)
		}
	})

	return wf.writeTo(w)
}

// WriteMedium exports the wireframe of every partition box of med.
// Complexity: O(partitions).
func WriteMedium(w io.Writer, med *medium.Medium) error {
	wf := newWireframe()
	for i := range med.Partitions {
		wf.add(med.Partitions[i].AABB)
	}

	return wf.writeTo(w)
}
