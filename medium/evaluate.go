package medium

import (
	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
	"github.com/katalvlaran/wavegrid/octree"
)

// EvaluateCell computes the acoustic attribute of an axis-aligned cell by
// Shepard interpolation: every vertex of every triangle that intersects
// the cell contributes its attribute with weight 1/d² to the cell center.
// A vertex coinciding with the center wins outright and its attribute is
// returned verbatim. Cells no triangle intersects evaluate to Air.
// Complexity: O(candidate faces).
func EvaluateCell(oct *octree.Octree, cell geom.AABB) mesh.Attribute {
	m := oct.Mesh()
	center := cell.Center()

	ib := oct.QueryPotentialFaces(cell)

	var sum mesh.Attribute
	var sumW geom.Real
	seen := make(map[[3]uint32]struct{}, len(ib)/3)
	for t := 0; t+2 < len(ib); t += 3 {
		tri := [3]uint32{ib[t], ib[t+1], ib[t+2]}
		if _, dup := seen[tri]; dup {
			// The query lists a triangle once per leaf it spans.
			continue
		}
		seen[tri] = struct{}{}

		v0 := m.Position(int(tri[0]))
		v1 := m.Position(int(tri[1]))
		v2 := m.Position(int(tri[2]))
		if !geom.TriangleIntersectsAABB(v0, v1, v2, cell) {
			continue
		}

		for _, idx := range tri {
			p := m.Position(int(idx))
			a := m.Attribute(int(idx))
			d2 := p.Sub(center).Norm2()
			if d2 == 0 {
				return a
			}
			w := 1 / d2
			sum.Reflection += a.Reflection * w
			sum.Transmission += a.Transmission * w
			sum.Absorption += a.Absorption * w
			sumW += w
		}
	}

	if sumW == 0 {
		return mesh.Air()
	}
	sum.Reflection /= sumW
	sum.Transmission /= sumW
	sum.Absorption /= sumW

	return sum.Normalize()
}
