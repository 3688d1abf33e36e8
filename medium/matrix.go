package medium

import "github.com/katalvlaran/wavegrid/geom"

// contactArea returns the area of the shared face of two boxes touching on
// exactly one axis, and 0 for edge/corner contact or disjoint boxes.
func contactArea(a, b geom.AABB) geom.Real {
	ix := a.Intersect(b)
	d := ix.Dims()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	switch {
	case d.X == 0 && d.Y > 0 && d.Z > 0:
		return d.Y * d.Z
	case d.Y == 0 && d.X > 0 && d.Z > 0:
		return d.X * d.Z
	case d.Z == 0 && d.X > 0 && d.Y > 0:
		return d.X * d.Y
	}

	return 0
}

// CouplingMatrix returns the dense symmetric |P|×|P| matrix of shared-face
// contact areas between adjacent partitions — the geometric coupling
// coefficients a solver weights inter-partition energy exchange with.
// Entries for non-adjacent pairs are 0; the diagonal is 0.
// Complexity: O(V² ) memory, O(V + E) fill.
func (m *Medium) CouplingMatrix() [][]geom.Real {
	n := len(m.Partitions)
	out := make([][]geom.Real, n)
	for i := range out {
		out[i] = make([]geom.Real, n)
	}
	for i := range m.Partitions {
		for _, j := range m.Partitions[i].Adjacent {
			area := contactArea(m.Partitions[i].AABB, m.Partitions[j].AABB)
			out[i][j] = area
			out[j][i] = area
		}
	}

	return out
}
