package geom

// Intersection kernels. Pure functions over Vec3/AABB; boundaries are
// inclusive throughout, so grazing contact counts as intersection.

// separatedOnAxis projects the (box-centered) triangle p0,p1,p2 and a box
// of half-extents h onto axis and reports whether the projections are
// strictly disjoint. Touching projections are not separated.
func separatedOnAxis(p0, p1, p2, axis Vec3, h Vec3) bool {
	d0 := p0.Dot(axis)
	d1 := p1.Dot(axis)
	d2 := p2.Dot(axis)
	lo := min(d0, d1, d2)
	hi := max(d0, d1, d2)
	r := h.X*Abs(axis.X) + h.Y*Abs(axis.Y) + h.Z*Abs(axis.Z)

	return lo > r || hi < -r
}

// TriangleIntersectsAABB reports whether triangle (v0,v1,v2) intersects
// box, by the Separating Axis Theorem over the 13 candidate axes: the 3 box
// normals, the triangle normal, and the 9 cross products of box edge
// directions with triangle edges. Degenerate (zero-area) triangles never
// intersect.
// Complexity: O(1), no allocation.
func TriangleIntersectsAABB(v0, v1, v2 Vec3, box AABB) bool {
	c := box.Center()
	h := box.Dims().Scale(0.5)

	// Work in box-centered coordinates.
	p0 := v0.Sub(c)
	p1 := v1.Sub(c)
	p2 := v2.Sub(c)

	e0 := p1.Sub(p0)
	e1 := p2.Sub(p1)
	e2 := p0.Sub(p2)

	n := e0.Cross(e1)
	if n.Norm2() == 0 {
		// Zero area: collinear or coincident vertices.
		return false
	}

	// Box face normals (the coordinate axes).
	if min(p0.X, p1.X, p2.X) > h.X || max(p0.X, p1.X, p2.X) < -h.X {
		return false
	}
	if min(p0.Y, p1.Y, p2.Y) > h.Y || max(p0.Y, p1.Y, p2.Y) < -h.Y {
		return false
	}
	if min(p0.Z, p1.Z, p2.Z) > h.Z || max(p0.Z, p1.Z, p2.Z) < -h.Z {
		return false
	}

	// Triangle plane normal.
	if separatedOnAxis(p0, p1, p2, n, h) {
		return false
	}

	// 9 cross-product axes: box edge direction u_i × triangle edge e_j.
	// u_i are the coordinate axes, so the crosses have one zero component.
	for _, e := range [3]Vec3{e0, e1, e2} {
		if separatedOnAxis(p0, p1, p2, Vec3{X: 0, Y: -e.Z, Z: e.Y}, h) {
			return false
		}
		if separatedOnAxis(p0, p1, p2, Vec3{X: e.Z, Y: 0, Z: -e.X}, h) {
			return false
		}
		if separatedOnAxis(p0, p1, p2, Vec3{X: -e.Y, Y: e.X, Z: 0}, h) {
			return false
		}
	}

	return true
}

// ClipTriangleAABB clips triangle (v0,v1,v2) against box and returns the
// resulting convex polygon, empty when the triangle misses the box. For the
// axis-aligned half-space set this is Sutherland–Hodgman over the 6 box
// faces; each face adds at most one vertex, so the polygon has at most 9
// points.
// Complexity: O(1) amortized; allocates only the result polygon.
func ClipTriangleAABB(v0, v1, v2 Vec3, box AABB) []Vec3 {
	poly := []Vec3{v0, v1, v2}
	// Each plane is (axis, boundary value, keep-side sign).
	for axis := 0; axis < 3; axis++ {
		poly = clipAgainstPlane(poly, axis, box.Min.At(axis), +1)
		if len(poly) == 0 {
			return nil
		}
		poly = clipAgainstPlane(poly, axis, box.Max.At(axis), -1)
		if len(poly) == 0 {
			return nil
		}
	}

	return poly
}

// clipAgainstPlane keeps the part of poly with sign*(p[axis]-bound) ≥ 0.
func clipAgainstPlane(poly []Vec3, axis int, bound Real, sign Real) []Vec3 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]Vec3, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevIn := sign*(prev.At(axis)-bound) >= 0
	for _, cur := range poly {
		curIn := sign*(cur.At(axis)-bound) >= 0
		if curIn != prevIn {
			// Edge crosses the plane; emit the crossing point.
			t := (bound - prev.At(axis)) / (cur.At(axis) - prev.At(axis))
			out = append(out, prev.Add(cur.Sub(prev).Scale(t)))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}

	return out
}

// SegmentIntersectsAABB intersects the segment p0→p1 with box using the
// slab method. On hit it returns the entry and exit parameters clamped to
// [0,1] along the segment; tmin == tmax marks grazing contact. A segment
// fully inside the box hits with tmin = 0, tmax = 1.
// Complexity: O(1), no allocation.
func SegmentIntersectsAABB(p0, p1 Vec3, box AABB) (tmin, tmax Real, hit bool) {
	d := p1.Sub(p0)
	tmin, tmax = 0, 1
	for axis := 0; axis < 3; axis++ {
		o := p0.At(axis)
		dir := d.At(axis)
		lo := box.Min.At(axis)
		hi := box.Max.At(axis)
		if dir == 0 {
			// Parallel to the slab: inside or out, inclusively.
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		t0 := (lo - o) / dir
		t1 := (hi - o) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = max(tmin, t0)
		tmax = min(tmax, t1)
		if tmin > tmax {
			return 0, 0, false
		}
	}

	return tmin, tmax, true
}
