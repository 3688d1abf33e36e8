package geom

// AABB is an axis-aligned bounding box held as a (Min, Max) corner pair
// with the invariant Min.i ≤ Max.i on every axis for non-empty boxes.
// Degenerate (zero-volume) boxes are permitted. The zero value is a
// degenerate box at the origin; call Reset to obtain the neutral element
// for componentwise expansion.
type AABB struct {
	Min, Max Vec3
}

// NewAABB returns the box spanning the componentwise min/max of a and b,
// so the argument order does not matter.
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: a.MinElem(b), Max: a.MaxElem(b)}
}

// Reset sets b to (+Inf, −Inf), the neutral element of ExpandPoint/Union:
// expanding it by any point yields the degenerate box at that point.
func (b *AABB) Reset() {
	b.Min = Vec3{X: Inf, Y: Inf, Z: Inf}
	b.Max = Vec3{X: -Inf, Y: -Inf, Z: -Inf}
}

// IsEmpty reports whether b is in the reset state (no point ever expanded
// into it).
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ExpandPoint grows b to contain p.
// Complexity: O(1).
func (b *AABB) ExpandPoint(p Vec3) {
	b.Min = b.Min.MinElem(p)
	b.Max = b.Max.MaxElem(p)
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.MinElem(o.Min), Max: b.Max.MaxElem(o.Max)}
}

// Dims returns Max − Min, the edge lengths of b.
func (b AABB) Dims() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of b.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Translate returns b shifted by d.
func (b AABB) Translate(d Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies in b, boundary inclusive.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsAABB reports whether o lies entirely inside b, boundary
// inclusive.
func (b AABB) ContainsAABB(o AABB) bool {
	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Overlaps reports whether b and o intersect on all three axes. Shared-face
// contact counts as overlap.
// Complexity: O(1).
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// OverlapsInterior reports whether b and o share interior volume: strict
// inequality on all axes, so shared-face contact does NOT count.
func (b AABB) OverlapsInterior(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// Intersect returns the boxwise intersection of b and o. The result is
// degenerate when the boxes touch and empty-invalid when they are disjoint;
// callers gate on Overlaps first where that matters.
func (b AABB) Intersect(o AABB) AABB {
	return AABB{Min: b.Min.MaxElem(o.Min), Max: b.Max.MinElem(o.Max)}
}

// Octant returns the i-th of the 8 equal sub-boxes of b, indexed from the
// min corner: bit 2 selects the +x half, bit 1 the +y half, bit 0 the +z
// half.
// Complexity: O(1).
func (b AABB) Octant(i int) AABB {
	c := b.Center()
	var o AABB
	if i&4 != 0 {
		o.Min.X, o.Max.X = c.X, b.Max.X
	} else {
		o.Min.X, o.Max.X = b.Min.X, c.X
	}
	if i&2 != 0 {
		o.Min.Y, o.Max.Y = c.Y, b.Max.Y
	} else {
		o.Min.Y, o.Max.Y = b.Min.Y, c.Y
	}
	if i&1 != 0 {
		o.Min.Z, o.Max.Z = c.Z, b.Max.Z
	} else {
		o.Min.Z, o.Max.Z = b.Min.Z, c.Z
	}

	return o
}

// Corners returns the 8 corner points of b, indexed with the same bit
// convention as Octant (bit 2 → Max.X, bit 1 → Max.Y, bit 0 → Max.Z).
func (b AABB) Corners() [8]Vec3 {
	var cs [8]Vec3
	for i := 0; i < 8; i++ {
		cs[i].X = b.Min.X
		if i&4 != 0 {
			cs[i].X = b.Max.X
		}
		cs[i].Y = b.Min.Y
		if i&2 != 0 {
			cs[i].Y = b.Max.Y
		}
		cs[i].Z = b.Min.Z
		if i&1 != 0 {
			cs[i].Z = b.Max.Z
		}
	}

	return cs
}

// BoxEdges lists the 12 edges of a box as pairs of Corners indices: exactly
// the corner pairs whose indices differ in a single bit.
var BoxEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}
