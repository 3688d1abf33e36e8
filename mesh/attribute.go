package mesh

import "github.com/katalvlaran/wavegrid/geom"

// Attribute is the per-vertex acoustic triple. Components are non-negative
// and, after Normalize, sum to 1.
type Attribute struct {
	Reflection   geom.Real
	Transmission geom.Real
	Absorption   geom.Real
}

// Solid is the default attribute of fully absorbing matter: (0, 0, 1).
func Solid() Attribute { return Attribute{Absorption: 1} }

// Air is the default attribute of free space: (0, 1, 0).
func Air() Attribute { return Attribute{Transmission: 1} }

// Sum returns reflection + transmission + absorption.
func (a Attribute) Sum() geom.Real {
	return a.Reflection + a.Transmission + a.Absorption
}

// Normalize rescales the triple so its components sum to 1. An all-zero
// triple carries no information and is replaced with Solid.
// Complexity: O(1).
func (a Attribute) Normalize() Attribute {
	s := a.Sum()
	if s == 0 {
		return Solid()
	}

	return Attribute{
		Reflection:   a.Reflection / s,
		Transmission: a.Transmission / s,
		Absorption:   a.Absorption / s,
	}
}

// Equal reports exact bit equality of the two triples. This is the
// region-growing predicate of the decomposer; no tolerance is applied.
func (a Attribute) Equal(b Attribute) bool {
	return a == b
}

// Vertex pairs a position with its acoustic attribute.
type Vertex struct {
	Position geom.Vec3
	Attr     Attribute
}

// Face is a triangle of vertices in index-buffer order.
type Face [3]Vertex

// AABB returns the bounding box of the face.
func (f Face) AABB() geom.AABB {
	var b geom.AABB
	b.Reset()
	for _, v := range f {
		b.ExpandPoint(v.Position)
	}

	return b
}

// AttributeAt interpolates the face attribute at point p by barycentric
// weighting. Points outside the triangle extrapolate; degenerate faces fall
// back to the first vertex's attribute. The decomposer does not use this
// path — cell evaluation weights by inverse squared distance instead — but
// it is the natural probe for a single face.
// Complexity: O(1).
func (f Face) AttributeAt(p geom.Vec3) Attribute {
	e0 := f[1].Position.Sub(f[0].Position)
	e1 := f[2].Position.Sub(f[0].Position)
	ep := p.Sub(f[0].Position)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := ep.Dot(e0)
	d21 := ep.Dot(e1)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return f[0].Attr
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	return Attribute{
		Reflection:   u*f[0].Attr.Reflection + v*f[1].Attr.Reflection + w*f[2].Attr.Reflection,
		Transmission: u*f[0].Attr.Transmission + v*f[1].Attr.Transmission + w*f[2].Attr.Transmission,
		Absorption:   u*f[0].Attr.Absorption + v*f[1].Attr.Absorption + w*f[2].Attr.Absorption,
	}.Normalize()
}
