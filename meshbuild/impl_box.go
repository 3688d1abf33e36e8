// SPDX-License-Identifier: MIT
// Package: wavegrid/meshbuild
//
// impl_box.go — axis-aligned box shell generators (unit cube included).

package meshbuild

import (
	"errors"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
)

// ErrEmptyBox indicates a box generator received an empty (reset) AABB.
var ErrEmptyBox = errors.New("meshbuild: box must not be empty")

// boxFaces triangulates the 8 box corners (geom.AABB.Corners bit order)
// into 12 triangles, two per face, outward wound.
var boxFaces = [12][3]uint32{
	// -x face (corners 0,1,3,2)
	{0, 1, 3}, {0, 3, 2},
	// +x face (corners 4,6,7,5)
	{4, 6, 7}, {4, 7, 5},
	// -y face (corners 0,4,5,1)
	{0, 4, 5}, {0, 5, 1},
	// +y face (corners 2,3,7,6)
	{2, 3, 7}, {2, 7, 6},
	// -z face (corners 0,2,6,4)
	{0, 2, 6}, {0, 6, 4},
	// +z face (corners 1,5,7,3)
	{1, 5, 7}, {1, 7, 3},
}

// Box generates the triangulated shell of b: 8 vertices, 12 triangles.
// Returns ErrEmptyBox when b is in the reset state; degenerate
// (zero-volume) boxes are permitted and produce flat shells.
// Complexity: O(1) time and memory.
func Box(b geom.AABB, opts ...Option) (*mesh.Mesh, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBox
	}
	cfg := newConfig(opts)

	corners := b.Corners()
	vertices := make([]mesh.Vertex, 8)
	for i, p := range corners {
		vertices[i] = mesh.Vertex{Position: p, Attr: cfg.attrFn(i, p)}
	}

	indices := make([]uint32, 0, 36)
	for _, f := range boxFaces {
		indices = append(indices, f[0], f[1], f[2])
	}

	return mesh.New(vertices, indices)
}

// UnitCube generates the shell of the unit cube (0,0,0)–(1,1,1): the
// canonical 8-vertex, 12-triangle test mesh.
// Complexity: O(1) time and memory.
func UnitCube(opts ...Option) (*mesh.Mesh, error) {
	return Box(geom.NewAABB(geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}), opts...)
}
