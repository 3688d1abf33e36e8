// SPDX-License-Identifier: MIT
// Package: wavegrid/meshbuild
//
// impl_plane.go — rectangular plane patch generator.

package meshbuild

import (
	"errors"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
)

// ErrBadDimensions indicates a plane generator received a non-positive
// subdivision count.
var ErrBadDimensions = errors.New("meshbuild: subdivision counts must be ≥ 1")

// Plane generates a rectangular patch spanned by origin + u·du + v·dv for
// u ∈ [0,nu], v ∈ [0,nv], subdivided into nu×nv quads of two triangles
// each. Vertices are laid out v-major, matching the raster convention of
// the lattice.
// Complexity: O(nu×nv) time and memory.
func Plane(origin, du, dv geom.Vec3, nu, nv int, opts ...Option) (*mesh.Mesh, error) {
	if nu < 1 || nv < 1 {
		return nil, ErrBadDimensions
	}
	cfg := newConfig(opts)

	cols := nu + 1
	rows := nv + 1
	vertices := make([]mesh.Vertex, 0, cols*rows)
	for v := 0; v < rows; v++ {
		for u := 0; u < cols; u++ {
			p := origin.Add(du.Scale(geom.Real(u))).Add(dv.Scale(geom.Real(v)))
			vertices = append(vertices, mesh.Vertex{
				Position: p,
				Attr:     cfg.attrFn(len(vertices), p),
			})
		}
	}

	indices := make([]uint32, 0, nu*nv*6)
	at := func(u, v int) uint32 { return uint32(v*cols + u) }
	for v := 0; v < nv; v++ {
		for u := 0; u < nu; u++ {
			a, b, c, d := at(u, v), at(u+1, v), at(u+1, v+1), at(u, v+1)
			indices = append(indices, a, b, c, a, c, d)
		}
	}

	return mesh.New(vertices, indices)
}
