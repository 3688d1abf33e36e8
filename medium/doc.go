// Package medium decomposes the volume around a mesh into axis-aligned
// partitions of uniform acoustic attribute — the output a time-domain
// acoustic solver consumes.
//
// The pipeline: BuildFromMesh constructs an octree over the mesh, tiles
// the boundary (the mesh AABB unless overridden) into grid cells, and runs
// a decomposition strategy. The systematic strategy grows each seed cell
// outward one slice at a time, merging a slice only when every cell in it
// evaluates to exactly the seed's attribute, and spawns new seeds from the
// cells that broke a merge. Every spawn records a directed parent→child
// adjacency edge in construction order.
//
// Cell attributes come from Shepard (inverse squared distance, p=2)
// interpolation over the vertices of the triangles that actually intersect
// the cell; cells no triangle touches evaluate to Air, which makes holes
// in the mesh navigable by design.
//
// Attribute comparison during growth is exact bit equality. This is
// deliberate and pinned by tests: the decomposition must be
// bit-reproducible across runs.
package medium
