// Package octree builds a spatial index over the triangles of a mesh and
// answers the one query the decomposition pipeline needs: which faces might
// intersect a given axis-aligned box.
//
// The tree is an arena of nodes addressed by index — children and parents
// are indices, not pointers — so the structure is flat, cheap to walk with
// an explicit stack, and free of self-referential ownership. Every node
// stores the triangle index triples (from the source mesh's index buffer)
// whose bounding boxes overlap the node's box. The root aliases the mesh's
// canonical index view directly; the octree never copies or frees it.
//
// Subdivision stops when a node holds at most one triangle or when the
// node's box is already smaller than the requested smallest cell on any
// axis, which bounds the tree for any input.
//
// QueryPotentialFaces returns a SUPERSET of the triangles whose AABB meets
// the query box (and may list a triangle more than once when it spans
// several leaves); callers filter with geom.TriangleIntersectsAABB.
package octree
