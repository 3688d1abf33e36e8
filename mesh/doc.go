// Package mesh models the triangular surface meshes wavegrid consumes:
// typed vertex and index buffers, a parallel per-vertex acoustic attribute
// buffer, and the derived bounding box.
//
// Buffers keep the caller's raw bytes together with element-format tags and
// decode on access. This preserves bit-exact round-trips for same-width
// types and lets a mesh either borrow its buffers (AssignBuffers) or own a
// private copy (CopyFromBuffers); the ownership flag is immutable after
// construction.
//
// Invariants enforced at construction:
//
//   - the index count is divisible by 3 (triangles only);
//   - every index addresses an existing vertex;
//   - buffer lengths match count × element width;
//   - the AABB equals the componentwise min/max over all positions.
//
// Attributes are (reflection, transmission, absorption) triples. Equality
// is exact bit equality — the region-growing predicate of the decomposer —
// and normalization rescales the triple to unit sum, replacing an all-zero
// triple with Solid.
package mesh
