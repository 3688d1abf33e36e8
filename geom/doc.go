// Package geom provides the numeric base of wavegrid: the build-time
// selectable Real scalar, 3-component vectors, axis-aligned bounding boxes,
// and the pure intersection kernels the spatial pipeline is built on.
//
// Conventions:
//
//   - All geometric math is carried out in Real (float64 by default,
//     float32 under the wavegrid_real32 build tag). Eps is the machine
//     epsilon of that width.
//   - Boundary contact counts as intersection: every kernel treats box
//     faces inclusively (≤, ≥), so two boxes sharing a face overlap and a
//     triangle grazing a cell face intersects it.
//   - Kernels are pure functions. None of them allocates, with the single
//     exception of ClipTriangleAABB, which returns the clip polygon.
//
// Octant indexing follows the parent's min corner: bit 2 selects +x,
// bit 1 selects +y, bit 0 selects +z.
package geom
