// Package grid treats a 3D axis-aligned boundary as a lattice of equally
// sized cells — the atomic units the medium decomposer grows partitions
// from. It supports:
//
//   - Raster-order iteration over all cells (z innermost, then y, then x)
//   - O(1) index ↔ coordinate conversion
//   - Cell AABB construction with min anchored to the boundary min corner
//   - Mapping lattice-aligned boxes back to index ranges
//
// Cell counts per axis are ⌊boundary size / cell size⌋ with a few-ulp
// relative slack, so a boundary that is an exact multiple of the cell size
// tiles without losing its last layer to rounding.
package grid
