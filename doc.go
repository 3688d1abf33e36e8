// Package wavegrid is a wave-propagation pre-processor: it turns a
// triangular surface mesh whose vertices carry acoustic attributes
// (reflection, transmission, absorption) into a set of axis-aligned
// rectangular partitions of uniform acoustic properties, linked by an
// adjacency graph — the inputs a time-domain acoustic solver consumes.
//
// 🚀 What is wavegrid?
//
//	A single-threaded, allocation-conscious geometry pipeline:
//
//	  • geom      — Real scalar, Vec3, AABB and the intersection kernels
//	  • mesh      — typed vertex/index buffers with per-vertex attributes
//	  • meshbuild — parameterized mesh generators (cube, box, plane)
//	  • octree    — arena-based spatial index answering "which faces might
//	                intersect this box?"
//	  • grid      — the axis-aligned cell lattice tiling a boundary
//	  • medium    — cell attribute evaluation and the region-growing
//	                decomposer producing partitions + adjacency
//	  • objfile   — Wavefront-OBJ reader and wireframe writers
//
// Typical use:
//
//	m, _ := meshbuild.UnitCube(meshbuild.WithAttribute(mesh.Solid()))
//	med, err := medium.BuildFromMesh(m, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
//	// med.Partitions now tiles the mesh AABB; med.Graph() is the adjacency.
//
// Precision of the Real scalar is fixed at build time: float64 by default,
// float32 under the wavegrid_real32 build tag.
//
// All operations are blocking and keep no global state beyond an optional
// zap logging sink passed in via options. Two pipelines may run concurrently
// only if their meshes are not mutated during the calls.
package wavegrid
