// Package objfile reads and writes the Wavefront-OBJ surfaces of the
// pipeline.
//
// The reader ingests `v x y z` and `f i j k …` records (fan-triangulating
// polygons, converting 1-based indices), ignores the record kinds the
// pipeline has no use for, and reports unknown tokens as recoverable
// per-line diagnostics via Decoder.Warnings. Malformed numeric fields and
// out-of-range face indices are fatal.
//
// The writers emit box wireframes: one `v` line per unique box corner
// (deduplicated by exact coordinate) and one 2-index `f a b` line per box
// edge, 12 per box, 1-based — for a mesh's bounding box, every node of an
// octree, and every partition of a medium. WriteMesh additionally exports
// the actual triangle surface.
package objfile
