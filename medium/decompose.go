package medium

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/mesh"
	"github.com/katalvlaran/wavegrid/octree"
)

// Decomposer is a pluggable decomposition strategy: it fills
// med.Partitions from the spatial index.
type Decomposer interface {
	Decompose(med *Medium, oct *octree.Octree) error
}

// defaultSoundSpeed is assigned to every committed partition; callers
// rescale per material afterwards.
const defaultSoundSpeed geom.Real = 1

// The six growth directions. Order is part of the construction-order
// contract: slices are probed +x, −x, +y, −y, +z, −z.
const (
	dirPosX = iota
	dirNegX
	dirPosY
	dirNegY
	dirPosZ
	dirNegZ
	dirCount
)

const allOccupied = 1<<dirCount - 1

// Systematic is the region-growing strategy: starting from the cell at the
// boundary min corner, each seed expands slice by slice until blocked on
// all six sides, commits one partition, and recurses into the cells whose
// attribute broke a merge.
type Systematic struct {
	// Logger reports growth at debug level; nil silences.
	Logger *zap.Logger
}

// Decompose implements Decomposer.
// Complexity: O(cells × evaluation cost); each recursion commits exactly
// one partition and every spawn covers at least one previously uncovered
// cell, so the process is bounded by the total cell count.
func (s Systematic) Decompose(med *Medium, oct *octree.Octree) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lat, err := grid.New(med.Boundary, med.GridSize)
	if err != nil {
		return err
	}
	if lat.Len() == 0 {
		// Boundary smaller than one grid cell: a single free-space
		// partition covering it.
		med.Partitions = append(med.Partitions, Partition{
			AABB:       med.Boundary,
			SoundSpeed: defaultSoundSpeed,
			Attr:       mesh.Air(),
		})
		return nil
	}

	r := &systematicRun{
		med:    med,
		oct:    oct,
		lat:    lat,
		logger: logger,
		attrs:  make(map[int]mesh.Attribute),
	}
	r.grow(lat.CellAABB(0, 0, 0), -1)

	return nil
}

// systematicRun carries the mutable state of one decomposition.
type systematicRun struct {
	med    *Medium
	oct    *octree.Octree
	lat    *grid.Lattice
	logger *zap.Logger

	// attrs memoizes cell evaluations by lattice index; growth revisits
	// cells when neighboring seeds probe the same slice.
	attrs map[int]mesh.Attribute
}

func (r *systematicRun) cellAttr(ix, iy, iz int) mesh.Attribute {
	idx := r.lat.Index(ix, iy, iz)
	if a, ok := r.attrs[idx]; ok {
		return a
	}
	a := EvaluateCell(r.oct, r.lat.CellAABB(ix, iy, iz))
	r.attrs[idx] = a

	return a
}

// grow expands one seed cell to a maximal box, commits it as a partition
// with parent as its adjacency predecessor, and spawns the recorded
// candidate seeds.
func (r *systematicRun) grow(seed geom.AABB, parent int) {
	lo, _ := r.lat.CellRange(seed)
	attr := r.cellAttr(lo[0], lo[1], lo[2])

	box := seed
	occupied := 0
	var candidates []geom.AABB

	// Expand phase: fixed point over the six directions. A blocked
	// direction stays blocked; a merged one is retried with the grown box.
	for occupied != allOccupied {
		for dir := 0; dir < dirCount; dir++ {
			bit := 1 << dir
			if occupied&bit != 0 {
				continue
			}
			slice := r.adjacentSlice(box, dir)
			sLo, sHi := r.lat.CellRange(slice)
			if !r.lat.RangeInBounds(sLo, sHi) || r.intersectsExisting(slice) {
				occupied |= bit
				continue
			}

			same := true
			for ix := sLo[0]; ix < sHi[0]; ix++ {
				for iy := sLo[1]; iy < sHi[1]; iy++ {
					for iz := sLo[2]; iz < sHi[2]; iz++ {
						if r.cellAttr(ix, iy, iz).Equal(attr) {
							continue
						}
						same = false
						candidates = append(candidates, r.lat.CellAABB(ix, iy, iz))
					}
				}
			}
			if same {
				box = box.Union(slice)
			} else {
				occupied |= bit
			}
		}
	}

	// Commit phase.
	r.med.Partitions = append(r.med.Partitions, Partition{
		AABB:       box,
		SoundSpeed: defaultSoundSpeed,
		Attr:       attr,
	})
	self := len(r.med.Partitions) - 1
	if parent >= 0 {
		r.med.Partitions[parent].Adjacent = append(r.med.Partitions[parent].Adjacent, self)
	}
	r.logger.Debug("partition committed",
		zap.Int("index", self),
		zap.Int("parent", parent),
		zap.Int("pending seeds", len(candidates)))

	// Spawn phase: construction order follows candidate recording order.
	for _, c := range candidates {
		if r.covered(c) {
			continue
		}
		cLo, cHi := r.lat.CellRange(c)
		if !r.lat.RangeInBounds(cLo, cHi) {
			continue
		}
		r.grow(c, self)
	}
}

// adjacentSlice returns box translated one grid step in dir and flattened
// to a single cell layer.
func (r *systematicRun) adjacentSlice(box geom.AABB, dir int) geom.AABB {
	cell := r.lat.CellSize()
	s := box
	switch dir {
	case dirPosX:
		s.Min.X, s.Max.X = box.Max.X, box.Max.X+cell.X
	case dirNegX:
		s.Min.X, s.Max.X = box.Min.X-cell.X, box.Min.X
	case dirPosY:
		s.Min.Y, s.Max.Y = box.Max.Y, box.Max.Y+cell.Y
	case dirNegY:
		s.Min.Y, s.Max.Y = box.Min.Y-cell.Y, box.Min.Y
	case dirPosZ:
		s.Min.Z, s.Max.Z = box.Max.Z, box.Max.Z+cell.Z
	case dirNegZ:
		s.Min.Z, s.Max.Z = box.Min.Z-cell.Z, box.Min.Z
	}

	return s
}

// intersectsExisting reports whether any committed partition shares
// interior volume with box; face contact does not block growth.
func (r *systematicRun) intersectsExisting(box geom.AABB) bool {
	for i := range r.med.Partitions {
		if r.med.Partitions[i].AABB.OverlapsInterior(box) {
			return true
		}
	}

	return false
}

// covered reports whether the cell's center already lies inside a
// committed partition.
func (r *systematicRun) covered(cell geom.AABB) bool {
	c := cell.Center()
	for i := range r.med.Partitions {
		if r.med.Partitions[i].AABB.Contains(c) {
			return true
		}
	}

	return false
}

// GreedyRandom is reserved for future use: it satisfies Decomposer,
// reports success, and produces no partitions.
type GreedyRandom struct{}

// Decompose implements Decomposer as a no-op.
func (GreedyRandom) Decompose(*Medium, *octree.Octree) error { return nil }
