package medium

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/grid"
)

// VerifyCoverage walks every grid cell of the boundary and reports, as one
// aggregated error, each cell whose center is not contained in any
// partition. A nil result certifies the partition union covers the
// evaluated lattice. Intended for tests and debug builds; decomposition
// does not run it implicitly.
// Complexity: O(cells × partitions).
func (m *Medium) VerifyCoverage() error {
	if m.Boundary.IsEmpty() {
		return nil
	}
	lat, err := grid.New(m.Boundary, m.GridSize)
	if err != nil {
		return err
	}
	if lat.Len() == 0 {
		// Sub-cell boundary: the single degenerate partition covers it.
		return nil
	}

	var agg error
	_ = lat.ForEach(func(ix, iy, iz int, cell geom.AABB) error {
		c := cell.Center()
		for i := range m.Partitions {
			if m.Partitions[i].AABB.Contains(c) {
				return nil
			}
		}
		agg = multierr.Append(agg, fmt.Errorf("%w: (%d,%d,%d)", ErrUncoveredCell, ix, iy, iz))
		return nil
	})

	return agg
}
