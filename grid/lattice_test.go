package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavegrid/geom"
)

func unitLattice(t *testing.T, cell geom.Vec3) *Lattice {
	t.Helper()
	l, err := New(geom.NewAABB(geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}), cell)
	require.NoError(t, err)

	return l
}

// TestNew_Errors verifies the construction guards.
func TestNew_Errors(t *testing.T) {
	var empty geom.AABB
	empty.Reset()
	_, err := New(empty, geom.Vec3{X: 1, Y: 1, Z: 1})
	assert.ErrorIs(t, err, ErrEmptyBoundary)

	box := geom.NewAABB(geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	for _, cell := range []geom.Vec3{
		{X: 0, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 0},
	} {
		_, err := New(box, cell)
		assert.ErrorIs(t, err, ErrCellSize, "cell %v", cell)
	}
}

// TestCounts pins ⌊size/cell⌋ per axis, including the exact-multiple case
// that naive float division gets wrong.
func TestCounts(t *testing.T) {
	cases := []struct {
		name       string
		cell       geom.Vec3
		nx, ny, nz int
	}{
		{"one cell", geom.Vec3{X: 1, Y: 1, Z: 1}, 1, 1, 1},
		{"exact halves", geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, 2, 2, 2},
		{"non-multiple truncates", geom.Vec3{X: 0.4, Y: 0.4, Z: 0.4}, 2, 2, 2},
		{"tenths", geom.Vec3{X: 0.1, Y: 0.1, Z: 0.1}, 10, 10, 10},
		{"anisotropic", geom.Vec3{X: 0.5, Y: 0.25, Z: 1}, 2, 4, 1},
		{"oversized cell", geom.Vec3{X: 2, Y: 2, Z: 2}, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := unitLattice(t, tc.cell)
			nx, ny, nz := l.Counts()
			assert.Equal(t, [3]int{tc.nx, tc.ny, tc.nz}, [3]int{nx, ny, nz})
			assert.Equal(t, tc.nx*tc.ny*tc.nz, l.Len())
		})
	}
}

// TestIndexCoordinate_RoundTrip: Index and Coordinate are inverse on every
// cell.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	l := unitLattice(t, geom.Vec3{X: 0.5, Y: 0.25, Z: 0.2})
	nx, ny, nz := l.Counts()
	require.Equal(t, [3]int{2, 4, 5}, [3]int{nx, ny, nz})

	seen := make(map[int]bool)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				idx := l.Index(ix, iy, iz)
				require.False(t, seen[idx], "index %d reused", idx)
				seen[idx] = true

				gx, gy, gz := l.Coordinate(idx)
				assert.Equal(t, [3]int{ix, iy, iz}, [3]int{gx, gy, gz})
			}
		}
	}
	assert.Len(t, seen, l.Len())
}

// TestForEach_RasterOrder pins the iteration order: z innermost, then y,
// then x — and the emitted-cell invariant min ≥ boundary min, max ≤
// boundary max within slack.
func TestForEach_RasterOrder(t *testing.T) {
	l := unitLattice(t, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5})

	var order [][3]int
	err := l.ForEach(func(ix, iy, iz int, cell geom.AABB) error {
		order = append(order, [3]int{ix, iy, iz})
		assert.GreaterOrEqual(t, cell.Min.X, l.Boundary().Min.X)
		assert.LessOrEqual(t, cell.Max.X, l.Boundary().Max.X+4*geom.Eps)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, order, 8)
	assert.Equal(t, [3]int{0, 0, 0}, order[0])
	assert.Equal(t, [3]int{0, 0, 1}, order[1], "z varies first")
	assert.Equal(t, [3]int{0, 1, 0}, order[2], "then y")
	assert.Equal(t, [3]int{1, 0, 0}, order[4], "then x")

	// Early abort propagates the error.
	sentinel := errors.New("stop")
	calls := 0
	err = l.ForEach(func(int, int, int, geom.AABB) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

// TestCellRange maps lattice-aligned boxes back to index ranges, absorbing
// accumulated float drift.
func TestCellRange(t *testing.T) {
	l := unitLattice(t, geom.Vec3{X: 0.25, Y: 0.25, Z: 0.25})

	cell := l.CellAABB(1, 2, 3)
	lo, hi := l.CellRange(cell)
	assert.Equal(t, [3]int{1, 2, 3}, lo)
	assert.Equal(t, [3]int{2, 3, 4}, hi)
	assert.True(t, l.RangeInBounds(lo, hi))

	// A grown box spanning several cells.
	grown := cell.Union(l.CellAABB(2, 2, 3)).Union(l.CellAABB(1, 3, 3))
	lo, hi = l.CellRange(grown)
	assert.Equal(t, [3]int{1, 2, 3}, lo)
	assert.Equal(t, [3]int{3, 4, 4}, hi)

	// A slab past the boundary is out of range.
	outside := l.CellAABB(3, 0, 0).Translate(geom.Vec3{X: 0.25})
	lo, hi = l.CellRange(outside)
	assert.False(t, l.RangeInBounds(lo, hi))
}
