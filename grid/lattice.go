package grid

import (
	"errors"

	"github.com/katalvlaran/wavegrid/geom"
)

// Sentinel errors for lattice construction.
var (
	// ErrEmptyBoundary indicates the boundary box is in the reset state.
	ErrEmptyBoundary = errors.New("grid: boundary must not be empty")
	// ErrCellSize indicates a cell-size vector with a non-positive
	// component.
	ErrCellSize = errors.New("grid: cell size components must be > 0")
)

// Lattice is the axis-aligned cell grid tiling a boundary box. It is
// immutable once built.
type Lattice struct {
	boundary geom.AABB
	cell     geom.Vec3
	nx       int
	ny       int
	nz       int
}

// cellCount returns ⌊span/step⌋ with relative slack so spans that are
// exact multiples of step survive representation error.
func cellCount(span, step geom.Real) int {
	if span <= 0 {
		return 0
	}
	q := span / step

	return int(geom.Floor(q + 4*geom.Eps*q))
}

// New constructs the lattice of cells of size cell tiling boundary.
// A boundary smaller than one cell on some axis yields a valid lattice
// with zero cells.
// Complexity: O(1).
func New(boundary geom.AABB, cell geom.Vec3) (*Lattice, error) {
	if boundary.IsEmpty() {
		return nil, ErrEmptyBoundary
	}
	if cell.X <= 0 || cell.Y <= 0 || cell.Z <= 0 {
		return nil, ErrCellSize
	}
	dims := boundary.Dims()

	return &Lattice{
		boundary: boundary,
		cell:     cell,
		nx:       cellCount(dims.X, cell.X),
		ny:       cellCount(dims.Y, cell.Y),
		nz:       cellCount(dims.Z, cell.Z),
	}, nil
}

// Boundary returns the tiled boundary box.
func (l *Lattice) Boundary() geom.AABB { return l.boundary }

// CellSize returns the cell dimensions.
func (l *Lattice) CellSize() geom.Vec3 { return l.cell }

// Counts returns the number of cells along each axis.
func (l *Lattice) Counts() (nx, ny, nz int) { return l.nx, l.ny, l.nz }

// Len returns the total cell count.
func (l *Lattice) Len() int { return l.nx * l.ny * l.nz }

// InBounds reports whether (ix,iy,iz) addresses a cell of the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(ix, iy, iz int) bool {
	return ix >= 0 && ix < l.nx && iy >= 0 && iy < l.ny && iz >= 0 && iz < l.nz
}

// Index maps (ix,iy,iz) to the raster index with z innermost: (ix·ny +
// iy)·nz + iz.
// Complexity: O(1).
func (l *Lattice) Index(ix, iy, iz int) int {
	return (ix*l.ny+iy)*l.nz + iz
}

// Coordinate converts a raster index back to (ix,iy,iz).
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (ix, iy, iz int) {
	iz = idx % l.nz
	idx /= l.nz
	iy = idx % l.ny
	ix = idx / l.ny

	return ix, iy, iz
}

// CellAABB returns the box of cell (ix,iy,iz): min anchored at
// boundary.Min + index·cell, extent one cell.
// Complexity: O(1).
func (l *Lattice) CellAABB(ix, iy, iz int) geom.AABB {
	lo := geom.Vec3{
		X: l.boundary.Min.X + geom.Real(ix)*l.cell.X,
		Y: l.boundary.Min.Y + geom.Real(iy)*l.cell.Y,
		Z: l.boundary.Min.Z + geom.Real(iz)*l.cell.Z,
	}

	return geom.AABB{Min: lo, Max: lo.Add(l.cell)}
}

// ForEach visits every cell in raster order (z innermost, then y, then x)
// until fn returns a non-nil error, which aborts and is returned.
// Complexity: O(cells).
func (l *Lattice) ForEach(fn func(ix, iy, iz int, cell geom.AABB) error) error {
	for ix := 0; ix < l.nx; ix++ {
		for iy := 0; iy < l.ny; iy++ {
			for iz := 0; iz < l.nz; iz++ {
				if err := fn(ix, iy, iz, l.CellAABB(ix, iy, iz)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// CellRange maps a lattice-aligned box back to half-open index ranges
// [lo, hi) per axis, rounding to the nearest lattice line to absorb the
// drift accumulated by repeated box unions. The result may lie outside
// [0, counts); see RangeInBounds.
// Complexity: O(1).
func (l *Lattice) CellRange(b geom.AABB) (lo, hi [3]int) {
	for axis := 0; axis < 3; axis++ {
		origin := l.boundary.Min.At(axis)
		step := l.cell.At(axis)
		lo[axis] = int(geom.Floor((b.Min.At(axis)-origin)/step + 0.5))
		hi[axis] = int(geom.Floor((b.Max.At(axis)-origin)/step + 0.5))
	}

	return lo, hi
}

// RangeInBounds reports whether the half-open index range [lo, hi) lies
// entirely inside the lattice.
func (l *Lattice) RangeInBounds(lo, hi [3]int) bool {
	n := [3]int{l.nx, l.ny, l.nz}
	for axis := 0; axis < 3; axis++ {
		if lo[axis] < 0 || hi[axis] > n[axis] || lo[axis] >= hi[axis] {
			return false
		}
	}

	return true
}
