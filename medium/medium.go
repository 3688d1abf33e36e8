package medium

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/mesh"
	"github.com/katalvlaran/wavegrid/octree"
)

// Partition is one axis-aligned region of uniform acoustic attribute.
type Partition struct {
	// AABB is the region covered, a union of whole grid cells inside the
	// medium boundary.
	AABB geom.AABB

	// SoundSpeed is the propagation speed the solver uses; defaults to 1.
	SoundSpeed geom.Real

	// Attr is the attribute the region grew from.
	Attr mesh.Attribute

	// Adjacent lists child partition indices in construction order. Edges
	// are directed parent→child and anti-reflexive; take the symmetric
	// closure via Graph().Undirected() when needed.
	Adjacent []int
}

// Medium is the decomposed volume: boundary, grid resolution and the
// partition list. It borrows neither mesh nor octree after construction.
type Medium struct {
	// Boundary is the decomposed region.
	Boundary geom.AABB

	// GridSize is the cell dimensions of the decomposition lattice.
	GridSize geom.Vec3

	// Partitions is the decomposition output.
	Partitions []Partition
}

// Option configures BuildFromMesh.
type Option func(*buildConfig)

type buildConfig struct {
	boundary    geom.AABB
	hasBoundary bool
	strategy    Decomposer
	logger      *zap.Logger
}

// WithBoundary overrides the decomposed region (default: the mesh AABB).
// Panics on an empty (reset) box.
func WithBoundary(b geom.AABB) Option {
	if b.IsEmpty() {
		panic("medium: WithBoundary(empty box)")
	}
	return func(c *buildConfig) {
		c.boundary = b
		c.hasBoundary = true
	}
}

// WithStrategy selects the decomposition strategy (default: Systematic).
// Panics on nil.
func WithStrategy(d Decomposer) Option {
	if d == nil {
		panic("medium: WithStrategy(nil)")
	}
	return func(c *buildConfig) { c.strategy = d }
}

// WithLogger attaches a zap logger to the build; progress is reported at
// debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("medium: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}

// BuildFromMesh runs the full pipeline: octree construction over m, then
// decomposition of the boundary into partitions on a lattice of gridSize
// cells. The octree lives only inside this call. An empty mesh without an
// explicit boundary yields a medium with zero partitions.
// Complexity: dominated by decomposition, O(cells × evaluation cost).
func BuildFromMesh(m *mesh.Mesh, gridSize geom.Vec3, opts ...Option) (*Medium, error) {
	cfg := buildConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.strategy == nil {
		cfg.strategy = Systematic{Logger: cfg.logger}
	}
	if gridSize.X <= 0 || gridSize.Y <= 0 || gridSize.Z <= 0 {
		return nil, grid.ErrCellSize
	}

	boundary := cfg.boundary
	if !cfg.hasBoundary {
		boundary = m.AABB()
	}
	med := &Medium{Boundary: boundary, GridSize: gridSize}
	if boundary.IsEmpty() {
		// Nothing to decompose: an empty mesh with no supplied boundary.
		return med, nil
	}

	oct, err := octree.Build(m, gridSize, octree.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	if err := cfg.strategy.Decompose(med, oct); err != nil {
		return nil, err
	}
	cfg.logger.Debug("medium decomposed",
		zap.Int("partitions", len(med.Partitions)))

	return med, nil
}
