package octree

import "errors"

// Sentinel errors for octree construction.
var (
	// ErrNilMesh indicates Build was called without a mesh.
	ErrNilMesh = errors.New("octree: nil mesh")

	// ErrCellSize indicates a smallest-cell vector with a non-positive
	// component; subdivision could not terminate.
	ErrCellSize = errors.New("octree: smallest cell components must be > 0")
)
