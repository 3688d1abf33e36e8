package medium

import "errors"

// Sentinel errors for medium operations.
var (
	// ErrPartitionIndex indicates a partition index out of range.
	ErrPartitionIndex = errors.New("medium: partition index out of range")

	// ErrUncoveredCell indicates a grid cell not contained in any
	// partition, reported by VerifyCoverage.
	ErrUncoveredCell = errors.New("medium: grid cell not covered by any partition")
)
