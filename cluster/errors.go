package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumClusters is returned when the requested cluster count
	// is not positive.
	ErrInvalidNumClusters = errors.New("number of clusters must be positive")

	// ErrInvalidMinDist is returned when the regular-space minimum
	// distance is not positive.
	ErrInvalidMinDist = errors.New("minimum distance must be positive")

	// ErrTooFewFrames is returned when there are fewer combined frames
	// than requested clusters.
	ErrTooFewFrames = errors.New("fewer frames than clusters")
)

// ErrUnknownAlgorithm indicates an unrecognized clustering algorithm name.
type ErrUnknownAlgorithm struct {
	Name string
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("unknown clustering algorithm: %q", e.Name)
}
