package ensemble

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFeatures is returned when an ensemble is constructed without
	// any feature names.
	ErrNoFeatures = errors.New("ensemble must have at least one feature")

	// ErrNoFrames is returned when an ensemble is constructed without any
	// frames.
	ErrNoFrames = errors.New("ensemble must have at least one frame")

	// ErrRaggedData is returned when the flat data length is not a
	// multiple of the feature count.
	ErrRaggedData = errors.New("data length is not a multiple of the feature count")
)

// ErrFeatureMismatch indicates that two ensembles do not share the same
// feature name list. Comparing or combining such ensembles is a hard
// precondition violation; they are never aligned silently by position.
type ErrFeatureMismatch struct {
	Index int
	A     string
	B     string
}

func (e *ErrFeatureMismatch) Error() string {
	return fmt.Sprintf("feature mismatch at index %d: %q vs %q", e.Index, e.A, e.B)
}

// ErrDimensionMismatch indicates a feature-count mismatch between two
// ensembles or between an ensemble and another feature-ordered input.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d features, got %d", e.Expected, e.Actual)
}

// ErrLabelParse indicates a feature label that does not follow the
// structural encoding produced by the feature-extraction collaborator.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLabelParse struct {
	Label string
	cause error
}

func (e *ErrLabelParse) Error() string {
	return fmt.Sprintf("cannot parse feature label %q", e.Label)
}

func (e *ErrLabelParse) Unwrap() error { return e.cause }
