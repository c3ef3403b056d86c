package ensemble

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Ensemble is a read-only matrix of per-frame feature values for one
// simulation. Rows are frames, columns are named features. The data is
// stored row-major in a single flat slice.
type Ensemble struct {
	names  []string
	data   []float64
	frames int
}

// New creates an Ensemble from feature names and a row-major flat data
// slice of length frames*len(names).
func New(names []string, data []float64) (*Ensemble, error) {
	if len(names) == 0 {
		return nil, ErrNoFeatures
	}
	if len(data) == 0 {
		return nil, ErrNoFrames
	}
	if len(data)%len(names) != 0 {
		return nil, ErrRaggedData
	}

	return &Ensemble{
		names:  slices.Clone(names),
		data:   slices.Clone(data),
		frames: len(data) / len(names),
	}, nil
}

// FromRows creates an Ensemble from per-frame feature vectors. Every row
// must have exactly len(names) values.
func FromRows(names []string, rows [][]float64) (*Ensemble, error) {
	if len(names) == 0 {
		return nil, ErrNoFeatures
	}
	if len(rows) == 0 {
		return nil, ErrNoFrames
	}

	data := make([]float64, 0, len(rows)*len(names))
	for _, row := range rows {
		if len(row) != len(names) {
			return nil, &ErrDimensionMismatch{Expected: len(names), Actual: len(row)}
		}
		data = append(data, row...)
	}

	return &Ensemble{
		names:  slices.Clone(names),
		data:   data,
		frames: len(rows),
	}, nil
}

// NumFrames returns the number of frames (rows).
func (e *Ensemble) NumFrames() int { return e.frames }

// NumFeatures returns the number of features (columns).
func (e *Ensemble) NumFeatures() int { return len(e.names) }

// Names returns a copy of the feature name list.
func (e *Ensemble) Names() []string { return slices.Clone(e.names) }

// Name returns the name of feature j.
func (e *Ensemble) Name(j int) string { return e.names[j] }

// Row returns the feature vector of frame i. The returned slice is a view
// into the ensemble's storage and must not be modified.
func (e *Ensemble) Row(i int) []float64 {
	dim := len(e.names)
	return e.data[i*dim : (i+1)*dim]
}

// Feature returns a copy of the per-frame value series of feature j.
func (e *Ensemble) Feature(j int) []float64 {
	out := make([]float64, e.frames)
	dim := len(e.names)
	for i := 0; i < e.frames; i++ {
		out[i] = e.data[i*dim+j]
	}
	return out
}

// Matrix returns the ensemble as a gonum matrix backed by the ensemble's
// storage. The matrix is a read-only view.
func (e *Ensemble) Matrix() *mat.Dense {
	return mat.NewDense(e.frames, len(e.names), e.data)
}

// SameFeatures verifies that two ensembles carry the identical feature
// name list in identical order. A mismatch is a hard precondition
// violation for every comparison and combination in this module.
func SameFeatures(a, b *Ensemble) error {
	if a.NumFeatures() != b.NumFeatures() {
		return &ErrDimensionMismatch{Expected: a.NumFeatures(), Actual: b.NumFeatures()}
	}
	for i := range a.names {
		if a.names[i] != b.names[i] {
			return &ErrFeatureMismatch{Index: i, A: a.names[i], B: b.names[i]}
		}
	}
	return nil
}
