package projection

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/mdcompare/ensemble"
)

// ErrAxisOutOfRange indicates a principal-axis index outside the basis.
type ErrAxisOutOfRange struct {
	Axis       int
	Components int
}

func (e *ErrAxisOutOfRange) Error() string {
	return fmt.Sprintf("axis %d out of range: basis has %d components", e.Axis, e.Components)
}

// Basis is a set of principal axes (eigenvectors) bound to the feature
// ordering they were computed for. Columns are components, rows are
// features.
type Basis struct {
	vectors *mat.Dense
	names   []string
}

// NewBasis creates a Basis from an eigenvector matrix (features x
// components) and the feature-name list the eigenvectors were computed
// for. The binding is checked on every projection.
func NewBasis(vectors *mat.Dense, names []string) (*Basis, error) {
	rows, _ := vectors.Dims()
	if rows != len(names) {
		return nil, &ensemble.ErrDimensionMismatch{Expected: len(names), Actual: rows}
	}

	return &Basis{
		vectors: mat.DenseCopyOf(vectors),
		names:   slices.Clone(names),
	}, nil
}

// NumComponents returns the number of principal axes in the basis.
func (b *Basis) NumComponents() int {
	_, cols := b.vectors.Dims()
	return cols
}

// Axis returns a copy of the eigenvector for the given axis index.
func (b *Basis) Axis(axis int) ([]float64, error) {
	if axis < 0 || axis >= b.NumComponents() {
		return nil, &ErrAxisOutOfRange{Axis: axis, Components: b.NumComponents()}
	}

	out := make([]float64, len(b.names))
	mat.Col(out, axis, b.vectors)
	return out, nil
}

// matches verifies that the ensemble's feature ordering is the one the
// basis was computed for.
func (b *Basis) matches(e *ensemble.Ensemble) error {
	if e.NumFeatures() != len(b.names) {
		return &ensemble.ErrDimensionMismatch{Expected: len(b.names), Actual: e.NumFeatures()}
	}
	for i, name := range b.names {
		if e.Name(i) != name {
			return &ensemble.ErrFeatureMismatch{Index: i, A: name, B: e.Name(i)}
		}
	}
	return nil
}
