package divergence

import (
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/mdcompare/ensemble"
)

// MeanDiffResult holds per-feature mean statistics as parallel slices
// indexed by feature.
type MeanDiffResult struct {
	Names []string
	Avg   []float64 // midpoint of the two means, 0.5*(mean(A)+mean(B))
	Diff  []float64 // mean(A) - mean(B)
}

// MeanDifference compares the arithmetic means of every feature between
// the two ensembles.
func MeanDifference(a, b *ensemble.Ensemble, opts ...Option) (*MeanDiffResult, error) {
	if err := ensemble.SameFeatures(a, b); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	n := a.NumFeatures()
	res := &MeanDiffResult{
		Names: a.Names(),
		Avg:   make([]float64, n),
		Diff:  make([]float64, n),
	}

	for j := 0; j < n; j++ {
		meanA := stat.Mean(a.Feature(j), nil)
		meanB := stat.Mean(b.Feature(j), nil)

		res.Avg[j] = 0.5 * (meanA + meanB)
		res.Diff[j] = meanA - meanB

		o.logger.WithFeature(res.Names[j]).Debug("mean difference",
			"avg", res.Avg[j],
			"diff", res.Diff[j],
		)
	}

	return res, nil
}
