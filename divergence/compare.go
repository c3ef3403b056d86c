package divergence

import (
	"context"

	"github.com/hupe1980/mdcompare/ensemble"
)

// Result combines all per-feature statistics of a full comparison into
// one table of parallel slices indexed by feature.
type Result struct {
	Names      []string
	Avg        []float64 // mean of the pooled sample
	KLAB       []float64
	KLBA       []float64
	JSDistance []float64
	KSStat     []float64
	KSPValue   []float64
	MeanAvg    []float64 // midpoint of the two means
	MeanDiff   []float64
}

// Compare runs the full statistics pipeline: relative entropy,
// Kolmogorov-Smirnov test and mean difference for every feature.
func Compare(a, b *ensemble.Ensemble, opts ...Option) (*Result, error) {
	o := applyOptions(opts)

	ent, err := RelativeEntropy(a, b, opts...)
	if err != nil {
		o.logger.LogComparison(context.Background(), 0, err)
		return nil, err
	}
	ks, err := KolmogorovSmirnov(a, b, opts...)
	if err != nil {
		o.logger.LogComparison(context.Background(), 0, err)
		return nil, err
	}
	md, err := MeanDifference(a, b, opts...)
	if err != nil {
		o.logger.LogComparison(context.Background(), 0, err)
		return nil, err
	}

	res := &Result{
		Names:      ent.Names,
		Avg:        ent.Avg,
		KLAB:       ent.KLAB,
		KLBA:       ent.KLBA,
		JSDistance: ent.JSDistance,
		KSStat:     ks.Stat,
		KSPValue:   ks.PValue,
		MeanAvg:    md.Avg,
		MeanDiff:   md.Diff,
	}

	o.logger.LogComparison(context.Background(), len(res.Names), nil)

	return res, nil
}
