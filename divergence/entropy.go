package divergence

import (
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/mdcompare/ensemble"
)

// EntropyResult holds per-feature relative-entropy statistics as parallel
// slices indexed by feature.
type EntropyResult struct {
	Names      []string
	Avg        []float64 // mean of the pooled sample
	KLAB       []float64 // Kullback-Leibler divergence A -> B, nats
	KLBA       []float64 // Kullback-Leibler divergence B -> A, nats
	JSDistance []float64 // Jensen-Shannon distance, base 2, in [0, 1]
}

// RelativeEntropy computes Kullback-Leibler divergences in both directions
// and the Jensen-Shannon distance for every feature of the two ensembles.
//
// Density estimates for both ensembles share one bin-edge set derived from
// the pooled sample. A feature with zero variance across both ensembles
// yields KL = JS = 0. A KL divergence may be +Inf when the empirical
// supports are disjoint; it is reported as-is.
func RelativeEntropy(a, b *ensemble.Ensemble, opts ...Option) (*EntropyResult, error) {
	if err := ensemble.SameFeatures(a, b); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	n := a.NumFeatures()
	res := &EntropyResult{
		Names:      a.Names(),
		Avg:        make([]float64, n),
		KLAB:       make([]float64, n),
		KLBA:       make([]float64, n),
		JSDistance: make([]float64, n),
	}

	for j := 0; j < n; j++ {
		sa := a.Feature(j)
		sb := b.Feature(j)

		pooled := make([]float64, 0, len(sa)+len(sb))
		pooled = append(pooled, sa...)
		pooled = append(pooled, sb...)
		res.Avg[j] = stat.Mean(pooled, nil)

		pa, pb, ok := binnedMasses(sa, sb, o.numBins)
		if !ok {
			// Zero-variance feature: a single distinct value in both
			// ensembles. KL and JS stay 0.
			continue
		}

		res.KLAB[j] = stat.KullbackLeibler(pa, pb)
		res.KLBA[j] = stat.KullbackLeibler(pb, pa)
		res.JSDistance[j] = jsDistance(pa, pb)

		o.logger.WithFeature(res.Names[j]).Debug("relative entropy",
			"avg", res.Avg[j],
			"js_dist", res.JSDistance[j],
			"kl_ab", res.KLAB[j],
			"kl_ba", res.KLBA[j],
		)
	}

	return res, nil
}
