package divergence

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/mdcompare/ensemble"
)

// KSResult holds per-feature two-sample Kolmogorov-Smirnov statistics as
// parallel slices indexed by feature.
type KSResult struct {
	Names  []string
	Avg    []float64 // mean of the pooled sample
	Stat   []float64 // KS statistic in [0, 1]
	PValue []float64
}

// KolmogorovSmirnov performs a two-sample Kolmogorov-Smirnov test on the
// raw (unbinned) samples of every feature.
func KolmogorovSmirnov(a, b *ensemble.Ensemble, opts ...Option) (*KSResult, error) {
	if err := ensemble.SameFeatures(a, b); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	n := a.NumFeatures()
	res := &KSResult{
		Names:  a.Names(),
		Avg:    make([]float64, n),
		Stat:   make([]float64, n),
		PValue: make([]float64, n),
	}

	for j := 0; j < n; j++ {
		sa := sortedClone(a.Feature(j))
		sb := sortedClone(b.Feature(j))

		res.Stat[j] = stat.KolmogorovSmirnov(sa, nil, sb, nil)
		res.PValue[j] = ksPValue(res.Stat[j], len(sa), len(sb))

		pooled := make([]float64, 0, len(sa)+len(sb))
		pooled = append(pooled, sa...)
		pooled = append(pooled, sb...)
		res.Avg[j] = stat.Mean(pooled, nil)

		o.logger.WithFeature(res.Names[j]).Debug("kolmogorov-smirnov",
			"avg", res.Avg[j],
			"stat", res.Stat[j],
			"p_value", res.PValue[j],
		)
	}

	return res, nil
}

func sortedClone(s []float64) []float64 {
	out := slices.Clone(s)
	sort.Float64s(out)
	return out
}

// ksPValue approximates the two-sided p-value of the two-sample KS
// statistic via the asymptotic Kolmogorov distribution with the
// finite-sample effective-n correction.
func ksPValue(d float64, na, nb int) float64 {
	if d <= 0 {
		return 1
	}
	en := math.Sqrt(float64(na) * float64(nb) / float64(na+nb))
	return kolmogorovQ((en + 0.12 + 0.11/en) * d)
}

// kolmogorovQ is the complementary CDF of the Kolmogorov distribution,
// evaluated by its alternating series.
func kolmogorovQ(lambda float64) float64 {
	a2 := -2 * lambda * lambda
	fac := 2.0
	sum := 0.0
	prev := 0.0

	for j := 1; j <= 100; j++ {
		term := fac * math.Exp(a2*float64(j)*float64(j))
		sum += term
		if math.Abs(term) <= 0.001*prev || math.Abs(term) <= 1e-8*math.Abs(sum) {
			return math.Min(math.Max(sum, 0), 1)
		}
		fac = -fac
		prev = math.Abs(term)
	}

	// The series only fails to converge for tiny lambda, where the
	// distribution mass is all above lambda.
	return 1
}
