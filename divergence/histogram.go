package divergence

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// binnedMasses estimates probability masses for both samples over a shared
// bin-edge set derived from the pooled sample. ok is false when the pooled
// sample has zero variance, in which case the histogram degenerates to a
// single bin and no meaningful divergence exists.
func binnedMasses(sa, sb []float64, numBins int) (pa, pb []float64, ok bool) {
	pooled := make([]float64, 0, len(sa)+len(sb))
	pooled = append(pooled, sa...)
	pooled = append(pooled, sb...)

	lo := floats.Min(pooled)
	hi := floats.Max(pooled)
	if lo == hi {
		return nil, nil, false
	}

	edges := make([]float64, numBins+1)
	floats.Span(edges, lo, hi)
	// Nudge the top edge so the pooled maximum falls into the last bin.
	edges[len(edges)-1] = math.Nextafter(hi, math.Inf(1))

	return mass(sa, edges), mass(sb, edges), true
}

// mass bins one sample over the shared edges and renormalizes the counts
// to a probability mass summing to 1.
func mass(sample []float64, edges []float64) []float64 {
	sorted := slices.Clone(sample)
	sort.Float64s(sorted)

	counts := stat.Histogram(nil, edges, sorted, nil)
	if sum := floats.Sum(counts); sum > 0 {
		floats.Scale(1/sum, counts)
	}
	return counts
}

// jsDistance is the base-2 Jensen-Shannon distance between two probability
// masses, bounded in [0, 1] and symmetric in its arguments.
func jsDistance(p, q []float64) float64 {
	return math.Sqrt(stat.JensenShannon(p, q) / math.Ln2)
}
