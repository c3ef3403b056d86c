package ranking

import (
	"sort"

	"github.com/hupe1980/mdcompare/ensemble"
)

// Ranked pairs a feature name with its scalar score.
type Ranked struct {
	Name  string
	Score float64
}

// SortByScore returns the features sorted by descending score. The sort is
// stable: features with equal scores keep their input order. No entry is
// ever dropped.
func SortByScore(names []string, scores []float64) ([]Ranked, error) {
	if len(names) != len(scores) {
		return nil, &ensemble.ErrDimensionMismatch{Expected: len(names), Actual: len(scores)}
	}

	out := make([]Ranked, len(names))
	for i := range names {
		out[i] = Ranked{Name: names[i], Score: scores[i]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}

// Criteria is the conjunction of thresholds applied when filtering
// pairwise-distance features.
type Criteria struct {
	MinScore  float64 // minimum score (e.g. relative entropy)
	MinAvg    float64 // lower bound on the average distance
	MaxAvg    float64 // upper bound on the average distance
	MinIDDiff int     // minimum separation of the two atom ids
}

// DefaultCriteria returns the thresholds used for receptor distance
// screening: relative entropy above 0.2, average distance within
// (0, 2.5) nm, atom ids at least 300 apart.
func DefaultCriteria() Criteria {
	return Criteria{
		MinScore:  0.2,
		MinAvg:    0.0,
		MaxAvg:    2.5,
		MinIDDiff: 300,
	}
}

// RankedDistance is a pairwise-distance feature that survived filtering,
// with its parsed atom ids.
type RankedDistance struct {
	Name  string
	Avg   float64
	Score float64
	Label ensemble.DistanceLabel
}

// FilterDistances applies the criteria to pairwise-distance features and
// returns the survivors in their input order. Every name is parsed with
// the distance-label grammar; a name that fails to parse aborts the filter
// with an error rather than being skipped.
func FilterDistances(names []string, avgs, scores []float64, c Criteria) ([]RankedDistance, error) {
	if len(avgs) != len(names) {
		return nil, &ensemble.ErrDimensionMismatch{Expected: len(names), Actual: len(avgs)}
	}
	if len(scores) != len(names) {
		return nil, &ensemble.ErrDimensionMismatch{Expected: len(names), Actual: len(scores)}
	}

	var out []RankedDistance
	for i, name := range names {
		label, err := ensemble.ParseDistanceLabel(name)
		if err != nil {
			return nil, err
		}

		if label.IDDiff() <= c.MinIDDiff {
			continue
		}
		if scores[i] <= c.MinScore {
			continue
		}
		if avgs[i] <= c.MinAvg || avgs[i] >= c.MaxAvg {
			continue
		}

		out = append(out, RankedDistance{
			Name:  name,
			Avg:   avgs[i],
			Score: scores[i],
			Label: label,
		})
	}

	return out, nil
}

// SortDistances orders filtered distances by descending score, stable on
// ties.
func SortDistances(dists []RankedDistance) []RankedDistance {
	out := make([]RankedDistance, len(dists))
	copy(out, dists)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}
