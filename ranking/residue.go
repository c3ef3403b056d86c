package ranking

import (
	"fmt"

	"github.com/hupe1980/mdcompare/ensemble"
)

// Selection chooses how per-feature scores are folded into one value per
// residue.
type Selection int

const (
	SelectMax Selection = iota
	SelectMin
)

func (s Selection) String() string {
	switch s {
	case SelectMax:
		return "max"
	case SelectMin:
		return "min"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// FoldPerResidue maps per-feature scores onto residues: every torsion
// feature label is parsed for its residue id and each residue of resids
// receives the maximum (or minimum) score among its features. Residues
// without any feature keep the neutral default (0 for max, 1 for min).
//
// The result is aligned with resids. A feature label that fails to parse
// aborts with an error.
func FoldPerResidue(names []string, scores []float64, resids []int, sel Selection) ([]float64, error) {
	if len(scores) != len(names) {
		return nil, &ensemble.ErrDimensionMismatch{Expected: len(names), Actual: len(scores)}
	}

	neutral := 0.0
	if sel == SelectMin {
		neutral = 1.0
	}

	values := make([]float64, len(resids))
	for i := range values {
		values[i] = neutral
	}

	index := make(map[int]int, len(resids))
	for i, r := range resids {
		index[r] = i
	}

	for i, name := range names {
		resid, err := ensemble.ParseResidueLabel(name)
		if err != nil {
			return nil, err
		}

		pos, ok := index[resid]
		if !ok {
			continue
		}

		switch sel {
		case SelectMin:
			if scores[i] < values[pos] {
				values[pos] = scores[i]
			}
		default:
			if scores[i] > values[pos] {
				values[pos] = scores[i]
			}
		}
	}

	return values, nil
}
