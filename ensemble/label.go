package ensemble

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature labels encode structural identity as a fixed space-separated
// grammar produced by the feature-extraction collaborator. Two label
// families are understood here:
//
//	distance labels: "DIST: ATOM <id1> <name1> <res1> - ATOM <id2> <name2> <res2>"
//	torsion labels:  "<angle> <...> <residue><code>"  (residue id is the
//	                 last token minus its trailing atom code)
//
// A label that does not follow its grammar is a fatal input error, never
// skipped.

// DistanceLabel is the parsed structural identity of an inter-atom
// distance feature.
type DistanceLabel struct {
	ID1 int
	ID2 int
}

// IDDiff returns the separation between the two atom ids. Distance
// features between nearby atoms are trivially correlated; filters use the
// separation to exclude them.
func (l DistanceLabel) IDDiff() int { return l.ID2 - l.ID1 }

// ParseDistanceLabel extracts the two atom ids from a distance feature
// label.
func ParseDistanceLabel(label string) (DistanceLabel, error) {
	tokens := strings.Fields(label)
	if len(tokens) != 10 {
		return DistanceLabel{}, &ErrLabelParse{
			Label: label,
			cause: fmt.Errorf("expected 10 tokens, got %d", len(tokens)),
		}
	}
	if tokens[0] != "DIST:" || tokens[1] != "ATOM" || tokens[5] != "-" || tokens[6] != "ATOM" {
		return DistanceLabel{}, &ErrLabelParse{
			Label: label,
			cause: fmt.Errorf("unexpected keywords in %q", label),
		}
	}

	id1, err := strconv.Atoi(tokens[2])
	if err != nil {
		return DistanceLabel{}, &ErrLabelParse{Label: label, cause: err}
	}
	id2, err := strconv.Atoi(tokens[7])
	if err != nil {
		return DistanceLabel{}, &ErrLabelParse{Label: label, cause: err}
	}

	return DistanceLabel{ID1: id1, ID2: id2}, nil
}

// ParseResidueLabel extracts the residue id from a torsion feature label.
// The residue id is the final space-separated token with its single
// trailing atom code stripped, e.g. "PHI 0 ALA 42C" yields 42.
func ParseResidueLabel(label string) (int, error) {
	tokens := strings.Fields(label)
	if len(tokens) == 0 {
		return 0, &ErrLabelParse{Label: label, cause: fmt.Errorf("empty label")}
	}

	last := tokens[len(tokens)-1]
	if len(last) < 2 {
		return 0, &ErrLabelParse{
			Label: label,
			cause: fmt.Errorf("residue token %q too short", last),
		}
	}

	resid, err := strconv.Atoi(last[:len(last)-1])
	if err != nil {
		return 0, &ErrLabelParse{Label: label, cause: err}
	}

	return resid, nil
}
