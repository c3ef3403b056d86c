package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mdcompare/ensemble"
)

func TestSortByScore(t *testing.T) {
	names := []string{"low", "high", "mid"}
	scores := []float64{0.1, 0.9, 0.5}

	ranked, err := SortByScore(names, scores)
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, Ranked{Name: "high", Score: 0.9}, ranked[0])
	assert.Equal(t, Ranked{Name: "mid", Score: 0.5}, ranked[1])
	assert.Equal(t, Ranked{Name: "low", Score: 0.1}, ranked[2])
}

func TestSortByScore_StableTies(t *testing.T) {
	names := []string{"first", "second", "third"}
	scores := []float64{0.5, 0.5, 0.5}

	ranked, err := SortByScore(names, scores)
	require.NoError(t, err)

	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestSortByScore_LengthMismatch(t *testing.T) {
	_, err := SortByScore([]string{"a", "b"}, []float64{1})
	var dm *ensemble.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

var (
	testNames = []string{
		"DIST: ATOM 100 CA ALA10 - ATOM 600 CB GLY60",  // passes all criteria
		"DIST: ATOM 100 CA ALA10 - ATOM 350 CB GLY35",  // id diff 250, too local
		"DIST: ATOM 200 CA SER20 - ATOM 900 CB LEU90",  // score below threshold
		"DIST: ATOM 300 CA VAL30 - ATOM 800 CB PHE80",  // avg above bound
		"DIST: ATOM 400 CA THR40 - ATOM 1000 CB TRP95", // passes all criteria
	}
	testAvgs   = []float64{1.0, 1.0, 1.0, 3.0, 2.0}
	testScores = []float64{0.5, 0.5, 0.1, 0.5, 0.3}
)

func TestFilterDistances(t *testing.T) {
	out, err := FilterDistances(testNames, testAvgs, testScores, DefaultCriteria())
	require.NoError(t, err)

	require.Len(t, out, 2)
	// Survivors keep their input order.
	assert.Equal(t, testNames[0], out[0].Name)
	assert.Equal(t, testNames[4], out[1].Name)
	assert.Equal(t, 100, out[0].Label.ID1)
	assert.Equal(t, 600, out[0].Label.ID2)
}

func TestFilterDistances_ParseError(t *testing.T) {
	_, err := FilterDistances([]string{"not a distance label"}, []float64{1}, []float64{1}, DefaultCriteria())
	var lp *ensemble.ErrLabelParse
	assert.ErrorAs(t, err, &lp)
}

func TestFilterDistances_LengthMismatch(t *testing.T) {
	_, err := FilterDistances(testNames, testAvgs[:2], testScores, DefaultCriteria())
	var dm *ensemble.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestSortThenFilterMatchesFilterThenSort(t *testing.T) {
	c := DefaultCriteria()

	filtered, err := FilterDistances(testNames, testAvgs, testScores, c)
	require.NoError(t, err)
	sortedAfter := SortDistances(filtered)

	// The survivor set is the same regardless of operation order.
	survivors := make(map[string]bool)
	for _, d := range filtered {
		survivors[d.Name] = true
	}
	for _, d := range sortedAfter {
		assert.True(t, survivors[d.Name])
	}
	assert.Len(t, sortedAfter, len(filtered))

	// Sorting is descending by score.
	for i := 1; i < len(sortedAfter); i++ {
		assert.GreaterOrEqual(t, sortedAfter[i-1].Score, sortedAfter[i].Score)
	}
}

func TestFoldPerResidue_Max(t *testing.T) {
	names := []string{"PHI 0 ALA 10C", "PSI 0 ALA 10C", "PHI 0 GLY 11C"}
	scores := []float64{0.3, 0.7, 0.2}
	resids := []int{10, 11, 12}

	values, err := FoldPerResidue(names, scores, resids, SelectMax)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.7, 0.2, 0.0}, values)
}

func TestFoldPerResidue_Min(t *testing.T) {
	names := []string{"PHI 0 ALA 10C", "PSI 0 ALA 10C"}
	scores := []float64{0.3, 0.7}
	resids := []int{10, 11}

	values, err := FoldPerResidue(names, scores, resids, SelectMin)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.3, 1.0}, values)
}

func TestFoldPerResidue_ParseError(t *testing.T) {
	_, err := FoldPerResidue([]string{""}, []float64{1}, []int{1}, SelectMax)
	var lp *ensemble.ErrLabelParse
	assert.ErrorAs(t, err, &lp)
}
