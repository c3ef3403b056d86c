package divergence

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mdcompare"
	"github.com/hupe1980/mdcompare/ensemble"
)

func mustEnsemble(t *testing.T, names []string, data []float64) *ensemble.Ensemble {
	t.Helper()
	e, err := ensemble.New(names, data)
	require.NoError(t, err)
	return e
}

func TestRelativeEntropy_IdenticalSamples(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	a := mustEnsemble(t, []string{"f1"}, data)
	b := mustEnsemble(t, []string{"f1"}, data)

	res, err := RelativeEntropy(a, b)
	require.NoError(t, err)

	assert.InDelta(t, 0, res.KLAB[0], 1e-12)
	assert.InDelta(t, 0, res.KLBA[0], 1e-12)
	assert.InDelta(t, 0, res.JSDistance[0], 1e-12)
	assert.InDelta(t, 4.5, res.Avg[0], 1e-12)
}

func TestRelativeEntropy_ConstantFeature(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = 2.5
	}
	a := mustEnsemble(t, []string{"f1"}, vals)
	b := mustEnsemble(t, []string{"f1"}, vals)

	res, err := RelativeEntropy(a, b)
	require.NoError(t, err)

	// Zero-variance feature degenerates the histogram to one bin;
	// divergences are defined as 0, never NaN.
	assert.Equal(t, 0.0, res.KLAB[0])
	assert.Equal(t, 0.0, res.KLBA[0])
	assert.Equal(t, 0.0, res.JSDistance[0])
	assert.Equal(t, 2.5, res.Avg[0])
}

func TestRelativeEntropy_DisjointSupports(t *testing.T) {
	a := mustEnsemble(t, []string{"f1"}, []float64{0, 0.1, 0.2, 0.3})
	b := mustEnsemble(t, []string{"f1"}, []float64{10, 10.1, 10.2, 10.3})

	res, err := RelativeEntropy(a, b)
	require.NoError(t, err)

	// Disjoint empirical supports: KL is non-finite and propagated as-is.
	assert.True(t, math.IsInf(res.KLAB[0], 1))
	assert.True(t, math.IsInf(res.KLBA[0], 1))

	// JS stays bounded even for disjoint supports.
	assert.InDelta(t, 1.0, res.JSDistance[0], 1e-9)
}

func TestRelativeEntropy_JSBoundsAndSymmetry(t *testing.T) {
	a := mustEnsemble(t, []string{"f1", "f2"}, []float64{
		0.1, 1.0,
		0.5, 2.0,
		0.9, 3.0,
		0.3, 4.0,
	})
	b := mustEnsemble(t, []string{"f1", "f2"}, []float64{
		0.2, 2.5,
		0.6, 3.5,
		0.8, 1.5,
	})

	ab, err := RelativeEntropy(a, b)
	require.NoError(t, err)
	ba, err := RelativeEntropy(b, a)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		assert.GreaterOrEqual(t, ab.JSDistance[j], 0.0)
		assert.LessOrEqual(t, ab.JSDistance[j], 1.0)
		assert.InDelta(t, ab.JSDistance[j], ba.JSDistance[j], 1e-12, "JS must be symmetric")

		if !math.IsInf(ab.KLAB[j], 1) {
			assert.GreaterOrEqual(t, ab.KLAB[j], 0.0)
		}
		if !math.IsInf(ab.KLBA[j], 1) {
			assert.GreaterOrEqual(t, ab.KLBA[j], 0.0)
		}

		// Directions swap when arguments swap.
		assert.Equal(t, ab.KLAB[j], ba.KLBA[j])
		assert.Equal(t, ab.KLBA[j], ba.KLAB[j])
	}
}

func TestRelativeEntropy_Precondition(t *testing.T) {
	a := mustEnsemble(t, []string{"f1"}, []float64{1, 2})
	b := mustEnsemble(t, []string{"g1"}, []float64{1, 2})

	_, err := RelativeEntropy(a, b)
	var fm *ensemble.ErrFeatureMismatch
	assert.ErrorAs(t, err, &fm)
}

func TestKolmogorovSmirnov_SeparatedSamples(t *testing.T) {
	// A = [[0,0],[0,0]], B = [[1,1],[1,1]]: fully separated samples.
	a := mustEnsemble(t, []string{"f1", "f2"}, []float64{0, 0, 0, 0})
	b := mustEnsemble(t, []string{"f1", "f2"}, []float64{1, 1, 1, 1})

	res, err := KolmogorovSmirnov(a, b)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		assert.InDelta(t, 1.0, res.Stat[j], 1e-12)
		assert.Less(t, res.PValue[j], 0.5)
		assert.InDelta(t, 0.5, res.Avg[j], 1e-12)
	}
}

func TestKolmogorovSmirnov_IdenticalConstantSamples(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = 3.0
	}
	a := mustEnsemble(t, []string{"f1"}, vals)
	b := mustEnsemble(t, []string{"f1"}, vals)

	res, err := KolmogorovSmirnov(a, b)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Stat[0])
	assert.Equal(t, 1.0, res.PValue[0])
}

func TestKolmogorovSmirnov_Precondition(t *testing.T) {
	a := mustEnsemble(t, []string{"f1"}, []float64{1})
	b := mustEnsemble(t, []string{"f1", "f2"}, []float64{1, 2})

	_, err := KolmogorovSmirnov(a, b)
	var dm *ensemble.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestMeanDifference(t *testing.T) {
	// mean(A) = 0, mean(B) = 1 per feature.
	a := mustEnsemble(t, []string{"f1", "f2"}, []float64{0, 0, 0, 0})
	b := mustEnsemble(t, []string{"f1", "f2"}, []float64{1, 1, 1, 1})

	res, err := MeanDifference(a, b)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		assert.InDelta(t, -1.0, res.Diff[j], 1e-12)
		assert.InDelta(t, 0.5, res.Avg[j], 1e-12)
	}
}

func TestMeanDifference_UnequalFrameCounts(t *testing.T) {
	a := mustEnsemble(t, []string{"f1"}, []float64{2, 4})
	b := mustEnsemble(t, []string{"f1"}, []float64{1, 2, 3})

	res, err := MeanDifference(a, b)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Diff[0], 1e-12) // 3 - 2
	assert.InDelta(t, 2.5, res.Avg[0], 1e-12)  // 0.5*(3+2)
}

func TestCompare(t *testing.T) {
	a := mustEnsemble(t, []string{"f1", "f2"}, []float64{
		0.1, 1.0,
		0.2, 2.0,
		0.3, 3.0,
	})
	b := mustEnsemble(t, []string{"f1", "f2"}, []float64{
		0.4, 1.5,
		0.5, 2.5,
	})

	res, err := Compare(a, b, WithNumBins(5))
	require.NoError(t, err)

	assert.Equal(t, []string{"f1", "f2"}, res.Names)
	for _, col := range [][]float64{
		res.Avg, res.KLAB, res.KLBA, res.JSDistance,
		res.KSStat, res.KSPValue, res.MeanAvg, res.MeanDiff,
	} {
		assert.Len(t, col, 2)
	}
}

func TestCompare_Logging(t *testing.T) {
	a := mustEnsemble(t, []string{"f1"}, []float64{0.1, 0.2, 0.3, 0.4})
	b := mustEnsemble(t, []string{"f1"}, []float64{0.2, 0.3, 0.4, 0.5})

	var buf bytes.Buffer
	logger := mdcompare.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	_, err := Compare(a, b, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "comparison completed")
	assert.Contains(t, out, "features=1")
	assert.Contains(t, out, "relative entropy")
	assert.Contains(t, out, "feature=f1")
}

func TestKolmogorovQ(t *testing.T) {
	// Known values of the Kolmogorov distribution complement.
	assert.InDelta(t, 1.0, kolmogorovQ(0.0), 1e-9)
	assert.InDelta(t, 0.2700, kolmogorovQ(1.0), 1e-3)
	assert.InDelta(t, 0.0397, kolmogorovQ(1.4), 1e-3)
	assert.Less(t, kolmogorovQ(2.0), 0.001)
}
