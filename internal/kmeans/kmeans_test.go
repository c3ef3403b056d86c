package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mdcompare/util"
)

func TestCluster(t *testing.T) {
	// 2 clusters: (0,0) and (10,10)
	vecs := []float64{
		0, 0, 0, 1, 1, 0, // near 0,0
		10, 10, 10, 11, 11, 10, // near 10,10
	}
	k := 2
	dim := 2

	centroids, assignments, err := Cluster(vecs, dim, k, util.NewRNG(42), 100)
	require.NoError(t, err)
	assert.Len(t, centroids, k*dim)
	require.Len(t, assignments, 6)

	// The two blobs end up in different clusters.
	assert.Equal(t, assignments[0], assignments[1])
	assert.Equal(t, assignments[0], assignments[2])
	assert.Equal(t, assignments[3], assignments[4])
	assert.Equal(t, assignments[3], assignments[5])
	assert.NotEqual(t, assignments[0], assignments[3])
}

func TestCluster_TooFewPoints(t *testing.T) {
	_, _, err := Cluster([]float64{0, 0}, 2, 2, util.NewRNG(1), 10)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestCluster_Deterministic(t *testing.T) {
	vecs := make([]float64, 50*2)
	rng := util.NewRNG(7)
	for i := range vecs {
		vecs[i] = float64(rng.Intn(1000))
	}

	_, a1, err := Cluster(vecs, 2, 4, util.NewRNG(99), 100)
	require.NoError(t, err)
	_, a2, err := Cluster(vecs, 2, 4, util.NewRNG(99), 100)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}
