package kmeans

import (
	"errors"
	"math"

	"github.com/hupe1980/mdcompare/distance"
	"github.com/hupe1980/mdcompare/util"
)

// ErrTooFewPoints is returned when there are fewer data points than
// requested clusters.
var ErrTooFewPoints = errors.New("fewer data points than clusters")

// Cluster partitions the given row-major vectors (n * dim) into k clusters
// using Lloyd's algorithm with an iteration cap. Initial centroids are
// drawn from the data points using the given RNG. It returns the flattened
// centroids (k * dim) and the per-point assignments.
func Cluster(vectors []float64, dim int, k int, rng *util.RNG, maxIter int) ([]float64, []int, error) {
	n := len(vectors) / dim
	if n < k {
		return nil, nil, ErrTooFewPoints
	}

	centroids := make([]float64, k*dim)

	// Initialize centroids randomly from data points
	perm := rng.Perm(n)
	for i := 0; i < k; i++ {
		copy(centroids[i*dim:(i+1)*dim], vectors[perm[i]*dim:(perm[i]+1)*dim])
	}

	assignments := make([]int, n)
	counts := make([]int, k)
	sums := make([]float64, k*dim)

	for iter := 0; iter < maxIter; iter++ {
		changed := false

		// Assignment step
		for i := 0; i < n; i++ {
			vec := vectors[i*dim : (i+1)*dim]
			bestCluster := -1
			minDist := math.MaxFloat64

			for j := 0; j < k; j++ {
				center := centroids[j*dim : (j+1)*dim]
				d := distance.SquaredL2(vec, center)
				if d < minDist {
					minDist = d
					bestCluster = j
				}
			}

			if assignments[i] != bestCluster {
				assignments[i] = bestCluster
				changed = true
			}
		}

		if !changed && iter > 0 {
			break
		}

		// Update step
		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}

		for i := 0; i < n; i++ {
			cluster := assignments[i]
			vec := vectors[i*dim : (i+1)*dim]
			for d := 0; d < dim; d++ {
				sums[cluster*dim+d] += vec[d]
			}
			counts[cluster]++
		}

		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				scale := 1.0 / float64(counts[j])
				for d := 0; d < dim; d++ {
					centroids[j*dim+d] = sums[j*dim+d] * scale
				}
			} else {
				// Re-initialize empty cluster with a random point
				// (Simple heuristic to avoid empty clusters)
				idx := rng.Intn(n)
				copy(centroids[j*dim:(j+1)*dim], vectors[idx*dim:(idx+1)*dim])
			}
		}
	}

	return centroids, assignments, nil
}
