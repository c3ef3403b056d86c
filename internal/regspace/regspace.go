// Package regspace implements regular-space clustering: a new cluster
// center is admitted whenever a point lies farther than a minimum distance
// from all existing centers. The realized number of clusters is
// data-dependent.
package regspace

import (
	"math"

	"github.com/hupe1980/mdcompare/distance"
)

// Cluster partitions the given row-major vectors (n * dim) by greedily
// admitting centers at least minDist (Euclidean) apart, then assigning
// every point to its nearest center. It returns the flattened centers and
// the per-point assignments.
func Cluster(vectors []float64, dim int, minDist float64) ([]float64, []int) {
	n := len(vectors) / dim
	if n == 0 {
		return nil, nil
	}

	minDistSq := minDist * minDist

	// Center admission pass
	var centers []float64
	for i := 0; i < n; i++ {
		vec := vectors[i*dim : (i+1)*dim]

		admit := true
		for c := 0; c < len(centers)/dim; c++ {
			center := centers[c*dim : (c+1)*dim]
			if distance.SquaredL2(vec, center) < minDistSq {
				admit = false
				break
			}
		}
		if admit {
			centers = append(centers, vec...)
		}
	}

	// Voronoi assignment pass
	k := len(centers) / dim
	assignments := make([]int, n)
	for i := 0; i < n; i++ {
		vec := vectors[i*dim : (i+1)*dim]
		best := -1
		minD := math.MaxFloat64

		for j := 0; j < k; j++ {
			center := centers[j*dim : (j+1)*dim]
			d := distance.SquaredL2(vec, center)
			if d < minD {
				minD = d
				best = j
			}
		}

		assignments[i] = best
	}

	return centers, assignments
}
