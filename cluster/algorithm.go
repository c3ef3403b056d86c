package cluster

import "fmt"

// Algorithm selects the clustering algorithm.
type Algorithm int

const (
	// KMeans is Lloyd's algorithm with a fixed cluster count.
	KMeans Algorithm = iota
	// RegularSpace greedily admits a new center whenever a point lies
	// farther than a minimum distance from all existing centers.
	RegularSpace
)

func (a Algorithm) String() string {
	switch a {
	case KMeans:
		return "kmeans"
	case RegularSpace:
		return "rspace"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// ParseAlgorithm converts an algorithm name as it appears on config
// surfaces ("kmeans", "rspace") into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "kmeans":
		return KMeans, nil
	case "rspace":
		return RegularSpace, nil
	default:
		return 0, &ErrUnknownAlgorithm{Name: name}
	}
}
