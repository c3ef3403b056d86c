package cluster

import "github.com/hupe1980/mdcompare"

const (
	// DefaultNumClusters is the k-means cluster count when not configured.
	DefaultNumClusters = 2
	// DefaultMaxIterations is the k-means iteration cap when not configured.
	DefaultMaxIterations = 100
	// DefaultMinDist is the regular-space minimum inter-center distance
	// when not configured.
	DefaultMinDist = 12.0
	// DefaultSeed is the RNG seed for k-means initialization when not
	// configured. A fixed default keeps results reproducible.
	DefaultSeed = 42
)

type options struct {
	algorithm   Algorithm
	numClusters int
	maxIter     int
	minDist     float64
	seed        int64
	logger      *mdcompare.Logger
}

// Option configures a clustering run.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		algorithm:   KMeans,
		numClusters: DefaultNumClusters,
		maxIter:     DefaultMaxIterations,
		minDist:     DefaultMinDist,
		seed:        DefaultSeed,
		logger:      mdcompare.NoopLogger(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAlgorithm selects the clustering algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithNumClusters sets the k-means cluster count.
func WithNumClusters(k int) Option {
	return func(o *options) {
		o.numClusters = k
	}
}

// WithMaxIterations sets the k-means iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}

// WithMinDist sets the regular-space minimum inter-center distance.
func WithMinDist(d float64) Option {
	return func(o *options) {
		o.minDist = d
	}
}

// WithSeed sets the RNG seed used for k-means centroid initialization.
// Callers requiring determinism must fix the seed; the seed is part of
// the configuration surface, not hidden global state.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger configures the logger used for progress output.
func WithLogger(l *mdcompare.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
