package divergence

import "github.com/hupe1980/mdcompare"

// DefaultNumBins is the number of shared histogram bins used for density
// estimation when not configured otherwise.
const DefaultNumBins = 10

type options struct {
	numBins int
	logger  *mdcompare.Logger
}

// Option configures a divergence computation.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		numBins: DefaultNumBins,
		logger:  mdcompare.NoopLogger(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithNumBins configures the number of shared histogram bins used for the
// density estimates. Values < 1 are ignored.
func WithNumBins(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.numBins = n
		}
	}
}

// WithLogger configures the logger used for per-feature progress output.
func WithLogger(l *mdcompare.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
