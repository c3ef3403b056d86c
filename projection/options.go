package projection

import "github.com/hupe1980/mdcompare"

type options struct {
	logger *mdcompare.Logger
}

// Option configures a projection sort.
type Option func(*options)

func applyOptions(opts []Option) *options {
	o := &options{
		logger: mdcompare.NoopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger configures the logger used for progress output.
func WithLogger(l *mdcompare.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
