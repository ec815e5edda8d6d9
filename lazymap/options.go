package lazymap

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

// Option configures a Map.
type Option func(*options)

// WithLogger sets the logger used for resolution events, emitted at debug
// level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
