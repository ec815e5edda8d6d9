package lazylist

import "github.com/rs/zerolog"

// options holds configuration shared by every List constructor.
type options struct {
	logger zerolog.Logger
}

// Option configures a List.
type Option func(*options)

// WithLogger sets the logger used for materialization events. Events are
// emitted at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
