package galgo

import "runtime"

type options struct {
	logger      *Logger
	parallelism int
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// Option configures Compile/Compute behavior.
type Option func(*options)

// WithLogger configures the logger used for compile and evaluation
// statistics. Pass nil to keep logging disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism bounds the number of concurrent evaluations in
// Program.EvalBatch. Values below 1 fall back to GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelism = n
		}
	}
}
