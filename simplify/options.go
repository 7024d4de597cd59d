// SPDX-License-Identifier: MIT

package simplify

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures Simplify and Batch.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options is the resolved configuration.
type options struct {
	logger      *zap.Logger // rule-level tracing; Nop by default
	concurrency int         // Batch worker bound; >= 1
}

// defaultOptions returns the deterministic defaults:
//   - logger      = zap.NewNop()
//   - concurrency = runtime.GOMAXPROCS(0)
func defaultOptions() options {
	return options{
		logger:      zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies opts in order; later options win.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger traces every fired rewrite rule at debug level:
//
//	rewrite  rule=product/cancel-left  from=(m/s)*s  to=m
//
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithConcurrency bounds the number of shapes Batch simplifies at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyBound)
	}

	return func(o *options) { o.concurrency = n }
}
