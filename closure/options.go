// SPDX-License-Identifier: MIT
package closure

// Options configures the closure algorithm: numeric tolerance and the
// upper bound used to detect a non-closing (or implausibly large) group.
//
// Use NewOptions with functional Option values to build one; it starts
// from Epsilon=1e-6 and MaxOrder=1000. A zero-value Options has Epsilon 0
// and MaxOrder 0, so any closure that must add a product beyond the
// identity and the generators fails with ErrClosureExceeded.
type Options struct {
	Epsilon  float64
	MaxOrder int
}

// Option configures an Options instance.
type Option func(*Options)

// WithEpsilon sets the tolerance used for matrix and scalar equality.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxOrder sets the closure size bound.
func WithMaxOrder(n int) Option {
	return func(o *Options) { o.MaxOrder = n }
}

// NewOptions constructs Options from functional overrides. Defaults:
// Epsilon=1e-6, MaxOrder=1000.
func NewOptions(opts ...Option) Options {
	o := Options{Epsilon: 1e-6, MaxOrder: 1000}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
