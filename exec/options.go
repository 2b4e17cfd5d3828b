// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package exec

import (
	"errors"
	"runtime"

	"golang.org/x/time/rate"
)

// An Option adjusts how a runner drives a computation.
type Option func(*config)

type config struct {
	limiter     *rate.Limiter
	parallelism int
	threshold   int
}

// WithParallelism sets the number of workers executing leaf tasks and
// the parallelism level fed to the split threshold. It panics if n is
// not positive. The default is [runtime.GOMAXPROCS].
func WithParallelism(n int) Option {
	if n <= 0 {
		panic(errors.New("parallelism must be greater than zero"))
	}
	return func(c *config) {
		c.parallelism = n
	}
}

// WithThreshold overrides the computed split threshold: ranges of at
// most n elements run sequentially. It panics if n is not positive.
// The default is derived from the input size and parallelism via
// [vawter.tech/forkjoin.Threshold].
func WithThreshold(n int) Option {
	if n <= 0 {
		panic(errors.New("threshold must be greater than zero"))
	}
	return func(c *config) {
		c.threshold = n
	}
}

// WithMaxRate limits the rate at which leaf tasks are launched, with
// the given burst size. Leaves blocked on the limiter respect
// cancellation of the computation's context.
func WithMaxRate(r float64, burst int) Option {
	l := rate.NewLimiter(rate.Limit(r), burst)
	return func(c *config) {
		c.limiter = l
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.parallelism == 0 {
		cfg.parallelism = runtime.GOMAXPROCS(0)
	}
	return cfg
}
