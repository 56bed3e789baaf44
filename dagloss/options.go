// SPDX-License-Identifier: MIT

package dagloss

import "github.com/ajroetker/go-highway/hwy/contrib/workerpool"

// Option customizes how batched operations are executed.
type Option func(*options)

type options struct {
	pool    *workerpool.Pool // caller-owned; never closed here
	workers int              // size of the transient pool when pool is nil (<=0: GOMAXPROCS)
}

// WithPool runs batched work on p. The caller keeps ownership and must Close it.
// A nil p is ignored.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) {
		if p != nil {
			o.pool = p
		}
	}
}

// WithWorkers sizes the transient pool used when no pool is supplied.
// n <= 0 selects GOMAXPROCS; n == 1 runs items sequentially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// acquire returns the pool to use and a release func for it.
func (o options) acquire() (*workerpool.Pool, func()) {
	if o.pool != nil {
		return o.pool, func() {}
	}
	p := workerpool.New(o.workers)

	return p, p.Close
}

// parallelFor runs fn over [0,n) on the configured pool.
func (o options) parallelFor(n int, fn func(start, end int)) {
	p, release := o.acquire()
	defer release()
	p.ParallelFor(n, fn)
}
