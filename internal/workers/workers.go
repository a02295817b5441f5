package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs jobs with at most Size of them in flight.
type Pool struct {
	size int
}

// NewPool returns a Pool of the given size. Sizes below 1 are treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size}
}

// Size returns the concurrency limit.
func (p *Pool) Size() int {
	return p.size
}

// Run calls job once for every index in [0, n) and blocks until all calls
// returned. Jobs do not cancel each other; once ctx is done, jobs that have
// not started yet are skipped. Run returns ctx.Err() in that case.
func (p *Pool) Run(ctx context.Context, n int, job Job) error {
	g := new(errgroup.Group)
	g.SetLimit(p.size)

	for i := range n {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			job(ctx, i)
			return nil
		})
	}

	_ = g.Wait()
	return ctx.Err()
}
