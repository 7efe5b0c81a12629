// Package pool runs storage calls on a bounded set of background slots, so that a slow query never holds up
// the goroutine serving a request for longer than the caller is willing to wait.
package pool

import (
	"context"
	"fmt"
	"time"

	"github.com/sidereusnuntius/commune/internal/db"
	"golang.org/x/sync/semaphore"
)

type Pool struct {
	sem            *semaphore.Weighted
	acquireTimeout time.Duration
}

// New returns a pool with size slots. A call that cannot get a slot within acquireTimeout fails with
// db.ErrInternal.
func New(size int, acquireTimeout time.Duration) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		sem:            semaphore.NewWeighted(int64(size)),
		acquireTimeout: acquireTimeout,
	}
}

type result[T any] struct {
	v   T
	err error
}

// Do runs f in a slot of p and waits for its result. f receives a context that keeps ctx's values but not
// its cancellation: once started, the call runs to completion even if the caller goes away, and its result
// is then dropped.
func Do[T any](ctx context.Context, p *Pool, f func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	actx, cancel := context.WithTimeout(context.Background(), p.acquireTimeout)
	defer cancel()
	if err := p.sem.Acquire(actx, 1); err != nil {
		return zero, fmt.Errorf("%w: no storage slot free after %s", db.ErrInternal, p.acquireTimeout)
	}

	done := make(chan result[T], 1)
	detached := context.WithoutCancel(ctx)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: fmt.Errorf("%w: storage call panicked: %v", db.ErrInternal, r)}
			}
		}()

		v, err := f(detached)
		done <- result[T]{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Run is Do for calls without a result.
func Run(ctx context.Context, p *Pool, f func(ctx context.Context) error) error {
	_, err := Do(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, f(ctx)
	})
	return err
}
