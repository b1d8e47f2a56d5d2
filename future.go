package sift

import (
	"context"
	"sync"
)

// Future is a single-settlement asynchronous result: resolved with a value
// or rejected with an error, exactly once. It is the shape Implement
// recognizes for non-blocking output validation. The zero value is not
// usable; construct with NewFuture or Go.
type Future struct {
	done chan struct{}
	once sync.Once
	val  any
	err  error
}

// NewFuture returns an unsettled future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Go runs fn in a new goroutine and settles the returned future with its
// outcome.
func Go(fn func() (any, error)) *Future {
	f := NewFuture()
	go func() {
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// Resolve settles the future with a value. The first settlement wins; later
// calls are no-ops.
func (f *Future) Resolve(v any) {
	f.once.Do(func() {
		f.val = v
		close(f.done)
	})
}

// Reject settles the future with an error. The first settlement wins; later
// calls are no-ops.
func (f *Future) Reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future) Done() <-chan struct{} { return f.done }

// Await blocks until the future settles or ctx ends, whichever comes first.
// Abandoning the wait never cancels the underlying computation; the future
// still settles and can be awaited again.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
