package runloop

import (
	"context"
	"sync"
)

// Future is a single-fire result. The first Resolve wins; its value is
// published on the dispatcher, after which the optional callback runs and
// Done is closed.
type Future[T any] struct {
	once  sync.Once
	d     Dispatcher
	fn    func(T)
	done  chan struct{}
	value T
}

func NewFuture[T any](d Dispatcher, fn func(T)) *Future[T] {
	return &Future[T]{
		d:    d,
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Resolve reports whether this call delivered the result.
func (f *Future[T]) Resolve(v T) bool {
	fired := false
	f.once.Do(func() {
		fired = true
		f.d.Dispatch(func() {
			f.value = v
			if f.fn != nil {
				f.fn(v)
			}
			close(f.done)
		})
	})
	return fired
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Value is only meaningful after Done is closed.
func (f *Future[T]) Value() T {
	return f.value
}

func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
