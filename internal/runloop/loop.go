package runloop

import (
	"container/list"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Dispatcher posts callbacks to be run later, never inline with the caller.
type Dispatcher interface {
	Dispatch(fn func())
}

// Loop is the cooperative event loop of the process: a single goroutine
// running posted callbacks in FIFO order.
type Loop struct {
	mtx     sync.Mutex
	queue   *list.List
	wake    chan struct{}
	stopped bool
	done    chan struct{}
	l       *zap.SugaredLogger
}

func NewLoop(l *zap.Logger) *Loop {
	r := &Loop{
		queue: list.New(),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		l:     l.Sugar(),
	}
	go r.run()
	return r
}

func (r *Loop) Dispatch(fn func()) {
	r.mtx.Lock()
	if r.stopped {
		r.mtx.Unlock()
		r.l.Warn("loop is stopped, running callback on a detached goroutine")
		go fn()
		return
	}
	r.queue.PushBack(fn)
	r.mtx.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Shutdown stops the loop once every callback queued so far has run.
func (r *Loop) Shutdown(ctx context.Context) error {
	r.mtx.Lock()
	r.stopped = true
	r.mtx.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.done:
		r.l.Info("event loop stopped")
		return nil
	}
}

func (r *Loop) run() {
	defer close(r.done)
	for {
		fn, ok := r.next()
		if !ok {
			return
		}
		fn()
	}
}

func (r *Loop) next() (func(), bool) {
	for {
		r.mtx.Lock()
		if e := r.queue.Front(); e != nil {
			r.queue.Remove(e)
			r.mtx.Unlock()
			return e.Value.(func()), true
		}
		stopped := r.stopped
		r.mtx.Unlock()
		if stopped {
			return nil, false
		}
		<-r.wake
	}
}
