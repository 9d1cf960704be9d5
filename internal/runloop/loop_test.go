package runloop

import (
	"context"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestLoop(t *testing.T) *Loop {
	r := NewLoop(zaptest.NewLogger(t))
	t.Cleanup(func() {
		_ = r.Shutdown(context.Background())
	})
	return r
}

func TestLoop_DispatchOrder(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	var (
		mtx sync.Mutex
		got []int
	)
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		i := i
		r.Dispatch(func() {
			mtx.Lock()
			got = append(got, i)
			mtx.Unlock()
			if i == 99 {
				close(done)
			}
		})
	}

	g.Eventually(done).Should(BeClosed())
	for i, v := range got {
		g.Expect(v).To(Equal(i))
	}
}

func TestLoop_DispatchNeverInline(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	ran := make(chan struct{})
	block := make(chan struct{})
	r.Dispatch(func() {
		<-block
	})
	r.Dispatch(func() {
		close(ran)
	})
	g.Consistently(ran, 50*time.Millisecond).ShouldNot(BeClosed())
	close(block)
	g.Eventually(ran).Should(BeClosed())
}

func TestLoop_DispatchFromCallback(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	inner := make(chan struct{})
	r.Dispatch(func() {
		r.Dispatch(func() {
			close(inner)
		})
	})
	g.Eventually(inner).Should(BeClosed())
}

func TestLoop_ShutdownDrainsQueue(t *testing.T) {
	g := NewWithT(t)
	r := NewLoop(zaptest.NewLogger(t))

	block := make(chan struct{})
	r.Dispatch(func() {
		<-block
	})
	last := make(chan struct{})
	r.Dispatch(func() {
		close(last)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Shutdown(context.Background())
	}()
	close(block)

	g.Eventually(errCh).Should(Receive(BeNil()))
	g.Expect(last).To(BeClosed())

	late := make(chan struct{})
	r.Dispatch(func() {
		close(late)
	})
	g.Eventually(late).Should(BeClosed())
}

func TestLoop_ShutdownTimeout(t *testing.T) {
	g := NewWithT(t)
	r := NewLoop(zaptest.NewLogger(t))

	block := make(chan struct{})
	r.Dispatch(func() {
		<-block
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	g.Expect(r.Shutdown(ctx)).To(MatchError(context.DeadlineExceeded))

	close(block)
	g.Expect(r.Shutdown(context.Background())).To(Succeed())
}
