package runloop

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestFuture_ResolveOnce(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	calls := make(chan string, 2)
	f := NewFuture(r, func(v string) {
		calls <- v
	})

	g.Expect(f.Resolve("first")).To(BeTrue())
	g.Expect(f.Resolve("second")).To(BeFalse())

	g.Eventually(f.Done()).Should(BeClosed())
	g.Expect(f.Value()).To(Equal("first"))
	g.Expect(calls).To(Receive(Equal("first")))
	g.Consistently(calls, 20*time.Millisecond).ShouldNot(Receive())
}

func TestFuture_Wait(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	f := NewFuture[int](r, nil)
	go f.Resolve(42)

	v, err := f.Wait(context.Background())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(v).To(Equal(42))
}

func TestFuture_WaitCanceled(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	f := NewFuture[int](r, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Wait(ctx)
	g.Expect(err).To(MatchError(context.Canceled))
}

func TestFuture_CallbackNotInline(t *testing.T) {
	g := NewWithT(t)
	r := newTestLoop(t)

	block := make(chan struct{})
	r.Dispatch(func() {
		<-block
	})

	fired := false
	f := NewFuture(r, func(bool) {
		fired = true
	})
	f.Resolve(true)
	g.Expect(fired).To(BeFalse())

	close(block)
	g.Eventually(f.Done()).Should(BeClosed())
	g.Expect(fired).To(BeTrue())
}
