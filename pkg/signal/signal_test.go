package signal

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"
)

type recorder struct {
	mtx   sync.Mutex
	calls []string
}

func (r *recorder) hook(name string, err error) ShutdownHook {
	return func(_ context.Context) error {
		r.mtx.Lock()
		defer r.mtx.Unlock()
		r.calls = append(r.calls, name)
		return err
	}
}

func (r *recorder) get() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]string(nil), r.calls...)
}

func TestHandler_ShutdownOrder(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Second, zaptest.NewLogger(t))
	rec := &recorder{}

	h.RegisterShutdownHook(PhaseCore, "loop", rec.hook("loop", nil))
	h.RegisterShutdownHook(PhaseSessions, "storage", rec.hook("storage-1", nil))
	h.RegisterShutdownHook(PhaseSessions, "storage", rec.hook("storage-2", errors.New("failed")))
	h.RegisterShutdownHook(PhaseIngress, "server", rec.hook("server", nil))

	h.Shutdown(context.Background())

	g.Expect(rec.get()).To(Equal([]string{"server", "storage-2", "storage-1", "loop"}))
}

func TestHandler_ShutdownPhaseTimeout(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Second, zaptest.NewLogger(t))
	rec := &recorder{}
	release := make(chan struct{})
	defer close(release)

	h.RegisterShutdownHook(PhaseIngress, "stuck", func(ctx context.Context) error {
		<-release
		return nil
	})
	h.RegisterShutdownHook(PhaseCore, "loop", rec.hook("loop", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	h.Shutdown(ctx)

	g.Expect(rec.get()).To(BeEmpty())
}

func TestHandler_Start(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Second, zaptest.NewLogger(t))
	h.notify = func(c chan<- os.Signal) {
		c <- syscall.SIGTERM
	}
	rec := &recorder{}
	h.RegisterShutdownHook(PhaseIngress, "server", rec.hook("server", nil))

	g.Expect(h.Start()).To(Equal(0))
	g.Expect(rec.get()).To(Equal([]string{"server"}))
}

func TestHandler_StartSecondSignal(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Minute, zaptest.NewLogger(t))
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	var sigs chan<- os.Signal
	h.notify = func(c chan<- os.Signal) {
		sigs = c
		c <- os.Interrupt
	}
	h.RegisterShutdownHook(PhaseIngress, "stuck", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	go func() {
		<-started
		sigs <- os.Interrupt
	}()

	g.Expect(h.Start()).To(Equal(1))
}
