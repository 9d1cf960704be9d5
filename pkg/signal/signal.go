package signal

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type ShutdownHook func(ctx context.Context) error

// Phase orders shutdown. Phases run in ascending order, the groups of a phase
// run concurrently and the hooks of a group run in reverse registration order.
type Phase int

const (
	// PhaseIngress stops accepting work: API server, peer channel.
	PhaseIngress Phase = iota
	// PhaseSessions invalidates sessions and their downloads.
	PhaseSessions
	// PhaseCore drains the event loop and the event broker.
	PhaseCore
)

type Handler struct {
	mtx     sync.Mutex
	hooks   map[Phase]map[any][]ShutdownHook
	timeout time.Duration
	notify  func(c chan<- os.Signal)
	l       *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		hooks:   make(map[Phase]map[any][]ShutdownHook),
		timeout: timeout,
		notify: func(c chan<- os.Signal) {
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		},
		l: l.Sugar(),
	}
}

// Start blocks until a termination signal arrives, runs the shutdown hooks
// and returns the process exit code.
func (h *Handler) Start() int {
	c := make(chan os.Signal, 2)
	h.notify(c)

	sig := <-c

	h.l.Infow("signal caught, shutting down...", zap.String("signal", sig.String()))

	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Shutdown(ctx)
	}()

	select {
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v, exiting immediately", h.timeout)
		return 1
	case <-done:
		h.l.Infof("graceful shutdown completed in %v", time.Since(start))
		return 0
	case sig = <-c:
		h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
	}

	return 1
}

func (h *Handler) RegisterShutdownHook(phase Phase, group any, hook ShutdownHook) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	groups, ok := h.hooks[phase]
	if !ok {
		groups = make(map[any][]ShutdownHook)
		h.hooks[phase] = groups
	}
	groups[group] = append(groups[group], hook)
}

// Shutdown runs every registered hook phase by phase. A phase which doesn't
// finish before ctx is done stops the sequence.
func (h *Handler) Shutdown(ctx context.Context) {
	h.mtx.Lock()
	phases := make([]Phase, 0, len(h.hooks))
	for p := range h.hooks {
		phases = append(phases, p)
	}
	slices.Sort(phases)
	h.mtx.Unlock()

	for _, p := range phases {
		select {
		case <-h.runPhase(ctx, p):
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) runPhase(ctx context.Context, p Phase) <-chan struct{} {
	h.mtx.Lock()
	groups := make([][]ShutdownHook, 0, len(h.hooks[p]))
	for _, hooks := range h.hooks[p] {
		groups = append(groups, slices.Clone(hooks))
	}
	h.mtx.Unlock()

	var wg sync.WaitGroup
	done := make(chan struct{})
	for _, hooks := range groups {
		hooks := hooks
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := len(hooks) - 1; i >= 0; i-- {
				if err := hooks[i](ctx); err != nil {
					h.l.Warnw("shutdown hook failed", zap.Int("phase", int(p)), zap.Error(err))
				}
			}
		}()
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	return done
}
