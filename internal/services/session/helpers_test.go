package session

import (
	"context"
	"sync/atomic"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/pkg/models"
)

type fakeTask struct {
	canceled atomic.Int32
}

func (t *fakeTask) InvalidateAndCancel() {
	t.canceled.Add(1)
}

type fakeKeptAliveLoad struct {
	sessionID models.SessionID
}

func (l *fakeKeptAliveLoad) SessionID() models.SessionID {
	return l.sessionID
}

func newTestDeps(t *testing.T) Dependencies {
	loop := runloop.NewLoop(zaptest.NewLogger(t))
	t.Cleanup(func() {
		_ = loop.Shutdown(context.Background())
	})
	return Dependencies{Dispatcher: loop}
}

func newTestSession(t *testing.T, params Parameters) *Session {
	t.Helper()
	sess, err := NewSession(params, newTestDeps(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sess.Destroy)
	return sess
}
