package session

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/pkg/models"
)

func TestLocalSessionStorage(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	sess2 := newTestSession(t, Parameters{ID: 2, Ephemeral: true})
	sess1 := newTestSession(t, Parameters{ID: 1, Ephemeral: true})

	g.Expect(s.Add(sess2)).To(Succeed())
	g.Expect(s.Add(sess1)).To(Succeed())
	g.Expect(s.Add(sess1)).To(MatchError(ErrSessionExists))

	got, ok := s.Get(1)
	g.Expect(ok).To(BeTrue())
	g.Expect(got).To(BeIdenticalTo(sess1))
	g.Expect(s.List()).To(Equal([]*Session{sess1, sess2}))

	g.Expect(s.Delete(1)).To(BeTrue())
	g.Expect(s.Delete(1)).To(BeFalse())
	_, ok = s.Get(1)
	g.Expect(ok).To(BeFalse())
}

func TestLocalSessionStorage_Shutdown(t *testing.T) {
	g := NewWithT(t)
	s := NewLocalSessionStorage(zaptest.NewLogger(t))

	var sessions []*Session
	for id := models.SessionID(1); id <= 3; id++ {
		sess := newTestSession(t, Parameters{ID: id, Ephemeral: true})
		g.Expect(s.Add(sess)).To(Succeed())
		sessions = append(sessions, sess)
	}
	task := new(fakeTask)
	g.Expect(sessions[0].RegisterTask(task)).To(Succeed())

	g.Expect(s.Shutdown(context.TODO())).To(Succeed())

	g.Expect(s.IsShutdown()).To(BeTrue())
	g.Expect(s.List()).To(BeEmpty())
	for _, sess := range sessions {
		g.Expect(sess.IsInvalidated()).To(BeTrue())
	}
	g.Expect(task.canceled.Load()).To(BeEquivalentTo(1))
	g.Expect(s.Add(newTestSession(t, Parameters{ID: 9, Ephemeral: true}))).To(MatchError(ErrStorageShutdown))
}
