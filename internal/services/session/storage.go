package session

import (
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/selebrow/fetcher/pkg/models"
)

var (
	ErrStorageShutdown = errors.New("session storage is shutdown")
	ErrSessionExists   = errors.New("session already exists")
)

type SessionStorage interface {
	Add(sess *Session) error
	Get(id models.SessionID) (*Session, bool)
	List() []*Session
	Delete(id models.SessionID) bool
	IsShutdown() bool
}

type LocalSessionStorage struct {
	sessions map[models.SessionID]*Session
	shutdown bool
	mtx      sync.RWMutex
	l        *zap.SugaredLogger
}

func NewLocalSessionStorage(l *zap.Logger) *LocalSessionStorage {
	return &LocalSessionStorage{
		sessions: make(map[models.SessionID]*Session),
		l:        l.Sugar(),
	}
}

func (s *LocalSessionStorage) Add(sess *Session) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.shutdown {
		return ErrStorageShutdown
	}
	if _, ok := s.sessions[sess.ID()]; ok {
		return models.NewBadParametersError(errors.Wrapf(ErrSessionExists, "session %d", sess.ID()))
	}
	s.sessions[sess.ID()] = sess
	return nil
}

func (s *LocalSessionStorage) Get(id models.SessionID) (*Session, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// List returns sessions ordered by id.
func (s *LocalSessionStorage) List() []*Session {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		res = append(res, sess)
	}
	slices.SortFunc(res, func(a, b *Session) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})
	return res
}

func (s *LocalSessionStorage) Delete(id models.SessionID) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *LocalSessionStorage) IsShutdown() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.shutdown
}

// Shutdown destroys every remaining session concurrently.
func (s *LocalSessionStorage) Shutdown(ctx context.Context) error {
	s.mtx.Lock()
	s.shutdown = true
	sessions := s.sessions
	s.sessions = make(map[models.SessionID]*Session)
	s.mtx.Unlock()

	s.l.Infof("session storage is shutting down, destroying %d sessions", len(sessions))

	done := make(chan struct{})
	var eg errgroup.Group
	for _, sess := range sessions {
		sess := sess
		eg.Go(func() error {
			sess.Destroy()
			return nil
		})
	}

	go func() {
		defer close(done)
		_ = eg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	return nil
}
