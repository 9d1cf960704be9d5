package session

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/common/clock"
	"github.com/selebrow/fetcher/pkg/event"
	evmodels "github.com/selebrow/fetcher/pkg/event/models"
	"github.com/selebrow/fetcher/pkg/models"
)

type SessionService interface {
	CreateSession(params Parameters) (*Session, error)
	FindSession(id models.SessionID) (*Session, error)
	ListSessions() []*Session
	DestroySession(id models.SessionID) error
}

// DownloadCanceler cancels the downloads a session owns.
type DownloadCanceler interface {
	CancelDownloadsForSession(id models.SessionID) int
}

type LocalSessionService struct {
	storage   SessionStorage
	deps      Dependencies
	downloads DownloadCanceler
	broker    event.EventBroker
	now       clock.NowFunc
	l         *zap.SugaredLogger
}

func NewLocalSessionService(
	storage SessionStorage,
	deps Dependencies,
	downloads DownloadCanceler,
	broker event.EventBroker,
	now clock.NowFunc,
	l *zap.Logger,
) *LocalSessionService {
	if deps.Now == nil {
		deps.Now = now
	}
	return &LocalSessionService{
		storage:   storage,
		deps:      deps,
		downloads: downloads,
		broker:    broker,
		now:       now,
		l:         l.Sugar(),
	}
}

func (s *LocalSessionService) CreateSession(params Parameters) (*Session, error) {
	if s.storage.IsShutdown() {
		return nil, ErrStorageShutdown
	}
	if _, ok := s.storage.Get(params.ID); ok {
		return nil, models.NewBadParametersError(errors.Wrapf(ErrSessionExists, "session %d", params.ID))
	}

	sess, err := NewSession(params, s.deps, s.l.Desugar())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}
	if err := s.storage.Add(sess); err != nil {
		sess.Destroy()
		return nil, errors.Wrap(err, "failed to store session")
	}

	s.broker.Publish(evmodels.NewSessionCreatedEvent(evmodels.SessionCreated{
		SessionID: sess.ID(),
		Ephemeral: sess.IsEphemeral(),
		Cached:    sess.Cache() != nil,
	}))
	s.l.Infow("session created",
		zap.Stringer("session_id", sess.ID()),
		zap.Bool("ephemeral", sess.IsEphemeral()),
		zap.Bool("cached", sess.Cache() != nil),
	)
	return sess, nil
}

func (s *LocalSessionService) FindSession(id models.SessionID) (*Session, error) {
	sess, ok := s.storage.Get(id)
	if !ok {
		return nil, models.NewNotFoundError(errors.Errorf("session %d doesn't exist", id))
	}
	return sess, nil
}

func (s *LocalSessionService) ListSessions() []*Session {
	return s.storage.List()
}

// DestroySession cancels the session's downloads, invalidates it and
// releases its storage.
func (s *LocalSessionService) DestroySession(id models.SessionID) error {
	sess, ok := s.storage.Get(id)
	if !ok || !s.storage.Delete(id) {
		return models.NewNotFoundError(errors.Errorf("session %d doesn't exist", id))
	}

	var canceled int
	if s.downloads != nil {
		canceled = s.downloads.CancelDownloadsForSession(id)
	}
	sess.Destroy()

	lifetime := s.now().Sub(sess.Created())
	s.broker.Publish(evmodels.NewSessionDestroyedEvent(evmodels.SessionDestroyed{
		SessionID:         id,
		SessionDuration:   lifetime,
		CanceledDownloads: canceled,
	}))
	s.l.Infow("session destroyed",
		zap.Stringer("session_id", id),
		zap.Duration("lifetime", lifetime.Round(time.Millisecond)),
		zap.Int("canceled_downloads", canceled),
	)
	return nil
}
