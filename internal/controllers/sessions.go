package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/router"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/dto"
	"github.com/selebrow/fetcher/pkg/models"
)

type SessionsController struct {
	svc session.SessionService
	l   *zap.SugaredLogger
}

func NewSessionsController(svc session.SessionService, l *zap.Logger) *SessionsController {
	return &SessionsController{svc: svc, l: l.Sugar()}
}

func (s *SessionsController) List(c echo.Context) error {
	sessions := s.svc.ListSessions()
	resp := dto.SessionList{
		Total:    len(sessions),
		Sessions: make([]dto.Session, 0, len(sessions)),
	}
	for _, sess := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionDTO(sess))
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *SessionsController) Get(c echo.Context) error {
	id, err := sessionParam(c)
	if err != nil {
		return err
	}
	sess, err := s.svc.FindSession(id)
	if err != nil {
		return err
	}
	resp := toSessionDTO(sess)
	return c.JSON(http.StatusOK, &resp)
}

func (s *SessionsController) Delete(c echo.Context) error {
	id, err := sessionParam(c)
	if err != nil {
		return err
	}
	if err := s.svc.DestroySession(id); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}
	s.l.Infow("session destroyed on API request", zap.Stringer("session_id", id))
	return c.NoContent(http.StatusNoContent)
}

func sessionParam(c echo.Context) (models.SessionID, error) {
	raw := c.Param(router.SessionParam)
	id, err := models.ParseSessionID(raw)
	if err != nil || id == 0 {
		return 0, models.NewBadParametersError(errors.Errorf("invalid session id %q", raw))
	}
	return id, nil
}

func toSessionDTO(sess *session.Session) dto.Session {
	return dto.Session{
		ID:                           uint64(sess.ID()),
		Created:                      sess.Created(),
		Ephemeral:                    sess.IsEphemeral(),
		Cached:                       sess.Cache() != nil,
		ResourceLoadStatistics:       sess.Statistics() != nil,
		ThirdPartyCookieBlockingMode: string(sess.Policy().ThirdPartyCookieBlockingMode()),
		Tasks:                        sess.TaskCount(),
		KeptAliveLoads:               sess.KeptAliveLoadCount(),
		Invalidated:                  sess.IsInvalidated(),
	}
}
