package models

import (
	"time"

	"github.com/selebrow/fetcher/pkg/models"
)

const (
	SessionCreatedEventType   = "SessionCreated"
	SessionDestroyedEventType = "SessionDestroyed"
)

type SessionCreated struct {
	SessionID models.SessionID
	Ephemeral bool
	Cached    bool
}

type SessionDestroyed struct {
	SessionID       models.SessionID
	SessionDuration time.Duration
	// CanceledDownloads is the number of downloads canceled with the session.
	CanceledDownloads int
}

func NewSessionCreatedEvent(s SessionCreated) *Event[SessionCreated] {
	return NewEvent(SessionCreatedEventType, now(), s)
}

func NewSessionDestroyedEvent(s SessionDestroyed) *Event[SessionDestroyed] {
	return NewEvent(SessionDestroyedEventType, now(), s)
}
