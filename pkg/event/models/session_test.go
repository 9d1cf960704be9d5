package models

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestNewSessionCreatedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(123)
	now = func() time.Time {
		return tm
	}

	sc := SessionCreated{
		SessionID: 7,
		Ephemeral: true,
	}

	e := NewSessionCreatedEvent(sc)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(SessionCreatedEventType))
	g.Expect(e.Attributes).To(Equal(sc))
}

func TestNewSessionDestroyedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(222)
	now = func() time.Time {
		return tm
	}

	sd := SessionDestroyed{
		SessionID:         7,
		SessionDuration:   time.Minute,
		CanceledDownloads: 2,
	}

	e := NewSessionDestroyedEvent(sd)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(SessionDestroyedEventType))
	g.Expect(e.Attributes).To(Equal(sd))
}

func TestNewPendingDownloadCanceledEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(333)
	now = func() time.Time {
		return tm
	}

	e := NewPendingDownloadCanceledEvent(PendingDownloadCanceled{DownloadID: 42})

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(PendingDownloadCanceledEventType))
	g.Expect(e.Attributes.DownloadID).To(BeEquivalentTo(42))
}
