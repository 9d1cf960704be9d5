package models

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestNewEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(123)
	e := NewEvent[string]("test", tm, "event1")
	g.Expect(e.EventType()).To(Equal("test"))
	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.Attributes).To(Equal("event1"))
}

func TestEventTypes(t *testing.T) {
	g := NewWithT(t)
	now = func() time.Time { return time.UnixMilli(42) }
	t.Cleanup(func() { now = time.Now })

	e := NewPendingDownloadCanceledEvent(PendingDownloadCanceled{DownloadID: 7})
	g.Expect(EventTypes).To(ContainElement(e.EventType()))
	g.Expect(e.EventTime()).To(Equal(time.UnixMilli(42)))
	g.Expect(NewSessionCreatedEvent(SessionCreated{}).EventType()).To(Equal(SessionCreatedEventType))
	g.Expect(EventTypes).To(HaveLen(5))
}
