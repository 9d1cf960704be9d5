package event

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/selebrow/fetcher/pkg/event/models"
)

type EventBroker interface {
	Subscribe(eventTypes ...string) <-chan models.IEvent
	Unsubscribe(ch <-chan models.IEvent)
	Publish(event models.IEvent)
}

// EventBrokerImpl fans events out to buffered subscriber channels. Publishing
// never blocks: an event is dropped for a subscriber whose buffer is full.
type EventBrokerImpl struct {
	mtx     sync.RWMutex
	subs    map[string][]chan models.IEvent
	bSize   int
	dropped atomic.Uint64
	closed  bool
	l       *zap.SugaredLogger
}

func NewEventBrokerImpl(bufferSize int, l *zap.Logger) *EventBrokerImpl {
	return &EventBrokerImpl{
		subs:  make(map[string][]chan models.IEvent),
		bSize: bufferSize,
		l:     l.Sugar(),
	}
}

func (b *EventBrokerImpl) Subscribe(eventTypes ...string) <-chan models.IEvent {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	ch := make(chan models.IEvent, b.bSize)
	if b.closed {
		close(ch)
		return ch
	}
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], ch)
	}
	return ch
}

// Unsubscribe detaches ch from every event type and closes it.
func (b *EventBrokerImpl) Unsubscribe(ch <-chan models.IEvent) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	var found chan models.IEvent
	for et, chs := range b.subs {
		for i, c := range chs {
			if c == ch {
				found = c
				b.subs[et] = append(chs[:i:i], chs[i+1:]...)
				break
			}
		}
		if len(b.subs[et]) == 0 {
			delete(b.subs, et)
		}
	}
	if found != nil {
		close(found)
	}
}

func (b *EventBrokerImpl) Publish(event models.IEvent) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	for _, ch := range b.subs[event.EventType()] {
		select {
		case ch <- event:
		default:
			b.l.With(zap.String("type", event.EventType())).
				Warnf("dropping published event, channel is full: length=%d", len(ch))
			b.dropped.Add(1)
		}
	}
}

// Dropped returns the number of deliveries dropped so far.
func (b *EventBrokerImpl) Dropped() uint64 {
	return b.dropped.Load()
}

func (b *EventBrokerImpl) ShutDown(_ context.Context) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.closed = true
	closed := make(map[chan models.IEvent]bool)
	for et, chs := range b.subs {
		for _, ch := range chs {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
		delete(b.subs, et)
	}
	b.l.Info("event broker shutdown completed")
	return nil
}
