package ipc

import (
	"net/http"
	"sync/atomic"

	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/pkg/event"
	evmodels "github.com/selebrow/fetcher/pkg/event/models"
	"github.com/selebrow/fetcher/pkg/models"
)

// EventClient publishes download lifecycle events around another client.
type EventClient struct {
	next   download.Client
	eb     event.EventBroker
	active atomic.Int64
}

func NewEventClient(next download.Client, eb event.EventBroker) *EventClient {
	return &EventClient{next: next, eb: eb}
}

func (e *EventClient) DidCreateDownload() {
	n := e.active.Add(1)
	e.next.DidCreateDownload()
	e.eb.Publish(evmodels.NewDownloadCreatedEvent(evmodels.DownloadCreated{ActiveDownloads: int(n)}))
}

func (e *EventClient) DidDestroyDownload() {
	n := e.active.Add(-1)
	e.next.DidDestroyDownload()
	e.eb.Publish(evmodels.NewDownloadDestroyedEvent(evmodels.DownloadDestroyed{ActiveDownloads: int(n)}))
}

func (e *EventClient) PendingDownloadCanceled(id models.DownloadID) {
	e.next.PendingDownloadCanceled(id)
	e.eb.Publish(evmodels.NewPendingDownloadCanceledEvent(evmodels.PendingDownloadCanceled{DownloadID: id}))
}

func (e *EventClient) DecideDestination(
	id models.DownloadID,
	suggestedName string,
	header http.Header,
	reply func(download.Destination),
) {
	e.next.DecideDestination(id, suggestedName, header, reply)
}

// ActiveDownloads is the number of downloads created and not yet destroyed.
func (e *EventClient) ActiveDownloads() int {
	return int(e.active.Load())
}
