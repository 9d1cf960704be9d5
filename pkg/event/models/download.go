package models

import (
	"github.com/selebrow/fetcher/pkg/models"
)

const (
	DownloadCreatedEventType         = "DownloadCreated"
	DownloadDestroyedEventType       = "DownloadDestroyed"
	PendingDownloadCanceledEventType = "PendingDownloadCanceled"
)

type DownloadCreated struct {
	ActiveDownloads int
}

type DownloadDestroyed struct {
	ActiveDownloads int
}

type PendingDownloadCanceled struct {
	DownloadID models.DownloadID
}

func NewDownloadCreatedEvent(d DownloadCreated) *Event[DownloadCreated] {
	return NewEvent(DownloadCreatedEventType, now(), d)
}

func NewDownloadDestroyedEvent(d DownloadDestroyed) *Event[DownloadDestroyed] {
	return NewEvent(DownloadDestroyedEventType, now(), d)
}

func NewPendingDownloadCanceledEvent(d PendingDownloadCanceled) *Event[PendingDownloadCanceled] {
	return NewEvent(PendingDownloadCanceledEventType, now(), d)
}
