package download

import (
	"net/http"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

// Destination is the answer to a destination decision. An empty Path denies
// the download.
type Destination struct {
	Path           string
	Handle         *sandbox.Handle
	AllowOverwrite bool
}

// Client is the UI-facing collaborator of the manager.
type Client interface {
	DidCreateDownload()
	DidDestroyDownload()
	PendingDownloadCanceled(id models.DownloadID)
	// DecideDestination asks where to store a download. reply must be called
	// at most once.
	DecideDestination(id models.DownloadID, suggestedName string, header http.Header, reply func(Destination))
}

// SessionLookup finds the session a download belongs to.
type SessionLookup interface {
	Get(id models.SessionID) (*session.Session, bool)
}

// DataTask is the network side of a pending download.
type DataTask interface {
	DownloadID() models.DownloadID
	Response() *network.Response
	Cancel()
}
