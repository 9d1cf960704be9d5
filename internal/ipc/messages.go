package ipc

import (
	"net/http"

	"github.com/selebrow/fetcher/pkg/models"
)

// Outbound messages.
const (
	MsgDidCreateDownload       = "DidCreateDownload"
	MsgDidDestroyDownload      = "DidDestroyDownload"
	MsgPendingDownloadCanceled = "PendingDownloadCanceled"
	MsgDecideDestination       = "DecideDestination"
	MsgWebsiteDataRemoved      = "WebsiteDataRemoved"
)

// Inbound messages.
const (
	MsgStartDownload               = "StartDownload"
	MsgCancelDownload              = "CancelDownload"
	MsgResumeDownload              = "ResumeDownload"
	MsgGrantStorageAccess          = "GrantStorageAccess"
	MsgRemoveStorageAccessForFrame = "RemoveStorageAccessForFrame"
	MsgClearPageSpecificData       = "ClearPageSpecificDataForResourceLoadStatistics"
	MsgSetPrevalentDomainsToBlock  = "SetPrevalentDomainsToBlockAndDeleteCookiesFor"
	MsgSetThirdPartyCookieBlocking = "SetThirdPartyCookieBlockingMode"
	MsgApplyStatistics             = "ApplyResourceLoadStatistics"
	MsgCreateSession               = "CreateSession"
	MsgDestroySession              = "DestroySession"
)

type downloadBody struct {
	DownloadID models.DownloadID `json:"downloadId"`
}

type decideDestinationBody struct {
	DownloadID    models.DownloadID `json:"downloadId"`
	SuggestedName string            `json:"suggestedName"`
	Header        http.Header       `json:"header,omitempty"`
}

// destinationReply is the peer's answer to DecideDestination. An empty path
// denies the download.
type destinationReply struct {
	Path           string `json:"path"`
	AllowOverwrite bool   `json:"allowOverwrite,omitempty"`
}

type websiteDataRemovedBody struct {
	SessionID models.SessionID           `json:"sessionId"`
	Domains   []models.RegistrableDomain `json:"domains"`
}

type startDownloadBody struct {
	SessionID     models.SessionID  `json:"sessionId"`
	DownloadID    models.DownloadID `json:"downloadId"`
	URL           string            `json:"url"`
	SuggestedName string            `json:"suggestedName,omitempty"`
}

type resumeDownloadBody struct {
	SessionID  models.SessionID  `json:"sessionId"`
	DownloadID models.DownloadID `json:"downloadId"`
	ResumeData []byte            `json:"resumeData"`
	Path       string            `json:"path"`
}

type cancelDownloadReply struct {
	Found      bool   `json:"found"`
	ResumeData []byte `json:"resumeData,omitempty"`
}

type storageAccessBody struct {
	SessionID      models.SessionID         `json:"sessionId"`
	SubFrameDomain models.RegistrableDomain `json:"subFrameDomain"`
	TopFrameDomain models.RegistrableDomain `json:"topFrameDomain"`
	FrameID        models.FrameID           `json:"frameId"`
	PageID         models.PageID            `json:"pageId"`
}

type pageBody struct {
	SessionID models.SessionID `json:"sessionId"`
	PageID    models.PageID    `json:"pageId"`
}

type domainsBody struct {
	SessionID models.SessionID           `json:"sessionId"`
	Domains   []models.RegistrableDomain `json:"domains"`
}

type blockingModeBody struct {
	SessionID models.SessionID `json:"sessionId"`
	Mode      string           `json:"mode"`
}

type sessionBody struct {
	SessionID models.SessionID `json:"sessionId"`
}

// resultReply acknowledges an inbound message.
type resultReply struct {
	OK    bool             `json:"ok"`
	Kind  models.ErrorKind `json:"kind,omitempty"`
	Error string           `json:"error,omitempty"`
}

func newResultReply(err error) resultReply {
	if err == nil {
		return resultReply{OK: true}
	}
	kind, _ := models.KindOf(err)
	return resultReply{Kind: kind, Error: err.Error()}
}
