package ipc

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

// Downloads is the part of the download manager driven by the peer.
type Downloads interface {
	StartDownload(sessionID models.SessionID, id models.DownloadID, req *http.Request, suggestedName string) error
	CancelDownload(id models.DownloadID) ([]byte, bool)
	ResumeDownload(sessionID models.SessionID, id models.DownloadID, resumeData []byte, path string, handle *sandbox.Handle) error
}

type ReceiverRegistry interface {
	AddMessageReceiver(name string, r channel.MessageReceiver)
}

// Receivers handle the messages the peer sends on its own initiative.
type Receivers struct {
	sessions  session.SessionService
	downloads Downloads
	issuer    *sandbox.Issuer
	l         *zap.SugaredLogger
}

func NewReceivers(sessions session.SessionService, downloads Downloads, issuer *sandbox.Issuer, l *zap.Logger) *Receivers {
	return &Receivers{
		sessions:  sessions,
		downloads: downloads,
		issuer:    issuer,
		l:         l.Sugar(),
	}
}

func (r *Receivers) Register(reg ReceiverRegistry) {
	reg.AddMessageReceiver(MsgStartDownload, receive(r, r.startDownload))
	reg.AddMessageReceiver(MsgCancelDownload, receive(r, r.cancelDownload))
	reg.AddMessageReceiver(MsgResumeDownload, receive(r, r.resumeDownload))
	reg.AddMessageReceiver(MsgGrantStorageAccess, receive(r, r.grantStorageAccess))
	reg.AddMessageReceiver(MsgRemoveStorageAccessForFrame, receive(r, r.removeStorageAccessForFrame))
	reg.AddMessageReceiver(MsgClearPageSpecificData, receive(r, r.clearPageSpecificData))
	reg.AddMessageReceiver(MsgSetPrevalentDomainsToBlock, receive(r, r.setPrevalentDomainsToBlock))
	reg.AddMessageReceiver(MsgSetThirdPartyCookieBlocking, receive(r, r.setThirdPartyCookieBlockingMode))
	reg.AddMessageReceiver(MsgApplyStatistics, receive(r, r.applyStatistics))
	reg.AddMessageReceiver(MsgCreateSession, receive(r, r.createSession))
	reg.AddMessageReceiver(MsgDestroySession, receive(r, r.destroySession))
}

// receive decodes the body into T, runs fn and answers with its result.
func receive[T any](r *Receivers, fn func(T) (any, error)) channel.MessageReceiverFunc {
	return func(msg *channel.Message, reply channel.Replier) {
		var body T
		var res any
		err := msg.Decode(&body)
		if err != nil {
			err = models.NewBadParametersError(errors.Wrapf(err, "malformed %s", msg.Name))
		} else {
			res, err = fn(body)
		}
		if err != nil {
			r.l.Warnw("inbound message failed", zap.String("name", msg.Name), zap.Error(err))
		}
		if res == nil {
			res = newResultReply(err)
		}
		if rerr := reply(res); rerr != nil {
			r.l.Warnw("reply not delivered", zap.String("name", msg.Name), zap.Error(rerr))
		}
	}
}

func (r *Receivers) startDownload(b startDownloadBody) (any, error) {
	req, err := http.NewRequest(http.MethodGet, b.URL, http.NoBody)
	if err != nil {
		return nil, models.NewBadParametersError(errors.Wrap(err, "invalid download url"))
	}
	return nil, r.downloads.StartDownload(b.SessionID, b.DownloadID, req, b.SuggestedName)
}

func (r *Receivers) cancelDownload(b downloadBody) (any, error) {
	data, found := r.downloads.CancelDownload(b.DownloadID)
	return cancelDownloadReply{Found: found, ResumeData: data}, nil
}

func (r *Receivers) resumeDownload(b resumeDownloadBody) (any, error) {
	handle, err := r.issuer.Issue(b.Path)
	if err != nil {
		return nil, models.NewDestinationDeniedError(err)
	}
	return nil, r.downloads.ResumeDownload(b.SessionID, b.DownloadID, b.ResumeData, handle.Path(), handle)
}

func (r *Receivers) grantStorageAccess(b storageAccessBody) (any, error) {
	s, err := r.sessions.FindSession(b.SessionID)
	if err != nil {
		return nil, err
	}
	s.Policy().GrantStorageAccess(b.SubFrameDomain, b.TopFrameDomain, b.FrameID, b.PageID)
	return nil, nil
}

func (r *Receivers) removeStorageAccessForFrame(b storageAccessBody) (any, error) {
	s, err := r.sessions.FindSession(b.SessionID)
	if err != nil {
		return nil, err
	}
	s.Policy().RemoveStorageAccessForFrame(b.FrameID, b.PageID)
	return nil, nil
}

func (r *Receivers) clearPageSpecificData(b pageBody) (any, error) {
	s, err := r.sessions.FindSession(b.SessionID)
	if err != nil {
		return nil, err
	}
	s.Policy().ClearPageSpecificDataForResourceLoadStatistics(b.PageID)
	return nil, nil
}

func (r *Receivers) setPrevalentDomainsToBlock(b domainsBody) (any, error) {
	s, err := r.sessions.FindSession(b.SessionID)
	if err != nil {
		return nil, err
	}
	s.Policy().SetPrevalentDomainsToBlockAndDeleteCookiesFor(b.Domains)
	return nil, nil
}

func (r *Receivers) setThirdPartyCookieBlockingMode(b blockingModeBody) (any, error) {
	mode, err := cookiepolicy.ParseThirdPartyCookieBlockingMode(b.Mode)
	if err != nil {
		return nil, models.NewBadParametersError(err)
	}
	s, err := r.sessions.FindSession(b.SessionID)
	if err != nil {
		return nil, err
	}
	return nil, s.SetThirdPartyCookieBlockingMode(mode)
}

func (r *Receivers) applyStatistics(b sessionBody) (any, error) {
	s, err := r.sessions.FindSession(b.SessionID)
	if err != nil {
		return nil, err
	}
	return nil, s.ApplyResourceLoadStatistics()
}

// createSession issues the directory handles the parameters name, so only
// directories under the sandbox roots are opened.
func (r *Receivers) createSession(p session.Parameters) (any, error) {
	var err error
	if p.CacheDirectory != "" {
		if p.CacheDirectoryHandle, err = r.issuer.Issue(p.CacheDirectory); err != nil {
			return nil, models.NewBadParametersError(errors.Wrap(err, "cache directory"))
		}
		p.CacheDirectory = p.CacheDirectoryHandle.Path()
	}
	if p.StatisticsDirectory != "" {
		if p.StatisticsDirectoryHandle, err = r.issuer.Issue(p.StatisticsDirectory); err != nil {
			return nil, models.NewBadParametersError(errors.Wrap(err, "statistics directory"))
		}
		p.StatisticsDirectory = p.StatisticsDirectoryHandle.Path()
	}
	s, err := r.sessions.CreateSession(p)
	if err != nil {
		return nil, err
	}
	return sessionBody{SessionID: s.ID()}, nil
}

func (r *Receivers) destroySession(b sessionBody) (any, error) {
	return nil, r.sessions.DestroySession(b.SessionID)
}
