package ipc

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

// Sender posts a message to the peer.
type Sender interface {
	Send(name string, body any, reply channel.ReplyHandler) error
}

// ChannelClient is the download client living on the other end of the
// connection channel.
type ChannelClient struct {
	sender Sender
	issuer *sandbox.Issuer
	l      *zap.SugaredLogger
}

func NewChannelClient(sender Sender, issuer *sandbox.Issuer, l *zap.Logger) *ChannelClient {
	return &ChannelClient{
		sender: sender,
		issuer: issuer,
		l:      l.Sugar(),
	}
}

func (c *ChannelClient) DidCreateDownload() {
	c.send(MsgDidCreateDownload, nil)
}

func (c *ChannelClient) DidDestroyDownload() {
	c.send(MsgDidDestroyDownload, nil)
}

func (c *ChannelClient) PendingDownloadCanceled(id models.DownloadID) {
	c.send(MsgPendingDownloadCanceled, downloadBody{DownloadID: id})
}

// DecideDestination asks the peer for a path. A missing or empty answer
// denies the download.
func (c *ChannelClient) DecideDestination(
	id models.DownloadID,
	suggestedName string,
	header http.Header,
	reply func(download.Destination),
) {
	body := decideDestinationBody{DownloadID: id, SuggestedName: suggestedName, Header: header}
	err := c.sender.Send(MsgDecideDestination, body, func(msg *channel.Message) {
		reply(c.destination(id, msg))
	})
	if err != nil {
		c.l.Warnw("destination request not delivered", zap.Stringer("download_id", id), zap.Error(err))
	}
}

func (c *ChannelClient) destination(id models.DownloadID, msg *channel.Message) download.Destination {
	if msg == nil {
		return download.Destination{}
	}
	var r destinationReply
	if err := msg.Decode(&r); err != nil {
		c.l.Warnw("malformed destination reply", zap.Stringer("download_id", id), zap.Error(err))
		return download.Destination{}
	}
	if r.Path == "" {
		return download.Destination{}
	}
	handle, err := c.issuer.Issue(r.Path)
	if err != nil {
		c.l.Warnw("destination outside download roots", zap.Stringer("download_id", id), zap.Error(err))
		return download.Destination{}
	}
	return download.Destination{Path: handle.Path(), Handle: handle, AllowOverwrite: r.AllowOverwrite}
}

func (c *ChannelClient) send(name string, body any) {
	if err := c.sender.Send(name, body, nil); err != nil {
		c.l.Warnw("message not delivered", zap.String("name", name), zap.Error(err))
	}
}
