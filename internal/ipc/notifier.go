package ipc

import (
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/pkg/models"
)

// ChannelNotifier tells the peer about website data removed for a session.
type ChannelNotifier struct {
	sender Sender
	l      *zap.SugaredLogger
}

func NewChannelNotifier(sender Sender, l *zap.Logger) *ChannelNotifier {
	return &ChannelNotifier{sender: sender, l: l.Sugar()}
}

func (n *ChannelNotifier) WebsiteDataRemoved(id models.SessionID, domains []models.RegistrableDomain) {
	err := n.sender.Send(MsgWebsiteDataRemoved, websiteDataRemovedBody{SessionID: id, Domains: domains}, nil)
	if err != nil {
		n.l.Warnw("website data removal not delivered", zap.Stringer("session_id", id), zap.Error(err))
	}
}
