package ws

import (
	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/selebrow/fetcher/internal/channel"
)

// ChannelHandler hands every accepted connection to attach and keeps it open
// until the transport is closed or the request goes away.
func ChannelHandler(attach func(channel.Transport), l *zap.Logger) websocket.Handler {
	sl := l.Sugar()
	return func(conn *websocket.Conn) {
		t := NewServerTransport(conn)
		sl.Infow("channel peer connected", zap.Stringer("peer", t), zap.String("remote", conn.Request().RemoteAddr))
		attach(t)
		select {
		case <-t.Done():
		case <-conn.Request().Context().Done():
			_ = t.Close()
		}
		sl.Infow("channel peer disconnected", zap.Stringer("peer", t))
	}
}
