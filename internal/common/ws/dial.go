package ws

import (
	"context"
	"net"
	"net/http"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/common/conn"
)

const handshakeTimeout = 10 * time.Second

// DialLauncher launches a channel transport by dialing the peer's WebSocket
// endpoint.
type DialLauncher struct {
	url    string
	header http.Header
	dialer *gws.Dialer
}

func NewDialLauncher(peerURL string, cf conn.ConnFactory) *DialLauncher {
	return &DialLauncher{
		url:    peerURL,
		header: make(http.Header),
		dialer: &gws.Dialer{
			NetDialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
				return cf.GetConn(ctx, addr)
			},
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

func (d *DialLauncher) Launch(ctx context.Context) (channel.Transport, error) {
	c, resp, err := d.dialer.DialContext(ctx, d.url, d.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial channel peer %s", d.url)
	}
	return NewClientTransport(c), nil
}
