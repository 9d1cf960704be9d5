package conn

import (
	"context"
	"net"
	"time"
)

type ConnFactory interface {
	GetConn(ctx context.Context, hostport string) (net.Conn, error)
}

// TCPConnFactory dials plain TCP. Zero durations use the net.Dialer defaults.
type TCPConnFactory struct {
	Timeout   time.Duration
	KeepAlive time.Duration
}

func (t *TCPConnFactory) GetConn(ctx context.Context, hostport string) (net.Conn, error) {
	d := net.Dialer{
		Timeout:   t.Timeout,
		KeepAlive: t.KeepAlive,
	}
	return d.DialContext(ctx, "tcp", hostport)
}
