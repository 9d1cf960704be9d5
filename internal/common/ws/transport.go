package ws

import (
	"sync"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/selebrow/fetcher/internal/channel"
)

const closeGracePeriod = time.Second

// ServerTransport carries channel messages over a connection accepted by the
// status API.
type ServerTransport struct {
	id   string
	conn *websocket.Conn

	wmtx      sync.Mutex
	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

func NewServerTransport(conn *websocket.Conn) *ServerTransport {
	return &ServerTransport{
		id:   uuid.NewString(),
		conn: conn,
		done: make(chan struct{}),
	}
}

func (t *ServerTransport) String() string {
	return "ws-server/" + t.id
}

func (t *ServerTransport) Send(msg *channel.Message) error {
	t.wmtx.Lock()
	defer t.wmtx.Unlock()
	return websocket.JSON.Send(t.conn, msg)
}

func (t *ServerTransport) Receive() (*channel.Message, error) {
	var msg channel.Message
	if err := websocket.JSON.Receive(t.conn, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (t *ServerTransport) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}

// Done is closed once the transport is closed.
func (t *ServerTransport) Done() <-chan struct{} {
	return t.done
}

// ClientTransport carries channel messages over a dialed connection.
type ClientTransport struct {
	id   string
	conn *gws.Conn

	wmtx      sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

func NewClientTransport(conn *gws.Conn) *ClientTransport {
	return &ClientTransport{
		id:   uuid.NewString(),
		conn: conn,
	}
}

func (t *ClientTransport) String() string {
	return "ws-client/" + t.id
}

func (t *ClientTransport) Send(msg *channel.Message) error {
	t.wmtx.Lock()
	defer t.wmtx.Unlock()
	return t.conn.WriteJSON(msg)
}

func (t *ClientTransport) Receive() (*channel.Message, error) {
	var msg channel.Message
	if err := t.conn.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (t *ClientTransport) Close() error {
	t.closeOnce.Do(func() {
		t.wmtx.Lock()
		_ = t.conn.WriteControl(
			gws.CloseMessage,
			gws.FormatCloseMessage(gws.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod),
		)
		t.wmtx.Unlock()
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}
