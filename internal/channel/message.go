package channel

import (
	"context"
	"encoding/json"
)

// Message is one frame exchanged with the peer. A message with ReplyTo set
// answers the message with that ID.
type Message struct {
	ID      uint64          `json:"id"`
	Name    string          `json:"name"`
	ReplyTo uint64          `json:"replyTo,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"`
}

// Decode unmarshals the message body into v.
func (m *Message) Decode(v any) error {
	if len(m.Body) == 0 {
		return nil
	}
	return json.Unmarshal(m.Body, v)
}

// Transport carries messages to and from the peer. Send may be called
// concurrently with Receive, but not with itself.
type Transport interface {
	Send(msg *Message) error
	// Receive blocks until a message arrives or the transport fails.
	Receive() (*Message, error)
	Close() error
}

type Launcher interface {
	Launch(ctx context.Context) (Transport, error)
}

type LauncherFunc func(ctx context.Context) (Transport, error)

func (f LauncherFunc) Launch(ctx context.Context) (Transport, error) {
	return f(ctx)
}

// ReplyHandler receives the reply to a sent message, or nil when the
// message could not be answered.
type ReplyHandler func(reply *Message)

// Replier answers an inbound message.
type Replier func(body any) error

type MessageReceiver interface {
	DidReceiveMessage(msg *Message, reply Replier)
}

type MessageReceiverFunc func(msg *Message, reply Replier)

func (f MessageReceiverFunc) DidReceiveMessage(msg *Message, reply Replier) {
	f(msg, reply)
}

type SendOptions uint8

const (
	// NoQueue fails the send instead of queueing it while the channel launches.
	NoQueue SendOptions = 1 << iota
)
