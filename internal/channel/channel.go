package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/pkg/models"
)

type State int

const (
	Launching State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Launching:
		return "Launching"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type outgoing struct {
	msg   *Message
	reply ReplyHandler
}

// Channel is the asynchronous message link to the UI-facing peer. Messages
// sent while launching are queued and flushed in order once a transport
// attaches. A terminated channel never runs again.
type Channel struct {
	d runloop.Dispatcher

	mtx       sync.Mutex
	state     State
	transport Transport
	queue     []outgoing
	pending   map[uint64]ReplyHandler
	receivers map[string]MessageReceiver
	nextID    uint64
	cancel    context.CancelFunc
	readDone  chan struct{}
	launches  sync.WaitGroup

	l *zap.SugaredLogger
}

func New(d runloop.Dispatcher, l *zap.Logger) *Channel {
	return &Channel{
		d:         d,
		pending:   make(map[uint64]ReplyHandler),
		receivers: make(map[string]MessageReceiver),
		l:         l.Sugar(),
	}
}

func (c *Channel) State() State {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.state
}

// Connect launches a transport in the background.
func (c *Channel) Connect(ctx context.Context, launcher Launcher) {
	ctx, cancel := context.WithCancel(ctx)
	c.mtx.Lock()
	if c.state != Launching {
		c.mtx.Unlock()
		cancel()
		return
	}
	c.cancel = cancel
	c.launches.Add(1)
	c.mtx.Unlock()

	go func() {
		defer c.launches.Done()
		defer cancel()
		t, err := launcher.Launch(ctx)
		if err != nil {
			c.l.Warnw("channel launch failed", zap.Error(err))
		}
		c.DidFinishLaunching(t)
	}()
}

// DidFinishLaunching attaches t and flushes the queue. A nil transport
// terminates the channel.
func (c *Channel) DidFinishLaunching(t Transport) {
	c.mtx.Lock()
	if c.state != Launching {
		c.mtx.Unlock()
		if t != nil {
			_ = t.Close()
		}
		return
	}
	if t == nil {
		c.mtx.Unlock()
		c.DidClose()
		return
	}

	c.state = Running
	c.transport = t
	queue := c.queue
	c.queue = nil
	var sendErr error
	for _, o := range queue {
		if sendErr == nil {
			sendErr = t.Send(o.msg)
		}
	}
	done := make(chan struct{})
	c.readDone = done
	c.mtx.Unlock()

	c.l.Infow("channel running", zap.Stringer("peer", peerName(t)), zap.Int("flushed", len(queue)))
	go c.readLoop(t, done)
	if sendErr != nil {
		c.l.Warnw("failed to flush channel queue", zap.Error(sendErr))
		c.DidClose()
	}
}

// DidClose terminates the channel and fails every outstanding reply.
func (c *Channel) DidClose() {
	c.mtx.Lock()
	if c.state == Terminated {
		c.mtx.Unlock()
		return
	}
	c.state = Terminated
	t := c.transport
	cancel := c.cancel
	// queued replies are tracked in pending as well
	failed := make([]ReplyHandler, 0, len(c.pending))
	for _, h := range c.pending {
		failed = append(failed, h)
	}
	c.queue = nil
	c.pending = make(map[uint64]ReplyHandler)
	c.mtx.Unlock()

	if cancel != nil {
		cancel()
	}
	if t != nil {
		_ = t.Close()
	}
	for _, h := range failed {
		h := h
		c.d.Dispatch(func() { h(nil) })
	}
	c.l.Infow("channel terminated", zap.Int("failed_replies", len(failed)))
}

// Close terminates the channel and waits for its goroutines to stop.
func (c *Channel) Close() {
	c.DidClose()
	c.launches.Wait()
	c.mtx.Lock()
	done := c.readDone
	c.mtx.Unlock()
	if done != nil {
		<-done
	}
}

// SendMessage assigns msg an ID and delivers or queues it. reply, when set,
// runs on the dispatcher exactly once.
func (c *Channel) SendMessage(msg *Message, opts SendOptions, reply ReplyHandler) error {
	c.mtx.Lock()
	c.nextID++
	msg.ID = c.nextID

	switch c.state {
	case Terminated:
		c.mtx.Unlock()
		if reply != nil {
			c.d.Dispatch(func() { reply(nil) })
		}
		return models.NewMessageDeliveryFailedError(errors.Errorf("channel terminated, dropping %s", msg.Name))
	case Launching:
		if opts&NoQueue != 0 {
			c.mtx.Unlock()
			if reply != nil {
				c.d.Dispatch(func() { reply(nil) })
			}
			return models.NewMessageDeliveryFailedError(errors.Errorf("channel is launching, not queueing %s", msg.Name))
		}
		c.queue = append(c.queue, outgoing{msg: msg, reply: reply})
		if reply != nil {
			c.pending[msg.ID] = reply
		}
		c.mtx.Unlock()
		return nil
	}

	if reply != nil {
		c.pending[msg.ID] = reply
	}
	err := c.transport.Send(msg)
	c.mtx.Unlock()
	if err != nil {
		c.DidClose()
		return models.NewMessageDeliveryFailedError(errors.Wrapf(err, "send %s", msg.Name))
	}
	return nil
}

// Send marshals body into a message called name.
func (c *Channel) Send(name string, body any, reply ReplyHandler) error {
	msg, err := newMessage(name, body)
	if err != nil {
		return err
	}
	return c.SendMessage(msg, 0, reply)
}

// AddMessageReceiver routes inbound messages called name to r.
func (c *Channel) AddMessageReceiver(name string, r MessageReceiver) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if _, ok := c.receivers[name]; ok {
		panic(fmt.Sprintf("message receiver for %s is already registered", name))
	}
	c.receivers[name] = r
}

func (c *Channel) readLoop(t Transport, done chan struct{}) {
	defer close(done)
	for {
		msg, err := t.Receive()
		if err != nil {
			if c.State() != Terminated {
				c.l.Warnw("channel receive failed", zap.Error(err))
			}
			c.DidClose()
			return
		}
		c.deliver(msg)
	}
}

func (c *Channel) deliver(msg *Message) {
	c.mtx.Lock()
	if msg.ReplyTo != 0 {
		h, ok := c.pending[msg.ReplyTo]
		delete(c.pending, msg.ReplyTo)
		c.mtx.Unlock()
		if ok {
			c.d.Dispatch(func() { h(msg) })
		}
		return
	}
	r, ok := c.receivers[msg.Name]
	c.mtx.Unlock()
	if !ok {
		c.l.Warnw("no receiver for message", zap.String("name", msg.Name))
		return
	}
	c.d.Dispatch(func() {
		r.DidReceiveMessage(msg, func(body any) error {
			reply, err := newMessage(msg.Name, body)
			if err != nil {
				return err
			}
			reply.ReplyTo = msg.ID
			return c.SendMessage(reply, 0, nil)
		})
	})
}

func newMessage(name string, body any) (*Message, error) {
	msg := &Message{Name: name}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s", name)
		}
		msg.Body = b
	}
	return msg, nil
}

type stringer string

func (s stringer) String() string { return string(s) }

func peerName(t Transport) fmt.Stringer {
	if s, ok := t.(fmt.Stringer); ok {
		return s
	}
	return stringer(fmt.Sprintf("%T", t))
}
