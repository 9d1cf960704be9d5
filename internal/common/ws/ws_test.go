package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/posener/wstest"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/runloop"
)

func newTestChannel(t *testing.T) *channel.Channel {
	l := zaptest.NewLogger(t)
	loop := runloop.NewLoop(l)
	c := channel.New(loop, l)
	t.Cleanup(func() {
		c.Close()
		_ = loop.Shutdown(context.Background())
	})
	return c
}

func originHeader() http.Header {
	hdr := make(http.Header)
	hdr.Set("Origin", "http://testclient")
	return hdr
}

func TestChannelHandler_RoundTrip(t *testing.T) {
	g := NewWithT(t)
	c := newTestChannel(t)
	g.Expect(c.Send("Hello", map[string]string{"from": "service"}, nil)).To(Succeed())

	d := wstest.NewDialer(ChannelHandler(c.DidFinishLaunching, zaptest.NewLogger(t)))
	wc, r, err := d.Dial("ws://ignored/channel", originHeader())
	g.Expect(err).ToNot(HaveOccurred())
	defer r.Body.Close()
	g.Expect(r).To(HaveHTTPStatus("101 Switching Protocols"))

	peer := NewClientTransport(wc)
	defer peer.Close()

	msg, err := peer.Receive()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(msg.Name).To(Equal("Hello"))
	g.Expect(string(msg.Body)).To(MatchJSON(`{"from":"service"}`))
	g.Eventually(c.State).Should(Equal(channel.Running))

	answered := make(chan string, 1)
	g.Expect(c.Send("Ask", nil, func(reply *channel.Message) {
		var s string
		if reply != nil {
			_ = reply.Decode(&s)
		}
		answered <- s
	})).To(Succeed())
	ask, err := peer.Receive()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(peer.Send(&channel.Message{Name: "Ask", ReplyTo: ask.ID, Body: json.RawMessage(`"ok"`)})).To(Succeed())
	g.Eventually(answered).Should(Receive(Equal("ok")))

	g.Expect(peer.Close()).To(Succeed())
	g.Eventually(c.State).Should(Equal(channel.Terminated))
}

func TestChannelHandler_SecondPeerRejected(t *testing.T) {
	g := NewWithT(t)
	c := newTestChannel(t)
	c.DidClose()

	d := wstest.NewDialer(ChannelHandler(c.DidFinishLaunching, zaptest.NewLogger(t)))
	wc, r, err := d.Dial("ws://ignored/channel", originHeader())
	g.Expect(err).ToNot(HaveOccurred())
	defer r.Body.Close()
	defer wc.Close()

	_, _, err = wc.ReadMessage()
	g.Expect(err).To(HaveOccurred())
}

func TestDialLauncher_Launch(t *testing.T) {
	g := NewWithT(t)
	server := newTestChannel(t)
	client := newTestChannel(t)

	received := make(chan string, 1)
	server.AddMessageReceiver("Ping", channel.MessageReceiverFunc(func(msg *channel.Message, reply channel.Replier) {
		received <- msg.Name
		_ = reply("pong")
	}))

	launcher := NewDialLauncher("ws://ignored/channel", nil)
	launcher.dialer = wstest.NewDialer(ChannelHandler(server.DidFinishLaunching, zaptest.NewLogger(t)))
	launcher.header = originHeader()
	client.Connect(context.Background(), launcher)

	answered := make(chan string, 1)
	g.Expect(client.Send("Ping", nil, func(reply *channel.Message) {
		var s string
		if reply != nil {
			_ = reply.Decode(&s)
		}
		answered <- s
	})).To(Succeed())

	g.Eventually(received).Should(Receive(Equal("Ping")))
	g.Eventually(answered).Should(Receive(Equal("pong")))
	g.Expect(client.State()).To(Equal(channel.Running))
}
