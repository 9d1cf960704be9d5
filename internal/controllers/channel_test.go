package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/posener/wstest"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/common/ws"
	"github.com/selebrow/fetcher/internal/router"
	"github.com/selebrow/fetcher/internal/runloop"
)

func TestChannelController_Connect(t *testing.T) {
	g := NewWithT(t)
	l := zaptest.NewLogger(t)
	loop := runloop.NewLoop(l)
	ch := channel.New(loop, l)
	t.Cleanup(func() {
		ch.Close()
		_ = loop.Shutdown(context.Background())
	})
	g.Expect(ch.Send("Hello", nil, nil)).To(Succeed())

	e := echo.New()
	e.GET(router.ChannelPath, NewChannelController(ch, l).Connect)

	hdr := make(http.Header)
	hdr.Set("Origin", "http://testclient")
	wc, r, err := wstest.NewDialer(e).Dial("ws://ignored"+router.ChannelPath, hdr)
	g.Expect(err).ToNot(HaveOccurred())
	defer r.Body.Close()

	peer := ws.NewClientTransport(wc)
	defer peer.Close()

	msg, err := peer.Receive()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(msg.Name).To(Equal("Hello"))
	g.Eventually(ch.State).Should(Equal(channel.Running))
}

func TestChannelController_ConnectConflict(t *testing.T) {
	g := NewWithT(t)
	l := zaptest.NewLogger(t)
	loop := runloop.NewLoop(l)
	ch := channel.New(loop, l)
	t.Cleanup(func() {
		ch.Close()
		_ = loop.Shutdown(context.Background())
	})
	ch.DidClose()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, router.ChannelPath, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewChannelController(ch, l).Connect(c)
	httpErr := &echo.HTTPError{}
	g.Expect(errors.As(err, &httpErr)).To(BeTrue())
	g.Expect(httpErr.Code).To(Equal(http.StatusConflict))
	g.Expect(httpErr.Message).To(Equal("channel is " + channel.Terminated.String()))
}
