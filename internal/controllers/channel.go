package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/common/ws"
)

type ChannelAttacher interface {
	ChannelStater
	DidFinishLaunching(t channel.Transport)
}

// ChannelController accepts the peer connection of the connection channel.
// Only one peer is ever attached.
type ChannelController struct {
	ch      ChannelAttacher
	handler websocket.Handler
}

func NewChannelController(ch ChannelAttacher, l *zap.Logger) *ChannelController {
	return &ChannelController{
		ch:      ch,
		handler: ws.ChannelHandler(ch.DidFinishLaunching, l),
	}
}

func (cc *ChannelController) Connect(c echo.Context) error {
	if st := cc.ch.State(); st != channel.Launching {
		return echo.NewHTTPError(http.StatusConflict, "channel is "+st.String())
	}
	cc.handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
