package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/common/clock"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/dto"
)

type ChannelStater interface {
	State() channel.State
}

// InfoController reports the build and the live state of the process.
type InfoController struct {
	app       dto.AppInfo
	ch        ChannelStater
	sessions  session.SessionService
	downloads DownloadRegistry
	now       clock.NowFunc
}

func NewInfoController(
	app dto.AppInfo,
	ch ChannelStater,
	sessions session.SessionService,
	downloads DownloadRegistry,
	now clock.NowFunc,
) *InfoController {
	app.Started = now()
	return &InfoController{
		app:       app,
		ch:        ch,
		sessions:  sessions,
		downloads: downloads,
		now:       now,
	}
}

func (i *InfoController) Info(c echo.Context) error {
	info := i.app
	info.Uptime = i.now().Sub(info.Started).Truncate(time.Second).String()
	info.Channel = i.ch.State().String()
	info.Sessions = len(i.sessions.ListSessions())
	info.Downloads = len(i.downloads.List())
	return c.JSON(http.StatusOK, &info)
}
