package app

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/controllers"
	"github.com/selebrow/fetcher/internal/router"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/config"
	"github.com/selebrow/fetcher/pkg/dto"
)

type (
	InfoController interface {
		Info(c echo.Context) error
	}

	SessionsController interface {
		List(c echo.Context) error
		Get(c echo.Context) error
		Delete(c echo.Context) error
	}

	DownloadsController interface {
		List(c echo.Context) error
		Cancel(c echo.Context) error
	}

	ChannelController interface {
		Connect(c echo.Context) error
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(cfg config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	if cfg.AccessLog() || srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access")
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: func(c echo.Context) bool {
				// the channel is a long-lived upgrade, logged by the channel itself
				return c.Path() == router.ChannelPath
			},
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Info("request served")
				return nil
			},
			LogLatency:  true,
			LogRemoteIP: true,
			LogMethod:   true,
			LogURI:      true,
			LogStatus:   true,
			LogError:    true,
			HandleError: true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.Config,
	e *echo.Echo,
	infoController InfoController,
	sessionsController SessionsController,
	downloadsController DownloadsController,
	channelController ChannelController,
) {
	e.GET(router.InfoPath, infoController.Info)
	e.GET(router.ChannelPath, channelController.Connect)

	sessions := e.Group(router.SessionsPath)
	sessions.GET("", sessionsController.List)
	sessions.GET(router.SessRoute("/:%s"), sessionsController.Get)
	sessions.DELETE(router.SessRoute("/:%s"), sessionsController.Delete)

	downloads := e.Group(router.DownloadsPath)
	downloads.GET("", downloadsController.List)
	downloads.DELETE(router.DownloadRoute("/:%s"), downloadsController.Cancel)
}

func initInfoController(
	cfg config.Config,
	appName, gitRef, gitSha string,
	ch controllers.ChannelStater,
	svc session.SessionService,
	downloads controllers.DownloadRegistry,
) *controllers.InfoController {
	app := dto.AppInfo{
		Name:    appName,
		GitRef:  gitRef,
		GitSha:  gitSha,
		Lineage: cfg.Lineage(),
	}
	return controllers.NewInfoController(app, ch, svc, downloads, time.Now)
}

func initSessionsController(svc session.SessionService, cLog *zap.Logger) *controllers.SessionsController {
	return controllers.NewSessionsController(svc, cLog.Named("sessions"))
}

func initDownloadsController(downloads controllers.DownloadRegistry, cLog *zap.Logger) *controllers.DownloadsController {
	return controllers.NewDownloadsController(downloads, cLog.Named("downloads"))
}

func initChannelController(ch *channel.Channel, cLog *zap.Logger) *controllers.ChannelController {
	return controllers.NewChannelController(ch, cLog.Named("channel"))
}
