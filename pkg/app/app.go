package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/internal/ipc"
	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/catalog"
	"github.com/selebrow/fetcher/pkg/config"
	"github.com/selebrow/fetcher/pkg/event"
	"github.com/selebrow/fetcher/pkg/log"
	"github.com/selebrow/fetcher/pkg/sandbox"
	"github.com/selebrow/fetcher/pkg/signal"
)

var (
	InitLogger        func() *zap.Logger                                     = InitLoggerFunc
	InitConfig        func() config.Config                                   = InitConfigFunc
	InitDialer        func(config.Config) *net.Dialer                        = InitDialerFunc
	InitTransport     func(config.Config, *net.Dialer) *http.Transport       = InitTransportFunc
	InitHTTPClient    func(config.Config, http.RoundTripper) *http.Client    = InitHTTPClientFunc
	InitCatalog       func(config.Config, []byte) *catalog.Catalog           = InitCatalogFunc
	InitSignalHandler func(config.Config) *signal.Handler                    = InitSignalHandlerFunc
	InitEventBroker   func(config.Config, *signal.Handler) event.EventBroker = InitEventBrokerFunc
	InitMiddleware    func(config.Config, *echo.Echo, *zap.Logger)           = InitMiddlewareFunc
	InitDownloadClient func(
		config.Config,
		ipc.Sender,
		*sandbox.Issuer,
		event.EventBroker,
	) download.Client = InitDownloadClientFunc
	InitAPI func(
		config.Config,
		*echo.Echo,
		InfoController,
		SessionsController,
		DownloadsController,
		ChannelController,
	) = InitAPIFunc

	InitEventAdapter func(
		config.Config,
		event.EventBroker,
		*signal.Handler,
	) = InitEventLoggerFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)

	loop := initRunLoop(sig)
	eb := InitEventBroker(cfg, sig)
	InitEventAdapter(cfg, eb, sig)

	dialer := InitDialer(cfg)
	transport := InitTransport(cfg, dialer)
	client := InitHTTPClient(cfg, transport)
	loader := network.NewHTTPLoader(client, loop, l.Named("network"))

	var presets session.PolicyPresets
	if uris := cfg.DomainCatalogURI(); len(uris) > 0 {
		// using Default client with sane timeout defaults
		data := loadDomainCatalog(uris, http.DefaultClient)
		presets = InitCatalog(cfg, data)
	}

	ch := initChannel(loop, sig)
	issuer := sandbox.NewIssuer(cfg.SandboxRoots()...)
	InitLog.With(zap.String("lineage", cfg.Lineage())).Infow("sandbox initialized", zap.Strings("roots", cfg.SandboxRoots()))

	storage := initSessionStorage(sig)
	mgr := download.NewManager(InitDownloadClient(cfg, ch, issuer, eb), storage, loader, loop, l.Named("download"))

	deps := initSessionDependencies(cfg, loop, loader, ipc.NewChannelNotifier(ch, l.Named("ipc")), presets)
	svc := session.NewLocalSessionService(storage, deps, mgr, eb, time.Now, l.Named("session"))
	ipc.NewReceivers(svc, mgr, issuer, l.Named("ipc")).Register(ch)

	cLog := l.Named("controller")
	infoController := initInfoController(cfg, appName, gitRef, gitSha, ch, svc, mgr)
	sessionsController := initSessionsController(svc, cLog)
	downloadsController := initDownloadsController(mgr, cLog)
	channelController := initChannelController(ch, cLog)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	InitAPI(cfg, e, infoController, sessionsController, downloadsController, channelController)

	// Start server
	go func() {
		lstn := cfg.Listen()
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", lstn)
		if err := e.Start(lstn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()
	sig.RegisterShutdownHook(signal.PhaseIngress, e, e.Shutdown)

	connectChannel(cfg, ch)
	os.Exit(sig.Start())
}

func connectChannel(cfg config.Config, ch *channel.Channel) {
	peer := cfg.ChannelPeer()
	if peer == "" {
		InitLog.Info("waiting for the UI process to attach to the channel")
		return
	}
	InitLog.Infow("connecting to the UI process", zap.String("peer", peer))
	ch.Connect(context.Background(), initDialLauncher(cfg, peer))
}

func initSessionDependencies(
	cfg config.Config,
	d runloop.Dispatcher,
	loader network.Loader,
	notifier session.WebsiteDataNotifier,
	presets session.PolicyPresets,
) session.Dependencies {
	return session.Dependencies{
		Dispatcher:             d,
		Loader:                 loader,
		Notifier:               notifier,
		Presets:                presets,
		Defaults:               sessionDefaults(cfg),
		ProcessMayUseCookieAPI: cfg.ProcessMayUseCookieAPI(),
		ClientSideCookieAgeCap: cfg.ClientSideCookieAgeCap(),
		CacheMaxAgeCap:         cfg.CacheMaxAgeCap(),
		TestingMode:            cfg.TestingMode(),
		Now:                    time.Now,
	}
}

func sessionDefaults(cfg config.SessionDefaultsConfig) session.Parameters {
	return session.Parameters{
		Ephemeral:                     cfg.Ephemeral(),
		CacheDirectory:                cfg.CacheDir(),
		StatisticsDirectory:           cfg.StatisticsDir(),
		CookieStorageDirectory:        cfg.CookieDB(),
		ThirdPartyCookieBlockingMode:  cfg.ThirdPartyCookieBlocking(),
		SpeculativeRevalidation:       cfg.SpeculativeRevalidation(),
		StaleWhileRevalidate:          cfg.StaleWhileRevalidate(),
		TestSpeedMultiplier:           cfg.TestSpeedMultiplier(),
		AllowServerPreconnect:         cfg.AllowServerPreconnect(),
		ResourceLoadStatisticsEnabled: cfg.ResourceLoadStatistics(),
	}
}

func getLogger(name string) *zap.Logger {
	return log.GetLogger().Named(name)
}
