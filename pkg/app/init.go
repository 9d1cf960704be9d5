package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/common/conn"
	"github.com/selebrow/fetcher/internal/common/ws"
	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/internal/ipc"
	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/catalog"
	"github.com/selebrow/fetcher/pkg/config"
	"github.com/selebrow/fetcher/pkg/event"
	evmodels "github.com/selebrow/fetcher/pkg/event/models"
	"github.com/selebrow/fetcher/pkg/log"
	"github.com/selebrow/fetcher/pkg/sandbox"
	"github.com/selebrow/fetcher/pkg/signal"
)

var InitLog *zap.SugaredLogger

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitDialerFunc(cfg config.Config) *net.Dialer {
	return &net.Dialer{Timeout: cfg.ConnectTimeout()}
}

func InitTransportFunc(cfg config.Config, dialer *net.Dialer) *http.Transport {
	//nolint:errcheck // not going to fail
	def := http.DefaultTransport.(*http.Transport)
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          def.MaxIdleConns,
		IdleConnTimeout:       def.IdleConnTimeout,
		TLSHandshakeTimeout:   def.TLSHandshakeTimeout,
		ExpectContinueTimeout: def.ExpectContinueTimeout,
	}

	if proxyURL := cfg.Proxy(); proxyURL != "" {
		pd, err := network.NewProxyDialer(proxyURL, cfg.ProxyBypass(), dialer)
		if err != nil {
			InitLog.Fatalw("failed to initialize proxy dialer", zap.Error(err))
		}
		// SOCKS replaces any HTTP proxy from the environment
		transport.Proxy = nil
		transport.DialContext = pd.DialContext
		InitLog.Infow("resource loads are proxied", zap.String("proxy", proxyURL), zap.String("bypass", cfg.ProxyBypass()))
	}
	return transport
}

func InitHTTPClientFunc(_ config.Config, transport http.RoundTripper) *http.Client {
	return &http.Client{
		Transport: transport,
	}
}

func InitSignalHandlerFunc(cfg config.Config) *signal.Handler {
	return signal.NewHandler(cfg.ShutdownTimeout(), getLogger("signal"))
}

func loadDomainCatalog(uris []string, httpClient catalog.HTTPClient) []byte {
	data, err := catalog.Load(context.Background(), uris, httpClient, getLogger("catalog"))
	if err != nil {
		InitLog.Fatalw("failed to load domain catalog", zap.Error(err))
	}
	return data
}

func InitCatalogFunc(_ config.Config, data []byte) *catalog.Catalog {
	cat, err := catalog.NewYamlCatalog(data)
	if err != nil {
		InitLog.Fatalw("failed to initialize domain catalog", zap.Error(err))
	}
	InitLog.Infow("domain catalog loaded",
		zap.Int("prevalent", len(cat.PrevalentDomains)+len(cat.PrevalentDomainsKeepCookies)),
		zap.Int("userInteraction", len(cat.UserInteractionDomains)),
		zap.Int("appBound", len(cat.AppBoundDomains)))
	return cat
}

func initRunLoop(sig *signal.Handler) *runloop.Loop {
	loop := runloop.NewLoop(getLogger("runloop"))
	sig.RegisterShutdownHook(signal.PhaseCore, loop, loop.Shutdown)
	return loop
}

func InitEventBrokerFunc(cfg config.Config, sig *signal.Handler) event.EventBroker {
	eb := event.NewEventBrokerImpl(cfg.EventBufferSize(), getLogger("event"))
	sig.RegisterShutdownHook(signal.PhaseCore, eb, eb.ShutDown)
	return eb
}

// InitEventLoggerFunc logs every published event at debug level until the
// broker shuts down.
func InitEventLoggerFunc(_ config.Config, eb event.EventBroker, _ *signal.Handler) {
	l := getLogger("event")
	if !l.Core().Enabled(zap.DebugLevel) {
		return
	}
	ch := eb.Subscribe(evmodels.EventTypes...)
	go func() {
		for ev := range ch {
			l.Debug("event published",
				zap.String("type", ev.EventType()),
				zap.Time("time", ev.EventTime()),
				zap.Any("event", ev))
		}
	}()
}

func initChannel(d runloop.Dispatcher, sig *signal.Handler) *channel.Channel {
	ch := channel.New(d, getLogger("channel"))
	sig.RegisterShutdownHook(signal.PhaseIngress, ch, func(_ context.Context) error {
		ch.Close()
		return nil
	})
	return ch
}

func initDialLauncher(cfg config.Config, peer string) channel.Launcher {
	return ws.NewDialLauncher(peer, &conn.TCPConnFactory{Timeout: cfg.ConnectTimeout()})
}

func initSessionStorage(sig *signal.Handler) *session.LocalSessionStorage {
	s := session.NewLocalSessionStorage(getLogger("session"))
	sig.RegisterShutdownHook(signal.PhaseSessions, s, s.Shutdown)
	return s
}

// InitDownloadClientFunc picks where download destinations come from: a path
// template under the download directory when one is configured, the UI process
// otherwise.
func InitDownloadClientFunc(
	cfg config.Config,
	sender ipc.Sender,
	issuer *sandbox.Issuer,
	eb event.EventBroker,
) download.Client {
	var next download.Client
	if tmpl := cfg.DownloadPathTemplate(); tmpl != "" {
		auto, err := ipc.NewAutoDestinationClient(cfg.DownloadDir(), tmpl, time.Now, getLogger("download"))
		if err != nil {
			InitLog.Fatalw("failed to initialize download destinations", zap.Error(err))
		}
		next = auto
	} else {
		next = ipc.NewChannelClient(sender, issuer, getLogger("ipc"))
	}
	return ipc.NewEventClient(next, eb)
}
