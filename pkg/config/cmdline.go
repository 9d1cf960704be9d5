package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/selebrow/fetcher/internal/cookiepolicy"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, DefaultListen, "Listening address and/or port of the status API and channel endpoint")
	f.Bool(accessLog, false, "Log every HTTP API request")

	f.String(cacheDir, "", "Default disk cache directory for sessions (cache is disabled if empty)")
	f.String(statisticsDir, "", "Default resource load statistics directory (statistics are in-memory if empty)")
	f.String(cookieDB, "", "Default directory of the persistent cookie database (cookies are in-memory if empty)")
	f.Bool(ephemeral, false, "Create sessions ephemeral unless a session says otherwise")
	f.String(thirdPartyCookieBlock, string(cookiepolicy.BlockAll), "Default third-party cookie blocking mode, valid options are: "+
		validBlockingModesHelp)
	f.Bool(speculativeRevalidation, false, "Enable speculative revalidation of cached subresources")
	f.Bool(staleWhileRevalidate, true, "Honor stale-while-revalidate in cached responses")
	f.Float64(testSpeedMultiplier, 1, "Time multiplier for timers used by sessions under test")
	f.Bool(allowServerPreconnect, true, "Allow servers to request connection preconnects")
	f.Bool(resourceLoadStatistics, false, "Enable resource load statistics for new sessions")

	f.Bool(testingMode, false, "Open session disk caches in testing mode")
	f.Bool(processMayUseCookieAPI, true, "Whether the peer process may access cookies through the cookie API")
	f.Duration(cacheMaxAgeCap, 0, "Freshness cap for cached responses of prevalent resources, 0 to disable")
	f.Duration(clientSideCookieAgeCap, 7*24*time.Hour, "Lifetime cap for cookies set from script, 0 to disable")

	f.StringSlice(domainCatalogURI, nil, "Paths or URLs of the domain catalog YAML file, later ones are fallbacks")

	f.String(downloadDir, "", "Directory downloads are written to")
	f.String(downloadPathTemplate, "", "Template of download paths relative to --"+downloadDir+
		", when set destinations are decided locally instead of asking the peer")
	f.StringSlice(sandboxRoot, nil, "Additional directories the peer may grant write access to")

	f.String(channelPeer, "", "WebSocket URL of the peer to connect to, when empty the peer is expected to connect to /channel")
	f.Duration(connectTimeout, 5*time.Second, "Peer and origin connection timeout")
	f.String(upstreamProxy, "", "SOCKS5 proxy URL for resource loads, e.g. socks5://127.0.0.1:1080")
	f.String(proxyBypass, "localhost,127.0.0.1", "Comma separated hosts, domains, IPs or CIDRs reached without the proxy")

	f.Duration(shutdownTimeout, 10*time.Second, "Graceful shutdown timeout")
	f.Int(eventBufferSize, 100, "Buffer size of event subscriber channels")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
