package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/selebrow/fetcher/internal/cookiepolicy"
)

var ConfigPrefix = "FETCHER"

const (
	DefaultListen = "127.0.0.1:4480"

	listen                  = "listen"
	cacheDir                = "cache-dir"
	statisticsDir           = "statistics-dir"
	cookieDB                = "cookie-db"
	ephemeral               = "ephemeral"
	thirdPartyCookieBlock   = "third-party-cookie-blocking"
	speculativeRevalidation = "speculative-revalidation"
	staleWhileRevalidate    = "stale-while-revalidate"
	testingMode             = "testing-mode"
	testSpeedMultiplier     = "test-speed-multiplier"
	allowServerPreconnect   = "allow-server-preconnect"
	resourceLoadStatistics  = "resource-load-statistics"
	processMayUseCookieAPI  = "process-may-use-cookie-api"
	cacheMaxAgeCap          = "cache-max-age-cap"
	clientSideCookieAgeCap  = "client-side-cookie-age-cap"
	domainCatalogURI        = "domain-catalog-uri"
	downloadDir             = "download-dir"
	downloadPathTemplate    = "download-path-template"
	sandboxRoot             = "sandbox-root"
	channelPeer             = "channel-peer"
	connectTimeout          = "connect-timeout"
	upstreamProxy           = "proxy"
	proxyBypass             = "proxy-bypass"
	shutdownTimeout         = "shutdown-timeout"
	eventBufferSize         = "event-buffer-size"
	accessLog               = "access-log"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	validBlockingModes = []cookiepolicy.ThirdPartyCookieBlockingMode{
		cookiepolicy.BlockAll,
		cookiepolicy.AllExceptBetweenAppBoundDomains,
		cookiepolicy.AllOnSitesWithoutUserInteraction,
		cookiepolicy.OnlyAccordingToPerDomainPolicy,
	}
	validBlockingModesHelp = quoteStrings(validBlockingModes)

	genLineage = uuid.NewString
)

type (
	// SessionDefaultsConfig holds the parameters applied to sessions which
	// don't set them explicitly.
	SessionDefaultsConfig interface {
		CacheDir() string
		StatisticsDir() string
		CookieDB() string
		Ephemeral() bool
		ThirdPartyCookieBlocking() cookiepolicy.ThirdPartyCookieBlockingMode
		SpeculativeRevalidation() bool
		StaleWhileRevalidate() bool
		TestSpeedMultiplier() float64
		AllowServerPreconnect() bool
		ResourceLoadStatistics() bool
	}

	ProcessConfig interface {
		TestingMode() bool
		ProcessMayUseCookieAPI() bool
		CacheMaxAgeCap() *time.Duration
		ClientSideCookieAgeCap() *time.Duration
	}

	DownloadConfig interface {
		DownloadDir() string
		DownloadPathTemplate() string
		SandboxRoots() []string
	}

	ChannelConfig interface {
		ChannelPeer() string
		ConnectTimeout() time.Duration
	}

	NetworkConfig interface {
		Proxy() string
		ProxyBypass() string
	}

	Config interface {
		SessionDefaultsConfig
		ProcessConfig
		DownloadConfig
		ChannelConfig
		NetworkConfig
		Listen() string
		DomainCatalogURI() []string
		ShutdownTimeout() time.Duration
		EventBufferSize() int
		AccessLog() bool
		Lineage() string
	}

	ConfigViper struct {
		v            *viper.Viper
		blockingMode cookiepolicy.ThirdPartyCookieBlockingMode
		lineage      string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	bindEnvVars(v)

	mode, ok := lookupBlockingMode(v.GetString(thirdPartyCookieBlock))
	if !ok {
		return nil, errors.Errorf("invalid third-party cookie blocking mode specified (%s), valid options are: %s",
			v.GetString(thirdPartyCookieBlock),
			validBlockingModesHelp)
	}

	if m := v.GetFloat64(testSpeedMultiplier); m < 0 {
		return nil, errors.Errorf("invalid test speed multiplier specified (%v), must not be negative", m)
	}

	return &ConfigViper{
		v:            v,
		blockingMode: mode,
		lineage:      genLineage(),
	}, nil
}

func lookupBlockingMode(s string) (cookiepolicy.ThirdPartyCookieBlockingMode, bool) {
	if s == "" {
		return cookiepolicy.BlockAll, true
	}
	for _, m := range validBlockingModes {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

func (c *ConfigViper) CacheDir() string {
	return c.v.GetString(cacheDir)
}

func (c *ConfigViper) StatisticsDir() string {
	return c.v.GetString(statisticsDir)
}

func (c *ConfigViper) CookieDB() string {
	return c.v.GetString(cookieDB)
}

func (c *ConfigViper) Ephemeral() bool {
	return c.v.GetBool(ephemeral)
}

func (c *ConfigViper) ThirdPartyCookieBlocking() cookiepolicy.ThirdPartyCookieBlockingMode {
	return c.blockingMode
}

func (c *ConfigViper) SpeculativeRevalidation() bool {
	return c.v.GetBool(speculativeRevalidation)
}

func (c *ConfigViper) StaleWhileRevalidate() bool {
	return c.v.GetBool(staleWhileRevalidate)
}

func (c *ConfigViper) TestSpeedMultiplier() float64 {
	return c.v.GetFloat64(testSpeedMultiplier)
}

func (c *ConfigViper) AllowServerPreconnect() bool {
	return c.v.GetBool(allowServerPreconnect)
}

func (c *ConfigViper) ResourceLoadStatistics() bool {
	return c.v.GetBool(resourceLoadStatistics)
}

func (c *ConfigViper) TestingMode() bool {
	return c.v.GetBool(testingMode)
}

func (c *ConfigViper) ProcessMayUseCookieAPI() bool {
	return c.v.GetBool(processMayUseCookieAPI)
}

func (c *ConfigViper) CacheMaxAgeCap() *time.Duration {
	return c.optionalDuration(cacheMaxAgeCap)
}

func (c *ConfigViper) ClientSideCookieAgeCap() *time.Duration {
	return c.optionalDuration(clientSideCookieAgeCap)
}

// optionalDuration treats zero as "not set".
func (c *ConfigViper) optionalDuration(key string) *time.Duration {
	d := c.v.GetDuration(key)
	if d <= 0 {
		return nil
	}
	return &d
}

func (c *ConfigViper) DownloadDir() string {
	return c.v.GetString(downloadDir)
}

func (c *ConfigViper) DownloadPathTemplate() string {
	return c.v.GetString(downloadPathTemplate)
}

// SandboxRoots lists the directories the peer may hand out write access to.
// The download directory is always one of them.
func (c *ConfigViper) SandboxRoots() []string {
	var roots []string
	if dir := c.DownloadDir(); dir != "" {
		roots = append(roots, dir)
	}
	for _, r := range c.v.GetStringSlice(sandboxRoot) {
		if r = strings.TrimSpace(r); r != "" {
			roots = append(roots, r)
		}
	}
	return roots
}

func (c *ConfigViper) ChannelPeer() string {
	return c.v.GetString(channelPeer)
}

func (c *ConfigViper) ConnectTimeout() time.Duration {
	return c.v.GetDuration(connectTimeout)
}

func (c *ConfigViper) Proxy() string {
	return c.v.GetString(upstreamProxy)
}

func (c *ConfigViper) ProxyBypass() string {
	return c.v.GetString(proxyBypass)
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) DomainCatalogURI() []string {
	var uris []string
	for _, u := range c.v.GetStringSlice(domainCatalogURI) {
		if u = strings.TrimSpace(u); u != "" {
			uris = append(uris, u)
		}
	}
	return uris
}

func (c *ConfigViper) ShutdownTimeout() time.Duration {
	return c.v.GetDuration(shutdownTimeout)
}

func (c *ConfigViper) EventBufferSize() int {
	return c.v.GetInt(eventBufferSize)
}

func (c *ConfigViper) AccessLog() bool {
	return c.v.GetBool(accessLog)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func bindEnvVars(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
