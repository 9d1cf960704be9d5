package session

import (
	"dario.cat/mergo"
	"github.com/pkg/errors"

	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

// Parameters describe a session at creation time. Zero fields are filled from
// the configured defaults.
type Parameters struct {
	ID        models.SessionID `json:"id"`
	Ephemeral bool             `json:"ephemeral,omitempty"`

	CacheDirectory            string          `json:"cacheDirectory,omitempty"`
	CacheDirectoryHandle      *sandbox.Handle `json:"-"`
	StatisticsDirectory       string          `json:"statisticsDirectory,omitempty"`
	StatisticsDirectoryHandle *sandbox.Handle `json:"-"`
	CookieStorageDirectory    string          `json:"cookieStorageDirectory,omitempty"`

	ThirdPartyCookieBlockingMode     cookiepolicy.ThirdPartyCookieBlockingMode     `json:"thirdPartyCookieBlockingMode,omitempty"`
	FirstPartyWebsiteDataRemovalMode cookiepolicy.FirstPartyWebsiteDataRemovalMode `json:"firstPartyWebsiteDataRemovalMode,omitempty"`

	SpeculativeRevalidation          bool    `json:"speculativeRevalidation,omitempty"`
	StaleWhileRevalidate             bool    `json:"staleWhileRevalidate,omitempty"`
	TestSpeedMultiplier              float64 `json:"testSpeedMultiplier,omitempty"`
	AllowServerPreconnect            bool    `json:"allowServerPreconnect,omitempty"`
	ResourceLoadStatisticsEnabled    bool    `json:"resourceLoadStatisticsEnabled,omitempty"`
	SameSiteStrictEnforcementEnabled bool    `json:"sameSiteStrictEnforcementEnabled,omitempty"`
	DebugMode                        bool    `json:"debugMode,omitempty"`
	IncludeLocalhost                 bool    `json:"includeLocalhost,omitempty"`

	StandaloneApplicationDomain models.RegistrableDomain `json:"standaloneApplicationDomain,omitempty"`
	ManualPrevalentResource     models.RegistrableDomain `json:"manualPrevalentResource,omitempty"`
}

// WithDefaults returns a copy of p with zero fields taken from defaults.
// Identity and permission handles are never inherited.
func (p Parameters) WithDefaults(defaults Parameters) (Parameters, error) {
	defaults.ID = 0
	defaults.CacheDirectoryHandle = nil
	defaults.StatisticsDirectoryHandle = nil
	if err := mergo.Merge(&p, defaults); err != nil {
		return p, errors.Wrap(err, "failed to merge session defaults")
	}
	return p, nil
}

func (p Parameters) Validate() error {
	if p.ID == 0 {
		return models.NewBadParametersError(errors.New("session id is required"))
	}
	if p.TestSpeedMultiplier < 0 {
		return models.NewBadParametersError(errors.Errorf("invalid test speed multiplier %v", p.TestSpeedMultiplier))
	}
	if _, err := cookiepolicy.ParseThirdPartyCookieBlockingMode(string(p.ThirdPartyCookieBlockingMode)); err != nil {
		return models.NewBadParametersError(err)
	}
	if _, err := cookiepolicy.ParseFirstPartyWebsiteDataRemovalMode(string(p.FirstPartyWebsiteDataRemovalMode)); err != nil {
		return models.NewBadParametersError(err)
	}
	if p.CacheDirectoryHandle != nil && p.CacheDirectory == "" {
		return models.NewBadParametersError(errors.New("cache directory handle without cache directory"))
	}
	if p.StatisticsDirectoryHandle != nil && p.StatisticsDirectory == "" {
		return models.NewBadParametersError(errors.New("statistics directory handle without statistics directory"))
	}
	return nil
}

func (p Parameters) testSpeedMultiplier() float64 {
	if p.TestSpeedMultiplier == 0 {
		return 1
	}
	return p.TestSpeedMultiplier
}
