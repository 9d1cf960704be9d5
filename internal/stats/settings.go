package stats

import (
	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/pkg/models"
)

// Settings are forwarded from the owning session after the store is created.
type Settings struct {
	ThirdPartyCookieBlockingMode     cookiepolicy.ThirdPartyCookieBlockingMode
	SameSiteStrictEnforcementEnabled bool
	FirstPartyWebsiteDataRemovalMode cookiepolicy.FirstPartyWebsiteDataRemovalMode
	StandaloneApplicationDomain      models.RegistrableDomain
	DebugMode                        bool
	ManualPrevalentResource          models.RegistrableDomain
}
