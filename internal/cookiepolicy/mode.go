package cookiepolicy

import (
	"github.com/pkg/errors"
)

type ThirdPartyCookieBlockingMode string

const (
	BlockAll                         ThirdPartyCookieBlockingMode = "All"
	AllExceptBetweenAppBoundDomains  ThirdPartyCookieBlockingMode = "AllExceptBetweenAppBoundDomains"
	AllOnSitesWithoutUserInteraction ThirdPartyCookieBlockingMode = "AllOnSitesWithoutUserInteraction"
	OnlyAccordingToPerDomainPolicy   ThirdPartyCookieBlockingMode = "OnlyAccordingToPerDomainPolicy"
)

func ParseThirdPartyCookieBlockingMode(s string) (ThirdPartyCookieBlockingMode, error) {
	switch m := ThirdPartyCookieBlockingMode(s); m {
	case BlockAll, AllExceptBetweenAppBoundDomains, AllOnSitesWithoutUserInteraction, OnlyAccordingToPerDomainPolicy:
		return m, nil
	case "":
		return BlockAll, nil
	default:
		return "", errors.Errorf("unknown third-party cookie blocking mode %q", s)
	}
}

// FirstPartyWebsiteDataRemovalMode controls how website data of first parties
// without user interaction is aged out by the statistics store.
type FirstPartyWebsiteDataRemovalMode string

const (
	RemoveAllButCookies                     FirstPartyWebsiteDataRemovalMode = "AllButCookies"
	RemoveNone                              FirstPartyWebsiteDataRemovalMode = "None"
	RemoveAllButCookiesLiveOnTestingTimeout FirstPartyWebsiteDataRemovalMode = "AllButCookiesLiveOnTestingTimeout"
	RemoveAllButCookiesReproTestingTimeout  FirstPartyWebsiteDataRemovalMode = "AllButCookiesReproTestingTimeout"
)

func ParseFirstPartyWebsiteDataRemovalMode(s string) (FirstPartyWebsiteDataRemovalMode, error) {
	switch m := FirstPartyWebsiteDataRemovalMode(s); m {
	case RemoveAllButCookies, RemoveNone, RemoveAllButCookiesLiveOnTestingTimeout, RemoveAllButCookiesReproTestingTimeout:
		return m, nil
	case "":
		return RemoveAllButCookies, nil
	default:
		return "", errors.Errorf("unknown first-party website data removal mode %q", s)
	}
}
