package cookiestore

import (
	"net/http"

	"github.com/selebrow/fetcher/pkg/models"
)

// Store is the cookie storage capability of a session. Both backends keep the
// same matching rules; only persistence differs.
type Store interface {
	http.CookieJar
	DeleteCookiesForDomains(domains []models.RegistrableDomain) ([]models.RegistrableDomain, error)
	DeleteAllCookies() error
	Domains() ([]models.RegistrableDomain, error)
	// SetSameSiteStrict forces SameSite=Strict on every cookie of domain.
	SetSameSiteStrict(domain models.RegistrableDomain) error
	Close() error
}
