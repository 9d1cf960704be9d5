package cookiepolicy

import (
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/selebrow/fetcher/internal/cookiestore"
	"github.com/selebrow/fetcher/pkg/models"
)

var ErrCookieAPIDisallowed = errors.New("process may not use the cookie API")

// LoadContext attributes a load to a first party, frame and page.
type LoadContext struct {
	FirstParty *url.URL
	Frame      models.FrameID
	Page       models.PageID
	Relax      bool
}

// Jar is an http.CookieJar over a session cookie store that applies the
// policy decision of one load context.
type Jar struct {
	policy *Policy
	store  cookiestore.Store
	lc     LoadContext
	now    func() time.Time
}

func (p *Policy) Jar(store cookiestore.Store, lc LoadContext) *Jar {
	return &Jar{policy: p, store: store, lc: lc, now: time.Now}
}

func (j *Jar) blocked(u *url.URL) bool {
	return j.policy.ShouldBlockCookiesForURL(j.lc.FirstParty, u, j.lc.Frame, j.lc.Page, j.lc.Relax)
}

// SetCookies stores cookies received from the network.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if len(cookies) == 0 || j.blocked(u) {
		return
	}
	j.store.SetCookies(u, cookies)
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	if j.blocked(u) {
		return nil
	}
	return j.store.Cookies(u)
}

// SetCookiesFromScript stores cookies written by client script, capping the
// lifetime of persistent ones.
func (j *Jar) SetCookiesFromScript(u *url.URL, cookies []*http.Cookie) error {
	if !j.policy.ProcessMayUseCookieAPI() {
		return ErrCookieAPIDisallowed
	}
	if len(cookies) == 0 || j.blocked(u) {
		return nil
	}

	ageCap := j.policy.ClientSideCookieCap(models.RegistrableDomainFromURL(j.lc.FirstParty), j.lc.Page)
	if ageCap != nil {
		now := j.now()
		limit := now.Add(*ageCap)
		capped := make([]*http.Cookie, len(cookies))
		for i, c := range cookies {
			cc := *c
			if cc.MaxAge > 0 && time.Duration(cc.MaxAge)*time.Second > *ageCap {
				cc.MaxAge = int(ageCap.Seconds())
			}
			if cc.MaxAge == 0 && !cc.Expires.IsZero() && cc.Expires.After(limit) {
				cc.Expires = limit
			}
			capped[i] = &cc
		}
		cookies = capped
	}
	j.store.SetCookies(u, cookies)
	return nil
}

var _ http.CookieJar = (*Jar)(nil)
