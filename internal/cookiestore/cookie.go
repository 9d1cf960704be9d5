package cookiestore

import (
	"net"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/selebrow/fetcher/pkg/models"
)

// Cookie is a stored cookie, RFC 6265 §5.3 fields.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	HostOnly bool
	Path     string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// fromSetCookie validates c as set by a response for u. A false result means
// the cookie must be ignored. The returned cookie may already be expired,
// which callers treat as a deletion.
func fromSetCookie(u *url.URL, c *http.Cookie, now time.Time) (*Cookie, bool) {
	host := canonicalHost(u.Hostname())
	if host == "" || c.Name == "" {
		return nil, false
	}

	sc := &Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
		SameSite: c.SameSite,
		Path:     c.Path,
	}

	if c.Domain == "" {
		sc.Domain = host
		sc.HostOnly = true
	} else {
		domain := canonicalHost(strings.TrimPrefix(c.Domain, "."))
		if !domainMatch(host, domain) {
			return nil, false
		}
		if isIP(host) && host != domain {
			return nil, false
		}
		if ps, _ := publicsuffix.PublicSuffix(domain); ps == domain && host != domain {
			return nil, false
		}
		sc.Domain = domain
		sc.HostOnly = host == domain && isIP(host)
	}

	if sc.Path == "" || sc.Path[0] != '/' {
		sc.Path = defaultPath(u.Path)
	}

	switch {
	case c.MaxAge < 0:
		sc.Expires = time.Unix(1, 0)
	case c.MaxAge > 0:
		sc.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		sc.Expires = c.Expires
	}
	return sc, true
}

func (c *Cookie) id() string {
	return c.Domain + ";" + c.Path + ";" + c.Name
}

func (c *Cookie) Persistent() bool {
	return !c.Expires.IsZero()
}

func (c *Cookie) Expired(now time.Time) bool {
	return c.Persistent() && !c.Expires.After(now)
}

func (c *Cookie) RegistrableDomain() models.RegistrableDomain {
	return models.RegistrableDomainFromHost(c.Domain)
}

func (c *Cookie) matches(u *url.URL, now time.Time) bool {
	if c.Expired(now) {
		return false
	}
	host := canonicalHost(u.Hostname())
	if c.HostOnly {
		if host != c.Domain {
			return false
		}
	} else if !domainMatch(host, c.Domain) {
		return false
	}
	if c.Secure && u.Scheme != "https" && u.Scheme != "wss" {
		return false
	}
	return pathMatch(requestPath(u), c.Path)
}

func (c *Cookie) httpCookie() *http.Cookie {
	return &http.Cookie{Name: c.Name, Value: c.Value}
}

func canonicalHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(host), ".")
}

func isIP(host string) bool {
	return net.ParseIP(host) != nil
}

func domainMatch(host, domain string) bool {
	return host == domain || (strings.HasSuffix(host, "."+domain) && !isIP(host))
}

func requestPath(u *url.URL) string {
	if u.Path == "" {
		return "/"
	}
	return u.Path
}

func pathMatch(reqPath, cookiePath string) bool {
	if reqPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(reqPath, cookiePath) {
		return false
	}
	return strings.HasSuffix(cookiePath, "/") || reqPath[len(cookiePath)] == '/'
}

func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	dir := path.Dir(p)
	if dir == "." {
		return "/"
	}
	return dir
}

func sortedCookies(cookies []*Cookie) []*http.Cookie {
	// longer paths first, RFC 6265 §5.4
	slices.SortStableFunc(cookies, func(a, b *Cookie) int {
		return len(b.Path) - len(a.Path)
	})
	res := make([]*http.Cookie, len(cookies))
	for i, c := range cookies {
		res[i] = c.httpCookie()
	}
	return res
}
