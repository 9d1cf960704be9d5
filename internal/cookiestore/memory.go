package cookiestore

import (
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/selebrow/fetcher/pkg/models"
)

// MemoryStore keeps cookies for the lifetime of the process; used by
// ephemeral sessions.
type MemoryStore struct {
	mtx     sync.RWMutex
	cookies map[string]*Cookie
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cookies: make(map[string]*Cookie),
		now:     time.Now,
	}
}

func (m *MemoryStore) SetCookies(u *url.URL, cookies []*http.Cookie) {
	now := m.now()
	m.mtx.Lock()
	defer m.mtx.Unlock()
	for _, c := range cookies {
		sc, ok := fromSetCookie(u, c, now)
		if !ok {
			continue
		}
		if sc.Expired(now) {
			delete(m.cookies, sc.id())
			continue
		}
		m.cookies[sc.id()] = sc
	}
}

func (m *MemoryStore) Cookies(u *url.URL) []*http.Cookie {
	now := m.now()
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	var matched []*Cookie
	for _, c := range m.cookies {
		if c.matches(u, now) {
			matched = append(matched, c)
		}
	}
	return sortedCookies(matched)
}

func (m *MemoryStore) DeleteCookiesForDomains(domains []models.RegistrableDomain) ([]models.RegistrableDomain, error) {
	set := models.NewDomainSet(domains...)
	removed := make(map[models.RegistrableDomain]struct{})

	m.mtx.Lock()
	defer m.mtx.Unlock()
	for id, c := range m.cookies {
		d := c.RegistrableDomain()
		if _, ok := set[d]; ok {
			delete(m.cookies, id)
			removed[d] = struct{}{}
		}
	}
	return domainList(removed), nil
}

func (m *MemoryStore) DeleteAllCookies() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	clear(m.cookies)
	return nil
}

func (m *MemoryStore) Domains() ([]models.RegistrableDomain, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	seen := make(map[models.RegistrableDomain]struct{})
	for _, c := range m.cookies {
		seen[c.RegistrableDomain()] = struct{}{}
	}
	return domainList(seen), nil
}

func (m *MemoryStore) SetSameSiteStrict(domain models.RegistrableDomain) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	for _, c := range m.cookies {
		if c.RegistrableDomain() == domain {
			c.SameSite = http.SameSiteStrictMode
		}
	}
	return nil
}

// All returns a snapshot of the stored cookies.
func (m *MemoryStore) All() []Cookie {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	res := make([]Cookie, 0, len(m.cookies))
	for _, c := range m.cookies {
		res = append(res, *c)
	}
	return res
}

func (m *MemoryStore) Close() error {
	return nil
}

func domainList(set map[models.RegistrableDomain]struct{}) []models.RegistrableDomain {
	res := make([]models.RegistrableDomain, 0, len(set))
	for d := range set {
		res = append(res, d)
	}
	slices.Sort(res)
	return res
}
