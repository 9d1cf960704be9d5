package session

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/selebrow/fetcher/internal/cache"
	"github.com/selebrow/fetcher/internal/cookiestore"
	"github.com/selebrow/fetcher/internal/stats"
	"github.com/selebrow/fetcher/pkg/models"
)

type WebsiteDataType uint8

const (
	WebsiteDataCookies WebsiteDataType = 1 << iota
	WebsiteDataDiskCache
	WebsiteDataResourceLoadStatistics

	AllWebsiteDataTypes = WebsiteDataCookies | WebsiteDataDiskCache | WebsiteDataResourceLoadStatistics
)

func (t WebsiteDataType) Has(o WebsiteDataType) bool {
	return t&o != 0
}

func (t WebsiteDataType) String() string {
	var names []string
	if t.Has(WebsiteDataCookies) {
		names = append(names, "cookies")
	}
	if t.Has(WebsiteDataDiskCache) {
		names = append(names, "diskCache")
	}
	if t.Has(WebsiteDataResourceLoadStatistics) {
		names = append(names, "resourceLoadStatistics")
	}
	return strings.Join(names, ",")
}

// ParseWebsiteDataTypes reads a comma separated list as produced by String.
func ParseWebsiteDataTypes(s string) (WebsiteDataType, error) {
	var t WebsiteDataType
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "cookies":
			t |= WebsiteDataCookies
		case "diskCache":
			t |= WebsiteDataDiskCache
		case "resourceLoadStatistics":
			t |= WebsiteDataResourceLoadStatistics
		case "all":
			t |= AllWebsiteDataTypes
		case "":
		default:
			return 0, errors.Errorf("unknown website data type %q", name)
		}
	}
	return t, nil
}

// DomainsToDeleteOrRestrict is consumed by
// DeleteAndRestrictWebsiteDataForRegistrableDomains: SameSiteStrict is drained.
type DomainsToDeleteOrRestrict struct {
	Delete         []models.RegistrableDomain
	SameSiteStrict []models.RegistrableDomain
}

// WebsiteDataRemover deletes and enumerates website data of a session.
type WebsiteDataRemover interface {
	RemoveData(types WebsiteDataType, domains []models.RegistrableDomain) ([]models.RegistrableDomain, error)
	DomainsWithData(types WebsiteDataType) ([]models.RegistrableDomain, error)
}

type dataRemover struct {
	cookies cookiestore.Store
	cache   *cache.Cache
	stats   func() *stats.Store
}

func (r *dataRemover) RemoveData(types WebsiteDataType, domains []models.RegistrableDomain) ([]models.RegistrableDomain, error) {
	removed := make(map[models.RegistrableDomain]struct{})
	collect := func(ds []models.RegistrableDomain, err error) error {
		for _, d := range ds {
			removed[d] = struct{}{}
		}
		return err
	}

	if types.Has(WebsiteDataCookies) && r.cookies != nil {
		if err := collect(r.cookies.DeleteCookiesForDomains(domains)); err != nil {
			return setToList(removed), errors.Wrap(err, "failed to delete cookies")
		}
	}
	if types.Has(WebsiteDataDiskCache) && r.cache != nil {
		if err := collect(r.cache.RemoveForDomains(domains)); err != nil {
			return setToList(removed), errors.Wrap(err, "failed to delete cache entries")
		}
	}
	if types.Has(WebsiteDataResourceLoadStatistics) {
		if st := r.stats(); st != nil {
			if err := collect(st.RemoveDomains(domains)); err != nil {
				return setToList(removed), errors.Wrap(err, "failed to delete statistics")
			}
		}
	}
	return setToList(removed), nil
}

func (r *dataRemover) DomainsWithData(types WebsiteDataType) ([]models.RegistrableDomain, error) {
	found := make(map[models.RegistrableDomain]struct{})
	add := func(ds []models.RegistrableDomain) {
		for _, d := range ds {
			found[d] = struct{}{}
		}
	}

	if types.Has(WebsiteDataCookies) && r.cookies != nil {
		ds, err := r.cookies.Domains()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list cookie domains")
		}
		add(ds)
	}
	if types.Has(WebsiteDataDiskCache) && r.cache != nil {
		ds, err := r.cache.Domains()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list cache domains")
		}
		add(ds)
	}
	if types.Has(WebsiteDataResourceLoadStatistics) {
		if st := r.stats(); st != nil {
			add(st.Domains())
		}
	}
	return setToList(found), nil
}

func setToList(set map[models.RegistrableDomain]struct{}) []models.RegistrableDomain {
	res := make([]models.RegistrableDomain, 0, len(set))
	for d := range set {
		res = append(res, d)
	}
	slices.Sort(res)
	return res
}
