package catalog

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/pkg/models"
)

// Catalog is the operator maintained domain list every new session's cookie
// policy starts from. Statistics learned later replace the seeded sets.
type Catalog struct {
	PrevalentDomains            []models.RegistrableDomain `yaml:"prevalentDomains"`
	PrevalentDomainsKeepCookies []models.RegistrableDomain `yaml:"prevalentDomainsKeepCookies"`
	UserInteractionDomains      []models.RegistrableDomain `yaml:"userInteractionDomains"`
	AppBoundDomains             []models.RegistrableDomain `yaml:"appBoundDomains"`
	CacheMaxAgeCap              *models.Duration           `yaml:"cacheMaxAgeCap"`
}

func NewYamlCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse domain catalog")
	}
	for _, list := range []*[]models.RegistrableDomain{
		&c.PrevalentDomains,
		&c.PrevalentDomainsKeepCookies,
		&c.UserInteractionDomains,
		&c.AppBoundDomains,
	} {
		norm, err := normalize(*list)
		if err != nil {
			return nil, err
		}
		*list = norm
	}
	if c.CacheMaxAgeCap != nil && c.CacheMaxAgeCap.Duration < 0 {
		return nil, errors.Errorf("negative cache max-age cap %s", c.CacheMaxAgeCap)
	}
	return &c, nil
}

// normalize reduces hosts to their registrable domains, dropping duplicates.
func normalize(domains []models.RegistrableDomain) ([]models.RegistrableDomain, error) {
	if len(domains) == 0 {
		return nil, nil
	}
	seen := make(map[models.RegistrableDomain]struct{}, len(domains))
	res := make([]models.RegistrableDomain, 0, len(domains))
	for _, d := range domains {
		rd := models.RegistrableDomainFromHost(strings.TrimSpace(string(d)))
		if rd.IsEmpty() {
			return nil, errors.Errorf("invalid domain %q in catalog", d)
		}
		if _, ok := seen[rd]; ok {
			continue
		}
		seen[rd] = struct{}{}
		res = append(res, rd)
	}
	return res, nil
}

func (c *Catalog) Apply(p *cookiepolicy.Policy) {
	if len(c.PrevalentDomains) > 0 {
		p.SetPrevalentDomainsToBlockAndDeleteCookiesFor(c.PrevalentDomains)
	}
	if len(c.PrevalentDomainsKeepCookies) > 0 {
		p.SetPrevalentDomainsToBlockButKeepCookiesFor(c.PrevalentDomainsKeepCookies)
	}
	if len(c.UserInteractionDomains) > 0 {
		p.SetDomainsWithUserInteractionAsFirstParty(c.UserInteractionDomains)
	}
	if len(c.AppBoundDomains) > 0 {
		p.SetAppBoundDomains(c.AppBoundDomains)
	}
	if c.CacheMaxAgeCap != nil {
		p.SetCacheMaxAgeCapForPrevalentResources(c.CacheMaxAgeCap.Duration)
	}
}
