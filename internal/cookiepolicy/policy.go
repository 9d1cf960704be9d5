package cookiepolicy

import (
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/selebrow/fetcher/pkg/models"
)

type domainSet = map[models.RegistrableDomain]struct{}

type Options struct {
	Mode                          ThirdPartyCookieBlockingMode
	ResourceLoadStatisticsEnabled bool
	// ProcessMayUseCookieAPI gates cookie writes originating from client script.
	ProcessMayUseCookieAPI bool
	ClientSideCookieAgeCap *time.Duration
}

// Policy is the per-session cookie and privacy state. All mutations are
// visible to the next decision query as soon as they return.
type Policy struct {
	mtx sync.RWMutex

	statisticsEnabled bool
	mayUseCookieAPI   bool
	mode              ThirdPartyCookieBlockingMode

	blockAndDelete  domainSet
	blockButKeep    domainSet
	userInteraction domainSet
	appBound        domainSet

	frameGrants map[models.PageID]map[models.FrameID]models.RegistrableDomain
	// page -> first party -> resource
	pageGrants map[models.PageID]map[models.RegistrableDomain]models.RegistrableDomain

	crossSiteTransfers     map[models.PageID]models.RegistrableDomain
	linkDecorationTestMode bool

	cacheMaxAgeCap        *time.Duration
	clientSideAgeCap      *time.Duration
	clientSideAgeCapShort *time.Duration
}

func New(opts Options) *Policy {
	mode := opts.Mode
	if mode == "" {
		mode = BlockAll
	}
	p := &Policy{
		statisticsEnabled:  opts.ResourceLoadStatisticsEnabled,
		mayUseCookieAPI:    opts.ProcessMayUseCookieAPI,
		mode:               mode,
		blockAndDelete:     make(domainSet),
		blockButKeep:       make(domainSet),
		userInteraction:    make(domainSet),
		appBound:           make(domainSet),
		frameGrants:        make(map[models.PageID]map[models.FrameID]models.RegistrableDomain),
		pageGrants:         make(map[models.PageID]map[models.RegistrableDomain]models.RegistrableDomain),
		crossSiteTransfers: make(map[models.PageID]models.RegistrableDomain),
	}
	p.SetAgeCapForClientSideCookies(opts.ClientSideCookieAgeCap)
	return p
}

// ShouldBlockCookies decides whether cookies of resource are exposed when
// loaded under firstParty. A zero frame or page means the request is not
// attributed to one.
func (p *Policy) ShouldBlockCookies(
	resource, firstParty models.RegistrableDomain,
	frame models.FrameID,
	page models.PageID,
	relax bool,
) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.shouldBlockCookies(resource, firstParty, frame, page, relax)
}

// ShouldBlockCookiesForURL is ShouldBlockCookies on the registrable domains of
// the given URLs.
func (p *Policy) ShouldBlockCookiesForURL(firstParty, resource *url.URL, frame models.FrameID, page models.PageID, relax bool) bool {
	return p.ShouldBlockCookies(
		models.RegistrableDomainFromURL(resource),
		models.RegistrableDomainFromURL(firstParty),
		frame, page, relax)
}

func (p *Policy) shouldBlockCookies(
	resource, firstParty models.RegistrableDomain,
	frame models.FrameID,
	page models.PageID,
	relax bool,
) bool {
	if !p.statisticsEnabled || resource.IsEmpty() || firstParty.IsEmpty() || resource == firstParty {
		return false
	}
	if relax {
		return false
	}
	if page != 0 && p.hasStorageAccess(resource, firstParty, frame, page) {
		return false
	}
	if _, ok := p.blockAndDelete[resource]; ok {
		return true
	}
	if _, ok := p.blockButKeep[resource]; ok {
		return true
	}

	switch p.mode {
	case AllExceptBetweenAppBoundDomains:
		return !p.exemptDomainPair(firstParty, resource)
	case AllOnSitesWithoutUserInteraction:
		_, ok := p.userInteraction[resource]
		return !ok
	case OnlyAccordingToPerDomainPolicy:
		return false
	default:
		return true
	}
}

func (p *Policy) exemptDomainPair(topFrame, subResource models.RegistrableDomain) bool {
	_, top := p.appBound[topFrame]
	_, sub := p.appBound[subResource]
	return top && sub
}

func (p *Policy) hasStorageAccess(resource, firstParty models.RegistrableDomain, frame models.FrameID, page models.PageID) bool {
	if frame != 0 {
		if granted, ok := p.frameGrants[page][frame]; ok && granted == resource {
			return true
		}
	}
	granted, ok := p.pageGrants[page][firstParty]
	return ok && granted == resource
}

func (p *Policy) HasStorageAccess(resource, firstParty models.RegistrableDomain, frame models.FrameID, page models.PageID) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.hasStorageAccess(resource, firstParty, frame, page)
}

// GrantStorageAccess grants resource access to its cookies under firstParty.
// Without a frame the grant covers the whole page.
func (p *Policy) GrantStorageAccess(resource, firstParty models.RegistrableDomain, frame models.FrameID, page models.PageID) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if frame == 0 {
		grants, ok := p.pageGrants[page]
		if !ok {
			grants = make(map[models.RegistrableDomain]models.RegistrableDomain)
			p.pageGrants[page] = grants
		}
		grants[firstParty] = resource
		return
	}
	grants, ok := p.frameGrants[page]
	if !ok {
		grants = make(map[models.FrameID]models.RegistrableDomain)
		p.frameGrants[page] = grants
	}
	grants[frame] = resource
}

func (p *Policy) RemoveStorageAccessForFrame(frame models.FrameID, page models.PageID) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	grants, ok := p.frameGrants[page]
	if !ok {
		return
	}
	delete(grants, frame)
	if len(grants) == 0 {
		delete(p.frameGrants, page)
	}
}

func (p *Policy) RemoveAllStorageAccess() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	clear(p.frameGrants)
	clear(p.pageGrants)
}

// GetAllStorageAccessEntries lists the resource domains holding frame grants.
func (p *Policy) GetAllStorageAccessEntries() []string {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	var res []string
	for _, grants := range p.frameGrants {
		for _, d := range grants {
			res = append(res, d.String())
		}
	}
	slices.Sort(res)
	return res
}

func (p *Policy) SetPrevalentDomainsToBlockAndDeleteCookiesFor(domains []models.RegistrableDomain) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.blockAndDelete = models.NewDomainSet(domains...)
}

func (p *Policy) SetPrevalentDomainsToBlockButKeepCookiesFor(domains []models.RegistrableDomain) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.blockButKeep = models.NewDomainSet(domains...)
}

func (p *Policy) SetDomainsWithUserInteractionAsFirstParty(domains []models.RegistrableDomain) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.userInteraction = models.NewDomainSet(domains...)
}

func (p *Policy) HasHadUserInteractionAsFirstParty(domain models.RegistrableDomain) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	_, ok := p.userInteraction[domain]
	return ok
}

func (p *Policy) ShouldBlockThirdPartyCookies(domain models.RegistrableDomain) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	_, ok := p.blockAndDelete[domain]
	return ok
}

func (p *Policy) ShouldBlockThirdPartyCookiesButKeepFirstPartyCookiesFor(domain models.RegistrableDomain) bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	_, ok := p.blockButKeep[domain]
	return ok
}

// DomainsToDeleteCookiesFor returns the block-and-delete set, sorted.
func (p *Policy) DomainsToDeleteCookiesFor() []models.RegistrableDomain {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return sortedDomains(p.blockAndDelete)
}

func (p *Policy) SetCacheMaxAgeCapForPrevalentResources(c time.Duration) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cacheMaxAgeCap = &c
}

func (p *Policy) ResetCacheMaxAgeCapForPrevalentResources() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cacheMaxAgeCap = nil
}

// MaxAgeCacheCap caps the freshness lifetime of cached responses from
// resources whose cookies would be blocked under firstParty.
func (p *Policy) MaxAgeCacheCap(firstParty, resource *url.URL) *time.Duration {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	if p.cacheMaxAgeCap == nil {
		return nil
	}
	if !p.shouldBlockCookies(models.RegistrableDomainFromURL(resource), models.RegistrableDomainFromURL(firstParty), 0, 0, false) {
		return nil
	}
	c := *p.cacheMaxAgeCap
	return &c
}

func (p *Policy) ClearPageSpecificDataForResourceLoadStatistics(page models.PageID) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	delete(p.pageGrants, page)
	delete(p.frameGrants, page)
	if !p.linkDecorationTestMode {
		delete(p.crossSiteTransfers, page)
	}
}

// SetAgeCapForClientSideCookies sets the lifetime cap for cookies written by
// client script. Pages navigated to with link decoration from a prevalent
// resource get a seventh of it.
func (p *Policy) SetAgeCapForClientSideCookies(c *time.Duration) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if c == nil {
		p.clientSideAgeCap = nil
		p.clientSideAgeCapShort = nil
		return
	}
	long, short := *c, *c/7
	p.clientSideAgeCap = &long
	p.clientSideAgeCapShort = &short
}

func (p *Policy) ClientSideCookieCap(firstParty models.RegistrableDomain, page models.PageID) *time.Duration {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.clientSideCookieCap(firstParty, page)
}

func (p *Policy) clientSideCookieCap(firstParty models.RegistrableDomain, page models.PageID) *time.Duration {
	if p.clientSideAgeCap == nil {
		return nil
	}
	if page != 0 {
		if d, ok := p.crossSiteTransfers[page]; ok && d == firstParty {
			c := *p.clientSideAgeCapShort
			return &c
		}
	}
	c := *p.clientSideAgeCap
	return &c
}

// DidCommitCrossSiteLoadWithDataTransferFromPrevalentResource records that page
// navigated to toDomain carrying link decoration from a prevalent resource.
// The first record for a page wins.
func (p *Policy) DidCommitCrossSiteLoadWithDataTransferFromPrevalentResource(toDomain models.RegistrableDomain, page models.PageID) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if _, ok := p.crossSiteTransfers[page]; !ok {
		p.crossSiteTransfers[page] = toDomain
	}
}

// ResetCrossSiteLoadsWithLinkDecorationForTesting drops recorded transfers and
// keeps new ones across page data clears.
func (p *Policy) ResetCrossSiteLoadsWithLinkDecorationForTesting() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	clear(p.crossSiteTransfers)
	p.linkDecorationTestMode = true
}

func (p *Policy) SetThirdPartyCookieBlockingMode(mode ThirdPartyCookieBlockingMode) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.mode = mode
}

func (p *Policy) ThirdPartyCookieBlockingMode() ThirdPartyCookieBlockingMode {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.mode
}

func (p *Policy) SetAppBoundDomains(domains []models.RegistrableDomain) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.appBound = models.NewDomainSet(domains...)
}

func (p *Policy) ResetAppBoundDomains() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	clear(p.appBound)
}

func (p *Policy) SetResourceLoadStatisticsEnabled(enabled bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.statisticsEnabled = enabled
}

func (p *Policy) ResourceLoadStatisticsEnabled() bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.statisticsEnabled
}

func (p *Policy) ProcessMayUseCookieAPI() bool {
	return p.mayUseCookieAPI
}

func sortedDomains(set domainSet) []models.RegistrableDomain {
	res := make([]models.RegistrableDomain, 0, len(set))
	for d := range set {
		res = append(res, d)
	}
	slices.Sort(res)
	return res
}
