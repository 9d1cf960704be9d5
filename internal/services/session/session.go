package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/cache"
	"github.com/selebrow/fetcher/internal/common/clock"
	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/internal/cookiestore"
	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/internal/stats"
	"github.com/selebrow/fetcher/pkg/models"
)

// Task is an in-flight network task owned by a session.
type Task interface {
	InvalidateAndCancel()
}

// KeptAliveLoad is a load that outlives its initiator.
type KeptAliveLoad interface {
	SessionID() models.SessionID
}

// WebsiteDataNotifier is told about website data removed on behalf of pages.
type WebsiteDataNotifier interface {
	WebsiteDataRemoved(id models.SessionID, domains []models.RegistrableDomain)
}

// PolicyPresets seed the cookie policy of a new session.
type PolicyPresets interface {
	Apply(p *cookiepolicy.Policy)
}

// Dependencies are process-scoped collaborators and settings shared by all
// sessions.
type Dependencies struct {
	Dispatcher runloop.Dispatcher
	Loader     network.Loader
	Notifier   WebsiteDataNotifier
	Presets    PolicyPresets
	// Defaults fill zero session parameters.
	Defaults               Parameters
	ProcessMayUseCookieAPI bool
	ClientSideCookieAgeCap *time.Duration
	CacheMaxAgeCap         *time.Duration
	TestingMode            bool
	Now                    clock.NowFunc
}

// Session is the aggregate root of one browsing context.
type Session struct {
	params  Parameters
	created time.Time

	cache    *cache.Cache
	cookies  cookiestore.Store
	policy   *cookiepolicy.Policy
	prefetch *PrefetchCache
	remover  WebsiteDataRemover
	notifier WebsiteDataNotifier

	mtx                     sync.Mutex
	stats                   *stats.Store
	statsEnabled            bool
	destroyStore            func(*stats.Store) error
	tasks                   map[Task]struct{}
	keptAlive               map[KeptAliveLoad]struct{}
	invalidated             bool
	shouldDowngradeReferrer bool

	d runloop.Dispatcher
	l *zap.SugaredLogger
}

func NewSession(params Parameters, deps Dependencies, l *zap.Logger) (*Session, error) {
	params, err := params.WithDefaults(deps.Defaults)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	sl := l.With(zap.Stringer("session_id", params.ID))
	s := &Session{
		params:                  params,
		created:                 now(),
		prefetch:                NewPrefetchCache(PrefetchEntryLifetime, now),
		notifier:                deps.Notifier,
		tasks:                   make(map[Task]struct{}),
		keptAlive:               make(map[KeptAliveLoad]struct{}),
		shouldDowngradeReferrer: true,
		destroyStore:            (*stats.Store).Destroy,
		d:                       deps.Dispatcher,
		l:                       sl.Sugar(),
	}

	if !params.Ephemeral && params.CacheDirectory != "" {
		s.cache = s.openCache(deps, sl)
	}

	s.cookies = s.openCookieStore(sl)

	s.policy = cookiepolicy.New(cookiepolicy.Options{
		Mode:                   params.ThirdPartyCookieBlockingMode,
		ProcessMayUseCookieAPI: deps.ProcessMayUseCookieAPI,
		ClientSideCookieAgeCap: deps.ClientSideCookieAgeCap,
	})
	if deps.CacheMaxAgeCap != nil {
		s.policy.SetCacheMaxAgeCapForPrevalentResources(*deps.CacheMaxAgeCap)
	}
	if deps.Presets != nil {
		deps.Presets.Apply(s.policy)
	}

	if params.StatisticsDirectoryHandle != nil {
		if err := params.StatisticsDirectoryHandle.Consume(); err != nil {
			s.l.Warnw("statistics directory is not accessible, statistics will not be persisted", zap.Error(err))
			s.params.StatisticsDirectory = ""
		}
	}

	s.remover = &dataRemover{cookies: s.cookies, cache: s.cache, stats: s.Statistics}

	if err := s.SetResourceLoadStatisticsEnabled(params.ResourceLoadStatisticsEnabled); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) openCache(deps Dependencies, l *zap.Logger) *cache.Cache {
	if err := s.params.CacheDirectoryHandle.Consume(); err != nil {
		s.l.Errorw("cache directory is not accessible, session continues without cache",
			zap.Error(models.NewCacheUnavailableError(err)))
		return nil
	}
	c, err := cache.Open(s.params.CacheDirectory, cache.Options{
		SpeculativeRevalidation: s.params.SpeculativeRevalidation,
		TestingMode:             deps.TestingMode,
	}, deps.Loader, deps.Dispatcher, l)
	if err != nil {
		s.l.Errorw("failed to open disk cache, session continues without cache", zap.Error(err))
		return nil
	}
	return c
}

func (s *Session) openCookieStore(l *zap.Logger) cookiestore.Store {
	if s.params.Ephemeral || s.params.CookieStorageDirectory == "" {
		return cookiestore.NewMemoryStore()
	}
	store, err := cookiestore.OpenSQLiteStore(s.params.CookieStorageDirectory, l.Sugar())
	if err != nil {
		s.l.Errorw("failed to open cookie database, falling back to in-memory cookies", zap.Error(err))
		return cookiestore.NewMemoryStore()
	}
	return store
}

func (s *Session) ID() models.SessionID {
	return s.params.ID
}

func (s *Session) Parameters() Parameters {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.params
}

func (s *Session) Created() time.Time {
	return s.created
}

func (s *Session) IsEphemeral() bool {
	return s.params.Ephemeral
}

// Cache returns the disk cache, nil when the session runs uncached.
func (s *Session) Cache() *cache.Cache {
	return s.cache
}

func (s *Session) CookieStore() cookiestore.Store {
	return s.cookies
}

func (s *Session) Policy() *cookiepolicy.Policy {
	return s.policy
}

func (s *Session) PrefetchCache() *PrefetchCache {
	return s.prefetch
}

func (s *Session) ClearPrefetchCache() {
	s.prefetch.Clear()
}

func (s *Session) TestSpeedMultiplier() float64 {
	return s.params.testSpeedMultiplier()
}

func (s *Session) AllowsServerPreconnect() bool {
	return s.params.AllowServerPreconnect
}

func (s *Session) IsStaleWhileRevalidateEnabled() bool {
	return s.params.StaleWhileRevalidate
}

// Statistics returns the resource-load statistics store, nil when disabled.
func (s *Session) Statistics() *stats.Store {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.stats
}

func (s *Session) IsInvalidated() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.invalidated
}

func (s *Session) invalidatedErr() error {
	return models.NewSessionInvalidatedError(errors.Errorf("session %d is invalidated", s.params.ID))
}

func (s *Session) RegisterTask(t Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return s.invalidatedErr()
	}
	if _, ok := s.tasks[t]; ok {
		panic(fmt.Sprintf("task %p is already registered in session %d", t, s.params.ID))
	}
	s.tasks[t] = struct{}{}
	return nil
}

// UnregisterTask forgets t. Tasks of an invalidated session are already gone.
func (s *Session) UnregisterTask(t Task) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return
	}
	if _, ok := s.tasks[t]; !ok {
		panic(fmt.Sprintf("task %p is not registered in session %d", t, s.params.ID))
	}
	delete(s.tasks, t)
}

func (s *Session) TaskCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.tasks)
}

// InvalidateAndCancel cancels every registered task and invalidates the
// statistics store. No mutation is accepted afterwards.
func (s *Session) InvalidateAndCancel() {
	s.mtx.Lock()
	if s.invalidated {
		s.mtx.Unlock()
		return
	}
	s.invalidated = true
	tasks := s.tasks
	s.tasks = make(map[Task]struct{})
	st := s.stats
	s.mtx.Unlock()

	for t := range tasks {
		t.InvalidateAndCancel()
	}
	if st != nil {
		st.Invalidate()
	}
	s.prefetch.Clear()
	s.l.Infof("session invalidated, %d tasks canceled", len(tasks))
}

func (s *Session) AddKeptAliveLoad(load KeptAliveLoad) error {
	if load.SessionID() != s.params.ID {
		panic(fmt.Sprintf("kept-alive load of session %d added to session %d", load.SessionID(), s.params.ID))
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return s.invalidatedErr()
	}
	if _, ok := s.keptAlive[load]; ok {
		panic(fmt.Sprintf("kept-alive load %p is already tracked by session %d", load, s.params.ID))
	}
	s.keptAlive[load] = struct{}{}
	return nil
}

func (s *Session) RemoveKeptAliveLoad(load KeptAliveLoad) error {
	if load.SessionID() != s.params.ID {
		panic(fmt.Sprintf("kept-alive load of session %d removed from session %d", load.SessionID(), s.params.ID))
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return s.invalidatedErr()
	}
	if _, ok := s.keptAlive[load]; !ok {
		panic(fmt.Sprintf("kept-alive load %p is not tracked by session %d", load, s.params.ID))
	}
	delete(s.keptAlive, load)
	return nil
}

func (s *Session) KeptAliveLoadCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.keptAlive)
}

// SetResourceLoadStatisticsEnabled builds or tears down the statistics store.
// Population and teardown run in the background.
func (s *Session) SetResourceLoadStatisticsEnabled(enabled bool) error {
	s.mtx.Lock()
	if s.invalidated {
		s.mtx.Unlock()
		return s.invalidatedErr()
	}
	if enabled == s.statsEnabled {
		s.mtx.Unlock()
		return nil
	}
	s.statsEnabled = enabled
	s.policy.SetResourceLoadStatisticsEnabled(enabled)

	if !enabled {
		st := s.stats
		s.stats = nil
		s.mtx.Unlock()
		if st != nil {
			go s.destroyStats(st)
		}
		return nil
	}

	st := s.newStatsStore()
	s.stats = st
	s.mtx.Unlock()

	if !st.IsEphemeral() {
		go s.populateStats(st)
	}
	return nil
}

func (s *Session) newStatsStore() *stats.Store {
	dir := s.params.StatisticsDirectory
	if s.params.Ephemeral {
		dir = ""
	}
	return stats.New(dir, stats.Settings{
		ThirdPartyCookieBlockingMode:     s.policy.ThirdPartyCookieBlockingMode(),
		SameSiteStrictEnforcementEnabled: s.params.SameSiteStrictEnforcementEnabled,
		FirstPartyWebsiteDataRemovalMode: s.params.FirstPartyWebsiteDataRemovalMode,
		StandaloneApplicationDomain:      s.params.StandaloneApplicationDomain,
		DebugMode:                        s.params.DebugMode,
		ManualPrevalentResource:          s.params.ManualPrevalentResource,
	}, s.l.Desugar())
}

func (s *Session) populateStats(st *stats.Store) {
	if err := st.Populate(); err != nil {
		if errors.Is(err, models.ErrSessionInvalidated) {
			return
		}
		s.l.Warnw("statistics store unavailable, session continues unobserved", zap.Error(err))
	}
}

// ApplyResourceLoadStatistics replaces the policy's prevalent and
// user-interaction sets with what the statistics store has observed so far.
// Empty observations leave the corresponding set untouched. The policy is
// never updated from the store on its own.
func (s *Session) ApplyResourceLoadStatistics() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return s.invalidatedErr()
	}
	if s.stats == nil {
		return models.NewStatisticsStoreUnavailableError(errors.New("resource load statistics are disabled"))
	}
	if prevalent := s.stats.PrevalentDomains(); len(prevalent) > 0 {
		s.policy.SetPrevalentDomainsToBlockAndDeleteCookiesFor(prevalent)
	}
	if interacted := s.stats.DomainsWithUserInteraction(); len(interacted) > 0 {
		s.policy.SetDomainsWithUserInteractionAsFirstParty(interacted)
	}
	return nil
}

func (s *Session) destroyStats(st *stats.Store) {
	if err := s.destroyStore(st); err != nil {
		s.l.Warnw("failed to destroy statistics store", zap.Error(err))
	}
}

// RecreateResourceLoadStatisticStore destroys and rebuilds the statistics
// store. done runs on the loop exactly once, after the rebuild (and the
// repopulation of a persistent store) or right away if the session is
// invalidated.
func (s *Session) RecreateResourceLoadStatisticStore(done func()) error {
	s.mtx.Lock()
	if s.invalidated {
		s.mtx.Unlock()
		s.d.Dispatch(done)
		return s.invalidatedErr()
	}
	old := s.stats
	s.stats = nil
	s.mtx.Unlock()

	go func() {
		defer s.d.Dispatch(done)
		if old != nil {
			s.destroyStats(old)
		}

		s.mtx.Lock()
		// an enable that ran while the old store was torn down already rebuilt it
		if s.invalidated || !s.statsEnabled || s.stats != nil {
			s.mtx.Unlock()
			return
		}
		st := s.newStatsStore()
		s.stats = st
		s.mtx.Unlock()

		if !st.IsEphemeral() {
			s.populateStats(st)
		}
	}()
	return nil
}

func (s *Session) SetThirdPartyCookieBlockingMode(mode cookiepolicy.ThirdPartyCookieBlockingMode) error {
	return s.updateStatsSettings(func() {
		s.policy.SetThirdPartyCookieBlockingMode(mode)
	}, func(st *stats.Settings) {
		st.ThirdPartyCookieBlockingMode = mode
	})
}

func (s *Session) SetShouldEnableSameSiteStrictEnforcement(enabled bool) error {
	return s.updateStatsSettings(func() {
		s.params.SameSiteStrictEnforcementEnabled = enabled
	}, func(st *stats.Settings) {
		st.SameSiteStrictEnforcementEnabled = enabled
	})
}

func (s *Session) SetFirstPartyWebsiteDataRemovalMode(mode cookiepolicy.FirstPartyWebsiteDataRemovalMode) error {
	return s.updateStatsSettings(func() {
		s.params.FirstPartyWebsiteDataRemovalMode = mode
	}, func(st *stats.Settings) {
		st.FirstPartyWebsiteDataRemovalMode = mode
	})
}

func (s *Session) updateStatsSettings(local func(), forward func(*stats.Settings)) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return s.invalidatedErr()
	}
	local()
	if s.stats != nil {
		s.stats.UpdateSettings(forward)
	}
	return nil
}

func (s *Session) ShouldDowngradeReferrer() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.shouldDowngradeReferrer
}

func (s *Session) SetShouldDowngradeReferrerForTesting(enabled bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return s.invalidatedErr()
	}
	s.shouldDowngradeReferrer = enabled
	return nil
}

// DeleteAndRestrictWebsiteDataForRegistrableDomains forces same-site=strict
// cookies for domains.SameSiteStrict, drains that list, and removes data of
// the given types for domains.Delete. completion runs on the loop with the
// domains whose data was removed.
func (s *Session) DeleteAndRestrictWebsiteDataForRegistrableDomains(
	types WebsiteDataType,
	domains *DomainsToDeleteOrRestrict,
	shouldNotifyPage bool,
	completion func([]models.RegistrableDomain),
) error {
	if s.IsInvalidated() {
		s.d.Dispatch(func() { completion(nil) })
		return s.invalidatedErr()
	}

	for _, d := range domains.SameSiteStrict {
		if err := s.cookies.SetSameSiteStrict(d); err != nil {
			s.l.Warnw("failed to enforce same-site strict cookies", zap.Stringer("domain", d), zap.Error(err))
		}
	}
	domains.SameSiteStrict = nil
	toDelete := domains.Delete

	go func() {
		removed, err := s.remover.RemoveData(types, toDelete)
		if err != nil {
			s.l.Warnw("failed to remove website data", zap.Stringer("types", types), zap.Error(err))
		}
		if shouldNotifyPage && s.notifier != nil && len(removed) > 0 {
			s.notifier.WebsiteDataRemoved(s.params.ID, removed)
		}
		s.d.Dispatch(func() { completion(removed) })
	}()
	return nil
}

// RegistrableDomainsWithWebsiteData reports domains holding data of the given
// types. completion runs on the loop.
func (s *Session) RegistrableDomainsWithWebsiteData(types WebsiteDataType, completion func([]models.RegistrableDomain)) {
	go func() {
		domains, err := s.remover.DomainsWithData(types)
		if err != nil {
			s.l.Warnw("failed to enumerate website data", zap.Stringer("types", types), zap.Error(err))
		}
		s.d.Dispatch(func() { completion(domains) })
	}()
}

// Destroy invalidates the session and releases its storage. The statistics
// store is torn down in the background.
func (s *Session) Destroy() {
	s.InvalidateAndCancel()

	s.mtx.Lock()
	st := s.stats
	s.stats = nil
	s.mtx.Unlock()
	if st != nil {
		go s.destroyStats(st)
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.l.Warnw("failed to close cache", zap.Error(err))
		}
	}
	if err := s.cookies.Close(); err != nil {
		s.l.Warnw("failed to close cookie store", zap.Error(err))
	}
}
