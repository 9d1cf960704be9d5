package stats

import (
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/pkg/models"
)

// Record is what the store knows about one registrable domain.
type Record struct {
	Domain                    models.RegistrableDomain
	LastSeen                  time.Time
	MostRecentUserInteraction time.Time
	Prevalent                 bool
	SubresourceUnderTopFrames map[models.RegistrableDomain]struct{}
}

func newRecord(d models.RegistrableDomain) *Record {
	return &Record{
		Domain:                    d,
		SubresourceUnderTopFrames: make(map[models.RegistrableDomain]struct{}),
	}
}

func (r *Record) HadUserInteraction() bool {
	return !r.MostRecentUserInteraction.IsZero()
}

// Store is the resource-load statistics store of a session. A store with an
// empty directory keeps observations in memory only.
type Store struct {
	mtx         sync.RWMutex
	dir         string
	p           *persister
	records     map[models.RegistrableDomain]*Record
	settings    Settings
	invalidated bool
	destroyed   bool
	now         func() time.Time
	l           *zap.SugaredLogger
}

func New(dir string, settings Settings, l *zap.Logger) *Store {
	s := &Store{
		dir:      dir,
		records:  make(map[models.RegistrableDomain]*Record),
		settings: settings,
		now:      time.Now,
		l:        l.Sugar(),
	}
	if d := settings.ManualPrevalentResource; !d.IsEmpty() {
		s.record(d).Prevalent = true
	}
	return s
}

func (s *Store) IsEphemeral() bool {
	return s.dir == ""
}

// Populate loads persisted observations. It blocks on disk I/O; callers run
// it off the loop.
func (s *Store) Populate() error {
	if s.IsEphemeral() {
		return nil
	}
	p, err := openPersister(s.dir)
	if err != nil {
		return models.NewStatisticsStoreUnavailableError(err)
	}
	records, err := p.load()
	if err != nil {
		_ = p.close()
		return models.NewStatisticsStoreUnavailableError(errors.Wrap(err, "failed to load statistics"))
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated || s.destroyed {
		_ = p.close()
		return models.ErrSessionInvalidated
	}
	s.p = p
	// observations made before population are written through now
	for d, cur := range s.records {
		if r, ok := records[d]; ok {
			merge(cur, r)
		}
		s.persist(cur)
	}
	for d, r := range records {
		if _, ok := s.records[d]; !ok {
			s.records[d] = r
		}
	}
	s.l.Infof("statistics store populated with %d domains", len(records))
	return nil
}

func merge(dst, src *Record) {
	if src.LastSeen.After(dst.LastSeen) {
		dst.LastSeen = src.LastSeen
	}
	if src.MostRecentUserInteraction.After(dst.MostRecentUserInteraction) {
		dst.MostRecentUserInteraction = src.MostRecentUserInteraction
	}
	dst.Prevalent = dst.Prevalent || src.Prevalent
	for top := range src.SubresourceUnderTopFrames {
		dst.SubresourceUnderTopFrames[top] = struct{}{}
	}
}

// Invalidate stops the store from accepting further observations.
func (s *Store) Invalidate() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.invalidated = true
}

// Destroy releases the persistent backing. Observations already written stay
// on disk.
func (s *Store) Destroy() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.destroyed {
		return nil
	}
	s.destroyed = true
	s.invalidated = true
	clear(s.records)
	if s.p == nil {
		return nil
	}
	err := s.p.close()
	s.p = nil
	return err
}

func (s *Store) IsInvalidated() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.invalidated
}

func (s *Store) Settings() Settings {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.settings
}

// UpdateSettings applies fn to the forwarded settings. A manual prevalent
// resource is recorded as prevalent right away.
func (s *Store) UpdateSettings(fn func(*Settings)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	fn(&s.settings)
	if d := s.settings.ManualPrevalentResource; !d.IsEmpty() && !s.invalidated {
		r := s.record(d)
		if !r.Prevalent {
			r.Prevalent = true
			s.persist(r)
		}
	}
}

func (s *Store) record(d models.RegistrableDomain) *Record {
	r, ok := s.records[d]
	if !ok {
		r = newRecord(d)
		r.LastSeen = s.now()
		s.records[d] = r
	}
	return r
}

func (s *Store) persist(r *Record) {
	if s.p == nil {
		return
	}
	if err := s.p.save(r); err != nil {
		s.l.Warnw("failed to persist statistics record", zap.String("domain", r.Domain.String()), zap.Error(err))
	}
}

func (s *Store) LogUserInteraction(d models.RegistrableDomain) {
	if d.IsEmpty() {
		return
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return
	}
	r := s.record(d)
	r.LastSeen = s.now()
	r.MostRecentUserInteraction = r.LastSeen
	s.persist(r)
}

func (s *Store) LogSubresourceLoad(firstParty, resource models.RegistrableDomain) {
	if resource.IsEmpty() || firstParty.IsEmpty() || resource == firstParty {
		return
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated || s.settings.StandaloneApplicationDomain == resource {
		return
	}
	r := s.record(resource)
	r.LastSeen = s.now()
	r.SubresourceUnderTopFrames[firstParty] = struct{}{}
	if s.settings.DebugMode {
		s.l.Debugw("subresource load", zap.String("resource", resource.String()), zap.String("first_party", firstParty.String()))
	}
	s.persist(r)
}

func (s *Store) SetPrevalentResource(d models.RegistrableDomain, prevalent bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.invalidated {
		return
	}
	r := s.record(d)
	r.Prevalent = prevalent
	s.persist(r)
}

func (s *Store) Record(d models.RegistrableDomain) (Record, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	r, ok := s.records[d]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

func (s *Store) Domains() []models.RegistrableDomain {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.collect(func(*Record) bool { return true })
}

func (s *Store) PrevalentDomains() []models.RegistrableDomain {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.collect(func(r *Record) bool { return r.Prevalent })
}

func (s *Store) DomainsWithUserInteraction() []models.RegistrableDomain {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.collect((*Record).HadUserInteraction)
}

func (s *Store) collect(pred func(*Record) bool) []models.RegistrableDomain {
	var res []models.RegistrableDomain
	for d, r := range s.records {
		if pred(r) {
			res = append(res, d)
		}
	}
	slices.Sort(res)
	return res
}

// RemoveDomains drops records of the given domains and returns those that
// had one.
func (s *Store) RemoveDomains(domains []models.RegistrableDomain) ([]models.RegistrableDomain, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	var removed []models.RegistrableDomain
	for _, d := range domains {
		if _, ok := s.records[d]; !ok {
			continue
		}
		if s.p != nil {
			if err := s.p.remove(d); err != nil {
				return removed, errors.Wrapf(err, "failed to remove statistics of %s", d)
			}
		}
		delete(s.records, d)
		removed = append(removed, d)
	}
	slices.Sort(removed)
	return removed, nil
}
