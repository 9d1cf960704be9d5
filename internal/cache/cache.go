package cache

import (
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/pkg/models"
)

var (
	ErrSpeculativeLoadInProgress = errors.New("speculative load already in progress for this key")
	ErrCacheClosed               = errors.New("cache is closed")
)

type Options struct {
	SpeculativeRevalidation bool
	TestingMode             bool
}

// Cache is the disk cache handle of a session.
type Cache struct {
	storage Storage
	opts    Options
	loader  network.Loader
	d       runloop.Dispatcher
	now     func() time.Time

	mtx     sync.Mutex
	loads   map[string]*SpeculativeLoad
	closing bool
	closed  bool

	l *zap.SugaredLogger
}

// Open opens the disk cache stored in dir.
func Open(
	dir string,
	opts Options,
	loader network.Loader,
	d runloop.Dispatcher,
	l *zap.Logger,
) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, models.NewCacheUnavailableError(errors.Wrapf(err, "failed to create cache directory %s", dir))
	}
	s, err := NewSQLiteStorage(dir)
	if err != nil {
		return nil, models.NewCacheUnavailableError(err)
	}
	return New(s, opts, loader, d, l), nil
}

func New(s Storage, opts Options, loader network.Loader, d runloop.Dispatcher, l *zap.Logger) *Cache {
	return &Cache{
		storage: s,
		opts:    opts,
		loader:  loader,
		d:       d,
		now:     time.Now,
		loads:   make(map[string]*SpeculativeLoad),
		l:       l.Sugar(),
	}
}

func (c *Cache) Options() Options {
	return c.opts
}

// Retrieve returns the stored entry usable for req, or nil. An entry whose
// varying headers disagree with req is not returned.
func (c *Cache) Retrieve(req *http.Request) (*Entry, error) {
	if c.isClosed() {
		return nil, ErrCacheClosed
	}
	e, err := c.storage.Retrieve(NewKey(req, nil).Prefix())
	if err != nil || e == nil {
		return nil, err
	}
	if !RequestsHeadersMatch(e.OriginalRequest(), req, e.Key().Vary) {
		return nil, nil
	}
	return e, nil
}

func (c *Cache) Store(e *Entry) error {
	if c.isClosed() {
		return ErrCacheClosed
	}
	return c.storage.Store(e)
}

func (c *Cache) Remove(key Key) error {
	if c.isClosed() {
		return ErrCacheClosed
	}
	return c.storage.Remove(key.Prefix())
}

// RemoveForDomains drops every entry whose URL host belongs to one of domains
// and returns the domains that had data.
func (c *Cache) RemoveForDomains(domains []models.RegistrableDomain) ([]models.RegistrableDomain, error) {
	if c.isClosed() {
		return nil, ErrCacheClosed
	}
	keys, err := c.storage.Keys()
	if err != nil {
		return nil, err
	}
	removed := make(map[models.RegistrableDomain]struct{})
	for _, k := range keys {
		host := hostOfPrefix(k)
		for _, d := range domains {
			if d.Matches(host) {
				if err := c.storage.Remove(k); err != nil {
					return nil, err
				}
				removed[d] = struct{}{}
				break
			}
		}
	}
	res := make([]models.RegistrableDomain, 0, len(removed))
	for d := range removed {
		res = append(res, d)
	}
	return res, nil
}

// Domains lists the registrable domains of every stored entry.
func (c *Cache) Domains() ([]models.RegistrableDomain, error) {
	keys, err := c.storage.Keys()
	if err != nil {
		return nil, err
	}
	seen := make(map[models.RegistrableDomain]struct{})
	var res []models.RegistrableDomain
	for _, k := range keys {
		d := models.RegistrableDomainFromHost(hostOfPrefix(k))
		if _, ok := seen[d]; ok || d.IsEmpty() {
			continue
		}
		seen[d] = struct{}{}
		res = append(res, d)
	}
	return res, nil
}

// StartSpeculativeLoad revalidates entry against a live fetch of req. Only one
// load may be outstanding per key; completion receives the entry to use, or
// nil when the load was canceled or failed.
func (c *Cache) StartSpeculativeLoad(req *http.Request, entry *Entry, completion func(*Entry)) (*SpeculativeLoad, error) {
	prefix := NewKey(req, nil).Prefix()

	c.mtx.Lock()
	if c.closing || c.closed {
		c.mtx.Unlock()
		return nil, ErrCacheClosed
	}
	if _, ok := c.loads[prefix]; ok {
		c.mtx.Unlock()
		return nil, ErrSpeculativeLoadInProgress
	}
	sl := newSpeculativeLoad(c, prefix, req, entry, completion)
	c.loads[prefix] = sl
	c.mtx.Unlock()

	c.l.With(zap.String("key", prefix)).Debug("starting speculative load")
	sl.start()
	return sl, nil
}

func (c *Cache) OutstandingLoads() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.loads)
}

// Close releases the storage once the outstanding speculative loads are done.
func (c *Cache) Close() error {
	c.mtx.Lock()
	if c.closing || c.closed {
		c.mtx.Unlock()
		return nil
	}
	c.closing = true
	pending := len(c.loads)
	c.mtx.Unlock()

	if pending > 0 {
		c.l.Infof("cache close deferred until %d speculative loads complete", pending)
		return nil
	}
	return c.release()
}

func (c *Cache) loadFinished(prefix string) {
	c.mtx.Lock()
	delete(c.loads, prefix)
	release := c.closing && !c.closed && len(c.loads) == 0
	c.mtx.Unlock()

	if release {
		if err := c.release(); err != nil {
			c.l.Warnw("failed to close cache storage", zap.Error(err))
		}
	}
}

func (c *Cache) release() error {
	c.mtx.Lock()
	c.closed = true
	c.mtx.Unlock()
	return c.storage.Close()
}

func (c *Cache) isClosed() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.closed
}

func hostOfPrefix(prefix string) string {
	_, rawURL, ok := strings.Cut(strings.TrimSuffix(prefix, "\t"), ":")
	if !ok {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
