package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/selebrow/fetcher/internal/common/clock"
)

const PrefetchEntryLifetime = 5 * time.Minute

// PrefetchedResource is a response fetched ahead of a navigation.
type PrefetchedResource struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Redirect is set when the prefetch ended in a redirect.
	Redirect *http.Request
	Stored   time.Time
}

// PrefetchCache keeps prefetched resources keyed by URL for a fixed lifetime.
type PrefetchCache struct {
	mtx      sync.Mutex
	entries  map[string]*PrefetchedResource
	timer    *time.Timer
	lifetime time.Duration
	now      clock.NowFunc
}

func NewPrefetchCache(lifetime time.Duration, now clock.NowFunc) *PrefetchCache {
	return &PrefetchCache{
		entries:  make(map[string]*PrefetchedResource),
		lifetime: lifetime,
		now:      now,
	}
}

func (c *PrefetchCache) Store(url string, res *PrefetchedResource) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	res.Stored = c.now()
	c.entries[url] = res
	if c.timer == nil {
		c.timer = time.AfterFunc(c.lifetime, c.evictExpired)
	}
}

// Take removes and returns the resource stored for url.
func (c *PrefetchCache) Take(url string) (*PrefetchedResource, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	res, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	delete(c.entries, url)
	if c.expired(res, c.now()) {
		return nil, false
	}
	return res, true
}

func (c *PrefetchCache) Clear() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	clear(c.entries)
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *PrefetchCache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.entries)
}

func (c *PrefetchCache) expired(res *PrefetchedResource, now time.Time) bool {
	return !now.Before(res.Stored.Add(c.lifetime))
}

func (c *PrefetchCache) evictExpired() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.timer = nil
	now := c.now()
	var oldest time.Time
	for url, res := range c.entries {
		if c.expired(res, now) {
			delete(c.entries, url)
			continue
		}
		if oldest.IsZero() || res.Stored.Before(oldest) {
			oldest = res.Stored
		}
	}
	if !oldest.IsZero() {
		c.timer = time.AfterFunc(oldest.Add(c.lifetime).Sub(now), c.evictExpired)
	}
}
