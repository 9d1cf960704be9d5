package cache

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Decision int

const (
	// UseEntry serves the stored response as is.
	UseEntry Decision = iota
	// UseEntryAndRevalidate serves the stale response and revalidates in the background.
	UseEntryAndRevalidate
	// Revalidate requires validation before the stored response may be used.
	Revalidate
)

func (d Decision) String() string {
	switch d {
	case UseEntry:
		return "use"
	case UseEntryAndRevalidate:
		return "use-and-revalidate"
	default:
		return "revalidate"
	}
}

// cacheableByDefault status codes, RFC 9110 §15.1.
var cacheableByDefault = map[int]bool{
	200: true, 203: true, 204: true, 300: true, 301: true, 308: true,
	404: true, 405: true, 410: true, 414: true, 501: true,
}

type cacheControl map[string]string

func parseCacheControl(h http.Header) cacheControl {
	cc := make(cacheControl)
	for _, line := range h.Values("Cache-Control") {
		for _, directive := range strings.Split(line, ",") {
			directive = strings.TrimSpace(directive)
			if directive == "" {
				continue
			}
			name, val, _ := strings.Cut(directive, "=")
			cc[strings.ToLower(strings.TrimSpace(name))] = strings.Trim(strings.TrimSpace(val), `"`)
		}
	}
	return cc
}

func (cc cacheControl) has(name string) bool {
	_, ok := cc[name]
	return ok
}

func (cc cacheControl) seconds(name string) (time.Duration, bool) {
	v, ok := cc[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return time.Duration(n) * time.Second, true
}

// Storable reports whether a response to req may be stored.
func Storable(req *http.Request, res Response) bool {
	if req.Method != http.MethodGet {
		return false
	}
	if parseCacheControl(req.Header).has("no-store") || parseCacheControl(res.Header).has("no-store") {
		return false
	}
	return cacheableByDefault[res.StatusCode]
}

// FreshnessLifetime follows RFC 9111 §4.2.1 for a private cache.
func FreshnessLifetime(res Response) time.Duration {
	cc := parseCacheControl(res.Header)
	if cc.has("no-cache") {
		return 0
	}
	if v, ok := cc.seconds("max-age"); ok {
		return v
	}
	if expires, err := http.ParseTime(res.Header.Get("Expires")); err == nil {
		if date, err := http.ParseTime(res.Header.Get("Date")); err == nil {
			if d := expires.Sub(date); d > 0 {
				return d
			}
		}
	}
	return 0
}

// Decide tells how a stored entry may be used at now. A non-nil maxAgeCap
// bounds the freshness lifetime; staleWhileRevalidate enables serving within
// the response's stale-while-revalidate window.
func Decide(e *Entry, now time.Time, maxAgeCap *time.Duration, staleWhileRevalidate bool) Decision {
	lifetime := FreshnessLifetime(e.response)
	if maxAgeCap != nil && lifetime > *maxAgeCap {
		lifetime = *maxAgeCap
	}
	age := now.Sub(e.timestamp)
	if age < lifetime {
		return UseEntry
	}
	if staleWhileRevalidate {
		if window, ok := parseCacheControl(e.response.Header).seconds("stale-while-revalidate"); ok && age < lifetime+window {
			return UseEntryAndRevalidate
		}
	}
	return Revalidate
}
