package cache

import (
	"net/http"
	"net/textproto"
	"slices"
	"strings"
)

const varyAny = "*"

// Key identifies a cached response: the request method and URL, plus the
// request header values the response varies on.
type Key struct {
	Method  string
	URL     string
	Vary    []string
	Headers http.Header
}

// NewKey builds the key of req for a response that varies on the given header names.
func NewKey(req *http.Request, vary []string) Key {
	names := normalizeVary(vary)
	return Key{
		Method:  req.Method,
		URL:     req.URL.String(),
		Vary:    names,
		Headers: CacheImpactingHeaders(req.Header, names),
	}
}

// Prefix is the storage identity of the key: one variant is kept per method and URL.
func (k Key) Prefix() string {
	return k.Method + ":" + k.URL + "\t"
}

func (k Key) String() string {
	var sb strings.Builder
	sb.WriteString(k.Prefix())
	for _, name := range k.Vary {
		if name == varyAny {
			sb.WriteString("\n*")
			continue
		}
		if vals := k.Headers.Values(name); len(vals) > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.ToLower(name))
			sb.WriteString(": ")
			sb.WriteString(strings.Join(vals, ", "))
		}
	}
	return sb.String()
}

func (k Key) varyAny() bool {
	return slices.Contains(k.Vary, varyAny)
}

// VaryHeaders returns the header names listed in the Vary fields of a response.
func VaryHeaders(h http.Header) []string {
	var names []string
	for _, line := range h.Values("Vary") {
		for _, name := range strings.Split(line, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return normalizeVary(names)
}

// CacheImpactingHeaders extracts the subset of h named by vary.
func CacheImpactingHeaders(h http.Header, vary []string) http.Header {
	subset := make(http.Header, len(vary))
	for _, name := range vary {
		if name == varyAny {
			continue
		}
		if vals := h.Values(name); len(vals) > 0 {
			subset[textproto.CanonicalMIMEHeaderKey(name)] = normalizeValues(vals)
		}
	}
	return subset
}

// RequestsHeadersMatch reports whether the request that produced a cached
// response and the actual request agree on every header the response varies on.
// A response varying on "*" never matches.
func RequestsHeadersMatch(original, actual *http.Request, vary []string) bool {
	names := normalizeVary(vary)
	if slices.Contains(names, varyAny) {
		return false
	}
	a := CacheImpactingHeaders(original.Header, names)
	b := CacheImpactingHeaders(actual.Header, names)
	for _, name := range names {
		if !slices.Equal(a.Values(name), b.Values(name)) {
			return false
		}
	}
	return true
}

func normalizeVary(vary []string) []string {
	names := make([]string, 0, len(vary))
	for _, name := range vary {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if name != varyAny {
			name = textproto.CanonicalMIMEHeaderKey(name)
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// normalizeValues folds list-valued fields so "a,b" and "a, b" compare equal.
func normalizeValues(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, item := range strings.Split(v, ",") {
			out = append(out, strings.TrimSpace(item))
		}
	}
	return out
}
