package cache

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Response is the metadata part of a cached HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Entry is an immutable cached response. Revalidation produces a new Entry
// rather than updating this one.
type Entry struct {
	key       Key
	response  Response
	body      []byte
	timestamp time.Time
}

func NewEntry(key Key, res Response, body []byte, timestamp time.Time) *Entry {
	return &Entry{
		key: key,
		response: Response{
			StatusCode: res.StatusCode,
			Header:     res.Header.Clone(),
		},
		body:      body,
		timestamp: timestamp,
	}
}

func (e *Entry) Key() Key {
	return e.key
}

func (e *Entry) Response() Response {
	return Response{
		StatusCode: e.response.StatusCode,
		Header:     e.response.Header.Clone(),
	}
}

// Body is shared between an entry and the entries refreshed from it; callers
// must not modify it.
func (e *Entry) Body() []byte {
	return e.body
}

func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// OriginalRequest rebuilds a request equivalent, for caching purposes, to the
// one that produced the entry.
func (e *Entry) OriginalRequest() *http.Request {
	u, err := url.Parse(e.key.URL)
	if err != nil {
		u = &url.URL{Path: e.key.URL}
	}
	return &http.Request{
		Method: e.key.Method,
		URL:    u,
		Header: e.key.Headers.Clone(),
	}
}

// WithRefreshedMetadata returns a copy of the entry updated from a 304 response:
// stored header fields are replaced by the ones the validation response carries.
func (e *Entry) WithRefreshedMetadata(notModified Response, timestamp time.Time) *Entry {
	header := e.response.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	for name, vals := range notModified.Header {
		if skipOnUpdate(name) {
			continue
		}
		header[name] = append([]string(nil), vals...)
	}
	return &Entry{
		key:       e.key,
		response:  Response{StatusCode: e.response.StatusCode, Header: header},
		body:      e.body,
		timestamp: timestamp,
	}
}

// ValidationHeaders returns the conditional request headers that revalidate the entry.
func (e *Entry) ValidationHeaders() http.Header {
	h := make(http.Header)
	if etag := e.response.Header.Get("ETag"); etag != "" {
		h.Set("If-None-Match", etag)
	}
	if lm := e.response.Header.Get("Last-Modified"); lm != "" {
		h.Set("If-Modified-Since", lm)
	}
	return h
}

func skipOnUpdate(name string) bool {
	switch strings.ToLower(name) {
	case "content-length", "content-encoding", "transfer-encoding", "content-range":
		return true
	}
	return false
}
