package cache

import (
	"bytes"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
)

type LoadState int

const (
	StateCreated LoadState = iota
	StateAwaitingResponse
	StateRedirected
	StateBuffering
	StateCompleted
	StateCanceled
)

func (s LoadState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingResponse:
		return "awaiting-response"
	case StateRedirected:
		return "redirected"
	case StateBuffering:
		return "buffering"
	case StateCompleted:
		return "completed"
	default:
		return "canceled"
	}
}

func (s LoadState) terminal() bool {
	return s == StateCompleted || s == StateCanceled
}

// SpeculativeLoad races a live fetch against a cached entry and resolves with
// the entry to keep: the cached one refreshed by a 304, a new one built from
// the live response, or nil when canceled.
type SpeculativeLoad struct {
	cache    *Cache
	prefix   string
	entry    *Entry
	original *http.Request
	load     network.Load
	result   *runloop.Future[*Entry]

	mtx       sync.Mutex
	state     LoadState
	request   *http.Request
	response  *network.Response
	buffer    bytes.Buffer
	redirects int

	l *zap.SugaredLogger
}

func newSpeculativeLoad(c *Cache, prefix string, req *http.Request, entry *Entry, completion func(*Entry)) *SpeculativeLoad {
	sl := &SpeculativeLoad{
		cache:   c,
		prefix:  prefix,
		entry:   entry,
		request: req,
		result:  runloop.NewFuture(c.d, completion),
		l:       c.l.With(zap.String("key", prefix)),
	}
	if entry != nil {
		sl.original = entry.OriginalRequest()
	}

	validation := req.Clone(req.Context())
	if entry != nil {
		for name, vals := range entry.ValidationHeaders() {
			validation.Header[name] = vals
		}
	}
	sl.load = c.loader.NewLoad(validation, sl)
	return sl
}

func (sl *SpeculativeLoad) start() {
	sl.mtx.Lock()
	sl.state = StateAwaitingResponse
	sl.mtx.Unlock()
	sl.load.Start()
}

func (sl *SpeculativeLoad) State() LoadState {
	sl.mtx.Lock()
	defer sl.mtx.Unlock()
	return sl.state
}

func (sl *SpeculativeLoad) Redirects() int {
	sl.mtx.Lock()
	defer sl.mtx.Unlock()
	return sl.redirects
}

// BufferedBytes is the number of live body bytes held for a replacement entry.
func (sl *SpeculativeLoad) BufferedBytes() int {
	sl.mtx.Lock()
	defer sl.mtx.Unlock()
	return sl.buffer.Len()
}

func (sl *SpeculativeLoad) Result() *runloop.Future[*Entry] {
	return sl.result
}

// Cancel resolves the load with nil unless it already completed.
func (sl *SpeculativeLoad) Cancel() {
	if !sl.finish(StateCanceled, nil) {
		return
	}
	sl.load.Cancel()
	sl.l.Debug("speculative load canceled")
}

func (sl *SpeculativeLoad) InvalidateAndCancel() {
	sl.Cancel()
}

func (sl *SpeculativeLoad) WillSendRedirectedRequest(_ *http.Request, redirect *http.Request, _ *network.Response) {
	sl.mtx.Lock()
	defer sl.mtx.Unlock()
	if sl.state.terminal() {
		return
	}
	sl.state = StateRedirected
	sl.redirects++
	sl.request = redirect
	sl.state = StateAwaitingResponse
}

func (sl *SpeculativeLoad) DidReceiveResponse(res *network.Response) network.Disposition {
	sl.mtx.Lock()
	if sl.state.terminal() {
		sl.mtx.Unlock()
		return network.DispositionIgnore
	}
	sl.response = res
	current := sl.request
	sl.mtx.Unlock()

	if res.StatusCode == http.StatusNotModified {
		if sl.entry != nil && RequestsHeadersMatch(sl.original, current, sl.entry.Key().Vary) {
			refreshed := sl.entry.WithRefreshedMetadata(Response{StatusCode: res.StatusCode, Header: res.Header}, sl.cache.now())
			if err := sl.cache.Store(refreshed); err != nil {
				sl.l.Warnw("failed to store revalidated entry", zap.Error(err))
			}
			sl.finish(StateCompleted, refreshed)
			sl.l.Debug("cached entry revalidated")
			return network.DispositionIgnore
		}
		// nothing to build a replacement from
		sl.finish(StateCompleted, nil)
		return network.DispositionIgnore
	}

	sl.mtx.Lock()
	if sl.state.terminal() {
		sl.mtx.Unlock()
		return network.DispositionIgnore
	}
	sl.state = StateBuffering
	sl.mtx.Unlock()
	return network.DispositionUse
}

func (sl *SpeculativeLoad) DidReceiveData(data []byte) {
	sl.mtx.Lock()
	defer sl.mtx.Unlock()
	if sl.state != StateBuffering {
		return
	}
	sl.buffer.Write(data)
}

func (sl *SpeculativeLoad) DidFinishLoading() {
	sl.mtx.Lock()
	if sl.state != StateBuffering {
		sl.mtx.Unlock()
		return
	}
	req := sl.request
	res := Response{StatusCode: sl.response.StatusCode, Header: sl.response.Header}
	body := bytes.Clone(sl.buffer.Bytes())
	sl.mtx.Unlock()

	entry := NewEntry(NewKey(req, VaryHeaders(res.Header)), res, body, sl.cache.now())
	storable := Storable(req, res)
	if storable {
		if err := sl.cache.Store(entry); err != nil {
			sl.l.Warnw("failed to store replacement entry", zap.Error(err))
		}
	}
	// the cached entry is superseded even when the replacement cannot be kept
	if sl.entry != nil && (!storable || sl.entry.Key().Prefix() != entry.Key().Prefix()) {
		if err := sl.cache.Remove(sl.entry.Key()); err != nil {
			sl.l.Warnw("failed to remove superseded entry", zap.Error(err))
		}
	}
	sl.finish(StateCompleted, entry)
}

func (sl *SpeculativeLoad) DidFailLoading(err error) {
	sl.l.Debugw("speculative load failed", zap.Error(err))
	sl.finish(StateCanceled, nil)
}

// finish moves the load to a terminal state once and resolves the result.
func (sl *SpeculativeLoad) finish(state LoadState, entry *Entry) bool {
	sl.mtx.Lock()
	if sl.state.terminal() {
		sl.mtx.Unlock()
		return false
	}
	sl.state = state
	sl.mtx.Unlock()

	sl.cache.loadFinished(sl.prefix)
	sl.result.Resolve(entry)
	return true
}
