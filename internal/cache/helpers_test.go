package cache

import (
	"context"
	"net/http"
	"os"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
)

type fakeLoad struct {
	mtx      sync.Mutex
	req      *http.Request
	client   network.Client
	started  bool
	canceled bool
}

func (f *fakeLoad) Start() {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.started = true
}

func (f *fakeLoad) Cancel() {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.canceled = true
}

func (f *fakeLoad) SetClient(c network.Client) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.client = c
}

func (f *fakeLoad) Request() *http.Request {
	return f.req
}

func (f *fakeLoad) IsFinished() bool {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.canceled
}

func (f *fakeLoad) InvalidateAndCancel() {
	f.Cancel()
}

func (f *fakeLoad) isCanceled() bool {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.canceled
}

type fakeLoader struct {
	mtx   sync.Mutex
	loads []*fakeLoad
}

func (f *fakeLoader) NewLoad(req *http.Request, c network.Client) network.Load {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	ld := &fakeLoad{req: req, client: c}
	f.loads = append(f.loads, ld)
	return ld
}

func (f *fakeLoader) last() *fakeLoad {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.loads[len(f.loads)-1]
}

func newTestCache(t *testing.T, s Storage) (*Cache, *fakeLoader) {
	loop := runloop.NewLoop(zaptest.NewLogger(t))
	t.Cleanup(func() {
		_ = loop.Shutdown(context.Background())
	})
	loader := &fakeLoader{}
	return New(s, Options{SpeculativeRevalidation: true}, loader, loop, zaptest.NewLogger(t)), loader
}

func newRequest(t *testing.T, rawURL string, header map[string]string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	return req
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o600)
}
