package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/runloop"
)

type recordingClient struct {
	mtx         sync.Mutex
	redirects   []string
	response    *Response
	data        []byte
	finished    chan struct{}
	failed      chan error
	disposition Disposition
}

func newRecordingClient(d Disposition) *recordingClient {
	return &recordingClient{
		finished:    make(chan struct{}),
		failed:      make(chan error, 1),
		disposition: d,
	}
}

func (r *recordingClient) WillSendRedirectedRequest(_ *http.Request, redirect *http.Request, _ *Response) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.redirects = append(r.redirects, redirect.URL.Path)
}

func (r *recordingClient) DidReceiveResponse(res *Response) Disposition {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.response = res
	return r.disposition
}

func (r *recordingClient) DidReceiveData(data []byte) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.data = append(r.data, data...)
}

func (r *recordingClient) DidFinishLoading() {
	close(r.finished)
}

func (r *recordingClient) DidFailLoading(err error) {
	r.failed <- err
}

func newTestLoader(t *testing.T) *HTTPLoader {
	loop := runloop.NewLoop(zaptest.NewLogger(t))
	t.Cleanup(func() {
		_ = loop.Shutdown(context.Background())
	})
	return NewHTTPLoader(http.DefaultClient, loop, zaptest.NewLogger(t))
}

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte("payload"))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPLoad_RedirectAndBody(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t)
	loader := newTestLoader(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/start", http.NoBody)
	g.Expect(err).ToNot(HaveOccurred())

	c := newRecordingClient(DispositionUse)
	ld := loader.NewLoad(req, c)
	ld.Start()

	g.Eventually(c.finished).Should(BeClosed())
	c.mtx.Lock()
	defer c.mtx.Unlock()
	g.Expect(c.redirects).To(Equal([]string{"/final"}))
	g.Expect(c.response.StatusCode).To(Equal(http.StatusOK))
	g.Expect(c.response.Header.Get("ETag")).To(Equal(`"v1"`))
	g.Expect(string(c.data)).To(Equal("payload"))
	g.Expect(ld.IsFinished()).To(BeTrue())
}

func TestHTTPLoad_Ignore(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t)
	loader := newTestLoader(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/final", http.NoBody)
	g.Expect(err).ToNot(HaveOccurred())

	c := newRecordingClient(DispositionIgnore)
	ld := loader.NewLoad(req, c)
	ld.Start()

	g.Eventually(ld.IsFinished).Should(BeTrue())
	g.Consistently(c.finished, 50*time.Millisecond).ShouldNot(BeClosed())
	c.mtx.Lock()
	defer c.mtx.Unlock()
	g.Expect(c.data).To(BeEmpty())
}

func TestHTTPLoad_CancelStopsEvents(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t)
	loader := newTestLoader(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/slow", http.NoBody)
	g.Expect(err).ToNot(HaveOccurred())

	c := newRecordingClient(DispositionUse)
	ld := loader.NewLoad(req, c)
	ld.Start()

	g.Eventually(func() *Response {
		c.mtx.Lock()
		defer c.mtx.Unlock()
		return c.response
	}).ShouldNot(BeNil())

	ld.InvalidateAndCancel()
	g.Expect(ld.IsFinished()).To(BeTrue())
	g.Consistently(c.failed, 50*time.Millisecond).ShouldNot(Receive())
	g.Consistently(c.finished, 50*time.Millisecond).ShouldNot(BeClosed())
}

func TestHTTPLoad_Failure(t *testing.T) {
	g := NewWithT(t)
	loader := newTestLoader(t)

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/unreachable", http.NoBody)
	g.Expect(err).ToNot(HaveOccurred())

	c := newRecordingClient(DispositionUse)
	loader.NewLoad(req, c).Start()

	g.Eventually(c.failed).Should(Receive(MatchError(ContainSubstring("network load failed"))))
}

func TestHTTPLoad_SetClient(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t)
	loader := newTestLoader(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/final", http.NoBody)
	g.Expect(err).ToNot(HaveOccurred())

	first := newRecordingClient(DispositionUse)
	second := newRecordingClient(DispositionUse)
	ld := loader.NewLoad(req, first)
	ld.SetClient(second)
	ld.Start()

	g.Eventually(second.finished).Should(BeClosed())
	g.Expect(first.finished).ToNot(BeClosed())
}
