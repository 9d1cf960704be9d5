package cache

import (
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/selebrow/fetcher/internal/network"
)

func cachedEntry(t *testing.T) *Entry {
	req := newRequest(t, "https://site.example/app.js", map[string]string{"Accept-Language": "en"})
	return NewEntry(
		NewKey(req, []string{"Accept-Language"}),
		Response{StatusCode: http.StatusOK, Header: http.Header{"Etag": {`"v1"`}, "Vary": {"Accept-Language"}}},
		[]byte("cached body"),
		time.UnixMilli(1000),
	)
}

func startLoad(t *testing.T, c *Cache, req *http.Request, entry *Entry) (*SpeculativeLoad, chan *Entry) {
	results := make(chan *Entry, 2)
	sl, err := c.StartSpeculativeLoad(req, entry, func(e *Entry) {
		results <- e
	})
	if err != nil {
		t.Fatal(err)
	}
	return sl, results
}

func TestSpeculativeLoad_NotModifiedReusesBody(t *testing.T) {
	g := NewWithT(t)
	c, loader := newTestCache(t, NewMemoryStorage())
	entry := cachedEntry(t)

	req := newRequest(t, "https://site.example/app.js", map[string]string{"Accept-Language": "en"})
	sl, results := startLoad(t, c, req, entry)
	ld := loader.last()

	g.Expect(sl.State()).To(Equal(StateAwaitingResponse))
	g.Expect(ld.started).To(BeTrue())
	g.Expect(ld.req.Header.Get("If-None-Match")).To(Equal(`"v1"`))
	g.Expect(req.Header.Get("If-None-Match")).To(BeEmpty())

	disposition := sl.DidReceiveResponse(&network.Response{
		StatusCode: http.StatusNotModified,
		Header:     http.Header{"Cache-Control": {"max-age=600"}},
	})
	g.Expect(disposition).To(Equal(network.DispositionIgnore))
	g.Expect(sl.State()).To(Equal(StateCompleted))
	g.Expect(sl.BufferedBytes()).To(BeZero())

	var got *Entry
	g.Eventually(results).Should(Receive(&got))
	g.Expect(got).ToNot(BeIdenticalTo(entry))
	g.Expect(got.Body()).To(Equal(entry.Body()))
	g.Expect(got.Response().Header.Get("Cache-Control")).To(Equal("max-age=600"))

	stored, err := c.Retrieve(req)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(stored.Response().Header.Get("Cache-Control")).To(Equal("max-age=600"))
	g.Expect(c.OutstandingLoads()).To(BeZero())
}

func TestSpeculativeLoad_HeaderMismatchBuffersBody(t *testing.T) {
	g := NewWithT(t)
	c, _ := newTestCache(t, NewMemoryStorage())
	entry := cachedEntry(t)

	req := newRequest(t, "https://site.example/app.js", map[string]string{"Accept-Language": "de"})
	sl, results := startLoad(t, c, req, entry)

	disposition := sl.DidReceiveResponse(&network.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Vary": {"Accept-Language"}, "Cache-Control": {"max-age=60"}},
	})
	g.Expect(disposition).To(Equal(network.DispositionUse))
	g.Expect(sl.State()).To(Equal(StateBuffering))

	sl.DidReceiveData([]byte("new "))
	sl.DidReceiveData([]byte("body"))
	g.Expect(sl.BufferedBytes()).To(Equal(8))
	sl.DidFinishLoading()

	var got *Entry
	g.Eventually(results).Should(Receive(&got))
	g.Expect(string(got.Body())).To(Equal("new body"))
	g.Expect(got.Key().Headers.Get("Accept-Language")).To(Equal("de"))

	stored, err := c.Retrieve(req)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(stored.Body())).To(Equal("new body"))
}

func TestSpeculativeLoad_UnstorableReplacementDropsEntry(t *testing.T) {
	g := NewWithT(t)
	c, _ := newTestCache(t, NewMemoryStorage())
	entry := cachedEntry(t)
	g.Expect(c.Store(entry)).To(Succeed())

	req := newRequest(t, "https://site.example/app.js", map[string]string{"Accept-Language": "en"})
	stored, err := c.Retrieve(req)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(stored.Body())).To(Equal("cached body"))

	sl, results := startLoad(t, c, req, entry)
	sl.DidReceiveResponse(&network.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Cache-Control": {"no-store"}},
	})
	sl.DidReceiveData([]byte("new body"))
	sl.DidFinishLoading()

	var got *Entry
	g.Eventually(results).Should(Receive(&got))
	g.Expect(string(got.Body())).To(Equal("new body"))

	stored, err = c.Retrieve(req)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(stored).To(BeNil())
}

func TestSpeculativeLoad_NotModifiedWithMismatch(t *testing.T) {
	g := NewWithT(t)
	c, _ := newTestCache(t, NewMemoryStorage())

	req := newRequest(t, "https://site.example/app.js", map[string]string{"Accept-Language": "de"})
	sl, results := startLoad(t, c, req, cachedEntry(t))

	sl.DidReceiveResponse(&network.Response{StatusCode: http.StatusNotModified, Header: http.Header{}})
	g.Eventually(results).Should(Receive(BeNil()))
	g.Expect(sl.State()).To(Equal(StateCompleted))
}

func TestSpeculativeLoad_Redirect(t *testing.T) {
	g := NewWithT(t)
	c, _ := newTestCache(t, NewMemoryStorage())

	req := newRequest(t, "https://site.example/app.js", nil)
	sl, results := startLoad(t, c, req, nil)

	redirect := newRequest(t, "https://cdn.site.example/app.js", nil)
	sl.WillSendRedirectedRequest(req, redirect, &network.Response{StatusCode: http.StatusFound, Header: http.Header{}})
	g.Expect(sl.State()).To(Equal(StateAwaitingResponse))
	g.Expect(sl.Redirects()).To(Equal(1))

	sl.DidReceiveResponse(&network.Response{StatusCode: http.StatusOK, Header: http.Header{}})
	sl.DidReceiveData([]byte("x"))
	sl.DidFinishLoading()

	var got *Entry
	g.Eventually(results).Should(Receive(&got))
	g.Expect(got.Key().URL).To(Equal("https://cdn.site.example/app.js"))
}

func TestSpeculativeLoad_CancelFiresOnce(t *testing.T) {
	g := NewWithT(t)
	c, loader := newTestCache(t, NewMemoryStorage())

	req := newRequest(t, "https://site.example/app.js", nil)
	sl, results := startLoad(t, c, req, cachedEntry(t))

	sl.Cancel()
	sl.Cancel()
	g.Expect(sl.State()).To(Equal(StateCanceled))
	g.Expect(loader.last().isCanceled()).To(BeTrue())

	// late network events are ignored
	g.Expect(sl.DidReceiveResponse(&network.Response{StatusCode: http.StatusOK})).To(Equal(network.DispositionIgnore))
	sl.DidFinishLoading()

	g.Eventually(results).Should(Receive(BeNil()))
	g.Consistently(results, 50*time.Millisecond).ShouldNot(Receive())
}

func TestSpeculativeLoad_CompletionIsAsync(t *testing.T) {
	g := NewWithT(t)
	c, _ := newTestCache(t, NewMemoryStorage())

	block := make(chan struct{})
	c.d.Dispatch(func() {
		<-block
	})

	req := newRequest(t, "https://site.example/app.js", nil)
	sl, results := startLoad(t, c, req, nil)
	sl.Cancel()
	g.Expect(results).ToNot(Receive())

	close(block)
	g.Eventually(results).Should(Receive(BeNil()))
}

func TestSpeculativeLoad_FailureCancels(t *testing.T) {
	g := NewWithT(t)
	c, _ := newTestCache(t, NewMemoryStorage())

	req := newRequest(t, "https://site.example/app.js", nil)
	sl, results := startLoad(t, c, req, nil)
	sl.DidReceiveResponse(&network.Response{StatusCode: http.StatusOK, Header: http.Header{}})
	sl.DidFailLoading(http.ErrHandlerTimeout)

	g.Eventually(results).Should(Receive(BeNil()))
	g.Expect(sl.State()).To(Equal(StateCanceled))
}
