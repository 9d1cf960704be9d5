package network

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/pkg/models"
)

const readChunkSize = 32 * 1024

// HTTPLoader runs loads with an http.Client, one goroutine per load.
type HTTPLoader struct {
	client *http.Client
	d      runloop.Dispatcher
	l      *zap.SugaredLogger
}

func NewHTTPLoader(client *http.Client, d runloop.Dispatcher, l *zap.Logger) *HTTPLoader {
	return &HTTPLoader{
		client: client,
		d:      d,
		l:      l.Sugar(),
	}
}

func (h *HTTPLoader) NewLoad(req *http.Request, c Client) Load {
	ctx, cancel := context.WithCancel(req.Context())
	return &HTTPLoad{
		loader: h,
		req:    req.WithContext(ctx),
		client: c,
		ctx:    ctx,
		cancel: cancel,
	}
}

type HTTPLoad struct {
	loader *HTTPLoader
	req    *http.Request
	ctx    context.Context
	cancel context.CancelFunc

	mtx      sync.Mutex
	client   Client
	started  bool
	canceled bool
	finished bool
}

func (ld *HTTPLoad) Request() *http.Request {
	return ld.req
}

func (ld *HTTPLoad) SetClient(c Client) {
	ld.mtx.Lock()
	defer ld.mtx.Unlock()
	ld.client = c
}

func (ld *HTTPLoad) IsFinished() bool {
	ld.mtx.Lock()
	defer ld.mtx.Unlock()
	return ld.finished || ld.canceled
}

func (ld *HTTPLoad) Start() {
	ld.mtx.Lock()
	if ld.started || ld.canceled {
		ld.mtx.Unlock()
		return
	}
	ld.started = true
	ld.mtx.Unlock()

	go ld.run()
}

func (ld *HTTPLoad) Cancel() {
	ld.mtx.Lock()
	defer ld.mtx.Unlock()
	if ld.canceled || ld.finished {
		return
	}
	ld.canceled = true
	ld.cancel()
}

func (ld *HTTPLoad) InvalidateAndCancel() {
	ld.Cancel()
}

func (ld *HTTPLoad) run() {
	client := *ld.loader.client
	client.CheckRedirect = func(redirect *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		prev := via[len(via)-1]
		var res *Response
		if redirect.Response != nil {
			res = &Response{
				StatusCode: redirect.Response.StatusCode,
				Header:     redirect.Response.Header.Clone(),
				URL:        prev.URL,
			}
		}
		ld.post(func(c Client) {
			c.WillSendRedirectedRequest(prev, redirect, res)
		})
		return nil
	}

	resp, err := client.Do(ld.req) //nolint:bodyclose // closed below
	if err != nil {
		ld.fail(models.WrapCanceledErr(err, "network load failed"))
		return
	}
	defer resp.Body.Close()

	res := &Response{StatusCode: resp.StatusCode, Header: resp.Header.Clone(), URL: resp.Request.URL}
	disposition, ok := ld.deliverResponse(res)
	if !ok || disposition == DispositionIgnore {
		ld.markFinished()
		return
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			ld.post(func(c Client) {
				c.DidReceiveData(data)
			})
		}
		if errors.Is(err, io.EOF) {
			ld.markFinished()
			ld.post(func(c Client) {
				c.DidFinishLoading()
			})
			return
		}
		if err != nil {
			ld.fail(models.WrapCanceledErr(err, "failed to read response body"))
			return
		}
	}
}

// deliverResponse hands the response to the client on the dispatcher and waits
// for its disposition.
func (ld *HTTPLoad) deliverResponse(res *Response) (Disposition, bool) {
	ch := make(chan Disposition, 1)
	ld.loader.d.Dispatch(func() {
		c, ok := ld.activeClient()
		if !ok {
			ch <- DispositionIgnore
			return
		}
		ch <- c.DidReceiveResponse(res)
	})
	select {
	case d := <-ch:
		return d, true
	case <-ld.ctx.Done():
		return DispositionIgnore, false
	}
}

func (ld *HTTPLoad) fail(err error) {
	ld.markFinished()
	ld.post(func(c Client) {
		c.DidFailLoading(err)
	})
}

func (ld *HTTPLoad) markFinished() {
	ld.mtx.Lock()
	defer ld.mtx.Unlock()
	ld.finished = true
}

// post delivers an event unless the load was canceled by the time it runs.
func (ld *HTTPLoad) post(fn func(c Client)) {
	ld.loader.d.Dispatch(func() {
		if c, ok := ld.activeClient(); ok {
			fn(c)
		}
	})
}

func (ld *HTTPLoad) activeClient() (Client, bool) {
	ld.mtx.Lock()
	defer ld.mtx.Unlock()
	if ld.canceled || ld.client == nil {
		return nil, false
	}
	return ld.client, true
}
