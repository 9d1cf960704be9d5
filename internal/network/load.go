package network

import (
	"net/http"
	"net/url"
)

type Disposition int

const (
	// DispositionUse continues delivering the body to the load's client.
	DispositionUse Disposition = iota
	// DispositionIgnore stops the load; no further events are delivered.
	DispositionIgnore
	// DispositionDownload continues delivering the body for download handling.
	DispositionDownload
)

// Response is the header part of a network response.
type Response struct {
	StatusCode int
	Header     http.Header
	URL        *url.URL
}

// Client receives the events of a Load. All events are delivered on the
// loader's dispatcher, in order.
type Client interface {
	WillSendRedirectedRequest(req *http.Request, redirect *http.Request, redirectResponse *Response)
	DidReceiveResponse(res *Response) Disposition
	DidReceiveData(data []byte)
	DidFinishLoading()
	DidFailLoading(err error)
}

// Load is a single live fetch.
type Load interface {
	Start()
	// Cancel stops event delivery. The fetch itself winds down asynchronously.
	Cancel()
	// SetClient redirects the remaining events to another client.
	SetClient(c Client)
	Request() *http.Request
	IsFinished() bool
	// InvalidateAndCancel lets a session cancel the load in bulk.
	InvalidateAndCancel()
}

type Loader interface {
	NewLoad(req *http.Request, c Client) Load
}
