package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/internal/router"
	"github.com/selebrow/fetcher/mocks"
	"github.com/selebrow/fetcher/pkg/models"
)

func newDownloadContext(method, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/downloads/"+id, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames(router.DownloadParam)
		c.SetParamValues(id)
	}
	return c, rec
}

func TestDownloadsController_List(t *testing.T) {
	g := NewWithT(t)
	reg := new(mocks.DownloadRegistry)
	reg.EXPECT().List().Return([]download.Info{
		{ID: 1, SessionID: 2, State: download.WaitingForDestination, URL: "http://host/file.zip"},
		{ID: 3, SessionID: 2, State: download.Active, Path: "/dl/file.bin", BytesWritten: 42, Backgrounded: true},
	}).Once()

	dc := NewDownloadsController(reg, zaptest.NewLogger(t))
	c, rec := newDownloadContext(http.MethodGet, "")

	err := dc.List(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
              "total": 2,
              "downloads": [
                {"id": 1, "sessionId": 2, "state": "` + download.WaitingForDestination.String() + `", "url": "http://host/file.zip", "bytesWritten": 0},
                {"id": 3, "sessionId": 2, "state": "` + download.Active.String() + `", "path": "/dl/file.bin", "bytesWritten": 42, "backgrounded": true}
              ]
            }`))

	reg.AssertExpectations(t)
}

func TestDownloadsController_Cancel(t *testing.T) {
	g := NewWithT(t)
	reg := new(mocks.DownloadRegistry)
	reg.EXPECT().CancelDownload(models.DownloadID(9)).Return([]byte(`{"offset":5}`), true).Once()

	dc := NewDownloadsController(reg, zaptest.NewLogger(t))
	c, rec := newDownloadContext(http.MethodDelete, "9")

	err := dc.Cancel(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	// resume data travels base64 encoded
	g.Expect(rec.Body.String()).To(MatchJSON(`{"id": 9, "resumeData": "eyJvZmZzZXQiOjV9"}`))

	reg.AssertExpectations(t)
}

func TestDownloadsController_CancelNotFound(t *testing.T) {
	g := NewWithT(t)
	reg := new(mocks.DownloadRegistry)
	reg.EXPECT().CancelDownload(models.DownloadID(9)).Return(nil, false).Once()

	dc := NewDownloadsController(reg, zaptest.NewLogger(t))
	c, _ := newDownloadContext(http.MethodDelete, "9")

	err := dc.Cancel(c)
	g.Expect(errors.Is(err, models.ErrNotFound)).To(BeTrue())

	c, _ = newDownloadContext(http.MethodDelete, "x")
	err = dc.Cancel(c)
	g.Expect(errors.Is(err, models.ErrBadParameters)).To(BeTrue())

	reg.AssertExpectations(t)
}
