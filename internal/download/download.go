package download

import (
	"net/http"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/pkg/models"
)

// Download is an active transfer written to a decided destination.
type Download struct {
	id        models.DownloadID
	sessionID models.SessionID
	path      string
	overwrite bool
	task      DataTask
	mgr       *Manager

	mtx          sync.Mutex
	file         *os.File
	written      int64
	offset       int64
	finished     bool
	backgrounded bool
	err          error
	resume       resumeInfo

	l *zap.SugaredLogger
}

func newDownload(m *Manager, rec *record, path string, overwrite bool) *Download {
	dl := &Download{
		id:        rec.id,
		sessionID: rec.sessionID,
		path:      path,
		overwrite: overwrite,
		task:      rec.task,
		mgr:       m,
		l:         m.l.With(zap.Stringer("download_id", rec.id)),
	}
	if rec.request != nil {
		dl.resume.URL = rec.request.URL.String()
	}
	if rec.task != nil {
		if res := rec.task.Response(); res != nil {
			dl.setResponse(res, rec.resume)
		}
	}
	return dl
}

func (d *Download) ID() models.DownloadID {
	return d.id
}

func (d *Download) SessionID() models.SessionID {
	return d.sessionID
}

func (d *Download) Path() string {
	return d.path
}

func (d *Download) BytesWritten() int64 {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.offset + d.written
}

func (d *Download) IsBackgrounded() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.backgrounded
}

// Err is the failure that ended the transfer, if any.
func (d *Download) Err() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.err
}

// setResponse decides whether the transfer continues a previous partial file.
func (d *Download) setResponse(res *network.Response, prev *resumeInfo) {
	if res.URL != nil {
		d.resume.URL = res.URL.String()
	}
	d.resume.ETag = res.Header.Get("ETag")
	d.resume.LastModified = res.Header.Get("Last-Modified")
	if prev != nil && res.StatusCode == http.StatusPartialContent {
		d.offset = prev.Offset
		d.resume.URL = prev.URL
	}
}

// open creates the destination file. A partial response appends to it.
func (d *Download) open() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	flags := os.O_CREATE | os.O_WRONLY
	switch {
	case d.offset > 0:
		flags |= os.O_APPEND
	case d.overwrite:
		flags |= os.O_TRUNC
	default:
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(d.path, flags, 0o644)
	if err != nil {
		return models.NewDestinationDeniedError(errors.Wrapf(err, "open %s", d.path))
	}
	d.file = f
	return nil
}

func (d *Download) write(b []byte) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if d.file == nil || d.finished {
		return nil
	}
	n, err := d.file.Write(b)
	d.written += int64(n)
	return err
}

func (d *Download) close(err error) bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if d.finished {
		return false
	}
	d.finished = true
	d.err = err
	if d.file != nil {
		if cerr := d.file.Close(); cerr != nil && d.err == nil {
			d.err = cerr
		}
		d.file = nil
	}
	return true
}

func (d *Download) didFinish() {
	if d.close(nil) {
		d.l.Infow("download finished", zap.String("path", d.path), zap.Int64("bytes", d.BytesWritten()))
		d.mgr.DownloadFinished(d)
	}
}

func (d *Download) didFail(err error) {
	if d.close(err) {
		d.l.Warnw("download failed", zap.Error(err))
		d.mgr.DownloadFinished(d)
	}
}

// cancel stops the transfer and returns data to resume it later.
func (d *Download) cancel() []byte {
	if d.task != nil {
		d.task.Cancel()
	}
	d.close(models.ErrTransportCanceled)
	d.mtx.Lock()
	defer d.mtx.Unlock()
	info := d.resume
	info.Offset = d.offset + d.written
	return info.encode()
}

func (d *Download) setBackgrounded(v bool) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.backgrounded = v
}
