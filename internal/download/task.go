package download

import (
	"bytes"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/pkg/models"
)

// networkTask drives the load behind a download. Body bytes that arrive
// before the destination is decided are held until the file is open.
type networkTask struct {
	mgr *Manager
	id  models.DownloadID

	mtx      sync.Mutex
	load     network.Load
	response *network.Response
	pending  [][]byte
	dl       *Download
	loaded   bool
	failErr  error
	canceled bool
}

func newNetworkTask(m *Manager, id models.DownloadID) *networkTask {
	return &networkTask{mgr: m, id: id}
}

func (t *networkTask) DownloadID() models.DownloadID {
	return t.id
}

func (t *networkTask) Response() *network.Response {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.response
}

// attach binds the load. It reports false when the task was canceled first.
func (t *networkTask) attach(load network.Load) bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.canceled {
		return false
	}
	t.load = load
	return true
}

func (t *networkTask) Cancel() {
	t.mtx.Lock()
	if t.canceled {
		t.mtx.Unlock()
		return
	}
	t.canceled = true
	t.pending = nil
	load := t.load
	t.mtx.Unlock()

	if load != nil {
		load.Cancel()
	}
}

func (t *networkTask) isCanceled() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.canceled
}

// InvalidateAndCancel is called by the owning session when it goes away.
func (t *networkTask) InvalidateAndCancel() {
	t.mgr.cancelOwned(t)
	t.Cancel()
}

func (t *networkTask) WillSendRedirectedRequest(_ *http.Request, redirect *http.Request, _ *network.Response) {
	t.mgr.ContinueWillSendRequest(t.id, redirect)
}

func (t *networkTask) DidReceiveResponse(res *network.Response) network.Disposition {
	t.mtx.Lock()
	if t.canceled {
		t.mtx.Unlock()
		return network.DispositionIgnore
	}
	t.response = res
	t.mtx.Unlock()

	t.mgr.WillDecidePendingDownloadDestination(t, t.decided)
	return network.DispositionDownload
}

func (t *networkTask) DidReceiveData(data []byte) {
	t.mtx.Lock()
	dl := t.dl
	if dl == nil {
		if !t.canceled {
			t.pending = append(t.pending, bytes.Clone(data))
		}
		t.mtx.Unlock()
		return
	}
	t.mtx.Unlock()

	if err := dl.write(data); err != nil {
		t.Cancel()
		dl.didFail(err)
	}
}

func (t *networkTask) DidFinishLoading() {
	t.mtx.Lock()
	t.loaded = true
	dl := t.dl
	t.mtx.Unlock()

	if dl != nil {
		dl.didFinish()
	}
}

func (t *networkTask) DidFailLoading(err error) {
	t.mtx.Lock()
	t.failErr = err
	dl := t.dl
	t.mtx.Unlock()

	if dl != nil {
		dl.didFail(err)
		return
	}
	t.mgr.pendingTaskFailed(t, err)
}

// decided is the destination completion of the task's own loads.
func (t *networkTask) decided(disp network.Disposition) {
	if disp != network.DispositionDownload {
		t.Cancel()
		return
	}
	dl, ok := t.mgr.decidedDownload(t)
	if !ok || t.isCanceled() {
		t.Cancel()
		return
	}
	if err := dl.open(); err != nil {
		t.mgr.l.Warnw("failed to open download destination", zap.Stringer("download_id", t.id), zap.Error(err))
		t.Cancel()
		t.mgr.CancelDownload(t.id)
		return
	}

	t.mtx.Lock()
	pending := t.pending
	t.pending = nil
	t.dl = dl
	loaded, failErr := t.loaded, t.failErr
	t.mtx.Unlock()

	t.mgr.DataTaskBecameDownloadTask(t.id, dl)

	for _, b := range pending {
		if err := dl.write(b); err != nil {
			t.Cancel()
			dl.didFail(err)
			return
		}
	}
	switch {
	case failErr != nil:
		dl.didFail(failErr)
	case loaded:
		dl.didFinish()
	}
}
