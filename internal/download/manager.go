package download

import (
	"cmp"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

const defaultFilename = "download"

type record struct {
	id            models.DownloadID
	sessionID     models.SessionID
	state         State
	request       *http.Request
	suggestedName string

	task       DataTask
	ownTask    *networkTask
	registered bool
	completion *runloop.Future[network.Disposition]
	download   *Download

	// set for resumed downloads
	resume      *resumeInfo
	destination *Destination
}

// Info is a snapshot of a tracked download.
type Info struct {
	ID           models.DownloadID `json:"id"`
	SessionID    models.SessionID  `json:"sessionId"`
	State        State             `json:"state"`
	URL          string            `json:"url,omitempty"`
	Path         string            `json:"path,omitempty"`
	BytesWritten int64             `json:"bytesWritten"`
	Backgrounded bool              `json:"backgrounded,omitempty"`
}

// Manager tracks every download from its first request to its end. Records
// live in an arena. Every record is reachable by id, and records waiting for
// or holding a destination decision are also reachable by their data task.
type Manager struct {
	client   Client
	sessions SessionLookup
	loader   network.Loader
	d        runloop.Dispatcher

	mtx          sync.Mutex
	arena        []*record
	free         []int
	byID         map[models.DownloadID]int
	byTask       map[DataTask]int
	backgrounded bool

	l *zap.SugaredLogger
}

func NewManager(client Client, sessions SessionLookup, loader network.Loader, d runloop.Dispatcher, l *zap.Logger) *Manager {
	return &Manager{
		client:   client,
		sessions: sessions,
		loader:   loader,
		d:        d,
		byID:     make(map[models.DownloadID]int),
		byTask:   make(map[DataTask]int),
		l:        l.Sugar(),
	}
}

// insert tracks rec. Ids are chosen by the caller and must be unique.
func (m *Manager) insert(rec *record) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if _, ok := m.byID[rec.id]; ok {
		panic(fmt.Sprintf("download %d is already tracked", rec.id))
	}
	var slot int
	if n := len(m.free); n > 0 {
		slot = m.free[n-1]
		m.free = m.free[:n-1]
		m.arena[slot] = rec
	} else {
		slot = len(m.arena)
		m.arena = append(m.arena, rec)
	}
	m.byID[rec.id] = slot
}

func (m *Manager) lookupLocked(id models.DownloadID) (*record, bool) {
	slot, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return m.arena[slot], true
}

func (m *Manager) removeLocked(rec *record, final State) {
	slot, ok := m.byID[rec.id]
	if !ok || m.arena[slot] != rec {
		return
	}
	delete(m.byID, rec.id)
	if rec.task != nil && rec.state.keyedByTask() {
		delete(m.byTask, rec.task)
	}
	m.arena[slot] = nil
	m.free = append(m.free, slot)
	rec.state = final
}

func (m *Manager) session(id models.SessionID) (*session.Session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, models.NewNotFoundError(errors.Errorf("session %d not found", id))
	}
	if s.IsInvalidated() {
		return nil, models.NewSessionInvalidatedError(errors.Errorf("session %d is invalidated", id))
	}
	return s, nil
}

// start tracks rec as Pending and begins loading its request.
func (m *Manager) start(s *session.Session, rec *record) error {
	task := newNetworkTask(m, rec.id)
	rec.task = task
	rec.ownTask = task

	m.insert(rec)

	if err := s.RegisterTask(task); err != nil {
		m.mtx.Lock()
		m.removeLocked(rec, Canceled)
		m.mtx.Unlock()
		return err
	}
	m.mtx.Lock()
	rec.registered = true
	m.mtx.Unlock()

	load := m.loader.NewLoad(rec.request, task)
	if task.attach(load) {
		load.Start()
	}
	return nil
}

// StartDownload begins a download of req. The destination is decided once
// the response arrives.
func (m *Manager) StartDownload(sessionID models.SessionID, id models.DownloadID, req *http.Request, suggestedName string) error {
	s, err := m.session(sessionID)
	if err != nil {
		return err
	}
	rec := &record{
		id:            id,
		sessionID:     sessionID,
		state:         Pending,
		request:       req,
		suggestedName: suggestedName,
	}
	if err := m.start(s, rec); err != nil {
		return err
	}
	m.l.Infow("download started",
		zap.Stringer("download_id", id),
		zap.Stringer("session_id", sessionID),
		zap.Stringer("url", req.URL),
	)
	return nil
}

// ResumeDownload continues a canceled download from its resume data into
// path. The destination is pre-decided and may be overwritten.
func (m *Manager) ResumeDownload(
	sessionID models.SessionID,
	id models.DownloadID,
	resumeData []byte,
	path string,
	handle *sandbox.Handle,
) error {
	info, err := decodeResumeData(resumeData)
	if err != nil {
		return err
	}
	req, err := info.request()
	if err != nil {
		return err
	}
	s, err := m.session(sessionID)
	if err != nil {
		return err
	}
	rec := &record{
		id:          id,
		sessionID:   sessionID,
		state:       Pending,
		request:     req,
		resume:      &info,
		destination: &Destination{Path: path, Handle: handle, AllowOverwrite: true},
	}
	if err := m.start(s, rec); err != nil {
		return err
	}
	m.l.Infow("download resumed",
		zap.Stringer("download_id", id),
		zap.Stringer("session_id", sessionID),
		zap.Int64("offset", info.Offset),
	)
	return nil
}

// ConvertNetworkLoadToDownload takes over an ordinary load whose response
// has arrived. Body bytes delivered after the call belong to the download.
func (m *Manager) ConvertNetworkLoadToDownload(
	sessionID models.SessionID,
	id models.DownloadID,
	load network.Load,
	completion func(network.Disposition),
	req *http.Request,
	res *network.Response,
) error {
	fail := func(err error) error {
		if completion != nil {
			m.d.Dispatch(func() { completion(network.DispositionIgnore) })
		}
		return err
	}
	if load.IsFinished() {
		return fail(models.NewTransportCanceledError(errors.Errorf("load for download %d already finished", id)))
	}
	s, err := m.session(sessionID)
	if err != nil {
		return fail(err)
	}

	task := newNetworkTask(m, id)
	task.response = res
	rec := &record{
		id:        id,
		sessionID: sessionID,
		state:     Pending,
		request:   req,
		task:      task,
		ownTask:   task,
	}
	m.insert(rec)

	if err := s.RegisterTask(task); err != nil {
		m.mtx.Lock()
		m.removeLocked(rec, Canceled)
		m.mtx.Unlock()
		return fail(err)
	}
	m.mtx.Lock()
	rec.registered = true
	m.mtx.Unlock()

	task.attach(load)
	load.SetClient(task)

	m.WillDecidePendingDownloadDestination(task, func(disp network.Disposition) {
		if completion != nil {
			completion(disp)
		}
		task.decided(disp)
	})
	return nil
}

// ContinueWillSendRequest records the redirected request of a pending download.
func (m *Manager) ContinueWillSendRequest(id models.DownloadID, req *http.Request) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	rec, ok := m.lookupLocked(id)
	if !ok || rec.state != Pending {
		m.l.Warnw("redirect for unknown pending download", zap.Stringer("download_id", id))
		return
	}
	rec.request = req
}

// WillDecidePendingDownloadDestination moves a pending download to waiting
// for its destination. completion fires exactly once, on the dispatcher.
func (m *Manager) WillDecidePendingDownloadDestination(task DataTask, completion func(network.Disposition)) {
	future := runloop.NewFuture(m.d, completion)
	id := task.DownloadID()

	m.mtx.Lock()
	rec, ok := m.lookupLocked(id)
	if !ok || rec.state != Pending {
		m.mtx.Unlock()
		m.l.Warnw("destination requested for unknown pending download", zap.Stringer("download_id", id))
		future.Resolve(network.DispositionIgnore)
		return
	}
	rec.state = WaitingForDestination
	rec.task = task
	rec.completion = future
	m.byTask[task] = m.byID[id]
	dest := rec.destination
	res := task.Response()
	name := suggestedFilename(rec.suggestedName, res, rec.request)
	m.mtx.Unlock()

	if dest != nil {
		if err := m.ContinueDecidePendingDownloadDestination(id, dest.Path, dest.Handle, dest.AllowOverwrite); err != nil {
			m.l.Warnw("resumed download destination rejected", zap.Stringer("download_id", id), zap.Error(err))
		}
		return
	}

	var header http.Header
	if res != nil {
		header = res.Header
	}
	m.client.DecideDestination(id, name, header, func(d Destination) {
		if err := m.ContinueDecidePendingDownloadDestination(id, d.Path, d.Handle, d.AllowOverwrite); err != nil {
			m.l.Warnw("download destination rejected", zap.Stringer("download_id", id), zap.Error(err))
		}
	})
}

// ContinueDecidePendingDownloadDestination validates the chosen destination.
// An invalid one cancels the download and resolves its completion with
// DispositionIgnore.
func (m *Manager) ContinueDecidePendingDownloadDestination(
	id models.DownloadID,
	path string,
	handle *sandbox.Handle,
	allowOverwrite bool,
) error {
	m.mtx.Lock()
	rec, ok := m.lookupLocked(id)
	if !ok || rec.state != WaitingForDestination {
		m.mtx.Unlock()
		return models.NewNotFoundError(errors.Errorf("download %d is not waiting for a destination", id))
	}
	if err := validateDestination(path, handle, allowOverwrite); err != nil {
		m.removeLocked(rec, Canceled)
		m.mtx.Unlock()
		m.discard(rec)
		return err
	}
	rec.state = DestinationDecided
	rec.download = newDownload(m, rec, path, allowOverwrite)
	completion := rec.completion
	m.mtx.Unlock()

	completion.Resolve(network.DispositionDownload)
	return nil
}

// DataTaskBecameDownloadTask makes a decided download active.
func (m *Manager) DataTaskBecameDownloadTask(id models.DownloadID, dl *Download) {
	m.mtx.Lock()
	rec, ok := m.lookupLocked(id)
	if ok && rec.state == Active {
		m.mtx.Unlock()
		panic(fmt.Sprintf("download %d is already active", id))
	}
	if !ok || rec.state != DestinationDecided {
		m.mtx.Unlock()
		m.l.Warnw("data task became download without a decided destination", zap.Stringer("download_id", id))
		return
	}
	delete(m.byTask, rec.task)
	rec.state = Active
	rec.download = dl
	dl.setBackgrounded(m.backgrounded)
	m.mtx.Unlock()

	m.client.DidCreateDownload()
}

// DownloadFinished forgets an active download once its transfer ended.
func (m *Manager) DownloadFinished(dl *Download) {
	m.mtx.Lock()
	rec, ok := m.lookupLocked(dl.ID())
	if !ok || rec.state != Active || rec.download != dl {
		m.mtx.Unlock()
		return
	}
	m.removeLocked(rec, Finished)
	m.mtx.Unlock()

	m.unregister(rec)
	m.client.DidDestroyDownload()
}

// CancelDownload stops the download with id. Active downloads return their
// resume data. It reports false when nothing was tracked under id.
func (m *Manager) CancelDownload(id models.DownloadID) ([]byte, bool) {
	m.mtx.Lock()
	rec, ok := m.lookupLocked(id)
	if !ok {
		m.mtx.Unlock()
		return nil, false
	}
	wasActive := rec.state == Active
	m.removeLocked(rec, Canceled)
	m.mtx.Unlock()

	if !wasActive {
		m.discard(rec)
		return nil, true
	}
	data := rec.download.cancel()
	m.unregister(rec)
	m.client.DidDestroyDownload()
	m.l.Infow("download canceled", zap.Stringer("download_id", id))
	return data, true
}

// CancelDownloadsForSession cancels everything the session started and
// returns how many downloads were affected.
func (m *Manager) CancelDownloadsForSession(id models.SessionID) int {
	m.mtx.Lock()
	var ids []models.DownloadID
	for _, rec := range m.arena {
		if rec != nil && rec.sessionID == id {
			ids = append(ids, rec.id)
		}
	}
	m.mtx.Unlock()

	n := 0
	for _, did := range ids {
		if _, ok := m.CancelDownload(did); ok {
			n++
		}
	}
	return n
}

// discard tears down a download that never became active.
func (m *Manager) discard(rec *record) {
	if rec.download != nil {
		rec.download.cancel()
	}
	if rec.task != nil {
		rec.task.Cancel()
	}
	if rec.ownTask != nil && DataTask(rec.ownTask) != rec.task {
		rec.ownTask.Cancel()
	}
	if rec.completion != nil {
		rec.completion.Resolve(network.DispositionIgnore)
	}
	m.unregister(rec)
	m.client.PendingDownloadCanceled(rec.id)
	m.l.Infow("pending download canceled", zap.Stringer("download_id", rec.id))
}

func (m *Manager) unregister(rec *record) {
	if !rec.registered {
		return
	}
	if s, ok := m.sessions.Get(rec.sessionID); ok {
		s.UnregisterTask(rec.ownTask)
	}
}

// cancelOwned cancels the download driven by t, if it is still tracked.
func (m *Manager) cancelOwned(t *networkTask) {
	m.mtx.Lock()
	rec, ok := m.lookupLocked(t.id)
	owned := ok && rec.ownTask == t
	m.mtx.Unlock()
	if owned {
		m.CancelDownload(t.id)
	}
}

// pendingTaskFailed drops a download whose load failed before a decision.
func (m *Manager) pendingTaskFailed(t *networkTask, err error) {
	m.mtx.Lock()
	rec, ok := m.lookupLocked(t.id)
	if !ok || rec.ownTask != t || (rec.state != Pending && rec.state != WaitingForDestination) {
		m.mtx.Unlock()
		return
	}
	m.removeLocked(rec, Canceled)
	m.mtx.Unlock()

	m.l.Warnw("pending download failed", zap.Stringer("download_id", t.id), zap.Error(err))
	m.discard(rec)
}

func (m *Manager) decidedDownload(t *networkTask) (*Download, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	rec, ok := m.lookupLocked(t.id)
	if !ok || rec.ownTask != t || rec.state != DestinationDecided {
		return nil, false
	}
	return rec.download, true
}

// Download returns the active download with id.
func (m *Manager) Download(id models.DownloadID) (*Download, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	rec, ok := m.lookupLocked(id)
	if !ok || rec.state != Active {
		return nil, false
	}
	return rec.download, true
}

func (m *Manager) State(id models.DownloadID) (State, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	rec, ok := m.lookupLocked(id)
	if !ok {
		return 0, false
	}
	return rec.state, true
}

// IsDownloading reports whether any download is tracked in any state.
func (m *Manager) IsDownloading() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return len(m.byID) > 0
}

func (m *Manager) List() []Info {
	m.mtx.Lock()
	infos := make([]Info, 0, len(m.byID))
	dls := make([]*Download, 0, len(m.byID))
	for _, rec := range m.arena {
		if rec == nil {
			continue
		}
		info := Info{ID: rec.id, SessionID: rec.sessionID, State: rec.state}
		if rec.request != nil {
			info.URL = rec.request.URL.String()
		}
		infos = append(infos, info)
		dls = append(dls, rec.download)
	}
	m.mtx.Unlock()

	for i, dl := range dls {
		if dl != nil {
			infos[i].Path = dl.Path()
			infos[i].BytesWritten = dl.BytesWritten()
			infos[i].Backgrounded = dl.IsBackgrounded()
		}
	}
	slices.SortFunc(infos, func(a, b Info) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

func (m *Manager) ApplicationDidEnterBackground() {
	m.setBackgrounded(true)
}

func (m *Manager) ApplicationWillEnterForeground() {
	m.setBackgrounded(false)
}

func (m *Manager) setBackgrounded(v bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.backgrounded = v
	for _, rec := range m.arena {
		if rec != nil && rec.state == Active {
			rec.download.setBackgrounded(v)
		}
	}
}

func validateDestination(p string, handle *sandbox.Handle, allowOverwrite bool) error {
	if p == "" {
		return models.NewDestinationDeniedError(errors.New("download destination denied"))
	}
	if !filepath.IsAbs(p) {
		return models.NewDestinationDeniedError(errors.Errorf("download destination %s is not absolute", p))
	}
	if handle != nil && !withinHandle(handle.Path(), p) {
		return models.NewDestinationDeniedError(errors.Errorf("download destination %s is outside %s", p, handle.Path()))
	}
	if !allowOverwrite {
		if _, err := os.Stat(p); err == nil {
			return models.NewDestinationDeniedError(errors.Errorf("download destination %s already exists", p))
		}
	}
	// consumed last so a denied destination leaves the handle usable
	if handle != nil {
		if err := handle.Consume(); err != nil {
			return models.NewDestinationDeniedError(err)
		}
	}
	return nil
}

func withinHandle(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// suggestedFilename prefers the caller's name, then Content-Disposition,
// then the last path segment of the URL.
func suggestedFilename(name string, res *network.Response, req *http.Request) string {
	if name != "" {
		return name
	}
	if res != nil {
		if cd := res.Header.Get("Content-Disposition"); cd != "" {
			if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
				return path.Base(params["filename"])
			}
		}
	}
	if req != nil && req.URL != nil {
		if base := path.Base(req.URL.Path); base != "/" && base != "." && base != "" {
			return base
		}
	}
	return defaultFilename
}
