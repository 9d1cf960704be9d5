package download

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/network"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/pkg/models"
)

const testSessionID models.SessionID = 1

type decision struct {
	id   models.DownloadID
	name string
}

type recordingClient struct {
	mtx       sync.Mutex
	created   int
	destroyed int
	canceled  []models.DownloadID
	decisions []decision
	// answer replies to a destination request right away when set.
	answer func(id models.DownloadID, name string) Destination
}

func (c *recordingClient) DidCreateDownload() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.created++
}

func (c *recordingClient) DidDestroyDownload() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.destroyed++
}

func (c *recordingClient) PendingDownloadCanceled(id models.DownloadID) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.canceled = append(c.canceled, id)
}

func (c *recordingClient) DecideDestination(id models.DownloadID, name string, _ http.Header, reply func(Destination)) {
	c.mtx.Lock()
	c.decisions = append(c.decisions, decision{id: id, name: name})
	answer := c.answer
	c.mtx.Unlock()
	if answer != nil {
		reply(answer(id, name))
	}
}

func (c *recordingClient) counts() (created, destroyed int) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.created, c.destroyed
}

func (c *recordingClient) canceledIDs() []models.DownloadID {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]models.DownloadID(nil), c.canceled...)
}

func (c *recordingClient) decided() []decision {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]decision(nil), c.decisions...)
}

type fakeLoad struct {
	req      *http.Request
	mtx      sync.Mutex
	client   network.Client
	started  atomic.Bool
	canceled atomic.Bool
	finished atomic.Bool
}

func (l *fakeLoad) Start()                 { l.started.Store(true) }
func (l *fakeLoad) Cancel()                { l.canceled.Store(true) }
func (l *fakeLoad) InvalidateAndCancel()   { l.Cancel() }
func (l *fakeLoad) Request() *http.Request { return l.req }
func (l *fakeLoad) IsFinished() bool       { return l.finished.Load() }

func (l *fakeLoad) SetClient(c network.Client) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.client = c
}

func (l *fakeLoad) currentClient() network.Client {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.client
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

type fakeTask struct {
	id       models.DownloadID
	res      *network.Response
	canceled atomic.Int32
}

func (t *fakeTask) DownloadID() models.DownloadID { return t.id }
func (t *fakeTask) Response() *network.Response   { return t.res }
func (t *fakeTask) Cancel()                       { t.canceled.Add(1) }

type dispositions struct {
	mtx sync.Mutex
	got []network.Disposition
}

func (d *dispositions) record(v network.Disposition) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.got = append(d.got, v)
}

func (d *dispositions) values() []network.Disposition {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return append([]network.Disposition(nil), d.got...)
}

type testEnv struct {
	m       *Manager
	client  *recordingClient
	sess    *session.Session
	loop    *runloop.Loop
	storage *session.LocalSessionStorage
}

func newTestEnv(t *testing.T, loader network.Loader) *testEnv {
	t.Helper()
	l := zaptest.NewLogger(t)
	loop := runloop.NewLoop(l)
	t.Cleanup(func() {
		_ = loop.Shutdown(context.Background())
	})
	storage := session.NewLocalSessionStorage(l)
	sess, err := session.NewSession(
		session.Parameters{ID: testSessionID, Ephemeral: true},
		session.Dependencies{Dispatcher: loop, Loader: loader},
		l,
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.Add(sess); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = storage.Shutdown(context.Background())
	})
	client := &recordingClient{}
	return &testEnv{
		m:       NewManager(client, storage, loader, loop, l),
		client:  client,
		sess:    sess,
		loop:    loop,
		storage: storage,
	}
}

func mustRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}
	return req
}
