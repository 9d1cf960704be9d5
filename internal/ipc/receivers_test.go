package ipc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/channel"
	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/internal/ipc"
	"github.com/selebrow/fetcher/internal/runloop"
	"github.com/selebrow/fetcher/internal/services/session"
	"github.com/selebrow/fetcher/mocks"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

type registry map[string]channel.MessageReceiver

func (r registry) AddMessageReceiver(name string, rc channel.MessageReceiver) {
	r[name] = rc
}

func (r registry) call(t *testing.T, name, body string) string {
	t.Helper()
	var got any
	r[name].DidReceiveMessage(&channel.Message{ID: 1, Name: name, Body: json.RawMessage(body)}, func(b any) error {
		got = b
		return nil
	})
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

type receiversEnv struct {
	reg       registry
	sessions  *mocks.SessionService
	downloads *mocks.Downloads
	sess      *session.Session
	dir       string
}

func newReceiversEnv(t *testing.T) *receiversEnv {
	l := zaptest.NewLogger(t)
	loop := runloop.NewLoop(l)
	t.Cleanup(func() {
		_ = loop.Shutdown(context.Background())
	})
	sess, err := session.NewSession(session.Parameters{ID: 1, Ephemeral: true}, session.Dependencies{Dispatcher: loop}, l)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sess.Destroy)

	env := &receiversEnv{
		reg:       registry{},
		sessions:  new(mocks.SessionService),
		downloads: new(mocks.Downloads),
		sess:      sess,
		dir:       t.TempDir(),
	}
	ipc.NewReceivers(env.sessions, env.downloads, sandbox.NewIssuer(env.dir), l).Register(env.reg)
	return env
}

func TestReceivers_Registered(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)
	g.Expect(env.reg).To(HaveLen(11))
	g.Expect(env.reg).To(HaveKey(ipc.MsgClearPageSpecificData))
}

func TestReceivers_StartDownload(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)

	env.downloads.EXPECT().StartDownload(models.SessionID(1), models.DownloadID(2),
		mock.MatchedBy(func(r *http.Request) bool {
			return r.Method == http.MethodGet && r.URL.String() == "https://example.com/f"
		}), "f.txt").Return(nil).Once()
	got := env.reg.call(t, ipc.MsgStartDownload, `{"sessionId":1,"downloadId":2,"url":"https://example.com/f","suggestedName":"f.txt"}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))

	env.downloads.EXPECT().StartDownload(models.SessionID(9), models.DownloadID(3), mock.Anything, "").
		Return(models.NewNotFoundError(errors.New("session 9 not found"))).Once()
	got = env.reg.call(t, ipc.MsgStartDownload, `{"sessionId":9,"downloadId":3,"url":"https://example.com/"}`)
	g.Expect(got).To(MatchJSON(`{"ok":false,"kind":"NotFound","error":"session 9 not found"}`))

	got = env.reg.call(t, ipc.MsgStartDownload, `{"sessionId":`)
	g.Expect(got).To(ContainSubstring(`"kind":"BadParameters"`))

	env.downloads.AssertExpectations(t)
}

func TestReceivers_CancelAndResume(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)

	env.downloads.EXPECT().CancelDownload(models.DownloadID(4)).Return([]byte("abc"), true).Once()
	got := env.reg.call(t, ipc.MsgCancelDownload, `{"downloadId":4}`)
	g.Expect(got).To(MatchJSON(`{"found":true,"resumeData":"YWJj"}`))

	env.downloads.EXPECT().CancelDownload(models.DownloadID(5)).Return(nil, false).Once()
	got = env.reg.call(t, ipc.MsgCancelDownload, `{"downloadId":5}`)
	g.Expect(got).To(MatchJSON(`{"found":false}`))

	target := filepath.Join(env.dir, "part.bin")
	env.downloads.EXPECT().ResumeDownload(models.SessionID(1), models.DownloadID(4), []byte("abc"), target, mock.Anything).
		Run(func(_ models.SessionID, _ models.DownloadID, _ []byte, _ string, handle *sandbox.Handle) {
			g.Expect(handle.Path()).To(Equal(target))
			g.Expect(handle.IsConsumed()).To(BeFalse())
		}).Return(nil).Once()
	body, _ := json.Marshal(map[string]any{"sessionId": 1, "downloadId": 4, "resumeData": []byte("abc"), "path": target})
	got = env.reg.call(t, ipc.MsgResumeDownload, string(body))
	g.Expect(got).To(MatchJSON(`{"ok":true}`))

	got = env.reg.call(t, ipc.MsgResumeDownload, `{"sessionId":1,"downloadId":6,"path":"/etc/passwd"}`)
	g.Expect(got).To(ContainSubstring(`"kind":"DestinationDeniedOrInvalid"`))

	env.downloads.AssertExpectations(t)
}

func TestReceivers_StorageAccess(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)
	env.sessions.EXPECT().FindSession(models.SessionID(1)).Return(env.sess, nil)

	got := env.reg.call(t, ipc.MsgGrantStorageAccess,
		`{"sessionId":1,"subFrameDomain":"b.com","topFrameDomain":"a.com","frameId":3,"pageId":4}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
	g.Expect(env.sess.Policy().HasStorageAccess("b.com", "a.com", 3, 4)).To(BeTrue())

	got = env.reg.call(t, ipc.MsgRemoveStorageAccessForFrame, `{"sessionId":1,"frameId":3,"pageId":4}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
	g.Expect(env.sess.Policy().HasStorageAccess("b.com", "a.com", 3, 4)).To(BeFalse())

	got = env.reg.call(t, ipc.MsgClearPageSpecificData, `{"sessionId":1,"pageId":4}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
}

func TestReceivers_PolicySettings(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)
	env.sessions.EXPECT().FindSession(models.SessionID(1)).Return(env.sess, nil)
	env.sessions.EXPECT().FindSession(models.SessionID(2)).Return(nil, models.NewNotFoundError(errors.New("session 2 not found")))

	got := env.reg.call(t, ipc.MsgSetPrevalentDomainsToBlock, `{"sessionId":1,"domains":["tracker.com"]}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
	g.Expect(env.sess.Policy().ShouldBlockThirdPartyCookies("tracker.com")).To(BeTrue())

	got = env.reg.call(t, ipc.MsgSetThirdPartyCookieBlocking, `{"sessionId":1,"mode":"AllOnSitesWithoutUserInteraction"}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
	g.Expect(env.sess.Policy().ThirdPartyCookieBlockingMode()).To(Equal(cookiepolicy.AllOnSitesWithoutUserInteraction))

	got = env.reg.call(t, ipc.MsgSetThirdPartyCookieBlocking, `{"sessionId":1,"mode":"Bogus"}`)
	g.Expect(got).To(ContainSubstring(`"kind":"BadParameters"`))

	got = env.reg.call(t, ipc.MsgSetPrevalentDomainsToBlock, `{"sessionId":2,"domains":[]}`)
	g.Expect(got).To(ContainSubstring(`"kind":"NotFound"`))
}

func TestReceivers_ApplyStatistics(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)
	env.sessions.EXPECT().FindSession(models.SessionID(1)).Return(env.sess, nil)

	got := env.reg.call(t, ipc.MsgApplyStatistics, `{"sessionId":1}`)
	g.Expect(got).To(ContainSubstring(`"kind":"StatisticsStoreUnavailable"`))

	g.Expect(env.sess.SetResourceLoadStatisticsEnabled(true)).To(Succeed())
	env.sess.Statistics().SetPrevalentResource("tracker.com", true)
	g.Expect(env.sess.Policy().ShouldBlockThirdPartyCookies("tracker.com")).To(BeFalse())

	got = env.reg.call(t, ipc.MsgApplyStatistics, `{"sessionId":1}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
	g.Expect(env.sess.Policy().ShouldBlockThirdPartyCookies("tracker.com")).To(BeTrue())
}

func TestReceivers_DestroySession(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)
	env.sessions.EXPECT().DestroySession(models.SessionID(1)).Return(nil).Once()

	got := env.reg.call(t, ipc.MsgDestroySession, `{"sessionId":1}`)
	g.Expect(got).To(MatchJSON(`{"ok":true}`))
	env.sessions.AssertExpectations(t)
}

func TestReceivers_CreateSession(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)
	cacheDir := filepath.Join(env.dir, "cache")

	env.sessions.EXPECT().CreateSession(mock.Anything).RunAndReturn(func(p session.Parameters) (*session.Session, error) {
		g.Expect(p.ID).To(BeEquivalentTo(1))
		g.Expect(p.Ephemeral).To(BeTrue())
		g.Expect(p.CacheDirectory).To(Equal(cacheDir))
		g.Expect(p.CacheDirectoryHandle.Path()).To(Equal(cacheDir))
		g.Expect(p.StatisticsDirectoryHandle).To(BeNil())
		return env.sess, nil
	}).Once()

	got := env.reg.call(t, ipc.MsgCreateSession, `{"id":1,"ephemeral":true,"cacheDirectory":"`+cacheDir+`"}`)
	g.Expect(got).To(MatchJSON(`{"sessionId":1}`))
	env.sessions.AssertExpectations(t)
}

func TestReceivers_CreateSessionOutsideRoots(t *testing.T) {
	g := NewWithT(t)
	env := newReceiversEnv(t)

	got := env.reg.call(t, ipc.MsgCreateSession, `{"id":2,"statisticsDirectory":"/definitely/not/permitted"}`)
	g.Expect(got).To(MatchJSON(`{
              "ok": false,
              "kind": "BadParameters",
              "error": "statistics directory: /definitely/not/permitted: path is outside of permitted directories"
            }`))

	env.sessions.EXPECT().CreateSession(mock.Anything).
		Return(nil, models.NewBadParametersError(errors.New("session already exists"))).Once()
	got = env.reg.call(t, ipc.MsgCreateSession, `{"id":1}`)
	g.Expect(got).To(MatchJSON(`{"ok":false,"kind":"BadParameters","error":"session already exists"}`))
	env.sessions.AssertExpectations(t)
}
