package ipc

import (
	"bytes"
	"net/http"
	"path/filepath"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/common/clock"
	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/pkg/models"
	"github.com/selebrow/fetcher/pkg/sandbox"
)

const DefaultPathTemplate = `{{ .ID }}-{{ .SuggestedName }}`

// PathData is what download path templates render from.
type PathData struct {
	ID            models.DownloadID
	SuggestedName string
	ContentType   string
	Time          time.Time
}

// AutoDestinationClient decides destinations without a peer: every download
// goes to a path rendered from a template under one directory.
type AutoDestinationClient struct {
	dir    string
	tmpl   *template.Template
	issuer *sandbox.Issuer
	now    clock.NowFunc
	l      *zap.SugaredLogger
}

func NewAutoDestinationClient(dir, pathTemplate string, now clock.NowFunc, l *zap.Logger) (*AutoDestinationClient, error) {
	if pathTemplate == "" {
		pathTemplate = DefaultPathTemplate
	}
	tmpl, err := template.New("download-path").Funcs(sprig.TxtFuncMap()).Parse(pathTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse download path template")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve download directory %s", dir)
	}
	return &AutoDestinationClient{
		dir:    abs,
		tmpl:   tmpl,
		issuer: sandbox.NewIssuer(abs),
		now:    now,
		l:      l.Sugar(),
	}, nil
}

func (a *AutoDestinationClient) DidCreateDownload() {
	a.l.Debug("download created")
}

func (a *AutoDestinationClient) DidDestroyDownload() {
	a.l.Debug("download destroyed")
}

func (a *AutoDestinationClient) PendingDownloadCanceled(id models.DownloadID) {
	a.l.Infow("pending download canceled", zap.Stringer("download_id", id))
}

func (a *AutoDestinationClient) DecideDestination(
	id models.DownloadID,
	suggestedName string,
	header http.Header,
	reply func(download.Destination),
) {
	p, err := a.Render(PathData{
		ID:            id,
		SuggestedName: suggestedName,
		ContentType:   header.Get("Content-Type"),
		Time:          a.now(),
	})
	if err != nil {
		a.l.Warnw("failed to render download path", zap.Stringer("download_id", id), zap.Error(err))
		reply(download.Destination{})
		return
	}
	handle, err := a.issuer.Issue(p)
	if err != nil {
		a.l.Warnw("rendered download path rejected", zap.Stringer("download_id", id), zap.Error(err))
		reply(download.Destination{})
		return
	}
	reply(download.Destination{Path: p, Handle: handle})
}

// Render returns the absolute destination for data. The rendered path is
// always kept under the download directory.
func (a *AutoDestinationClient) Render(data PathData) (string, error) {
	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render download path")
	}
	rel := filepath.Clean(string(filepath.Separator) + buf.String())
	if rel == string(filepath.Separator) {
		return "", errors.New("download path template rendered an empty path")
	}
	return filepath.Join(a.dir, rel), nil
}
