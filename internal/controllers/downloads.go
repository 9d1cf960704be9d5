package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/internal/download"
	"github.com/selebrow/fetcher/internal/router"
	"github.com/selebrow/fetcher/pkg/dto"
	"github.com/selebrow/fetcher/pkg/models"
)

type DownloadRegistry interface {
	List() []download.Info
	CancelDownload(id models.DownloadID) ([]byte, bool)
}

type DownloadsController struct {
	downloads DownloadRegistry
	l         *zap.SugaredLogger
}

func NewDownloadsController(downloads DownloadRegistry, l *zap.Logger) *DownloadsController {
	return &DownloadsController{downloads: downloads, l: l.Sugar()}
}

func (d *DownloadsController) List(c echo.Context) error {
	infos := d.downloads.List()
	resp := dto.DownloadList{
		Total:     len(infos),
		Downloads: make([]dto.Download, 0, len(infos)),
	}
	for _, info := range infos {
		resp.Downloads = append(resp.Downloads, dto.Download{
			ID:           uint64(info.ID),
			SessionID:    uint64(info.SessionID),
			State:        info.State.String(),
			URL:          info.URL,
			Path:         info.Path,
			BytesWritten: info.BytesWritten,
			Backgrounded: info.Backgrounded,
		})
	}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DownloadsController) Cancel(c echo.Context) error {
	raw := c.Param(router.DownloadParam)
	id, err := models.ParseDownloadID(raw)
	if err != nil {
		return models.NewBadParametersError(errors.Errorf("invalid download id %q", raw))
	}

	data, ok := d.downloads.CancelDownload(id)
	if !ok {
		return models.NewNotFoundError(errors.Errorf("download %d doesn't exist", id))
	}
	d.l.Infow("download canceled on API request", zap.Stringer("download_id", id), zap.Bool("resumable", data != nil))
	return c.JSON(http.StatusOK, &dto.CanceledDownload{ID: uint64(id), ResumeData: data})
}
