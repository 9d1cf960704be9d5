package download

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/selebrow/fetcher/pkg/models"
)

// resumeInfo is the opaque blob handed out when an active download is
// canceled, and accepted back by ResumeDownload.
type resumeInfo struct {
	URL          string `json:"url"`
	Offset       int64  `json:"offset"`
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

func (r resumeInfo) encode() []byte {
	b, _ := json.Marshal(r)
	return b
}

func decodeResumeData(data []byte) (resumeInfo, error) {
	var r resumeInfo
	if err := json.Unmarshal(data, &r); err != nil {
		return r, models.NewBadParametersError(errors.Wrap(err, "malformed resume data"))
	}
	if r.URL == "" || r.Offset < 0 {
		return r, models.NewBadParametersError(errors.New("incomplete resume data"))
	}
	return r, nil
}

// request builds the ranged request that continues the transfer.
func (r resumeInfo) request() (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, r.URL, http.NoBody)
	if err != nil {
		return nil, models.NewBadParametersError(errors.Wrap(err, "resume url"))
	}
	if r.Offset > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", r.Offset))
		switch {
		case r.ETag != "":
			req.Header.Set("If-Range", r.ETag)
		case r.LastModified != "":
			req.Header.Set("If-Range", r.LastModified)
		}
	}
	return req, nil
}
