package dto

type DownloadList struct {
	Total     int        `json:"total"`
	Downloads []Download `json:"downloads"`
}

type Download struct {
	ID           uint64 `json:"id"`
	SessionID    uint64 `json:"sessionId"`
	State        string `json:"state"`
	URL          string `json:"url,omitempty"`
	Path         string `json:"path,omitempty"`
	BytesWritten int64  `json:"bytesWritten"`
	Backgrounded bool   `json:"backgrounded,omitempty"`
}

// CanceledDownload is returned for a canceled download. ResumeData is set
// when the download had started writing.
type CanceledDownload struct {
	ID         uint64 `json:"id"`
	ResumeData []byte `json:"resumeData,omitempty"`
}
