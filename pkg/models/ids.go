package models

import "strconv"

type (
	SessionID  uint64
	PageID     uint64
	FrameID    uint64
	DownloadID uint64
)

func (id SessionID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id DownloadID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseSessionID(s string) (SessionID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return SessionID(v), err
}

func ParseDownloadID(s string) (DownloadID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return DownloadID(v), err
}
