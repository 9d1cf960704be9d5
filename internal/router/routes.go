package router

import "fmt"

const (
	InfoPath = "/info"

	SessionsPath = "/sessions"
	SessionParam = "sess"

	DownloadsPath = "/downloads"
	DownloadParam = "dl"

	ChannelPath = "/channel"
)

func SessRoute(s string) string {
	return fmt.Sprintf(s, SessionParam)
}

func DownloadRoute(s string) string {
	return fmt.Sprintf(s, DownloadParam)
}
