package main

import (
	"github.com/selebrow/fetcher/pkg/app"
)

const appName = "fetcher"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
