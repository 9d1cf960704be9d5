package catalog

import (
	"context"
	"io"
	"net/http"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var httpPattern = regexp.MustCompile(`(?i)^https?://.+`)

// Load reads the catalog document from the first of uris that can be read.
// Later uris are fallbacks for the earlier ones.
func Load(ctx context.Context, uris []string, client HTTPClient, l *zap.Logger) ([]byte, error) {
	log := l.Sugar()
	for i, uri := range uris {
		var (
			data []byte
			err  error
		)

		if httpPattern.MatchString(uri) {
			log.Infow("downloading domain catalog from remote URL", zap.String("url", uri))
			data, err = download(ctx, client, uri)
		} else {
			data, err = os.ReadFile(uri)
		}

		if err == nil {
			return data, nil
		}
		if i < len(uris)-1 {
			log.Warnw("failed to load domain catalog (will try fallback URI)", zap.Error(err), zap.String("uri", uri))
		} else {
			log.Errorw("failed to load domain catalog", zap.Error(err), zap.String("uri", uri))
		}
	}
	return nil, errors.New("failed to load domain catalog from configured URIs")
}

func download(ctx context.Context, client HTTPClient, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
