package catalog

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/mocks"
	"github.com/selebrow/fetcher/pkg/models"
)

const testCatalog = `
prevalentDomains:
  - www.Tracker.com
  - tracker.com
  - ads.co.uk.example.co.uk
prevalentDomainsKeepCookies:
  - social.example
userInteractionDomains:
  - login.example.org
appBoundDomains:
  - app.example
cacheMaxAgeCap: 168h
`

func TestNewYamlCatalog(t *testing.T) {
	g := NewWithT(t)

	c, err := NewYamlCatalog([]byte(testCatalog))
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c.PrevalentDomains).To(Equal([]models.RegistrableDomain{"tracker.com", "example.co.uk"}))
	g.Expect(c.PrevalentDomainsKeepCookies).To(Equal([]models.RegistrableDomain{"social.example"}))
	g.Expect(c.UserInteractionDomains).To(Equal([]models.RegistrableDomain{"example.org"}))
	g.Expect(c.AppBoundDomains).To(Equal([]models.RegistrableDomain{"app.example"}))
	g.Expect(c.CacheMaxAgeCap.Duration).To(Equal(168 * time.Hour))
}

func TestNewYamlCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: "prevalentDomains: {"},
		{name: "empty domain", data: "prevalentDomains: [\" \"]"},
		{name: "bad duration", data: "cacheMaxAgeCap: week"},
		{name: "negative cap", data: "cacheMaxAgeCap: -1h"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			_, err := NewYamlCatalog([]byte(tt.data))
			g.Expect(err).To(HaveOccurred())
		})
	}
}

func TestCatalog_Apply(t *testing.T) {
	g := NewWithT(t)
	c, err := NewYamlCatalog([]byte(testCatalog))
	g.Expect(err).ToNot(HaveOccurred())

	p := cookiepolicy.New(cookiepolicy.Options{
		Mode:                          cookiepolicy.OnlyAccordingToPerDomainPolicy,
		ResourceLoadStatisticsEnabled: true,
	})
	c.Apply(p)

	g.Expect(p.DomainsToDeleteCookiesFor()).To(Equal([]models.RegistrableDomain{"example.co.uk", "tracker.com"}))
	g.Expect(p.ShouldBlockThirdPartyCookies("tracker.com")).To(BeTrue())
	g.Expect(p.ShouldBlockThirdPartyCookiesButKeepFirstPartyCookiesFor("social.example")).To(BeTrue())
	g.Expect(p.HasHadUserInteractionAsFirstParty("example.org")).To(BeTrue())

	first := &url.URL{Scheme: "https", Host: "news.example"}
	g.Expect(p.MaxAgeCacheCap(first, &url.URL{Scheme: "https", Host: "cdn.tracker.com"})).To(HaveValue(Equal(168 * time.Hour)))
	g.Expect(p.MaxAgeCacheCap(first, &url.URL{Scheme: "https", Host: "cdn.other.com"})).To(BeNil())
}

func TestCatalog_ApplyEmpty(t *testing.T) {
	g := NewWithT(t)
	c, err := NewYamlCatalog(nil)
	g.Expect(err).ToNot(HaveOccurred())

	p := cookiepolicy.New(cookiepolicy.Options{ResourceLoadStatisticsEnabled: true})
	p.SetPrevalentDomainsToBlockAndDeleteCookiesFor([]models.RegistrableDomain{"kept.com"})
	c.Apply(p)

	g.Expect(p.DomainsToDeleteCookiesFor()).To(Equal([]models.RegistrableDomain{"kept.com"}))
}

const testCatalogURL = "https://remote/catalog.yaml"

var catalogData = []byte("prevalentDomains: [tracker.com]")

func TestLoad_Local(t *testing.T) {
	g := NewWithT(t)
	file := filepath.Join(t.TempDir(), "catalog.yaml")
	g.Expect(os.WriteFile(file, catalogData, 0o644)).To(Succeed())

	got, err := Load(context.Background(), []string{file, testCatalogURL}, nil, zaptest.NewLogger(t))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(catalogData))
}

func TestLoad_FallbackRemote(t *testing.T) {
	g := NewWithT(t)
	hc := new(mocks.HTTPClient)

	hc.EXPECT().Do(mock.Anything).RunAndReturn(func(req *http.Request) (*http.Response, error) {
		g.Expect(req.Method).To(Equal(http.MethodGet))
		g.Expect(req.URL.String()).To(Equal(testCatalogURL))

		resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(catalogData))}
		return resp, nil
	}).Once()

	got, err := Load(context.Background(), []string{"qqqqqq/bebebe", testCatalogURL}, hc, zaptest.NewLogger(t))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(catalogData))
	hc.AssertExpectations(t)
}

func TestLoad_AllFailed(t *testing.T) {
	g := NewWithT(t)
	hc := new(mocks.HTTPClient)

	hc.EXPECT().Do(mock.Anything).Return(&http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}, nil).Once()

	_, err := Load(context.Background(), []string{testCatalogURL}, hc, zaptest.NewLogger(t))
	g.Expect(err).To(HaveOccurred())

	hc.EXPECT().Do(mock.Anything).Return(nil, errors.New("connection refused")).Once()
	_, err = Load(context.Background(), []string{testCatalogURL}, hc, zaptest.NewLogger(t))
	g.Expect(err).To(MatchError("failed to load domain catalog from configured URIs"))
	hc.AssertExpectations(t)
}
