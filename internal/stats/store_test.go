package stats

import (
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/fetcher/internal/cookiepolicy"
	"github.com/selebrow/fetcher/pkg/models"
)

func TestStore_Ephemeral(t *testing.T) {
	g := NewWithT(t)
	s := New("", Settings{}, zaptest.NewLogger(t))

	g.Expect(s.IsEphemeral()).To(BeTrue())
	g.Expect(s.Populate()).To(Succeed())

	s.LogUserInteraction("site.example")
	s.LogSubresourceLoad("site.example", "tracker.example")
	s.LogSubresourceLoad("site.example", "site.example")
	s.SetPrevalentResource("tracker.example", true)

	g.Expect(s.Domains()).To(Equal([]models.RegistrableDomain{"site.example", "tracker.example"}))
	g.Expect(s.PrevalentDomains()).To(Equal([]models.RegistrableDomain{"tracker.example"}))
	g.Expect(s.DomainsWithUserInteraction()).To(Equal([]models.RegistrableDomain{"site.example"}))

	r, ok := s.Record("tracker.example")
	g.Expect(ok).To(BeTrue())
	g.Expect(r.SubresourceUnderTopFrames).To(HaveKey(models.RegistrableDomain("site.example")))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	l := zaptest.NewLogger(t)

	s := New(dir, Settings{}, l)
	g.Expect(s.Populate()).To(Succeed())
	s.LogUserInteraction("site.example")
	s.LogSubresourceLoad("site.example", "tracker.example")
	s.UpdateSettings(func(st *Settings) {
		st.ManualPrevalentResource = "manual.example"
	})
	g.Expect(s.Destroy()).To(Succeed())
	g.Expect(s.Domains()).To(BeEmpty())

	s = New(dir, Settings{}, l)
	g.Expect(s.Populate()).To(Succeed())
	defer s.Destroy() //nolint:errcheck // test cleanup

	g.Expect(s.Domains()).To(Equal([]models.RegistrableDomain{"manual.example", "site.example", "tracker.example"}))
	g.Expect(s.PrevalentDomains()).To(Equal([]models.RegistrableDomain{"manual.example"}))
	r, _ := s.Record("tracker.example")
	g.Expect(r.SubresourceUnderTopFrames).To(HaveKey(models.RegistrableDomain("site.example")))

	removed, err := s.RemoveDomains([]models.RegistrableDomain{"tracker.example", "none.example"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(removed).To(Equal([]models.RegistrableDomain{"tracker.example"}))
	g.Expect(s.Domains()).To(Equal([]models.RegistrableDomain{"manual.example", "site.example"}))
}

func TestStore_InvalidatedIgnoresObservations(t *testing.T) {
	g := NewWithT(t)
	s := New("", Settings{}, zaptest.NewLogger(t))

	s.Invalidate()
	s.LogUserInteraction("site.example")
	s.SetPrevalentResource("tracker.example", true)

	g.Expect(s.IsInvalidated()).To(BeTrue())
	g.Expect(s.Domains()).To(BeEmpty())
}

func TestStore_PopulateAfterDestroy(t *testing.T) {
	g := NewWithT(t)
	s := New(t.TempDir(), Settings{}, zaptest.NewLogger(t))

	g.Expect(s.Destroy()).To(Succeed())
	g.Expect(s.Populate()).To(MatchError(models.ErrSessionInvalidated))
}

func TestStore_Settings(t *testing.T) {
	g := NewWithT(t)
	s := New("", Settings{ThirdPartyCookieBlockingMode: cookiepolicy.BlockAll}, zaptest.NewLogger(t))

	s.UpdateSettings(func(st *Settings) {
		st.ThirdPartyCookieBlockingMode = cookiepolicy.OnlyAccordingToPerDomainPolicy
		st.StandaloneApplicationDomain = "app.example"
	})
	s.LogSubresourceLoad("site.example", "app.example")

	g.Expect(s.Settings().ThirdPartyCookieBlockingMode).To(Equal(cookiepolicy.OnlyAccordingToPerDomainPolicy))
	g.Expect(s.Domains()).To(BeEmpty())
}

func TestStore_UnavailableDirectory(t *testing.T) {
	g := NewWithT(t)
	s := New("/nonexistent/dir/for/stats", Settings{}, zaptest.NewLogger(t))

	err := s.Populate()
	g.Expect(err).To(MatchError(models.ErrStatisticsStoreUnavailable))
}
