package models

import (
	"net/url"
	"testing"

	. "github.com/onsi/gomega"
)

func TestRegistrableDomainFromHost(t *testing.T) {
	tests := []struct {
		host string
		want RegistrableDomain
	}{
		{host: "www.example.com", want: "example.com"},
		{host: "a.b.example.co.uk", want: "example.co.uk"},
		{host: "Tracker.Example.", want: "tracker.example"},
		{host: "cdn.tracker.example", want: "tracker.example"},
		{host: "localhost", want: "localhost"},
		{host: "127.0.0.1", want: "127.0.0.1"},
		{host: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.host, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(RegistrableDomainFromHost(tt.host)).To(Equal(tt.want))
		})
	}
}

func TestRegistrableDomainFromURL(t *testing.T) {
	g := NewWithT(t)
	u, err := url.Parse("https://static.site.example:8443/a.js")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(RegistrableDomainFromURL(u)).To(Equal(RegistrableDomain("site.example")))
	g.Expect(RegistrableDomainFromURL(nil)).To(BeEmpty())
}

func TestRegistrableDomain_Matches(t *testing.T) {
	g := NewWithT(t)
	d := RegistrableDomain("site.example")
	g.Expect(d.Matches("site.example")).To(BeTrue())
	g.Expect(d.Matches("img.site.example")).To(BeTrue())
	g.Expect(d.Matches("notsite.example")).To(BeFalse())
	g.Expect(RegistrableDomain("").Matches("site.example")).To(BeFalse())
}

func TestNewDomainSet(t *testing.T) {
	g := NewWithT(t)
	set := NewDomainSet("a.example", "", "b.example", "a.example")
	g.Expect(set).To(HaveLen(2))
	g.Expect(set).To(HaveKey(RegistrableDomain("a.example")))
}
