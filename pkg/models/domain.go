package models

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain is the public-suffix-aware owner domain of a host,
// the unit of cookie and tracking policy. The zero value means "no domain".
type RegistrableDomain string

func RegistrableDomainFromHost(host string) RegistrableDomain {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return ""
	}
	if net.ParseIP(strings.Trim(host, "[]")) != nil {
		return RegistrableDomain(host)
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// single label hosts (localhost) and bare public suffixes own themselves
		return RegistrableDomain(host)
	}
	return RegistrableDomain(domain)
}

func RegistrableDomainFromURL(u *url.URL) RegistrableDomain {
	if u == nil {
		return ""
	}
	return RegistrableDomainFromHost(u.Hostname())
}

func (d RegistrableDomain) IsEmpty() bool {
	return d == ""
}

// Matches reports whether host belongs to the domain.
func (d RegistrableDomain) Matches(host string) bool {
	if d.IsEmpty() {
		return false
	}
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	return host == string(d) || strings.HasSuffix(host, "."+string(d))
}

func (d RegistrableDomain) String() string {
	return string(d)
}

func NewDomainSet(domains ...RegistrableDomain) map[RegistrableDomain]struct{} {
	set := make(map[RegistrableDomain]struct{}, len(domains))
	for _, d := range domains {
		if !d.IsEmpty() {
			set[d] = struct{}{}
		}
	}
	return set
}
