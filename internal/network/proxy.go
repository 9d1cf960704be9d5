package network

import (
	"net"
	"net/url"

	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
)

// NewProxyDialer returns a dialer routing origin connections through the
// SOCKS5 proxy at proxyURL. Hosts matched by bypass are dialed directly by
// direct; bypass uses the NO_PROXY syntax (comma separated hosts, *.domains,
// IPs and CIDRs).
func NewProxyDialer(proxyURL, bypass string, direct *net.Dialer) (proxy.ContextDialer, error) {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid proxy URL")
	}
	d, err := proxy.FromURL(u, direct)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported proxy %s", u.Redacted())
	}
	if _, ok := d.(proxy.ContextDialer); !ok {
		return nil, errors.Errorf("proxy %s does not support cancellation", u.Redacted())
	}

	ph := proxy.NewPerHost(d, direct)
	ph.AddFromString(bypass)
	return ph, nil
}
