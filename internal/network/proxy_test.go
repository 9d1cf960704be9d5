package network

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

// socksServer is a minimal no-auth SOCKS5 CONNECT server.
type socksServer struct {
	ln    net.Listener
	conns atomic.Int32
}

func newSocksServer(t *testing.T) *socksServer {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	s := &socksServer{ln: ln}
	t.Cleanup(func() { _ = ln.Close() })
	go s.serve()
	return s
}

func (s *socksServer) URL() string {
	return "socks5://" + s.ln.Addr().String()
}

func (s *socksServer) serve() {
	for {
		c, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.conns.Add(1)
		go s.handle(c)
	}
}

func (s *socksServer) handle(c net.Conn) {
	defer c.Close()
	buf := make([]byte, 262)
	// greeting: ver, nmethods, methods
	if _, err := io.ReadFull(c, buf[:2]); err != nil {
		return
	}
	if _, err := io.ReadFull(c, buf[:buf[1]]); err != nil {
		return
	}
	if _, err := c.Write([]byte{5, 0}); err != nil {
		return
	}
	// request: ver, cmd, rsv, atyp
	if _, err := io.ReadFull(c, buf[:4]); err != nil {
		return
	}
	var host string
	switch buf[3] {
	case 1:
		if _, err := io.ReadFull(c, buf[:4]); err != nil {
			return
		}
		host = net.IP(buf[:4]).String()
	case 3:
		if _, err := io.ReadFull(c, buf[:1]); err != nil {
			return
		}
		n := buf[0]
		if _, err := io.ReadFull(c, buf[:n]); err != nil {
			return
		}
		host = string(buf[:n])
	default:
		return
	}
	if _, err := io.ReadFull(c, buf[:2]); err != nil {
		return
	}
	port := binary.BigEndian.Uint16(buf[:2])

	upstream, err := net.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(int(port))))
	if err != nil {
		_, _ = c.Write([]byte{5, 5, 0, 1, 0, 0, 0, 0, 0, 0})
		return
	}
	defer upstream.Close()
	if _, err := c.Write([]byte{5, 0, 0, 1, 0, 0, 0, 0, 0, 0}); err != nil {
		return
	}
	go func() { _, _ = io.Copy(upstream, c) }()
	_, _ = io.Copy(c, upstream)
}

func getThrough(t *testing.T, g *WithT, dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}, url string) {
	t.Helper()
	client := &http.Client{
		Transport: &http.Transport{DialContext: dialer.DialContext, DisableKeepAlives: true},
		Timeout:   5 * time.Second,
	}
	resp, err := client.Get(url)
	g.Expect(err).ToNot(HaveOccurred())
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(body)).To(Equal("origin"))
}

func newOrigin(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("origin"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewProxyDialer_Proxied(t *testing.T) {
	g := NewWithT(t)
	origin := newOrigin(t)
	socks := newSocksServer(t)

	d, err := NewProxyDialer(socks.URL(), "", &net.Dialer{Timeout: time.Second})
	g.Expect(err).ToNot(HaveOccurred())

	getThrough(t, g, d, origin.URL)
	g.Expect(socks.conns.Load()).To(BeEquivalentTo(1))
}

func TestNewProxyDialer_Bypass(t *testing.T) {
	g := NewWithT(t)
	origin := newOrigin(t)
	socks := newSocksServer(t)

	d, err := NewProxyDialer(socks.URL(), "localhost,127.0.0.0/8", &net.Dialer{Timeout: time.Second})
	g.Expect(err).ToNot(HaveOccurred())

	getThrough(t, g, d, origin.URL)
	g.Expect(socks.conns.Load()).To(BeZero())
}

func TestNewProxyDialer_Errors(t *testing.T) {
	g := NewWithT(t)

	_, err := NewProxyDialer("ftp://proxy.example:21", "", &net.Dialer{})
	g.Expect(err).To(MatchError(ContainSubstring("unsupported proxy ftp://proxy.example:21")))

	_, err = NewProxyDialer("://", "", &net.Dialer{})
	g.Expect(err).To(MatchError(ContainSubstring("invalid proxy URL")))
}
