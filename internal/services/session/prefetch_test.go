package session

import (
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestPrefetchCache_StoreTake(t *testing.T) {
	g := NewWithT(t)
	c := NewPrefetchCache(time.Minute, time.Now)
	defer c.Clear()

	c.Store("https://site.example/next", &PrefetchedResource{StatusCode: http.StatusOK, Body: []byte("next")})
	g.Expect(c.Len()).To(Equal(1))

	res, ok := c.Take("https://site.example/next")
	g.Expect(ok).To(BeTrue())
	g.Expect(res.Body).To(Equal([]byte("next")))

	_, ok = c.Take("https://site.example/next")
	g.Expect(ok).To(BeFalse())
}

func TestPrefetchCache_Expiry(t *testing.T) {
	g := NewWithT(t)
	c := NewPrefetchCache(20*time.Millisecond, time.Now)
	defer c.Clear()

	c.Store("https://site.example/a", &PrefetchedResource{StatusCode: http.StatusOK})
	g.Eventually(c.Len).Should(BeZero())

	c.Store("https://site.example/b", &PrefetchedResource{StatusCode: http.StatusOK})
	g.Expect(c.Len()).To(Equal(1))
	c.Clear()
	g.Expect(c.Len()).To(BeZero())
}

func TestPrefetchCache_TakeExpired(t *testing.T) {
	g := NewWithT(t)
	now := time.UnixMilli(1000)
	c := NewPrefetchCache(time.Hour, func() time.Time { return now })
	defer c.Clear()

	c.Store("https://site.example/a", &PrefetchedResource{StatusCode: http.StatusOK})
	now = now.Add(2 * time.Hour)

	_, ok := c.Take("https://site.example/a")
	g.Expect(ok).To(BeFalse())
}
