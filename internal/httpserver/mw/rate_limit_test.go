package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/alumnet/internal/logger"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func serve(h http.Handler, path, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if addr != "" {
		req.RemoteAddr = addr
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitBurst(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := RateLimit(RateLimitConfig{Burst: 2, PerMinute: 1, Now: clock.now}, logger.NewNop())(okHandler())

	want := []struct {
		code      int
		remaining string
	}{
		{http.StatusOK, "1"},
		{http.StatusOK, "0"},
		{http.StatusTooManyRequests, "0"},
	}
	for i, w := range want {
		rec := serve(h, "/api/alumni", "")
		if rec.Code != w.code {
			t.Errorf("request %d: status = %d, want %d", i+1, rec.Code, w.code)
		}
		if got := rec.Header().Get("X-RateLimit-Remaining"); got != w.remaining {
			t.Errorf("request %d: X-RateLimit-Remaining = %q, want %q", i+1, got, w.remaining)
		}
		if got := rec.Header().Get("X-RateLimit-Limit"); got != "2" {
			t.Errorf("request %d: X-RateLimit-Limit = %q, want 2", i+1, got)
		}
	}

	rec := serve(h, "/api/alumni", "")
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
}

func TestRateLimitRefill(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := RateLimit(RateLimitConfig{Burst: 1, PerMinute: 60, Now: clock.now}, logger.NewNop())(okHandler())

	if rec := serve(h, "/api/bookings", ""); rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", rec.Code)
	}
	if rec := serve(h, "/api/bookings", ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", rec.Code)
	}
	clock.advance(time.Second)
	if rec := serve(h, "/api/bookings", ""); rec.Code != http.StatusOK {
		t.Errorf("after one second: status = %d, want 200", rec.Code)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 1, PerMinute: 1}, logger.NewNop())(okHandler())

	for _, addr := range []string{"192.0.2.1:1000", "192.0.2.2:1000"} {
		if rec := serve(h, "/", addr); rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", addr, rec.Code)
		}
	}
}

func TestRateLimitExemptPaths(t *testing.T) {
	h := RateLimit(RateLimitConfig{
		Burst:       1,
		PerMinute:   1,
		ExemptPaths: []string{"/healthz", "/readyz"},
	}, logger.NewNop())(okHandler())

	for range 3 {
		if rec := serve(h, "/healthz", ""); rec.Code != http.StatusOK {
			t.Fatalf("/healthz: status = %d, want 200", rec.Code)
		}
	}
	if rec := serve(h, "/api/alumni", ""); rec.Code != http.StatusOK {
		t.Errorf("probes consumed the API budget: status = %d", rec.Code)
	}
	if rec := serve(h, "/healthzz", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("/healthzz: status = %d, want 429", rec.Code)
	}
}

func TestLimiterEvictsIdleClients(t *testing.T) {
	start := time.Unix(1700000000, 0)
	l := newLimiter(RateLimitConfig{Burst: 1, PerMinute: 1, MaxClients: 2, IdleTTL: time.Minute}, start)

	l.take("a", start)
	l.take("b", start)
	l.take("c", start.Add(2*time.Minute))

	if _, ok := l.clients["a"]; ok {
		t.Error("idle client a was not evicted")
	}
	if _, ok := l.clients["c"]; !ok {
		t.Error("client c missing after insert")
	}
}
