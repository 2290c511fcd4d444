package mw

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/utils"
)

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Burst      int           // requests a fresh client may send at once
	PerMinute  int           // tokens refilled per minute
	MaxClients int           // idle clients are evicted once this many are tracked
	IdleTTL    time.Duration // how long an untouched client is remembered
	TrustProxy bool          // resolve client IP from proxy headers when true

	// ExemptPaths are served without consuming tokens (exact match or
	// prefix followed by "/").
	ExemptPaths []string

	// Now overrides the clock in tests.
	Now func() time.Time
}

type clientBucket struct {
	tokens  float64
	updated time.Time
}

type decision struct {
	allowed    bool
	remaining  int
	retryAfter int // seconds
}

type limiter struct {
	mu         sync.Mutex
	perMinute  float64
	capacity   float64
	maxClients int
	idleTTL    time.Duration
	clients    map[string]*clientBucket
	nextSweep  time.Time
}

func newLimiter(cfg RateLimitConfig, now time.Time) *limiter {
	idle := cfg.IdleTTL
	if idle <= 0 {
		idle = 15 * time.Minute
	}
	return &limiter{
		perMinute:  float64(max(cfg.PerMinute, 1)),
		capacity:   float64(max(cfg.Burst, 1)),
		maxClients: cfg.MaxClients,
		idleTTL:    idle,
		clients:    make(map[string]*clientBucket),
		nextSweep:  now.Add(idle),
	}
}

// take spends one token of client's bucket if one is available.
func (l *limiter) take(client string, now time.Time) decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.nextSweep) || (l.maxClients > 0 && len(l.clients) >= l.maxClients) {
		l.evictIdle(now)
	}

	b, ok := l.clients[client]
	if !ok {
		b = &clientBucket{tokens: l.capacity, updated: now}
		l.clients[client] = b
	}
	if elapsed := now.Sub(b.updated).Seconds(); elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.perMinute/60)
	}
	b.updated = now

	if b.tokens < 1 {
		wait := int(math.Ceil((1 - b.tokens) * 60 / l.perMinute))
		return decision{retryAfter: max(wait, 1)}
	}
	b.tokens--
	return decision{allowed: true, remaining: int(b.tokens)}
}

// evictIdle forgets clients whose bucket has been untouched for idleTTL.
// Must be called with l.mu held.
func (l *limiter) evictIdle(now time.Time) {
	for client, b := range l.clients {
		if now.Sub(b.updated) > l.idleTTL {
			delete(l.clients, client)
		}
	}
	l.nextSweep = now.Add(l.idleTTL)
}

func exempt(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

// RateLimit throttles each client IP to Burst requests at once, refilled at
// PerMinute per minute. Rejected requests get 429 with Retry-After.
func RateLimit(cfg RateLimitConfig, log logger.Logger) func(http.Handler) http.Handler {
	clock := cfg.Now
	if clock == nil {
		clock = time.Now
	}
	l := newLimiter(cfg, clock())
	limit := strconv.Itoa(int(l.capacity))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exempt(r.URL.Path, cfg.ExemptPaths) {
				next.ServeHTTP(w, r)
				return
			}

			client := utils.ClientIP(r, cfg.TrustProxy)
			d := l.take(client, clock())

			h := w.Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
			if !d.allowed {
				h.Set("Retry-After", strconv.Itoa(d.retryAfter))
				log.Warn("rate limit exceeded",
					logger.String("client", client),
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.Int("retry_after_s", d.retryAfter))
				deny(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
