package middleware

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/bwdtc/bridgewater-dems/internal/metrics"
)

const (
	defaultLimiterIdle = 10 * time.Minute
	defaultSweepPeriod = time.Minute
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

// RateLimiter keeps one token bucket per client IP. Buckets idle longer than
// the idle window are dropped by Run.
type RateLimiter struct {
	rps      rate.Limit
	burst    int
	idle     time.Duration
	limiters sync.Map // map[string]*limiterEntry
	now      func() time.Time
}

// NewRateLimiter allows rps events per second per client with the given burst.
// A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{rps: rate.Limit(rps), burst: burst, idle: defaultLimiterIdle, now: time.Now}
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	now := l.now().UnixNano()
	v, ok := l.limiters.Load(key)
	if !ok {
		v, _ = l.limiters.LoadOrStore(key, &limiterEntry{lim: rate.NewLimiter(l.rps, l.burst)})
	}
	e := v.(*limiterEntry)
	e.lastSeen.Store(now)
	return e.lim
}

// Sweep drops buckets not used since the idle window and reports how many
// were removed.
func (l *RateLimiter) Sweep() int {
	cutoff := l.now().Add(-l.idle).UnixNano()
	removed := 0
	l.limiters.Range(func(k, v any) bool {
		if v.(*limiterEntry).lastSeen.Load() < cutoff {
			l.limiters.Delete(k)
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps idle buckets every period until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, period time.Duration) {
	if period <= 0 {
		period = defaultSweepPeriod
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// Handler rejects requests over the limit with 429.
func (l *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.rps <= 0 {
			return c.Next()
		}
		ip := c.IP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.get("ip:" + ip).Allow() {
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(1))
			return fiber.ErrTooManyRequests
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		return c.Next()
	}
}
