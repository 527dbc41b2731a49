package middleware

import (
	"net/http"
	"sync"
	"time"

	"delicious/config"
	deliverycontext "delicious/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 0.2
	defaultBurst             = 5
	visitorIdleTTL           = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client IP with its own token bucket. Idle
// visitors are swept while holding the lock, at most once per visitorIdleTTL.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter builds the limiter from rateLimit config.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rps, burst := defaultRequestsPerSecond, defaultBurst
	if cfg != nil && cfg.RateLimit != nil {
		if cfg.RateLimit.RequestsPerSecond > 0 {
			rps = cfg.RateLimit.RequestsPerSecond
		}
		if cfg.RateLimit.Burst > 0 {
			burst = cfg.RateLimit.Burst
		}
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > visitorIdleTTL {
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTTL {
				delete(rl.visitors, key)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Limit rejects requests over the budget of the client IP with 429.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.allow(c.RealIP()) {
			c.Response().Header().Set("Retry-After", "60")

			return c.JSON(http.StatusTooManyRequests, map[string]any{
				"error": map[string]string{
					"code":    "RATE_LIMITED",
					"message": "too many requests, please slow down",
				},
				"meta": map[string]string{
					"request_id": deliverycontext.GetRequestID(c),
				},
			})
		}

		return next(c)
	}
}
