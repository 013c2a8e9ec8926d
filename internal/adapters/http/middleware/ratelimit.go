package middleware

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen/numerology-service/internal/adapters/http/dto"
)

// RateLimitConfig sizes the per-client token bucket.
type RateLimitConfig struct {
	// Requests are allowed per Window on average.
	Requests int
	Window   time.Duration

	// Burst is the bucket size. Zero means Requests.
	Burst int

	// CleanupInterval is how often idle clients are forgotten. Zero means Window.
	CleanupInterval time.Duration

	// OnLimit is called with the route of every rejected request.
	OnLimit func(route string)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	onLimit  func(string)
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewRateLimiter starts a limiter whose janitor runs until ctx ends or Stop
// is called.
func NewRateLimiter(ctx context.Context, cfg RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Requests
	}

	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = cfg.Window
	}

	ctx, cancel := context.WithCancel(ctx)

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(cfg.Window / time.Duration(max(cfg.Requests, 1))),
		burst:    burst,
		idle:     cfg.Window,
		onLimit:  cfg.OnLimit,
		now:      time.Now,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go rl.janitor(ctx, interval)

	return rl
}

// Stop ends the janitor goroutine and waits for it.
func (rl *RateLimiter) Stop() {
	rl.cancel()
	<-rl.done
}

// Middleware rejects over-limit clients with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := rl.now()
		lim := rl.limiter(c.ClientIP(), now)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))

		r := lim.ReserveN(now, 1)
		if delay := r.DelayFrom(now); !r.OK() || delay > 0 {
			r.CancelAt(now)

			if rl.onLimit != nil {
				rl.onLimit(routeOf(c))
			}

			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			c.Header("X-RateLimit-Remaining", "0")
			dto.AbortWithCode(c, dto.ErrorCodeRateLimited, "too many requests, please try again later")

			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(lim.TokensAt(now))))
		c.Next()
	}
}

func (rl *RateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}

	v.lastSeen = now

	return v.limiter
}

// visitorCount is the number of tracked clients.
func (rl *RateLimiter) visitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.visitors)
}

func (rl *RateLimiter) janitor(ctx context.Context, interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

// sweep forgets clients idle for longer than one window. Their buckets
// would be full again by then anyway.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, key)
		}
	}
}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}

	return "unmatched"
}
