package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultCleanupInterval = 5 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// RateLimiter throttles the credential endpoints per client IP.
type RateLimiter struct {
	enabled         bool
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	logger          *slog.Logger

	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewRateLimiter builds the limiter from rateLimit.auth and runs its cleanup
// loop for the lifetime of the application.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	var (
		enabled  bool
		perMin   = 10
		burst    = 5
		interval = defaultCleanupInterval
	)
	if rl := params.Config.RateLimit; rl != nil {
		enabled = rl.Auth.Enabled
		if rl.Auth.RequestsPerMinute > 0 {
			perMin = rl.Auth.RequestsPerMinute
		}
		if rl.Auth.Burst > 0 {
			burst = rl.Auth.Burst
		}
		if rl.Auth.CleanupInterval > 0 {
			interval = rl.Auth.CleanupInterval
		}
	}

	rl := newRateLimiter(enabled, rate.Limit(float64(perMin)/60.0), burst, interval, params.Logger)
	if !enabled {
		return rl
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go rl.cleanupLoop()

			return nil
		},
		OnStop: func(context.Context) error {
			close(rl.stopCh)

			return nil
		},
	})

	return rl
}

func newRateLimiter(enabled bool, limit rate.Limit, burst int, cleanupInterval time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		enabled:         enabled,
		limit:           limit,
		burst:           burst,
		cleanupInterval: cleanupInterval,
		logger:          logger,
		limiters:        make(map[string]*clientLimiter),
		stopCh:          make(chan struct{}),
	}
}

// Limit answers 429 RATE_LIMITED with a Retry-After header once a client IP
// exhausts its bucket.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !rl.enabled {
		return next
	}

	return func(c echo.Context) error {
		clientIP := c.RealIP()
		if rl.limiterFor(clientIP).Allow() {
			return next(c)
		}

		rl.logger.Warn("Rate limit exceeded",
			slog.String("remote_ip", clientIP),
			slog.String("path", c.Request().URL.Path),
		)

		c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))

		return response.AppError(c, domainerrors.ErrRateLimited)
	}
}

// LimiterCount returns the number of tracked clients.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.RLock()
	cl, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		cl.lastAccess = now
		rl.mu.Unlock()

		return cl.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, exists := rl.limiters[key]; exists {
		cl.lastAccess = now

		return cl.limiter
	}

	cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastAccess: now}
	rl.limiters[key] = cl

	return cl.limiter
}

// retryAfterSeconds is the time until one token is refilled.
func (rl *RateLimiter) retryAfterSeconds() int {
	seconds := int(math.Ceil(1.0 / float64(rl.limit)))

	return max(seconds, 1)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.cleanup(now)
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}
