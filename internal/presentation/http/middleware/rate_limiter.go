package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madhuram-pos/pos-api/internal/config"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/response"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles admin login attempts per client IP. The burst
// is the attempt budget; the refill rate spreads that budget over the
// lockout window, so a client that burns its attempts waits the window out.
type LoginRateLimiter struct {
	limiters    map[string]*loginLimiterEntry
	mu          sync.Mutex
	rate        rate.Limit
	burst       int
	cleanupTick time.Duration
	entryTTL    time.Duration
}

type loginLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginRateLimiter creates a per-IP login limiter from config:
// LoginAttempts tries per LoginWindow seconds.
func NewLoginRateLimiter(cfg config.RateLimitConfig) *LoginRateLimiter {
	attempts := cfg.LoginAttempts
	if attempts <= 0 {
		attempts = 5
	}
	window := cfg.LoginWindow
	if window <= 0 {
		window = 60
	}

	rl := &LoginRateLimiter{
		limiters:    make(map[string]*loginLimiterEntry),
		rate:        rate.Limit(float64(attempts) / float64(window)),
		burst:       attempts,
		cleanupTick: 5 * time.Minute,
		entryTTL:    15 * time.Minute,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *LoginRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, exists := rl.limiters[ip]; exists {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[ip] = &loginLimiterEntry{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *LoginRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.entryTTL)
		for ip, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns a Gin middleware enforcing the per-IP limit.
func (rl *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			response.ErrorWithCode(c, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
