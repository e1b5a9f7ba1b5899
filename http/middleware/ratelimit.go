package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter hands out a token bucket per client IP
type RateLimiter struct {
	perMinute int
	burst     int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter allows perMinute requests per client IP, with bursts of up
// to burst. A burst below 1 is treated as 1, since rate.Limiter refuses
// everything with a burst of 0.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	burst = max(burst, 1)
	return &RateLimiter{
		perMinute: perMinute,
		burst:     burst,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Allow spends a token for ip, if it has one
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	lim, ok := rl.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.burst)
		rl.limiters[ip] = lim
	}
	rl.mu.Unlock()

	return lim.Allow()
}

// Middleware answers 429 once a client has run out of tokens.
// A limiter with perMinute <= 0 lets everything through.
func (rl *RateLimiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	if rl.perMinute <= 0 {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(ClientIP(r)) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// ClientIP is the host part of RemoteAddr (the tls-terminating proxy is trusted to set it)
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
