package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimit returns middleware enforcing a per-client token bucket
// keyed by remote address. Idle client buckets are pruned in the
// background until the returned stop function is called.
func RateLimit(cfg *RateLimitConfig) (func(http.Handler) http.Handler, func()) {
	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
		done    = make(chan struct{})
	)

	getLimiter := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if entry, ok := clients[key]; ok {
			entry.lastAccess = time.Now()
			return entry.limiter
		}

		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
		clients[key] = &clientLimiter{limiter: limiter, lastAccess: time.Now()}
		return limiter
	}

	go func() {
		ticker := time.NewTicker(cfg.CleanupIntervalDuration())
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				mu.Lock()
				now := time.Now()
				for key, entry := range clients {
					if now.Sub(entry.lastAccess) > cfg.IdleExpiryDuration() {
						delete(clients, key)
					}
				}
				mu.Unlock()
			case <-done:
				return
			}
		}
	}()

	stop := func() { close(done) }

	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}

			if !getLimiter(key).Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	return middleware, stop
}
