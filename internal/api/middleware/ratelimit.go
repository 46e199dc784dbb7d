package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorTTL    = 10 * time.Minute
	sweepInterval = 5 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// visitors holds one token bucket per client IP. Idle entries are dropped
// lazily while handling requests.
type visitors struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

func newVisitors(rps float64, burst int) *visitors {
	return &visitors{
		rps:     rate.Limit(rps),
		burst:   burst,
		entries: map[string]*limiterEntry{},
		now:     time.Now,
	}
}

func (v *visitors) allow(ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Sub(v.lastSweep) > sweepInterval {
		for k, e := range v.entries {
			if now.Sub(e.last) > visitorTTL {
				delete(v.entries, k)
			}
		}
		v.lastSweep = now
	}

	e, ok := v.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.entries[ip] = e
	}
	e.last = now
	return e.limiter.AllowN(now, 1)
}

// getIP keys buckets on the connection address. Forwarding headers are only
// honoured when chi's RealIP middleware has already rewritten RemoteAddr.
func getIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit applies an IP-based token bucket limiter. rps <= 0 disables it.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	v := newVisitors(rps, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.allow(getIP(r)) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
