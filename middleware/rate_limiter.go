package middleware

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"fin2x/utils"

	"golang.org/x/time/rate"
)

// trustedProxies parses TRUSTED_PROXIES (comma separated CIDRs or IPs).
func trustedProxies() []string {
	raw := os.Getenv("TRUSTED_PROXIES")
	if raw == "" {
		return nil
	}
	var out []string
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// clientIPGeneric resolves the originating client IP. X-Forwarded-For is only
// honored when the direct peer is a trusted proxy.
func clientIPGeneric(r *http.Request, trusted []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !isTrustedProxy(remoteIP, trusted) {
		return remoteIP
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		for i := len(parts) - 1; i >= 0; i-- {
			candidate := strings.TrimSpace(parts[i])
			if candidate == "" {
				continue
			}
			if !isTrustedProxy(candidate, trusted) {
				return candidate
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return remoteIP
}

func isTrustedProxy(ip string, trusted []string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, entry := range trusted {
		if strings.Contains(entry, "/") {
			_, cidr, err := net.ParseCIDR(entry)
			if err == nil && cidr.Contains(parsed) {
				return true
			}
			continue
		}
		if t := net.ParseIP(entry); t != nil && t.Equal(parsed) {
			return true
		}
	}
	return false
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter throttles requests per client IP using token buckets.
type IPRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	trusted []string
}

// NewIPRateLimiter allows maxReq requests per window per IP.
func NewIPRateLimiter(maxReq int, window time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   rate.Every(window / time.Duration(maxReq)),
		burst:   maxReq,
		trusted: trustedProxies(),
	}
	go l.cleanup()
	return l
}

func (l *IPRateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

func (l *IPRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for key, e := range l.entries {
			if time.Since(e.lastSeen) > 10*time.Minute {
				delete(l.entries, key)
			}
		}
		l.mu.Unlock()
	}
}

// Middleware rejects requests over the limit with 429.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(clientIPGeneric(r, l.trusted)).Allow() {
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{Success: false, Message: "Too many requests, please try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserMiddleware keys the limiter by authenticated user id instead of IP.
// Must sit behind AuthMiddleware or AdminAuthMiddleware.
func (l *IPRateLimiter) UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIPGeneric(r, l.trusted)
		if uid, ok := utils.GetUserID(r); ok {
			key = "user:" + strconv.FormatUint(uint64(uid), 10)
		}
		if !l.get(key).Allow() {
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{Success: false, Message: "Too many requests, please try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
