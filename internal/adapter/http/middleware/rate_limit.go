package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"damage_triage/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// A limiter idle for a full window has refilled and can be dropped.
const rateLimitWindow = time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu        sync.Mutex
	perMinute int
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

func newIPLimiter(perMinute int, now time.Time) *ipLimiter {
	return &ipLimiter{
		perMinute: perMinute,
		clients:   make(map[string]*clientLimiter),
		lastSweep: now,
	}
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > rateLimitWindow {
		for key, cl := range l.clients {
			if now.Sub(cl.lastSeen) > rateLimitWindow {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(rateLimitWindow/time.Duration(l.perMinute)), l.perMinute)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit caps requests per client IP. Each pipeline run costs several
// model calls, so it guards the expensive routes only. The client IP comes
// from gin, so the engine's trusted proxies decide whether X-Forwarded-For
// is honoured.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newIPLimiter(perMinute, time.Now())

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.allow(ip, time.Now()) {
			log.Printf("[http][ratelimit] limit exceeded client_ip=%s request_id=%s", ip, GetRequestID(c))
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
