package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const (
	visitorCookie       = "vid"
	visitorContextKey   = "visitor_id"
	minVisitorIDLength  = 16
	visitorCookieMaxAge = 365 * 24 * 60 * 60

	guardIdleTTL      = 10 * time.Minute
	guardSweepTrigger = 1024
)

// newVisitorID returns a 32-char hex identifier
func newVisitorID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// visitorID makes sure every request carries a stable visitor identifier cookie
func visitorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		vid, err := c.Cookie(visitorCookie)
		if err != nil || len(vid) < minVisitorIDLength || !validation.IsValidVisitorID(vid) {
			vid = newVisitorID()
		}
		// refresh on every request so the year counts from the last visit
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(visitorCookie, vid, visitorCookieMaxAge, "/", "", false, true)
		c.Set(visitorContextKey, vid)
		c.Next()
	}
}

func visitorFrom(c *gin.Context) string {
	return c.GetString(visitorContextKey)
}

// adminAuth requires "Authorization: Bearer <token>" when token is set
func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

type guardEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// submissionGuard is a per-client token bucket in front of the submission
// endpoints. It is independent of the per-visitor cooldowns.
type submissionGuard struct {
	mu      sync.Mutex
	clients map[string]*guardEntry
	limit   rate.Limit
	burst   int
	every   time.Duration
	clock   clockwork.Clock
}

func newSubmissionGuard(perMinute, burst int, clock clockwork.Clock) *submissionGuard {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if burst <= 0 {
		burst = 1
	}
	g := &submissionGuard{
		clients: make(map[string]*guardEntry),
		limit:   rate.Inf,
		burst:   burst,
		clock:   clock,
	}
	if perMinute > 0 {
		g.every = time.Minute / time.Duration(perMinute)
		g.limit = rate.Every(g.every)
	}
	return g
}

// allow reports whether client may submit now and, if not, how long to wait
func (g *submissionGuard) allow(client string) (bool, time.Duration) {
	now := g.clock.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.clients) >= guardSweepTrigger {
		for k, e := range g.clients {
			if now.Sub(e.lastSeen) > guardIdleTTL {
				delete(g.clients, k)
			}
		}
	}

	entry, ok := g.clients[client]
	if !ok {
		entry = &guardEntry{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.clients[client] = entry
	}
	entry.lastSeen = now

	if entry.limiter.AllowN(now, 1) {
		return true, 0
	}

	reservation := entry.limiter.ReserveN(now, 1)
	wait := reservation.DelayFrom(now)
	reservation.CancelAt(now)
	if wait <= 0 {
		wait = g.every
	}
	return false, wait
}

func (g *submissionGuard) middleware(s *HTTPServerAdapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ok, wait := g.allow(c.ClientIP()); !ok {
			s.handleError(c, errors.NewRateLimitedError("too many submissions, slow down", wait))
			c.Abort()
			return
		}
		c.Next()
	}
}
