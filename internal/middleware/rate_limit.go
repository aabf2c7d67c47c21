package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Limiter cache bounds: idle clients fall out after the TTL, so the per-IP
// state cannot grow for the life of the process.
const (
	rateLimitMaxClients = 1024
	rateLimitClientTTL  = 10 * time.Minute
)

// RateLimit applies a per-client-IP token bucket. Zero or negative
// rateLimitPerMin disables limiting.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](rateLimitMaxClients, nil, rateLimitClientTTL)

	perSecond := rate.Limit(float64(m.rateLimitPerMin) / 60.0)
	burst := m.rateLimitPerMin

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
