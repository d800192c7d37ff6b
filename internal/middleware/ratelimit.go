package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskboard-api/pkg/response"
)

// RateLimit throttles requests per owner. Must run after Auth; unauthenticated
// requests fall back to the client IP as the limiter key.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := OwnerID(c)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
