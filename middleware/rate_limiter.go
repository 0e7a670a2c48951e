package middleware

import (
	"net/http"
	"sync"
	"time"

	"mycare/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultRequestsPerMin = 120

// limiterRegistry hands out one token bucket per client IP.
type limiterRegistry struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterRegistry() *limiterRegistry {
	return &limiterRegistry{limiters: make(map[string]*rate.Limiter)}
}

func (r *limiterRegistry) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[ip]; ok {
		return l
	}

	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	r.limiters[ip] = l
	return l
}

// RateLimitMiddleware enforces a per-IP request rate across all endpoints.
func RateLimitMiddleware() gin.HandlerFunc {
	registry := newLimiterRegistry()

	return func(c *gin.Context) {
		if !registry.get(clientIP(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
