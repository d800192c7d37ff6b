package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"taskboard-api/config"
	"taskboard-api/pkg/log"
)

// Middleware bundles the request middlewares: bearer auth resolving the
// owner id and a per-owner rate limiter.
type Middleware struct {
	l          log.Logger
	authSecret string

	// tokenCache memoizes verified token → owner resolutions.
	tokenCache *expirable.LRU[string, string]

	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, auth config.AuthConfig, limit config.RateLimitConfig) Middleware {
	perMin := limit.RequestsPerMin
	if perMin <= 0 {
		perMin = 300
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:          l,
		authSecret: auth.Secret,
		tokenCache: expirable.NewLRU[string, string](1000, nil, 5*time.Minute),
		limiters:   expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:       rate.Limit(float64(perMin) / 60.0),
		burst:      burst,
	}
}
