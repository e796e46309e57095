package middleware

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"eliavigram/internal/infrastructure/ratelimit"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/response"
)

const (
	ActionSimilar  = "similar"
	ActionStories  = "stories"
	ActionBackfill = "backfill"
)

type rateLimitBody struct {
	response.ErrorBody
	RetryAfter int `json:"retry_after"`
}

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles action per client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := m.limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("RATE LIMIT: %s blocked for %s (retry in %v)", action, ip, wait)
				return c.JSON(http.StatusTooManyRequests, rateLimitBody{
					ErrorBody: response.ErrorBody{
						Error: "Rate limit exceeded",
						Code:  "TOO_MANY_REQUESTS",
					},
					RetryAfter: int(math.Ceil(wait.Seconds())),
				})
			}

			return next(c)
		}
	}
}
