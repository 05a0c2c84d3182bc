package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// LoginAttemptsPerMinute is the default login budget per client IP.
const LoginAttemptsPerMinute = 10

// RateLimiter limits requests per client IP on the routes it is applied to.
// perMinute is the sustained rate and also the burst. Refused requests are
// answered by deny, or with a plain 429 when deny is nil.
func RateLimiter(perMinute int, deny echo.HandlerFunc) echo.MiddlewareFunc {
	if deny == nil {
		deny = func(c echo.Context) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		}
	}
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60),
			Burst: perMinute,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return deny(c)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
