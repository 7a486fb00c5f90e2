package middleware

import (
	"time"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	loginBurst         = 5
	loginLimiterExpiry = 3 * time.Minute
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// RecordRateLimitHit records a RateLimitHit event in New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint, identifier string) {
	r.server.LoggerService.RecordEvent("RateLimitHit", map[string]interface{}{
		"endpoint":   endpoint,
		"identifier": identifier,
	})
}

// LoginRateLimiter throttles login attempts per client IP to
// Auth.LoginRateLimit per second with a small burst.
func (r *RateLimitMiddleware) LoginRateLimiter() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(r.server.Config.Auth.LoginRateLimit),
		Burst:     loginBurst,
		ExpiresIn: loginLimiterExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewForbiddenError("Unable to identify client", false)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path(), identifier)
			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("login rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many login attempts, please try again later")
		},
	})
}
