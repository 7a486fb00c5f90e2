package middleware

import (
	"github.com/deppfellow/student-records/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server so
// they are built once and shared by the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	Auth            *AuthMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. Tracing degrades to
// a no-op when New Relic is not configured.
func NewMiddlewares(s *server.Server, authenticator Authenticator) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, authenticator),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
