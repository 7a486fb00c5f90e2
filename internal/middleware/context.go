package middleware

import (
	"github.com/deppfellow/student-records/internal/logger"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	// UserIDKey holds the authenticated username in the echo context.
	UserIDKey = "user_id"

	// LoggerKey holds the request-scoped *zerolog.Logger in the echo
	// context.
	LoggerKey = "logger"
)

// ContextEnhancer builds a request-scoped logger carrying the request id,
// method, path, client ip and trace ids.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext stores the request logger in the echo context and in the
// request's context.Context, where services read it with zerolog.Ctx.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}

			setLogger(c, contextLogger)

			return next(c)
		}
	}
}

// setLogger makes l the request logger for both echo and context.Context
// consumers.
func setLogger(c echo.Context, l zerolog.Logger) {
	c.Set(LoggerKey, &l)
	c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
}

// GetUserID returns the authenticated username, or "" before RequireAuth.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetLogger retrieves the request-scoped logger. Without EnhanceContext it
// returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
