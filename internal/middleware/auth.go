package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/lib/token"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/labstack/echo/v4"
)

// Authenticator turns a bearer token into the username it was issued to.
type Authenticator interface {
	Authenticate(raw string) (string, error)
}

// AuthMiddleware protects the record endpoints with bearer tokens.
type AuthMiddleware struct {
	server        *server.Server
	authenticator Authenticator
}

func NewAuthMiddleware(s *server.Server, authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server:        s,
		authenticator: authenticator,
	}
}

// RequireAuth rejects requests without a valid "Authorization: Bearer"
// token with a 401. On success the username is stored under UserIDKey and
// added to the request logger.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("missing bearer token")
			return errs.NewUnauthorizedError("Missing authorization header", true)
		}

		username, err := auth.authenticator.Authenticate(raw)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("token rejected")

			if errors.Is(err, token.ErrExpiredToken) {
				return errs.NewUnauthorizedError("Token has expired", true)
			}
			return errs.NewUnauthorizedError("Invalid token", true)
		}

		c.Set(UserIDKey, username)
		setLogger(c, GetLogger(c).With().Str("user_id", username).Logger())

		GetLogger(c).Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
