package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/student-records/internal/middleware"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler reports whether the service and its dependencies are up.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth returns 200 with status "healthy" when every enabled check
// passes and 503 otherwise. Redis is reported but never fails the check,
// since the API works without it.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	obs := h.server.Config.Observability
	timeout := obs.HealthCheckTimeout()
	isHealthy := true

	if h.server.DB != nil && obs.ShouldCheck("database") {
		result := h.runCheck(c.Request().Context(), &logger, "database", timeout, h.server.DB.Pool.Ping)
		response.Checks["database"] = result
		if result.Status != "healthy" {
			isHealthy = false
		}
	}

	if h.server.Redis != nil && obs.ShouldCheck("redis") {
		response.Checks["redis"] = h.runCheck(c.Request().Context(), &logger, "redis", timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if !isHealthy {
		response.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.server.LoggerService.RecordEvent("HealthCheckError", map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(
	parent context.Context,
	logger *zerolog.Logger,
	name string,
	timeout time.Duration,
	ping func(context.Context) error,
) checkResult {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.server.LoggerService.RecordEvent("HealthCheckError", map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
}
