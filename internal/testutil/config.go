package testutil

import (
	"time"

	"github.com/deppfellow/student-records/internal/config"
)

// Config returns a configuration good enough to build the router without
// external services.
func Config() *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.Environment = "test"
	obs.HealthChecks.Enabled = false

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-test-secret-test-secret",
			AdminUsername:  "admin",
			AdminPassword:  "admin123",
			TokenTTL:       15 * time.Minute,
			LoginRateLimit: 1000,
		},
		Integration: config.IntegrationConfig{
			EmailFrom: "Student Records <test@example.com>",
		},
		Observability: obs,
	}
}
