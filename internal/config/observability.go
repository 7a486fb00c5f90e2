package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility: logging, New Relic APM and dependency health checks.
//
// It is optional at the root level (pointer in Config). If omitted,
// defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// It is always forced to config.ServiceName.
	ServiceName string `koanf:"service_name"`

	// Environment splits telemetry by environment (production, local, ...).
	Environment string `koanf:"environment"`

	Logging      LoggingConfig      `koanf:"logging"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format, "json" or "console".
	Format string `koanf:"format"`

	// SlowQueryThreshold is a duration beyond which queries are considered
	// slow, e.g. "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
// An empty LicenseKey disables the agent entirely.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables debug output for the agent. Usually off in
	// production to avoid mixed log formats.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig controls dependency checks exposed on /health.
type HealthChecksConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"omitempty,min=1s"`
	Timeout  time.Duration `koanf:"timeout" validate:"omitempty,min=1s"`

	// Checks names the dependencies to probe ("database", "redis").
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig provides a safe set of defaults, used when
// Config.Observability is nil.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // Disabled by default to avoid mixed log formats
		},
		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	// An empty level is resolved per environment by GetLogLevel.
	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// Without an explicit level, production defaults to "info" and every other
// environment to "debug".
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// HealthCheckTimeout returns the per-dependency timeout for /health.
func (c *ObservabilityConfig) HealthCheckTimeout() time.Duration {
	if c.HealthChecks.Timeout <= 0 {
		return 5 * time.Second
	}
	return c.HealthChecks.Timeout
}

// ShouldCheck reports whether the named dependency is probed by /health.
// An empty Checks list probes everything.
func (c *ObservabilityConfig) ShouldCheck(name string) bool {
	if !c.HealthChecks.Enabled {
		return false
	}
	if len(c.HealthChecks.Checks) == 0 {
		return true
	}
	for _, check := range c.HealthChecks.Checks {
		if check == name {
			return true
		}
	}
	return false
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
