// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured
// Go types and validates that required values are present so they can
// be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix RECORDS_.
	Keys are lowercased with the prefix removed, and nested struct fields
	are addressed with the "." delimiter:

	  RECORDS_SERVER.PORT -> server.port -> Config.Server.Port
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "RECORDS_"

// ServiceName tags logs, traces and issued tokens.
const ServiceName = "student-records"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres URL for this configuration. The password is
// URL-escaped so characters like '@' or ':' don't break the URL.
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication settings.
//
// JWTSecret signs access tokens. AdminUsername/AdminPassword describe the
// single account seeded at startup. TokenTTL falls back to
// DefaultTokenTTL and LoginRateLimit to DefaultLoginRateLimit.
type AuthConfig struct {
	JWTSecret      string        `koanf:"jwt_secret" validate:"required,min=16"`
	AdminUsername  string        `koanf:"admin_username" validate:"required"`
	AdminPassword  string        `koanf:"admin_password" validate:"required"`
	TokenTTL       time.Duration `koanf:"token_ttl"`
	LoginRateLimit float64       `koanf:"login_rate_limit"`
}

const (
	// DefaultTokenTTL matches the access token lifetime most JWT libraries
	// ship with.
	DefaultTokenTTL = 15 * time.Minute

	// DefaultLoginRateLimit is the sustained login attempts per second
	// allowed per client IP.
	DefaultLoginRateLimit = 1.0
)

// IntegrationConfig holds third-party API credentials.
// An empty ResendAPIKey disables email delivery.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it and applies defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// CORS origins come in as a single comma separated value.
	if raw := k.String("server.cors_allowed_origins"); raw != "" {
		mainConfig.Server.CORSAllowedOrigins = splitList(raw)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// applyDefaults fills the optional blocks. ServiceName and Environment are
// always forced so telemetry sees consistent naming.
func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = DefaultTokenTTL
	}
	if c.Auth.LoginRateLimit <= 0 {
		c.Auth.LoginRateLimit = DefaultLoginRateLimit
	}
	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = "Student Records <onboarding@resend.dev>"
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
