// Package config provides centralized configuration. Values are layered:
// defaults, then an optional YAML/JSON file, then environment variables.
// Shared by both cmd/dashboard and cmd/footballctl.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"
)

// --------------------------------------------------------------------------
// Table names, matching the football schema
// --------------------------------------------------------------------------

const (
	TeamsTable       = "equipe"
	PlayersTable     = "joueur"
	MatchesTable     = "match"
	ResultsTable     = "resultatmatch"
	PlayerStatsTable = "statistiquejoueur"
)

// --------------------------------------------------------------------------
// Config struct: keys are the lowercase environment variable names
// --------------------------------------------------------------------------

type Config struct {
	// Database. DatabaseURL wins; otherwise the URL is built from the parts.
	DatabaseURL    string        `koanf:"database_url"`
	DBHost         string        `koanf:"db_host" validate:"required_without=DatabaseURL"`
	DBPort         int           `koanf:"db_port" validate:"min=1,max=65535"`
	DBName         string        `koanf:"db_name" validate:"required_without=DatabaseURL"`
	DBUser         string        `koanf:"db_user" validate:"required_without=DatabaseURL"`
	DBPassword     string        `koanf:"db_password"`
	DBSSLMode      string        `koanf:"db_sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBPoolMinConns int           `koanf:"db_pool_min_conns" validate:"gte=0"`
	DBPoolMaxConns int           `koanf:"db_pool_max_conns" validate:"gte=1,gtefield=DBPoolMinConns"`
	DBPoolMaxLife  time.Duration `koanf:"db_pool_max_life" validate:"gt=0"`

	// Query execution
	QueryTimeout        time.Duration `koanf:"query_timeout" validate:"gt=0"`
	BreakerMaxFailures  uint32        `koanf:"breaker_max_failures" validate:"gte=1"`
	BreakerOpenDuration time.Duration `koanf:"breaker_open_duration" validate:"gt=0"`

	// API server
	APIHost     string `koanf:"api_host"`
	APIPort     int    `koanf:"api_port" validate:"min=1,max=65535"`
	Environment string `koanf:"environment" validate:"oneof=development staging production"`
	LogLevel    string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// CORS
	CORSAllowOrigins []string `koanf:"cors_allow_origins"`

	// Rate limiting
	RateLimitEnabled  bool          `koanf:"rate_limit_enabled"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		DBHost:         "localhost",
		DBPort:         5432,
		DBName:         "foot_ball",
		DBUser:         "postgres",
		DBSSLMode:      "disable",
		DBPoolMinConns: 1,
		DBPoolMaxConns: 4,
		DBPoolMaxLife:  30 * time.Minute,

		QueryTimeout:        5 * time.Second,
		BreakerMaxFailures:  5,
		BreakerOpenDuration: 30 * time.Second,

		APIHost:     "0.0.0.0",
		APIPort:     8000,
		Environment: "development",
		LogLevel:    "info",

		CORSAllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8501",
		},

		RateLimitEnabled:  true,
		RateLimitRequests: 100,
		RateLimitWindow:   60 * time.Second,
	}
}

// DSN returns the connection string handed to pgxpool.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.APIHost, strconv.Itoa(c.APIPort))
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps LogLevel to a slog level, info when it is unset or unknown.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Redacted returns the DSN with the password masked, for log lines.
func (c *Config) Redacted() string {
	u, err := url.Parse(c.DSN())
	if err != nil {
		return fmt.Sprintf("<unparseable database url: %v>", err)
	}
	return u.Redacted()
}
