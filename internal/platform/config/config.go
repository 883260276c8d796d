// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"net/url"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	Server       ServerConfig    `koanf:"server"`
	Log          LogConfig       `koanf:"log"`
	Storage      StorageConfig   `koanf:"storage"`
	Constituency ClientConfig    `koanf:"constituency"`
	Petitions    PetitionsConfig `koanf:"petitions"`
	Jobs         JobsConfig      `koanf:"jobs"`
	Telemetry    TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects and configures the petition store.
type StorageConfig struct {
	Driver   string `koanf:"driver"`
	DSN      string `koanf:"dsn"`
	Schema   string `koanf:"schema"`
	MaxConns int    `koanf:"max_conns"`
}

// RedactedDSN returns the DSN with any password replaced, for logging.
// DSNs that do not parse as URLs are hidden entirely.
func (s StorageConfig) RedactedDSN() string {
	if s.DSN == "" {
		return ""
	}
	u, err := url.Parse(s.DSN)
	if err != nil || u.Scheme == "" {
		return "[REDACTED]"
	}
	return u.Redacted()
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	Enabled        bool                 `koanf:"enabled"`
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound requests. Zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PetitionsConfig holds petition lifecycle settings.
type PetitionsConfig struct {
	MaxSponsors      int           `koanf:"max_sponsors"`
	SponsorThreshold int           `koanf:"sponsor_threshold"`
	Duration         time.Duration `koanf:"duration"`
}

// JobsConfig holds scheduled job settings.
type JobsConfig struct {
	Enabled       bool   `koanf:"enabled"`
	CloseSchedule string `koanf:"close_schedule"`
	Workers       int    `koanf:"workers"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
