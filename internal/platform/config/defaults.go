package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20

	defaultStorageMaxConns = 10

	defaultMaxSponsors      = 20
	defaultSponsorThreshold = 5

	defaultJobWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":    DriverMemory,
		"storage.dsn":       "",
		"storage.schema":    "public",
		"storage.max_conns": defaultStorageMaxConns,

		"constituency.enabled":                         false,
		"constituency.base_url":                        "http://localhost:8081",
		"constituency.timeout":                         "5s",
		"constituency.retry.max_attempts":              defaultRetryMaxAttempts,
		"constituency.retry.initial_interval":          "100ms",
		"constituency.retry.max_interval":              "2s",
		"constituency.retry.multiplier":                defaultRetryMultiplier,
		"constituency.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"constituency.circuit_breaker.timeout":         "30s",
		"constituency.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"constituency.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"constituency.rate_limit.burst_size":           defaultRateLimitBurst,

		"petitions.max_sponsors":      defaultMaxSponsors,
		"petitions.sponsor_threshold": defaultSponsorThreshold,
		"petitions.duration":          "4380h",

		"jobs.enabled":        false,
		"jobs.close_schedule": "@every 1h",
		"jobs.workers":        defaultJobWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "petitions-service",
	}
}
