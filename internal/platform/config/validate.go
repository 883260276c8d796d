package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"

	"github.com/robfig/cron/v3"
)

// problems collects every invalid setting so one failed start reports them
// all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems

	c.Server.check(&p)
	c.Log.check(&p)
	c.Storage.check(&p)
	c.Constituency.check(&p, "constituency")
	c.Petitions.check(&p)
	c.Jobs.check(&p)
	c.Telemetry.check(&p)

	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.RequestTimeout >= 0, "server.request_timeout must not be negative")
}

// check accepts any level slog can parse, including offsets like "warn+2".
func (l *LogConfig) check(p *problems) {
	var lvl slog.Level
	p.require(lvl.UnmarshalText([]byte(l.Level)) == nil, "log.level %q is not a slog level", l.Level)
	p.require(l.Format == "json" || l.Format == "text", "log.format must be json or text, got %q", l.Format)
}

// schemaName matches an unquoted PostgreSQL identifier.
var schemaName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

func (s *StorageConfig) check(p *problems) {
	switch s.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		p.require(s.DSN != "", "storage.dsn is required for driver %q", s.Driver)
	default:
		p.require(false, "storage.driver must be memory, sqlite or postgres, got %q", s.Driver)
	}
	p.require(s.Driver != DriverPostgres || s.Schema != "", "storage.schema is required for driver %q", DriverPostgres)
	p.require(s.Schema == "" || schemaName.MatchString(s.Schema),
		"storage.schema must be a plain identifier, got %q", s.Schema)
	p.require(s.MaxConns >= 1, "storage.max_conns must be >= 1, got %d", s.MaxConns)
}

// check validates an enabled client section named prefix.
func (cl *ClientConfig) check(p *problems, prefix string) {
	if !cl.Enabled {
		return
	}
	u, err := url.Parse(cl.BaseURL)
	p.require(err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https"),
		"%s.base_url must be an absolute http(s) URL, got %q", prefix, cl.BaseURL)
	p.require(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.require(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", prefix)
	p.require(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"%s.rate_limit.burst_size must be >= 1 when rate limiting, got %d", prefix, cl.RateLimit.BurstSize)
}

func (c *PetitionsConfig) check(p *problems) {
	p.require(c.MaxSponsors >= 1, "petitions.max_sponsors must be >= 1, got %d", c.MaxSponsors)
	p.require(c.SponsorThreshold >= 1, "petitions.sponsor_threshold must be >= 1, got %d", c.SponsorThreshold)
	p.require(c.SponsorThreshold <= c.MaxSponsors,
		"petitions.sponsor_threshold (%d) must not exceed petitions.max_sponsors (%d)", c.SponsorThreshold, c.MaxSponsors)
	p.require(c.Duration > 0, "petitions.duration must be positive")
}

func (j *JobsConfig) check(p *problems) {
	if !j.Enabled {
		return
	}
	_, err := cron.ParseStandard(j.CloseSchedule)
	p.require(err == nil, "jobs.close_schedule %q: %v", j.CloseSchedule, err)
	p.require(j.Workers >= 1, "jobs.workers must be >= 1, got %d", j.Workers)
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	switch t.Exporter {
	case "stdout":
	case "otlp":
		p.require(t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
	default:
		p.require(false, "telemetry.exporter must be stdout or otlp, got %q", t.Exporter)
	}
}
