package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
)

// jitterFraction spreads retries over ±25% of the backoff delay.
const jitterFraction = 0.25

// headerIdempotencyKey marks a non-idempotent request as safe to replay.
const headerIdempotencyKey = "Idempotency-Key"

// doWithRetry sends req until the outcome is not retryable or the attempts
// run out, backing off exponentially between attempts. Only replayable
// requests get more than one attempt. The final response is written to
// resp with its body intact and the caller closes it; a retryable status on
// the last attempt is returned together with an error.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := c.retryCfg.maxAttempts
	if !replayable(req) {
		attempts = 1
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, lastErr, hint); err != nil {
				return err
			}
			if err := rewind(req); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}
		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		hint = retryAfter(r.Header.Get("Retry-After"), time.Now())
		drainResponseBody(r)
	}
	return lastErr
}

// replayable reports whether req may be sent more than once: its body, if
// any, can be rebuilt through GetBody, and its method is idempotent or it
// carries an Idempotency-Key.
func replayable(req *http.Request) bool {
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return false
	}
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace,
		http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(headerIdempotencyKey) != ""
}

// rewind gives req a fresh body for the next attempt.
func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// drainResponseBody discards the rest of the body so the connection can be
// reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry waits out the backoff delay, or the server's Retry-After hint
// when that is longer, capped at the configured max interval.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, lastErr error, hint time.Duration) error {
	delay := backoff(attempt, c.retryCfg)
	if hint > delay {
		delay = min(hint, c.retryCfg.maxInterval)
	}

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff returns the jittered delay before retry number attempt, counting
// the first retry as 1. The cap applies before jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := min(float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)), float64(cfg.maxInterval))
	spread := base * jitterFraction
	return time.Duration(max(base+spread*(2*rand.Float64()-1), 0)) //nolint:gosec // jitter needs no crypto randomness
}

// isRetryable reports whether a transport error is worth another attempt.
// Caller cancellation and an open breaker are final; network and unknown
// errors are retried.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return false
	default:
		return true
	}
}

// isRetryableStatus reports whether the upstream asked, implicitly or not,
// to be tried again: any 5xx and 429.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// retryAfter parses a Retry-After header value, either delay-seconds or an
// HTTP date relative to now. Unparseable or past values yield zero.
func retryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
