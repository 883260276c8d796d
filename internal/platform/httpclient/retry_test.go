package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 4, base: 500 * time.Millisecond},
		{attempt: 10, base: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 200 {
				if d := backoff(tt.attempt, cfg); d < lo || d > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
				}
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("dial: %w", context.DeadlineExceeded), want: false},
		{name: "breaker open", err: gobreaker.ErrOpenState, want: false},
		{name: "breaker half-open full", err: gobreaker.ErrTooManyRequests, want: false},
		{name: "network", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	retryable := map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusNotModified:         false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	}

	for code, want := range retryable {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	newReq := func(method string, body io.Reader) *http.Request {
		return httptest.NewRequest(method, "http://constituency.test/postcodes", body)
	}

	tests := []struct {
		name string
		req  func() *http.Request
		want bool
	}{
		{
			name: "get",
			req:  func() *http.Request { return newReq(http.MethodGet, nil) },
			want: true,
		},
		{
			name: "put with rewindable body",
			req: func() *http.Request {
				r, _ := http.NewRequest(http.MethodPut, "http://constituency.test/x", strings.NewReader("{}"))
				return r
			},
			want: true,
		},
		{
			name: "post",
			req: func() *http.Request {
				r, _ := http.NewRequest(http.MethodPost, "http://constituency.test/x", strings.NewReader("{}"))
				return r
			},
			want: false,
		},
		{
			name: "post with idempotency key",
			req: func() *http.Request {
				r, _ := http.NewRequest(http.MethodPost, "http://constituency.test/x", strings.NewReader("{}"))
				r.Header.Set(headerIdempotencyKey, "sig-42")
				return r
			},
			want: true,
		},
		{
			name: "put with one-shot body",
			req: func() *http.Request {
				r, _ := http.NewRequest(http.MethodPut, "http://constituency.test/x", io.NopCloser(bytes.NewBufferString("{}")))
				return r
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := replayable(tt.req()); got != tt.want {
				t.Errorf("replayable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRewind(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodPut, "http://constituency.test/x", strings.NewReader("payload"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.ReadAll(req.Body); err != nil {
		t.Fatal(err)
	}

	if err := rewind(req); err != nil {
		t.Fatalf("rewind() error = %v", err)
	}
	got, _ := io.ReadAll(req.Body)
	if string(got) != "payload" {
		t.Errorf("body after rewind = %q, want %q", got, "payload")
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "3", want: 3 * time.Second},
		{name: "zero seconds", value: "0", want: 0},
		{name: "negative seconds", value: "-5", want: 0},
		{name: "http date", value: "Sun, 01 Mar 2026 12:00:10 GMT", want: 10 * time.Second},
		{name: "past http date", value: "Sun, 01 Mar 2026 11:59:00 GMT", want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := retryAfter(tt.value, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
