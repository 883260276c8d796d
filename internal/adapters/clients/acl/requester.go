package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/petitions-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
)

// Requester sends JSON GETs through an httpclient.Client and maps failures
// to domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Client returns the underlying HTTP client.
func (r *Requester) Client() *httpclient.Client {
	return r.client
}

// Get fetches base+path?query and decodes a wantStatus response into out,
// which may be nil. Any other status becomes a domain error.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, wantStatus int, out any) error {
	u, err := url.Parse(r.client.BaseURL())
	if err != nil {
		return fmt.Errorf("parsing base URL: %w", err)
	}
	u = u.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("building GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	return r.execute(req, wantStatus, out)
}

func (r *Requester) execute(req *http.Request, wantStatus int, out any) error {
	ctx := req.Context()
	log := logging.FromContextOr(ctx, r.logger).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", r.client.Name()),
	)

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				log.WarnContext(ctx, "closing response body", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != wantStatus:
		// Exhausted retries hand back the last response too; its status
		// says more than the retry error.
		log.WarnContext(ctx, "unexpected status",
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return statusError(resp)
	case err != nil:
		log.ErrorContext(ctx, "request failed", slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	case out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
