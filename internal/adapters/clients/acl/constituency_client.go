package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/clients/acl/constituency"
	"github.com/jsamuelsen11/petitions-service/internal/domain"
	domconst "github.com/jsamuelsen11/petitions-service/internal/domain/constituency"
	"github.com/jsamuelsen11/petitions-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

var (
	_ ports.ConstituencyClient = (*ConstituencyClient)(nil)
	_ ports.HealthChecker      = (*ConstituencyClient)(nil)
)

// ConstituencyClient resolves postcodes against the downstream constituency
// API. Circuit breaking, retries and tracing come from the wrapped
// [httpclient.Client].
type ConstituencyClient struct {
	req *Requester
}

// NewConstituencyClient creates a client whose base URL points at the
// constituency API root.
func NewConstituencyClient(client *httpclient.Client, logger *slog.Logger) *ConstituencyClient {
	return &ConstituencyClient{req: NewRequester(client, logger)}
}

// LookupConstituency fetches GET /api/v1/postcodes/{postcode}. It returns
// [domain.ErrNotFound] for an unknown postcode or one outside every
// constituency.
func (c *ConstituencyClient) LookupConstituency(ctx context.Context, postcode string) (*domconst.Constituency, error) {
	if postcode == "" {
		return nil, fmt.Errorf("empty postcode: %w", domain.ErrNotFound)
	}

	path := "/api/v1/postcodes/" + url.PathEscape(postcode)
	query := url.Values{"fields": []string{"constituency"}}

	var dto constituency.PostcodeLookupDTO
	if err := c.req.Get(ctx, path, query, http.StatusOK, &dto); err != nil {
		return nil, err
	}

	result := constituency.ToDomain(&dto)
	if result == nil {
		return nil, fmt.Errorf("postcode has no constituency: %w", domain.ErrNotFound)
	}
	return result, nil
}

// Name identifies the client in readiness output.
func (c *ConstituencyClient) Name() string {
	return c.req.Client().Name()
}

// HealthCheck reports the breaker state of the underlying client.
func (c *ConstituencyClient) HealthCheck(ctx context.Context) error {
	return c.req.Client().HealthCheck(ctx)
}
