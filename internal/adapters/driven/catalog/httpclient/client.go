// Package httpclient implements driven.CatalogClient over the catalog's
// JSON-over-HTTP endpoints.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driven"
	"github.com/custodia-labs/medley/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CatalogClient = (*Client)(nil)

// RequestIDHeader carries a per-request id the catalog can log.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response body is logged.
const maxErrorBody = 512

// Config configures a Client.
type Config struct {
	// BaseURL is the scheme and host of the catalog, e.g. http://localhost:5000.
	BaseURL string

	// Endpoints are the paths of the two endpoints.
	Endpoints domain.Endpoints

	// Timeout bounds a single request. Zero disables it.
	Timeout time.Duration

	// RequestsPerSecond and Burst configure the token bucket pacing requests.
	RequestsPerSecond float64
	Burst             int

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a client configuration from settings.
func ConfigFromSettings(s domain.Settings) (Config, error) {
	eps, err := s.Endpoints()
	if err != nil {
		return Config{}, err
	}
	return Config{
		BaseURL:           s.BaseURL,
		Endpoints:         eps,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
		Burst:             s.Burst,
	}, nil
}

// Client talks to the catalog's search and recommendation endpoints.
type Client struct {
	baseURL    *url.URL
	endpoints  domain.Endpoints
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a catalog client.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must include scheme and host", domain.ErrInvalidInput, cfg.BaseURL)
	}
	if cfg.Endpoints.Search == "" || cfg.Endpoints.Recommendations == "" {
		defaults, _ := domain.EndpointsFor(domain.ProfileProduction)
		cfg.Endpoints = defaults.Override(cfg.Endpoints)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:    base,
		endpoints:  cfg.Endpoints,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
	}, nil
}

// Endpoints returns the endpoint paths in use.
func (c *Client) Endpoints() domain.Endpoints {
	return c.endpoints
}

// Search posts the query to the search endpoint.
// A null or missing results field is returned as an empty slice.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	var resp searchResponse
	req := searchRequest{Query: query.Text, Type: query.Type.String()}
	if err := c.post(ctx, c.endpoints.Search, req, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.ResultItem, 0, len(resp.Results))
	for _, w := range resp.Results {
		items = append(items, w.toDomain())
	}
	return items, nil
}

// Recommend posts the item id to the recommendation endpoint.
func (c *Client) Recommend(ctx context.Context, itemID string) (*domain.Recommendations, error) {
	var resp recommendResponse
	if err := c.post(ctx, c.endpoints.Recommendations, recommendRequest{ItemID: itemID}, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// post sends body as JSON to path and decodes a 2xx answer into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: POST %s: %w", domain.ErrRequestFailed, path, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	endpoint := c.baseURL.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrRequestFailed, err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("POST %s request_id=%s body=%s", endpoint, requestID, payload)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %w", domain.ErrRequestFailed, path, err)
	}
	defer resp.Body.Close()

	logger.Debug("POST %s request_id=%s status=%d in %s", endpoint, requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Debug("Error body: %s", snippet)
		return &domain.HTTPStatusError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", domain.ErrRequestFailed, path, err)
	}
	return nil
}
