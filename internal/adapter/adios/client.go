package adios

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/adios-oil-etl/internal/domain"
	"github.com/couchcryptid/adios-oil-etl/internal/observability"
)

// Client queries the NOAA ADIOS oil database. It implements domain.OilFetcher.
// Per the service contract there is no caching and no retry here; callers own
// timeouts beyond the per-request one via ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an ADIOS API client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// List fetches one page of the oil listing, optionally filtered by a text
// query, and strict-parses each entry.
func (c *Client) List(ctx context.Context, query string, limit, page int) ([]domain.ThinOil, error) {
	params := url.Values{
		"limit": {strconv.Itoa(limit)},
		"page":  {strconv.Itoa(page)},
	}
	if query != "" {
		params.Set("q", query)
	}

	body, err := c.doRequest(ctx, fmt.Sprintf("%s/oils?%s", c.baseURL, params.Encode()), "list")
	if err != nil {
		return nil, err
	}

	var listing struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	oils := make([]domain.ThinOil, 0, len(listing.Data))
	for _, item := range listing.Data {
		thin, err := domain.ParseThinOil(item)
		if err != nil {
			return nil, err
		}
		oils = append(oils, thin)
	}
	c.metrics.OilsListed.Add(float64(len(oils)))
	return oils, nil
}

// GetFullOil fetches and parses the complete record for one oil.
func (c *Client) GetFullOil(ctx context.Context, id string) (*domain.Oil, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("%s/oils/%s", c.baseURL, url.PathEscape(id)), "oil")
	if err != nil {
		return nil, err
	}
	return domain.NewOil(body, c.logger)
}

func (c *Client) doRequest(ctx context.Context, fullURL, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchAPIDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FetchRequests.WithLabelValues(endpoint, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ADIOS API error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.metrics.FetchRequests.WithLabelValues(endpoint, "success").Inc()
	return body, nil
}
