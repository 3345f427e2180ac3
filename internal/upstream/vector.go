package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/techradar/news-service/internal/observability"
)

// defaultVectorQuery is the standing query sent when fetching the latest
// news through the vector-search endpoint.
const defaultVectorQuery = "latest technology and energy news"

// VectorClient fetches news by POSTing a search request to a vector-search
// endpoint. Items in the response may carry provider similarity scores,
// which the normalizer passes through unclamped.
type VectorClient struct {
	url        string
	query      string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// vectorRequest is the POST body the vector endpoint expects.
type vectorRequest struct {
	Action string `json:"action"`
	Query  string `json:"query"`
}

// NewVectorClient creates a vector-search fetcher. An empty query uses the
// standing default.
func NewVectorClient(url, query string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *VectorClient {
	if query == "" {
		query = defaultVectorQuery
	}
	return &VectorClient{
		url:   url,
		query: query,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

func (c *VectorClient) Transport() string { return TransportVector }

// Fetch POSTs the search request and decodes the response body as JSON.
func (c *VectorClient) Fetch(ctx context.Context) (any, error) {
	reqBody, err := json.Marshal(vectorRequest{Action: "vector_search", Query: c.query})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", headerAccept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(TransportVector).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(TransportVector, "error").Inc()
		c.logger.Debug("vector search request failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("vector search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.UpstreamRequests.WithLabelValues(TransportVector, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		c.logger.Debug("vector search returned non-2xx", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(TransportVector, "error").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}
	return decodeBody(body, TransportVector, c.metrics)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
