package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/techradar/news-service/internal/observability"
)

// Fixed headers sent with every webhook request. The X-Requested-With
// header is required by some webhook providers to skip their browser
// interstitial page.
const (
	headerAccept        = "application/json"
	headerRequestedWith = "XMLHttpRequest"
)

// WebhookClient fetches news with a plain GET against a webhook URL.
type WebhookClient struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewWebhookClient creates a webhook fetcher with the given request timeout.
func NewWebhookClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *WebhookClient {
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

func (c *WebhookClient) Transport() string { return TransportWebhook }

// Fetch performs the GET and decodes the response body as JSON.
func (c *WebhookClient) Fetch(ctx context.Context) (any, error) {
	status, body, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		c.metrics.UpstreamRequests.WithLabelValues(TransportWebhook, "error").Inc()
		c.logger.Debug("webhook returned non-2xx", "status", status)
		return nil, fmt.Errorf("upstream returned status %d", status)
	}
	return decodeBody(body, TransportWebhook, c.metrics)
}

// FetchRaw performs the GET and returns the upstream status and body without
// interpretation. The proxy route uses this to relay responses verbatim.
func (c *WebhookClient) FetchRaw(ctx context.Context) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", headerAccept)
	req.Header.Set("X-Requested-With", headerRequestedWith)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(TransportWebhook).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(TransportWebhook, "error").Inc()
		c.logger.Debug("webhook request failed", "url", c.url, "error", err)
		return 0, nil, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(TransportWebhook, "error").Inc()
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// decodeBody parses a response body as JSON, treating empty and non-JSON
// bodies (typically HTML error pages) as failures.
func decodeBody(body []byte, transport string, metrics *observability.Metrics) (any, error) {
	if len(body) == 0 {
		metrics.UpstreamRequests.WithLabelValues(transport, "unusable").Inc()
		return nil, fmt.Errorf("empty response body")
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.UpstreamRequests.WithLabelValues(transport, "unusable").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}
	metrics.UpstreamRequests.WithLabelValues(transport, "success").Inc()
	return payload, nil
}
