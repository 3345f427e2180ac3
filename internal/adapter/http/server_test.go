package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/techradar/news-service/internal/adapter/http"
	"github.com/techradar/news-service/internal/domain"
	"github.com/techradar/news-service/internal/service"
)

type mockNews struct {
	items    []domain.NewsItem
	fallback bool
	readyErr error
	cleared  bool
	query    string
}

func (m *mockNews) FetchLatestNews(_ context.Context) service.FetchResult {
	return service.FetchResult{Items: m.items, UsedFallback: m.fallback}
}

func (m *mockNews) SearchNews(_ context.Context, query string) []domain.NewsItem {
	m.query = query
	return m.items
}

func (m *mockNews) ClearCache() { m.cleared = true }

func (m *mockNews) CheckReadiness(_ context.Context) error { return m.readyErr }

type mockRelay struct {
	status int
	body   []byte
	err    error
}

func (m *mockRelay) FetchRaw(_ context.Context) (int, []byte, error) {
	return m.status, m.body, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, srv *httpadapter.Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockNews{}, nil, testLogger())
	rec := serve(t, srv, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyz(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv := httpadapter.NewServer(":0", &mockNews{}, nil, testLogger())
		rec := serve(t, srv, http.MethodGet, "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		srv := httpadapter.NewServer(":0", &mockNews{readyErr: errors.New("no data yet")}, nil, testLogger())
		rec := serve(t, srv, http.MethodGet, "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "no data yet", body["error"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockNews{}, nil, testLogger())
	rec := serve(t, srv, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestProxyRoute(t *testing.T) {
	t.Run("relays JSON with CORS header", func(t *testing.T) {
		relay := &mockRelay{status: http.StatusOK, body: []byte(`{"articles":[{"title":"X"}]}`)}
		srv := httpadapter.NewServer(":0", &mockNews{}, relay, testLogger())

		rec := serve(t, srv, http.MethodGet, "/api/news")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Body.String(), "articles")
	})

	t.Run("upstream error becomes structured JSON", func(t *testing.T) {
		relay := &mockRelay{err: errors.New("connection refused")}
		srv := httpadapter.NewServer(":0", &mockNews{}, relay, testLogger())

		rec := serve(t, srv, http.MethodGet, "/api/news")

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("upstream non-2xx becomes structured JSON with status", func(t *testing.T) {
		relay := &mockRelay{status: http.StatusForbidden, body: []byte("denied")}
		srv := httpadapter.NewServer(":0", &mockNews{}, relay, testLogger())

		rec := serve(t, srv, http.MethodGet, "/api/news")

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(http.StatusForbidden), body["status"])
	})

	t.Run("non-JSON upstream body is an error, not a relay", func(t *testing.T) {
		relay := &mockRelay{status: http.StatusOK, body: []byte("<html>oops</html>")}
		srv := httpadapter.NewServer(":0", &mockNews{}, relay, testLogger())

		rec := serve(t, srv, http.MethodGet, "/api/news")

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("no relay configured", func(t *testing.T) {
		srv := httpadapter.NewServer(":0", &mockNews{}, nil, testLogger())
		rec := serve(t, srv, http.MethodGet, "/api/news")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLatestRoute(t *testing.T) {
	news := &mockNews{
		items:    []domain.NewsItem{{ID: "1", Headline: "Story"}},
		fallback: true,
	}
	srv := httpadapter.NewServer(":0", news, nil, testLogger())

	rec := serve(t, srv, http.MethodGet, "/api/news/latest")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items    []domain.NewsItem `json:"items"`
		Fallback bool              `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Story", body.Items[0].Headline)
	assert.True(t, body.Fallback)
}

func TestSearchRoute(t *testing.T) {
	news := &mockNews{items: []domain.NewsItem{{ID: "1", Headline: "Hydrogen story"}}}
	srv := httpadapter.NewServer(":0", news, nil, testLogger())

	rec := serve(t, srv, http.MethodGet, "/api/news/search?q=hydrogen")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hydrogen", news.query)
	assert.Contains(t, rec.Body.String(), "Hydrogen story")
}

func TestClearCacheRoute(t *testing.T) {
	news := &mockNews{}
	srv := httpadapter.NewServer(":0", news, nil, testLogger())

	rec := serve(t, srv, http.MethodDelete, "/api/cache")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, news.cleared)
}
