// Package http exposes the dashboard-facing HTTP surface: the CORS proxy
// route for the raw upstream, the normalized news API, and the usual
// health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techradar/news-service/internal/domain"
	"github.com/techradar/news-service/internal/service"
)

// UpstreamRelay performs a raw upstream round trip for the proxy route.
type UpstreamRelay interface {
	FetchRaw(ctx context.Context) (status int, body []byte, err error)
}

// NewsProvider is the service surface the API handlers need.
type NewsProvider interface {
	FetchLatestNews(ctx context.Context) service.FetchResult
	SearchNews(ctx context.Context, query string) []domain.NewsItem
	ClearCache()
	CheckReadiness(ctx context.Context) error
}

// Server exposes the news API, proxy route, and operational endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

type newsResponse struct {
	Items    []domain.NewsItem `json:"items"`
	Fallback bool              `json:"fallback"`
}

// NewServer wires the router. The relay may be nil when the configured
// transport has no raw GET form (vector mode); the proxy route then answers
// 404.
func NewServer(addr string, news NewsProvider, relay UpstreamRelay, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}

	r.Get("/api/news", s.handleProxy(relay))
	r.Get("/api/news/latest", s.handleLatest(news))
	r.Get("/api/news/search", s.handleSearch(news))
	r.Delete("/api/cache", s.handleClearCache(news))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(news))
	r.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleProxy relays the upstream response for browser clients that cannot
// call the webhook directly because of CORS. Pure network glue: no retry,
// no caching; the upstream body is re-parsed as JSON so the client always
// receives either valid JSON or a structured error.
func (s *Server) handleProxy(relay UpstreamRelay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if relay == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "proxy not available for this upstream mode"})
			return
		}

		status, body, err := relay.FetchRaw(r.Context())
		if err != nil {
			s.logger.Warn("proxy upstream request failed", "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream request failed", Status: http.StatusBadGateway})
			return
		}
		if status < 200 || status > 299 {
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream returned an error", Status: status})
			return
		}

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			s.logger.Warn("proxy upstream returned non-JSON body", "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream returned an unparseable body", Status: status})
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", "*")
		writeJSON(w, http.StatusOK, payload)
	}
}

func (s *Server) handleLatest(news NewsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := news.FetchLatestNews(r.Context())
		writeJSON(w, http.StatusOK, newsResponse{Items: result.Items, Fallback: result.UsedFallback})
	}
}

func (s *Server) handleSearch(news NewsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		items := news.SearchNews(r.Context(), query)
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func (s *Server) handleClearCache(news NewsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		news.ClearCache()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(news NewsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := news.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
