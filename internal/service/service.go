// Package service orchestrates fetch, normalize, cache, and fallback for
// the TechRadar dashboard. Every public method is total: upstream failures
// are logged and swallowed, never returned to the caller. A demo dashboard
// must never show an error state.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/techradar/news-service/internal/cache"
	"github.com/techradar/news-service/internal/domain"
	"github.com/techradar/news-service/internal/observability"
	"github.com/techradar/news-service/internal/upstream"
)

// cacheKey is the single key the service uses; the whole dataset is cached
// and replaced as one entry.
const cacheKey = "latest_news"

// Search result bounds: at most maxSearchResults matches, and the first
// defaultSearchResults items when nothing matches. Search never returns an
// empty slice while data exists.
const (
	maxSearchResults     = 5
	defaultSearchResults = 3
)

// FetchResult is the internal result shape. The public contract always
// succeeds; UsedFallback preserves observability of degraded serves for
// logs, metrics, and tests.
type FetchResult struct {
	Items        []domain.NewsItem
	UsedFallback bool
}

// Service is the news composition root. It exclusively owns the cache;
// nothing else writes to it.
type Service struct {
	fetcher upstream.Fetcher
	store   *cache.Store
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
	ready   atomic.Bool

	ttl             time.Duration
	fallbackTTL     time.Duration
	refreshInterval time.Duration
}

// Options carries the service timing policy.
type Options struct {
	TTL             time.Duration // freshness window for live entries
	FallbackTTL     time.Duration // shortened window for fallback entries, so upstream is re-probed sooner
	RefreshInterval time.Duration // background refresh period; <= 0 disables the loop
}

// New creates a Service. Pass a nil clock to use real time.
func New(fetcher upstream.Fetcher, store *cache.Store, opts Options, metrics *observability.Metrics, logger *slog.Logger, clk clockwork.Clock) *Service {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Service{
		fetcher:         fetcher,
		store:           store,
		logger:          logger,
		metrics:         metrics,
		clock:           clk,
		ttl:             opts.TTL,
		fallbackTTL:     opts.FallbackTTL,
		refreshInterval: opts.RefreshInterval,
	}
}

// FetchLatestNews returns the current dataset: cached data while fresh,
// freshly fetched and normalized upstream data otherwise, and demo data
// when the upstream is unavailable or unusable. It never fails.
func (s *Service) FetchLatestNews(ctx context.Context) FetchResult {
	if entry, ok := s.store.Get(cacheKey); ok {
		if s.fresh(entry) {
			s.metrics.CacheLookups.WithLabelValues("fresh").Inc()
			return FetchResult{Items: entry.Items, UsedFallback: entry.Fallback}
		}
		s.metrics.CacheLookups.WithLabelValues("stale").Inc()
	} else {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	items, err := s.fetchAndNormalize(ctx)
	if err != nil {
		s.logger.Warn("upstream unusable, serving fallback data",
			"transport", s.fetcher.Transport(),
			"error", err,
		)
		s.metrics.FallbackServed.Inc()
		fallback := domain.FallbackItems()
		s.store.Set(cacheKey, fallback, true)
		s.ready.Store(true)
		return FetchResult{Items: fallback, UsedFallback: true}
	}

	s.store.Set(cacheKey, items, false)
	s.ready.Store(true)
	return FetchResult{Items: items}
}

// SearchNews substring-filters the current dataset, case-insensitively,
// across headline, summary, category, and keywords. It never consults the
// upstream and never returns an empty slice while data exists: zero matches
// fall back to the first few items so the search UI always has cards to show.
func (s *Service) SearchNews(_ context.Context, query string) []domain.NewsItem {
	data := s.currentData()
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []domain.NewsItem
	for _, item := range data {
		if matchesQuery(item, needle) {
			matches = append(matches, item)
			if len(matches) == maxSearchResults {
				break
			}
		}
	}

	if len(matches) > 0 {
		s.metrics.SearchRequests.WithLabelValues("matched").Inc()
		return matches
	}

	s.metrics.SearchRequests.WithLabelValues("defaulted").Inc()
	if len(data) > defaultSearchResults {
		data = data[:defaultSearchResults]
	}
	return data
}

// ImpactAnalysis returns the impact sentence for an item. Synchronous, no
// network.
func (s *Service) ImpactAnalysis(item domain.NewsItem) string {
	return domain.Narrate(item)
}

// ClearCache drops the cached dataset; the next fetch goes to the upstream.
func (s *Service) ClearCache() {
	s.store.Clear()
}

// CheckReadiness returns nil once the service has served at least one
// dataset, live or fallback.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no news data served yet")
	}
	return nil
}

// RunRefreshLoop re-fetches upstream data on a fixed interval until the
// context is cancelled. Refresh failures are logged and discarded; the
// foreground path keeps serving whatever the cache holds. A refresh racing
// a foreground fetch is harmless: both overwrite the same single entry,
// last write wins.
func (s *Service) RunRefreshLoop(ctx context.Context) error {
	if s.refreshInterval <= 0 {
		s.logger.Info("background refresh disabled")
		return nil
	}

	s.logger.Info("background refresh started", "interval", s.refreshInterval)
	s.metrics.RefreshRunning.Set(1)
	defer s.metrics.RefreshRunning.Set(0)

	ticker := s.clock.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("background refresh stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			s.refresh(ctx)
		}
	}
}

// refresh is one best-effort background probe. On success it overwrites the
// cache with live data; on failure it leaves the cache untouched rather
// than downgrading a live entry to fallback.
func (s *Service) refresh(ctx context.Context) {
	items, err := s.fetchAndNormalize(ctx)
	if err != nil {
		s.logger.Debug("background refresh failed", "error", err)
		return
	}
	s.store.Set(cacheKey, items, false)
	s.ready.Store(true)
	s.logger.Debug("background refresh succeeded", "items", len(items))
}

// fetchAndNormalize performs one upstream round trip. A payload that
// normalizes to zero items counts as a failure (well-formed but
// unrecognized JSON).
func (s *Service) fetchAndNormalize(ctx context.Context) ([]domain.NewsItem, error) {
	payload, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	items, dropped := domain.NormalizePayload(payload)
	s.metrics.ItemsNormalized.Add(float64(len(items)))
	s.metrics.ItemsDropped.Add(float64(dropped))
	if dropped > 0 {
		s.logger.Warn("dropped unnormalizable upstream elements", "dropped", dropped)
	}
	if len(items) == 0 {
		return nil, errors.New("payload contained no usable news items")
	}
	return items, nil
}

// currentData returns whatever the cache holds regardless of freshness,
// or fallback data when nothing is cached.
func (s *Service) currentData() []domain.NewsItem {
	if entry, ok := s.store.Get(cacheKey); ok && len(entry.Items) > 0 {
		return entry.Items
	}
	return domain.FallbackItems()
}

// fresh applies the entry's TTL: the full window for live data, the
// shortened retry window for fallback data.
func (s *Service) fresh(entry cache.Entry) bool {
	ttl := s.ttl
	if entry.Fallback {
		ttl = s.fallbackTTL
	}
	return s.clock.Now().Sub(entry.StoredAt) <= ttl
}

func matchesQuery(item domain.NewsItem, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Headline), needle) ||
		strings.Contains(strings.ToLower(item.Summary), needle) ||
		strings.Contains(strings.ToLower(item.Category), needle) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), needle) {
			return true
		}
	}
	return false
}
