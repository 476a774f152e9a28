package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/apperrors"
	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/metrics"
	"golang.org/x/sync/singleflight"
)

// DefaultRateCacheTTL is how long a fetched rate table is served without
// contacting the provider again.
const DefaultRateCacheTTL = time.Hour

// cachedRateEntry pairs an immutable rate table with the time it entered the
// cache. Entries expire logically but are never evicted: an expired table is
// still the fallback when a refresh fails.
type cachedRateEntry struct {
	table    *domain.RateTable
	cachedAt time.Time
}

// RateService fetches and caches exchange-rate tables from the configured
// upstream providers. It is the only mutable shared state in the billing
// subsystem; the cache map is guarded by a mutex and concurrent fetches for
// the same source are coalesced.
type RateService struct {
	mu      sync.RWMutex
	cache   map[string]cachedRateEntry
	sources map[string]portsrepo.RateSource
	group   singleflight.Group

	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// RateServiceOption customizes a RateService.
type RateServiceOption func(*RateService)

// WithRateCacheTTL overrides the cache duration.
func WithRateCacheTTL(ttl time.Duration) RateServiceOption {
	return func(s *RateService) { s.ttl = ttl }
}

// WithRateClock injects the clock used for freshness checks.
func WithRateClock(now func() time.Time) RateServiceOption {
	return func(s *RateService) { s.now = now }
}

// WithRateLogger overrides the service logger.
func WithRateLogger(logger *slog.Logger) RateServiceOption {
	return func(s *RateService) { s.logger = logger }
}

// NewRateService creates a RateService over the given providers.
func NewRateService(sources []portsrepo.RateSource, opts ...RateServiceOption) *RateService {
	s := &RateService{
		cache:   make(map[string]cachedRateEntry),
		sources: make(map[string]portsrepo.RateSource, len(sources)),
		ttl:     DefaultRateCacheTTL,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, src := range sources {
		s.sources[src.Name()] = src
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRates returns the rate table for a source. A cached table younger than
// the TTL is served without network access. When a refresh fails, the stale
// table (if any) is served instead; only when nothing at all is cached does
// the call report ErrRateUnavailable.
func (s *RateService) GetRates(ctx context.Context, source string) (*domain.RateTable, error) {
	src, ok := s.sources[source]
	if !ok {
		return nil, fmt.Errorf("%w: unknown rate source %q", apperrors.ErrValidation, source)
	}

	if table, fresh := s.cached(source); fresh {
		metrics.RateCacheReads.WithLabelValues(source, "fresh").Inc()
		return table, nil
	}

	// Coalesce concurrent refreshes for the same source into one fetch; every
	// waiter observes the same cache generation.
	v, err, _ := s.group.Do(source, func() (any, error) {
		if table, fresh := s.cached(source); fresh {
			return table, nil
		}
		table, err := src.FetchRates(ctx)
		if err != nil {
			metrics.RateFetchTotal.WithLabelValues(source, "error").Inc()
			s.logger.Warn("rate fetch failed",
				slog.String("source", source), slog.String("error", err.Error()))
			if stale, ok := s.anyCached(source); ok {
				metrics.RateCacheReads.WithLabelValues(source, "stale").Inc()
				return stale, nil
			}
			metrics.RateCacheReads.WithLabelValues(source, "miss").Inc()
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, source)
		}
		metrics.RateFetchTotal.WithLabelValues(source, "success").Inc()
		s.mu.Lock()
		s.cache[source] = cachedRateEntry{table: table, cachedAt: s.now()}
		s.mu.Unlock()
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.RateTable), nil
}

// ClearCache drops the cached table for a source; an empty source drops all.
func (s *RateService) ClearCache(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if source == "" {
		s.cache = make(map[string]cachedRateEntry)
		return
	}
	delete(s.cache, source)
}

// cached returns the entry for source and whether it is still fresh.
func (s *RateService) cached(source string) (*domain.RateTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[source]
	if !ok {
		return nil, false
	}
	return entry.table, s.now().Sub(entry.cachedAt) < s.ttl
}

// anyCached returns the entry for source regardless of freshness.
func (s *RateService) anyCached(source string) (*domain.RateTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[source]
	if !ok {
		return nil, false
	}
	return entry.table, true
}
