// Package core has the cached GitHub fetcher and project selection logic.
package core

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/apex/log"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
)

// CacheEntry is the single cached upstream payload.
// It is replaced wholesale on refresh and never mutated in place.
type CacheEntry struct {
	Value     schema.ProfileData
	FetchedAt time.Time
}

// CachedFetcher wraps one upstream identity with a TTL cache and stale-fallback.
//
// Concurrent cache misses are not serialized: each caller issues its own request
// and the last successful store wins. The entry lives behind an atomic pointer so
// readers never observe a partially written value.
type CachedFetcher struct {
	client   contract.ProfileClient
	identity string
	ttl      time.Duration
	now      func() time.Time
	logger   log.Interface

	entry atomic.Pointer[CacheEntry]
}

var _ contract.ProfileSource = &CachedFetcher{} // Compile-time check

// Option customizes a CachedFetcher.
type Option func(*CachedFetcher)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(f *CachedFetcher) {
		f.now = now
	}
}

// WithLogger overrides the logger used to report fetch failures.
func WithLogger(logger log.Interface) Option {
	return func(f *CachedFetcher) {
		f.logger = logger
	}
}

// NewCachedFetcher creates a fetcher for identity. A ttl of zero refreshes on every call.
func NewCachedFetcher(client contract.ProfileClient, identity string, ttl time.Duration, opts ...Option) *CachedFetcher {
	f := &CachedFetcher{
		client:   client,
		identity: identity,
		ttl:      ttl,
		now:      time.Now,
		logger:   log.Log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetProfileData returns the cached value while it is younger than the TTL.
// Otherwise it issues exactly one upstream request. On failure the previous value
// is served if one exists; if not, the error wraps contract.ErrUpstreamUnavailable.
func (f *CachedFetcher) GetProfileData(ctx context.Context) (schema.ProfileData, error) {
	prev := f.entry.Load()
	if prev != nil && f.now().Sub(prev.FetchedAt) < f.ttl {
		return prev.Value.Clone(), nil
	}

	data, err := f.client.FetchProfile(ctx, f.identity)
	if err != nil {
		return f.fallback(prev, err)
	}

	f.entry.Store(&CacheEntry{Value: data, FetchedAt: f.now()})
	f.logger.WithFields(log.Fields{
		"identity": f.identity,
		"projects": len(data.Projects),
	}).Debug("profile cache refreshed")
	return data.Clone(), nil
}

// fallback applies the stale-fallback policy after a failed refresh.
func (f *CachedFetcher) fallback(prev *CacheEntry, cause error) (schema.ProfileData, error) {
	if prev == nil {
		f.logger.WithError(cause).WithField("identity", f.identity).Error("profile fetch failed and no cached value exists")
		return schema.ProfileData{}, fmt.Errorf("%w: %w", contract.ErrUpstreamUnavailable, cause)
	}
	f.logger.WithError(cause).WithFields(log.Fields{
		"identity": f.identity,
		"age":      f.now().Sub(prev.FetchedAt).Round(time.Second),
	}).Warn("profile fetch failed, serving stale value")
	return prev.Value.Clone(), nil
}

// Warm performs one fetch at startup. Failures are logged and never fatal.
func (f *CachedFetcher) Warm(ctx context.Context) {
	data, err := f.GetProfileData(ctx)
	if err != nil {
		f.logger.WithError(err).Warn("cache warm-up failed, continuing without live data")
		return
	}
	f.logger.WithFields(log.Fields{
		"identity": f.identity,
		"projects": len(data.Projects),
	}).Info("cache warmed")
}

// Status reports the cache state without touching the network.
func (f *CachedFetcher) Status() schema.CacheStatus {
	status := schema.CacheStatus{
		Identity:   f.identity,
		TTL:        f.ttl,
		TTLSeconds: int(f.ttl / time.Second),
	}
	entry := f.entry.Load()
	if entry == nil {
		return status
	}
	status.HasEntry = true
	status.FetchedAt = entry.FetchedAt
	status.Age = f.now().Sub(entry.FetchedAt)
	status.Fresh = status.Age < f.ttl
	return status
}
