// Package contract provides interfaces and shared utilities for the portfolio's internal architecture.
package contract

import (
	"context"

	"github.com/khaledelg/portfolio/schema"
)

// ProfileClient performs the outbound call for one upstream identity.
// This allows the cached fetcher to be tested without a real network.
type ProfileClient interface {
	// FetchProfile issues a single read-only request and returns the typed payload,
	// or an error matching ErrNetworkFailure, *UpstreamError or ErrMalformedResponse.
	FetchProfile(ctx context.Context, identity string) (schema.ProfileData, error)
}

// ProfileSource serves the latest known profile data to renderers.
// The web server, MCP server and CLI only depend on this contract.
type ProfileSource interface {
	// GetProfileData returns fresh or cached data. It only fails with
	// ErrUpstreamUnavailable when nothing has ever been fetched.
	GetProfileData(ctx context.Context) (schema.ProfileData, error)

	// Status reports the cache state without touching the network.
	Status() schema.CacheStatus
}
