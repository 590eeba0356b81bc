package schema

import "time"

// CacheStatus represents the state of the profile cache.
type CacheStatus struct {
	Identity   string        `json:"identity"`
	HasEntry   bool          `json:"has_entry"`
	Fresh      bool          `json:"fresh"`
	FetchedAt  time.Time     `json:"fetched_at"`
	Age        time.Duration `json:"age_ns"`
	TTL        time.Duration `json:"ttl_ns"`
	TTLSeconds int           `json:"ttl_seconds"`
}
