// Package cache stores computed artifacts keyed by content hashes.
//
// The [Cache] interface is implemented by [FileCache] for local CLI use,
// [RedisCache] for a shared backend, and [NullCache] when caching is
// disabled. Keys are built by a [Keyer] from the SHA-256 of the serialized
// graph plus the options that influence the result, so a changed graph or a
// changed option never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// AnalysisKeyOpts are the options that change an analysis report.
type AnalysisKeyOpts struct {
	PageRankIterations int     `json:"pagerank_iterations"`
	Damping            float64 `json:"damping"`
}

// Keyer builds cache keys for cached artifacts.
type Keyer interface {
	AnalysisKey(graphHash string, opts AnalysisKeyOpts) string
}

// DefaultKeyer hashes the graph hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// AnalysisKey returns "analysis:<sha256>".
func (DefaultKeyer) AnalysisKey(graphHash string, opts AnalysisKeyOpts) string {
	return hashKey("analysis", graphHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, so several users or projects can
// share one backend (typically redis) without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "project:routing:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AnalysisKey generates a prefixed key for analysis reports.
func (k *ScopedKeyer) AnalysisKey(graphHash string, opts AnalysisKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(graphHash, opts)
}
