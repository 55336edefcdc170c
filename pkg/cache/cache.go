// Package cache stores laid out scenes and rendered artifacts keyed by
// document content and render options.
//
// Three backends implement [Cache]:
//   - [NullCache] never stores anything (caching disabled)
//   - [FileCache] stores entries as files, for CLI usage
//   - [RedisCache] stores entries in Redis, for the HTTP server
//
// Keys come from a [Keyer]. Because keys include a hash of the document, a
// moved note or edited text yields a new key and stale artifacts simply expire.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs.
const (
	ArtifactTTL = 24 * time.Hour
	SceneTTL    = time.Hour
)
