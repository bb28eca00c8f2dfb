// Package cache provides content-addressed caching of computed analysis
// results.
//
// Ranking a large network or collapsing its transfer clusters is pure
// computation over immutable inputs, so results are cached under keys
// derived from the network's content hash plus the algorithm options.
// Three backends exist: [FileCache] for CLI usage, [RedisCache] for
// multi-instance deployments, and [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cached artifact classes.
const (
	// TTLNetwork applies to collapsed network documents.
	TTLNetwork = 7 * 24 * time.Hour
	// TTLRanks applies to computed rank vectors.
	TTLRanks = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
