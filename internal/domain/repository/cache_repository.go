package repository

import (
	"context"
	"time"
)

// CacheRepository defines the byte cache used for rendered bed diagrams.
type CacheRepository interface {
	// Get returns the cached value, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists checks a key.
	Exists(ctx context.Context, key string) (bool, error)

	// GetDiagram returns a bed's cached diagram in the given format.
	GetDiagram(ctx context.Context, bedID int64, format string) ([]byte, error)

	// SetDiagram caches a bed's rendered diagram.
	SetDiagram(ctx context.Context, bedID int64, format string, data []byte, ttl time.Duration) error

	// InvalidateDiagrams drops all cached diagrams of a bed.
	InvalidateDiagrams(ctx context.Context, bedID int64) error
}
