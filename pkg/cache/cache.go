// Package cache provides pluggable caching for generated graph documents
// and rendered artifacts, with file, in-memory, Redis, and no-op backends.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must treat a missing key as (nil, false, nil), not an
// error, so callers can fall through to regeneration without inspecting
// the failure.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A ttl <= 0 stores the
	// value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Key type prefixes, also used as the keyType label on observability hooks.
const (
	KeyTypeGraph    = "graph"
	KeyTypeArtifact = "artifact"
)

// GraphKey generates a cache key for a generated graph document.
// The three generation parameters fully determine the output, so they
// are the whole key.
func GraphKey(depth, newVertices int, seed uint64) string {
	return hashKey(KeyTypeGraph, depth, newVertices, seed)
}

// ArtifactKey generates a cache key for a rendered artifact (dot, svg,
// png) derived from the document with the given content hash.
func ArtifactKey(docHash, format string) string {
	return hashKey(KeyTypeArtifact, docHash, format)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
