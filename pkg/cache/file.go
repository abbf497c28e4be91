package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache persists cache entries under a directory, grouped by key
// type so graph documents and rendered artifacts can be inspected and
// pruned independently with ordinary shell tools.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// entry is the on-disk representation of a cached value.
type entry struct {
	Kind      string    `json:"kind"`
	Payload   []byte    `json:"payload"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (e *entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get retrieves a value. Entries that fail to decode are evicted and
// reported as misses so a damaged cache never blocks regeneration.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return e.Payload, true, nil
}

// Set stores a value. The entry is written to a temporary file and
// renamed into place so readers never observe a partial write.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{
		Kind:     keyKind(key),
		Payload:  data,
		StoredAt: time.Now(),
	}
	if ttl > 0 {
		e.ExpiresAt = e.StoredAt.Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes a value. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry under the cache directory.
// The directory itself is recreated empty.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0755)
}

// Dir returns the cache root directory.
func (c *FileCache) Dir() string { return c.dir }

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key to its file: <dir>/<kind>/<sha256(key)>.json.
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, keyKind(key), Hash([]byte(key))+".json")
}

// keyKind extracts the type prefix from a cache key. Keys produced by
// GraphKey and ArtifactKey carry a "type:" prefix; anything else lands
// in a catch-all bucket.
func keyKind(key string) string {
	prefix, _, ok := strings.Cut(key, ":")
	if !ok {
		return "misc"
	}
	switch prefix {
	case KeyTypeGraph, KeyTypeArtifact:
		return prefix
	default:
		return "misc"
	}
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
