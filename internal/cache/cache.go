// Package cache stores the latest scan result in a JSON file with a fixed
// time-to-live. One scan's worth of reports is kept; on expiry callers
// re-scan and overwrite.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"TadawulScout/internal/model"
)

// Cache is a single-entry scan cache backed by a JSON file.
type Cache struct {
	path string
	ttl  time.Duration
	log  zerolog.Logger
}

// New creates a cache at the given path with the given time-to-live.
func New(path string, ttl time.Duration, log zerolog.Logger) *Cache {
	return &Cache{path: path, ttl: ttl, log: log}
}

// Load returns the cached scan when the file exists, parses, and is newer
// than the TTL. Any other outcome is a miss, never an error: a corrupt or
// stale cache is simply rebuilt by the next scan.
func (c *Cache) Load() (*model.ScanResult, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn().Err(err).Str("path", c.path).Msg("cache read failed")
		}
		return nil, false
	}

	var result model.ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.log.Warn().Err(err).Str("path", c.path).Msg("cache parse failed")
		return nil, false
	}
	if time.Since(result.Timestamp) >= c.ttl {
		c.log.Info().Time("cached_at", result.Timestamp).Msg("cache expired")
		return nil, false
	}
	return &result, true
}

// Save writes the scan result atomically: temp file in the same
// directory, then rename.
func (c *Cache) Save(result *model.ScanResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".scan-cache-*")
	if err != nil {
		return fmt.Errorf("create cache temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache: %w", err)
	}

	c.log.Info().Str("path", c.path).Int("reports", len(result.Reports)).Msg("scan cached")
	return nil
}
