package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type snapshotEntry struct {
	Formula   string    `json:"formula"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// LoadSnapshot fills the memory cache from a JSON snapshot file.
// A missing file is not an error; expired entries are skipped.
func LoadSnapshot(c *MemoryCache, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read snapshot: %w", err)
	}

	var entries map[string]snapshotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	now := time.Now()
	before := c.Len()
	for k, e := range entries {
		c.restore(k, e, now)
	}

	return c.Len() - before, nil
}

// SaveSnapshot writes all unexpired formulas to a JSON snapshot file
func SaveSnapshot(c *MemoryCache, path string) error {
	data, err := json.Marshal(c.snapshot())
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	// write then rename so an interrupted run keeps the old snapshot
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}

	return nil
}
