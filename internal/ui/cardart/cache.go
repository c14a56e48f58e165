package cardart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "carousel/cards"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache stores shaped card PNGs on disk so restarting does not resize every
// image again.
type Cache struct {
	dir string
}

// NewCache creates a cache under baseDir, or under the XDG cache home when
// baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

// cacheKey identifies an asset version at a pixel size. The modification
// time is part of the key so edited images are reshaped.
func cacheKey(path string, modTime time.Time, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d:%d", path, modTime.UnixNano(), width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".png")
}

// Get returns cached PNG data, or nil if absent. A nil cache never hits.
func (c *Cache) Get(path string, modTime time.Time, width, height int) []byte {
	if c == nil {
		return nil
	}
	p := c.path(cacheKey(path, modTime, width, height))
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(p, now, now) //nolint:errcheck // best-effort
	return data
}

// Put stores PNG data. Empty data is not stored.
func (c *Cache) Put(path string, modTime time.Time, width, height int, data []byte) error {
	if c == nil || len(data) == 0 {
		return nil
	}
	return os.WriteFile(c.path(cacheKey(path, modTime, width, height)), data, 0o600)
}

// prune removes entries not used since cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
