package astcache

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DiskCache хранит разобранные юниты по хешу исходника.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir returns $XDG_CACHE_HOME/serpent, falling back to ~/.cache/serpent.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "serpent"), nil
}

// Open initializes a cache rooted at dir, or at DefaultDir when dir is empty.
func Open(dir string) (*DiskCache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "units" — проще чистить руками
	return filepath.Join(c.dir, "units", hexKey[:2], hexKey+".mp")
}

// Put stores u under its ContentHash. A nil cache is a no-op.
func (c *DiskCache) Put(u *Unit) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return WriteFile(c.pathFor(u.ContentHash), u)
}

// Get looks up the unit for key. A missing entry, a unit from another schema
// or a corrupted entry all count as a miss; only I/O failures are errors.
func (c *DiskCache) Get(key Digest) (*Unit, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := ReadFile(c.pathFor(key))
	switch {
	case err == nil:
		return u, true, nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, ErrSchema), errors.Is(err, ErrCorrupt):
		return nil, false, nil
	}
	return nil, false, err
}

// Lookup is Get keyed by the source text itself.
func (c *DiskCache) Lookup(src []byte) (*Unit, bool, error) {
	return c.Get(HashSource(src))
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
