package version

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	// CacheFileName is the name of the cache file
	CacheFileName = "version-cache.json"

	// CacheDuration is how long a cached lookup stays valid
	CacheDuration = 24 * time.Hour
)

// cacheEntry is the on-disk form
type cacheEntry struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
	ReleaseURL    string    `json:"release_url"`
}

// Cache stores the last release lookup as JSON
type Cache struct {
	dir string
	now func() time.Time
}

// NewCache creates a cache in dir, or in the charthub config directory
// when dir is empty
func NewCache(dir string) *Cache {
	return &Cache{dir: dir, now: time.Now}
}

func (c *Cache) path() (string, error) {
	dir := c.dir
	if dir == "" {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config")
		}
		dir = filepath.Join(configDir, "charthub")
	}
	return filepath.Join(dir, CacheFileName), nil
}

func (c *Cache) load() (*cacheEntry, error) {
	p, err := c.path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Save records a lookup
func (c *Cache) Save(latestVersion, releaseURL string) error {
	p, err := c.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cacheEntry{
		LastCheck:     c.now(),
		LatestVersion: latestVersion,
		ReleaseURL:    releaseURL,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// Result returns the cached lookup, or nil when missing, corrupt or expired
func (c *Cache) Result(currentVersion string) *CheckResult {
	entry, err := c.load()
	if err != nil {
		return nil
	}
	if c.now().Sub(entry.LastCheck) > CacheDuration {
		return nil
	}

	res := newResult(currentVersion, entry.LatestVersion, entry.ReleaseURL)
	res.FromCache = true
	return res
}
