package realincome

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// contains http and disk cache utils to deal with the remote sources

// Cache is a best-effort write-through memoization layer for raw fetched
// payloads. Entries are immutable: a hit returns the stored bytes unchanged
// with no freshness check or TTL, staleness is the caller's responsibility.
// Concurrent processes writing the same key race harmlessly since the same
// key always maps to the same bytes.
type Cache struct {
	dir      string
	disabled bool
}

// NewCache returns a cache rooted at dir. An empty dir resolves to a
// "real-income" folder under the user cache directory. A disabled cache
// turns GetOrFetch into a plain fetch.
func NewCache(dir string, disabled bool) *Cache {
	if dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(base, "real-income")
		} else {
			dir = filepath.Join(os.TempDir(), "real-income")
		}
	}
	if !disabled {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("cache dir %q unavailable (ignored): %v", dir, err)
		}
	}
	return &Cache{dir: dir, disabled: disabled}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// file maps a logical key to a flat filename. Keys are hashed so that any
// combination of query parameters yields a distinct, filesystem-safe name.
func (c *Cache) file(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x", sha1.Sum([]byte(key))))
}

// GetOrFetch returns the cached payload for key, or calls fetch and
// persists its result under key before returning it. Persistence failures
// are logged and ignored: caching must never fail an otherwise working run.
func (c *Cache) GetOrFetch(key string, fetch func() ([]byte, error)) ([]byte, error) {
	if c == nil || c.disabled {
		return fetch()
	}
	file := c.file(key)
	if b, err := os.ReadFile(file); err == nil {
		return b, nil
	}
	b, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(file, b, 0o644); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return b, nil
}

// Get performs an HTTP GET with the given headers and returns the response
// body. Non-2xx statuses come back as a *StatusError carrying the body.
func Get(ctx context.Context, client *http.Client, addr string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
