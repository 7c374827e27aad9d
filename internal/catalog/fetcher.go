package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// CacheFileName is the on-disk name of the cached catalog document.
const CacheFileName = "catalog.json"

// ErrNotNewer is returned by Refresh when the fetched document does not
// supersede the cached one.
var ErrNotNewer = errors.New("catalog: fetched document is not newer than cache")

const fetchTimeout = 30 * time.Second

// Fetcher downloads catalog documents from a mirror and maintains the
// on-disk cache. A fetched document replaces the cache only when its
// version is newer, so a stale mirror cannot roll back the cache.
type Fetcher struct {
	client   *http.Client
	url      string
	cacheDir string
}

// NewFetcher creates a Fetcher caching under cacheDir.
func NewFetcher(url, cacheDir string) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: fetchTimeout},
		url:      url,
		cacheDir: cacheDir,
	}
}

// cachePath returns the location of the cached document.
func (f *Fetcher) cachePath() string {
	return filepath.Join(f.cacheDir, CacheFileName)
}

// Cached returns the cached catalog, or nil when no valid cache exists.
func (f *Fetcher) Cached() *Catalog {
	raw, err := os.ReadFile(f.cachePath())
	if err != nil {
		return nil
	}
	c, err := Parse(raw)
	if err != nil {
		return nil
	}
	return c
}

// Refresh fetches the remote document, validates it, and writes it to
// the cache when it supersedes the cached version. Returns the catalog
// now considered current. A fetch or validation failure falls back to
// the cache when one exists.
func (f *Fetcher) Refresh(ctx context.Context) (*Catalog, error) {
	fetched, raw, err := f.fetch(ctx)
	if err != nil {
		if cached := f.Cached(); cached != nil {
			return cached, nil
		}
		return nil, err
	}

	if cached := f.Cached(); cached != nil && !Supersedes(fetched.Version, cached.Version) {
		return cached, ErrNotNewer
	}

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return fetched, fmt.Errorf("create cache dir: %w", err)
	}
	tmp := f.cachePath() + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fetched, fmt.Errorf("write catalog cache: %w", err)
	}
	if err := os.Rename(tmp, f.cachePath()); err != nil {
		return fetched, fmt.Errorf("replace catalog cache: %w", err)
	}
	return fetched, nil
}

func (f *Fetcher) fetch(ctx context.Context) (*Catalog, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog response: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	return c, raw, nil
}

// Supersedes reports whether version a should replace version b.
// Versions are compared as semver; a missing or malformed version on
// either side falls back to replacing (the original always trusted the
// freshly fetched document).
func Supersedes(a, b string) bool {
	av, bv := canonical(a), canonical(b)
	if av == "" || bv == "" {
		return true
	}
	return semver.Compare(av, bv) > 0
}

func canonical(v string) string {
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
