// Package media manages the wardrobe photo directory: scanning, orphan
// detection and cached file serving.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru"
)

// photoGlob matches the image formats the upload form accepts.
const photoGlob = "**/*.{jpg,jpeg,png,webp}"

// maxCachedFileBytes keeps huge originals out of the cache; they are served
// straight from disk instead.
const maxCachedFileBytes = 4 << 20

type Library struct {
	root  string
	cache *lru.Cache
}

// NewLibrary opens (and creates if needed) the media directory. cacheSize is
// the number of photo files kept in memory for serving.
func NewLibrary(root string, cacheSize int) (*Library, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	if cacheSize <= 0 {
		cacheSize = 64
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create media cache: %w", err)
	}
	return &Library{root: root, cache: cache}, nil
}

func (l *Library) Root() string { return l.root }

// Scan lists every photo under the media root as slash-separated relative
// paths, sorted.
func (l *Library) Scan() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(l.root), photoGlob)
	if err != nil {
		return nil, fmt.Errorf("scan media dir: %w", err)
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = filepath.ToSlash(filepath.Clean(m))
		if m == "." || strings.HasPrefix(m, "../") || strings.HasPrefix(m, "/") {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// Orphans returns photos on disk that no clothing item references.
func (l *Library) Orphans(referenced []string) ([]string, error) {
	photos, err := l.Scan()
	if err != nil {
		return nil, err
	}
	used := make(map[string]struct{}, len(referenced))
	for _, ref := range referenced {
		ref = filepath.ToSlash(filepath.Clean(strings.TrimSpace(ref)))
		if ref == "" || ref == "." {
			continue
		}
		used[ref] = struct{}{}
	}
	var orphans []string
	for _, photo := range photos {
		if _, ok := used[photo]; !ok {
			orphans = append(orphans, photo)
		}
	}
	return orphans, nil
}

// SafePath resolves a request path to an absolute file inside the media root,
// rejecting traversal attempts.
func (l *Library) SafePath(rel string) (string, error) {
	rel = filepath.ToSlash(filepath.Clean(strings.TrimPrefix(rel, "/")))
	if rel == "." || strings.HasPrefix(rel, "../") || strings.Contains(rel, "/../") {
		return "", fmt.Errorf("invalid media path %q", rel)
	}
	return filepath.Join(l.root, filepath.FromSlash(rel)), nil
}

// ReadFile returns the photo bytes, serving small files from the LRU cache.
func (l *Library) ReadFile(rel string) ([]byte, error) {
	full, err := l.SafePath(rel)
	if err != nil {
		return nil, err
	}
	if cached, ok := l.cache.Get(full); ok {
		return cached.([]byte), nil
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	if len(data) <= maxCachedFileBytes {
		l.cache.Add(full, data)
	}
	return data, nil
}

// SaveFile writes a photo under the media root and invalidates its cache
// entry.
func (l *Library) SaveFile(rel string, data []byte) error {
	full, err := l.SafePath(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create media subdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	l.cache.Remove(full)
	return nil
}

// RemoveFile deletes a photo; missing files are not an error so item deletion
// stays idempotent.
func (l *Library) RemoveFile(rel string) error {
	full, err := l.SafePath(rel)
	if err != nil {
		return err
	}
	l.cache.Remove(full)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove media file: %w", err)
	}
	return nil
}

// ContentType maps a photo filename to its MIME type.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
