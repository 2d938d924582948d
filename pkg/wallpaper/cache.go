package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dixieflatline76/Wallin/util/log"
)

// CacheStore keeps downloaded wallpapers on disk, one file per remote filename.
// Two locators sharing a filename map to the same entry.
type CacheStore struct {
	rootDir string
}

// NewCacheStore creates a new CacheStore rooted at rootDir.
func NewCacheStore(rootDir string) *CacheStore {
	return &CacheStore{rootDir: rootDir}
}

// DefaultCacheDir returns the cache folder under the process temporary directory.
func DefaultCacheDir() string {
	return filepath.Join(os.TempDir(), CacheDirName)
}

// Dir returns the directory holding cached images.
func (cs *CacheStore) Dir() string {
	return cs.rootDir
}

// EnsureDir creates the cache directory.
func (cs *CacheStore) EnsureDir() error {
	if err := os.MkdirAll(cs.rootDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", cs.rootDir, err)
	}
	return nil
}

// validateFilename ensures the filename cannot escape the cache directory.
func (cs *CacheStore) validateFilename(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("invalid filename %q: contains illegal characters", name)
	}
	return nil
}

// Path returns the file path a locator is cached under.
func (cs *CacheStore) Path(loc Locator) (string, error) {
	if err := cs.validateFilename(loc.Filename); err != nil {
		return "", err
	}
	return filepath.Join(cs.rootDir, CacheFilePrefix+loc.Filename), nil
}

// Has reports whether the locator is cached.
func (cs *CacheStore) Has(loc Locator) bool {
	path, err := cs.Path(loc)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Read returns the cached bytes for loc, or ErrCacheMiss.
func (cs *CacheStore) Read(loc Locator) ([]byte, error) {
	path, err := cs.Path(loc)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", loc.Filename, ErrCacheMiss)
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached %s: %w", loc.Filename, err)
	}
	return data, nil
}

// Write stores data for loc. The file is written to a temp name and renamed so readers
// never observe a partial image and duplicate writers of one key do not interfere.
func (cs *CacheStore) Write(loc Locator, data []byte) error {
	path, err := cs.Path(loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	if err := cs.EnsureDir(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}

	tmp, err := os.CreateTemp(cs.rootDir, ".partial-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", ErrCacheWrite, loc.Filename, werr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming %s: %v", ErrCacheWrite, loc.Filename, err)
	}
	return nil
}

// Trim keeps the max most recently written entries and removes the rest.
// It returns the number of files removed. max <= 0 keeps everything.
func (cs *CacheStore) Trim(max int) (int, error) {
	if max <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(cs.rootDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	type cachedFile struct {
		path    string
		modTime time.Time
	}
	var files []cachedFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), CacheFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, cachedFile{path: filepath.Join(cs.rootDir, entry.Name()), modTime: info.ModTime()})
	}
	if len(files) <= max {
		return 0, nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	removed := 0
	for _, f := range files[max:] {
		if err := os.Remove(f.path); err != nil {
			// Suppress "used by another process" errors (benign race with the desktop holding the file)
			if strings.Contains(err.Error(), "used by another process") || strings.Contains(err.Error(), "access is denied") {
				log.Debugf("Trim: Skipped locked file %s: %v", f.path, err)
			} else if !errors.Is(err, os.ErrNotExist) {
				log.Printf("Trim: Failed to delete %s: %v", f.path, err)
			}
			continue
		}
		removed++
	}
	log.Debugf("Trim: removed %d cached images (limit %d)", removed, max)
	return removed, nil
}
