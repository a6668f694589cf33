package manager

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/duynguyendang/plantcurator/pkg/catalog"
	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used when the configured size is not positive.
const DefaultCacheSize = 8

// CatalogManager caches loaded catalogs keyed by their absolute path.
// Successful loads are reused until invalidated; failed loads are not cached so a fixed file
// is picked up on the next request.
type CatalogManager struct {
	catalogs *lru.Cache[string, *catalog.Catalog]
	mu       sync.Mutex
	loads    int

	watcher *fsnotify.Watcher
	watched map[string]bool
	done    chan struct{}
	stopped bool
}

// NewCatalogManager creates a manager holding at most size catalogs.
func NewCatalogManager(size int) (*CatalogManager, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.NewWithEvict[string, *catalog.Catalog](size, func(key string, _ *catalog.Catalog) {
		slog.Debug("catalog evicted", "path", key)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}
	return &CatalogManager{
		catalogs: cache,
		watched:  make(map[string]bool),
		done:     make(chan struct{}),
	}, nil
}

// Get returns the catalog stored at path, loading it on first use.
// On failure it returns an empty catalog together with the error, so callers always have
// something to hand to the matcher.
func (m *CatalogManager) Get(path string) (*catalog.Catalog, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	if c, ok := m.catalogs.Get(key); ok {
		return c, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check under lock
	if c, ok := m.catalogs.Get(key); ok {
		return c, nil
	}

	m.loads++
	c, err := catalog.Load(key)
	if err != nil {
		slog.Error("catalog load failed", "path", key, "error", err)
		return catalog.Empty(key), err
	}
	slog.Info("catalog loaded", "path", key, "records", c.Len(), "skipped", c.Skipped())

	m.catalogs.Add(key, c)
	m.watchLocked(key)
	return c, nil
}

// Invalidate drops the cached catalog for path. The next Get reloads it.
// It waits for an in-flight load so a file read mid-write is not cached after the event.
func (m *CatalogManager) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.catalogs.Remove(key) {
		slog.Info("catalog invalidated", "path", key)
	}
}

// Loads is the number of file reads performed so far.
func (m *CatalogManager) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// Watch enables invalidation on file changes for every catalog loaded from now on, plus those
// already cached. Editors often write a file several times per save; every event invalidates,
// so the last write always wins.
func (m *CatalogManager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	m.watcher = fw

	for _, key := range m.catalogs.Keys() {
		m.watchLocked(key)
	}

	go m.loop(fw)
	return nil
}

// watchLocked adds the catalog's directory to the watcher. Directories are watched rather
// than files because editors replace files by rename, which drops a file watch.
func (m *CatalogManager) watchLocked(key string) {
	if m.watcher == nil || m.watched[key] {
		return
	}
	dir := filepath.Dir(key)
	if err := m.watcher.Add(dir); err != nil {
		slog.Warn("cannot watch catalog directory", "dir", dir, "error", err)
		return
	}
	m.watched[key] = true
}

func (m *CatalogManager) loop(fw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				continue
			}
			key := filepath.Clean(event.Name)

			m.mu.Lock()
			tracked := m.watched[key]
			m.mu.Unlock()
			if !tracked {
				continue
			}

			m.Invalidate(key)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Warn("catalog watcher error", "error", err)

		case <-m.done:
			return
		}
	}
}

// Close stops the watcher and purges the cache. Safe to call multiple times.
func (m *CatalogManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalogs.Purge()
	if m.stopped {
		return nil
	}
	m.stopped = true
	close(m.done)
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}
