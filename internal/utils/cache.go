package utils

import (
	"os"
	"sync"
	"time"
)

// fileStamp is the file state a cached value was computed from
type fileStamp struct {
	modTime time.Time
	size    int64
}

func (s fileStamp) matches(other fileStamp) bool {
	return s.size == other.size && s.modTime.Equal(other.modTime)
}

type fileEntry[V any] struct {
	value V
	stamp fileStamp
}

// FileCache maps a file path to a value derived from the file's contents.
// An entry is served only while the file keeps the modification time and
// size it had when the entry was stored.
type FileCache[V any] struct {
	entries map[string]fileEntry[V]
	mutex   sync.RWMutex
}

// NewFileCache creates an empty cache
func NewFileCache[V any]() *FileCache[V] {
	return &FileCache[V]{entries: make(map[string]fileEntry[V])}
}

// Lookup returns the value stored for path if the file is unchanged. Stale
// entries are evicted.
func (c *FileCache[V]) Lookup(path string) (V, bool) {
	c.mutex.RLock()
	entry, ok := c.entries[path]
	c.mutex.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}

	if current, err := stampOf(path); err == nil && current.matches(entry.stamp) {
		return entry.value, true
	}

	c.mutex.Lock()
	delete(c.entries, path)
	c.mutex.Unlock()
	return zero, false
}

// Store records value for path along with the file's current state
func (c *FileCache[V]) Store(path string, value V) error {
	stamp, err := stampOf(path)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[path] = fileEntry[V]{value: value, stamp: stamp}
	return nil
}

// Len returns the number of cached files
func (c *FileCache[V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

func stampOf(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}, nil
}
