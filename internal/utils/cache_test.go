package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileCache_LookupAndStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.rs")
	writeFile(t, path, "fn a() {}")

	cache := NewFileCache[string]()
	if _, ok := cache.Lookup(path); ok {
		t.Fatal("expected a miss before Store")
	}

	if err := cache.Store(path, "parsed"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if value, ok := cache.Lookup(path); !ok || value != "parsed" {
		t.Fatalf("expected cached value, got %q (%v)", value, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.Len())
	}
}

func TestFileCache_EvictsChangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.rs")
	writeFile(t, path, "fn a() {}")

	cache := NewFileCache[string]()
	if err := cache.Store(path, "parsed"); err != nil {
		t.Fatal(err)
	}

	// a different size invalidates even when the mtime resolution is coarse
	writeFile(t, path, "fn a() {}\nfn b() {}")
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if _, ok := cache.Lookup(path); ok {
		t.Error("expected stale entry to be rejected")
	}
	if cache.Len() != 0 {
		t.Error("expected stale entry to be removed")
	}
}

func TestFileCache_EvictsDeletedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.rs")
	writeFile(t, path, "fn a() {}")

	cache := NewFileCache[int]()
	if err := cache.Store(path, 1); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	if _, ok := cache.Lookup(path); ok {
		t.Error("expected a miss for a deleted file")
	}
	if cache.Len() != 0 {
		t.Error("expected the entry to be evicted")
	}
}

func TestFileCache_StoreMissingFile(t *testing.T) {
	cache := NewFileCache[int]()
	if err := cache.Store(filepath.Join(t.TempDir(), "missing"), 1); err == nil {
		t.Error("expected an error for a missing file")
	}
	if cache.Len() != 0 {
		t.Error("nothing should be stored when stat fails")
	}
}
