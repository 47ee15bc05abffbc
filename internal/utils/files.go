package utils

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/textsig/internal/errors"
)

// ErrFileTooLarge is wrapped by ReadSourceFile when a file exceeds the size limit
var ErrFileTooLarge = stderrors.New("file exceeds size limit")

// RecursiveSuffix marks a path pattern that includes every subdirectory
const RecursiveSuffix = "/..."

// FileFilter decides whether a file should be processed
type FileFilter func(path string, entry fs.DirEntry) bool

// DirectoryFilter decides whether a directory should be descended into
type DirectoryFilter func(path string, entry fs.DirEntry) bool

// SuffixFilter accepts regular files ending in one of the suffixes
func SuffixFilter(suffixes ...string) FileFilter {
	return func(path string, entry fs.DirEntry) bool {
		if entry.IsDir() {
			return false
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(entry.Name(), suffix) {
				return true
			}
		}
		return false
	}
}

// DefaultDirectoryFilter skips hidden directories, build output and vendored code
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"target":       true,
		"build":        true,
		"dist":         true,
	}

	return func(path string, entry fs.DirEntry) bool {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
		return !skipDirs[name]
	}
}

// FileProcessor expands path patterns into the source files to process
type FileProcessor struct {
	fileFilter      FileFilter
	directoryFilter DirectoryFilter
}

// NewFileProcessor creates a processor accepting files that pass filter
func NewFileProcessor(filter FileFilter) *FileProcessor {
	return &FileProcessor{
		fileFilter:      filter,
		directoryFilter: DefaultDirectoryFilter(),
	}
}

// CollectFiles resolves each pattern: a file is taken as is, a directory
// contributes its matching files, and "dir/..." walks the tree below dir.
// The result is sorted and free of duplicates.
func (fp *FileProcessor) CollectFiles(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		recursive := false
		base := pattern
		if strings.HasSuffix(pattern, RecursiveSuffix) || pattern == "..." {
			recursive = true
			base = strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/")
			if base == "" {
				base = "."
			}
		}
		base = filepath.Clean(base)

		info, err := os.Stat(base)
		if err != nil {
			return nil, errors.WrapFileSystemError("stat", base, err)
		}

		if !info.IsDir() {
			add(base)
			continue
		}

		found, err := fp.scanDirectory(base, recursive)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (fp *FileProcessor) scanDirectory(root string, recursive bool) ([]string, error) {
	var matched []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path == root {
				return nil
			}
			if !recursive || !fp.directoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}
		if fp.fileFilter(path, entry) {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", root, err)
	}

	return matched, nil
}

// ReadSourceFile reads a file, refusing directories and files above maxSize
func ReadSourceFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	if info.IsDir() {
		return nil, errors.WrapFileSystemError("read", path, fmt.Errorf("is a directory"))
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, errors.WrapFileSystemError("read", path, fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, info.Size(), maxSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return data, nil
}
