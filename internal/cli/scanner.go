package cli

import (
	"github.com/toyz/textsig/internal/manifest"
	"github.com/toyz/textsig/internal/utils"
)

// RustSourceSuffix marks Rust source files
const RustSourceSuffix = ".rs"

// SourceScanner finds the Rust sources and manifests named by path patterns
type SourceScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewSourceScanner creates a scanner for .rs files and manifests
func NewSourceScanner() *SourceScanner {
	return &SourceScanner{
		fileProcessor: utils.NewFileProcessor(utils.SuffixFilter(RustSourceSuffix, manifest.FileSuffix)),
	}
}

// ScanPaths resolves patterns to files. Supports Go-style patterns like
// "./..." for recursive scanning; no patterns means "./...".
func (s *SourceScanner) ScanPaths(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	return s.fileProcessor.CollectFiles(patterns)
}
