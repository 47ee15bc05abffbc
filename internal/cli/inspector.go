package cli

import (
	"context"
	stderrors "errors"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/manifest"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/rustsrc"
	"github.com/toyz/textsig/internal/synth"
	"github.com/toyz/textsig/internal/utils"
)

// Inspector extracts and synthesizes metadata for source files. Results are
// cached per file until the file changes, so a long-running server can
// inspect the same tree repeatedly.
type Inspector struct {
	config      Config
	scanner     *SourceScanner
	extractor   *rustsrc.Extractor
	cache       *utils.FileCache[*FileReport]
	diagnostics *utils.DiagnosticSystem
}

// NewInspector creates an inspector for the given configuration
func NewInspector(cfg Config, diagnostics *utils.DiagnosticSystem) *Inspector {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Inspector{
		config:  cfg,
		scanner: NewSourceScanner(),
		extractor: rustsrc.NewExtractor(
			rustsrc.WithMaxFileSize(cfg.MaxFileSize),
			rustsrc.WithTypes(cfg.IncludeTypes),
		),
		cache:       utils.NewFileCache[*FileReport](),
		diagnostics: diagnostics,
	}
}

// Run scans the configured paths and inspects every file found
func (i *Inspector) Run(ctx context.Context) (*Report, error) {
	return i.InspectPaths(ctx, i.config.Paths)
}

// InspectPaths scans patterns and inspects every file found
func (i *Inspector) InspectPaths(ctx context.Context, patterns []string) (*Report, error) {
	files, err := i.scanner.ScanPaths(patterns)
	if err != nil {
		return nil, err
	}
	i.diagnostics.Info("found %d source files", len(files))
	return i.InspectFiles(ctx, files)
}

// InspectFiles inspects files in order. Problems in one file never stop the
// others; they are recorded on that file's report.
func (i *Inspector) InspectFiles(ctx context.Context, files []string) (*Report, error) {
	report := &Report{Files: make([]*FileReport, 0, len(files))}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Files = append(report.Files, i.InspectFile(ctx, file))
	}
	i.diagnostics.Debug("%d file reports cached", i.cache.Len())
	return report, nil
}

// InspectFile inspects one file, reusing a cached report while the file is
// unchanged. Files over the size limit are skipped with a warning.
func (i *Inspector) InspectFile(ctx context.Context, path string) *FileReport {
	if cached, ok := i.cache.Lookup(path); ok {
		i.diagnostics.Debug("cache hit for %s", path)
		return cached
	}

	content, err := utils.ReadSourceFile(path, i.config.MaxFileSize)
	if stderrors.Is(err, utils.ErrFileTooLarge) {
		i.diagnostics.Warn("skipping %s: larger than %d bytes", path, i.config.MaxFileSize)
		return &FileReport{File: path}
	}
	if err != nil {
		return &FileReport{File: path, Errors: collectErrors(err)}
	}

	report := i.InspectSource(ctx, path, content)
	if err := i.cache.Store(path, report); err != nil {
		i.diagnostics.Debug("not caching %s: %v", path, err)
	}
	return report
}

// InspectSource inspects in-memory content. name decides the format: a
// manifest suffix selects YAML, anything else is parsed as Rust.
func (i *Inspector) InspectSource(ctx context.Context, name string, content []byte) *FileReport {
	report := &FileReport{File: name}

	var callables []models.Callable
	if manifest.IsManifest(name) {
		var err error
		callables, err = manifest.Parse(content, name)
		report.Errors = append(report.Errors, collectErrors(err)...)
	} else {
		result, err := i.extractor.Extract(ctx, content, name)
		if err != nil {
			report.Errors = append(report.Errors, collectErrors(err)...)
			return report
		}
		callables = result.Callables
		if n := result.Errors.Count(); n > 0 {
			i.diagnostics.Verbose("%s: %d declarations rejected", name, n)
		}
		report.Errors = append(report.Errors, collectErrors(result.Errors.ErrorOrNil())...)
	}

	var opts []synth.Option
	if i.config.InternalDoc {
		opts = append(opts, synth.WithInternalDoc())
	}

	metas, err := synth.SynthesizeAll(callables, opts...)
	report.Callables = metas
	report.Errors = append(report.Errors, collectErrors(err)...)

	i.diagnostics.Verbose("%s: %d callables, %d errors", name, len(report.Callables), len(report.Errors))
	return report
}

// collectErrors flattens err into individual TextsigErrors
func collectErrors(err error) []errors.TextsigError {
	if err == nil {
		return nil
	}
	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) {
		return multi.Errors
	}
	return []errors.TextsigError{errors.AsTextsigError(err)}
}
