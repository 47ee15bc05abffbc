package cli

import (
	"fmt"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/rustsrc"
	"github.com/toyz/textsig/internal/utils"
)

// OutputFormat selects how an inspection report is printed
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config holds the configuration for inspecting sources
type Config struct {
	// Paths are files, directories or "dir/..." patterns to scan
	Paths []string

	Format OutputFormat

	// InternalDoc also reports the combined "name(sig)\n--\n\ndoc" string
	InternalDoc bool

	// IncludeTypes reports #[pyclass] types alongside functions and methods
	IncludeTypes bool

	// MaxFileSize is the largest source file read, in bytes
	MaxFileSize int64

	Verbose bool
	Quiet   bool
}

// DefaultConfig returns the configuration used when no flags are given
func DefaultConfig() Config {
	return Config{
		Paths:        []string{"./..."},
		Format:       FormatText,
		IncludeTypes: true,
		MaxFileSize:  rustsrc.DefaultMaxFileSize,
	}
}

// Validate checks flag combinations
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.ConfigurationError("format", fmt.Sprintf("'%s' is not one of text, json", c.Format)).
			WithSuggestion("use --format text or --format json")
	}
	if c.Verbose && c.Quiet {
		return errors.ConfigurationError("verbosity", "--verbose and --quiet are mutually exclusive")
	}
	if c.MaxFileSize <= 0 {
		return errors.ConfigurationError("max file size", "must be positive")
	}
	return nil
}

// DiagnosticLevel maps the verbosity flags to a diagnostic level. JSON
// output keeps stderr down to errors so the report stays machine-readable.
func (c Config) DiagnosticLevel() utils.DiagnosticLevel {
	switch {
	case c.Quiet:
		return utils.DiagnosticError
	case c.Verbose:
		return utils.DiagnosticVerbose
	case c.Format == FormatJSON:
		return utils.DiagnosticWarn
	default:
		return utils.DiagnosticInfo
	}
}
