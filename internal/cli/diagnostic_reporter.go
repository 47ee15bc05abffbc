package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/textsig/internal/errors"
)

// DiagnosticReporter prints declaration errors with their location, context
// and suggestions
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a reporter writing to out
func NewDiagnosticReporter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportReport prints every error of an inspection report, file by file
func (r *DiagnosticReporter) ReportReport(report *Report) {
	for _, f := range report.Files {
		for _, e := range f.Errors {
			r.ReportError(e)
		}
	}
}

// ReportError prints one error
func (r *DiagnosticReporter) ReportError(err errors.TextsigError) {
	red := color.New(color.FgRed, color.Bold)

	header := errorTitle(err.ErrorCode())
	if loc := err.Location(); !loc.IsEmpty() {
		header = loc.String() + ": " + header
	}
	red.Fprintf(r.out, "%s\n", header)
	fmt.Fprintf(r.out, "  %s\n", err.Error())

	if r.verbose {
		r.printContext(err.Context())
		r.printCauseChain(err)
	}

	if suggestions := err.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}
	fmt.Fprintln(r.out)
}

func errorTitle(code errors.ErrorCode) string {
	switch code {
	case errors.SyntaxErrorCode:
		return "Attribute Syntax Error"
	case errors.ValidationErrorCode:
		return "Validation Error"
	case errors.OrderingErrorCode:
		return "Parameter Ordering Error"
	case errors.ExtractionErrorCode:
		return "Extraction Error"
	case errors.FileSystemErrorCode:
		return "File System Error"
	case errors.ConfigurationErrorCode:
		return "Configuration Error"
	default:
		return "Error"
	}
}

func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	if len(context) == 0 {
		return
	}
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "  Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "    %s: %v\n", formatContextKey(key), context[key])
	}
}

// formatContextKey converts snake_case to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

func (r *DiagnosticReporter) printCauseChain(err error) {
	cause := err
	level := 0
	for {
		unwrapper, ok := cause.(interface{ Unwrap() error })
		if !ok {
			return
		}
		cause = unwrapper.Unwrap()
		if cause == nil {
			return
		}
		if level == 0 {
			fmt.Fprintf(r.out, "  Caused by:\n")
		}
		level++
		fmt.Fprintf(r.out, "    %d. %s\n", level, cause.Error())
	}
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	green := color.New(color.FgGreen)
	fmt.Fprintf(r.out, "  Suggestions:\n")
	for i, suggestion := range suggestions {
		green.Fprintf(r.out, "    %d. ", i+1)
		fmt.Fprintf(r.out, "%s\n", suggestion)
	}
}
