package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
)

// FileReport is the outcome of inspecting one file
type FileReport struct {
	File      string                `json:"file"`
	Callables []models.Metadata     `json:"callables"`
	Errors    []errors.TextsigError `json:"-"`
}

// Problem is the serialized form of a declaration error
type Problem struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Location    string   `json:"location,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report collects the file reports of one run
type Report struct {
	Files []*FileReport `json:"files"`
}

// CallableCount returns the number of callables across all files
func (r *Report) CallableCount() int {
	count := 0
	for _, f := range r.Files {
		count += len(f.Callables)
	}
	return count
}

// ErrorCount returns the number of errors across all files
func (r *Report) ErrorCount() int {
	count := 0
	for _, f := range r.Files {
		count += len(f.Errors)
	}
	return count
}

// HasErrors reports whether any file had an error
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

type jsonFileReport struct {
	File      string            `json:"file"`
	Callables []models.Metadata `json:"callables"`
	Errors    []Problem         `json:"errors,omitempty"`
}

type jsonReport struct {
	Files     []jsonFileReport `json:"files"`
	Callables int              `json:"callables"`
	Errors    int              `json:"errors"`
}

// WriteJSON writes the report as indented JSON. Absent doc and signature
// values are null, matching the host's None.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		Files:     make([]jsonFileReport, 0, len(r.Files)),
		Callables: r.CallableCount(),
		Errors:    r.ErrorCount(),
	}
	for _, f := range r.Files {
		jf := jsonFileReport{File: f.File, Callables: f.Callables}
		if jf.Callables == nil {
			jf.Callables = []models.Metadata{}
		}
		for _, e := range f.Errors {
			jf.Errors = append(jf.Errors, problemFrom(e))
		}
		out.Files = append(out.Files, jf)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func problemFrom(e errors.TextsigError) Problem {
	p := Problem{
		Code:        e.ErrorCode().String(),
		Message:     e.Error(),
		Suggestions: e.Suggestions(),
	}
	if loc := e.Location(); !loc.IsEmpty() {
		p.Location = loc.String()
	}
	return p
}

// WriteText writes a human-readable listing: one block per callable with its
// __text_signature__ and __doc__, None when absent
func (r *Report) WriteText(w io.Writer, includeInternal bool) error {
	for _, f := range r.Files {
		if len(f.Callables) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", f.File); err != nil {
			return err
		}
		for _, m := range f.Callables {
			kind := m.Kind
			if m.Role != "" {
				kind = m.Role + " " + kind
			}
			fmt.Fprintf(w, "  %s (%s)\n", m.QualifiedName, kind)
			fmt.Fprintf(w, "    __text_signature__: %s\n", pyRepr(m.TextSignature))
			fmt.Fprintf(w, "    __doc__: %s\n", pyRepr(m.Doc))
			if includeInternal && m.InternalDoc != nil {
				fmt.Fprintf(w, "    internal doc: %s\n", pyRepr(m.InternalDoc))
			}
		}
	}
	return nil
}

func pyRepr(s *string) string {
	if s == nil {
		return "None"
	}
	return strconv.Quote(*s)
}
