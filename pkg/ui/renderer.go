package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/measurefs/pkg/bundle"
	"github.com/arthur-debert/measurefs/pkg/copier"
	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Renderer writes results to an output in one format.
type Renderer struct {
	out    io.Writer
	format Format
	styles Styles
}

// New creates a renderer. FormatAuto is resolved against w.
func New(w io.Writer, format Format) *Renderer {
	format = Resolve(format, w)
	styles := PlainStyles()
	if format == FormatTerminal {
		styles = NewStyles(w)
	}
	return &Renderer{out: w, format: format, styles: styles}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format {
	return r.format
}

// ErrorView is the encoded form of an error.
type ErrorView struct {
	Code    string `json:"code" yaml:"code" toml:"code"`
	Message string `json:"message" yaml:"message" toml:"message"`
}

func newErrorView(err error) ErrorView {
	return ErrorView{Code: string(errors.GetErrorCode(err)), Message: err.Error()}
}

// EntriesView is a listing of relative entries under a root.
type EntriesView struct {
	Root    string   `json:"root" yaml:"root" toml:"root"`
	Entries []string `json:"entries" yaml:"entries" toml:"entries"`
}

// CopyView is the encoded form of a copier.Result.
type CopyView struct {
	Source      string      `json:"source" yaml:"source" toml:"source"`
	Destination string      `json:"destination" yaml:"destination" toml:"destination"`
	Success     bool        `json:"success" yaml:"success" toml:"success"`
	Files       []string    `json:"files" yaml:"files" toml:"files"`
	Dirs        []string    `json:"dirs" yaml:"dirs" toml:"dirs"`
	Skipped     []string    `json:"skipped" yaml:"skipped" toml:"skipped"`
	Errors      []ErrorView `json:"errors" yaml:"errors" toml:"errors,omitempty"`
}

// NewCopyView converts res for encoding.
func NewCopyView(res *copier.Result) CopyView {
	view := CopyView{
		Source:      res.Source,
		Destination: res.Destination,
		Success:     res.Success,
		Files:       nonNil(res.Files),
		Dirs:        nonNil(res.Dirs),
		Skipped:     nonNil(res.Skipped),
		Errors:      []ErrorView{},
	}
	for _, err := range res.Errors {
		view.Errors = append(view.Errors, newErrorView(err))
	}
	return view
}

// InfoView pairs a manifest with the files it lists that are absent.
type InfoView struct {
	Manifest bundle.Manifest `json:"manifest" yaml:"manifest" toml:"manifest"`
	Missing  []string        `json:"missing" yaml:"missing" toml:"missing"`
}

// RenderEntries writes a listing, one relative entry per line in text modes.
func (r *Renderer) RenderEntries(root string, entries []string) error {
	if r.format.Structured() {
		return r.encode(EntriesView{Root: root, Entries: nonNil(entries)})
	}
	for _, rel := range entries {
		r.printf("%s\n", rel)
	}
	return nil
}

// RenderCopy writes the outcome of a copy or stage.
func (r *Renderer) RenderCopy(res *copier.Result) error {
	if r.format.Structured() {
		return r.encode(NewCopyView(res))
	}

	s := r.styles
	if !res.Success {
		r.printf("%s %s\n", s.Error.Render("Copy failed:"), res.Err())
	} else {
		r.printf("%s %s -> %s\n", s.Success.Render("Copied"), s.Path.Render(res.Source), s.Path.Render(res.Destination))
	}
	r.printf("  %s\n", s.Muted.Render(fmt.Sprintf("%d files, %d directories, %d skipped",
		len(res.Files), len(res.Dirs), len(res.Skipped))))
	for _, rel := range res.Skipped {
		r.printf("  %s %s\n", s.Muted.Render("skipped"), rel)
	}
	for _, err := range res.Failed() {
		r.printf("  %s %s\n", s.Warning.Render("failed"), err)
	}
	return nil
}

// RenderReport writes a bundle validation report.
func (r *Renderer) RenderReport(report *bundle.Report) error {
	if r.format.Structured() {
		return r.encode(report)
	}

	s := r.styles
	if report.Valid() {
		r.printf("%s %s %s\n", s.Success.Render("Valid:"), s.Path.Render(report.Root),
			s.Muted.Render(fmt.Sprintf("(%d files)", len(report.Allowed))))
		return nil
	}
	r.printf("%s %s has %d disallowed %s:\n", s.Error.Render("Invalid:"), s.Path.Render(report.Root),
		len(report.Disallowed), plural(len(report.Disallowed), "entry", "entries"))
	for _, rel := range report.Disallowed {
		r.printf("  %s\n", rel)
	}
	return nil
}

// RenderDiff writes a tree comparison.
func (r *Renderer) RenderDiff(diff *copier.Diff) error {
	if r.format.Structured() {
		return r.encode(diff)
	}

	s := r.styles
	if diff.Equal() {
		r.printf("%s %s\n", s.Success.Render("Trees match"), s.Muted.Render(fmt.Sprintf("(%d files)", diff.Matched)))
		return nil
	}
	r.printf("%s %s\n", s.Error.Render("Trees differ"), s.Muted.Render(fmt.Sprintf("(%d files match)", diff.Matched)))
	for _, rel := range diff.Missing {
		r.printf("  %s %s\n", s.Warning.Render("missing"), rel)
	}
	for _, rel := range diff.Extra {
		r.printf("  %s %s\n", s.Warning.Render("extra"), rel)
	}
	for _, rel := range diff.SizeMismatch {
		r.printf("  %s %s\n", s.Warning.Render("size differs"), rel)
	}
	for _, rel := range diff.ContentMismatch {
		r.printf("  %s %s\n", s.Warning.Render("content differs"), rel)
	}
	return nil
}

// RenderInfo writes a manifest summary and the listed files that are absent.
func (r *Renderer) RenderInfo(m *bundle.Manifest, missing []string) error {
	if r.format.Structured() {
		return r.encode(InfoView{Manifest: *m, Missing: nonNil(missing)})
	}

	s := r.styles
	title := m.DisplayName
	if title == "" {
		title = m.Name
	}
	r.printf("%s\n", s.Header.Render(title))
	field := func(label, value string) {
		if value != "" {
			r.printf("  %s %s\n", s.Muted.Render(label+":"), value)
		}
	}
	field("name", m.Name)
	field("class", m.ClassName)
	field("uid", m.UID)
	field("version", m.VersionID)
	if m.Description != "" {
		r.printf("\n  %s\n", strings.ReplaceAll(m.Description, "\n", "\n  "))
	}

	r.printf("\n%s\n", s.Header.Render(fmt.Sprintf("Files (%d)", len(m.Files))))
	absent := make(map[string]bool, len(missing))
	for _, rel := range missing {
		absent[rel] = true
	}
	for _, f := range m.Files {
		rel := f.Path()
		if absent[rel] {
			r.printf("  %s %s\n", rel, s.Error.Render("(missing)"))
			continue
		}
		if f.UsageType != "" {
			r.printf("  %s %s\n", rel, s.Muted.Render("("+f.UsageType+")"))
		} else {
			r.printf("  %s\n", rel)
		}
	}
	return nil
}

// RenderError writes err. Structured formats get a code and a message.
func (r *Renderer) RenderError(err error) error {
	if r.format.Structured() {
		return r.encode(map[string]ErrorView{"error": newErrorView(err)})
	}
	r.printf("%s %s\n", r.styles.Error.Render("Error:"), err)
	return nil
}

// RenderMessage writes a single line of text.
func (r *Renderer) RenderMessage(msg string) error {
	if r.format.Structured() {
		return r.encode(map[string]string{"message": msg})
	}
	r.printf("%s\n", msg)
	return nil
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		return toml.NewEncoder(r.out).Encode(v)
	default:
		return fmt.Errorf("format %s cannot encode values", r.format)
	}
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
