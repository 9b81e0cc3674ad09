// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides note export functionality for the cornell TUI.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for byte-producing exporters.
type Exporter interface {
	// Export converts a snapshot to the target format and returns the content.
	Export(snap notes.Snapshot) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".txt").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// FORMATS
// =============================================================================

// Format names an export format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists every supported format, primary first.
var Formats = []Format{FormatPDF, FormatText, FormatMarkdown, FormatJSON}

// ParseFormat accepts a format name or its usual file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "pdf":
		return FormatPDF, nil
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want pdf, text, markdown or json)", s)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".pdf"
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// DateFormat is the Go layout for the "Date:" line.
	// Default: "2006-01-02"
	DateFormat string

	// PageSize is the PDF page size (A4, Letter, Legal, A5).
	// Default: "A4"
	PageSize string

	// Now supplies the export time. Default: time.Now
	Now func() time.Time

	// NewRenderer creates the PDF renderer. Default: NewPDFRenderer
	NewRenderer func(pageSize string) (Renderer, error)
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:   ".",
		DateFormat:  DefaultDateFormat,
		PageSize:    DefaultPageSize,
		Now:         time.Now,
		NewRenderer: newPDFRenderer,
	}
}

// DefaultDateFormat is the layout used for the date line.
const DefaultDateFormat = "2006-01-02"

// withDefaults fills unset fields without mutating the caller's copy.
func (o *Options) withDefaults() *Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	*out = *o
	if out.OutputDir == "" {
		out.OutputDir = "."
	}
	if out.DateFormat == "" {
		out.DateFormat = DefaultDateFormat
	}
	if out.PageSize == "" {
		out.PageSize = DefaultPageSize
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.NewRenderer == nil {
		out.NewRenderer = newPDFRenderer
	}
	return out
}

// at returns a copy of o whose clock is fixed to t, so every part of one
// export agrees on the date.
func (o *Options) at(t time.Time) *Options {
	out := *o
	out.Now = func() time.Time { return t }
	return &out
}

func newPDFRenderer(pageSize string) (Renderer, error) {
	return NewPDFRenderer(pageSize)
}

// =============================================================================
// RESULT
// =============================================================================

// Result describes a finished export.
type Result struct {
	// Path is the written file.
	Path string

	// Format is the format actually written. FormatText after a fallback.
	Format Format

	// FellBack is set when the PDF could not be produced and the notes
	// were written as text instead.
	FellBack bool

	// RenderErr is the *ExportRenderError behind a fallback.
	RenderErr error
}

// Notice is the message shown to the user after the export.
func (r Result) Notice() string {
	if r.FellBack {
		return fmt.Sprintf("PDF not available. Notes were saved as a text file instead: %s", r.Path)
	}
	return fmt.Sprintf("Exported to %s", r.Path)
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// Export writes snap in the given format. PDF exports fall back to text
// when rendering fails; the error return is reserved for failures to
// write any file at all.
func Export(snap notes.Snapshot, format Format, opts *Options) (Result, error) {
	opts = opts.withDefaults()
	opts = opts.at(opts.Now())

	if format == FormatPDF {
		return ExportPDF(snap, opts)
	}

	exporter, err := NewExporter(format, opts)
	if err != nil {
		return Result{}, err
	}
	path, err := ExportToFile(snap, exporter, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Format: format}, nil
}

// NewExporter returns the byte exporter for a non-PDF format.
func NewExporter(format Format, opts *Options) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(opts), nil
	case FormatMarkdown:
		return NewMarkdownExporter(opts), nil
	case FormatJSON:
		return NewJSONExporter(opts), nil
	default:
		return nil, fmt.Errorf("format %q has no byte exporter", format)
	}
}

// ExportToFile exports a snapshot to a file using the specified exporter.
// Returns the output file path or an error.
func ExportToFile(snap notes.Snapshot, exporter Exporter, opts *Options) (string, error) {
	opts = opts.withDefaults()

	content, err := exporter.Export(snap)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	path, err := WriteDownload(opts.OutputDir, Filename(opts.Now(), exporter.FileExtension()), content)
	if err != nil {
		return "", err
	}

	openIfRequested(path, opts)
	return path, nil
}

// ExportPDF renders snap as PDF. Any renderer failure, including a
// panic, is converted to an *ExportRenderError and the notes are written
// as text instead.
func ExportPDF(snap notes.Snapshot, opts *Options) (Result, error) {
	opts = opts.withDefaults()
	now := opts.Now()
	opts = opts.at(now)
	path := filepath.Join(opts.OutputDir, Filename(now, FormatPDF.Extension()))

	renderErr := renderPDF(snap, path, now.Format(opts.DateFormat), opts)
	if renderErr == nil {
		openIfRequested(path, opts)
		return Result{Path: path, Format: FormatPDF}, nil
	}

	slog.Warn("pdf export failed, writing text instead", "error", renderErr)

	content, _ := NewTextExporter(opts).Export(snap)
	txtPath, err := WriteDownload(opts.OutputDir, Filename(now, FormatText.Extension()), content)
	res := Result{Path: txtPath, Format: FormatText, FellBack: true, RenderErr: renderErr}
	if err != nil {
		return res, fmt.Errorf("write text fallback: %w", err)
	}
	return res, nil
}

// renderPDF runs the layout against a fresh renderer and saves it.
func renderPDF(snap notes.Snapshot, path, date string, opts *Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExportRenderError{Err: fmt.Errorf("renderer panic: %v", r)}
		}
	}()

	r, err := opts.NewRenderer(opts.PageSize)
	if err != nil {
		return &ExportRenderError{Err: err}
	}
	if r == nil {
		return &ExportRenderError{Err: fmt.Errorf("no renderer available")}
	}

	Layout(r, snap, date)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportRenderError{Err: fmt.Errorf("create output directory: %w", err)}
	}
	if err := r.SaveAs(path); err != nil {
		return &ExportRenderError{Err: err}
	}
	return nil
}

// WriteDownload writes data to dir/name, creating dir if needed, and
// returns the written path.
func WriteDownload(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// FilenamePrefix starts every exported file name.
const FilenamePrefix = "cornell-notes-"

// Filename returns cornell-notes-<YYYY-MM-DD><ext> using the UTC date.
func Filename(at time.Time, ext string) string {
	return FilenamePrefix + at.UTC().Format("2006-01-02") + ext
}

func openIfRequested(path string, opts *Options) {
	if !opts.OpenAfterExport {
		return
	}
	if err := openFile(path); err != nil {
		// Non-fatal - file was still created successfully
		slog.Warn("could not open exported file", "path", path, "error", err)
	}
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
