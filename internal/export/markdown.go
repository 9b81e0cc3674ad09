// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jeranaias/cornell-tui/internal/notes"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports notes to Markdown with YAML frontmatter.
type MarkdownExporter struct {
	options *Options

	// Frontmatter toggles the YAML header. The terminal preview turns it off.
	Frontmatter bool
}

// frontmatter is the YAML metadata block.
type frontmatter struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Saved     string `yaml:"saved,omitempty"`
	Words     int    `yaml:"words"`
	Exported  string `yaml:"exported"`
	Generator string `yaml:"generator"`
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	return &MarkdownExporter{options: opts.withDefaults(), Frontmatter: true}
}

// Export converts a snapshot to Markdown.
func (e *MarkdownExporter) Export(snap notes.Snapshot) ([]byte, error) {
	now := e.options.Now()
	var sb strings.Builder

	if e.Frontmatter {
		meta := frontmatter{
			Title:     "Cornell Notes",
			Date:      now.Format(e.options.DateFormat),
			Words:     snap.WordCount(),
			Exported:  now.Format(time.RFC3339),
			Generator: "cornell-tui",
		}
		if !snap.TakenAt().IsZero() {
			meta.Saved = snap.TakenAt().Format(time.RFC3339)
		}

		header, err := yaml.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
		sb.WriteString("---\n")
		sb.Write(header)
		sb.WriteString("---\n\n")
	}

	sb.WriteString("# Cornell Notes\n\n")
	sb.WriteString(fmt.Sprintf("*Date: %s*\n", now.Format(e.options.DateFormat)))

	for _, f := range notes.Fields {
		sb.WriteString(fmt.Sprintf("\n## %s\n\n", f.Title()))
		body := strings.TrimSpace(snap.Field(f))
		if body == "" {
			sb.WriteString("_" + Placeholder + "_\n")
			continue
		}
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString(fmt.Sprintf("*%s on %s*\n", FooterText, now.Format("January 2, 2006 at 3:04 PM")))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
