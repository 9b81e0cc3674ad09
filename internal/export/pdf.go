// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/cornell-tui/internal/notes"
)

// =============================================================================
// PAGE LAYOUT
// =============================================================================

// Page geometry in millimetres.
const (
	margin         = 20.0
	titleY         = 30.0
	dateY          = 40.0
	headerRuleY    = 50.0
	contentTop     = 60.0
	pageTop        = 30.0
	bottomMargin   = 30.0
	footerOffset   = 20.0
	headingAdvance = 10.0
	lineHeight     = 5.0
	sectionGap     = 15.0
	separatorLift  = 5.0
)

// Font settings.
const (
	fontFamily  = "Helvetica"
	titleSize   = 24.0
	dateSize    = 12.0
	headingSize = 16.0
	bodySize    = 11.0
	footerSize  = 8.0

	headerRuleWidth = 0.5
	separatorWidth  = 0.3
)

// Fixed document text.
const (
	DocumentTitle = "CORNELL NOTES"
	FooterText    = "Generated by Cornell Notes"
	Placeholder   = "No content recorded."
)

// SectionHeadings are the PDF headings for cues, notes and summary.
var SectionHeadings = [notes.FieldCount]string{
	notes.FieldCues:    "KEYWORDS / CUES",
	notes.FieldNotes:   "MAIN NOTES",
	notes.FieldSummary: "SUMMARY",
}

// layout tracks the cursor while drawing.
type layout struct {
	r      Renderer
	width  float64
	height float64
	bottom float64
	y      float64
	pages  int
}

// Layout draws the whole document onto r, which must be on its first
// page. It returns the number of pages used.
func Layout(r Renderer, snap notes.Snapshot, date string) int {
	l := &layout{
		r:      r,
		width:  r.PageWidth(),
		height: r.PageHeight(),
		pages:  1,
	}
	l.bottom = l.height - bottomMargin

	l.header(date)
	for i, f := range notes.Fields {
		l.section(i, SectionHeadings[f], snap.Field(f))
	}
	l.footer()

	return l.pages
}

func (l *layout) header(date string) {
	l.r.SetFont(fontFamily, "B")
	l.r.SetFontSize(titleSize)
	l.r.WriteText(DocumentTitle, l.width/2, titleY, AlignCenter)

	l.r.SetFont(fontFamily, "")
	l.r.SetFontSize(dateSize)
	l.r.WriteText("Date: "+date, l.width/2, dateY, AlignCenter)

	l.r.SetLineWidth(headerRuleWidth)
	l.r.DrawLine(margin, headerRuleY, l.width-margin, headerRuleY)

	l.y = contentTop
}

func (l *layout) section(index int, heading, body string) {
	// Heading and first body line must share a page
	if l.y+headingAdvance > l.bottom {
		l.newPage()
	}

	if index > 0 {
		l.r.SetLineWidth(separatorWidth)
		l.r.DrawLine(margin, l.y-separatorLift, l.width-margin, l.y-separatorLift)
	}

	l.r.SetFont(fontFamily, "B")
	l.r.SetFontSize(headingSize)
	l.r.WriteText(heading, margin, l.y, AlignLeft)
	l.y += headingAdvance

	l.bodyFont()
	for _, line := range l.wrapBody(body) {
		if l.y > l.bottom {
			l.newPage()
			l.bodyFont()
		}
		l.r.WriteText(line, margin, l.y, AlignLeft)
		l.y += lineHeight
	}
	l.y += sectionGap
}

// wrapBody splits the body into paragraphs and wraps each one.
func (l *layout) wrapBody(body string) []string {
	if strings.TrimSpace(body) == "" {
		body = Placeholder
	}

	contentWidth := l.width - 2*margin
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		lines = append(lines, l.r.WrapText(para, contentWidth)...)
	}
	return lines
}

func (l *layout) bodyFont() {
	l.r.SetFont(fontFamily, "")
	l.r.SetFontSize(bodySize)
}

func (l *layout) newPage() {
	l.footer()
	l.r.AddPage()
	l.pages++
	l.y = pageTop
}

func (l *layout) footer() {
	l.r.SetFont(fontFamily, "I")
	l.r.SetFontSize(footerSize)
	l.r.WriteText(FooterText, l.width/2, l.height-footerOffset, AlignCenter)
}
