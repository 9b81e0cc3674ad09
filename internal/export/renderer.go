// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/jeranaias/cornell-tui/internal/util"
)

// =============================================================================
// RENDERER INTERFACE
// =============================================================================

// Align positions text relative to the x coordinate passed to WriteText.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Renderer draws pages. Coordinates are millimetres from the top-left
// corner; y is the text baseline. A new renderer starts on page one.
type Renderer interface {
	SetFont(family, style string)
	SetFontSize(pt float64)
	SetLineWidth(mm float64)
	WriteText(s string, x, y float64, align Align)
	WrapText(s string, width float64) []string
	DrawLine(x1, y1, x2, y2 float64)
	AddPage()
	PageWidth() float64
	PageHeight() float64
	SaveAs(path string) error
}

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = "A4"

// PageSizes lists the supported page sizes.
var PageSizes = []string{"A4", "Letter", "Legal", "A5"}

// NormalizePageSize returns the canonical spelling of a page size.
func NormalizePageSize(s string) (string, bool) {
	for _, size := range PageSizes {
		if strings.EqualFold(size, strings.TrimSpace(s)) {
			return size, true
		}
	}
	return "", false
}

// =============================================================================
// FPDF RENDERER
// =============================================================================

// PDFRenderer draws with the core PDF fonts through fpdf.
type PDFRenderer struct {
	pdf *fpdf.Fpdf
}

// NewPDFRenderer creates a portrait document with one empty page.
func NewPDFRenderer(pageSize string) (*PDFRenderer, error) {
	size, ok := NormalizePageSize(pageSize)
	if !ok {
		return nil, fmt.Errorf("unsupported page size %q", pageSize)
	}

	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Cornell Notes", true)
	pdf.SetCreator("cornell-tui", true)
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetFont(fontFamily, "", bodySize)
	pdf.AddPage()

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return &PDFRenderer{pdf: pdf}, nil
}

func (r *PDFRenderer) SetFont(family, style string) { r.pdf.SetFont(family, style, 0) }

func (r *PDFRenderer) SetFontSize(pt float64) { r.pdf.SetFontSize(pt) }

func (r *PDFRenderer) SetLineWidth(mm float64) { r.pdf.SetLineWidth(mm) }

func (r *PDFRenderer) WriteText(s string, x, y float64, align Align) {
	encoded := encodeCP1252(s)
	switch align {
	case AlignCenter:
		x -= r.pdf.GetStringWidth(encoded) / 2
	case AlignRight:
		x -= r.pdf.GetStringWidth(encoded)
	}
	r.pdf.Text(x, y, encoded)
}

// WrapText measures the text as it will be encoded but returns the
// original strings.
func (r *PDFRenderer) WrapText(s string, width float64) []string {
	return wrapWords(s, width, func(t string) float64 {
		return r.pdf.GetStringWidth(encodeCP1252(t))
	})
}

func (r *PDFRenderer) DrawLine(x1, y1, x2, y2 float64) { r.pdf.Line(x1, y1, x2, y2) }

func (r *PDFRenderer) AddPage() { r.pdf.AddPage() }

func (r *PDFRenderer) PageWidth() float64 {
	w, _ := r.pdf.GetPageSize()
	return w
}

func (r *PDFRenderer) PageHeight() float64 {
	_, h := r.pdf.GetPageSize()
	return h
}

// SaveAs writes the document atomically.
func (r *PDFRenderer) SaveAs(path string) error {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return fmt.Errorf("generate pdf: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// encodeCP1252 converts UTF-8 text to the Windows-1252 bytes the core
// fonts expect. Runes outside the code page become '?'.
func encodeCP1252(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '\t' {
			r = ' '
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
