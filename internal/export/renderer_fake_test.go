// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"os"
	"unicode/utf8"
)

// drawnText is one WriteText call seen by the recording renderer.
type drawnText struct {
	text  string
	x, y  float64
	align Align
	page  int
	style string
	size  float64
}

// recordingRenderer records drawing calls instead of producing a PDF.
type recordingRenderer struct {
	width, height float64

	page  int
	style string
	size  float64

	texts []drawnText
	lines [][4]float64
	saved string
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{width: 210, height: 297, page: 1}
}

func (r *recordingRenderer) SetFont(family, style string) { r.style = style }
func (r *recordingRenderer) SetFontSize(pt float64)       { r.size = pt }
func (r *recordingRenderer) SetLineWidth(mm float64)      {}

func (r *recordingRenderer) WriteText(s string, x, y float64, align Align) {
	r.texts = append(r.texts, drawnText{text: s, x: x, y: y, align: align, page: r.page, style: r.style, size: r.size})
}

// WrapText treats every rune as 2mm wide.
func (r *recordingRenderer) WrapText(s string, width float64) []string {
	return wrapWords(s, width, func(t string) float64 { return 2 * float64(utf8.RuneCountInString(t)) })
}

func (r *recordingRenderer) DrawLine(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, [4]float64{x1, y1, x2, y2})
}

func (r *recordingRenderer) AddPage()            { r.page++ }
func (r *recordingRenderer) PageWidth() float64  { return r.width }
func (r *recordingRenderer) PageHeight() float64 { return r.height }

func (r *recordingRenderer) SaveAs(path string) error {
	r.saved = path
	return os.WriteFile(path, []byte("%PDF-fake"), 0644)
}

// find returns every drawn text equal to s.
func (r *recordingRenderer) find(s string) []drawnText {
	var out []drawnText
	for _, t := range r.texts {
		if t.text == s {
			out = append(out, t)
		}
	}
	return out
}

// faultingRenderer fails in the configured way.
type faultingRenderer struct {
	*recordingRenderer
	panicOnWrite bool
	saveErr      error
}

func (r *faultingRenderer) WriteText(s string, x, y float64, align Align) {
	if r.panicOnWrite {
		panic("glyph table missing")
	}
	r.recordingRenderer.WriteText(s, x, y, align)
}

func (r *faultingRenderer) SaveAs(path string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.recordingRenderer.SaveAs(path)
}

var errDiskGone = errors.New("disk gone")
