// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cornell-tui/internal/autosave"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Save indicator texts.
const (
	StatusTextUnsaved  = "Not saved yet"
	StatusTextSaving   = "Saving..."
	StatusTextSavedFmt = "Saved at 15:04"
	StatusTextFeedback = "Saved!"
)

// KeyHint is one entry of the shortcut strip.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusBar is the bottom line: save indicator, word count, shortcuts.
type StatusBar struct {
	Width     int
	State     autosave.State
	LastSaved time.Time
	Feedback  bool
	Words     int
	Hints     []KeyHint

	// Activity is pre-rendered text shown after the word count, such as
	// a running export spinner.
	Activity string

	theme *styles.Theme
}

// NewStatusBar creates a status bar in the unsaved state.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetSaveState copies the indicator state out of a tracker.
func (s *StatusBar) SetSaveState(t *autosave.Tracker) {
	s.State = t.State()
	s.LastSaved = t.LastSaved()
	s.Feedback = t.FeedbackActive()
}

// IndicatorText returns the plain save indicator text.
func (s *StatusBar) IndicatorText() string {
	if s.Feedback {
		return styles.StatusIndicators.Success + " " + StatusTextFeedback
	}
	switch s.State {
	case autosave.StateSaving:
		return styles.StatusIndicators.Active + " " + StatusTextSaving
	case autosave.StateSaved:
		return styles.StatusIndicators.Success + " " + s.LastSaved.Local().Format(StatusTextSavedFmt)
	default:
		return styles.StatusIndicators.Pending + " " + StatusTextUnsaved
	}
}

func (s *StatusBar) indicatorStyle() lipgloss.Style {
	if s.Feedback {
		return s.theme.StatusFeedback
	}
	switch s.State {
	case autosave.StateSaving:
		return s.theme.StatusSaving
	case autosave.StateSaved:
		return s.theme.StatusSaved
	default:
		return s.theme.StatusUnsaved
	}
}

// View renders the bar. Hints are dropped from the right until the bar
// fits the width; the indicator is always kept.
func (s *StatusBar) View() string {
	width := s.Width
	if width < 20 {
		width = 20
	}
	inner := width - 2

	left := s.indicatorStyle().Render(s.IndicatorText())
	count := s.theme.StatusCount.Render(formatCount(s.Words, "word", "words"))
	if s.Activity != "" {
		count += "  " + s.Activity
	}

	hints := s.Hints
	var right string
	for {
		right = s.renderHints(hints)
		used := lipgloss.Width(left) + lipgloss.Width(count) + lipgloss.Width(right) + 4
		if used <= inner || len(hints) == 0 {
			break
		}
		hints = hints[:len(hints)-1]
	}

	middleGap := 2
	rightGap := inner - lipgloss.Width(left) - middleGap - lipgloss.Width(count) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	line := left + strings.Repeat(" ", middleGap) + count + strings.Repeat(" ", rightGap) + right
	return s.theme.StatusBar.Width(width).MaxWidth(width).Render(line)
}

func (s *StatusBar) renderHints(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, s.theme.ShortcutKey.Render(h.Key)+" "+s.theme.ShortcutDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
