// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cornell-tui/internal/autosave"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

func TestStatusBarIndicatorFollowsTracker(t *testing.T) {
	s := NewStatusBar(styles.NewTheme(styles.ModeDark))
	tracker := autosave.NewTracker(time.Time{})

	s.SetSaveState(tracker)
	if got := s.IndicatorText(); !strings.Contains(got, StatusTextUnsaved) {
		t.Errorf("fresh tracker indicator = %q", got)
	}

	savedAt := time.Date(2026, 10, 19, 14, 5, 0, 0, time.Local)
	gen := tracker.Saved(savedAt)
	s.SetSaveState(tracker)
	if got := s.IndicatorText(); !strings.Contains(got, StatusTextSaving) {
		t.Errorf("indicator while saving = %q", got)
	}

	tracker.SavingDone(gen)
	s.SetSaveState(tracker)
	if got := s.IndicatorText(); !strings.Contains(got, "Saved at 14:05") {
		t.Errorf("indicator after save = %q", got)
	}

	fb := tracker.ShowFeedback()
	s.SetSaveState(tracker)
	if got := s.IndicatorText(); !strings.Contains(got, StatusTextFeedback) {
		t.Errorf("indicator with feedback = %q", got)
	}
	tracker.FeedbackDone(fb)
	s.SetSaveState(tracker)
	if got := s.IndicatorText(); strings.Contains(got, StatusTextFeedback) {
		t.Errorf("feedback should be gone, got %q", got)
	}
}

func TestStatusBarDropsHintsToFit(t *testing.T) {
	s := NewStatusBar(styles.NewTheme(styles.ModeDark))
	s.Words = 1204
	s.Hints = []KeyHint{
		{"ctrl+s", "save"},
		{"ctrl+e", "export"},
		{"ctrl+l", "clear"},
		{"ctrl+p", "preview"},
		{"ctrl+q", "quit"},
	}

	s.SetWidth(140)
	wide := s.View()
	if !strings.Contains(wide, "quit") || !strings.Contains(wide, "1,204 words") {
		t.Errorf("wide bar should show every hint and the count:\n%s", wide)
	}

	s.SetWidth(50)
	narrow := s.View()
	if strings.Contains(narrow, "quit") {
		t.Errorf("narrow bar should drop trailing hints:\n%s", narrow)
	}
	if !strings.Contains(narrow, StatusTextUnsaved) {
		t.Errorf("narrow bar must keep the indicator:\n%s", narrow)
	}
	if w := lipgloss.Width(narrow); w > 50 {
		t.Errorf("narrow bar is %d columns wide", w)
	}
}

func TestStatusBarShowsActivity(t *testing.T) {
	s := NewStatusBar(styles.NewTheme(styles.ModeDark))
	s.SetWidth(100)
	s.Activity = "| Exporting pdf..."

	view := s.View()
	if !strings.Contains(view, "Exporting pdf...") {
		t.Errorf("View() = %q, should contain the activity", view)
	}
	if !strings.Contains(view, StatusTextUnsaved) {
		t.Errorf("View() = %q, should keep the indicator", view)
	}
}
