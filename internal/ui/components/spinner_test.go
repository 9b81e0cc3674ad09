// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestNewSpinner(t *testing.T) {
	s := NewSpinner()

	if s.Message() != "Working" {
		t.Errorf("NewSpinner() message = %q, want %q", s.Message(), "Working")
	}
	if s.IsActive() {
		t.Error("NewSpinner() should not be active initially")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s := NewSpinner()
	s.SetMessage("Exporting pdf")
	if s.Message() != "Exporting pdf" {
		t.Errorf("SetMessage() message = %q", s.Message())
	}
}

func TestSpinnerStartStop(t *testing.T) {
	s := NewSpinner()

	cmd := s.Start()
	if !s.IsActive() {
		t.Error("Start() should activate spinner")
	}
	if cmd == nil {
		t.Error("Start() should return a non-nil command")
	}

	s.Stop()
	if s.IsActive() {
		t.Error("Stop() should deactivate spinner")
	}
}

func TestSpinnerUpdate(t *testing.T) {
	s := NewSpinner()

	// Inactive spinners drop their ticks so the loop ends
	_, cmd := s.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Error("Update() should return nil command when inactive")
	}

	s.Start()
	updated, _ := s.Update(tea.KeyMsg{})
	if !updated.IsActive() {
		t.Error("Update() should maintain active state")
	}
}

func TestSpinnerView(t *testing.T) {
	s := NewSpinner()

	if view := s.View(); view != "" {
		t.Errorf("View() when inactive = %q, want empty string", view)
	}

	s.SetMessage("Exporting")
	s.Start()

	view := s.View()
	if !strings.Contains(view, "Exporting...") {
		t.Errorf("View() = %q, should contain the message", view)
	}
	if !strings.Contains(view, "|") {
		t.Errorf("View() = %q, should start on the first frame", view)
	}
}
