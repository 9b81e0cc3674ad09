// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner shows that background work, such as an export, is running.
type Spinner struct {
	// Core spinner from bubbles
	spinner spinner.Model

	message  string
	isActive bool
}

// NewSpinner creates an ASCII spinner.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	return Spinner{spinner: s, message: "Working"}
}

// SetMessage sets the text shown after the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// Message returns the text shown after the spinner.
func (s *Spinner) Message() string {
	return s.message
}

// =============================================================================
// STATE MANAGEMENT
// =============================================================================

// Start activates the spinner and returns its first tick.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	return s.spinner.Tick
}

// Stop deactivates the spinner. Pending ticks are ignored.
func (s *Spinner) Stop() {
	s.isActive = false
}

// IsActive returns whether the spinner is currently running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update advances the animation while the spinner is active.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.isActive {
		return s, nil
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner, or "" when stopped.
func (s Spinner) View() string {
	if !s.isActive {
		return ""
	}

	spinnerView := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render(s.spinner.View())

	messageView := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(s.message + "...")

	return spinnerView + " " + messageView
}
