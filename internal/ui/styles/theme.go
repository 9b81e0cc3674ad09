// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME MODE
// =============================================================================

// Mode selects how adaptive colors resolve.
type Mode string

const (
	// ModeAuto asks the terminal for its background color.
	ModeAuto Mode = "auto"
	// ModeDark forces the dark variant of every adaptive color.
	ModeDark Mode = "dark"
	// ModeLight forces the light variant of every adaptive color.
	ModeLight Mode = "light"
)

// Modes lists the accepted theme names.
var Modes = []Mode{ModeAuto, ModeDark, ModeLight}

// ParseMode converts a config value into a Mode. Unknown values fall
// back to ModeAuto and ok is false.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, true
	case ModeDark:
		return ModeDark, true
	case ModeLight:
		return ModeLight, true
	}
	return ModeAuto, false
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         Mode
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderDate  lipgloss.Style
	HeaderBrand lipgloss.Style

	// ==========================================================================
	// PANE STYLES
	// ==========================================================================

	PaneFocused      lipgloss.Style
	PaneBlurred      lipgloss.Style
	PaneTitle        lipgloss.Style
	PaneTitleFocused lipgloss.Style
	Placeholder      lipgloss.Style
	CursorLine       lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar      lipgloss.Style
	StatusUnsaved  lipgloss.Style
	StatusSaving   lipgloss.Style
	StatusSaved    lipgloss.Style
	StatusFeedback lipgloss.Style
	StatusCount    lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style

	// ==========================================================================
	// DIALOG STYLES
	// ==========================================================================

	DialogBox          lipgloss.Style
	DialogTitle        lipgloss.Style
	DialogMessage      lipgloss.Style
	DialogButton       lipgloss.Style
	DialogButtonActive lipgloss.Style
	DialogButtonDanger lipgloss.Style

	// ==========================================================================
	// NOTICE AND PREVIEW STYLES
	// ==========================================================================

	NoticeBox   lipgloss.Style
	NoticeTitle lipgloss.Style
	NoticeHint  lipgloss.Style
	PreviewBox  lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	LinkStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. ModeDark and
// ModeLight override the terminal's reported background for every
// adaptive color rendered through lipgloss.
func NewTheme(mode Mode) *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
		lipgloss.SetHasDarkBackground(isDark)
	}

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()

	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderDate = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Panes
	t.PaneFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.PaneBlurred = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PaneTitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.PaneTitleFocused = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.CursorLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusUnsaved = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusSaving = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.StatusSaved = lipgloss.NewStyle().
		Foreground(Emerald)

	t.StatusFeedback = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.StatusCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Dialogs
	t.DialogBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PurpleDeep).
		Padding(1, 2)

	t.DialogTitle = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.DialogMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.DialogButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(OverlayDim).
		Padding(0, 2)

	t.DialogButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 2)

	t.DialogButtonDanger = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Rose).
		Bold(true).
		Padding(0, 2)

	// Notices and preview
	t.NoticeBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Amber).
		Padding(1, 2)

	t.NoticeTitle = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.NoticeHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.PreviewBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)

	// ACCESSIBILITY: use with the matching StatusIndicators symbol
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)

	t.LinkStyle = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
// Narrow terminals stack the cue and notes panes; wider ones put them
// side by side.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// CueWidthRatio returns the share of the content width given to the cue
// column in side-by-side layouts.
func (m LayoutMode) CueWidthRatio() float64 {
	switch m {
	case LayoutWide:
		return 0.3
	case LayoutMedium:
		return 0.35
	}
	return 1
}

// Stacked reports whether the cue and notes panes are stacked vertically.
func (m LayoutMode) Stacked() bool {
	return m == LayoutNarrow
}
