// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cornell-tui/internal/autosave"
	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/export"
	"github.com/jeranaias/cornell-tui/internal/logging"
	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/ui/components"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

// Confirm dialog actions.
const (
	actionClear        = "clear"
	actionQuit         = "quit"
	actionQuitUnsaved  = "quit-unsaved"
	saveLogInterval    = time.Minute
	defaultPaneMinRows = 3
)

// Field placeholders.
var placeholders = [notes.FieldCount]string{
	notes.FieldCues:    "Enter keywords, questions or main topics...",
	notes.FieldNotes:   "Write your detailed notes here...",
	notes.FieldSummary: "Summarize the main points and conclusions...",
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options wires the editor to its collaborators.
type Options struct {
	// Store persists the note set. Required.
	Store *storage.NoteStore

	// Clock drives the debounce timer and timestamps. Defaults to the wall clock.
	Clock autosave.Clock

	// Config seeds timings, export settings and the theme. Defaults to config.Default().
	Config *config.Config

	// Export overrides the export options derived from Config.
	Export *export.Options

	// ExportFormat is the initial export format. Defaults to PDF.
	ExportFormat export.Format

	// Theme overrides the theme derived from Config.
	Theme *styles.Theme

	// ConfigChanges delivers live config reloads; may be nil.
	ConfigChanges <-chan *config.Config
}

// =============================================================================
// EDITOR MODEL
// =============================================================================

// Model is the Bubble Tea model for the Cornell notes screen. It owns the
// note set; storage writes and exports receive snapshots.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Note state
	store *storage.NoteStore
	notes notes.NoteSet
	areas [notes.FieldCount]textarea.Model
	focus notes.Field

	// Autosave
	clock        autosave.Clock
	debouncer    *autosave.Debouncer
	due          chan struct{}
	dirty        bool
	tracker      *autosave.Tracker
	indicatorDur time.Duration
	feedbackDur  time.Duration
	saveLog      *logging.Throttle

	// Export
	exportOpts   *export.Options
	exportFormat export.Format
	exporting    bool
	spinner      components.Spinner

	// Config
	configCh   <-chan *config.Config
	storageCfg config.StorageConfig

	// UI Components
	header       *components.Header
	status       *components.StatusBar
	confirm      *components.ConfirmDialog
	notice       *components.Notice
	toasts       *components.ToastManager
	toastTicking bool
	keys         KeyMap
	help         help.Model
	showHelp     bool
	preview      viewport.Model
	showPreview  bool

	quitting bool
}

// New creates the editor and loads the persisted note set. A corrupt slot
// is logged and the editor starts empty.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	clock := opts.Clock
	if clock == nil {
		clock = autosave.RealClock{}
	}

	theme := opts.Theme
	if theme == nil {
		mode, _ := styles.ParseMode(cfg.UI.Theme)
		theme = styles.NewTheme(mode)
	}

	exportOpts := cfg.ExportOptions()
	exportOpts.Now = clock.Now
	if opts.Export != nil {
		copied := *opts.Export
		if copied.Now == nil {
			copied.Now = clock.Now
		}
		exportOpts = &copied
	}

	format := opts.ExportFormat
	if format == "" {
		format = export.FormatPDF
	}

	m := Model{
		theme:        theme,
		store:        opts.Store,
		focus:        notes.FieldCues,
		clock:        clock,
		debouncer:    autosave.NewDebouncer(clock, cfg.DebounceDelay()),
		due:          make(chan struct{}, 1),
		indicatorDur: cfg.IndicatorDuration(),
		feedbackDur:  cfg.SavedFeedbackDuration(),
		saveLog:      logging.NewThrottle(saveLogInterval),
		exportOpts:   exportOpts,
		exportFormat: format,
		spinner:      components.NewSpinner(),
		configCh:     opts.ConfigChanges,
		storageCfg:   cfg.Storage,
		header:       components.NewHeader(theme),
		status:       components.NewStatusBar(theme),
		confirm:      components.NewConfirmDialog(theme),
		notice:       components.NewNotice(theme),
		toasts:       components.NewToastManager(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		preview:      viewport.New(80, 20),
	}
	m.toasts.Now = clock.Now
	m.status.Hints = m.keys.StatusHints()

	for _, f := range notes.Fields {
		m.areas[f] = newArea(f, theme)
	}

	m.load()
	m.areas[m.focus].Focus()
	m.toastTicking = m.toasts.HasToasts()
	return m
}

// newArea builds an unlimited multi-line text area for a field.
func newArea(f notes.Field, theme *styles.Theme) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholders[f]
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	applyAreaStyles(&ta, theme)
	ta.Blur()
	return ta
}

func applyAreaStyles(ta *textarea.Model, theme *styles.Theme) {
	ta.FocusedStyle.CursorLine = theme.CursorLine
	ta.FocusedStyle.Placeholder = theme.Placeholder
	ta.BlurredStyle.Placeholder = theme.Placeholder
}

// load reads the slot into the editor.
func (m *Model) load() {
	set, found, err := m.store.Load()
	var parseErr *storage.StorageParseError
	switch {
	case errors.As(err, &parseErr):
		// Corrupt data is not shown to the user; the next save overwrites it.
		slog.Warn("stored notes unreadable, starting empty", "key", parseErr.Key, "error", parseErr.Err)
		set = notes.NoteSet{}
	case err != nil:
		slog.Error("load notes failed", "error", err)
		m.toasts.AddError(components.DescribeError("Could not load saved notes", err))
		set = notes.NoteSet{}
	case found:
		slog.Info("notes loaded", "key", m.store.Key(), "saved_at", set.SavedAt)
	}

	m.notes = set
	m.tracker = autosave.NewTracker(set.SavedAt)
	for _, f := range notes.Fields {
		m.areas[f].SetValue(set.Get(f))
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Notes returns a copy of the live note set.
func (m Model) Notes() notes.NoteSet {
	return m.notes
}

// Focus returns the focused field.
func (m Model) Focus() notes.Field {
	return m.focus
}

// Dirty reports whether edits are waiting to be persisted.
func (m Model) Dirty() bool {
	return m.dirty
}

// SaveState returns the indicator state.
func (m Model) SaveState() autosave.State {
	return m.tracker.State()
}

// ExportFormat returns the format used by the export key.
func (m Model) ExportFormat() export.Format {
	return m.exportFormat
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and the background listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, listenAutosave(m.due)}
	if cmd := listenConfig(m.configCh); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.toastTicking {
		cmds = append(cmds, components.ToastTickCmd())
	}
	return tea.Batch(cmds...)
}

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}
