// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cornell-tui/internal/export"
	"github.com/jeranaias/cornell-tui/internal/ui/components"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

// =============================================================================
// EXPORT
// =============================================================================

// startExport renders a snapshot off the event loop. A running export is
// never cancelled; a second request while it runs is refused.
func (m *Model) startExport() tea.Cmd {
	if m.exporting {
		return m.addToast(components.ToastKindWarning, "An export is already running")
	}
	m.exporting = true

	snap := m.notes.Snapshot(m.clock.Now())
	format := m.exportFormat
	opts := m.exportOpts

	m.spinner.SetMessage("Exporting " + string(format))
	run := func() tea.Msg {
		res, err := export.Export(snap, format, opts)
		return exportDoneMsg{Result: res, Err: err}
	}
	return tea.Batch(run, m.spinner.Start())
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	m.exporting = false
	m.spinner.Stop()

	switch {
	case msg.Err != nil:
		slog.Error("export failed", "format", m.exportFormat, "error", msg.Err)
		cmd := m.addToast(components.ToastKindError, components.DescribeError("Export failed", msg.Err))
		return m, cmd

	case msg.Result.FellBack:
		m.showHelp = false
		m.showPreview = false
		m.notice.Show("PDF export unavailable", msg.Result.Notice(), "")
		return m, nil
	}

	slog.Info("notes exported", "format", msg.Result.Format, "path", msg.Result.Path)
	cmd := m.addToast(components.ToastKindSuccess, msg.Result.Notice())
	return m, cmd
}

// cycleExportFormat moves the export key to the next format.
func (m *Model) cycleExportFormat() tea.Cmd {
	next := export.Formats[0]
	for i, f := range export.Formats {
		if f == m.exportFormat {
			next = export.Formats[(i+1)%len(export.Formats)]
			break
		}
	}
	m.exportFormat = next
	return m.addToast(components.ToastKindStatus, "Export format: "+string(next))
}

// =============================================================================
// LIVE CONFIG
// =============================================================================

func (m Model) handleConfigChanged(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{listenConfig(m.configCh)}
	cfg := msg.Config
	if cfg == nil {
		return m, tea.Batch(cmds...)
	}

	m.debouncer.SetDelay(cfg.DebounceDelay())
	m.indicatorDur = cfg.IndicatorDuration()
	m.feedbackDur = cfg.SavedFeedbackDuration()

	opts := cfg.ExportOptions()
	opts.Now = m.exportOpts.Now
	opts.NewRenderer = m.exportOpts.NewRenderer
	m.exportOpts = opts

	if mode, _ := styles.ParseMode(cfg.UI.Theme); mode != m.theme.Mode {
		width, height := m.theme.Width, m.theme.Height
		*m.theme = *styles.NewTheme(mode)
		m.theme.SetSize(width, height)
		for i := range m.areas {
			applyAreaStyles(&m.areas[i], m.theme)
		}
	}

	slog.Info("configuration reloaded",
		"debounce", cfg.DebounceDelay(),
		"theme", cfg.UI.Theme,
		"output_dir", cfg.Export.OutputDir)

	message := "Configuration reloaded"
	kind := components.ToastKindStatus
	if cfg.Storage != m.storageCfg {
		message = "Configuration reloaded. Storage changes apply after restart"
		kind = components.ToastKindWarning
	}
	cmds = append(cmds, m.addToast(kind, message))
	return m, tea.Batch(cmds...)
}

// =============================================================================
// LOGGING
// =============================================================================

func logSaved(key string, at time.Time, manual bool) {
	slog.Info("notes saved", "key", key, "saved_at", at, "manual", manual)
}

func logSaveFailed(err error, manual bool) {
	slog.Error("save notes failed", "error", err, "manual", manual)
}
