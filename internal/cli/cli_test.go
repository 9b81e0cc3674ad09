// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/export"
	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/ui/editor"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type testEnv struct {
	t       *testing.T
	dir     string
	cfgPath string
	dataDir string
	outDir  string
	logFile string
	now     time.Time

	stdinTTY bool
	answer   bool
	prompted []string
	ran      tea.Model
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	e := &testEnv{
		t:       t,
		dir:     dir,
		cfgPath: filepath.Join(dir, "config.toml"),
		dataDir: filepath.Join(dir, "data"),
		outDir:  filepath.Join(dir, "out"),
		logFile: filepath.Join(dir, "cornell.log"),
		now:     time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}

	cfg := config.Default()
	cfg.Storage.Dir = e.dataDir
	cfg.Export.OutputDir = e.outDir
	cfg.Log.File = e.logFile
	require.NoError(t, config.SaveTOML(cfg, e.cfgPath))
	return e
}

func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	a := newApp()
	a.stdinIsTerminal = func() bool { return e.stdinTTY }
	a.stdoutIsTerminal = func() bool { return false }
	a.prompt = func(q string) (bool, error) {
		e.prompted = append(e.prompted, q)
		return e.answer, nil
	}
	a.now = func() time.Time { return e.now }
	a.runProgram = func(m tea.Model) error {
		e.ran = m
		return nil
	}

	cmd := newRootCommand(a)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.cfgPath}, args...))

	err := cmd.Execute()
	a.close()
	return stdout.String(), err
}

func (e *testEnv) openStore() *storage.NoteStore {
	e.t.Helper()
	kv, err := storage.Open(storage.Config{Backend: storage.BackendFile, Dir: e.dataDir})
	require.NoError(e.t, err)
	store := storage.NewNoteStore(kv, storage.DefaultKey)
	e.t.Cleanup(func() { store.Close() })
	return store
}

func (e *testEnv) seed(cues, body, summary string) {
	e.t.Helper()
	_, err := e.openStore().Save(notes.NewSnapshot(cues, body, summary, e.now))
	require.NoError(e.t, err)
}

func (e *testEnv) stored() notes.NoteSet {
	e.t.Helper()
	set, found, err := e.openStore().Load()
	require.NoError(e.t, err)
	require.True(e.t, found)
	return set
}

// =============================================================================
// ROOT AND VERSION
// =============================================================================

func TestRoot_RunsEditor(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")

	_, err := e.run()
	require.NoError(t, err)

	m, ok := e.ran.(editor.Model)
	require.True(t, ok, "got %T", e.ran)
	assert.Equal(t, "body", m.Notes().Notes)

	_, err = os.Stat(e.logFile)
	assert.NoError(t, err, "the editor logs to a file")
}

func TestRoot_RejectsArguments(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.run("stray")
	require.Error(t, err)
	assert.Nil(t, e.ran)
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.run("export", "--nope")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestVersionCommand(t *testing.T) {
	e := newTestEnv(t)
	out, err := e.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "cornell "+Version)
	assert.Contains(t, out, "Commit:")
}

// =============================================================================
// EXPORT
// =============================================================================

func TestExport_TextWritesFile(t *testing.T) {
	e := newTestEnv(t)
	e.seed("photosynthesis", "light reactions", "plants make sugar")

	out, err := e.run("export", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to")

	data, err := os.ReadFile(filepath.Join(e.outDir, export.Filename(e.now, ".txt")))
	require.NoError(t, err)
	assert.Contains(t, string(data), "NOTES:")
	assert.Contains(t, string(data), "light reactions")
}

func TestExport_PDF(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")

	out, err := e.run("export")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to")

	info, err := os.Stat(filepath.Join(e.outDir, export.Filename(e.now, ".pdf")))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExport_OutputFlagOverridesConfig(t *testing.T) {
	e := newTestEnv(t)
	other := filepath.Join(e.dir, "elsewhere")

	_, err := e.run("export", "--format", "md", "--output", other)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(other, export.Filename(e.now, ".md")))
	assert.NoError(t, err)
}

func TestExport_Stdout(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "the body", "")

	out, err := e.run("export", "--format", "markdown", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "## Main Notes")
	assert.Contains(t, out, "the body")

	entries, _ := os.ReadDir(e.outDir)
	assert.Empty(t, entries, "nothing is written to disk")
}

func TestExport_StdoutRejectsPDF(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.run("export", "--stdout")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestExport_UnknownFormat(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.run("export", "--format", "docx")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

// =============================================================================
// SHOW
// =============================================================================

func TestShow_Raw(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")

	out, err := e.run("show", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"cues":"cue"`), out)
}

func TestShow_RawWithoutNotes(t *testing.T) {
	e := newTestEnv(t)
	out, err := e.run("show", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "No saved notes.\n", out)
}

func TestShow_Plain(t *testing.T) {
	e := newTestEnv(t)
	e.seed("mitochondria", "powerhouse", "")

	out, err := e.run("show", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "# Cornell Notes")
	assert.Contains(t, out, "mitochondria")
	assert.False(t, strings.HasPrefix(out, "---"), "no frontmatter")
	assert.Contains(t, out, "Last saved")
}

func TestShow_Rendered(t *testing.T) {
	e := newTestEnv(t)
	e.seed("mitochondria", "powerhouse", "")

	out, err := e.run("show", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Main Notes")
	assert.Contains(t, out, "powerhouse")
}

func TestShow_CorruptSlotReadsEmpty(t *testing.T) {
	e := newTestEnv(t)
	kv, err := storage.NewFileKV(e.dataDir)
	require.NoError(t, err)
	require.NoError(t, kv.Set(storage.DefaultKey, []byte("garbage")))
	require.NoError(t, kv.Close())

	out, err := e.run("show", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "# Cornell Notes")
	assert.NotContains(t, out, "Last saved")
}

// =============================================================================
// CLEAR
// =============================================================================

func TestClear_RequiresYesWithoutTerminal(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")

	_, err := e.run("clear")
	require.Error(t, err)

	var confirmErr *ConfirmationRequiredError
	assert.True(t, errors.As(err, &confirmErr))
	assert.Equal(t, ExitUsageError, GetExitCode(err))
	assert.Equal(t, "body", e.stored().Notes)
}

func TestClear_Yes(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")
	e.now = e.now.Add(time.Hour)

	out, err := e.run("clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Notes cleared")

	set := e.stored()
	assert.True(t, set.IsEmpty())
	assert.True(t, set.SavedAt.Equal(e.now))
}

func TestClear_PromptDeclined(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")
	e.stdinTTY = true

	out, err := e.run("clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Len(t, e.prompted, 1)
	assert.Equal(t, "cue", e.stored().Cues)
}

func TestClear_PromptAccepted(t *testing.T) {
	e := newTestEnv(t)
	e.seed("cue", "body", "sum")
	e.stdinTTY = true
	e.answer = true

	_, err := e.run("clear")
	require.NoError(t, err)
	assert.True(t, e.stored().IsEmpty())
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfig_Get(t *testing.T) {
	e := newTestEnv(t)
	out, err := e.run("config", "get", "autosave.debounce_ms")
	require.NoError(t, err)
	assert.Equal(t, "2000\n", out)
}

func TestConfig_GetUnknownKey(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.run("config", "get", "nope.nothing")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestConfig_SetPersists(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.run("config", "set", "ui.theme", "light")
	require.NoError(t, err)

	out, err := e.run("config", "get", "ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	data, err := os.ReadFile(e.cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `theme = "light"`)
}

func TestConfig_SetRejectsInvalidValue(t *testing.T) {
	e := newTestEnv(t)
	before, err := os.ReadFile(e.cfgPath)
	require.NoError(t, err)

	_, err = e.run("config", "set", "autosave.debounce_ms", "5")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, GetExitCode(err))

	after, err := os.ReadFile(e.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConfig_InitAndPath(t *testing.T) {
	e := newTestEnv(t)
	e.cfgPath = filepath.Join(e.dir, "fresh", "cornell.toml")

	out, err := e.run("config", "path")
	require.NoError(t, err)
	assert.Equal(t, e.cfgPath+"\n", out)

	_, err = e.run("config", "init")
	require.NoError(t, err)
	_, err = os.Stat(e.cfgPath)
	require.NoError(t, err)

	_, err = e.run("config", "init")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))

	_, err = e.run("config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfig_Show(t *testing.T) {
	e := newTestEnv(t)
	out, err := e.run("config")
	require.NoError(t, err)
	assert.Contains(t, out, e.cfgPath)
	assert.Contains(t, out, "[autosave]")
	assert.Contains(t, out, "debounce_ms = 2000")
}

func TestConfig_Keys(t *testing.T) {
	e := newTestEnv(t)
	out, err := e.run("config", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "storage.backend\n")
	assert.Contains(t, out, "export.page_size")
}

// =============================================================================
// HELPERS
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", &UsageError{Err: errors.New("bad flag")}, ExitUsageError},
		{"confirmation", &ConfirmationRequiredError{Action: "clear", Flag: "--yes"}, ExitUsageError},
		{"config", fmt.Errorf("invalid config: %w", config.ValidateErrors{{Field: "ui.theme", Message: "bad"}}), ExitConfigError},
		{"storage", &StorageError{Op: "open storage", Err: errors.New("locked")}, ExitStorageError},
		{"closed", fmt.Errorf("save: %w", storage.ErrClosed), ExitStorageError},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", " YES \n"} {
		assert.True(t, isYes(s), s)
	}
	for _, s := range []string{"", "n", "no", "yeah", "1"} {
		assert.False(t, isYes(s), s)
	}
}
