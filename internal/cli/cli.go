// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/logging"
	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/storage"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// app carries the flags and collaborators shared by every command of one
// invocation.
type app struct {
	// Persistent flags
	cfgPath string
	verbose bool

	cfg     *config.Config
	logger  *logging.Logger
	loadErr error

	// Terminal and clock hooks. Tests replace them.
	stdinIsTerminal  func() bool
	stdoutIsTerminal func() bool
	prompt           func(question string) (bool, error)
	now              func() time.Time
	runProgram       func(m tea.Model) error
}

func newApp() *app {
	return &app{
		stdinIsTerminal:  IsTTY,
		stdoutIsTerminal: IsStdoutTTY,
		prompt:           PromptYesNo,
		now:              time.Now,
		runProgram:       runProgram,
	}
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// Execute runs the command line and exits with a status derived from the
// returned error. Called by main.main().
func Execute() {
	a := newApp()
	err := newRootCommand(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		os.Exit(GetExitCode(err))
	}
}

// NewRootCommand builds the cornell command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newApp())
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cornell",
		Short: "Cornell notes in the terminal",
		Long: `cornell is a note-taking tool built around the Cornell method.

Run without a subcommand to open the editor: a cue column, a main notes
column and a summary strip. Notes are saved automatically a short moment
after you stop typing, and can be exported as PDF, text, Markdown or JSON.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The editor owns the terminal, so it logs to a file.
			return a.setup(cmd, cmd == cmd.Root())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "config file (default ~/.cornell/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newExportCommand(a),
		newShowCommand(a),
		newClearCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)
	return root
}

// =============================================================================
// SETUP
// =============================================================================

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, toFile bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	opts := logging.Options{Level: level, Writer: cmd.ErrOrStderr()}
	if toFile {
		if opts.File, err = cfg.LogFile(); err != nil {
			return err
		}
	}

	logger, err := logging.Setup(opts)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	a.logger = logger

	if a.loadErr != nil {
		slog.Warn("config file ignored, using defaults", "error", a.loadErr)
	}
	slog.Debug("configuration loaded", "path", a.cfgPath, "backend", cfg.Storage.Backend)
	return nil
}

// loadConfig reads --config when given, the default locations otherwise.
// A --config path that does not exist yet yields the defaults so that
// "config init" can create it.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgPath == "" {
		cfg, err := config.Load()
		if cfg == nil {
			return nil, err
		}
		a.loadErr = err
		return cfg, nil
	}

	if _, err := os.Stat(a.cfgPath); errors.Is(err, fs.ErrNotExist) {
		cfg := config.Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return config.LoadFromPath(a.cfgPath)
}

// configPath is the file "config" subcommands read and write.
func (a *app) configPath() (string, error) {
	if a.cfgPath != "" {
		return a.cfgPath, nil
	}
	return config.ConfigPathTOML()
}

func (a *app) close() {
	if err := a.logger.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close log file:", err)
	}
}

// =============================================================================
// STORAGE HELPERS
// =============================================================================

// withStore opens the configured note slot for the duration of fn.
func (a *app) withStore(fn func(store *storage.NoteStore) error) error {
	scfg, err := a.cfg.StorageConfig()
	if err != nil {
		return &StorageError{Op: "locate data directory", Err: err}
	}
	kv, err := storage.Open(scfg)
	if err != nil {
		return &StorageError{Op: "open storage", Err: err}
	}

	store := storage.NewNoteStore(kv, a.cfg.Storage.Key)
	store.Now = a.now
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("close storage failed", "error", err)
		}
	}()

	return fn(store)
}

// loadNotes reads the slot. A corrupt slot reads as empty, as in the editor.
func loadNotes(store *storage.NoteStore) (notes.NoteSet, error) {
	set, found, err := store.Load()

	var parseErr *storage.StorageParseError
	switch {
	case errors.As(err, &parseErr):
		slog.Warn("stored notes unreadable, treating as empty", "key", parseErr.Key, "error", parseErr.Err)
		return notes.NoteSet{}, nil
	case err != nil:
		return notes.NoteSet{}, &StorageError{Op: "load notes", Err: err}
	case !found:
		slog.Debug("no saved notes", "key", store.Key())
	}
	return set, nil
}
