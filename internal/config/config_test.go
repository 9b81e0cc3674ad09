// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	for _, env := range []string{
		"CORNELL_STORAGE_BACKEND", "CORNELL_DATA_DIR", "CORNELL_EXPORT_DIR",
		"CORNELL_DEBOUNCE_MS", "CORNELL_THEME", "CORNELL_LOG_LEVEL",
	} {
		t.Setenv(env, "")
	}
	// Keep a stray .env in the package directory out of the picture
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %q, want file", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != "cornell-notes" {
		t.Errorf("Storage.Key = %q, want cornell-notes", cfg.Storage.Key)
	}
	if cfg.DebounceDelay() != 2*time.Second {
		t.Errorf("DebounceDelay() = %v, want 2s", cfg.DebounceDelay())
	}
	if cfg.IndicatorDuration() != time.Second {
		t.Errorf("IndicatorDuration() = %v, want 1s", cfg.IndicatorDuration())
	}
	if cfg.SavedFeedbackDuration() != 1500*time.Millisecond {
		t.Errorf("SavedFeedbackDuration() = %v, want 1.5s", cfg.SavedFeedbackDuration())
	}
	if cfg.Export.PageSize != "A4" {
		t.Errorf("Export.PageSize = %q, want A4", cfg.Export.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, "", false},
		{"sqlite backend", func(c *Config) { c.Storage.Backend = "sqlite" }, "", false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend", true},
		{"path key", func(c *Config) { c.Storage.Key = "../notes" }, "storage.key", true},
		{"debounce too short", func(c *Config) { c.Autosave.DebounceMs = 10 }, "autosave.debounce_ms", true},
		{"negative indicator", func(c *Config) { c.Autosave.IndicatorMs = -1 }, "autosave.indicator_ms", true},
		{"letter pages", func(c *Config) { c.Export.PageSize = "letter" }, "", false},
		{"bad page size", func(c *Config) { c.Export.PageSize = "B9" }, "export.page_size", true},
		{"literal date format", func(c *Config) { c.Export.DateFormat = "today" }, "export.date_format", true},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme", true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Storage, cfg.Storage)
}

func TestLoad_TOMLWithPartialSettings(t *testing.T) {
	dir := isolate(t)
	content := `
[storage]
backend = "sqlite"

[autosave]
debounce_ms = 500

[ui]
theme = "light"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "cornell-notes", cfg.Storage.Key, "missing values are filled from defaults")
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDelay())
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 1000, cfg.Autosave.IndicatorMs)
}

func TestLoad_JSONFallback(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"export":{"page_size":"Letter"}}`), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Letter", cfg.Export.PageSize)
}

func TestLoad_BrokenTOMLFallsBackToDefaults(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage\nbackend="), 0644))

	cfg, err := Load()
	require.Error(t, err, "the load error is reported")
	require.NotNil(t, cfg, "defaults are still returned")
	assert.Equal(t, "file", cfg.Storage.Backend)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0644))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CORNELL_STORAGE_BACKEND", "badger")
	t.Setenv("CORNELL_DATA_DIR", "/tmp/notes")
	t.Setenv("CORNELL_EXPORT_DIR", "/tmp/out")
	t.Setenv("CORNELL_DEBOUNCE_MS", "750")
	t.Setenv("CORNELL_THEME", "dark")
	t.Setenv("CORNELL_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/notes", cfg.Storage.Dir)
	assert.Equal(t, "/tmp/out", cfg.Export.OutputDir)
	assert.Equal(t, 750, cfg.Autosave.DebounceMs)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)

	t.Setenv("CORNELL_DEBOUNCE_MS", "soon")
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 750, cfg.Autosave.DebounceMs, "unparsable value is ignored")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CORNELL_THEME=light\n"), 0644))
	// godotenv never overrides variables that are already set
	os.Unsetenv("CORNELL_THEME")
	t.Cleanup(func() { os.Unsetenv("CORNELL_THEME") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Storage.Backend = "sqlite"
	cfg.Export.OpenAfterExport = true
	require.NoError(t, SaveTOML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# cornell configuration file")

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.UI.Theme = "dark"
	require.NoError(t, SaveJSON(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Paths(t *testing.T) {
	dir := isolate(t)
	cfg := Default()

	data, err := cfg.DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), data)

	logFile, err := cfg.LogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cornell.log"), logFile)

	cfg.Storage.Dir = "/srv/notes"
	sc, err := cfg.StorageConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes", sc.Dir)
	assert.Equal(t, "file", sc.Backend)
}

func TestConfig_ExportOptions(t *testing.T) {
	cfg := Default()
	cfg.Export.OutputDir = "out"
	cfg.Export.PageSize = "legal"
	cfg.Export.OpenAfterExport = true

	opts := cfg.ExportOptions()
	assert.Equal(t, "out", opts.OutputDir)
	assert.Equal(t, "Legal", opts.PageSize)
	assert.True(t, opts.OpenAfterExport)
	assert.NotNil(t, opts.NewRenderer)
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("autosave.debounce_ms")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != 2000 {
		t.Errorf("Get('autosave.debounce_ms') = %v, want 2000", val)
	}

	if err := cfg.Set("ui.theme", "light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme after Set = %q, want light", cfg.UI.Theme)
	}

	if err := cfg.Set("autosave.indicator_ms", "250"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Autosave.IndicatorMs != 250 {
		t.Errorf("IndicatorMs = %d, want 250", cfg.Autosave.IndicatorMs)
	}

	if err := cfg.Set("export.open_after_export", "yes"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !cfg.Export.OpenAfterExport {
		t.Error("OpenAfterExport should be true")
	}

	if _, err := cfg.Get("invalid.key"); err == nil {
		t.Error("Get() with invalid key should return error")
	}
	if _, err := cfg.Get("storage"); err == nil {
		t.Error("Get() of a section should return error")
	}
	if err := cfg.Set("autosave.debounce_ms", "soon"); err == nil {
		t.Error("Set() with a non-integer should return error")
	}
}

func TestGetAllKeys_Resolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"debug", "INFO", "warn", "warning", "error", ""} {
		if _, err := ParseLevel(in); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", in, err)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("ParseLevel(trace) should fail")
	}
}
