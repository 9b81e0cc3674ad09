// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for cornell.
//
// Configuration file locations (in order of precedence):
//   - ~/.cornell/config.toml
//   - ~/.cornell/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/cornell-tui/internal/export"
	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete cornell configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Autosave configuration
	Autosave AutosaveConfig `toml:"autosave" json:"autosave"`

	// Export configuration
	Export ExportConfig `toml:"export" json:"export"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Logging configuration
	Log LogConfig `toml:"log" json:"log"`
}

// StorageConfig selects where notes are persisted.
type StorageConfig struct {
	// Backend is "file", "sqlite", "badger" or "memory"
	Backend string `toml:"backend" json:"backend"`
	// Dir is the data directory. Empty means ~/.cornell/data
	Dir string `toml:"dir" json:"dir"`
	// Key is the slot the notes are stored under
	Key string `toml:"key" json:"key"`
}

// AutosaveConfig contains the save timing settings.
type AutosaveConfig struct {
	// DebounceMs is the quiet period after the last edit before saving
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
	// IndicatorMs is how long the "saving" badge stays on
	IndicatorMs int `toml:"indicator_ms" json:"indicator_ms"`
	// SavedFeedbackMs is how long "Saved!" shows after an explicit save
	SavedFeedbackMs int `toml:"saved_feedback_ms" json:"saved_feedback_ms"`
}

// ExportConfig contains export settings.
type ExportConfig struct {
	// OutputDir is where exported files are written
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// OpenAfterExport opens the file in the default application
	OpenAfterExport bool `toml:"open_after_export" json:"open_after_export"`
	// DateFormat is the Go time layout for the date line
	DateFormat string `toml:"date_format" json:"date_format"`
	// PageSize is "A4", "Letter", "Legal" or "A5"
	PageSize string `toml:"page_size" json:"page_size"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level" json:"level"`
	// File is the TUI log file. Empty means ~/.cornell/cornell.log
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Storage: StorageConfig{
			Backend: storage.BackendFile,
			Key:     storage.DefaultKey,
		},

		Autosave: AutosaveConfig{
			DebounceMs:      2000,
			IndicatorMs:     1000,
			SavedFeedbackMs: 1500,
		},

		Export: ExportConfig{
			OutputDir:       ".",
			OpenAfterExport: false,
			DateFormat:      export.DefaultDateFormat,
			PageSize:        export.DefaultPageSize,
		},

		UI: UIConfig{
			Theme: "auto",
		},

		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// HomeEnv overrides the configuration directory.
const HomeEnv = "CORNELL_HOME"

// ConfigDir returns the cornell configuration directory path.
func ConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".cornell"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides (including a .env file in the working directory)
// are applied last.
func Load() (*Config, error) {
	// A missing .env is normal
	_ = godotenv.Load()

	cfg := Default()
	var loadErr error

	// Try TOML first
	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
				cfg = Default()
			} else {
				return finish(cfg)
			}
		}
	}

	// Try JSON as fallback
	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
				cfg = Default()
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err := finish(cfg)
	if err != nil {
		return nil, err
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// finish applies environment overrides and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := fillDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	// Determine file type and load accordingly
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	// General
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Storage
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = defaults.Storage.Key
	}

	// Autosave
	if cfg.Autosave.DebounceMs == 0 {
		cfg.Autosave.DebounceMs = defaults.Autosave.DebounceMs
	}
	if cfg.Autosave.IndicatorMs == 0 {
		cfg.Autosave.IndicatorMs = defaults.Autosave.IndicatorMs
	}
	if cfg.Autosave.SavedFeedbackMs == 0 {
		cfg.Autosave.SavedFeedbackMs = defaults.Autosave.SavedFeedbackMs
	}

	// Export
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = defaults.Export.OutputDir
	}
	if cfg.Export.DateFormat == "" {
		cfg.Export.DateFormat = defaults.Export.DateFormat
	}
	if cfg.Export.PageSize == "" {
		cfg.Export.PageSize = defaults.Export.PageSize
	}

	// UI
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder

	// Write header comment
	sb.WriteString("# cornell configuration file\n")
	sb.WriteString("# Generated by cornell - edit with care\n")
	sb.WriteString("#\n")
	sb.WriteString("# Changes are picked up by a running cornell session.\n\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Storage Settings Validation
	// ==========================================================================

	if !storage.IsBackend(c.Storage.Backend) {
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: %s", c.Storage.Backend, strings.Join(storage.Backends, ", ")),
		})
	}

	// SECURITY: The key becomes a file name for the file backend
	if c.Storage.Key == "" || strings.ContainsAny(c.Storage.Key, `/\`) || c.Storage.Key == "." || c.Storage.Key == ".." {
		errs = append(errs, ValidationError{
			Field:   "storage.key",
			Message: fmt.Sprintf("invalid key '%s', must be a plain name", c.Storage.Key),
		})
	}

	// ==========================================================================
	// Autosave Settings Validation
	// ==========================================================================

	if c.Autosave.DebounceMs < 100 || c.Autosave.DebounceMs > 60000 {
		errs = append(errs, ValidationError{
			Field:   "autosave.debounce_ms",
			Message: fmt.Sprintf("debounce_ms must be 100-60000, got %d", c.Autosave.DebounceMs),
		})
	}
	if c.Autosave.IndicatorMs < 0 || c.Autosave.IndicatorMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "autosave.indicator_ms",
			Message: fmt.Sprintf("indicator_ms must be 0-10000, got %d", c.Autosave.IndicatorMs),
		})
	}
	if c.Autosave.SavedFeedbackMs < 0 || c.Autosave.SavedFeedbackMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "autosave.saved_feedback_ms",
			Message: fmt.Sprintf("saved_feedback_ms must be 0-10000, got %d", c.Autosave.SavedFeedbackMs),
		})
	}

	// ==========================================================================
	// Export Settings Validation
	// ==========================================================================

	if _, ok := export.NormalizePageSize(c.Export.PageSize); !ok {
		errs = append(errs, ValidationError{
			Field:   "export.page_size",
			Message: fmt.Sprintf("invalid page size '%s', must be one of: %s", c.Export.PageSize, strings.Join(export.PageSizes, ", ")),
		})
	}

	// A layout without any reference-time element formats to itself
	if c.Export.DateFormat != "" {
		probe := time.Date(1999, 12, 31, 23, 58, 57, 0, time.UTC)
		if probe.Format(c.Export.DateFormat) == c.Export.DateFormat {
			errs = append(errs, ValidationError{
				Field:   "export.date_format",
				Message: fmt.Sprintf("date_format '%s' is not a Go time layout", c.Export.DateFormat),
			})
		}
	}

	// ==========================================================================
	// UI and Log Settings Validation
	// ==========================================================================

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: err.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// DebounceDelay returns the autosave quiet period.
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.Autosave.DebounceMs) * time.Millisecond
}

// IndicatorDuration returns how long the saving badge is shown.
func (c *Config) IndicatorDuration() time.Duration {
	return time.Duration(c.Autosave.IndicatorMs) * time.Millisecond
}

// SavedFeedbackDuration returns how long "Saved!" is shown.
func (c *Config) SavedFeedbackDuration() time.Duration {
	return time.Duration(c.Autosave.SavedFeedbackMs) * time.Millisecond
}

// DataDir returns the storage directory, defaulting to <config dir>/data.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// LogFile returns the TUI log path, defaulting to <config dir>/cornell.log.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cornell.log"), nil
}

// StorageConfig returns the settings storage.Open needs.
func (c *Config) StorageConfig() (storage.Config, error) {
	dir, err := c.DataDir()
	if err != nil {
		return storage.Config{}, err
	}
	return storage.Config{Backend: c.Storage.Backend, Dir: dir}, nil
}

// ExportOptions converts the export section into export.Options.
func (c *Config) ExportOptions() *export.Options {
	opts := export.DefaultOptions()
	opts.OutputDir = c.Export.OutputDir
	opts.OpenAfterExport = c.Export.OpenAfterExport
	opts.DateFormat = c.Export.DateFormat
	if size, ok := export.NormalizePageSize(c.Export.PageSize); ok {
		opts.PageSize = size
	}
	return opts
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid level '%s', must be one of: debug, info, warn, error", s)
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - CORNELL_STORAGE_BACKEND: overrides storage.backend
//   - CORNELL_DATA_DIR: overrides storage.dir
//   - CORNELL_EXPORT_DIR: overrides export.output_dir
//   - CORNELL_DEBOUNCE_MS: overrides autosave.debounce_ms
//   - CORNELL_THEME: overrides ui.theme
//   - CORNELL_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if backend := os.Getenv("CORNELL_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if dir := os.Getenv("CORNELL_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}

	if dir := os.Getenv("CORNELL_EXPORT_DIR"); dir != "" {
		c.Export.OutputDir = dir
	}

	// Unparsable values are ignored
	if ms := os.Getenv("CORNELL_DEBOUNCE_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			c.Autosave.DebounceMs = v
		}
	}

	if theme := os.Getenv("CORNELL_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if level := os.Getenv("CORNELL_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "autosave.debounce_ms").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks the dotted path to a leaf field.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(strVal == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if isNumeric(val.Kind()) && isNumeric(field.Kind()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"storage.backend",
		"storage.dir",
		"storage.key",
		"autosave.debounce_ms",
		"autosave.indicator_ms",
		"autosave.saved_feedback_ms",
		"export.output_dir",
		"export.open_after_export",
		"export.date_format",
		"export.page_size",
		"ui.theme",
		"log.level",
		"log.file",
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// String returns a TOML representation of the config for display.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return sb.String()
}
