// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for cornell.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// .env loading, environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - StorageConfig: Backend, data directory and slot key
//   - AutosaveConfig: Debounce and indicator timings
//   - ExportConfig: Output directory, date layout and page size
//   - Watcher: Reports edits to the config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CORNELL_*), including a .env file
//   - ~/.cornell/config.toml
//   - ~/.cornell/config.json
//   - Built-in defaults
//
// The directory can be moved with CORNELL_HOME.
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	delay := cfg.DebounceDelay()
//	dir, _ := cfg.DataDir()
package config
