// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the cornell command line.
//
// The root command opens the editor. Subcommands work on the saved note
// slot without the UI, so notes can be exported or printed from scripts.
//
// # Commands
//
//   - cornell: open the editor
//   - cornell export [--format pdf|text|markdown|json] [--output dir] [--stdout]
//   - cornell show [--raw] [--plain] [--width n]
//   - cornell clear [--yes]
//   - cornell config [show|path|init|get|set|keys]
//   - cornell version
//
// Every command accepts --config to select a config file and --verbose
// for debug logging. The editor logs to ~/.cornell/cornell.log; the
// subcommands log to stderr.
//
// # Exit Codes
//
// GetExitCode maps errors to exit codes: 2 for usage errors, 3 for
// invalid configuration, 4 for storage failures and 1 otherwise.
//
// # Usage
//
//	func main() {
//	    cli.Execute()
//	}
package cli
