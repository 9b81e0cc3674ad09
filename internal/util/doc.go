// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across cornell packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// Display Width:
//   - TruncateWidth: cut a string to a terminal column budget
//   - FirstLine: first non-empty line of a text, trimmed
//
// # Usage
//
//	// Write a note blob without ever leaving a half-written file
//	err := util.AtomicWriteFile(path, data, 0600)
//
//	// Fit a preview into a status line
//	line := util.TruncateWidth(util.FirstLine(notes), 40)
package util
