// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"runtime"
	"strings"
	"sync"
)

// =============================================================================
// ERROR CATEGORIES
// =============================================================================

// ErrorCategory represents the type of error for better organization and display.
type ErrorCategory string

const (
	// CategoryPermission represents file permission errors
	CategoryPermission ErrorCategory = "Permission"
	// CategoryResource represents resource exhaustion errors (disk, quota)
	CategoryResource ErrorCategory = "Resource"
	// CategoryStorage represents a locked or closed note store
	CategoryStorage ErrorCategory = "Storage"
	// CategoryPath represents missing files and directories
	CategoryPath ErrorCategory = "Path"
	// CategoryUnknown represents unclassified errors
	CategoryUnknown ErrorCategory = "Error"
)

// =============================================================================
// ERROR PATTERN MATCHER
// =============================================================================

// ErrorPattern maps error text to a suggestion the user can act on.
type ErrorPattern struct {
	// Keywords to match in the error message (case-insensitive, any match triggers)
	Keywords []string

	// Category classifies the error type
	Category ErrorCategory

	// Suggestion is appended to the error shown to the user
	Suggestion string
}

// ErrorPatternMatcher analyzes error strings and provides suggestions.
type ErrorPatternMatcher struct {
	mu       sync.RWMutex
	patterns []ErrorPattern
}

var (
	defaultMatcher     *ErrorPatternMatcher
	defaultMatcherOnce sync.Once
)

// GetDefaultMatcher returns the shared matcher. Thread-safe.
func GetDefaultMatcher() *ErrorPatternMatcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = NewErrorPatternMatcher()
	})
	return defaultMatcher
}

// NewErrorPatternMatcher creates a matcher with the default patterns.
func NewErrorPatternMatcher() *ErrorPatternMatcher {
	m := &ErrorPatternMatcher{}
	m.registerDefaultPatterns()
	return m
}

// registerDefaultPatterns registers patterns from most to least specific.
// The first match wins.
func (m *ErrorPatternMatcher) registerDefaultPatterns() {
	m.AddPattern(ErrorPattern{
		Keywords:   []string{"no space left", "disk full", "quota exceeded", "file too large"},
		Category:   CategoryResource,
		Suggestion: "Free some disk space and save again (ctrl+s).",
	})

	m.AddPattern(ErrorPattern{
		Keywords:   []string{"permission denied", "access is denied", "operation not permitted", "read-only file system"},
		Category:   CategoryPermission,
		Suggestion: permissionSuggestion(),
	})

	m.AddPattern(ErrorPattern{
		Keywords:   []string{"database is locked", "cannot acquire directory lock", "resource temporarily unavailable"},
		Category:   CategoryStorage,
		Suggestion: "Another cornell process may be using the notes. Close it and save again.",
	})

	m.AddPattern(ErrorPattern{
		Keywords:   []string{"storage closed"},
		Category:   CategoryStorage,
		Suggestion: "Restart cornell to reopen the note store.",
	})

	m.AddPattern(ErrorPattern{
		Keywords:   []string{"no such file or directory", "cannot find the path"},
		Category:   CategoryPath,
		Suggestion: "Check the configured directory: cornell config get export.output_dir",
	})
}

// AddPattern adds a pattern after the existing ones. Thread-safe.
func (m *ErrorPatternMatcher) AddPattern(pattern ErrorPattern) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, pattern)
}

// Match returns the first pattern matching errMsg, or nil. Thread-safe.
func (m *ErrorPatternMatcher) Match(errMsg string) *ErrorPattern {
	if errMsg == "" {
		return nil
	}
	errLower := strings.ToLower(errMsg)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.patterns {
		if matchesPattern(errLower, m.patterns[i]) {
			p := m.patterns[i]
			return &p
		}
	}
	return nil
}

func matchesPattern(errLower string, pattern ErrorPattern) bool {
	for _, keyword := range pattern.Keywords {
		if strings.Contains(errLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// permissionSuggestion returns a permission hint for the current OS.
func permissionSuggestion() string {
	switch runtime.GOOS {
	case "windows":
		return "Check the folder permissions in Properties > Security."
	default:
		return "Check that the directory is writable: ls -ld <dir>"
	}
}

// =============================================================================
// USER-FACING MESSAGES
// =============================================================================

// DescribeError formats "prefix: err" and appends a suggestion when the
// error text matches a known pattern.
func DescribeError(prefix string, err error) string {
	if err == nil {
		return prefix
	}
	msg := prefix + ": " + err.Error()
	if p := GetDefaultMatcher().Match(err.Error()); p != nil {
		msg += ". " + p.Suggestion
	}
	return msg
}
