// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/storage"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitStorageError indicates the note slot could not be read or written
	ExitStorageError = 4
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError wraps invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ConfirmationRequiredError is returned when a destructive command cannot
// prompt and was not given its confirmation flag.
type ConfirmationRequiredError struct {
	Action string
	Flag   string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("stdin is not a terminal; cannot confirm %q interactively (use %s)", e.Action, e.Flag)
}

// StorageError reports a failed storage step.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode determines the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usageErr   *UsageError
		confirmErr *ConfirmationRequiredError
		storageErr *StorageError
		parseErr   *storage.StorageParseError
		validErrs  config.ValidateErrors
		validErr   config.ValidationError
	)

	switch {
	case errors.As(err, &usageErr), errors.As(err, &confirmErr):
		return ExitUsageError
	case errors.As(err, &validErrs), errors.As(err, &validErr):
		return ExitConfigError
	case errors.As(err, &storageErr), errors.As(err, &parseErr), errors.Is(err, storage.ErrClosed):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}
