// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import "fmt"

// ExportRenderError reports that the PDF could not be produced.
// It implements the error interface and can be matched with errors.Is.
type ExportRenderError struct {
	Err error
}

// Error implements the error interface.
func (e *ExportRenderError) Error() string {
	return fmt.Sprintf("render pdf: %v", e.Err)
}

// Unwrap returns the underlying renderer failure.
func (e *ExportRenderError) Unwrap() error { return e.Err }

// Is matches any *ExportRenderError.
func (e *ExportRenderError) Is(target error) bool {
	_, ok := target.(*ExportRenderError)
	return ok
}
