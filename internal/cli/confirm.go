// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// confirm decides whether a destructive action may go ahead. The --yes
// flag skips the prompt; without a terminal on stdin it is required.
func (a *app) confirm(yes bool, action string) (bool, error) {
	if yes {
		return true, nil
	}
	if !a.stdinIsTerminal() {
		return false, &ConfirmationRequiredError{Action: action, Flag: "--yes"}
	}
	return a.prompt(fmt.Sprintf("Are you sure you want to %s?", action))
}

// PromptYesNo asks a yes/no question on the terminal. Ctrl+C and EOF
// answer no.
func PromptYesNo(question string) (bool, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.Prompt(question + " [y/N]: ")
	switch {
	case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return isYes(answer), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
