// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

func newClearCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty all three note fields",
		Long: `Empty the cues, notes and summary and save the empty set.

Asks for confirmation on a terminal. Pass --yes when stdin is not a
terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			confirmed, err := a.confirm(yes, "clear all notes")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			return a.withStore(func(store *storage.NoteStore) error {
				saved, err := store.Save(notes.NewSnapshot("", "", "", a.now()))
				if err != nil {
					return &StorageError{Op: "save cleared notes", Err: err}
				}
				slog.Info("notes cleared", "key", store.Key(), "saved_at", saved.SavedAt)
				fmt.Fprintln(out, styles.RenderSuccess("Notes cleared"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
