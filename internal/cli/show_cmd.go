// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/ui/editor"
)

func newShowCommand(a *app) *cobra.Command {
	var (
		raw   bool
		plain bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved notes",
		Long: `Print the saved notes rendered as Markdown.

--raw prints the stored JSON blob unchanged; --plain prints the Markdown
source without terminal styling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			return a.withStore(func(store *storage.NoteStore) error {
				if raw {
					data, found, err := store.Raw()
					if err != nil {
						return &StorageError{Op: "read notes", Err: err}
					}
					if !found {
						fmt.Fprintln(out, "No saved notes.")
						return nil
					}
					fmt.Fprintln(out, string(data))
					return nil
				}

				set, err := loadNotes(store)
				if err != nil {
					return err
				}

				opts := a.cfg.ExportOptions()
				opts.Now = a.now
				md, err := editor.PreviewMarkdown(set.Snapshot(a.now()), opts)
				if err != nil {
					return err
				}

				if !plain {
					w := width
					if w <= 0 {
						w = GetTerminalWidth()
					}
					rendered, err := editor.RenderMarkdown(md, a.markdownStyle(), w)
					if err != nil {
						slog.Warn("render markdown failed, printing source", "error", err)
					} else {
						md = rendered
					}
				}
				fmt.Fprint(out, md)

				if set.HasBeenSaved() {
					fmt.Fprintln(out, DimStyle.Render("Last saved "+set.SavedAt.Local().Format("2006-01-02 15:04")))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored JSON blob")
	cmd.Flags().BoolVar(&plain, "plain", false, "print Markdown source without styling")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap width (default terminal width)")
	return cmd
}

// markdownStyle picks the glamour style for stdout.
func (a *app) markdownStyle() string {
	if !a.stdoutIsTerminal() || !ColorsEnabled() {
		return "notty"
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
