// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cornell-tui/internal/export"
	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		format   string
		output   string
		toStdout bool
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved notes",
		Long: `Export the saved notes as pdf, text, markdown or json.

Files are named cornell-notes-<date> and written to the configured output
directory. When the PDF cannot be produced the notes are written as a
text file instead.`,
		Example: `  cornell export
  cornell export --format markdown --output ~/Documents
  cornell export --format text --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return &UsageError{Err: err}
			}
			if toStdout && f == export.FormatPDF {
				return &UsageError{Err: fmt.Errorf("pdf cannot be written to stdout")}
			}

			opts := a.cfg.ExportOptions()
			opts.Now = a.now
			if output != "" {
				opts.OutputDir = output
			}
			if cmd.Flags().Changed("open") {
				opts.OpenAfterExport = open
			}

			return a.withStore(func(store *storage.NoteStore) error {
				set, err := loadNotes(store)
				if err != nil {
					return err
				}
				snap := set.Snapshot(a.now())

				if toStdout {
					exporter, err := export.NewExporter(f, opts)
					if err != nil {
						return err
					}
					data, err := exporter.Export(snap)
					if err != nil {
						return fmt.Errorf("export notes: %w", err)
					}
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}

				res, err := export.Export(snap, f, opts)
				if err != nil {
					return fmt.Errorf("export notes: %w", err)
				}

				out := cmd.OutOrStdout()
				if res.FellBack {
					slog.Warn("pdf export fell back to text", "path", res.Path, "error", res.RenderErr)
					fmt.Fprintln(out, styles.RenderWarning(res.Notice()))
					return nil
				}
				slog.Info("notes exported", "format", res.Format, "path", res.Path)
				fmt.Fprintln(out, styles.RenderSuccess(res.Notice()))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPDF), "output format: pdf, text, markdown or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write to stdout instead of a file (not for pdf)")
	cmd.Flags().BoolVar(&open, "open", false, "open the file after exporting")
	return cmd
}
