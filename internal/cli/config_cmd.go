// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(a, cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfig(a, cmd)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.configPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		newConfigInitCommand(a),
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one setting",
			Example: `  cornell config get autosave.debounce_ms
  cornell config get export.output_dir`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.cfg.Get(args[0])
				if err != nil {
					return &UsageError{Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one setting in the config file",
			Example: `  cornell config set ui.theme light
  cornell config set storage.backend sqlite`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setConfig(a, cmd, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List the setting names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.GetAllKeys(), "\n"))
				return nil
			},
		},
	)
	return cmd
}

func newConfigInitCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return &UsageError{Err: fmt.Errorf("%s already exists (use --force to overwrite)", path)}
			}
			if err := writeConfigFile(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess("Wrote "+path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func showConfig(a *app, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if path, err := a.configPath(); err == nil {
		fmt.Fprintln(out, DimStyle.Render("# "+path))
	}
	fmt.Fprint(out, a.cfg.String())
	return nil
}

// setConfig edits the file on disk rather than the effective config, so
// environment overrides are never written back.
func setConfig(a *app, cmd *cobra.Command, key, value string) error {
	path, err := a.configPath()
	if err != nil {
		return err
	}

	cfg, err := readConfigFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return &UsageError{Err: fmt.Errorf("set %s: %w", key, err)}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := writeConfigFile(path, cfg); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("%s = %s", key, value)))
	return nil
}

// readConfigFile loads path without environment overrides. A missing file
// reads as the defaults.
func readConfigFile(path string) (*config.Config, error) {
	cfg := config.Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if strings.HasSuffix(path, ".json") {
		return cfg, config.LoadJSON(cfg, path)
	}
	return cfg, config.LoadTOML(cfg, path)
}

func writeConfigFile(path string, cfg *config.Config) error {
	if strings.HasSuffix(path, ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}
