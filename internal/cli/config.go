package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tadaboard/internal/board"
	"github.com/Makepad-fr/tadaboard/internal/config"
	"github.com/Makepad-fr/tadaboard/internal/store/jsonstore"
	"github.com/Makepad-fr/tadaboard/internal/ui"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration",
		Args:  exactly(0, "config show|path|init"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errHelpShown
		},
	}
	cmd.AddCommand(a.configShowCmd(), a.configPathCmd(), a.configInitCmd())
	return cmd
}

func (a *app) configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  exactly(0, "config show"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func (a *app) configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config files that are read, in order, and the board file",
		Args:  exactly(0, "config path"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths := []string{config.GlobalConfigPath(), config.ProjectConfigPath()}
			if a.configPath != "" {
				paths = []string{a.configPath}
			}
			for _, p := range paths {
				state := "missing"
				if _, err := os.Stat(p); err == nil {
					state = "found"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p, ui.Dim("("+state+")"))
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Backend == "" || cfg.Store.Backend == "file" {
				snap, err := jsonstore.Path(cfg.Store.Dir, cfg.Store.Key)
				if err != nil {
					return &board.ValidationError{Field: "store.key", Reason: err.Error()}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "board: %s\n", snap)
			}
			return nil
		},
	}
}

func (a *app) configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  exactly(0, "config init [--force]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.GlobalConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return usagef("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
