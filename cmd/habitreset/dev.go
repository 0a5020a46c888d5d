//go:build !release

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/paths"
)

func addDevCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(pathsCmd())
}

func pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			dir, err := paths.Dir(cfg.DataDir)
			if err != nil {
				return err
			}
			dbPath, err := paths.DB(cfg.DataDir)
			if err != nil {
				return err
			}
			logPath, err := paths.Log(cfg.DataDir)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "env:      %s\n", cfg.Env)
			fmt.Fprintf(w, "storage:  %s\n", cfg.Storage)
			fmt.Fprintf(w, "data dir: %s\n", dir)
			fmt.Fprintf(w, "file:     %s\n", filepath.Join(dir, daily.StorageKey+".json"))
			fmt.Fprintf(w, "sqlite:   %s\n", dbPath)
			fmt.Fprintf(w, "log:      %s\n", logPath)
			return nil
		},
	}
}
