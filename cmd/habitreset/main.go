package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/version"
)

const storageFlag = "storage"

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "habitreset",
		Short:        "Daily habit toggles in your terminal",
		Long:         "Toggle a fixed set of daily habits. Everything resets at midnight.",
		Version:      version.Get(),
		SilenceUsage: true,
		RunE:         runTUI,
	}
	rootCmd.PersistentFlags().String(storageFlag, "", "storage backend: file, sqlite, redis, postgres or memory (overrides HABITRESET_STORAGE)")

	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(habitsCmd())
	addDevCommands(rootCmd)

	return rootCmd
}
