package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear today's habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			snap := a.store.Reset(a.ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "Reset habits for %s\n", snap.Date)
			return nil
		},
	}
}
