package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/habit"
)

func toggleCmd() *cobra.Command {
	var on, off bool

	cmd := &cobra.Command{
		Use:       "toggle <habit>",
		Short:     "Flip one habit for today",
		Long:      "Flips the named habit, or sets it explicitly with --on or --off.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: habitArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := habit.Parse(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			enabled := !daily.IsEnabled(a.store.Current(), id)
			switch {
			case on:
				enabled = true
			case off:
				enabled = false
			}

			snap, err := a.store.Toggle(a.ctx, id, enabled)
			if err != nil {
				return fmt.Errorf("failed to toggle %s: %w", id, err)
			}

			state := "disabled"
			if daily.IsEnabled(snap, id) {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d/%d, %d%%)\n",
				id, state, daily.ActiveCount(snap), habit.Count, daily.ProgressPercent(snap))
			if note, ok := daily.Advisory(snap, id); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "! %s\n", note)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&on, "on", false, "enable the habit")
	cmd.Flags().BoolVar(&off, "off", false, "disable the habit")
	cmd.MarkFlagsMutuallyExclusive("on", "off")

	return cmd
}

func habitArgs() []string {
	ids := habit.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
