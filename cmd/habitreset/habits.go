package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/tui/theme"
)

func habitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "List the available habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorDim)).
				Headers("KEY", "ID", "TITLE", "DESCRIPTION")

			for i, h := range habit.All() {
				t.Row(fmt.Sprint(i+1), string(h.ID), h.Title, h.Description)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
