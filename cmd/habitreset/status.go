package main

import (
	"fmt"
	"io"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/tips"
)

type statusHabit struct {
	ID       habit.ID `json:"id"`
	Title    string   `json:"title"`
	Enabled  bool     `json:"enabled"`
	Advisory string   `json:"advisory,omitempty"`
}

type statusTip struct {
	ID   habit.ID `json:"id"`
	Text string   `json:"text"`
}

type statusReport struct {
	Date    string        `json:"date"`
	Active  int           `json:"active"`
	Total   int           `json:"total"`
	Percent int           `json:"percent"`
	Habits  []statusHabit `json:"habits"`
	Tips    []statusTip   `json:"tips"`
}

func newStatusReport(snap daily.Snapshot, selected []tips.Tip) statusReport {
	r := statusReport{
		Date:    snap.Date,
		Active:  daily.ActiveCount(snap),
		Total:   habit.Count,
		Percent: daily.ProgressPercent(snap),
		Habits:  make([]statusHabit, 0, habit.Count),
		Tips:    make([]statusTip, 0, len(selected)),
	}
	for _, h := range habit.All() {
		note, _ := daily.Advisory(snap, h.ID)
		r.Habits = append(r.Habits, statusHabit{
			ID:       h.ID,
			Title:    h.Title,
			Enabled:  daily.IsEnabled(snap, h.ID),
			Advisory: note,
		})
	}
	for _, t := range selected {
		r.Tips = append(r.Tips, statusTip{ID: t.HabitID, Text: t.Text})
	}
	return r
}

func statusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's habits",
		Long:  "Prints today's progress, each habit's flag, advisories and a tip per active habit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			snap := a.store.Current()
			report := newStatusReport(snap, tips.Select(newRand(), snap))

			if asJSON {
				enc := go_json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the status as JSON")

	return cmd
}

func printStatus(w io.Writer, r statusReport) {
	fmt.Fprintf(w, "%s  %d/%d (%d%%)\n\n", r.Date, r.Active, r.Total, r.Percent)
	for _, h := range r.Habits {
		mark := " "
		if h.Enabled {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %-13s %s\n", mark, h.ID, h.Title)
		if h.Advisory != "" {
			fmt.Fprintf(w, "        ! %s\n", h.Advisory)
		}
	}

	if len(r.Tips) == 0 {
		fmt.Fprintln(w, "\nToggle some habits to see personalized tips!")
		return
	}
	fmt.Fprintln(w, "\nReminders:")
	for _, t := range r.Tips {
		fmt.Fprintf(w, "  - %s\n", t.Text)
	}
}
