package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/habitreset/internal/tui"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	model := tui.New(tui.Deps{
		Ctx:    a.ctx,
		Logger: a.logger,
		Store:  a.store,
		Rand:   newRand(),
		Now:    time.Now,
	})

	p := tea.NewProgram(&model)

	a.logger.InfoContext(a.ctx, "starting tui")
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

func newRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32))
}
