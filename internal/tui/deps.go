package tui

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/habit"
)

// HabitStore is the slice of *daily.Store the UI drives.
type HabitStore interface {
	Current() daily.Snapshot
	Toggle(ctx context.Context, id habit.ID, enabled bool) (daily.Snapshot, error)
}

type Deps struct {
	Ctx    context.Context
	Logger *slog.Logger
	Store  HabitStore
	Rand   *rand.Rand
	Now    func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Ctx == nil {
		d.Ctx = context.Background()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}
