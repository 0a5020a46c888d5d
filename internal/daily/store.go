package daily

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/storage"
	"github.com/garrettladley/habitreset/internal/xslog"
)

// Storage is the persistence the store needs. Get must return
// storage.ErrNotFound when nothing has been written.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store owns the current day's habit flags. It is not safe for concurrent
// use; the UI event loop is its only caller.
type Store struct {
	storage Storage
	key     string
	now     func() time.Time
	logger  *slog.Logger
	strict  bool

	current Snapshot
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithStrict makes Toggle return *UnknownHabitError for ids outside the
// catalog. Without it such calls are logged no-ops.
func WithStrict(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New returns a store holding today's default snapshot. Call Load to
// reconcile with persisted state.
func New(st Storage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		key:     StorageKey,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = Default(s.Today())
	return s
}

// Today is the calendar-day label for the store's clock.
func (s *Store) Today() string {
	return Label(s.now())
}

// Current returns the in-memory snapshot, rolled over to a fresh default if
// the calendar day changed since it was built.
func (s *Store) Current() Snapshot {
	s.rollover(context.Background())
	return s.current.clone()
}

// Load reads the persisted snapshot. Missing, malformed or stale data yield
// today's default snapshot, which is then written back. A failed read also
// yields the default but leaves the stored value untouched. No error is ever
// returned.
func (s *Store) Load(ctx context.Context) Snapshot {
	today := s.Today()

	loaded, outcome := s.read(ctx, today)
	switch outcome {
	case readOK:
		s.current = loaded
	case readFailed:
		s.current = Default(today)
	default:
		s.current = Default(today)
		s.Persist(ctx, s.current)
	}
	return s.current.clone()
}

type readOutcome uint8

const (
	readOK readOutcome = iota
	// readDiscarded covers missing, malformed and stale data.
	readDiscarded
	readFailed
)

func (s *Store) read(ctx context.Context, today string) (Snapshot, readOutcome) {
	logger := s.logger.With(xslog.Key(s.key), xslog.Date(today))

	data, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		logger.DebugContext(ctx, "no persisted snapshot")
		return Snapshot{}, readDiscarded
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to read snapshot, keeping stored value", xslog.Error(err))
		return Snapshot{}, readFailed
	}

	decoded, err := Decode(s.key, data)
	if err != nil {
		logger.WarnContext(ctx, "discarding malformed snapshot", xslog.Error(err))
		return Snapshot{}, readDiscarded
	}

	if decoded.Date != today {
		logger.InfoContext(ctx, "discarding stale snapshot", xslog.StoredDate(decoded.Date))
		return Snapshot{}, readDiscarded
	}

	normalized, err := decoded.normalize()
	if err != nil {
		perr := &ParseError{Key: s.key, Cause: err}
		logger.WarnContext(ctx, "discarding malformed snapshot", xslog.Error(perr))
		return Snapshot{}, readDiscarded
	}

	return normalized, readOK
}

// Toggle sets the named habit's flag to enabled and persists the result.
// The caller decides the value; the store does not require it to differ
// from the current one.
func (s *Store) Toggle(ctx context.Context, id habit.ID, enabled bool) (Snapshot, error) {
	s.rollover(ctx)

	// current is always in catalog order
	i := habit.Index(id)
	if i < 0 {
		err := &UnknownHabitError{ID: id}
		if s.strict {
			return s.current.clone(), err
		}
		s.logger.WarnContext(ctx, "ignoring toggle for unknown habit", xslog.HabitID(string(id)))
		return s.current.clone(), nil
	}

	next := s.current.clone()
	next.Habits[i].Enabled = enabled
	s.current = next

	s.logger.DebugContext(ctx, "habit toggled",
		xslog.HabitID(string(id)),
		xslog.Enabled(enabled),
		xslog.Percent(ProgressPercent(next)))

	s.Persist(ctx, next)
	return next.clone(), nil
}

// Reset replaces today's flags with the default and persists it.
func (s *Store) Reset(ctx context.Context) Snapshot {
	s.current = Default(s.Today())
	s.Persist(ctx, s.current)
	return s.current.clone()
}

// Persist writes {date: today, habits} over any prior value. Failures are
// logged and otherwise ignored; in-memory state stays authoritative.
func (s *Store) Persist(ctx context.Context, snap Snapshot) {
	out := Snapshot{Date: s.Today(), Habits: snap.Habits}

	data, err := Encode(out)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode snapshot", xslog.Error(err))
		return
	}

	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.WarnContext(ctx, "failed to persist snapshot",
			xslog.Key(s.key),
			xslog.Date(out.Date),
			xslog.Error(err))
	}
}

func (s *Store) rollover(ctx context.Context) {
	today := s.Today()
	if s.current.Date == today {
		return
	}
	s.logger.InfoContext(ctx, "calendar day changed, resetting habits",
		xslog.StoredDate(s.current.Date),
		xslog.Date(today))
	s.current = Default(today)
}
