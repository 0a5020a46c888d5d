package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/garrettladley/habitreset/internal/habit"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "two digit day", t: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), want: "Wed Oct 14 2026"},
		{name: "padded day", t: time.Date(2026, time.October, 5, 23, 59, 59, 0, time.UTC), want: "Mon Oct 05 2026"},
		{name: "new year", t: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), want: "Fri Jan 01 2027"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Label(tt.t); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_UsesLocation(t *testing.T) {
	t.Parallel()

	// 02:00 UTC on the 15th is still the 14th five hours west
	instant := time.Date(2026, time.October, 15, 2, 0, 0, 0, time.UTC)
	west := time.FixedZone("UTC-5", -5*60*60)

	if got := Label(instant.In(west)); got != "Wed Oct 14 2026" {
		t.Errorf("Label() in UTC-5 = %q, want %q", got, "Wed Oct 14 2026")
	}
	if got := Label(instant); got != "Thu Oct 15 2026" {
		t.Errorf("Label() in UTC = %q, want %q", got, "Thu Oct 15 2026")
	}
}

func TestIsEnabled_AbsentID(t *testing.T) {
	t.Parallel()

	s := Snapshot{Date: "Wed Oct 14 2026", Habits: []Record{{ID: habit.Read, Enabled: true}}}

	if !IsEnabled(s, habit.Read) {
		t.Error("IsEnabled(read) = false, want true")
	}
	if IsEnabled(s, habit.NoSugar) {
		t.Error("IsEnabled on absent id = true, want false")
	}
	if IsEnabled(Snapshot{}, habit.Read) {
		t.Error("IsEnabled on empty snapshot = true, want false")
	}
}

func TestAdvisory(t *testing.T) {
	t.Parallel()

	s := Default("Wed Oct 14 2026")
	if _, ok := Advisory(s, habit.NoSnacks); ok {
		t.Error("Advisory(no-snacks) shown while no-sugar disabled")
	}

	s.Habits[habit.Index(habit.NoSugar)].Enabled = true

	msg, ok := Advisory(s, habit.NoSnacks)
	if !ok || msg != "Great combo with No Sugar! 💪" {
		t.Errorf("Advisory(no-snacks) = %q, %v", msg, ok)
	}
	if _, ok := Advisory(s, habit.NoSugar); ok {
		t.Error("Advisory(no-sugar) should never be shown")
	}
	if IsEnabled(s, habit.NoSnacks) {
		t.Error("advisory changed no-snacks flag")
	}
}

func TestDecode_ParseError(t *testing.T) {
	t.Parallel()

	_, err := Decode(StorageKey, []byte(`{"date":`))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Decode() error = %v, want *ParseError", err)
	}
	if perr.Key != StorageKey {
		t.Errorf("ParseError.Key = %q, want %q", perr.Key, StorageKey)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError.Unwrap() = nil, want decode cause")
	}
}

func TestEncode_Layout(t *testing.T) {
	t.Parallel()

	s := Default("Wed Oct 14 2026")
	s.Habits[0].Enabled = true

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `{"date":"Wed Oct 14 2026","habits":[` +
		`{"id":"no-sugar","enabled":true},` +
		`{"id":"water-only","enabled":false},` +
		`{"id":"exercise-day","enabled":false},` +
		`{"id":"no-snacks","enabled":false},` +
		`{"id":"low-screen","enabled":false},` +
		`{"id":"read","enabled":false}]}`
	if string(data) != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", data, want)
	}
}
