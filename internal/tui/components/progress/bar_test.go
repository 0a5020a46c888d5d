package progress

import (
	"strings"
	"testing"
)

func TestBar_Filled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		percent, width int
		want           int
	}{
		{name: "empty", percent: 0, width: 30, want: 0},
		{name: "one of six", percent: 17, width: 30, want: 5},
		{name: "half", percent: 50, width: 30, want: 15},
		{name: "full", percent: 100, width: 30, want: 30},
		{name: "clamped high", percent: 140, width: 10, want: 10},
		{name: "clamped low", percent: -20, width: 10, want: 0},
		{name: "zero width", percent: 50, width: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := New(tt.percent, tt.width)
			if got := b.Filled(); got != tt.want {
				t.Errorf("Filled() = %d, want %d", got, tt.want)
			}

			out := b.Render()
			if got := strings.Count(out, fillRune); got != tt.want {
				t.Errorf("Render() has %d filled cells, want %d", got, tt.want)
			}
			if got := strings.Count(out, emptyRune); got != b.Width-tt.want {
				t.Errorf("Render() has %d empty cells, want %d", got, b.Width-tt.want)
			}
		})
	}
}
