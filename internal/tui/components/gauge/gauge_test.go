package gauge

import (
	"fmt"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNew_ClampsPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{in: -5, want: 0},
		{in: 0, want: 0},
		{in: 67, want: 67},
		{in: 100, want: 100},
		{in: 250, want: 100},
	}

	for _, tt := range tests {
		if got := New(tt.in, "", nil).Percent; got != tt.want {
			t.Errorf("New(%d).Percent = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRender_Shape(t *testing.T) {
	t.Parallel()

	for _, percent := range []int{0, 17, 50, 83, 100} {
		out := stripAnsi(New(percent, "TODAY", nil).Render())
		lines := strings.Split(out, "\n")

		if len(lines) != cellsTall+1 {
			t.Fatalf("%d%%: got %d lines, want %d", percent, len(lines), cellsTall+1)
		}
		for i, line := range lines[:cellsTall] {
			if n := utf8.RuneCountInString(line); n != cellsWide {
				t.Errorf("%d%%: line %d has %d cells, want %d", percent, i, n, cellsWide)
			}
		}
		if !strings.Contains(lines[cellsTall/2], fmt.Sprintf("%d%%", percent)) {
			t.Errorf("%d%%: center row %q missing value", percent, lines[cellsTall/2])
		}
		if strings.TrimSpace(lines[cellsTall]) != "TODAY" {
			t.Errorf("%d%%: label row = %q", percent, lines[cellsTall])
		}
	}
}

func TestRender_Colors(t *testing.T) {
	t.Parallel()

	var (
		track = color.RGBA{R: 100, G: 100, B: 100, A: 255}
		fill  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		text  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	)

	codes := func(s string) map[string]bool {
		out := make(map[string]bool)
		for _, p := range strings.Split(s, "\x1b[")[1:] {
			if idx := strings.Index(p, "m"); idx != -1 {
				out[p[:idx+1]] = true
			}
		}
		return out
	}

	empty := codes(New(0, "", fill, WithBgColor(track), WithTextColor(text)).Render())
	half := codes(New(50, "", fill, WithBgColor(track), WithTextColor(text)).Render())

	if len(half) <= len(empty) {
		t.Errorf("50%% ring uses %d distinct styles, 0%% uses %d; want the fill color added", len(half), len(empty))
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	if got := combine('⠁', '⠂'); got != '⠃' {
		t.Errorf("combine() = %q, want %q", got, '⠃')
	}
	if got := combine(emptyCell, '⣿'); got != '⣿' {
		t.Errorf("combine() = %q, want %q", got, '⣿')
	}
}

func TestStripAnsi(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input, want string
	}{
		{name: "single code", input: "\x1b[31mHello\x1b[0m", want: "Hello"},
		{name: "no codes", input: "Hello", want: "Hello"},
		{name: "only codes", input: "\x1b[31m\x1b[0m", want: ""},
		{name: "truecolor", input: "\x1b[38;2;255;0;0m⣿\x1b[m", want: "⣿"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stripAnsi(tt.input); got != tt.want {
				t.Errorf("stripAnsi() = %q, want %q", got, tt.want)
			}
		})
	}
}
