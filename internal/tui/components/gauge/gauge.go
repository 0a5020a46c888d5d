package gauge

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/habitreset/internal/tui/theme"
)

const (
	// braille cells are 2 dots wide and 4 dots tall
	ringDots   = 32
	cellsWide  = ringDots / 2
	cellsTall  = ringDots / 4
	emptyCell  = '⠀'
	ansiEscape = '\x1b'
)

// Gauge is a braille progress ring with the percentage in its center.
type Gauge struct {
	Percent   int
	Label     string
	Color     color.Color // filled portion
	BgColor   color.Color // unfilled track
	TextColor color.Color
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

func New(percent int, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Percent:   min(max(percent, 0), 100),
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g Gauge) Render() string {
	track := rasterize(1)
	fill := rasterize(float64(g.Percent) / 100)

	var (
		trackStyle = lipgloss.NewStyle().Foreground(g.BgColor)
		fillStyle  = lipgloss.NewStyle().Foreground(g.Color)
		textStyle  = lipgloss.NewStyle().Foreground(g.TextColor).Bold(true)
		value      = []rune(fmt.Sprintf("%d%%", g.Percent))
		valueRow   = cellsTall / 2
		valueStart = (cellsWide - len(value)) / 2
	)

	lines := make([]string, cellsTall)
	for i := range cellsTall {
		var b strings.Builder
		for j := range cellsWide {
			if i == valueRow && j >= valueStart && j < valueStart+len(value) {
				b.WriteString(textStyle.Render(string(value[j-valueStart])))
				continue
			}
			switch {
			case fill[i][j] != emptyCell:
				b.WriteString(fillStyle.Render(string(combine(track[i][j], fill[i][j]))))
			case track[i][j] != emptyCell:
				b.WriteString(trackStyle.Render(string(track[i][j])))
			default:
				b.WriteRune(' ')
			}
		}
		lines[i] = b.String()
	}

	label := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(cellsWide).
		Align(lipgloss.Center).
		Render(g.Label)

	return strings.Join(lines, "\n") + "\n" + label
}

// rasterize draws a ring covering fraction of the sweep and returns it as a
// fixed cellsTall×cellsWide grid, blank cells as U+2800.
func rasterize(fraction float64) [cellsTall][cellsWide]rune {
	canvas := drawille.NewCanvas()
	center := ringDots / 2
	drawRing(&canvas, center, center, center-1, fraction)

	var grid [cellsTall][cellsWide]rune
	rows := canvas.Rows(0, 0, ringDots, ringDots)
	for i := range cellsTall {
		var row []rune
		if i < len(rows) {
			row = []rune(rows[i])
		}
		for j := range cellsWide {
			grid[i][j] = emptyCell
			if j < len(row) && isBraille(row[j]) {
				grid[i][j] = row[j]
			}
		}
	}
	return grid
}

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// combine ORs the dot patterns of two braille cells.
func combine(a, b rune) rune {
	return emptyCell + ((a - emptyCell) | (b - emptyCell))
}

// stripAnsi removes SGR escape sequences.
func stripAnsi(s string) string {
	var (
		b        strings.Builder
		inEscape bool
	)
	for _, r := range s {
		switch {
		case r == ansiEscape:
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
