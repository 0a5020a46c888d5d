package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// screen coords: 0°=right, 90°=down, 180°=left, 270°=up.
	// the ring starts at 12 o'clock and fills clockwise.
	ringStartAngle = 270.0
	ringSweep      = 360.0
	ringThickness  = 3
)

// drawRing draws a ring of ringThickness dots covering fraction (0..1) of
// the full sweep, using the midpoint circle algorithm per thickness step.
func drawRing(canvas *drawille.Canvas, cx, cy, radius int, fraction float64) {
	if fraction <= 0 {
		return
	}
	fraction = math.Min(fraction, 1)
	end := ringStartAngle + fraction*ringSweep

	for t := range ringThickness {
		r := radius - t
		if r <= 0 {
			continue
		}
		midpointArc(canvas, cx, cy, r, ringStartAngle, end)
	}
}

func midpointArc(canvas *drawille.Canvas, cx, cy, r int, start, end float64) {
	x, y := r, 0
	d := 1 - r

	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy - y}, {cx + y, cy - x},
			{cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x},
			{cx + y, cy + x}, {cx + x, cy + y},
		} {
			if inSweep(cx, cy, p[0], p[1], start, end) {
				canvas.Set(p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// inSweep reports whether the point's angle lies in [start, end]; end may
// exceed 360 when the sweep wraps past 0°.
func inSweep(cx, cy, px, py int, start, end float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	if end > 360 {
		return angle >= start || angle <= end-360
	}
	return angle >= start && angle <= end
}
