// seehuhn.de/go/pixdraw - a 2D pixel drawing toolkit
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixdraw

import (
	"fmt"
	"image/color"
	"strings"
)

// LineStyle selects the dash rhythm of a stroke.
type LineStyle int

// These are the supported line styles.
const (
	Solid LineStyle = iota
	Dash
	Dot
	DashDot
)

// dashPatterns maps each line style to its draw/skip rhythm.
// A non-zero entry means that the corresponding step is drawn.
var dashPatterns = [...][]uint8{
	Solid:   {1},
	Dash:    {1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	Dot:     {1, 0, 0},
	DashDot: {1, 1, 1, 1, 1, 1, 0, 0, 1, 0, 0},
}

// pattern returns the rhythm of the style.
// Unknown styles are drawn solid.
func (s LineStyle) pattern() []uint8 {
	if s < 0 || int(s) >= len(dashPatterns) {
		return dashPatterns[Solid]
	}
	return dashPatterns[s]
}

// Period returns the length of the style's draw/skip rhythm, in steps.
func (s LineStyle) Period() int {
	return len(s.pattern())
}

// Runs returns the lengths of the alternating drawn and skipped runs of
// the style's rhythm, starting with a drawn run.  The result for Solid is
// [1]; all other styles have an even number of runs.
func (s LineStyle) Runs() []int {
	var runs []int
	prev := uint8(0)
	for i, v := range s.pattern() {
		if i == 0 || v != prev {
			runs = append(runs, 0)
			prev = v
		}
		runs[len(runs)-1]++
	}
	return runs
}

func (s LineStyle) String() string {
	switch s {
	case Solid:
		return "Solid"
	case Dash:
		return "Dash"
	case Dot:
		return "Dot"
	case DashDot:
		return "DashDot"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
}

// ParseLineStyle converts a style name, as returned by
// [LineStyle.String], into a LineStyle.  Case is ignored.
func ParseLineStyle(name string) (LineStyle, error) {
	switch strings.ToLower(name) {
	case "solid", "":
		return Solid, nil
	case "dash":
		return Dash, nil
	case "dot":
		return Dot, nil
	case "dashdot":
		return DashDot, nil
	}
	return Solid, fmt.Errorf("unknown line style %q", name)
}

// Pen holds the stroke attributes shared by all stroking operations.
type Pen struct {
	// Width is the pen width in pixels.  Points are stamped as disks of
	// radius max(1, Width/2), and every element of the dash rhythm is
	// held for Width consecutive steps.  Use [NewPen] to obtain a pen
	// with a valid width.
	Width int

	// Style is the dash rhythm.
	Style LineStyle

	// Offset shifts the dash rhythm by the given number of pattern
	// elements, so that strokes which start at different pixels need not
	// be dashed in phase.
	Offset int
}

// NewPen returns a pen with the given attributes.
// Widths below 1 are raised to 1.
func NewPen(width int, style LineStyle, offset int) Pen {
	return Pen{
		Width:  max(width, 1),
		Style:  style,
		Offset: offset,
	}
}

// ShouldDrawAtStep reports whether step number step of a stroke is drawn.
// The result is periodic in step with period width*style.Period().
func ShouldDrawAtStep(step int, style LineStyle, width, offset int) bool {
	pat := style.pattern()
	n := len(pat)

	width = max(width, 1) // guards the division for Pen{}; NewPen clamps widths

	idx := (step/width + offset) % n
	if idx < 0 {
		idx += n
	}
	return pat[idx] != 0
}

// StampDisk sets all pixels within distance r = max(1, width/2) of (x, y)
// to col.
func (c *Canvas) StampDisk(x, y int, col color.RGBA, width int) {
	r := max(1, width/2)
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.Set(x+dx, y+dy, col)
			}
		}
	}
}

// plot is the single point through which all strokes reach the canvas.
// It stamps a disk at (x, y) if the pen's rhythm draws the given step.
func (c *Canvas) plot(x, y int, col color.RGBA, step int, pen Pen) {
	if ShouldDrawAtStep(step, pen.Style, pen.Width, pen.Offset) {
		c.StampDisk(x, y, col, pen.Width)
	}
}
