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
	"image"
	"image/color"
	"iter"
)

// LinePixels returns the pixels of the digital line from p0 to p1, in
// order.  Both end points are included and consecutive pixels are
// 8-connected.  A zero-length line consists of the single pixel p0.
func LinePixels(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		x, y := p0.X, p0.Y

		dx := abs(p1.X - x)
		dy := -abs(p1.Y - y)
		sx := 1
		if x > p1.X {
			sx = -1
		}
		sy := 1
		if y > p1.Y {
			sy = -1
		}
		err := dx + dy

		for {
			if !yield(image.Point{X: x, Y: y}) {
				return
			}
			if x == p1.X && y == p1.Y {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x += sx
			}
			if e2 <= dx {
				err += dx
				y += sy
			}
		}
	}
}

// DrawLine strokes the line from p0 to p1.
// The dash rhythm starts at step 0 on p0.
func (c *Canvas) DrawLine(p0, p1 image.Point, col color.RGBA, pen Pen) {
	step := 0
	for p := range LinePixels(p0, p1) {
		c.plot(p.X, p.Y, col, step, pen)
		step++
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
