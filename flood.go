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
	"log/slog"
)

// Region is the result of a flood fill: a connected set of pixels
// together with the color they were filled with.  The pixel set is
// captured once; painting a Region later does not consult the canvas.
type Region struct {
	Pixels []image.Point
	Color  color.RGBA
}

// Paint sets all pixels of the region to the region's color.
func (r *Region) Paint(c *Canvas) {
	for _, p := range r.Pixels {
		c.Set(p.X, p.Y, r.Color)
	}
}

// Bounds returns the smallest rectangle containing all pixels of the
// region.
func (r *Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for i, p := range r.Pixels {
		pb := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
		if i == 0 {
			b = pb
		} else {
			b = b.Union(pb)
		}
	}
	return b
}

// FloodFill fills the 4-connected region of pixels which share the color
// of seed, and returns the filled region.  The result is nil if the seed
// lies outside the canvas or already has color fill.
//
// The region is traversed span by span with an explicit stack: each
// popped seed is grown into a maximal horizontal run of unvisited pixels
// of the target color, and for the rows above and below one new seed is
// pushed per maximal sub-run.  The stack therefore holds one entry per
// span rather than one per pixel.
func (c *Canvas) FloodFill(seed image.Point, fill color.RGBA) *Region {
	if !c.InBounds(seed.X, seed.Y) {
		return nil
	}
	target := c.Pixel(seed.X, seed.Y)
	if target == fill {
		return nil
	}

	w, h := c.width, c.height
	visited := make([]bool, w*h)
	open := func(x, y int) bool {
		return !visited[y*w+x] && c.Pixel(x, y) == target
	}

	var pixels []image.Point
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !open(p.X, p.Y) {
			continue
		}

		y := p.Y
		xl := p.X
		for xl > 0 && open(xl-1, y) {
			xl--
		}
		xr := p.X
		for xr+1 < w && open(xr+1, y) {
			xr++
		}

		for x := xl; x <= xr; x++ {
			visited[y*w+x] = true
			pixels = append(pixels, image.Pt(x, y))
		}

		for _, ny := range [2]int{y - 1, y + 1} {
			if ny < 0 || ny >= h {
				continue
			}
			x := xl
			for x <= xr {
				for x <= xr && !open(x, ny) {
					x++
				}
				if x > xr {
					break
				}
				stack = append(stack, image.Pt(x, ny))
				for x <= xr && open(x, ny) {
					x++
				}
			}
		}
	}

	if len(pixels) == 0 {
		return nil
	}

	for _, p := range pixels {
		c.Set(p.X, p.Y, fill)
	}

	Logger().Debug("flood fill",
		slog.Int("x", seed.X),
		slog.Int("y", seed.Y),
		slog.Int("pixels", len(pixels)))

	return &Region{Pixels: pixels, Color: fill}
}
