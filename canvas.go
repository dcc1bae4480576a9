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

// Canvas is a dense grid of opaque colors, stored in row-major order.
// All drawing operations in this package write through [Canvas.Set],
// which silently ignores coordinates outside the canvas.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []color.RGBA

	// scan holds the edge table buffers of FillPolygon, reused across
	// calls.
	scan polyScanner
}

// NewCanvas allocates a width×height canvas filled with bg.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int, bg color.RGBA) *Canvas {
	c := &Canvas{}
	c.Resize(width, height, bg)
	return c
}

// Width returns the number of pixel columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of pixel rows.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the rectangle of valid pixel coordinates.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// InBounds reports whether (x, y) is a valid pixel coordinate.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Set sets the pixel at (x, y) to col.
// Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !c.InBounds(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

// Pixel returns the color at (x, y).
// The coordinates must satisfy [Canvas.InBounds].
func (c *Canvas) Pixel(x, y int) color.RGBA {
	return c.pix[y*c.width+x]
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.RGBA) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Resize replaces the canvas contents by a new width×height grid filled
// with bg.  The old pixels are discarded.
func (c *Canvas) Resize(width, height int, bg color.RGBA) {
	width = max(width, 0)
	height = max(height, 0)

	c.width = width
	c.height = height
	c.pix = make([]color.RGBA, width*height)
	c.Fill(bg)

	Logger().Debug("canvas resized",
		slog.Int("width", width),
		slog.Int("height", height))
}

// Image returns a copy of the canvas as an [image.RGBA].
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for y := range c.height {
		row := img.Pix[y*img.Stride:]
		for x, col := range c.pix[y*c.width : (y+1)*c.width] {
			row[4*x+0] = col.R
			row[4*x+1] = col.G
			row[4*x+2] = col.B
			row[4*x+3] = col.A
		}
	}
	return img
}
