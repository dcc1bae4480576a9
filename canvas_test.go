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
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 3, white)

	c.Set(1, 2, red)
	if got := c.Pixel(1, 2); got != red {
		t.Errorf("pixel (1,2) = %v, want %v", got, red)
	}

	// out-of-bounds writes are ignored
	for _, p := range []image.Point{image.Pt(-1, 0), image.Pt(0, -1), image.Pt(4, 0), image.Pt(0, 3), image.Pt(100, 100)} {
		c.Set(p.X, p.Y, black)
	}
	n := countColor(c, black)
	if n != 0 {
		t.Errorf("%d pixels changed by out-of-bounds writes", n)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(5, 5, white)
	c.Set(2, 2, red)

	c.Resize(7, 3, blue)
	if c.Width() != 7 || c.Height() != 3 {
		t.Fatalf("size = %dx%d, want 7x3", c.Width(), c.Height())
	}
	if n := countColor(c, blue); n != 21 {
		t.Errorf("%d background pixels after resize, want 21", n)
	}

	c.Resize(-3, 2, white)
	if c.Width() != 0 || c.Bounds() != image.Rect(0, 0, 0, 2) {
		t.Errorf("negative width not clamped: bounds %v", c.Bounds())
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(6, 4, white)
	c.Set(0, 0, red)
	c.Fill(blue)
	if n := countColor(c, blue); n != 24 {
		t.Errorf("%d pixels filled, want 24", n)
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(3, 2, white)
	c.Set(2, 1, red)
	img := c.Image()
	if img.Bounds() != c.Bounds() {
		t.Fatalf("image bounds %v, want %v", img.Bounds(), c.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != red {
		t.Errorf("image pixel (2,1) = %v, want %v", got, red)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("image pixel (0,0) = %v, want %v", got, white)
	}
}

func countColor(c *Canvas, col color.RGBA) int {
	n := 0
	for y := range c.Height() {
		for x := range c.Width() {
			if c.Pixel(x, y) == col {
				n++
			}
		}
	}
	return n
}

// writeDebugImage saves the canvas to debug/<name>.png, for inspecting
// failed tests.
func writeDebugImage(name string, c *Canvas) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, c.Image())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
