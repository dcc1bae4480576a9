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

package shape

import (
	"cmp"
	"image"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
)

// Fill is the captured result of a flood fill.  It repaints the same
// pixels each time the scene is drawn, independent of the shapes around
// it.
type Fill struct {
	*pixdraw.Region
}

// Draw implements the [Shape] interface.
func (f *Fill) Draw(c *pixdraw.Canvas) {
	f.Paint(c)
}

// Contains implements the [Shape] interface.
// Fills cannot be selected by clicking.
func (f *Fill) Contains(image.Point) bool {
	return false
}

// Centroid implements the [Shape] interface.
// This is the mean of the pixel positions.
func (f *Fill) Centroid() vec.Vec2 {
	if len(f.Pixels) == 0 {
		return vec.Vec2{}
	}
	var sum vec.Vec2
	for _, p := range f.Pixels {
		sum = sum.Add(toVec(p))
	}
	return sum.Mul(1 / float64(len(f.Pixels)))
}

// Transform implements the [Shape] interface.
// Every pixel is mapped separately; pixels which land on the same
// position are merged.  Enlarging a fill therefore leaves gaps.
func (f *Fill) Transform(m matrix.Matrix) {
	seen := make(map[image.Point]bool, len(f.Pixels))
	out := f.Pixels[:0]
	for _, p := range f.Pixels {
		q := apply(m, p)
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	f.Pixels = out
}

// Outline implements the [Shape] interface.
// The outline consists of one closed rectangle per horizontal run of
// pixels.
func (f *Fill) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, r := range pixelRuns(f.Pixels) {
			x0, x1 := float64(r.Min.X), float64(r.Max.X)
			y0, y1 := float64(r.Min.Y), float64(r.Max.Y)
			if !yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) {
				return
			}
			for _, v := range []vec.Vec2{{X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}} {
				if !yield(path.CmdLineTo, []vec.Vec2{v}) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// pixelRuns merges horizontally adjacent pixels into one-pixel high
// rectangles, ordered by row and then by column.
func pixelRuns(pixels []image.Point) []image.Rectangle {
	sorted := slices.Clone(pixels)
	slices.SortFunc(sorted, func(a, b image.Point) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})

	var runs []image.Rectangle
	for _, p := range sorted {
		if k := len(runs) - 1; k >= 0 && runs[k].Min.Y == p.Y && runs[k].Max.X == p.X {
			runs[k].Max.X++
			continue
		}
		runs = append(runs, image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	return runs
}
