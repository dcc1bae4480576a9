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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
)

// Polygon is a closed polygon.  The outline is always stroked; if Filled
// is set, the interior is painted with FillColor first.
type Polygon struct {
	Vertices  []image.Point
	Filled    bool
	FillColor color.RGBA
	Stroke
}

// Draw implements the [Shape] interface.
func (p *Polygon) Draw(c *pixdraw.Canvas) {
	if p.Filled {
		c.FillPolygon(p.Vertices, p.FillColor)
	}
	c.StrokePolygon(p.Vertices, p.Color, p.Pen)
}

// Contains implements the [Shape] interface.
// The test uses the even-odd rule.  Polygons with fewer than three
// vertices contain no points.
func (p *Polygon) Contains(q image.Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	x, y := float64(q.X), float64(q.Y)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := toVec(p.Vertices[i]), toVec(p.Vertices[j])
		if (a.Y > y) == (b.Y > y) {
			continue
		}
		xCross := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x < xCross {
			inside = !inside
		}
	}
	return inside
}

// Centroid implements the [Shape] interface.
// This is the centroid of the enclosed area.  For polygons which enclose
// no area, the mean of the vertices is used instead.
func (p *Polygon) Centroid() vec.Vec2 {
	n := len(p.Vertices)
	if n == 0 {
		return vec.Vec2{}
	}

	var area2, cx, cy float64
	for i := range n {
		a := toVec(p.Vertices[i])
		b := toVec(p.Vertices[(i+1)%n])
		cross := a.X*b.Y - b.X*a.Y
		area2 += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if math.Abs(area2) < 1e-9 {
		var sum vec.Vec2
		for _, v := range p.Vertices {
			sum = sum.Add(toVec(v))
		}
		return sum.Mul(1 / float64(n))
	}
	return vec.Vec2{X: cx / (3 * area2), Y: cy / (3 * area2)}
}

// Transform implements the [Shape] interface.
func (p *Polygon) Transform(m matrix.Matrix) {
	for i, v := range p.Vertices {
		p.Vertices[i] = apply(m, v)
	}
}

// Outline implements the [Shape] interface.
func (p *Polygon) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p.Vertices) == 0 {
			return
		}
		for i, v := range p.Vertices {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{toVec(v)}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Clip implements the [Clipper] interface.
// Polygons with fewer than three vertices left after clipping are
// reported as empty.
func (p *Polygon) Clip(win rect.Rect) bool {
	p.Vertices = pixdraw.ClipPolygon(p.Vertices, win)
	return len(p.Vertices) >= 3
}
