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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
)

// Line is a straight line segment.
type Line struct {
	Start, End image.Point
	Stroke
}

// Draw implements the [Shape] interface.
func (l *Line) Draw(c *pixdraw.Canvas) {
	c.DrawLine(l.Start, l.End, l.Color, l.Pen)
}

// Contains implements the [Shape] interface.
// A point hits the line if its perpendicular foot lies on the segment and
// it is at most two pixels away from it.  Lines of length zero are never
// hit.
func (l *Line) Contains(p image.Point) bool {
	a := toVec(l.Start)
	d := toVec(l.End).Sub(a)
	len2 := d.X*d.X + d.Y*d.Y
	if len2 == 0 {
		return false
	}
	q := toVec(p).Sub(a)
	t := (q.X*d.X + q.Y*d.Y) / len2
	if t < 0 || t > 1 {
		return false
	}
	foot := a.Add(d.Mul(t))
	return toVec(p).Sub(foot).Length() <= hitTolerance
}

// Centroid implements the [Shape] interface.
// The centroid of a line is its midpoint.
func (l *Line) Centroid() vec.Vec2 {
	return toVec(l.Start).Add(toVec(l.End)).Mul(0.5)
}

// Transform implements the [Shape] interface.
func (l *Line) Transform(m matrix.Matrix) {
	l.Start = apply(m, l.Start)
	l.End = apply(m, l.End)
}

// Outline implements the [Shape] interface.
func (l *Line) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{toVec(l.Start)}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{toVec(l.End)})
	}
}

// Clip implements the [Clipper] interface.
func (l *Line) Clip(win rect.Rect) bool {
	q0, q1, ok := pixdraw.ClipSegment(l.Start, l.End, win)
	if !ok {
		return false
	}
	l.Start, l.End = q0, q1
	return true
}
