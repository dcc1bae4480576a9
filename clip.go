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
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Clip windows are given as [rect.Rect] values in canvas coordinates.
// A point (x, y) is inside the window if LLx <= x <= URx and
// LLy <= y <= URy.  Since the y axis of the canvas points down, LLy is
// the top edge of the window and URy the bottom edge.  Fractional edges
// are moved inwards to the nearest pixel boundary before clipping.

// snapWindow shrinks win to the pixels it contains.  The result is
// empty if no pixel lies inside win.
func snapWindow(win rect.Rect) (snapped rect.Rect, empty bool) {
	snapped = rect.Rect{
		LLx: math.Ceil(win.LLx),
		LLy: math.Ceil(win.LLy),
		URx: math.Floor(win.URx),
		URy: math.Floor(win.URy),
	}
	empty = !(snapped.LLx <= snapped.URx && snapped.LLy <= snapped.URy)
	return snapped, empty
}

// outcode bits for the Cohen-Sutherland algorithm
const (
	outLeft   = 1 << iota // x < LLx
	outRight              // x > URx
	outTop                // y < LLy
	outBottom             // y > URy
)

// outcode classifies p relative to the window.  The point is rounded to
// the pixel grid first, so that intersection points which miss a boundary
// only by rounding error count as inside.
func outcode(p vec.Vec2, win rect.Rect) int {
	x := math.Round(p.X)
	y := math.Round(p.Y)

	code := 0
	if x < win.LLx {
		code |= outLeft
	} else if x > win.URx {
		code |= outRight
	}
	if y < win.LLy {
		code |= outTop
	} else if y > win.URy {
		code |= outBottom
	}
	return code
}

// ClipSegment clips the segment from p0 to p1 to the window, using the
// Cohen-Sutherland algorithm.  If some part of the segment lies inside the
// window, the end points of that part are returned together with true.
// If the segment lies entirely outside, ok is false and the caller should
// discard it.
//
// Intersections are computed in floating point and the end points are
// rounded to the pixel grid only once, at the end.
func ClipSegment(p0, p1 image.Point, win rect.Rect) (q0, q1 image.Point, ok bool) {
	win, empty := snapWindow(win)
	if empty {
		return image.Point{}, image.Point{}, false
	}

	a := vec.Vec2{X: float64(p0.X), Y: float64(p0.Y)}
	b := vec.Vec2{X: float64(p1.X), Y: float64(p1.Y)}
	codeA := outcode(a, win)
	codeB := outcode(b, win)

	for {
		if codeA|codeB == 0 {
			return roundPoint(a), roundPoint(b), true
		}
		if codeA&codeB != 0 {
			return image.Point{}, image.Point{}, false
		}

		// move an outside end point onto the boundary it violates
		code := codeA
		if code == 0 {
			code = codeB
		}
		var p vec.Vec2
		switch {
		case code&outTop != 0:
			p.X = a.X + (b.X-a.X)*(win.LLy-a.Y)/(b.Y-a.Y)
			p.Y = win.LLy
		case code&outBottom != 0:
			p.X = a.X + (b.X-a.X)*(win.URy-a.Y)/(b.Y-a.Y)
			p.Y = win.URy
		case code&outRight != 0:
			p.X = win.URx
			p.Y = a.Y + (b.Y-a.Y)*(win.URx-a.X)/(b.X-a.X)
		case code&outLeft != 0:
			p.X = win.LLx
			p.Y = a.Y + (b.Y-a.Y)*(win.LLx-a.X)/(b.X-a.X)
		}

		if code == codeA {
			a = p
			codeA = outcode(a, win)
		} else {
			b = p
			codeB = outcode(b, win)
		}
	}
}

func roundPoint(p vec.Vec2) image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// windowEdge identifies one of the four half-planes bounding a clip
// window, in the order used by ClipPolygon.
type windowEdge int

const (
	edgeLeft windowEdge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// slopeThreshold is the smallest coordinate difference which is used as
// a divisor when intersecting with a window edge.
const slopeThreshold = 1e-9

func (e windowEdge) inside(p image.Point, win rect.Rect) bool {
	switch e {
	case edgeLeft:
		return float64(p.X) >= win.LLx
	case edgeRight:
		return float64(p.X) <= win.URx
	case edgeTop:
		return float64(p.Y) >= win.LLy
	default:
		return float64(p.Y) <= win.URy
	}
}

// intersect returns the point where the line through a and b crosses the
// window edge, rounded to the pixel grid.
func (e windowEdge) intersect(a, b image.Point, win rect.Rect) image.Point {
	x1, y1 := float64(a.X), float64(a.Y)
	dx := float64(b.X) - x1
	dy := float64(b.Y) - y1

	var x, y float64
	switch e {
	case edgeLeft, edgeRight:
		x = win.LLx
		if e == edgeRight {
			x = win.URx
		}
		y = y1
		if math.Abs(dx) >= slopeThreshold {
			y += (x - x1) / dx * dy
		}
	default:
		y = win.LLy
		if e == edgeBottom {
			y = win.URy
		}
		x = x1
		if math.Abs(dy) >= slopeThreshold {
			x += (y - y1) / dy * dx
		}
	}
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

// ClipPolygon clips a closed polygon to the window using the
// Sutherland-Hodgman algorithm, processing the left, right, top and
// bottom edge of the window in turn.  The result may have fewer than
// three vertices, or none at all; such polygons should be discarded by
// the caller.  Clipping a polygon which already lies inside the window
// returns its vertices unchanged.
func ClipPolygon(vertices []image.Point, win rect.Rect) []image.Point {
	win, empty := snapWindow(win)
	if empty {
		return nil
	}

	out := slices.Clone(vertices)
	for e := edgeLeft; e <= edgeBottom; e++ {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]image.Point, 0, len(in)+2)

		s := in[len(in)-1]
		for _, p := range in {
			sIn := e.inside(s, win)
			pIn := e.inside(p, win)
			switch {
			case sIn && pIn:
				out = append(out, p)
			case sIn:
				out = append(out, e.intersect(s, p, win))
			case pIn:
				out = append(out, e.intersect(s, p, win), p)
			}
			s = p
		}
	}
	return out
}
