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
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"
)

// scanEdge is a non-horizontal polygon edge in the edge table.
type scanEdge struct {
	yMax int     // the edge is active for scanlines y with yMin <= y < yMax
	x    float64 // x at the current scanline; starts at the x of yMin
	dxdy float64 // inverse slope, added to x after each scanline
}

// polyScanner fills polygons with an active edge table.  The buffers grow
// as needed and are reused across calls.
type polyScanner struct {
	buckets [][]scanEdge // edges indexed by yMin - polygon yMin
	active  []scanEdge   // edges crossing the current scanline
}

// ScanPolygon computes the interior of the closed polygon with the given
// vertices and calls emit once for every horizontal span, in increasing
// order of y.  Each span covers the pixels xMin <= x <= xMax of row y.
// Polygons with fewer than three vertices have no interior.
//
// Spans are found with an active edge table: for every scanline the
// active edges are sorted by their current x and each consecutive pair
// encloses a span from ceil(left x) to floor(right x).  An edge is active
// on the scanlines y with yMin <= y < yMax, so vertices shared between
// edges are counted once.
func ScanPolygon(vertices []image.Point, emit func(y, xMin, xMax int)) {
	var s polyScanner
	s.scan(vertices, math.MinInt, math.MaxInt, emit)
}

// scan emits the spans of the rows yFirst <= y <= yLast.  Rows outside
// this range are never visited.
func (s *polyScanner) scan(vertices []image.Point, yFirst, yLast int, emit func(y, xMin, xMax int)) {
	n := len(vertices)
	if n < 3 {
		return
	}

	yMin, yMax := vertices[0].Y, vertices[0].Y
	for _, p := range vertices[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	yMin = max(yMin, yFirst)
	yMax = min(yMax, yLast)
	if yMin > yMax {
		return
	}

	height := yMax - yMin + 1
	if cap(s.buckets) < height {
		s.buckets = make([][]scanEdge, height)
	}
	s.buckets = s.buckets[:height]
	for i := range s.buckets {
		s.buckets[i] = s.buckets[i][:0]
	}

	// build the edge table, skipping horizontal edges
	for i, p0 := range vertices {
		p1 := vertices[(i+1)%n]
		if p0.Y == p1.Y {
			continue
		}
		lo, hi := p0, p1
		if lo.Y > hi.Y {
			lo, hi = hi, lo
		}
		if hi.Y <= yMin || lo.Y > yMax {
			continue
		}
		e := scanEdge{
			yMax: hi.Y,
			x:    float64(lo.X),
			dxdy: float64(hi.X-lo.X) / float64(hi.Y-lo.Y),
		}
		start := lo.Y
		if start < yMin {
			e.x += float64(yMin-start) * e.dxdy
			start = yMin
		}
		row := start - yMin
		s.buckets[row] = append(s.buckets[row], e)
	}

	s.active = s.active[:0]
	for y := yMin; y <= yMax; y++ {
		s.active = append(s.active, s.buckets[y-yMin]...)

		// drop edges which end at this scanline
		s.active = slices.DeleteFunc(s.active, func(e scanEdge) bool {
			return e.yMax <= y
		})
		if len(s.active) == 0 {
			continue
		}

		slices.SortFunc(s.active, func(a, b scanEdge) int {
			return cmp.Compare(a.x, b.x)
		})

		for i := 0; i+1 < len(s.active); i += 2 {
			xLeft := int(math.Ceil(s.active[i].x))
			xRight := int(math.Floor(s.active[i+1].x))
			if xLeft <= xRight {
				emit(y, xLeft, xRight)
			}
		}

		for i := range s.active {
			s.active[i].x += s.active[i].dxdy
		}
	}
}

// FillPolygon paints the interior of the closed polygon with col.
// The fill ignores the pen: no dash rhythm and no disk stamping is
// applied.  Polygons with fewer than three vertices are not filled.
// Only the rows of the canvas are scanned.
func (c *Canvas) FillPolygon(vertices []image.Point, col color.RGBA) {
	c.scan.scan(vertices, 0, c.height-1, func(y, xMin, xMax int) {
		for x := max(xMin, 0); x <= min(xMax, c.width-1); x++ {
			c.Set(x, y, col)
		}
	})
}

// StrokePolygon draws the outline of the closed polygon, one edge at a
// time, including the closing edge from the last vertex back to the
// first.  Each edge starts its own dash rhythm.
func (c *Canvas) StrokePolygon(vertices []image.Point, col color.RGBA, pen Pen) {
	n := len(vertices)
	for i, p0 := range vertices {
		c.DrawLine(p0, vertices[(i+1)%n], col, pen)
	}
}
