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
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

var window = rect.Rect{LLx: 10, LLy: 10, URx: 50, URy: 50}

func TestClipSegment(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 image.Point
		q0, q1 image.Point
		ok     bool
	}{
		{"horizontal", image.Pt(0, 30), image.Pt(60, 30), image.Pt(10, 30), image.Pt(50, 30), true},
		{"inside", image.Pt(12, 15), image.Pt(48, 40), image.Pt(12, 15), image.Pt(48, 40), true},
		{"on boundary", image.Pt(10, 10), image.Pt(50, 10), image.Pt(10, 10), image.Pt(50, 10), true},
		{"left of window", image.Pt(0, 0), image.Pt(9, 60), image.Point{}, image.Point{}, false},
		{"above window", image.Pt(0, 5), image.Pt(60, 2), image.Point{}, image.Point{}, false},
		{"one crossing", image.Pt(20, 20), image.Pt(70, 40), image.Pt(20, 20), image.Pt(50, 32), true},
		{"vertical", image.Pt(30, 0), image.Pt(30, 100), image.Pt(30, 10), image.Pt(30, 50), true},
		{"diagonal", image.Pt(0, 0), image.Pt(60, 60), image.Pt(10, 10), image.Pt(50, 50), true},
		{"corner miss", image.Pt(0, 15), image.Pt(15, 0), image.Point{}, image.Point{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q0, q1, ok := ClipSegment(tc.p0, tc.p1, window)
			if ok != tc.ok {
				t.Fatalf("ok = %t, want %t", ok, tc.ok)
			}
			if ok && (q0 != tc.q0 || q1 != tc.q1) {
				t.Errorf("clipped to %v-%v, want %v-%v", q0, q1, tc.q0, tc.q1)
			}
		})
	}
}

func TestClipSegmentStaysInWindow(t *testing.T) {
	pts := []image.Point{
		image.Pt(-20, -5), image.Pt(0, 30), image.Pt(33, -7), image.Pt(70, 22),
		image.Pt(61, 61), image.Pt(25, 55), image.Pt(4, 90), image.Pt(30, 30),
	}
	for _, p0 := range pts {
		for _, p1 := range pts {
			q0, q1, ok := ClipSegment(p0, p1, window)
			if !ok {
				continue
			}
			for _, q := range []image.Point{q0, q1} {
				if float64(q.X) < window.LLx || float64(q.X) > window.URx ||
					float64(q.Y) < window.LLy || float64(q.Y) > window.URy {
					t.Errorf("%v-%v: end point %v outside window", p0, p1, q)
				}
			}
		}
	}
}

func TestClipPolygonSquare(t *testing.T) {
	square := []image.Point{
		image.Pt(0, 0), image.Pt(100, 0), image.Pt(100, 100), image.Pt(0, 100),
	}
	got := ClipPolygon(square, window)
	want := []image.Point{
		image.Pt(10, 50), image.Pt(10, 10), image.Pt(50, 10), image.Pt(50, 50),
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClipPolygonIdempotent(t *testing.T) {
	polys := [][]image.Point{
		{image.Pt(0, 0), image.Pt(100, 0), image.Pt(100, 100), image.Pt(0, 100)},
		{image.Pt(30, -20), image.Pt(80, 45), image.Pt(5, 60)},
		{image.Pt(15, 15), image.Pt(45, 20), image.Pt(30, 40)},
		{image.Pt(0, 30), image.Pt(30, 0), image.Pt(60, 30), image.Pt(30, 60)},
		{image.Pt(-5, 12), image.Pt(70, 15), image.Pt(70, 47), image.Pt(30, 25), image.Pt(-5, 47)},
	}
	for i, poly := range polys {
		once := ClipPolygon(poly, window)
		twice := ClipPolygon(once, window)
		if !slices.Equal(once, twice) {
			t.Errorf("polygon %d: %v clips further to %v", i, once, twice)
		}
		for _, p := range once {
			if float64(p.X) < window.LLx || float64(p.X) > window.URx ||
				float64(p.Y) < window.LLy || float64(p.Y) > window.URy {
				t.Errorf("polygon %d: vertex %v outside window", i, p)
			}
		}
	}
}

func TestClipPolygonOutside(t *testing.T) {
	outside := []image.Point{image.Pt(60, 60), image.Pt(90, 60), image.Pt(75, 90)}
	if got := ClipPolygon(outside, window); len(got) != 0 {
		t.Errorf("polygon outside the window clipped to %v", got)
	}
	if got := ClipPolygon(nil, window); len(got) != 0 {
		t.Errorf("empty polygon clipped to %v", got)
	}

	// a sliver along the window edge survives with fewer than 3 distinct
	// vertices, which callers treat as degenerate
	edge := []image.Point{image.Pt(0, 20), image.Pt(10, 25), image.Pt(0, 30)}
	got := ClipPolygon(edge, window)
	distinct := make(map[image.Point]bool)
	for _, p := range got {
		distinct[p] = true
	}
	if len(distinct) >= 3 {
		t.Errorf("sliver clipped to %v", got)
	}
}

func TestClipFractionalWindow(t *testing.T) {
	win := rect.Rect{LLx: 10.4, LLy: 9.6, URx: 49.5, URy: 50.2}

	q0, q1, ok := ClipSegment(image.Pt(0, 20), image.Pt(30, 20), win)
	if !ok || q0 != image.Pt(11, 20) || q1 != image.Pt(30, 20) {
		t.Errorf("horizontal: got %v-%v %t, want (11,20)-(30,20) true", q0, q1, ok)
	}
	q0, q1, ok = ClipSegment(image.Pt(30, 0), image.Pt(30, 100), win)
	if !ok || q0 != image.Pt(30, 10) || q1 != image.Pt(30, 50) {
		t.Errorf("vertical: got %v-%v %t, want (30,10)-(30,50) true", q0, q1, ok)
	}

	square := []image.Point{
		image.Pt(0, 0), image.Pt(100, 0), image.Pt(100, 100), image.Pt(0, 100),
	}
	got := ClipPolygon(square, win)
	want := []image.Point{
		image.Pt(11, 50), image.Pt(11, 10), image.Pt(49, 10), image.Pt(49, 50),
	}
	if !slices.Equal(got, want) {
		t.Errorf("square: got %v, want %v", got, want)
	}

	// no pixel centre lies inside this window
	thin := rect.Rect{LLx: 10.2, LLy: 10, URx: 10.8, URy: 50}
	if _, _, ok := ClipSegment(image.Pt(0, 20), image.Pt(30, 20), thin); ok {
		t.Error("segment accepted by a window without pixels")
	}
	if got := ClipPolygon(square, thin); len(got) != 0 {
		t.Errorf("square clipped to %v by a window without pixels", got)
	}
}
