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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

var thin = Stroke{Color: black, Pen: pixdraw.NewPen(1, pixdraw.Solid, 0)}

func closeTo(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestLineContains(t *testing.T) {
	l := &Line{Start: image.Pt(10, 10), End: image.Pt(50, 10), Stroke: thin}
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(30, 10), true},
		{image.Pt(30, 12), true},
		{image.Pt(30, 8), true},
		{image.Pt(30, 13), false},
		{image.Pt(10, 10), true},
		{image.Pt(50, 11), true},
		{image.Pt(5, 10), false},  // before the start
		{image.Pt(52, 10), false}, // after the end
	}
	for _, tc := range tests {
		if got := l.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}

	dot := &Line{Start: image.Pt(5, 5), End: image.Pt(5, 5)}
	if dot.Contains(image.Pt(5, 5)) {
		t.Error("zero-length line was hit")
	}
}

func TestPolygonContains(t *testing.T) {
	square := &Polygon{Vertices: []image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}}
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(20, 20), true},
		{image.Pt(11, 29), true},
		{image.Pt(5, 20), false},
		{image.Pt(40, 20), false},
		{image.Pt(20, 5), false},
	}
	for _, tc := range tests {
		if got := square.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}

	// concave U shape, the notch is outside
	u := &Polygon{Vertices: []image.Point{{0, 0}, {10, 0}, {10, 30}, {20, 30}, {20, 0}, {30, 0}, {30, 40}, {0, 40}}}
	if u.Contains(image.Pt(15, 10)) {
		t.Error("point in the notch of a U was hit")
	}
	if !u.Contains(image.Pt(5, 10)) {
		t.Error("point in the left arm of a U was missed")
	}

	seg := &Polygon{Vertices: []image.Point{{0, 0}, {10, 10}}}
	if seg.Contains(image.Pt(5, 5)) {
		t.Error("two-vertex polygon was hit")
	}
}

func TestArcContains(t *testing.T) {
	a := &Arc{Center: image.Pt(50, 50), Radius: 20, StartAngle: 0, EndAngle: 90}
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(70, 50), true},  // 0°
		{image.Pt(50, 70), true},  // 90°, y points down
		{image.Pt(64, 64), true},  // 45°, distance 19.8
		{image.Pt(30, 50), false}, // 180°
		{image.Pt(50, 30), false}, // 270°
		{image.Pt(60, 60), false}, // too close to the center
		{image.Pt(50, 50), false},
	}
	for _, tc := range tests {
		if got := a.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name string
		s    Shape
		want vec.Vec2
	}{
		{"line", &Line{Start: image.Pt(0, 0), End: image.Pt(10, 20)}, vec.Vec2{X: 5, Y: 10}},
		{"square", &Polygon{Vertices: []image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}}, vec.Vec2{X: 20, Y: 20}},
		{"triangle", &Polygon{Vertices: []image.Point{{0, 0}, {30, 0}, {0, 30}}}, vec.Vec2{X: 10, Y: 10}},
		{"collinear", &Polygon{Vertices: []image.Point{{0, 0}, {10, 0}, {20, 0}}}, vec.Vec2{X: 10, Y: 0}},
		{"arc", &Arc{Center: image.Pt(7, 8), Radius: 3}, vec.Vec2{X: 7, Y: 8}},
		{"fill", &Fill{&pixdraw.Region{Pixels: []image.Point{{0, 0}, {2, 0}, {1, 3}}}}, vec.Vec2{X: 1, Y: 1}},
	}
	for _, tc := range tests {
		if got := tc.s.Centroid(); !closeTo(got, tc.want) {
			t.Errorf("%s: centroid %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAboutPoint(t *testing.T) {
	apply2 := func(m matrix.Matrix, x, y float64) vec.Vec2 {
		return vec.Vec2{X: m[0]*x + m[2]*y + m[4], Y: m[1]*x + m[3]*y + m[5]}
	}
	ref := vec.Vec2{X: 10, Y: 10}

	m := AboutPoint(ref, 2, 2, 0, 0, 0)
	if got := apply2(m, 10, 10); !closeTo(got, ref) {
		t.Errorf("reference point moved to %v", got)
	}
	if got := apply2(m, 20, 10); !closeTo(got, vec.Vec2{X: 30, Y: 10}) {
		t.Errorf("scaled point %v, want (30, 10)", got)
	}

	// 90° takes +x to +y, which is clockwise on screen
	m = AboutPoint(vec.Vec2{}, 1, 1, 90, 0, 0)
	if got := apply2(m, 10, 0); !closeTo(got, vec.Vec2{X: 0, Y: 10}) {
		t.Errorf("rotated point %v, want (0, 10)", got)
	}

	m = AboutPoint(ref, 1, 1, 0, 5, -3)
	if got := apply2(m, 1, 2); !closeTo(got, vec.Vec2{X: 6, Y: -1}) {
		t.Errorf("translated point %v, want (6, -1)", got)
	}

	// scaling is applied before the rotation
	m = AboutPoint(vec.Vec2{}, 2, 1, 90, 0, 0)
	if got := apply2(m, 1, 0); !closeTo(got, vec.Vec2{X: 0, Y: 2}) {
		t.Errorf("scale-then-rotate gave %v, want (0, 2)", got)
	}
}

func TestTransformShapes(t *testing.T) {
	rot := AboutPoint(vec.Vec2{}, 1, 1, 90, 0, 0)

	l := &Line{Start: image.Pt(10, 0), End: image.Pt(20, 0)}
	l.Transform(rot)
	if l.Start != image.Pt(0, 10) || l.End != image.Pt(0, 20) {
		t.Errorf("rotated line %v-%v", l.Start, l.End)
	}

	a := &Arc{Center: image.Pt(10, 0), Radius: 5, StartAngle: 0, EndAngle: 90}
	a.Transform(AboutPoint(vec.Vec2{}, 2, 2, 90, 0, 0))
	if a.Center != image.Pt(0, 20) {
		t.Errorf("arc center %v, want (0, 20)", a.Center)
	}
	if a.Radius != 10 {
		t.Errorf("arc radius %d, want 10", a.Radius)
	}
	if math.Abs(a.StartAngle-90) > 1e-6 || math.Abs(a.EndAngle-180) > 1e-6 {
		t.Errorf("arc angles %g..%g, want 90..180", a.StartAngle, a.EndAngle)
	}

	p := &Polygon{Vertices: []image.Point{{0, 0}, {4, 0}, {4, 4}}}
	p.Transform(AboutPoint(vec.Vec2{X: 2, Y: 2}, 0.5, 0.5, 0, 1, 1))
	want := []image.Point{{2, 2}, {4, 2}, {4, 4}}
	for i, v := range p.Vertices {
		if v != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}

	f := &Fill{&pixdraw.Region{Pixels: []image.Point{{0, 0}, {1, 0}, {0, 1}}, Color: red}}
	f.Transform(AboutPoint(vec.Vec2{}, 1, 1, 0, 3, 4))
	if len(f.Pixels) != 3 || f.Pixels[0] != image.Pt(3, 4) {
		t.Errorf("translated fill %v", f.Pixels)
	}
	f.Transform(AboutPoint(vec.Vec2{}, 0, 0, 0, 0, 0))
	if len(f.Pixels) != 1 {
		t.Errorf("collapsed fill has %d pixels, want 1", len(f.Pixels))
	}
}

func TestTransformMirroredArc(t *testing.T) {
	// flip about the vertical line through the center
	a := &Arc{Center: image.Pt(50, 50), Radius: 10, StartAngle: 0, EndAngle: 90}
	a.Transform(AboutPoint(vec.Vec2{X: 50, Y: 50}, -1, 1, 0, 0, 0))
	if a.Center != image.Pt(50, 50) || a.Radius != 10 {
		t.Errorf("mirrored arc at %v with radius %d", a.Center, a.Radius)
	}
	if math.Abs(a.StartAngle-90) > 1e-6 || math.Abs(a.EndAngle-180) > 1e-6 {
		t.Errorf("arc angles %g..%g, want 90..180", a.StartAngle, a.EndAngle)
	}
	if !a.Contains(image.Pt(40, 50)) || a.Contains(image.Pt(60, 50)) {
		t.Error("mirrored arc covers the wrong side")
	}

	// a wrapping range stays wrapping
	w := &Arc{Center: image.Pt(0, 0), Radius: 10, StartAngle: 350, EndAngle: 10}
	w.Transform(AboutPoint(vec.Vec2{}, -1, 1, 0, 0, 0))
	if !w.Contains(image.Pt(-10, 0)) || w.Contains(image.Pt(10, 0)) {
		t.Errorf("mirrored wrapping arc %g..%g", w.StartAngle, w.EndAngle)
	}
}

// commands returns the commands of p, in order.
func commands(p path.Path) ([]path.Command, []vec.Vec2) {
	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, cp := range p {
		cmds = append(cmds, cmd)
		pts = append(pts, cp...)
	}
	return cmds, pts
}

func TestOutline(t *testing.T) {
	p := &Polygon{Vertices: []image.Point{{0, 0}, {4, 0}, {4, 4}}}
	cmds, _ := commands(p.Outline())
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("polygon outline has %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmds[i], want[i])
		}
	}

	quarter := &Arc{Center: image.Pt(50, 50), Radius: 10, StartAngle: 0, EndAngle: 90}
	cmds, pts := commands(quarter.Outline())
	if len(cmds) != 19 || cmds[len(cmds)-1] == path.CmdClose {
		t.Errorf("quarter arc outline: %d commands, last %v", len(cmds), cmds[len(cmds)-1])
	}
	if !closeTo(pts[0], vec.Vec2{X: 60, Y: 50}) || !closeTo(pts[len(pts)-1], vec.Vec2{X: 50, Y: 60}) {
		t.Errorf("quarter arc runs from %v to %v", pts[0], pts[len(pts)-1])
	}
	for _, q := range pts {
		if r := q.Sub(vec.Vec2{X: 50, Y: 50}).Length(); math.Abs(r-10) > 1e-6 {
			t.Errorf("outline point %v at distance %g", q, r)
		}
	}

	circle := &Arc{Center: image.Pt(0, 0), Radius: 10, StartAngle: 0, EndAngle: 360}
	cmds, _ = commands(circle.Outline())
	if cmds[len(cmds)-1] != path.CmdClose {
		t.Error("full circle outline is not closed")
	}

	f := &Fill{&pixdraw.Region{Pixels: []image.Point{{3, 0}, {0, 0}, {1, 0}, {0, 1}}}}
	runs := pixelRuns(f.Pixels)
	wantRuns := []image.Rectangle{image.Rect(0, 0, 2, 1), image.Rect(3, 0, 4, 1), image.Rect(0, 1, 1, 2)}
	if len(runs) != len(wantRuns) {
		t.Fatalf("got runs %v, want %v", runs, wantRuns)
	}
	for i := range runs {
		if runs[i] != wantRuns[i] {
			t.Errorf("run %d = %v, want %v", i, runs[i], wantRuns[i])
		}
	}
	cmds, _ = commands(f.Outline())
	if len(cmds) != 3*5 {
		t.Errorf("fill outline has %d commands, want 15", len(cmds))
	}
}
