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

package testcases

import (
	"math"

	"seehuhn.de/go/pixdraw/scenefile"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name string             // lowercase a-z, 0-9 and _ only
	Doc  scenefile.Document // the scene to draw
}

// Colors used by the test cases.
const (
	ink    = "#000000"
	paper  = "#ffffff"
	red    = "#e41a1c"
	blue   = "#377eb8"
	green  = "#4daf4a"
	orange = "#ff7f00"
)

// scene builds a document with a white background.
func scene(width, height int, steps ...scenefile.Step) scenefile.Document {
	return scenefile.Document{
		Width:      width,
		Height:     height,
		Background: paper,
		Steps:      steps,
	}
}

// pen returns stroke attributes with offset zero and flat caps.
func pen(color string, width int, style string) scenefile.StrokeSpec {
	return scenefile.StrokeSpec{Color: color, Width: width, Style: style}
}

func pt(x, y int) scenefile.Point {
	return scenefile.Point{x, y}
}

func line(x0, y0, x1, y1 int, s scenefile.StrokeSpec) scenefile.Step {
	return scenefile.Step{Line: &scenefile.LineStep{
		From:       pt(x0, y0),
		To:         pt(x1, y1),
		StrokeSpec: s,
	}}
}

func arc(cx, cy, r int, start, end float64, s scenefile.StrokeSpec) scenefile.Step {
	return scenefile.Step{Arc: &scenefile.ArcStep{
		Center:     pt(cx, cy),
		Radius:     r,
		Start:      start,
		End:        end,
		StrokeSpec: s,
	}}
}

// polygon adds a polygon.  An empty fill color leaves the interior
// unpainted.
func polygon(s scenefile.StrokeSpec, fill string, pts ...scenefile.Point) scenefile.Step {
	return scenefile.Step{Polygon: &scenefile.PolygonStep{
		Points:     pts,
		Fill:       fill,
		StrokeSpec: s,
	}}
}

func rectangle(s scenefile.StrokeSpec, fill string, x0, y0, x1, y1 int) scenefile.Step {
	return polygon(s, fill, pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}

func flood(x, y int, color string) scenefile.Step {
	return scenefile.Step{Flood: &scenefile.FloodStep{Seed: pt(x, y), Color: color}}
}

func clip(x0, y0, x1, y1 int) scenefile.Step {
	return scenefile.Step{Clip: &scenefile.ClipStep{Window: scenefile.Window{x0, y0, x1, y1}}}
}

func resize(width, height int) scenefile.Step {
	return scenefile.Step{Resize: &scenefile.ResizeStep{Width: width, Height: height}}
}

func transform(t scenefile.TransformStep) scenefile.Step {
	return scenefile.Step{Transform: &t}
}

// starPoints returns the vertices of a five-pointed star, in the order
// in which the outline visits them.  The outline crosses itself.
func starPoints(cx, cy, r float64) []scenefile.Point {
	var corners [5]scenefile.Point
	for i := range corners {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))))
	}
	order := []int{0, 2, 4, 1, 3}
	pts := make([]scenefile.Point, len(order))
	for i, k := range order {
		pts[i] = corners[k]
	}
	return pts
}
