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

// Package shape keeps drawn primitives as editable objects.
//
// A [Scene] stores shapes in insertion order and addresses them by stable
// integer IDs.  Rendering a scene replays all shapes onto a
// [pixdraw.Canvas].  Shapes can be hit-tested, selected by centroid,
// transformed with an affine matrix and clipped against a window.
package shape

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pixdraw"
)

// Shape is a primitive which can be drawn onto a canvas.
type Shape interface {
	// Draw renders the shape onto c.
	Draw(c *pixdraw.Canvas)

	// Contains reports whether a click at p selects the shape.
	Contains(p image.Point) bool

	// Centroid returns the reference point used for selection and as the
	// default center of transformations.
	Centroid() vec.Vec2

	// Transform applies m to the geometry of the shape.  Coordinates are
	// rounded to whole pixels afterwards.
	Transform(m matrix.Matrix)

	// Outline returns the geometry of the shape as a vector path.
	Outline() path.Path
}

// Clipper is implemented by shapes which can be clipped to a window.
type Clipper interface {
	// Clip restricts the shape to win.  The return value is false if
	// nothing of the shape is left.
	Clip(win rect.Rect) bool
}

// Stroke holds the attributes used to stroke the outline of a shape.
type Stroke struct {
	Color color.RGBA
	Pen   pixdraw.Pen

	// Cap is only used for vector output.  On the canvas every stroke
	// point is a disk.
	Cap graphics.LineCapStyle
}

// hitTolerance is the maximal distance, in pixels, between a click and a
// stroked curve for the curve to be selected.
const hitTolerance = 2

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// apply maps p through m and rounds the result to the nearest pixel.
func apply(m matrix.Matrix, p image.Point) image.Point {
	x, y := float64(p.X), float64(p.Y)
	return roundVec(vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	})
}

func roundVec(v vec.Vec2) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}
