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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// AboutPoint returns the affine map which scales by (sx, sy), then
// rotates by angle degrees and finally translates by (tx, ty), where
// scaling and rotation keep the point ref fixed.
//
// On a canvas with the y axis pointing down, positive angles rotate
// clockwise.
func AboutPoint(ref vec.Vec2, sx, sy, angle, tx, ty float64) matrix.Matrix {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	a := cos * sx
	b := sin * sx
	c := -sin * sy
	d := cos * sy
	return matrix.Matrix{
		a, b,
		c, d,
		ref.X + tx - (a*ref.X + c*ref.Y),
		ref.Y + ty - (b*ref.X + d*ref.Y),
	}
}
