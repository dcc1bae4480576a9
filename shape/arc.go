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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
)

// Arc is a circular arc, running clockwise from StartAngle to EndAngle.
// Angles are in degrees, see [pixdraw.NewAngleRange].
type Arc struct {
	Center     image.Point
	Radius     int
	StartAngle float64
	EndAngle   float64
	Stroke
}

// Draw implements the [Shape] interface.
func (a *Arc) Draw(c *pixdraw.Canvas) {
	c.DrawArc(a.Center, a.Radius, a.StartAngle, a.EndAngle, a.Color, a.Pen)
}

// Contains implements the [Shape] interface.
// A point hits the arc if it is within two pixels of the circle and its
// direction from the center lies inside the angle range.
func (a *Arc) Contains(p image.Point) bool {
	if a.Radius <= 0 {
		return false
	}
	dist := toVec(p).Sub(toVec(a.Center)).Length()
	if math.Abs(dist-float64(a.Radius)) > hitTolerance {
		return false
	}
	rng := pixdraw.NewAngleRange(a.StartAngle, a.EndAngle)
	return rng.Contains(pixdraw.PointAngle(a.Center, p))
}

// Centroid implements the [Shape] interface.
// The centroid of an arc is the center of its circle.
func (a *Arc) Centroid() vec.Vec2 {
	return toVec(a.Center)
}

// Transform implements the [Shape] interface.
//
// The center is mapped through m.  The radius is scaled by the mean of
// the two axis scale factors and both angles are rotated by the rotation
// part of m, so that a sheared or unevenly scaled arc stays circular.
// If m mirrors the plane, the angle range is reflected and its end points
// swap roles, so that the arc still runs clockwise.
func (a *Arc) Transform(m matrix.Matrix) {
	a.Center = apply(m, a.Center)

	scale := (math.Hypot(m[0], m[1]) + math.Hypot(m[2], m[3])) / 2
	a.Radius = int(math.Round(float64(a.Radius) * scale))

	rot := math.Atan2(m[1], m[0]) * 180 / math.Pi
	if m[0]*m[3]-m[1]*m[2] < 0 {
		a.StartAngle, a.EndAngle = rot-a.EndAngle, rot-a.StartAngle
	} else {
		a.StartAngle += rot
		a.EndAngle += rot
	}
}

// Outline implements the [Shape] interface.
// The arc is approximated by straight segments spanning at most 5°.
// Full circles are returned as closed paths.
func (a *Arc) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if a.Radius <= 0 {
			return
		}
		rng := pixdraw.NewAngleRange(a.StartAngle, a.EndAngle)
		n := max(int(math.Ceil(rng.Sweep/5)), 1)
		c := toVec(a.Center)
		r := float64(a.Radius)
		for i := 0; i <= n; i++ {
			if i == n && rng.Full() {
				yield(path.CmdClose, nil)
				return
			}
			phi := (rng.Start + rng.Sweep*float64(i)/float64(n)) * math.Pi / 180
			p := c.Add(vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)})
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}
