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
	"image/color"
	"iter"
	"math"
)

// AngleRange is a clockwise range of directions, in degrees.
// Direction 0 points along +x and angles grow clockwise on a canvas whose
// y axis points down.
type AngleRange struct {
	// Start is the first direction of the range, in [0, 360).
	Start float64

	// Sweep is the angular extent of the range, in [0, 360].
	// A sweep of 360 covers all directions.
	Sweep float64
}

// angleEps absorbs rounding in the degree conversion of point angles, so
// that pixels exactly on an axis are not lost at range boundaries.
const angleEps = 1e-9

// NewAngleRange returns the range which runs clockwise from startDeg to
// endDeg.  If startDeg > endDeg the range wraps through 0°: endDeg is
// raised by whole turns until it is no smaller than startDeg.  Ranges
// spanning 360° or more cover the full circle.
func NewAngleRange(startDeg, endDeg float64) AngleRange {
	if startDeg > endDeg {
		turns := math.Ceil((startDeg - endDeg) / 360)
		endDeg += 360 * turns
	}
	sweep := min(endDeg-startDeg, 360)
	return AngleRange{
		Start: normalizeDegrees(startDeg),
		Sweep: sweep,
	}
}

// Full reports whether the range covers all directions.
func (r AngleRange) Full() bool {
	return r.Sweep >= 360
}

// Contains reports whether the direction deg lies in the range.
// Both end directions are included.
func (r AngleRange) Contains(deg float64) bool {
	if r.Full() {
		return true
	}
	a := normalizeDegrees(deg)
	lo := r.Start - angleEps
	hi := r.Start + r.Sweep + angleEps
	for _, v := range [3]float64{a, a + 360, a - 360} {
		if v >= lo && v <= hi {
			return true
		}
	}
	return false
}

// normalizeDegrees maps an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// PointAngle returns the direction of p as seen from center, in degrees
// in [0, 360).
func PointAngle(center, p image.Point) float64 {
	rad := math.Atan2(float64(p.Y-center.Y), float64(p.X-center.X))
	return normalizeDegrees(rad * 180 / math.Pi)
}

// ArcPixels returns the pixels of the circle of the given radius around
// center which lie in the clockwise range from startDeg to endDeg (see
// [NewAngleRange]).  The circle is traced with the integer midpoint
// algorithm, one octant at a time: for each step of the first octant the
// eight mirror images are tested against the angle range and the accepted
// ones are yielded.  Nothing is yielded for radius <= 0.
func ArcPixels(center image.Point, radius int, startDeg, endDeg float64) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if radius <= 0 {
			return
		}
		rng := NewAngleRange(startDeg, endDeg)
		cx, cy := center.X, center.Y

		x := 0
		y := radius
		d := 1 - radius
		for x <= y {
			octants := [8]image.Point{
				image.Pt(cx+x, cy+y), image.Pt(cx-x, cy+y),
				image.Pt(cx+x, cy-y), image.Pt(cx-x, cy-y),
				image.Pt(cx+y, cy+x), image.Pt(cx-y, cy+x),
				image.Pt(cx+y, cy-x), image.Pt(cx-y, cy-x),
			}
			for _, p := range octants {
				if !rng.Contains(PointAngle(center, p)) {
					continue
				}
				if !yield(p) {
					return
				}
			}

			if d < 0 {
				d += 2*x + 3
			} else {
				d += 2*(x-y) + 5
				y--
			}
			x++
		}
	}
}

// DrawArc strokes a circular arc.  See [ArcPixels] for the meaning of the
// arguments.  A single step counter runs over all pixels of the visible
// arc, so the dash rhythm follows the drawn pixels rather than the full
// circle.
func (c *Canvas) DrawArc(center image.Point, radius int, startDeg, endDeg float64, col color.RGBA, pen Pen) {
	step := 0
	for p := range ArcPixels(center, radius, startDeg, endDeg) {
		c.plot(p.X, p.Y, col, step, pen)
		step++
	}
}
