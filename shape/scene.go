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
	"iter"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
)

// ID identifies a shape within a [Scene].
type ID int

// Scene is an ordered collection of shapes.
//
// Shapes are stored in an arena indexed by [ID].  Removing a shape leaves
// a hole, so that the IDs of the remaining shapes stay valid.  IDs are
// only reused after [Scene.Clear].
type Scene struct {
	// Background is the color the canvas is cleared to by [Scene.Render].
	Background color.RGBA

	shapes []Shape
	n      int
}

// NewScene returns an empty scene.
func NewScene(bg color.RGBA) *Scene {
	return &Scene{Background: bg}
}

// Add appends s to the scene and returns its ID.
// Shapes added later are drawn on top of earlier ones.
func (sc *Scene) Add(s Shape) ID {
	sc.shapes = append(sc.shapes, s)
	sc.n++
	return ID(len(sc.shapes) - 1)
}

// Get returns the shape with the given ID, or nil if there is none.
func (sc *Scene) Get(id ID) Shape {
	if id < 0 || int(id) >= len(sc.shapes) {
		return nil
	}
	return sc.shapes[id]
}

// Remove deletes the shape with the given ID.
// The return value reports whether a shape was removed.
func (sc *Scene) Remove(id ID) bool {
	if sc.Get(id) == nil {
		return false
	}
	sc.shapes[id] = nil
	sc.n--
	return true
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return sc.n
}

// All iterates over the shapes in drawing order.
func (sc *Scene) All() iter.Seq2[ID, Shape] {
	return func(yield func(ID, Shape) bool) {
		for i, s := range sc.shapes {
			if s == nil {
				continue
			}
			if !yield(ID(i), s) {
				return
			}
		}
	}
}

// Clear removes all shapes.
func (sc *Scene) Clear() {
	sc.shapes = nil
	sc.n = 0
}

// Render clears c to the background color and draws all shapes.
func (sc *Scene) Render(c *pixdraw.Canvas) {
	c.Fill(sc.Background)
	for _, s := range sc.All() {
		s.Draw(c)
	}
}

// HitTest returns the topmost shape which contains p.
func (sc *Scene) HitTest(p image.Point) (ID, bool) {
	for i := len(sc.shapes) - 1; i >= 0; i-- {
		if s := sc.shapes[i]; s != nil && s.Contains(p) {
			return ID(i), true
		}
	}
	return -1, false
}

// SelectRect returns the IDs of all shapes whose centroid lies inside
// win.  The window includes its boundary.
func (sc *Scene) SelectRect(win rect.Rect) []ID {
	var ids []ID
	for id, s := range sc.All() {
		c := s.Centroid()
		if c.X >= win.LLx && c.X <= win.URx && c.Y >= win.LLy && c.Y <= win.URy {
			ids = append(ids, id)
		}
	}
	return ids
}

// Centroid returns the mean of the centroids of the given shapes.
// Unknown IDs are ignored.
func (sc *Scene) Centroid(ids []ID) vec.Vec2 {
	var sum vec.Vec2
	n := 0
	for _, id := range ids {
		if s := sc.Get(id); s != nil {
			sum = sum.Add(s.Centroid())
			n++
		}
	}
	if n == 0 {
		return vec.Vec2{}
	}
	return sum.Mul(1 / float64(n))
}

// Transform applies m to the given shapes.  Unknown IDs are ignored.
func (sc *Scene) Transform(ids []ID, m matrix.Matrix) {
	for _, id := range ids {
		if s := sc.Get(id); s != nil {
			s.Transform(m)
		}
	}
}

// FloodFill renders the scene onto c, flood fills the region around seed
// with col and adds the filled region to the scene as a [Fill] shape.
// The second return value is false if nothing was filled.
func (sc *Scene) FloodFill(c *pixdraw.Canvas, seed image.Point, col color.RGBA) (ID, bool) {
	sc.Render(c)
	region := c.FloodFill(seed, col)
	if region == nil {
		return -1, false
	}
	return sc.Add(&Fill{Region: region}), true
}

// Clip clips all lines and polygons of the scene to win and removes the
// shapes which end up empty.  Arcs and fills are left unchanged.
// The IDs of the removed shapes are returned.
func (sc *Scene) Clip(win rect.Rect) []ID {
	var removed []ID
	for id, s := range sc.All() {
		cl, ok := s.(Clipper)
		if !ok {
			continue
		}
		if !cl.Clip(win) {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		sc.Remove(id)
	}
	pixdraw.Logger().Debug("clip scene",
		"window", win,
		"removed", len(removed),
		"remaining", sc.n)
	return removed
}
