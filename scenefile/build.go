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

package scenefile

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/shape"
)

var white = color.RGBA{255, 255, 255, 255}

var errNoOp = errors.New("no operation given")

// Kind returns the name of the operation of the step, or "" if no
// operation is set.  An error is returned if more than one is set.
func (s *Step) Kind() (string, error) {
	var kinds []string
	if s.Line != nil {
		kinds = append(kinds, "line")
	}
	if s.Arc != nil {
		kinds = append(kinds, "arc")
	}
	if s.Polygon != nil {
		kinds = append(kinds, "polygon")
	}
	if s.Flood != nil {
		kinds = append(kinds, "flood")
	}
	if s.Clip != nil {
		kinds = append(kinds, "clip")
	}
	if s.Transform != nil {
		kinds = append(kinds, "transform")
	}
	if s.Resize != nil {
		kinds = append(kinds, "resize")
	}
	switch len(kinds) {
	case 0:
		return "", errNoOp
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("more than one operation given: %v", kinds)
	}
}

// Build replays the steps of doc and returns the final canvas together
// with the scene which produced it.
//
// Shapes are collected in the scene and the canvas is rendered from the
// scene at the end.  Flood fills render the scene as it is at the time of
// the fill, so that they see all previous steps.
func Build(doc *Document) (*pixdraw.Canvas, *shape.Scene, error) {
	if doc.Width < 0 || doc.Height < 0 {
		return nil, nil, fmt.Errorf("invalid canvas size %dx%d", doc.Width, doc.Height)
	}
	bg, err := parseColorDefault(doc.Background, white)
	if err != nil {
		return nil, nil, fmt.Errorf("background: %w", err)
	}

	b := &builder{
		canvas: pixdraw.NewCanvas(doc.Width, doc.Height, bg),
		scene:  shape.NewScene(bg),
	}
	for i := range doc.Steps {
		if err := b.apply(&doc.Steps[i]); err != nil {
			return nil, nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	b.scene.Render(b.canvas)

	pixdraw.Logger().Debug("scene built",
		"name", doc.Name,
		"steps", len(doc.Steps),
		"shapes", b.scene.Len())
	return b.canvas, b.scene, nil
}

type builder struct {
	canvas *pixdraw.Canvas
	scene  *shape.Scene
}

func (b *builder) apply(s *Step) error {
	kind, err := s.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case "line":
		st, err := s.Line.stroke()
		if err != nil {
			return err
		}
		b.scene.Add(&shape.Line{
			Start:  toPoint(s.Line.From),
			End:    toPoint(s.Line.To),
			Stroke: st,
		})

	case "arc":
		st, err := s.Arc.stroke()
		if err != nil {
			return err
		}
		if s.Arc.Radius <= 0 {
			pixdraw.Logger().Warn("arc with non-positive radius", "radius", s.Arc.Radius)
		}
		b.scene.Add(&shape.Arc{
			Center:     toPoint(s.Arc.Center),
			Radius:     s.Arc.Radius,
			StartAngle: s.Arc.Start,
			EndAngle:   s.Arc.End,
			Stroke:     st,
		})

	case "polygon":
		st, err := s.Polygon.stroke()
		if err != nil {
			return err
		}
		p := &shape.Polygon{Stroke: st}
		for _, v := range s.Polygon.Points {
			p.Vertices = append(p.Vertices, toPoint(v))
		}
		if s.Polygon.Fill != "" {
			p.FillColor, err = ParseColor(s.Polygon.Fill)
			if err != nil {
				return fmt.Errorf("fill: %w", err)
			}
			p.Filled = true
		}
		if len(p.Vertices) < 3 {
			pixdraw.Logger().Warn("polygon with fewer than three vertices",
				"vertices", len(p.Vertices))
		}
		b.scene.Add(p)

	case "flood":
		col, err := ParseColor(s.Flood.Color)
		if err != nil {
			return err
		}
		seed := toPoint(s.Flood.Seed)
		if _, ok := b.scene.FloodFill(b.canvas, seed, col); !ok {
			pixdraw.Logger().Warn("flood fill had no effect", "seed", seed)
		}

	case "clip":
		win, err := toRect(s.Clip.Window)
		if err != nil {
			return err
		}
		b.scene.Clip(win)

	case "transform":
		return b.transform(s.Transform)

	case "resize":
		r := s.Resize
		if r.Width < 0 || r.Height < 0 {
			return fmt.Errorf("invalid canvas size %dx%d", r.Width, r.Height)
		}
		b.canvas.Resize(r.Width, r.Height, b.scene.Background)
	}
	return nil
}

func (b *builder) transform(t *TransformStep) error {
	var ids []shape.ID
	if t.Select != nil {
		win, err := toRect(*t.Select)
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		ids = b.scene.SelectRect(win)
	} else {
		for id := range b.scene.All() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		pixdraw.Logger().Warn("transform selects no shapes")
		return nil
	}

	var sx, sy float64
	switch len(t.Scale) {
	case 0:
		sx, sy = 1, 1
	case 1:
		sx, sy = t.Scale[0], t.Scale[0]
	case 2:
		sx, sy = t.Scale[0], t.Scale[1]
	default:
		return fmt.Errorf("scale needs one or two factors, got %d", len(t.Scale))
	}

	ref := b.scene.Centroid(ids)
	if t.Ref != nil {
		ref = vec.Vec2{X: float64(t.Ref[0]), Y: float64(t.Ref[1])}
	}

	m := shape.AboutPoint(ref, sx, sy, t.Rotate, t.Translate[0], t.Translate[1])
	b.scene.Transform(ids, m)
	return nil
}

func toPoint(p Point) image.Point {
	return image.Pt(p[0], p[1])
}

func toRect(w Window) (rect.Rect, error) {
	if w[0] > w[2] || w[1] > w[3] {
		return rect.Rect{}, fmt.Errorf("invalid window %v", w)
	}
	return rect.Rect{
		LLx: float64(w[0]),
		LLy: float64(w[1]),
		URx: float64(w[2]),
		URy: float64(w[3]),
	}, nil
}
