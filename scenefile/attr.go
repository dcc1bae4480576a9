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
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/shape"
)

// ParseColor converts a hex color like "#ff8000" or "#f80" into an opaque
// RGBA color.  The leading "#" may be omitted.
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", strings.TrimPrefix(s, "#"))
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", strings.TrimPrefix(s, "#"))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor returns the hex representation of col, ignoring alpha.
func FormatColor(col color.RGBA) string {
	c := colorful.Color{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
	}
	return c.Hex()
}

// parseColorDefault is like ParseColor, but returns def for the empty
// string.
func parseColorDefault(s string, def color.RGBA) (color.RGBA, error) {
	if s == "" {
		return def, nil
	}
	return ParseColor(s)
}

// ParseCap converts a line cap name into a line cap style.
// The names are "flat" (or "butt"), "square" and "round".  The empty
// string selects flat caps.
func ParseCap(name string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(name) {
	case "", "flat", "butt":
		return graphics.LineCapButt, nil
	case "square":
		return graphics.LineCapSquare, nil
	case "round":
		return graphics.LineCapRound, nil
	}
	return graphics.LineCapButt, fmt.Errorf("unknown line cap %q", name)
}

var black = color.RGBA{A: 255}

// stroke converts the textual stroke attributes into a [shape.Stroke].
func (s StrokeSpec) stroke() (shape.Stroke, error) {
	col, err := parseColorDefault(s.Color, black)
	if err != nil {
		return shape.Stroke{}, err
	}
	style, err := pixdraw.ParseLineStyle(s.Style)
	if err != nil {
		return shape.Stroke{}, err
	}
	lineCap, err := ParseCap(s.Cap)
	if err != nil {
		return shape.Stroke{}, err
	}
	return shape.Stroke{
		Color: col,
		Pen:   pixdraw.NewPen(s.Width, style, s.Offset),
		Cap:   lineCap,
	}, nil
}
