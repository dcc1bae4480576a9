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

// Package scenefile reads and writes scene documents.
//
// A scene document describes a canvas and an ordered list of drawing
// steps.  Documents are normally written in YAML; TOML and JSON use the
// same field names.  [Build] replays a document into a [shape.Scene] and
// renders the result.
//
// A minimal document looks as follows:
//
//	width: 64
//	height: 48
//	background: "#ffffff"
//	steps:
//	  - line: {from: [2, 2], to: [60, 40], color: "#ff0000", width: 3, style: dash}
//	  - flood: {seed: [40, 10], color: "#00ff00"}
package scenefile

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is a complete scene description.
type Document struct {
	Name       string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Width      int    `yaml:"width" json:"width" toml:"width"`
	Height     int    `yaml:"height" json:"height" toml:"height"`
	Background string `yaml:"background,omitempty" json:"background,omitempty" toml:"background,omitempty"`
	Steps      []Step `yaml:"steps" json:"steps" toml:"steps"`
}

// Point is a pixel position, given as [x, y].
type Point [2]int

// Window is an axis-aligned rectangle, given as [x0, y0, x1, y1].
// Both corners belong to the window.
type Window [4]int

// Step is a single drawing operation.  Exactly one of the fields must be
// set.
type Step struct {
	Line      *LineStep      `yaml:"line,omitempty" json:"line,omitempty" toml:"line,omitempty"`
	Arc       *ArcStep       `yaml:"arc,omitempty" json:"arc,omitempty" toml:"arc,omitempty"`
	Polygon   *PolygonStep   `yaml:"polygon,omitempty" json:"polygon,omitempty" toml:"polygon,omitempty"`
	Flood     *FloodStep     `yaml:"flood,omitempty" json:"flood,omitempty" toml:"flood,omitempty"`
	Clip      *ClipStep      `yaml:"clip,omitempty" json:"clip,omitempty" toml:"clip,omitempty"`
	Transform *TransformStep `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
	Resize    *ResizeStep    `yaml:"resize,omitempty" json:"resize,omitempty" toml:"resize,omitempty"`
}

// StrokeSpec holds the stroke attributes of lines, arcs and polygon
// outlines.  Empty fields take their defaults: black, width 1, solid,
// offset 0 and flat caps.
type StrokeSpec struct {
	Color  string `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
	Style  string `yaml:"style,omitempty" json:"style,omitempty" toml:"style,omitempty"`
	Offset int    `yaml:"offset,omitempty" json:"offset,omitempty" toml:"offset,omitempty"`
	Cap    string `yaml:"cap,omitempty" json:"cap,omitempty" toml:"cap,omitempty"`
}

// LineStep adds a line segment.
type LineStep struct {
	From       Point `yaml:"from" json:"from" toml:"from"`
	To         Point `yaml:"to" json:"to" toml:"to"`
	StrokeSpec `yaml:",inline"`
}

// ArcStep adds a circular arc, running clockwise from Start to End
// degrees.
type ArcStep struct {
	Center     Point   `yaml:"center" json:"center" toml:"center"`
	Radius     int     `yaml:"radius" json:"radius" toml:"radius"`
	Start      float64 `yaml:"start" json:"start" toml:"start"`
	End        float64 `yaml:"end" json:"end" toml:"end"`
	StrokeSpec `yaml:",inline"`
}

// PolygonStep adds a closed polygon.  If Fill is set, the interior is
// filled with this color.
type PolygonStep struct {
	Points     []Point `yaml:"points" json:"points" toml:"points"`
	Fill       string  `yaml:"fill,omitempty" json:"fill,omitempty" toml:"fill,omitempty"`
	StrokeSpec `yaml:",inline"`
}

// FloodStep flood fills the region around Seed, as it appears after all
// previous steps.
type FloodStep struct {
	Seed  Point  `yaml:"seed" json:"seed" toml:"seed"`
	Color string `yaml:"color" json:"color" toml:"color"`
}

// ClipStep clips all lines and polygons to a window.
type ClipStep struct {
	Window Window `yaml:"window" json:"window" toml:"window"`
}

// TransformStep scales, rotates and translates shapes.
//
// The shapes whose centroid lies inside Select are transformed; if Select
// is omitted, all shapes are.  Scaling and rotation keep Ref fixed, which
// defaults to the mean centroid of the selected shapes.  Scale holds
// either a single factor or separate x and y factors, and defaults to 1.
// Rotate is in degrees, clockwise.
type TransformStep struct {
	Select    *Window    `yaml:"select,omitempty" json:"select,omitempty" toml:"select,omitempty"`
	Ref       *Point     `yaml:"ref,omitempty" json:"ref,omitempty" toml:"ref,omitempty"`
	Scale     []float64  `yaml:"scale,omitempty" json:"scale,omitempty" toml:"scale,omitempty"`
	Rotate    float64    `yaml:"rotate,omitempty" json:"rotate,omitempty" toml:"rotate,omitempty"`
	Translate [2]float64 `yaml:"translate,omitempty" json:"translate,omitempty" toml:"translate,omitempty"`
}

// ResizeStep changes the canvas size.  The scene is kept.
type ResizeStep struct {
	Width  int `yaml:"width" json:"width" toml:"width"`
	Height int `yaml:"height" json:"height" toml:"height"`
}

// Load reads a YAML scene document.  Unknown fields are an error.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return doc, nil
}

// LoadTOML reads a TOML scene document.  Unknown fields are an error.
func LoadTOML(r io.Reader) (*Document, error) {
	dec := toml.NewDecoder(r).DisallowUnknownFields()

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return doc, nil
}

// Save writes doc to w in YAML format.
func Save(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return enc.Close()
}
