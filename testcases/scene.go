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

import "seehuhn.de/go/pixdraw/scenefile"

var sceneCases = []TestCase{
	{
		Name: "rotate",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), red, 20, 26, 44, 38),
			transform(scenefile.TransformStep{Rotate: 45}),
		),
	},
	{
		Name: "scale_about_ref",
		Doc: scene(64, 64,
			polygon(pen(ink, 1, ""), blue, pt(8, 8), pt(20, 8), pt(8, 20)),
			transform(scenefile.TransformStep{Ref: &scenefile.Point{8, 8}, Scale: []float64{3, 2}}),
		),
	},
	{
		Name: "mirror",
		Doc: scene(64, 64,
			line(8, 8, 28, 40, pen(ink, 3, "")),
			arc(20, 32, 10, 270, 90, pen(red, 1, "")),
			transform(scenefile.TransformStep{Ref: &scenefile.Point{32, 32}, Scale: []float64{-1, 1}}),
		),
	},
	{
		Name: "select",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), green, 4, 4, 16, 16),
			rectangle(pen(ink, 1, ""), orange, 40, 40, 52, 52),
			transform(scenefile.TransformStep{
				Select:    &scenefile.Window{0, 0, 20, 20},
				Translate: [2]float64{20, 0},
			}),
		),
	},
	{
		Name: "grow",
		Doc: scene(32, 32,
			line(0, 0, 60, 40, pen(ink, 1, "")),
			resize(64, 48),
		),
	},
	{
		Name: "shrink",
		Doc: scene(64, 64,
			arc(32, 32, 20, 0, 360, pen(blue, 3, "")),
			resize(40, 40),
		),
	},
	{
		Name: "fill_then_transform",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), "", 8, 8, 24, 24),
			flood(16, 16, red),
			transform(scenefile.TransformStep{Translate: [2]float64{30, 30}}),
		),
	},
}
