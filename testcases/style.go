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

var styleCases = []TestCase{
	{
		Name: "dash",
		Doc:  scene(64, 64, line(4, 32, 60, 32, pen(ink, 1, "dash"))),
	},
	{
		Name: "dot",
		Doc:  scene(64, 64, line(4, 32, 60, 32, pen(ink, 1, "dot"))),
	},
	{
		Name: "dashdot",
		Doc:  scene(64, 64, line(4, 32, 60, 32, pen(ink, 1, "dashdot"))),
	},
	{
		Name: "wide_dash",
		Doc:  scene(96, 32, line(4, 16, 92, 16, pen(red, 4, "dash"))),
	},
	{
		Name: "offsets",
		Doc: scene(64, 64,
			line(4, 16, 60, 16, pen(ink, 1, "dash")),
			line(4, 32, 60, 32, scenefile.StrokeSpec{Color: ink, Width: 1, Style: "dash", Offset: 3}),
			line(4, 48, 60, 48, scenefile.StrokeSpec{Color: ink, Width: 1, Style: "dash", Offset: -2}),
		),
	},
	{
		Name: "dashed_diagonal",
		Doc:  scene(64, 64, line(4, 4, 60, 60, pen(blue, 2, "dashdot"))),
	},
	{
		Name: "dotted_circle",
		Doc:  scene(64, 64, arc(32, 32, 24, 0, 360, pen(ink, 1, "dot"))),
	},
	{
		Name: "dashed_polygon",
		Doc:  scene(64, 64, rectangle(pen(green, 2, "dash"), "", 10, 10, 54, 54)),
	},
	{
		Name: "caps",
		Doc: scene(64, 64,
			line(12, 16, 52, 16, scenefile.StrokeSpec{Color: ink, Width: 6, Cap: "flat"}),
			line(12, 32, 52, 32, scenefile.StrokeSpec{Color: ink, Width: 6, Cap: "square"}),
			line(12, 48, 52, 48, scenefile.StrokeSpec{Color: ink, Width: 6, Cap: "round"}),
		),
	},
}
