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

var polygonCases = []TestCase{
	{
		Name: "triangle_filled",
		Doc:  scene(64, 64, polygon(pen(ink, 1, ""), red, pt(10, 50), pt(32, 10), pt(54, 50))),
	},
	{
		Name: "square_outline",
		Doc:  scene(64, 64, rectangle(pen(blue, 3, ""), "", 12, 12, 52, 52)),
	},
	{
		Name: "square_filled",
		Doc:  scene(64, 64, rectangle(pen(ink, 1, ""), green, 12, 12, 52, 52)),
	},
	{
		Name: "concave",
		Doc: scene(64, 64, polygon(pen(ink, 1, ""), orange,
			pt(8, 8), pt(24, 8), pt(24, 40), pt(40, 40), pt(40, 8), pt(56, 8),
			pt(56, 56), pt(8, 56))),
	},
	{
		Name: "star",
		Doc:  scene(64, 64, polygon(pen(ink, 1, ""), red, starPoints(32, 33, 26)...)),
	},
	{
		Name: "sliver",
		Doc:  scene(64, 64, polygon(pen(ink, 1, ""), blue, pt(4, 30), pt(60, 32), pt(4, 34))),
	},
	{
		Name: "overlapping",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), red, 6, 6, 40, 40),
			rectangle(pen(ink, 1, ""), blue, 24, 24, 58, 58),
		),
	},
	{
		Name: "partly_outside",
		Doc:  scene(64, 64, polygon(pen(ink, 1, ""), green, pt(-20, 10), pt(50, -10), pt(80, 70))),
	},
}
