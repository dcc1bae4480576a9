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

var clipCases = []TestCase{
	{
		Name: "segments",
		Doc: scene(64, 64,
			line(0, 32, 63, 32, pen(ink, 1, "")),
			line(32, 0, 32, 63, pen(red, 1, "")),
			line(0, 0, 63, 63, pen(blue, 1, "")),
			line(0, 63, 63, 0, pen(green, 1, "")),
			line(2, 2, 10, 2, pen(orange, 1, "")),
			clip(16, 16, 48, 48),
		),
	},
	{
		Name: "crossing_one_edge",
		Doc: scene(64, 64,
			line(24, 24, 63, 40, pen(ink, 3, "")),
			clip(8, 8, 48, 48),
		),
	},
	{
		Name: "polygon_square",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), red, 4, 4, 40, 40),
			clip(20, 20, 60, 60),
		),
	},
	{
		Name: "polygon_triangle",
		Doc: scene(64, 64,
			polygon(pen(ink, 1, ""), blue, pt(32, 0), pt(63, 63), pt(0, 63)),
			clip(8, 16, 56, 48),
		),
	},
	{
		Name: "star",
		Doc: scene(64, 64,
			polygon(pen(ink, 1, ""), orange, starPoints(32, 33, 30)...),
			clip(12, 12, 52, 52),
		),
	},
	{
		Name: "mixed",
		Doc: scene(64, 64,
			arc(32, 32, 28, 0, 360, pen(green, 1, "")),
			rectangle(pen(ink, 1, ""), red, 40, 40, 62, 62),
			line(0, 20, 63, 20, pen(blue, 1, "")),
			rectangle(pen(ink, 1, ""), blue, 0, 0, 6, 6),
			clip(10, 10, 54, 54),
		),
	},
}
