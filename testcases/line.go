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

var lineCases = []TestCase{
	{
		Name: "horizontal",
		Doc:  scene(64, 64, line(8, 32, 56, 32, pen(ink, 1, ""))),
	},
	{
		Name: "vertical",
		Doc:  scene(64, 64, line(32, 56, 32, 8, pen(ink, 1, ""))),
	},
	{
		Name: "diagonal",
		Doc:  scene(64, 64, line(8, 8, 56, 56, pen(ink, 1, ""))),
	},
	{
		Name: "shallow",
		Doc:  scene(64, 64, line(4, 40, 60, 24, pen(red, 1, ""))),
	},
	{
		Name: "steep",
		Doc:  scene(64, 64, line(24, 60, 40, 4, pen(blue, 1, ""))),
	},
	{
		Name: "wide",
		Doc:  scene(64, 64, line(10, 50, 54, 14, pen(ink, 7, ""))),
	},
	{
		Name: "single_point",
		Doc:  scene(16, 16, line(8, 8, 8, 8, pen(ink, 1, ""))),
	},
	{
		Name: "fan",
		Doc: scene(64, 64,
			line(32, 32, 62, 32, pen(ink, 1, "")),
			line(32, 32, 62, 50, pen(red, 1, "")),
			line(32, 32, 50, 62, pen(blue, 1, "")),
			line(32, 32, 32, 62, pen(green, 1, "")),
			line(32, 32, 2, 50, pen(orange, 1, "")),
			line(32, 32, 2, 2, pen(ink, 1, "")),
			line(32, 32, 50, 2, pen(red, 1, "")),
		),
	},
	{
		Name: "outside_canvas",
		Doc:  scene(64, 64, line(-20, 10, 90, 50, pen(ink, 3, ""))),
	},
}
