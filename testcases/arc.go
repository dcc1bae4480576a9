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

var arcCases = []TestCase{
	{
		Name: "full_circle",
		Doc:  scene(64, 64, arc(32, 32, 24, 0, 360, pen(ink, 1, ""))),
	},
	{
		Name: "quarter",
		Doc:  scene(64, 64, arc(16, 16, 40, 0, 90, pen(ink, 1, ""))),
	},
	{
		Name: "half_wide",
		Doc:  scene(64, 64, arc(32, 24, 20, 0, 180, pen(blue, 6, ""))),
	},
	{
		Name: "wrap_through_zero",
		Doc:  scene(64, 64, arc(32, 32, 24, 300, 60, pen(red, 3, ""))),
	},
	{
		Name: "negative_start",
		Doc:  scene(64, 64, arc(32, 32, 24, -90, 90, pen(ink, 3, ""))),
	},
	{
		Name: "small_radius",
		Doc:  scene(16, 16, arc(8, 8, 2, 0, 360, pen(ink, 1, ""))),
	},
	{
		Name: "concentric",
		Doc: scene(64, 64,
			arc(32, 32, 6, 0, 360, pen(ink, 1, "")),
			arc(32, 32, 12, 45, 315, pen(red, 1, "")),
			arc(32, 32, 18, 90, 270, pen(blue, 1, "")),
			arc(32, 32, 24, 135, 225, pen(green, 1, "")),
			arc(32, 32, 30, 270, 450, pen(orange, 1, "")),
		),
	},
}
