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

var floodCases = []TestCase{
	{
		Name: "empty_canvas",
		Doc:  scene(32, 32, flood(5, 5, blue)),
	},
	{
		Name: "inside_square",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), "", 12, 12, 52, 52),
			flood(32, 32, red),
		),
	},
	{
		Name: "outside_square",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), "", 12, 12, 52, 52),
			flood(0, 0, green),
		),
	},
	{
		Name: "ring",
		Doc: scene(64, 64,
			arc(32, 32, 26, 0, 360, pen(ink, 3, "")),
			arc(32, 32, 12, 0, 360, pen(ink, 3, "")),
			flood(32, 10, orange),
		),
	},
	{
		Name: "comb",
		Doc: scene(64, 64,
			line(8, 4, 8, 50, pen(ink, 1, "")),
			line(24, 4, 24, 50, pen(ink, 1, "")),
			line(40, 4, 40, 50, pen(ink, 1, "")),
			line(56, 4, 56, 50, pen(ink, 1, "")),
			line(8, 50, 56, 50, pen(ink, 1, "")),
			flood(16, 20, blue),
		),
	},
	{
		Name: "refill",
		Doc: scene(64, 64,
			rectangle(pen(ink, 1, ""), "", 12, 12, 52, 52),
			flood(32, 32, red),
			flood(32, 32, blue),
		),
	},
	{
		Name: "sector",
		Doc: scene(64, 64,
			arc(32, 32, 24, 0, 90, pen(ink, 1, "")),
			line(32, 32, 56, 32, pen(ink, 1, "")),
			line(32, 32, 32, 56, pen(ink, 1, "")),
			flood(40, 40, green),
		),
	},
}
