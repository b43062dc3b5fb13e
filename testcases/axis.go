// seehuhn.de/go/thickline - thick line drawing for small displays
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

// axisCases are thick horizontal and vertical lines.  For these, the
// stroke width is exactly the number of pixels in each cross-section.
var axisCases = []TestCase{
	{
		Name:   "east_width_3",
		Start:  pt(2, 5),
		End:    pt(5, 5),
		Width:  3,
		Canvas: pt(8, 10),
		Want: pts(
			2, 5, 2, 4, 2, 6,
			3, 5, 3, 4, 3, 6,
			4, 5, 4, 4, 4, 6,
			5, 5, 5, 4, 5, 6,
		),
	},
	{
		Name:   "west_width_3",
		Start:  pt(5, 5),
		End:    pt(2, 5),
		Width:  3,
		Canvas: pt(8, 10),
		Want: pts(
			5, 5, 5, 6, 5, 4,
			4, 5, 4, 6, 4, 4,
			3, 5, 3, 6, 3, 4,
			2, 5, 2, 6, 2, 4,
		),
	},
	{
		Name:   "south_width_2",
		Start:  pt(5, 2),
		End:    pt(5, 4),
		Width:  2,
		Canvas: pt(10, 8),
		Want: pts(
			5, 2, 6, 2,
			5, 3, 6, 3,
			5, 4, 6, 4,
		),
	},
	{
		Name:   "north_width_4",
		Start:  pt(5, 4),
		End:    pt(5, 3),
		Width:  4,
		Canvas: pt(10, 8),
		Want: pts(
			5, 4, 4, 4, 3, 4, 6, 4,
			5, 3, 4, 3, 3, 3, 6, 3,
		),
	},
	{
		Name:   "east_width_12",
		Start:  pt(4, 16),
		End:    pt(28, 16),
		Width:  12,
		Canvas: pt(32, 32),
	},
	{
		Name:   "south_width_7",
		Start:  pt(16, 4),
		End:    pt(16, 28),
		Width:  7,
		Canvas: pt(32, 32),
	},
}
