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

// octantCases are single pixel lines starting at (10, 10), one for each
// octant, together with their expected pixel sequences.
var octantCases = []TestCase{
	{
		Name:   "short",
		Start:  pt(2, 3),
		End:    pt(3, 2),
		Width:  1,
		Canvas: pt(8, 8),
		Want:   pts(2, 3, 3, 2),
	},
	{
		Name:   "octant_1",
		Start:  pt(10, 10),
		End:    pt(15, 13),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 11, 11, 12, 11, 13, 12, 14, 12, 15, 13),
	},
	{
		Name:   "octant_1_reverse",
		Start:  pt(15, 13),
		End:    pt(10, 10),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(15, 13, 14, 12, 13, 12, 12, 11, 11, 11, 10, 10),
	},
	{
		Name:   "octant_2",
		Start:  pt(10, 10),
		End:    pt(13, 15),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 11, 11, 11, 12, 12, 13, 12, 14, 13, 15),
	},
	{
		Name:   "octant_3",
		Start:  pt(10, 10),
		End:    pt(7, 15),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 9, 11, 9, 12, 8, 13, 8, 14, 7, 15),
	},
	{
		Name:   "octant_4",
		Start:  pt(10, 10),
		End:    pt(5, 13),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 9, 11, 8, 11, 7, 12, 6, 12, 5, 13),
	},
	{
		Name:   "octant_5",
		Start:  pt(10, 10),
		End:    pt(5, 7),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 9, 9, 8, 9, 7, 8, 6, 8, 5, 7),
	},
	{
		Name:   "octant_6",
		Start:  pt(10, 10),
		End:    pt(7, 5),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 9, 9, 9, 8, 8, 7, 8, 6, 7, 5),
	},
	{
		Name:   "octant_7",
		Start:  pt(10, 10),
		End:    pt(13, 5),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 11, 9, 11, 8, 12, 7, 12, 6, 13, 5),
	},
	{
		Name:   "octant_8",
		Start:  pt(10, 10),
		End:    pt(15, 7),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   pts(10, 10, 11, 9, 12, 9, 13, 8, 14, 8, 15, 7),
	},
	{
		// The ideal line passes exactly between two pixels at x=1.
		Name:   "midpoint",
		Start:  pt(0, 0),
		End:    pt(2, 1),
		Width:  1,
		Canvas: pt(4, 4),
		Want:   pts(0, 0, 1, 0, 2, 1),
	},
	{
		Name:   "midpoint_reverse",
		Start:  pt(2, 1),
		End:    pt(0, 0),
		Width:  1,
		Canvas: pt(4, 4),
		Want:   pts(2, 1, 1, 0, 0, 0),
	},
}
