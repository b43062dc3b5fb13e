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

import "image"

// degenerateCases produce no pixels at all.
var degenerateCases = []TestCase{
	{
		Name:   "point",
		Start:  pt(10, 10),
		End:    pt(10, 10),
		Width:  1,
		Canvas: pt(24, 24),
		Want:   []image.Point{},
	},
	{
		Name:   "point_thick",
		Start:  pt(10, 10),
		End:    pt(10, 10),
		Width:  9,
		Canvas: pt(24, 24),
		Want:   []image.Point{},
	},
	{
		Name:   "zero_width",
		Start:  pt(2, 3),
		End:    pt(20, 17),
		Width:  0,
		Canvas: pt(24, 24),
		Want:   []image.Point{},
	},
}
