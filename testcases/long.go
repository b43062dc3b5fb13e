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

// longCases need more than 500 steps along the main axis.
var longCases = []TestCase{
	{
		Name:   "shallow",
		Start:  pt(0, 0),
		End:    pt(1023, 7),
		Width:  1,
		Canvas: pt(1024, 8),
	},
	{
		Name:   "steep",
		Start:  pt(3, 799),
		End:    pt(0, 0),
		Width:  1,
		Canvas: pt(4, 800),
	},
	{
		Name:   "thick_diagonal",
		Start:  pt(10, 10),
		End:    pt(710, 610),
		Width:  6,
		Canvas: pt(720, 620),
	},
}
