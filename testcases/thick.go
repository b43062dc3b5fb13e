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

import "fmt"

// thickCases are sloped thick lines in all directions.  There are no
// expected pixel sequences for these; they are checked against the
// ideal shape of the line.
var thickCases = fanCases()

// fanCases builds lines from the center of a 64×64 canvas towards points
// on its border, for a selection of stroke widths.
func fanCases() []TestCase {
	ends := []struct {
		name string
		x, y int
	}{
		{"e", 60, 40}, {"ene", 60, 20}, {"ne", 56, 4}, {"nne", 40, 4},
		{"n", 28, 4}, {"nw", 6, 8}, {"w", 4, 36}, {"wsw", 4, 50},
		{"sw", 8, 58}, {"s", 36, 60}, {"se", 58, 59}, {"diag", 62, 62},
	}
	widths := []uint16{2, 3, 5, 8}

	var res []TestCase
	for _, w := range widths {
		for _, e := range ends {
			res = append(res, TestCase{
				Name:   fmt.Sprintf("%s_width_%d", e.name, w),
				Start:  pt(32, 32),
				End:    pt(e.x, e.y),
				Width:  w,
				Canvas: pt(64, 64),
			})
		}
	}
	return res
}
