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

// Package testcases collects line drawing test cases which are shared by
// the unit tests, the benchmarks and the reference generators.
package testcases

import "image"

// TestCase defines a single line drawing test.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Start  image.Point // first pixel of the line
	End    image.Point // last pixel of the line
	Width  uint16      // stroke width in pixels
	Canvas image.Point // canvas size for reference images

	// Want is the expected pixel sequence.  If Want is nil, only the
	// generic properties of the drawing algorithm are checked.
	Want []image.Point
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// pts converts a flat list of coordinates into points.
func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}
