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

package coverage

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Grid holds the coverage values of a rectangular pixel area.
type Grid struct {
	XMin, YMin    int
	Width, Height int
	Values        []float32 // row-major, Width*Height entries
}

// Render rasterises the polygon p into a new Grid covering clip.  The
// transformation ctm maps path coordinates to device pixels.
func Render(p path.Path, ctm matrix.Matrix, clip rect.Rect) *Grid {
	g := &Grid{
		XMin:   int(clip.LLx),
		YMin:   int(clip.LLy),
		Width:  int(clip.URx) - int(clip.LLx),
		Height: int(clip.URy) - int(clip.LLy),
	}
	if g.Width <= 0 || g.Height <= 0 {
		g.Width, g.Height = 0, 0
		return g
	}
	g.Values = make([]float32, g.Width*g.Height)

	r := NewRasteriser(clip)
	r.CTM = ctm
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := (y - g.YMin) * g.Width
		copy(g.Values[row+xMin-g.XMin:], coverage)
	})
	return g
}

// At returns the coverage of pixel (x, y).  Pixels outside the grid have
// coverage 0.
func (g *Grid) At(x, y int) float32 {
	x -= g.XMin
	y -= g.YMin
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Values[y*g.Width+x]
}

// Total returns the sum of all coverage values, which approximates the
// area of the polygon inside the grid.
func (g *Grid) Total() float64 {
	var sum float64
	for _, v := range g.Values {
		sum += float64(v)
	}
	return sum
}
