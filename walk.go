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

package thickline

// walkState is the state of the Bresenham walk along the main axis.
type walkState struct {
	pos ipoint
	err int64

	// remaining is the number of steps left until the end point.  A
	// segment takes exactly max(|dx|, |dy|) steps.
	remaining int64
}

func newWalkState(start Point, g *lineGeom) walkState {
	return walkState{
		pos:       ipoint{x: int64(start.X), y: int64(start.Y)},
		remaining: g.dmaj,
	}
}

// step advances the walk by one pixel along the main axis.  It returns
// false once the end point has been reached.
func (w *walkState) step(g *lineGeom) bool {
	if w.remaining <= 0 {
		return false
	}

	if w.err+g.tieBias > g.threshold {
		w.pos = w.pos.step(g.minor, 1)
		w.err += g.eDiag
	}
	w.err += g.eSquare
	w.pos = w.pos.step(g.major, 1)

	w.remaining--
	return true
}

// section returns the cross-section centered at the current position.
func (w *walkState) section(g *lineGeom) sweepState {
	s := sweepState{center: w.pos, pending: true}
	if g.hairline {
		s.left.done = true
		s.right.done = true
		return s
	}

	// The error of the main walk measures how far the ideal line has
	// drifted from the current pixel.  Both halves start from there, so
	// that the cross-section stays centered on the ideal line.
	dist := g.sigma * w.err
	s.left = cursor{pos: w.pos, dist: dist}
	s.right = cursor{pos: w.pos, dist: -dist}
	g.advance(&s.left, 1)
	g.advance(&s.right, -1)
	return s
}
