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

// Quadrants of a segment, as seen from its start point:
//
//	3 | 0
//	--+--
//	2 | 1
//
// The table is indexed by (start.X >= end.X)<<1 | (start.Y >= end.Y).
// For each quadrant it gives the travel direction and the direction
// which points to the left of the direction of travel.  Both octants of
// a quadrant share the same left-hand direction; the steep octant only
// changes which axis the perpendicular sweep walks along.
var quadrants = [4]struct {
	dir, perp Point
}{
	{dir: Point{1, 1}, perp: Point{1, -1}},   // quadrant 1
	{dir: Point{1, -1}, perp: Point{-1, -1}}, // quadrant 0
	{dir: Point{-1, 1}, perp: Point{1, 1}},   // quadrant 2
	{dir: Point{-1, -1}, perp: Point{-1, 1}}, // quadrant 3
}

// orientation holds the stepping directions of a segment.
type orientation struct {
	// dir is the direction of travel. Both components are ±1.
	dir Point

	// perp points to the left of dir, in screen coordinates (y down).
	// Both components are ±1.
	perp Point

	// swap is +1 if x is the main axis and -1 if the segment is steep.
	swap int32
}

// orient resolves the quadrant and octant of the segment from start to
// end.
func orient(start, end Point) orientation {
	idx := 0
	if start.X >= end.X {
		idx |= 2
	}
	if start.Y >= end.Y {
		idx |= 1
	}
	q := quadrants[idx]

	d := SizeFromBoundingBox(start, end)
	swap := int32(1)
	if d.Height > d.Width {
		swap = -1
	}
	return orientation{dir: q.dir, perp: q.perp, swap: swap}
}

// ipoint is a pixel position with room for intermediate positions
// outside the int32 range.
type ipoint struct {
	x, y int64
}

func (p ipoint) step(d ipoint, sign int64) ipoint {
	return ipoint{x: p.x + sign*d.x, y: p.y + sign*d.y}
}

// lineGeom holds the parameters of a segment which stay fixed while the
// segment is rasterized.  It is shared by the main walk and all
// cross-sections.
type lineGeom struct {
	// dmaj and dmin are the absolute deltas along the main axis and the
	// minor axis.
	dmaj, dmin int64

	// major and minor are unit steps of the main walk.
	major, minor ipoint

	// pmajor and pminor are unit steps of the sweep towards the left.
	// The sweep advances along the main walk's minor axis in every step
	// and occasionally along the main axis.
	pmajor, pminor ipoint

	// Bresenham parameters, shared by the main walk and the sweep.
	threshold int64
	eDiag     int64
	eSquare   int64

	// tieBias is 1 if the main walk moves in negative direction along
	// the minor axis.  Exact midpoint ties are then resolved towards the
	// smaller coordinate in both directions of travel.
	tieBias int64

	// sigma converts the main walk error into the signed distance of the
	// current pixel from the ideal line, towards the left.
	sigma int64

	// Cross-section pixels on the left are kept while their distance
	// accumulator is at most limitLeft, pixels on the right while it is
	// at most limitRight.
	limitLeft, limitRight int64

	// hairline is set for stroke width 1: every cross-section consists
	// of the center pixel only.
	hairline bool
}

func newLineGeom(start, end Point, width uint16) lineGeom {
	o := orient(start, end)
	d := SizeFromBoundingBox(start, end)

	g := lineGeom{hairline: width == 1}
	dirX, dirY := int64(o.dir.X), int64(o.dir.Y)
	perpX, perpY := int64(o.perp.X), int64(o.perp.Y)
	if o.swap > 0 {
		g.dmaj, g.dmin = int64(d.Width), int64(d.Height)
		g.major = ipoint{x: dirX}
		g.minor = ipoint{y: dirY}
		g.pmajor = ipoint{y: perpY}
		g.pminor = ipoint{x: perpX}
		if dirY < 0 {
			g.tieBias = 1
		}
	} else {
		g.dmaj, g.dmin = int64(d.Height), int64(d.Width)
		g.major = ipoint{y: dirY}
		g.minor = ipoint{x: dirX}
		g.pmajor = ipoint{x: perpX}
		g.pminor = ipoint{y: perpY}
		if dirX < 0 {
			g.tieBias = 1
		}
	}
	g.threshold = g.dmaj - 2*g.dmin
	g.eDiag = -2 * g.dmaj
	g.eSquare = 2 * g.dmin
	g.sigma = dirX * dirY * int64(o.swap)
	g.limitLeft, g.limitRight = widthLimits(width, uint64(g.dmaj), uint64(g.dmin))
	return g
}
