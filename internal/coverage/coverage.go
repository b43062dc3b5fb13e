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

// Package coverage computes the exact area coverage of polygons on the
// pixel grid.  It serves as a reference for checking which pixels a
// thick line may legitimately touch.
//
// Only straight edges are supported.  Pixel (x, y) covers the unit square
// [x, x+1) × [y, y+1) in device space.
package coverage

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts polygons to pixel coverage values, using the
// nonzero winding rule.  Internal buffers are reused between calls.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	// Must be a non-singular matrix.
	CTM matrix.Matrix

	// Clip defines the output region in device coordinates.
	// Must be a non-empty rectangle with integer-aligned coordinates.
	Clip rect.Rect

	cover     []float32 // cover change per pixel; reused as output
	area      []float32 // area within pixel
	edges     []edge
	activeIdx []int
	crossings []float64

	bboxFirst             bool
	devXMin, devXMax      float64
	devYMin, devYMax      float64
	current, subpathStart vec.Vec2
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle and
// the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// FillNonZero rasterises the polygon p.  Coverage is delivered row by row
// via the emit callback.  The coverage slice passed to emit is only valid
// for the duration of the callback.
//
// Curve segments in p are not supported and are replaced by straight
// lines to their end points.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for nextEdge < len(r.edges) {
			e := &r.edges[nextEdge]
			if min(e.y0, e.y1) >= yfNext {
				break
			}
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			if r.accumulateEdge(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateScanline(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// collectEdges builds the edge list for p and returns the bounding box of
// all edges, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxFirst = true
	r.current = vec.Vec2{}
	r.subpathStart = vec.Vec2{}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.current = pts[0]
			r.subpathStart = r.current
		case path.CmdClose:
			r.closeSubpath()
		default:
			if len(pts) == 0 {
				continue
			}
			next := pts[len(pts)-1]
			r.addEdge(r.current, next)
			r.current = next
		}
	}
	r.closeSubpath()

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// closeSubpath adds the implicit closing edge of the current subpath.
// Fills always treat subpaths as closed.
func (r *Rasteriser) closeSubpath() {
	if r.current != r.subpathStart {
		r.addEdge(r.current, r.subpathStart)
	}
	r.current = r.subpathStart
}

// addEdge adds an edge from path coordinates, transforming to device space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.bboxFirst {
		r.devXMin, r.devXMax = min(dx0, dx1), max(dx0, dx1)
		r.devYMin, r.devYMax = min(dy0, dy1), max(dy0, dy1)
		r.bboxFirst = false
	} else {
		r.devXMin = min(r.devXMin, dx0, dx1)
		r.devXMax = max(r.devXMax, dx0, dx1)
		r.devYMin = min(r.devYMin, dy0, dy1)
		r.devYMax = max(r.devYMax, dy0, dy1)
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  cover, weighted by the horizontal position of the crossing
//
// The coverage of pixel i is then accum + area[i], where accum is the sum
// of cover[j] over all j < i.

// accumulateEdge adds the contribution of e within scanline y to the
// cover and area buffers, which are indexed by x - bboxXMin.  The return
// value indicates whether anything was added.
func (r *Rasteriser) accumulateEdge(e *edge, y, bboxXMin, bboxXMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixLeft >= bboxXMax {
		return false
	}
	if pixLeft == pixRight || pixRight < bboxXMin {
		r.addSegment(e, yTop, yBot, sign, bboxXMin, bboxXMax)
		return true
	}

	// split the edge where it crosses vertical pixel boundaries
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yTop && yAtX < yBot {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 > y0 {
			r.addSegment(e, y0, y1, sign, bboxXMin, bboxXMax)
		}
	}
	return true
}

// addSegment adds the part of e between yTop and yBot, which must lie
// within a single pixel column.
func (r *Rasteriser) addSegment(e *edge, yTop, yBot float64, sign float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	yMid := (yTop + yBot) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	pix := int(math.Floor(xMid))

	switch {
	case pix < bboxXMin:
		r.cover[0] += coverVal
		r.area[0] += coverVal
	case pix < bboxXMax:
		xFrac := xMid - float64(pix)
		idx := pix - bboxXMin
		r.cover[idx] += coverVal
		r.area[idx] += coverVal * float32(1-xFrac)
	}
}

// integrateScanline converts accumulated cover/area to final coverage
// values using the nonzero winding rule.  The cover slice is modified in
// place.
func integrateScanline(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		cov := raw
		if raw < 0 {
			cov = -raw
		}
		if cov > 1 {
			cov = 1
		}
		cover[i] = cov
	}
}

// trimZeros returns the non-zero portion of coverage and its starting
// offset.  It returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// horizontalEdgeThreshold is the minimum vertical extent for an edge to
// contribute coverage.
const horizontalEdgeThreshold = 1e-10
