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

import (
	"math"
	"math/bits"
)

// sweepState produces the pixels of one cross-section of a thick line.
// The center pixel comes first, followed by the remaining pixels of the
// left half, moving outwards, and then by the pixels of the right half.
type sweepState struct {
	center  ipoint
	pending bool // center not yet emitted

	left, right cursor
}

// cursor walks outwards from the center of a cross-section.
type cursor struct {
	pos ipoint
	err int64

	// dist is twice the distance of pos from the ideal line, multiplied
	// by the length of the segment.
	dist int64

	// After a diagonal step, fill holds the pixel next to pos which a
	// square step would have reached.  It is emitted before pos.
	fill     ipoint
	fillDist int64
	hasFill  bool

	done bool
}

// next returns the next pixel of the cross-section.  The second return
// value reports whether the pixel belongs to the left half.
func (s *sweepState) next(g *lineGeom) (p ipoint, left bool, ok bool) {
	if s.pending {
		s.pending = false
		return s.center, true, true
	}

	if p, ok := g.take(&s.left, g.limitLeft, 1); ok {
		return p, true, true
	}
	if p, ok := g.take(&s.right, g.limitRight, -1); ok {
		return p, false, true
	}
	return ipoint{}, false, false
}

// take returns the next pixel of c, as long as its distance accumulator
// does not exceed limit.
func (g *lineGeom) take(c *cursor, limit, sign int64) (ipoint, bool) {
	if c.done {
		return ipoint{}, false
	}

	if c.hasFill {
		c.hasFill = false
		if c.fillDist <= limit {
			return c.fill, true
		}
		// pos is further out than fill
		c.done = true
		return ipoint{}, false
	}

	if c.dist > limit {
		c.done = true
		return ipoint{}, false
	}
	p := c.pos
	g.advance(c, sign)
	return p, true
}

// advance moves c one pixel outwards.  Sign is +1 for the left half and
// -1 for the right half.
//
// A diagonal step leaves a hole between this cross-section and the
// next one.  The pixel reached by the square step is queued in c.fill.
func (g *lineGeom) advance(c *cursor, sign int64) {
	if c.err > g.threshold {
		c.fill = c.pos.step(g.pmajor, sign)
		c.fillDist = c.dist + 2*g.dmaj
		c.hasFill = true

		c.pos = c.pos.step(g.pminor, sign)
		c.err += g.eDiag
		c.dist += 2 * g.dmin
	}
	c.err += g.eSquare
	c.dist += 2 * g.dmaj
	c.pos = c.pos.step(g.pmajor, sign)
}

// widthLimits returns the largest distance accumulator values for pixels
// on the left and on the right of the ideal line.
//
// A pixel at distance t from the ideal line has accumulator value
// 2·t·len, where len = √(dmaj² + dmin²) is the length of the segment.
// Pixels with t ≤ width/2 belong to the left half, pixels with
// t < width/2 to the right half.  This makes axis-aligned lines exactly
// width pixels wide.  The limits are computed without rounding, using
// 128-bit intermediate values.
func widthLimits(width uint16, dmaj, dmin uint64) (left, right int64) {
	if width == 0 {
		return -1, -1
	}

	// n = width² · (dmaj² + dmin²)
	hi, lo := bits.Mul64(dmaj, dmaj)
	hi2, lo2 := bits.Mul64(dmin, dmin)
	lo, carry := bits.Add64(lo, lo2, 0)
	hi += hi2 + carry
	w2 := uint64(width) * uint64(width)
	hi3, lo := bits.Mul64(lo, w2)
	hi = hi*w2 + hi3

	r := isqrt128(hi, lo)
	left = int64(r)
	right = left
	if sh, sl := bits.Mul64(r, r); sh == hi && sl == lo {
		right--
	}
	return left, right
}

// isqrt128 returns ⌊√n⌋ for n = hi·2⁶⁴ + lo < 2¹²⁶.
func isqrt128(hi, lo uint64) uint64 {
	r := uint64(math.Sqrt(float64(hi)*0x1p64 + float64(lo)))
	for r > 0 && sqAbove(r, hi, lo) {
		r--
	}
	for !sqAbove(r+1, hi, lo) {
		r++
	}
	return r
}

// sqAbove reports whether r² > hi·2⁶⁴ + lo.
func sqAbove(r, hi, lo uint64) bool {
	sh, sl := bits.Mul64(r, r)
	return sh > hi || sh == hi && sl > lo
}
