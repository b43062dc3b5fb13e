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

import "math"

// Pixel is a colored pixel position.
type Pixel[C any] struct {
	Point Point
	Color C
}

// Stream produces the pixels of a line, one at a time.
//
// A Stream is created by [Line.Stream] and is consumed by repeated calls
// to [Stream.Next].  It cannot be rewound; to draw the same line again,
// create a new stream from the Line.  Streams do not allocate memory
// and do not share state with each other or with the Line they were
// created from.
type Stream[C any] struct {
	left, right C

	geom  lineGeom
	walk  walkState
	sweep sweepState
	done  bool
}

func newStream[C any](l *Line[C]) Stream[C] {
	var s Stream[C]
	if l.Start == l.End || !l.Style.IsVisible() {
		s.done = true
		return s
	}

	s.left, s.right = l.Style.sideColors()
	s.geom = newLineGeom(l.Start, l.End, l.Style.StrokeWidth)
	s.walk = newWalkState(l.Start, &s.geom)
	s.sweep = s.walk.section(&s.geom)
	return s
}

// Next returns the next pixel of the line.  The second return value is
// false once all pixels have been returned.
//
// Cross-sections are produced in order from the start point to the end
// point.  Within each cross-section, pixels on the left of the direction
// of travel use the stroke color and come first; pixels on the right use
// the fill color.
func (s *Stream[C]) Next() (Pixel[C], bool) {
	for !s.done {
		p, left, ok := s.sweep.next(&s.geom)
		if !ok {
			if !s.walk.step(&s.geom) {
				s.done = true
				break
			}
			s.sweep = s.walk.section(&s.geom)
			continue
		}

		if p.x < math.MinInt32 || p.x > math.MaxInt32 ||
			p.y < math.MinInt32 || p.y > math.MaxInt32 {
			// not addressable by any sink
			continue
		}

		c := s.right
		if left {
			c = s.left
		}
		return Pixel[C]{Point: Point{X: int32(p.x), Y: int32(p.y)}, Color: c}, true
	}
	return Pixel[C]{}, false
}

// Done reports whether the stream is known to be exhausted.  Once Done
// returns true, Next will not return any more pixels.
func (s *Stream[C]) Done() bool {
	return s.done
}
