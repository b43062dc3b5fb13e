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
	"image"
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Line is a straight line segment between two pixel positions.
//
// A Line is a plain value.  Drawing it does not modify it, and the same
// Line can be drawn any number of times.
type Line[C any] struct {
	Start, End Point
	Style      Style[C]
}

// NewLine returns a line from start to end.  The line has no colors set
// and stroke width 1; use the With* methods to set the style.
func NewLine[C any](start, end Point) Line[C] {
	return Line[C]{
		Start: start,
		End:   end,
		Style: NewStyle[C](),
	}
}

// WithStyle returns a copy of l with the given style.
func (l Line[C]) WithStyle(s Style[C]) Line[C] {
	l.Style = s
	return l
}

// WithStroke returns a copy of l with stroke color c.
func (l Line[C]) WithStroke(c C) Line[C] {
	l.Style = l.Style.WithStroke(c)
	return l
}

// WithFill returns a copy of l with fill color c.  The fill color is
// used for the pixels to the right of the direction of travel.
func (l Line[C]) WithFill(c C) Line[C] {
	l.Style = l.Style.WithFill(c)
	return l
}

// WithStrokeWidth returns a copy of l with the given stroke width.
func (l Line[C]) WithStrokeWidth(width uint16) Line[C] {
	l.Style = l.Style.WithStrokeWidth(width)
	return l
}

// TopLeft returns the top-left corner of the bounding box.
func (l Line[C]) TopLeft() Point {
	return Point{X: min(l.Start.X, l.End.X), Y: min(l.Start.Y, l.End.Y)}
}

// Size returns the extent of the bounding box, measured between the
// centers of the corner pixels.
func (l Line[C]) Size() Size {
	return SizeFromBoundingBox(l.Start, l.End)
}

// BottomRight returns the bottom-right corner of the bounding box.
// Like TopLeft, this corner is a pixel on the line.
func (l Line[C]) BottomRight() Point {
	return Point{X: max(l.Start.X, l.End.X), Y: max(l.Start.Y, l.End.Y)}
}

// Bounds returns the bounding box as an image.Rectangle.  Following the
// image package conventions, the maximum point is exclusive.  The stroke
// width is not taken into account.
func (l Line[C]) Bounds() image.Rectangle {
	tl := l.TopLeft()
	br := l.BottomRight()
	return image.Rect(int(tl.X), int(tl.Y), int(br.X)+1, int(br.Y)+1)
}

// Translate returns a copy of l, moved by the vector by.
func (l Line[C]) Translate(by Point) Line[C] {
	l.TranslateInPlace(by)
	return l
}

// TranslateInPlace moves l by the vector by.
func (l *Line[C]) TranslateInPlace(by Point) {
	l.Start = l.Start.Add(by)
	l.End = l.End.Add(by)
}

// Stream returns a new pixel stream for the line.
func (l Line[C]) Stream() Stream[C] {
	return newStream(&l)
}

// Pixels iterates over the pixels of the line, in the order produced by
// [Stream.Next].
func (l Line[C]) Pixels() iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		s := newStream(&l)
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Path returns the ideal center line, from the center of the start pixel
// to the center of the end pixel.
func (l Line[C]) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{l.Start.Vec()}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{l.End.Vec()})
	}
}

// Outline returns the ideal shape of the thick line: the rectangle of
// width Style.StrokeWidth around the center line, with butt ends.  The
// path is empty if the line has length zero.
func (l Line[C]) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		a, b := l.Start.Vec(), l.End.Vec()
		d := b.Sub(a)
		if d.X == 0 && d.Y == 0 {
			return
		}
		n := d.Normalize().Rot90().Mul(float64(l.Style.StrokeWidth) / 2)

		if !yield(path.CmdMoveTo, []vec.Vec2{a.Add(n)}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{b.Add(n)}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{b.Sub(n)}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{a.Sub(n)}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}
