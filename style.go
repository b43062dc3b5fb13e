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

// Style describes how a line is painted.
//
// The zero value has neither stroke nor fill color and a stroke width of
// zero; lines drawn with it produce no pixels.
type Style[C any] struct {
	stroke    C
	fill      C
	hasStroke bool
	hasFill   bool

	// StrokeWidth is the thickness of the line in pixels, measured
	// perpendicular to the direction of travel.
	StrokeWidth uint16
}

// NewStyle returns a style with stroke width 1 and no colors.
func NewStyle[C any]() Style[C] {
	return Style[C]{StrokeWidth: 1}
}

// StrokeStyle returns a style which strokes with color c and the given
// width.  There is no separate fill color, so both sides of a thick line
// use c.
func StrokeStyle[C any](c C, width uint16) Style[C] {
	return Style[C]{stroke: c, hasStroke: true, StrokeWidth: width}
}

// Stroke returns the stroke color.  The second return value is false if
// no stroke color is set.
func (s Style[C]) Stroke() (C, bool) {
	return s.stroke, s.hasStroke
}

// Fill returns the fill color.  The second return value is false if no
// fill color is set.
func (s Style[C]) Fill() (C, bool) {
	return s.fill, s.hasFill
}

// WithStroke returns a copy of s with stroke color c.
func (s Style[C]) WithStroke(c C) Style[C] {
	s.stroke = c
	s.hasStroke = true
	return s
}

// WithoutStroke returns a copy of s with the stroke color removed.
// Lines without stroke color are transparent.
func (s Style[C]) WithoutStroke() Style[C] {
	var zero C
	s.stroke = zero
	s.hasStroke = false
	return s
}

// WithFill returns a copy of s with fill color c.
func (s Style[C]) WithFill(c C) Style[C] {
	s.fill = c
	s.hasFill = true
	return s
}

// WithoutFill returns a copy of s with the fill color removed.
func (s Style[C]) WithoutFill() Style[C] {
	var zero C
	s.fill = zero
	s.hasFill = false
	return s
}

// WithStrokeWidth returns a copy of s with the given stroke width.
func (s Style[C]) WithStrokeWidth(width uint16) Style[C] {
	s.StrokeWidth = width
	return s
}

// IsVisible reports whether lines in this style can produce pixels.
func (s Style[C]) IsVisible() bool {
	return s.hasStroke && s.StrokeWidth > 0
}

// sideColors returns the colors used for the left and right half of a
// cross-section.  The right half uses the fill color where one is set.
func (s Style[C]) sideColors() (left, right C) {
	if s.hasFill {
		return s.stroke, s.fill
	}
	return s.stroke, s.stroke
}
