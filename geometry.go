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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position in screen coordinates: x grows to the right,
// y grows downwards.
//
// Point arithmetic saturates at the limits of the int32 range instead of
// wrapping around.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// PointFromImage converts an image.Point, saturating coordinates which
// do not fit into an int32.
func PointFromImage(p image.Point) Point {
	return Point{X: clamp32(int64(p.X)), Y: clamp32(int64(p.Y))}
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

// Vec returns the center of the pixel p as a vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{
		X: clamp32(int64(p.X) + int64(q.X)),
		Y: clamp32(int64(p.Y) + int64(q.Y)),
	}
}

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{
		X: clamp32(int64(p.X) - int64(q.X)),
		Y: clamp32(int64(p.Y) - int64(q.Y)),
	}
}

// Abs returns the component-wise absolute value of p.
func (p Point) Abs() Point {
	return Point{X: clamp32(abs64(int64(p.X))), Y: clamp32(abs64(int64(p.Y)))}
}

// Size is the extent of a rectangular area in pixels.
type Size struct {
	Width, Height uint32
}

// SizeFromBoundingBox returns the component-wise distance between two
// corners of a bounding box.  The distance is computed without overflow,
// even for opposite extremes of the int32 range.
func SizeFromBoundingBox(a, b Point) Size {
	return Size{
		Width:  uint32(abs64(int64(b.X) - int64(a.X))),
		Height: uint32(abs64(int64(b.Y) - int64(a.Y))),
	}
}

func clamp32(x int64) int32 {
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	if x < math.MinInt32 {
		return math.MinInt32
	}
	return int32(x)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
