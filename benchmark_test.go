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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
)

var benchWidths = []uint16{1, 3, 10}

// BenchmarkStream benchmarks drawing a line into an image, one pixel at a
// time.
func BenchmarkStream(b *testing.B) {
	const size = 200
	for _, w := range benchWidths {
		b.Run(fmt.Sprintf("width%d", w), func(b *testing.B) {
			dst := image.NewGray(image.Rect(0, 0, size, size))
			l := NewLine[color.Gray](Pt(10, 20), Pt(190, 170)).
				WithStroke(color.Gray{Y: 255}).WithStrokeWidth(w)

			b.ReportAllocs()
			for b.Loop() {
				s := l.Stream()
				for {
					p, ok := s.Next()
					if !ok {
						break
					}
					dst.Pix[int(p.Point.Y)*dst.Stride+int(p.Point.X)] = p.Color.Y
				}
			}
		})
	}
}

// BenchmarkVector benchmarks x/image/vector filling the ideal shape of the
// same lines.
func BenchmarkVector(b *testing.B) {
	const size = 200
	for _, w := range benchWidths {
		b.Run(fmt.Sprintf("width%d", w), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			l := NewLine[color.Gray](Pt(10, 20), Pt(190, 170)).WithStrokeWidth(w)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addPath(r, l.Outline())
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addPath adds p to r.  Pixel centers are at integer coordinates in p and
// at half-integer coordinates in r.
func addPath(r *vector.Rasterizer, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X+0.5), float32(pts[0].Y+0.5))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X+0.5), float32(pts[0].Y+0.5))
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
