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
	"context"
	"image/color"
	"image/draw"
	"log/slog"
)

// DrawTarget receives the pixels of a drawing operation, typically in
// order to send them to a display.  Implementations are responsible for
// clipping and for converting colors to the device pixel format.
type DrawTarget[C any] interface {
	SetPixel(p Point, c C)
}

// Draw sends all pixels of l to t and returns the number of pixels
// produced.
func Draw[C any](t DrawTarget[C], l Line[C]) int {
	s := l.Stream()
	n := 0
	for {
		p, ok := s.Next()
		if !ok {
			break
		}
		t.SetPixel(p.Point, p.Color)
		n++
	}

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("line drawn",
			slog.Any("start", l.Start.ImagePoint()),
			slog.Any("end", l.End.ImagePoint()),
			slog.Int("width", int(l.Style.StrokeWidth)),
			slog.Int("pixels", n))
	}
	return n
}

// ImageTarget draws into an image.  Pixels outside the image bounds are
// discarded.
type ImageTarget[C color.Color] struct {
	Image draw.Image
}

// SetPixel implements the [DrawTarget] interface.
func (t ImageTarget[C]) SetPixel(p Point, c C) {
	q := p.ImagePoint()
	if !q.In(t.Image.Bounds()) {
		return
	}
	t.Image.Set(q.X, q.Y, c)
}

var _ DrawTarget[color.Gray] = ImageTarget[color.Gray]{}
