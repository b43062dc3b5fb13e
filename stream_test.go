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
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/thickline/testcases"
)

var (
	strokeGray = color.Gray{Y: 200}
	fillGray   = color.Gray{Y: 100}
)

// lineFor returns the line described by tc, with stroke color strokeGray.
func lineFor(tc testcases.TestCase) Line[color.Gray] {
	return NewLine[color.Gray](PointFromImage(tc.Start), PointFromImage(tc.End)).
		WithStroke(strokeGray).
		WithStrokeWidth(tc.Width)
}

func collect[C any](l Line[C]) []image.Point {
	var res []image.Point
	for p := range l.Pixels() {
		res = append(res, p.Point.ImagePoint())
	}
	return res
}

func TestGolden(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Want == nil {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				got := collect(lineFor(tc))
				if d := cmp.Diff(tc.Want, got, cmpopts.EquateEmpty()); d != "" {
					t.Errorf("pixels differ (-want +got):\n%s", d)
					writeDiffImage(name, tc.Canvas, tc.Want, got)
				}
			})
		}
	}
}

// writeDiffImage writes a debug image showing the expected pixels in red
// and the actual pixels in green.
func writeDiffImage(name string, size image.Point, want, got []image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rectangle{Max: size})
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255
		}
	}
	mark := func(pts []image.Point, channel int) {
		for _, p := range pts {
			if !p.In(img.Bounds()) {
				continue
			}
			img.Pix[img.PixOffset(p.X, p.Y)+channel] = 255
		}
	}
	mark(want, 0)
	mark(got, 1)

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

func TestEmpty(t *testing.T) {
	a, b := Pt(3, 4), Pt(10, 7)
	cases := []struct {
		name string
		line Line[color.Gray]
	}{
		{"zero_length", NewLine[color.Gray](a, a).WithStroke(strokeGray)},
		{"zero_length_thick", NewLine[color.Gray](a, a).WithStroke(strokeGray).WithStrokeWidth(7)},
		{"zero_width", NewLine[color.Gray](a, b).WithStroke(strokeGray).WithStrokeWidth(0)},
		{"no_stroke", NewLine[color.Gray](a, b).WithFill(fillGray).WithStrokeWidth(3)},
		{"zero_style", Line[color.Gray]{Start: a, End: b}},
		{"stroke_removed", NewLine[color.Gray](a, b).WithStyle(StrokeStyle(strokeGray, 4).WithoutStroke())},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := c.line.Stream()
			if !s.Done() {
				t.Error("Done() = false for an empty stream")
			}
			if p, ok := s.Next(); ok {
				t.Errorf("Next() = %v, true", p)
			}
		})
	}
}

func TestExhausted(t *testing.T) {
	l := NewLine[color.Gray](Pt(0, 0), Pt(5, 2)).WithStroke(strokeGray).WithStrokeWidth(3)
	s := l.Stream()
	n := 0
	for {
		_, ok := s.Next()
		if !ok {
			break
		}
		n++
	}
	if n == 0 {
		t.Fatal("no pixels")
	}
	if !s.Done() {
		t.Error("Done() = false after the last pixel")
	}
	for range 3 {
		if p, ok := s.Next(); ok {
			t.Errorf("Next() = %v, true after the end", p)
		}
	}
}

func TestDeterministic(t *testing.T) {
	l := NewLine[color.Gray](Pt(-7, 3), Pt(29, -11)).
		WithStroke(strokeGray).WithFill(fillGray).WithStrokeWidth(6)

	var first []Pixel[color.Gray]
	for p := range l.Pixels() {
		first = append(first, p)
	}

	s := l.Stream()
	var second []Pixel[color.Gray]
	for {
		p, ok := s.Next()
		if !ok {
			break
		}
		second = append(second, p)
	}

	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("streams differ (-first +second):\n%s", d)
	}
}

// TestIndependentStreams checks that interleaving two streams of the same
// line does not change their output.
func TestIndependentStreams(t *testing.T) {
	l := NewLine[color.Gray](Pt(0, 0), Pt(13, 5)).WithStroke(strokeGray).WithStrokeWidth(4)
	want := collect(l)

	s1, s2 := l.Stream(), l.Stream()
	var got1, got2 []image.Point
	for {
		p1, ok1 := s1.Next()
		p2, ok2 := s2.Next()
		if ok1 {
			got1 = append(got1, p1.Point.ImagePoint())
		}
		if ok2 {
			got2 = append(got2, p2.Point.ImagePoint())
		}
		if !ok1 && !ok2 {
			break
		}
	}
	if d := cmp.Diff(want, got1); d != "" {
		t.Errorf("first stream (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, got2); d != "" {
		t.Errorf("second stream (-want +got):\n%s", d)
	}
}

func TestPixelsEarlyExit(t *testing.T) {
	l := NewLine[color.Gray](Pt(0, 0), Pt(100, 0)).WithStroke(strokeGray)
	n := 0
	for range l.Pixels() {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Errorf("got %d pixels, want 10", n)
	}
}

// TestHairlineWalk checks the pixel sequence of single pixel lines in all
// directions: one pixel per step along the main axis, from the start
// point to the end point, without gaps.
func TestHairlineWalk(t *testing.T) {
	start := Pt(50, 50)
	for dx := int32(-17); dx <= 17; dx++ {
		for dy := int32(-17); dy <= 17; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			end := start.Add(Pt(dx, dy))
			got := collect(NewLine[color.Gray](start, end).WithStroke(strokeGray))

			steps := max(abs64(int64(dx)), abs64(int64(dy)))
			if int64(len(got)) != steps+1 {
				t.Errorf("%v->%v: %d pixels, want %d", start, end, len(got), steps+1)
				continue
			}
			if got[0] != start.ImagePoint() || got[len(got)-1] != end.ImagePoint() {
				t.Errorf("%v->%v: pixels run from %v to %v", start, end, got[0], got[len(got)-1])
			}
			for i := 1; i < len(got); i++ {
				d := got[i].Sub(got[i-1])
				if max(abs64(int64(d.X)), abs64(int64(d.Y))) != 1 {
					t.Errorf("%v->%v: step %v between pixels %d and %d", start, end, d, i-1, i)
					break
				}
			}
		}
	}
}

// TestHairlineReverse checks that a single pixel line covers the same
// pixels in both directions of travel, including lines which pass
// exactly between two pixels.
func TestHairlineReverse(t *testing.T) {
	start := Pt(0, 0)
	for dx := int32(-12); dx <= 12; dx++ {
		for dy := int32(-12); dy <= 12; dy++ {
			end := Pt(dx, dy)
			fwd := collect(NewLine[color.Gray](start, end).WithStroke(strokeGray))
			rev := collect(NewLine[color.Gray](end, start).WithStroke(strokeGray))
			slices.Reverse(rev)
			if d := cmp.Diff(fwd, rev, cmpopts.EquateEmpty()); d != "" {
				t.Errorf("%v->%v: reverse differs (-forward +reversed):\n%s", start, end, d)
			}
		}
	}
}

// TestBand checks that every pixel of every test case lies on the ideal
// shape of the line, and on the correct side of the center line.
func TestBand(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				l := lineFor(tc).WithFill(fillGray)
				checkBand(t, l)
			})
		}
	}
}

func checkBand(t *testing.T, l Line[color.Gray]) {
	t.Helper()

	a, b := l.Start.Vec(), l.End.Vec()
	d := b.Sub(a)
	length := d.Length()
	half := float64(l.Style.StrokeWidth) / 2
	const eps = 1e-9

	for p := range l.Pixels() {
		v := p.Point.Vec().Sub(a)
		// signed distance towards the left, in screen coordinates
		dist := (v.X*d.Y - v.Y*d.X) / length
		along := v.Dot(d) / length

		if math.Abs(dist) > max(half, 0.5)+eps {
			t.Errorf("pixel %v: distance %.3f from the center line", p.Point, dist)
		}
		if along < -1.5 || along > length+1.5 {
			t.Errorf("pixel %v: position %.3f along a line of length %.3f", p.Point, along, length)
		}
		switch p.Color {
		case strokeGray:
			if dist < -0.5-eps {
				t.Errorf("pixel %v: stroke color at distance %.3f", p.Point, dist)
			}
		case fillGray:
			if dist >= 0 {
				t.Errorf("pixel %v: fill color at distance %.3f", p.Point, dist)
			}
		default:
			t.Errorf("pixel %v: unexpected color %v", p.Point, p.Color)
		}
	}
}

// TestAxisWidth checks that axis-aligned lines are exactly as wide as the
// stroke width, without duplicate pixels.
func TestAxisWidth(t *testing.T) {
	dirs := []Point{{7, 0}, {-7, 0}, {0, 7}, {0, -7}}
	for _, dir := range dirs {
		for w := uint16(1); w <= 12; w++ {
			start := Pt(20, 20)
			l := NewLine[color.Gray](start, start.Add(dir)).WithStroke(strokeGray).WithStrokeWidth(w)

			seen := make(map[image.Point]bool)
			for _, p := range collect(l) {
				if seen[p] {
					t.Errorf("%v width %d: duplicate pixel %v", dir, w, p)
				}
				seen[p] = true
			}
			if want := int(w) * 8; len(seen) != want {
				t.Errorf("%v width %d: %d pixels, want %d", dir, w, len(seen), want)
			}
		}
	}
}

// TestMonotonic checks that increasing the stroke width never removes
// pixels.
func TestMonotonic(t *testing.T) {
	ends := []Point{{40, 3}, {40, 17}, {31, 31}, {-9, 40}, {-40, -25}, {5, -40}, {-40, 0}}
	for _, end := range ends {
		t.Run(fmt.Sprintf("%d_%d", end.X, end.Y), func(t *testing.T) {
			var prev map[image.Point]bool
			for w := uint16(1); w <= 10; w++ {
				l := NewLine[color.Gray](Pt(0, 0), end).WithStroke(strokeGray).WithStrokeWidth(w)
				cur := make(map[image.Point]bool)
				for _, p := range collect(l) {
					cur[p] = true
				}
				for p := range prev {
					if !cur[p] {
						t.Errorf("pixel %v present at width %d but not at width %d", p, w-1, w)
					}
				}
				if len(cur) < len(prev) {
					t.Errorf("width %d: %d pixels, width %d: %d pixels", w-1, len(prev), w, len(cur))
				}
				prev = cur
			}
		})
	}
}

// TestNoHoles checks that thick lines cover every pixel which lies well
// inside the ideal band, away from the end points.  Diagonal steps in the
// cross-sections must not leave a checkerboard pattern.
func TestNoHoles(t *testing.T) {
	var ends []Point
	for dx := int32(1); dx <= 20; dx++ {
		for dy := int32(0); dy <= dx; dy++ {
			ends = append(ends, Pt(dx, dy), Pt(dy, dx), Pt(-dx, dy), Pt(-dy, -dx), Pt(dx, -dy))
		}
	}
	for _, end := range ends {
		for w := uint16(2); w <= 8; w++ {
			l := NewLine[color.Gray](Pt(0, 0), end).WithStroke(strokeGray).WithStrokeWidth(w)
			if holes := findHoles(l); len(holes) > 0 {
				t.Errorf("%v width %d: %d holes, e.g. %v", end, w, len(holes), holes[0])
			}
		}
	}

	// 45 degrees is the worst case for the sweep
	l := NewLine[color.Gray](Pt(0, 0), Pt(10, 10)).WithStroke(strokeGray).WithStrokeWidth(4)
	if holes := findHoles(l); len(holes) > 0 {
		t.Errorf("diagonal: holes at %v", holes)
	}
}

// findHoles returns the pixels at distance at most width/2 - 0.75 from the
// center line which are missing from the output.  Pixels closer than one
// unit to either end point are ignored.
func findHoles[C any](l Line[C]) []image.Point {
	got := make(map[image.Point]bool)
	for _, p := range collect(l) {
		got[p] = true
	}

	a, b := l.Start.Vec(), l.End.Vec()
	d := b.Sub(a)
	length := d.Length()
	limit := float64(l.Style.StrokeWidth)/2 - 0.75
	r := int(l.Style.StrokeWidth) + 1

	var holes []image.Point
	for y := int(min(l.Start.Y, l.End.Y)) - r; y <= int(max(l.Start.Y, l.End.Y))+r; y++ {
		for x := int(min(l.Start.X, l.End.X)) - r; x <= int(max(l.Start.X, l.End.X))+r; x++ {
			q := image.Pt(x, y)
			v := PointFromImage(q).Vec().Sub(a)
			dist := (v.X*d.Y - v.Y*d.X) / length
			along := v.Dot(d) / length
			if along >= 1 && along <= length-1 && math.Abs(dist) <= limit && !got[q] {
				holes = append(holes, q)
			}
		}
	}
	return holes
}

func TestSideColors(t *testing.T) {
	// left of eastwards travel is north
	l := NewLine[color.Gray](Pt(2, 10), Pt(8, 10)).
		WithStroke(strokeGray).WithFill(fillGray).WithStrokeWidth(5)
	for p := range l.Pixels() {
		want := strokeGray
		if p.Point.Y > 10 {
			want = fillGray
		}
		if p.Color != want {
			t.Errorf("pixel %v: color %v, want %v", p.Point, p.Color, want)
		}
	}

	// without fill color, both sides use the stroke color
	l = l.WithStyle(StrokeStyle(strokeGray, 5))
	for p := range l.Pixels() {
		if p.Color != strokeGray {
			t.Errorf("pixel %v: color %v, want %v", p.Point, p.Color, strokeGray)
		}
	}
}

func TestSectionOrder(t *testing.T) {
	// southwards, width 3: center, then east (left), then west (right)
	l := NewLine[color.Gray](Pt(4, 0), Pt(4, 2)).WithStroke(strokeGray).WithStrokeWidth(3)
	want := []image.Point{
		{4, 0}, {5, 0}, {3, 0},
		{4, 1}, {5, 1}, {3, 1},
		{4, 2}, {5, 2}, {3, 2},
	}
	if d := cmp.Diff(want, collect(l)); d != "" {
		t.Errorf("pixels differ (-want +got):\n%s", d)
	}
}

func TestInt32Limits(t *testing.T) {
	// The right half of this line lies below the int32 range.
	y := int32(math.MaxInt32)
	l := NewLine[color.Gray](Pt(0, y), Pt(2, y)).WithStroke(strokeGray).WithStrokeWidth(3)
	got := collect(l)
	want := []image.Point{
		{0, math.MaxInt32}, {0, math.MaxInt32 - 1},
		{1, math.MaxInt32}, {1, math.MaxInt32 - 1},
		{2, math.MaxInt32}, {2, math.MaxInt32 - 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("pixels differ (-want +got):\n%s", d)
	}

	// A line across the whole int32 range takes 2³²-1 steps.
	g := newLineGeom(Pt(math.MinInt32, 5), Pt(math.MaxInt32, 7), 1)
	if g.dmaj != 1<<32-1 || g.dmin != 2 {
		t.Errorf("deltas %d, %d", g.dmaj, g.dmin)
	}
	w := newWalkState(Pt(math.MinInt32, 5), &g)
	if w.remaining != g.dmaj {
		t.Errorf("%d steps, want %d", w.remaining, g.dmaj)
	}
}

func TestNoAllocs(t *testing.T) {
	l := NewLine[color.Gray](Pt(3, -4), Pt(117, 51)).
		WithStroke(strokeGray).WithFill(fillGray).WithStrokeWidth(9)
	allocs := testing.AllocsPerRun(10, func() {
		s := l.Stream()
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	})
	if allocs != 0 {
		t.Errorf("%g allocations per line", allocs)
	}
}
