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

// Package scene reads and writes descriptions of line drawings.
//
// A scene is stored as a YAML file, listing the canvas size, the
// background color and the lines to draw:
//
//	width: 64
//	height: 48
//	background: "#000000"
//	lines:
//	  - from: [4, 4]
//	    to: [60, 20]
//	    width: 3
//	    stroke: "#ffcc00"
//	    fill: "#cc6600"
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/thickline"
)

const (
	// DefaultWidth is the canvas width of the default scene.
	DefaultWidth = 64

	// DefaultHeight is the canvas height of the default scene.
	DefaultHeight = 48

	// DefaultBackground is the background color of scenes which do not
	// specify one.
	DefaultBackground = "#000000"

	// MaxCanvas is the largest supported canvas width and height.
	MaxCanvas = 1 << 14
)

var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidScene is returned for scene descriptions which cannot be
	// decoded or rendered.
	ErrInvalidScene = errors.New("invalid scene")
)

// Scene is a canvas together with a list of lines.
type Scene struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background string     `yaml:"background"`
	Lines      []LineSpec `yaml:"lines"`
}

// LineSpec describes a single line.  Points are given as [x, y] pairs.
// Width defaults to 1 if omitted.  If Fill is empty, the stroke color is
// used on both sides of the line.
type LineSpec struct {
	From   []int32 `yaml:"from,flow"`
	To     []int32 `yaml:"to,flow"`
	Width  uint16  `yaml:"width"`
	Stroke string  `yaml:"stroke"`
	Fill   string  `yaml:"fill,omitempty"`
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (l *LineSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain LineSpec
	p := plain{Width: 1}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*l = LineSpec(p)
	return nil
}

// DefaultScene returns a small demonstration scene: a fan of lines of
// increasing width.
func DefaultScene() *Scene {
	s := &Scene{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
	}
	ends := [][]int32{{60, 24}, {56, 4}, {32, 2}, {6, 6}, {2, 30}, {20, 45}, {50, 44}}
	for i, end := range ends {
		s.Lines = append(s.Lines, LineSpec{
			From:   []int32{32, 24},
			To:     end,
			Width:  uint16(i + 1),
			Stroke: "#ffcc00",
			Fill:   "#cc6600",
		})
	}
	return s
}

// Load reads a scene from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from YAML data.  Fields which are not present in
// data keep the values from [DefaultScene], except for the list of
// lines.
func Parse(data []byte) (*Scene, error) {
	s := DefaultScene()
	s.Lines = nil
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes a scene to a YAML file.
func Save(path string, s *Scene) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the canvas size, the colors and the coordinates of all
// lines.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxCanvas || s.Height > MaxCanvas {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if _, err := ParseColor(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	_, err := s.lines()
	return err
}

// Bounds returns the canvas rectangle.
func (s *Scene) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Lines converts the line descriptions into drawable lines.  Lines which
// cannot produce any pixels are reported via the logger of the thickline
// package.
func (s *Scene) Lines() ([]thickline.Line[color.RGBA], error) {
	res, err := s.lines()
	if err != nil {
		return nil, err
	}

	log := thickline.Logger()
	for i, l := range res {
		if l.Start == l.End || l.Style.StrokeWidth == 0 {
			log.Warn("line is invisible",
				slog.Int("line", i),
				slog.Any("from", l.Start.ImagePoint()),
				slog.Any("to", l.End.ImagePoint()),
				slog.Int("width", int(l.Style.StrokeWidth)))
		}
	}
	return res, nil
}

func (s *Scene) lines() ([]thickline.Line[color.RGBA], error) {
	res := make([]thickline.Line[color.RGBA], 0, len(s.Lines))
	for i, spec := range s.Lines {
		l, err := spec.line()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		res = append(res, l)
	}
	return res, nil
}

func (spec *LineSpec) line() (thickline.Line[color.RGBA], error) {
	var zero thickline.Line[color.RGBA]

	from, err := point(spec.From)
	if err != nil {
		return zero, fmt.Errorf("from: %w", err)
	}
	to, err := point(spec.To)
	if err != nil {
		return zero, fmt.Errorf("to: %w", err)
	}
	stroke, err := ParseColor(spec.Stroke)
	if err != nil {
		return zero, fmt.Errorf("stroke: %w", err)
	}

	l := thickline.NewLine[color.RGBA](from, to).
		WithStroke(stroke).
		WithStrokeWidth(spec.Width)
	if spec.Fill != "" {
		fill, err := ParseColor(spec.Fill)
		if err != nil {
			return zero, fmt.Errorf("fill: %w", err)
		}
		l = l.WithFill(fill)
	}
	return l, nil
}

func point(xy []int32) (thickline.Point, error) {
	if len(xy) != 2 {
		return thickline.Point{}, fmt.Errorf("%w: need 2 coordinates, got %d", ErrInvalidScene, len(xy))
	}
	return thickline.Pt(xy[0], xy[1]), nil
}

// Render draws the scene into a new image.
func (s *Scene) Render() (*image.RGBA, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	bg, _ := ParseColor(s.Background)
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(s.Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	target := thickline.ImageTarget[color.RGBA]{Image: img}
	for _, l := range lines {
		thickline.Draw[color.RGBA](target, l)
	}
	return img, nil
}
