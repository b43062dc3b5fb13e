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

// Command genpdf draws one PDF page per test case, showing the pixels
// produced by the line drawing algorithm on top of the ideal shape of
// the line.  Pixels on the left of the direction of travel are shown in
// blue, pixels on the right in orange.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/thickline"
	"seehuhn.de/go/thickline/testcases"
)

const refDir = "testdata/sheets"

// maxScale is the size of a pixel in PDF points.  Large canvases use
// smaller pixels, so that pages stay below maxPage points.
const (
	maxScale = 16.0
	maxPage  = 2000.0
)

type side int

const (
	sideLeft side = iota
	sideRight
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	w := float64(tc.Canvas.X)
	h := float64(tc.Canvas.Y)
	scale := min(maxScale, maxPage/w, maxPage/h)

	paper := &pdf.Rectangle{
		URx: w * scale,
		URy: h * scale,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// Pixel centers are at integer coordinates and y grows downwards.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, scale / 2, paper.URy - scale/2})

	l := thickline.NewLine[side](
		thickline.PointFromImage(tc.Start),
		thickline.PointFromImage(tc.End),
	).WithStroke(sideLeft).WithFill(sideRight).WithStrokeWidth(tc.Width)

	leftColor := color.DeviceRGB(0.35, 0.55, 0.9)
	rightColor := color.DeviceRGB(0.95, 0.6, 0.25)
	for p := range l.Pixels() {
		if p.Color == sideLeft {
			page.SetFillColor(leftColor)
		} else {
			page.SetFillColor(rightColor)
		}
		page.Rectangle(float64(p.Point.X)-0.5, float64(p.Point.Y)-0.5, 1, 1)
		page.Fill()
	}

	// grid
	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetLineWidth(0.5 / scale)
	for x := 0; x <= tc.Canvas.X; x++ {
		page.MoveTo(float64(x)-0.5, -0.5)
		page.LineTo(float64(x)-0.5, h-0.5)
	}
	for y := 0; y <= tc.Canvas.Y; y++ {
		page.MoveTo(-0.5, float64(y)-0.5)
		page.LineTo(w-0.5, float64(y)-0.5)
	}
	page.Stroke()

	// ideal shape
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.5 / scale)
	drawPath(page, l.Outline())
	drawPath(page, l.Path())
	page.Stroke()

	return page.Close()
}

type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func drawPath(page pathBuilder, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
