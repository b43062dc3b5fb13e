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

// Command export writes the test cases, together with the pixels drawn
// for each of them, to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/thickline"
	"seehuhn.de/go/thickline/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Start  []int       `json:"start"`
	End    []int       `json:"end"`
	Stroke int         `json:"stroke_width"`
	Pixels []jsonPixel `json:"pixels"`
}

type jsonPixel struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Side string `json:"side"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Canvas.X,
		Height: tc.Canvas.Y,
		Start:  []int{tc.Start.X, tc.Start.Y},
		End:    []int{tc.End.X, tc.End.Y},
		Stroke: int(tc.Width),
		Pixels: []jsonPixel{},
	}

	l := thickline.NewLine[string](
		thickline.PointFromImage(tc.Start),
		thickline.PointFromImage(tc.End),
	).WithStroke("left").WithFill("right").WithStrokeWidth(tc.Width)
	for p := range l.Pixels() {
		jtc.Pixels = append(jtc.Pixels, jsonPixel{
			X:    int(p.Point.X),
			Y:    int(p.Point.Y),
			Side: p.Color,
		})
	}
	return jtc
}
