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

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/thickline"
	"seehuhn.de/go/thickline/internal/scene"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write an example scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(args[0]); err == nil {
					return fmt.Errorf("%s already exists", args[0])
				}
			}
			return scene.Save(args[0], scene.DefaultScene())
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// loadScene loads the scene given on the command line, or the default
// scene if no file name is given.
func loadScene(args []string) (*scene.Scene, error) {
	if len(args) == 0 {
		return scene.DefaultScene(), nil
	}
	return scene.Load(args[0])
}

func renderCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "render a scene to an image file",
		Long: "Render a scene to an image file.  The output format is chosen\n" +
			"by the file name extension: .png, .bmp, .tif or .tiff.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(args)
			if err != nil {
				return err
			}
			img, err := s.Render()
			if err != nil {
				return err
			}
			return writeImage(out, img)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "scene.png", "output file")
	return cmd
}

func writeImage(fname string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [scene.yaml]",
		Short: "show a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(args)
			if err != nil {
				return err
			}
			img, err := s.Render()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), preview(img))
			return nil
		},
	}
}

// preview renders img as colored blocks, two terminal cells per pixel.
func preview(img *image.RGBA) string {
	styles := make(map[string]lipgloss.Style)
	b := &strings.Builder{}
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			hex := scene.FormatColor(img.RGBAAt(x, y))
			st, ok := styles[hex]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			b.WriteString(st.Render("██"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func pixelsCmd() *cobra.Command {
	var width uint16
	cmd := &cobra.Command{
		Use:   "pixels x0 y0 x1 y1",
		Short: "print the pixels of a single line",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c [4]int32
			for i, a := range args {
				v, err := strconv.ParseInt(a, 10, 32)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q", a)
				}
				c[i] = int32(v)
			}
			l := thickline.NewLine[string](thickline.Pt(c[0], c[1]), thickline.Pt(c[2], c[3])).
				WithStroke("left").WithFill("right").WithStrokeWidth(width)
			return printPixels(cmd.OutOrStdout(), l)
		},
	}
	cmd.Flags().Uint16VarP(&width, "width", "w", 1, "stroke width in pixels")
	return cmd
}

func printPixels(w io.Writer, l thickline.Line[string]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "x\ty\tside\t")
	n := 0
	for p := range l.Pixels() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t\n", p.Point.X, p.Point.Y, p.Color)
		n++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d pixels\n", n)
	return err
}
