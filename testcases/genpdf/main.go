// seehuhn.de/go/pixdraw - a 2D pixel drawing toolkit
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

// Command genpdf generates vector reference images for the pixdraw test cases.
// It creates PDFs from the final shapes of each test case scene and
// renders them to PNGs using Ghostscript.  The PNGs show the geometry
// in white on black, for visual comparison with the pixel output.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixdraw/scenefile"
	"seehuhn.de/go/pixdraw/shape"
	"seehuhn.de/go/pixdraw/testcases"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	noPNG := flag.Bool("pdf-only", false, "do not run Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(&tc.Doc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// pixel coordinates refer to pixel centres, at offset (0.5, 0.5) from
// the pixel's top-left corner.
var pixelCentre = vec.Vec2{X: 0.5, Y: 0.5}

func generatePDF(doc *scenefile.Document, pdfPath string) error {
	c, sc, err := scenefile.Build(doc)
	if err != nil {
		return err
	}
	w, h := float64(c.Width()), float64(c.Height())

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: w,
		URy: h,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineJoin(graphics.LineJoinRound)

	for _, s := range sc.All() {
		switch s := s.(type) {
		case *shape.Fill:
			// the outline already runs along pixel edges
			drawPath(page, s.Outline(), vec.Vec2{})
			page.Fill()
		case *shape.Polygon:
			if s.Filled {
				drawPath(page, s.Outline(), pixelCentre)
				page.Fill()
			}
			setStroke(page, s.Stroke)
			drawPath(page, s.Outline(), pixelCentre)
			page.Stroke()
		case *shape.Line:
			setStroke(page, s.Stroke)
			drawPath(page, s.Outline(), pixelCentre)
			page.Stroke()
		case *shape.Arc:
			setStroke(page, s.Stroke)
			drawPath(page, s.Outline(), pixelCentre)
			page.Stroke()
		}
	}

	return page.Close()
}

// setStroke sets the stroke parameters before path construction, as
// required by PDF.  The line width is the diameter of the disks used on
// the canvas, and the dash pattern repeats each run of the line style
// once per pen width.
func setStroke(page *document.Page, st shape.Stroke) {
	width := max(st.Pen.Width, 1)
	r := max(1, width/2)
	page.SetLineWidth(float64(2*r + 1))
	page.SetLineCap(st.Cap)

	runs := st.Pen.Style.Runs()
	if len(runs) < 2 {
		page.SetLineDash(nil, 0)
		return
	}
	dash := make([]float64, len(runs))
	for i, n := range runs {
		dash[i] = float64(n * width)
	}
	period := st.Pen.Style.Period()
	phase := ((st.Pen.Offset%period)+period)%period*width
	page.SetLineDash(dash, float64(phase))
}

func drawPath(page *document.Page, p path.Path, shift vec.Vec2) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			q := pts[0].Add(shift)
			page.MoveTo(q.X, q.Y)
		case path.CmdLineTo:
			q := pts[0].Add(shift)
			page.LineTo(q.X, q.Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, like the canvas
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
