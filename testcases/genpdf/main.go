// Command genpdf renders all test cases, once as a PDF file with the
// lines stroked by the PDF viewer and once as a PNG image with the lines
// widened by this module, for visual comparison.
// Run from the stepline module root directory.
package main

import (
	"fmt"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/raster"
	"seehuhn.de/go/stepline/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			verts, pen, err := prepare(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, verts, pen, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, verts, pen, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// prepare returns the vertices of the step line through the test case
// points, and the pen to draw it with.
func prepare(tc testcases.TestCase) ([]vec.Vec2, stepline.Pen, error) {
	dash, ok := stepline.ParseDashStyle(tc.Line.Dash)
	if tc.Line.Dash != "" && !ok {
		return nil, stepline.Pen{}, fmt.Errorf("unknown dash style %q", tc.Line.Dash)
	}
	pen := stepline.NewPen(tc.Line.Width).
		WithCap(tc.Line.Cap).
		WithJoin(tc.Line.Join).
		WithDash(dash.Pattern(tc.Line.Width), 0)
	pen.MiterLimit = tc.Line.MiterLimit

	var verts []vec.Vec2
	for i, p := range tc.Points {
		if i == 0 {
			verts = append(verts, p)
			continue
		}
		verts = append(verts, stepline.StepConnector{}.Decompose(tc.Points[i-1], p)[1:]...)
	}
	return verts, pen, nil
}

func generatePDF(tc testcases.TestCase, verts []vec.Vec2, pen stepline.Pen, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(pen.Width)
	page.SetLineCap(pen.Cap)
	page.SetLineJoin(pen.Join)
	page.SetMiterLimit(pen.MiterLimit)
	if len(pen.Dash) > 0 {
		page.SetLineDash(pen.Dash, pen.DashPhase)
	}
	for i, v := range verts {
		if i == 0 {
			page.MoveTo(v.X, v.Y)
		} else {
			page.LineTo(v.X, v.Y)
		}
	}
	page.Stroke()

	return page.Close()
}

func generatePNG(tc testcases.TestCase, verts []vec.Vec2, pen stepline.Pen, pngPath string) (err error) {
	c := raster.NewCanvas(tc.Width, tc.Height)
	c.Image.Pix = slices.Repeat([]uint8{0xff}, len(c.Image.Pix))
	for _, o := range pen.Outlines(verts) {
		if o.Widened {
			c.Fill(o.Path, color.Black)
		}
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, c.Image)
}
