// Command stepchart draws a step-line chart described by a TOML file.
//
// Usage:
//
//	stepchart [-o chart.png] [-regions regions.json] [-v] chart.toml
//
// The output format is chosen by the extension of the output file name,
// either ".png" or ".pdf".
package main

import (
	"cmp"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/internal/chartfile"
	"seehuhn.de/go/stepline/pdfpaint"
	"seehuhn.de/go/stepline/raster"
)

func main() {
	out := flag.String("o", "chart.png", "output file, `name`.png or name.pdf")
	regionsFile := flag.String("regions", "", "write the hit regions as JSON to `file`")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] chart.toml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	stepline.SetLogger(logger)

	if err := run(flag.Arg(0), *out, *regionsFile, logger); err != nil {
		fmt.Fprintln(os.Stderr, "stepchart:", err)
		os.Exit(1)
	}
}

func run(chartName, outName, regionsName string, logger *slog.Logger) error {
	c, err := chartfile.Load(chartName)
	if err != nil {
		return err
	}

	regions := &stepline.Regions{}
	switch ext := strings.ToLower(filepath.Ext(outName)); ext {
	case ".png":
		err = writePNG(c, outName, regions)
	case ".pdf":
		err = writePDF(c, outName, regions)
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}
	logger.Info("chart written", "file", outName, "mode", c.Mode, "series", len(c.Series), "regions", len(regions.List))

	if regionsName != "" {
		return writeRegions(regionsName, regions)
	}
	return nil
}

func writePNG(c *chartfile.Chart, fname string, regions *stepline.Regions) (err error) {
	canvas := raster.NewCanvas(c.Width, c.Height)
	draw.Draw(canvas.Image, canvas.Image.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if err := drawChart(c, canvas, canvas, regions); err != nil {
		return err
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
	return png.Encode(f, canvas.Image)
}

func writePDF(c *chartfile.Chart, fname string, regions *stepline.Regions) error {
	paper := &pdf.Rectangle{URx: float64(c.Width), URy: float64(c.Height)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// chart coordinates have the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(c.Height)})

	painter := pdfpaint.New(page)
	if err := drawChart(c, painter, painter, regions); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}

// drawChart draws all series of c.
func drawChart(c *chartfile.Chart, lines stepline.LinePainter, surfaces stepline.SurfacePainter, regions *stepline.Regions) error {
	if c.Mode != "3d" {
		series, err := c.Points2D()
		if err != nil {
			return err
		}
		for _, points := range series {
			pass := stepline.NewPass(c.NewConnector(), lines, regions)
			if err := pass.DrawSeries(points); err != nil {
				return err
			}
		}
		return nil
	}

	points, err := c.Points3D()
	if err != nil {
		return err
	}
	b := &stepline.Builder3D{
		Surface:        surfaces,
		Center:         &stepline.CenterResolver{},
		Regions:        regions,
		MultiSeries:    len(c.Series) > 1,
		ShowPointLines: c.ShowPointLines,
	}
	area := stepline.Area{
		Name: "main",
		Bounds: rect.Rect{
			LLx: c.Margin,
			LLy: c.Margin,
			URx: float64(c.Width) - c.Margin,
			URy: float64(c.Height) - c.Margin,
		},
	}

	// back to front
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(points[j].Z, points[i].Z)
	})

	lookup := stepline.DefaultLookup{}
	for _, pos := range order {
		p := points[pos]
		if p.Index == 0 {
			continue
		}
		var neighbor *stepline.Point3D
		if b.MultiSeries {
			neighbor = &p
		}
		prevPos, err := lookup.FindPoint(points, p.Index-1, neighbor, pos)
		if err != nil {
			return err
		}
		params := stepline.SurfaceParams{
			Area:       area,
			Projection: c.Projection(),
			Light:      c.LightStyle(),
			DepthZ:     p.Z,
			Depth:      c.Depth,
			Prev:       points[prevPos],
			Mode:       stepline.OpDraw,
		}
		if _, err := b.BuildSurface(params, points, pos); err != nil {
			return err
		}
	}
	return nil
}

type jsonRegion struct {
	Series     string    `json:"series"`
	PointIndex int       `json:"point_index"`
	Filled     bool      `json:"filled"`
	Coords     []float64 `json:"coords"`
}

func writeRegions(fname string, regions *stepline.Regions) error {
	out := make([]jsonRegion, len(regions.List))
	for i, r := range regions.List {
		out[i] = jsonRegion{
			Series:     r.SeriesName,
			PointIndex: r.PointIndex,
			Filled:     r.Filled,
			Coords:     r.Coords,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0644)
}
