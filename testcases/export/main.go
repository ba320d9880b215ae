// Command export writes the computed step geometry of all test cases to
// JSON, for checking against other implementations.
// Run from the stepline module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/steps.json")
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
	Name       string       `json:"name"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	LineWidth  float64      `json:"line_width"`
	LineCap    string       `json:"line_cap"`
	LineJoin   string       `json:"line_join"`
	MiterLimit float64      `json:"miter_limit"`
	Dash       []float64    `json:"dash,omitempty"`
	Points     [][]float64  `json:"points"`
	Steps      []jsonStep   `json:"steps"`
	Regions    []jsonRegion `json:"regions"`
}

type jsonStep struct {
	Index    int           `json:"index"`
	Corner   []float64     `json:"corner"`
	Outlines [][][]float64 `json:"outlines"`
}

type jsonRegion struct {
	PointIndex int       `json:"point_index"`
	Widened    bool      `json:"widened"`
	Coords     []float64 `json:"coords"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	dash, ok := stepline.ParseDashStyle(tc.Line.Dash)
	if tc.Line.Dash != "" && !ok {
		return jsonTestCase{}, fmt.Errorf("unknown dash style %q", tc.Line.Dash)
	}

	series := &stepline.Series{Name: tc.Name}
	points := make([]stepline.Point2D, len(tc.Points))
	for i, p := range tc.Points {
		points[i] = stepline.Point2D{
			Pos: p,
			Data: &stepline.DataPoint{
				Color:       color.Black,
				BorderWidth: tc.Line.Width,
				BorderDash:  dash,
				Series:      series,
			},
		}
	}

	pen := stepline.NewPen(tc.Line.Width).
		WithCap(tc.Line.Cap).
		WithJoin(tc.Line.Join).
		WithDash(dash.Pattern(tc.Line.Width), 0)
	pen.MiterLimit = tc.Line.MiterLimit

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		LineWidth:  tc.Line.Width,
		LineCap:    tc.Line.Cap.String(),
		LineJoin:   tc.Line.Join.String(),
		MiterLimit: tc.Line.MiterLimit,
		Dash:       pen.Dash,
		Points:     vecsToJSON(tc.Points),
	}

	regions := &stepline.Regions{}
	b := stepline.NewBuilder2D(nil, regions)
	for i := 1; i < len(points); i++ {
		step, _, err := b.DrawStep(points, i)
		if err != nil {
			return jsonTestCase{}, err
		}
		js := jsonStep{
			Index:  i,
			Corner: []float64{step.Corner.X, step.Corner.Y},
		}
		verts := []vec.Vec2{step.First.Start, step.Corner, step.Last.End}
		for _, o := range pen.Outlines(verts) {
			if o.Widened {
				js.Outlines = append(js.Outlines, vecsToJSON(o.Path.Coords))
			}
		}
		jtc.Steps = append(jtc.Steps, js)
	}
	for _, r := range regions.List {
		jtc.Regions = append(jtc.Regions, jsonRegion{
			PointIndex: r.PointIndex,
			Widened:    isClosed(r.Path),
			Coords:     r.Coords,
		})
	}
	return jtc, nil
}

func vecsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}

func isClosed(p *path.Data) bool {
	return len(p.Cmds) > 0 && p.Cmds[len(p.Cmds)-1] == path.CmdClose
}
