// seehuhn.de/go/stepline - step-line geometry for charts
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

package raster

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/testcases"
)

var black = color.RGBA{A: 255}

func TestRectangleCoverage(t *testing.T) {
	// a pixel-aligned rectangle covers whole pixels only
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 5}).
		LineTo(vec.Vec2{X: 2, Y: 5}).
		Close()

	c := NewCanvas(8, 8)
	c.Fill(p, black)

	for y := range 8 {
		for x := range 8 {
			inside := x >= 2 && x < 6 && y >= 2 && y < 5
			a := c.Image.RGBAAt(x, y).A
			if inside && a < 250 || !inside && a != 0 {
				t.Errorf("pixel (%d, %d): alpha %d", x, y, a)
			}
		}
	}
}

func TestHalfCoverage(t *testing.T) {
	// the rectangle covers the lower half of row 0
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0.5}).
		LineTo(vec.Vec2{X: 4, Y: 0.5}).
		LineTo(vec.Vec2{X: 4, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	c := NewCanvas(4, 2)
	c.Fill(p, black)
	for x := range 4 {
		a := float64(c.Image.RGBAAt(x, 0).A)
		if math.Abs(a-127.5) > 2 {
			t.Errorf("pixel %d: alpha %g", x, a)
		}
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(64, 64)
	c.DrawLine(stepline.Attributes{Color: black, Width: 4}, vec.Vec2{X: 10, Y: 32}, vec.Vec2{X: 54, Y: 32})

	tests := []struct {
		x, y    int
		covered bool
	}{
		{32, 30, true},
		{32, 33, true},
		{32, 28, false},
		{32, 35, false},
		{8, 32, false},
		{56, 32, false},
	}
	for _, test := range tests {
		a := c.Image.RGBAAt(test.x, test.y).A
		if test.covered && a < 250 || !test.covered && a != 0 {
			t.Errorf("pixel (%d, %d): alpha %d", test.x, test.y, a)
		}
	}
}

func TestDrawLineShadow(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	c := NewCanvas(64, 64)
	a := stepline.Attributes{
		Color:        black,
		Width:        2,
		ShadowColor:  red,
		ShadowOffset: 4,
	}
	c.DrawLine(a, vec.Vec2{X: 10, Y: 20}, vec.Vec2{X: 50, Y: 20})

	if px := c.Image.RGBAAt(30, 20); px.A < 250 || px.R > 5 {
		t.Errorf("line pixel %v", px)
	}
	if px := c.Image.RGBAAt(34, 24); px.A < 250 || px.R < 250 {
		t.Errorf("shadow pixel %v", px)
	}
}

func TestDrawLineDash(t *testing.T) {
	c := NewCanvas(64, 64)
	// pattern 9 on, 3 off, starting at x = 10
	a := stepline.Attributes{Color: black, Width: 3, Dash: stepline.DashDash}
	c.DrawLine(a, vec.Vec2{X: 10, Y: 32}, vec.Vec2{X: 58, Y: 32})

	if a := c.Image.RGBAAt(14, 32).A; a < 250 {
		t.Errorf("dash pixel: alpha %d", a)
	}
	if a := c.Image.RGBAAt(20, 32).A; a != 0 {
		t.Errorf("gap pixel: alpha %d", a)
	}
	if a := c.Image.RGBAAt(26, 32).A; a < 250 {
		t.Errorf("second dash pixel: alpha %d", a)
	}
}

func TestDrawLineNoColor(t *testing.T) {
	c := NewCanvas(16, 16)
	c.DrawLine(stepline.Attributes{Width: 4}, vec.Vec2{X: 0, Y: 8}, vec.Vec2{X: 16, Y: 8})
	for _, v := range c.Image.Pix {
		if v != 0 {
			t.Fatal("line without color was drawn")
		}
	}
}

func TestDrawSurface(t *testing.T) {
	req := &stepline.SurfaceRequest{
		Projection: stepline.Oblique{Angle: 90, Scale: 1},
		Depth:      10,
		Color:      black,
		Start:      stepline.Point3D{X: 10, Y: 40},
		End:        stepline.Point3D{X: 50, Y: 40},
		Mode:       stepline.OpDraw | stepline.OpCalcPath,
	}

	c := NewCanvas(64, 64)
	p, err := c.DrawSurface(req)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || len(p.Coords) != 4 || p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Fatalf("unexpected outline %v", p)
	}
	// the strip reaches from y = 40 up to y = 30
	if a := c.Image.RGBAAt(30, 35).A; a < 250 {
		t.Errorf("inside: alpha %d", a)
	}
	if a := c.Image.RGBAAt(30, 45).A; a != 0 {
		t.Errorf("outside: alpha %d", a)
	}

	// path only, nothing drawn
	c = NewCanvas(64, 64)
	req.Mode = stepline.OpCalcPath
	if p, err := c.DrawSurface(req); err != nil || p == nil {
		t.Fatalf("path only: %v, %v", p, err)
	}
	if a := c.Image.RGBAAt(30, 35).A; a != 0 {
		t.Error("surface drawn without OpDraw")
	}

	req.Mode = stepline.OpDraw
	if p, err := c.DrawSurface(req); err != nil || p != nil {
		t.Errorf("draw only: %v, %v", p, err)
	}
}

func TestDrawSurfaceDegenerate(t *testing.T) {
	req := &stepline.SurfaceRequest{
		Start: stepline.Point3D{X: math.NaN()},
		Mode:  stepline.OpDraw,
	}
	_, err := NewCanvas(8, 8).DrawSurface(req)
	if !errors.Is(err, stepline.ErrDegenerate) {
		t.Errorf("got %v", err)
	}
}

func TestShade(t *testing.T) {
	col := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := shade(col, stepline.LightNone, vec.Vec2{X: 1}); got != col {
		t.Errorf("no light: %v", got)
	}
	got := shade(col, stepline.LightSimplistic, vec.Vec2{X: 1}).(color.RGBA)
	if got.R != 180 || got.G != 90 || got.B != 45 || got.A != 255 {
		t.Errorf("simplistic: %v", got)
	}
	flat := shade(col, stepline.LightRealistic, vec.Vec2{X: 1}).(color.RGBA)
	steep := shade(col, stepline.LightRealistic, vec.Vec2{Y: 1}).(color.RGBA)
	if steep.R >= flat.R {
		t.Errorf("steep strip %v not darker than flat strip %v", steep, flat)
	}
}

// BenchmarkDrawAll draws all test cases as step lines.
func BenchmarkDrawAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range []string{"basic", "edge", "dash", "stroke"} {
		cases = append(cases, testcases.All[category]...)
	}
	c := NewCanvas(64, 64)

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			dash, _ := stepline.ParseDashStyle(tc.Line.Dash)
			a := stepline.Attributes{Color: black, Width: tc.Line.Width, Dash: dash}
			for i := 1; i < len(tc.Points); i++ {
				p1, p3 := tc.Points[i-1], tc.Points[i]
				corner := vec.Vec2{X: p3.X, Y: p1.Y}
				c.DrawLine(a, p1, corner)
				c.DrawLine(a, corner, p3)
			}
		}
	}
}
