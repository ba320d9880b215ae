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

// Package pdfpaint draws step lines and surface strips on PDF pages.
//
// PDF output uses the DeviceGray color space; colors are converted to
// their luminance.
package pdfpaint

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stepline"
)

// Painter writes drawing operations to a PDF page.  It implements the
// [stepline.LinePainter] and [stepline.SurfacePainter] interfaces.
type Painter struct {
	Page *document.Page
}

// New returns a Painter drawing on page.
func New(page *document.Page) *Painter {
	return &Painter{Page: page}
}

// DrawLine implements the [stepline.LinePainter] interface.
func (p *Painter) DrawLine(a stepline.Attributes, from, to vec.Vec2) {
	if a.Color == nil {
		return
	}
	if a.ShadowOffset != 0 && a.ShadowColor != nil {
		off := vec.Vec2{X: a.ShadowOffset, Y: a.ShadowOffset}
		p.strokeLine(a.ShadowColor, a.Width, a.Dash, from.Add(off), to.Add(off))
	}
	p.strokeLine(a.Color, a.Width, a.Dash, from, to)
}

func (p *Painter) strokeLine(col color.Color, width float64, dash stepline.DashStyle, from, to vec.Vec2) {
	if width <= 0 {
		width = 1
	}
	page := p.Page
	page.SetStrokeColor(Gray(col))
	page.SetLineWidth(width)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetLineDash(dash.Pattern(width), 0)
	page.MoveTo(from.X, from.Y)
	page.LineTo(to.X, to.Y)
	page.Stroke()
}

// DrawSurface implements the [stepline.SurfacePainter] interface.
// Borders are drawn like in the raster package: front and back edges
// always, the corner side only if req.FrontLine is set.
func (p *Painter) DrawSurface(req *stepline.SurfaceRequest) (*path.Data, error) {
	q, err := req.Quad()
	if err != nil {
		return nil, err
	}
	outline := &path.Data{}
	outline.MoveTo(q[0]).LineTo(q[1]).LineTo(q[2]).LineTo(q[3]).Close()

	if req.Mode.Has(stepline.OpDraw) {
		if req.Color != nil {
			page := p.Page
			page.SetFillColor(Gray(req.Color))
			page.MoveTo(q[0].X, q[0].Y)
			for _, v := range q[1:] {
				page.LineTo(v.X, v.Y)
			}
			page.ClosePath()
			page.Fill()
		}

		if req.BorderColor != nil && req.BorderWidth > 0 {
			p.strokeLine(req.BorderColor, req.BorderWidth, req.Dash, q[0], q[1])
			p.strokeLine(req.BorderColor, req.BorderWidth, req.Dash, q[3], q[2])
			corner, point := req.SideEdges(q)
			if req.FrontLine {
				p.strokeLine(req.BorderColor, req.BorderWidth, req.Dash, corner[0], corner[1])
			}
			if req.ShowPointLines {
				p.strokeLine(req.BorderColor, req.BorderWidth, req.Dash, point[0], point[1])
			}
		}
	}

	if !req.Mode.Has(stepline.OpCalcPath) {
		return nil, nil
	}
	return outline, nil
}

// Gray converts a color to a DeviceGray color of the same luminance.
// Transparency is ignored.
func Gray(col color.Color) pdfcolor.Color {
	g := color.GrayModel.Convert(col).(color.Gray)
	return pdfcolor.DeviceGray(float64(g.Y) / 255)
}
