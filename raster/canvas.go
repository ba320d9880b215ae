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

// Package raster draws step lines and surface strips into images.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stepline"
)

// Canvas paints into an RGBA image.  It implements the
// [stepline.LinePainter] and [stepline.SurfacePainter] interfaces.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA

	// Flatness controls the approximation of round caps and joins.
	Flatness float64

	vr *vector.Rasterizer
}

// NewCanvas returns a canvas with a transparent image of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Image:    image.NewRGBA(image.Rect(0, 0, width, height)),
		Flatness: 0.25,
		vr:       vector.NewRasterizer(width, height),
	}
}

// Fill paints the area inside p, using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	if p == nil || col == nil {
		return
	}
	b := c.Image.Bounds()
	c.vr.Reset(b.Dx(), b.Dy())

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[k]
			c.vr.MoveTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			c.vr.LineTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdQuadTo:
			q0, q1 := p.Coords[k], p.Coords[k+1]
			c.vr.QuadTo(float32(q0.X), float32(q0.Y), float32(q1.X), float32(q1.Y))
			k += 2
		case path.CmdCubeTo:
			q0, q1, q2 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			c.vr.CubeTo(float32(q0.X), float32(q0.Y), float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y))
			k += 3
		case path.CmdClose:
			c.vr.ClosePath()
		}
	}
	c.vr.Draw(c.Image, b, image.NewUniform(col), image.Point{})
}

// DrawLine implements the [stepline.LinePainter] interface.  The shadow,
// if any, is painted first.
func (c *Canvas) DrawLine(a stepline.Attributes, from, to vec.Vec2) {
	if a.Color == nil {
		return
	}
	width := a.Width
	if width <= 0 {
		width = 1
	}
	pen := stepline.NewPen(width).WithDash(a.Dash.Pattern(width), 0)
	pen.Flatness = c.Flatness

	if a.ShadowOffset != 0 && a.ShadowColor != nil {
		off := vec.Vec2{X: a.ShadowOffset, Y: a.ShadowOffset}
		c.stroke(pen, []vec.Vec2{from.Add(off), to.Add(off)}, a.ShadowColor)
	}
	c.stroke(pen, []vec.Vec2{from, to}, a.Color)
}

func (c *Canvas) stroke(pen stepline.Pen, pts []vec.Vec2, col color.Color) {
	for _, out := range pen.Outlines(pts) {
		if out.Widened {
			c.Fill(out.Path, col)
		}
	}
}

// DrawSurface implements the [stepline.SurfacePainter] interface.
//
// The strip spans from the segment at depth DepthZ to the segment at
// depth DepthZ+Depth.  Its front and back edges are always bordered; the
// side edge at the step corner only if req.FrontLine is set, the outer
// side edge only if req.ShowPointLines is set.
func (c *Canvas) DrawSurface(req *stepline.SurfaceRequest) (*path.Data, error) {
	q, err := req.Quad()
	if err != nil {
		return nil, err
	}
	outline := &path.Data{}
	outline.MoveTo(q[0]).LineTo(q[1]).LineTo(q[2]).LineTo(q[3]).Close()

	if req.Mode.Has(stepline.OpDraw) {
		c.Fill(outline, shade(req.Color, req.Light, q[1].Sub(q[0])))

		if req.BorderColor != nil && req.BorderWidth > 0 {
			border := stepline.Attributes{
				Color: req.BorderColor,
				Width: req.BorderWidth,
				Dash:  req.Dash,
			}
			c.DrawLine(border, q[0], q[1])
			c.DrawLine(border, q[3], q[2])

			corner, point := req.SideEdges(q)
			if req.FrontLine {
				c.DrawLine(border, corner[0], corner[1])
			}
			if req.ShowPointLines {
				c.DrawLine(border, point[0], point[1])
			}
		}
	}

	if !req.Mode.Has(stepline.OpCalcPath) {
		return nil, nil
	}
	return outline, nil
}

// shade darkens col according to the light style and the direction of
// the strip.  Strips running horizontally face the light.
func shade(col color.Color, light stepline.LightStyle, dir vec.Vec2) color.Color {
	if col == nil {
		return nil
	}
	var f float64
	switch light {
	case stepline.LightSimplistic:
		f = 0.9
	case stepline.LightRealistic:
		f = 0.95
		if l := dir.Length(); l > 0 {
			f -= 0.25 * math.Abs(dir.Y) / l
		}
	default:
		return col
	}
	r, g, b, a := col.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(float64(v>>8) * f)
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: uint8(a >> 8)}
}
