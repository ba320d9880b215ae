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

package chartfile

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stepline"
)

// NewConnector returns the connector selected by the chart file.
func (c *Chart) NewConnector() stepline.Connector {
	if c.Connector == "direct" {
		return stepline.DirectConnector{}
	}
	return stepline.StepConnector{}
}

// LightStyle returns the light style selected by the chart file.
func (c *Chart) LightStyle() stepline.LightStyle {
	l, _ := parseLight(c.Light)
	return l
}

// Projection returns the projection used in 3D mode.
func (c *Chart) Projection() stepline.Oblique {
	return stepline.Oblique{Angle: c.Angle, Scale: 1}
}

// Points2D lays out every series as a separate slice of points.
func (c *Chart) Points2D() ([][]stepline.Point2D, error) {
	data, err := c.dataPoints()
	if err != nil {
		return nil, err
	}
	res := make([][]stepline.Point2D, len(c.Series))
	for s, series := range c.Series {
		points := make([]stepline.Point2D, len(series.Values))
		for k, v := range series.Values {
			points[k] = stepline.Point2D{
				Pos:  c.position(k, v),
				Data: data[s][k],
			}
		}
		res[s] = points
	}
	return res, nil
}

// Points3D lays out all series in one slice, category by category.
// Series s is placed at depth s times the series depth.
func (c *Chart) Points3D() ([]stepline.Point3D, error) {
	data, err := c.dataPoints()
	if err != nil {
		return nil, err
	}
	var res []stepline.Point3D
	for k := range c.categories() {
		for s, series := range c.Series {
			if k >= len(series.Values) {
				continue
			}
			pos := c.position(k, series.Values[k])
			res = append(res, stepline.Point3D{
				Index: k,
				X:     pos.X,
				Y:     pos.Y,
				Z:     float64(s) * c.Depth,
				Empty: data[s][k].Empty,
				Data:  data[s][k],
			})
		}
	}
	return res, nil
}

// dataPoints converts the series attributes into data points.
func (c *Chart) dataPoints() ([][]*stepline.DataPoint, error) {
	res := make([][]*stepline.DataPoint, len(c.Series))
	for s, series := range c.Series {
		col, err := ParseColor(series.Color)
		if err != nil {
			return nil, err
		}
		if col == nil {
			col = defaultColors[s%len(defaultColors)]
		}
		border, err := ParseColor(series.BorderColor)
		if err != nil {
			return nil, err
		}
		shadow, err := ParseColor(series.ShadowColor)
		if err != nil {
			return nil, err
		}
		dash := stepline.DashSolid
		if series.Dash != "" {
			dash, _ = stepline.ParseDashStyle(series.Dash)
		}

		ss := &stepline.Series{
			Name:         series.Name,
			ShadowColor:  shadow,
			ShadowOffset: series.ShadowOffset,
		}
		points := make([]*stepline.DataPoint, len(series.Values))
		for k := range series.Values {
			points[k] = &stepline.DataPoint{
				Color:       col,
				BorderColor: border,
				BorderWidth: series.Width,
				BorderDash:  dash,
				Empty:       slices.Contains(series.Empty, k),
				Series:      ss,
			}
		}
		res[s] = points
	}
	return res, nil
}

// categories returns the length of the longest series.
func (c *Chart) categories() int {
	n := 0
	for _, s := range c.Series {
		n = max(n, len(s.Values))
	}
	return n
}

// position maps value v at category k to device space, with the y axis
// pointing down.
func (c *Chart) position(k int, v float64) vec.Vec2 {
	w := float64(c.Width) - 2*c.Margin
	h := float64(c.Height) - 2*c.Margin

	x := c.Margin + w/2
	if n := c.categories(); n > 1 {
		x = c.Margin + float64(k)*w/float64(n-1)
	}

	lo, hi := c.valueRange()
	y := float64(c.Height) - c.Margin - (v-lo)/(hi-lo)*h
	return vec.Vec2{X: x, Y: y}
}

// valueRange returns the range of all values.  The range is never empty.
func (c *Chart) valueRange() (lo, hi float64) {
	first := true
	for _, s := range c.Series {
		for _, v := range s.Values {
			if first {
				lo, hi = v, v
				first = false
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// defaultColors is used for series without a color of their own.
var defaultColors = []color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.NRGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}
