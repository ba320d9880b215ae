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

package stepline

import "seehuhn.de/go/geom/vec"

// Connector decomposes the connection between two consecutive chart
// points into a polyline.
type Connector interface {
	// Decompose returns the vertices of the polyline from p1 to p2,
	// including both endpoints.
	Decompose(p1, p2 vec.Vec2) []vec.Vec2
}

// DirectConnector joins two points by a straight line.
type DirectConnector struct{}

// Decompose implements the [Connector] interface.
func (DirectConnector) Decompose(p1, p2 vec.Vec2) []vec.Vec2 {
	return []vec.Vec2{p1, p2}
}

// StepConnector joins two points by two orthogonal segments.
type StepConnector struct{}

// Decompose implements the [Connector] interface.
func (StepConnector) Decompose(p1, p2 vec.Vec2) []vec.Vec2 {
	return []vec.Vec2{p1, {X: p2.X, Y: p1.Y}, p2}
}

// Pass draws the lines of one series of a flat line chart.
type Pass struct {
	Connector Connector
	Painter   LinePainter
	Regions   HotRegionSink
	Transform Transform

	// Markers is called for every point after the lines are drawn, for
	// all connectors alike.
	Markers MarkerPainter

	HitMargin float64
}

// NewPass returns a Pass with the default hit margin.
func NewPass(c Connector, painter LinePainter, regions HotRegionSink) *Pass {
	return &Pass{
		Connector: c,
		Painter:   painter,
		Regions:   regions,
		HitMargin: DefaultHitMargin,
	}
}

// DrawSeries connects all consecutive points of a series.
func (p *Pass) DrawSeries(points []Point2D) error {
	b := &Builder2D{
		Painter:   p.Painter,
		Regions:   p.Regions,
		Transform: p.Transform,
		HitMargin: p.HitMargin,
	}

	for i := 1; i < len(points); i++ {
		if _, isStep := p.Connector.(StepConnector); isStep {
			if _, _, err := b.DrawStep(points, i); err != nil {
				return err
			}
			continue
		}
		p.drawConnection(b, points, i)
	}

	if p.Markers != nil {
		for i, pt := range points {
			p.Markers.DrawMarker(pt, i)
		}
	}
	return nil
}

// drawConnection draws the connection to points[i] with an arbitrary
// connector.  The piece reaching points[i] belongs to point i, all
// earlier pieces belong to point i-1.
func (p *Pass) drawConnection(b *Builder2D, points []Point2D, i int) {
	verts := p.Connector.Decompose(points[i-1].Pos, points[i].Pos)
	attr := pointAttributes(points[i].Data)

	segs := make([]Segment, 0, len(verts))
	for k := 1; k < len(verts); k++ {
		role := RoleFirst
		if k == len(verts)-1 {
			role = RoleLast
		}
		segs = append(segs, Segment{Role: role, Start: verts[k-1], End: verts[k], Attr: attr})
	}

	if p.Painter != nil {
		for _, seg := range segs {
			p.Painter.DrawLine(seg.Attr, seg.Start, seg.End)
		}
	}
	if p.Regions != nil {
		for k := len(segs) - 1; k >= 0; k-- {
			if segs[k].Role == RoleLast {
				b.addRegion(segs[k], points[i].Data, i)
			} else {
				b.addRegion(segs[k], points[i-1].Data, i-1)
			}
		}
	}
}
