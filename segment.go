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

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// DefaultHitMargin is added to the line width when a segment is widened
// into its hit region.
const DefaultHitMargin = 2

// StepSegments decomposes the step from points[i-1] to points[i] into
// two orthogonal segments.  The corner takes its x coordinate from
// points[i] and its y coordinate from points[i-1].  Both segments use
// the attributes of points[i].
//
// The first point of a series starts no step: for i <= 0 the result ok
// is false.  An index beyond the end of points gives ErrInvalidIndex.
func StepSegments(points []Point2D, i int) (step Step, ok bool, err error) {
	if len(points) == 0 || i >= len(points) {
		return Step{}, false, fmt.Errorf("step %d of %d points: %w", i, len(points), ErrInvalidIndex)
	}
	if i <= 0 {
		return Step{}, false, nil
	}

	p1 := points[i-1].Pos
	p3 := points[i].Pos
	p2 := vec.Vec2{X: p3.X, Y: p1.Y}
	attr := pointAttributes(points[i].Data)

	step = Step{
		Corner: p2,
		First:  Segment{Role: RoleFirst, Start: p1, End: p2, Attr: attr},
		Last:   Segment{Role: RoleLast, Start: p2, End: p3, Attr: attr},
	}
	return step, true, nil
}

// pointAttributes returns the line attributes of a data point, with the
// shadow settings of its series.
func pointAttributes(dp *DataPoint) Attributes {
	if dp == nil {
		return Attributes{}
	}
	a := Attributes{
		Color: dp.Color,
		Width: dp.BorderWidth,
		Dash:  dp.BorderDash,
	}
	if dp.Series != nil {
		a.ShadowColor = dp.Series.ShadowColor
		a.ShadowOffset = dp.Series.ShadowOffset
	}
	return a
}

// Builder2D draws the steps of a flat line chart.
type Builder2D struct {
	// Painter strokes the segments.  If nil, nothing is drawn.
	Painter LinePainter

	// Regions receives the hit regions.  If nil, hit testing is disabled.
	Regions HotRegionSink

	// Transform maps hit region coordinates to device space.  If nil,
	// coordinates are used as they are.
	Transform Transform

	// HitMargin is added to the line width of hit regions.
	HitMargin float64
}

// NewBuilder2D returns a Builder2D with the default hit margin.
func NewBuilder2D(painter LinePainter, regions HotRegionSink) *Builder2D {
	return &Builder2D{
		Painter:   painter,
		Regions:   regions,
		HitMargin: DefaultHitMargin,
	}
}

// DrawStep draws the step ending at points[i] and registers its hit
// regions.  The segment reaching points[i] is attributed to point i, the
// segment leaving points[i-1] to point i-1.  See [StepSegments] for the
// meaning of ok.
func (b *Builder2D) DrawStep(points []Point2D, i int) (step Step, ok bool, err error) {
	step, ok, err = StepSegments(points, i)
	if !ok {
		return step, ok, err
	}

	if b.Painter != nil {
		b.Painter.DrawLine(step.First.Attr, step.First.Start, step.First.End)
		b.Painter.DrawLine(step.Last.Attr, step.Last.Start, step.Last.End)
	}

	if b.Regions != nil {
		b.addRegion(step.Last, points[i].Data, i)
		b.addRegion(step.First, points[i-1].Data, i-1)
	}
	return step, true, nil
}

// addRegion widens seg and registers the result as the hit region of dp.
func (b *Builder2D) addRegion(seg Segment, dp *DataPoint, index int) {
	pen := NewPen(seg.Attr.Width + b.HitMargin)
	out := pen.Widen(seg.Start, seg.End)
	b.Regions.AddHotRegion(HitRegion{
		Path:       out.Path,
		Coords:     deviceCoords(out, b.Transform),
		Point:      dp,
		SeriesName: dp.seriesName(),
		PointIndex: index,
	})
}
