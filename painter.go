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
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// LinePainter strokes straight lines in device space.
type LinePainter interface {
	DrawLine(a Attributes, from, to vec.Vec2)
}

// MarkerPainter draws the marker of a chart point.
type MarkerPainter interface {
	DrawMarker(p Point2D, index int)
}

// HotRegionSink collects hit regions.
type HotRegionSink interface {
	AddHotRegion(r HitRegion)
}

// Area is the chart area a surface belongs to.
type Area struct {
	Name   string
	Bounds rect.Rect // plot area in the drawing plane
}

// LightStyle selects the shading of 3D surfaces.
type LightStyle int

const (
	LightNone LightStyle = iota
	LightSimplistic
	LightRealistic
)

// Face identifies a face of a 3D chart element.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// Operation selects what a surface painter does.  The flags can be
// combined.
type Operation int

const (
	// OpDraw paints the surface.
	OpDraw Operation = 1 << iota

	// OpCalcPath returns the outline of the surface.
	OpCalcPath
)

// Has reports whether all flags of x are set in op.
func (op Operation) Has(x Operation) bool {
	return op&x == x
}

// SurfaceRequest describes one surface strip of a 3D line segment.
type SurfaceRequest struct {
	Area       Area
	Projection Projection
	Light      LightStyle
	Face       Face

	// DepthZ is the depth position of the front edge, Depth the extent of
	// the strip away from the viewer.
	DepthZ, Depth float64

	Color       color.Color
	BorderColor color.Color
	BorderWidth float64
	Dash        DashStyle

	Start, End Point3D

	// Points and PointIndex give the context of the segment: all points
	// of the chart area and the array position of the current point.
	Points     []Point3D
	PointIndex int

	Tension float64
	Mode    Operation
	Role    SegmentRole

	ShowPointLines     bool
	ReverseSeriesOrder bool
	MultiSeries        bool
	Clipped            bool

	// FrontLine allows the painter to stroke the front edge the strip
	// shares with the other segment of the step.  Exactly one of the two
	// requests of a step has this set.
	FrontLine bool
}

// SurfacePainter builds one surface strip.  If req.Mode has OpCalcPath,
// the outline of the strip is returned.  ErrDegenerate signals geometry
// which cannot be drawn.
type SurfacePainter interface {
	DrawSurface(req *SurfaceRequest) (*path.Data, error)
}

// Quad returns the corners of the strip in the drawing plane, in the
// order front start, front end, back end, back start.  The front edge is
// at depth DepthZ, the back edge at DepthZ+Depth.
func (req *SurfaceRequest) Quad() ([4]vec.Vec2, error) {
	proj := req.Projection
	if proj == nil {
		proj = Oblique{}
	}
	z0 := req.DepthZ
	z1 := req.DepthZ + req.Depth
	q := [4]vec.Vec2{
		proj.Project(req.Start.X, req.Start.Y, z0),
		proj.Project(req.End.X, req.End.Y, z0),
		proj.Project(req.End.X, req.End.Y, z1),
		proj.Project(req.Start.X, req.Start.Y, z1),
	}
	for _, v := range q {
		if !isFinite(v) {
			return q, fmt.Errorf("surface from %v to %v: %w", q[0], q[1], ErrDegenerate)
		}
	}
	if math.IsNaN(req.Depth) {
		return q, fmt.Errorf("surface depth: %w", ErrDegenerate)
	}
	return q, nil
}

// SideEdges returns the side edges of a strip with corners q, as
// (front, back) pairs.  The corner edge is the one at the corner of the
// step, the point edge is the one at the data point.
func (req *SurfaceRequest) SideEdges(q [4]vec.Vec2) (corner, point [2]vec.Vec2) {
	if req.Role == RoleLast {
		return [2]vec.Vec2{q[0], q[3]}, [2]vec.Vec2{q[1], q[2]}
	}
	return [2]vec.Vec2{q[1], q[2]}, [2]vec.Vec2{q[0], q[3]}
}
