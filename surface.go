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
	"errors"
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/path"
)

// emptyPointColor is used for empty points without a color of their own.
var emptyPointColor = color.Gray{Y: 0x80}

// SurfaceParams are the per-call inputs of [Builder3D.BuildSurface].
type SurfaceParams struct {
	Area       Area
	Projection Projection
	Light      LightStyle

	DepthZ, Depth float64

	// Prev is the previous point of the group.  If its data point is
	// empty, its attributes are used for the step.
	Prev Point3D

	Mode    Operation
	Clipped bool
}

// Builder3D draws the steps of a pseudo-3D line chart as two surface
// strips each.
type Builder3D struct {
	Surface SurfacePainter

	// Lookup finds the earlier point of a step.  If nil, DefaultLookup is
	// used.
	Lookup PointLookup

	// Center holds the center index of the current render pass.  If nil,
	// only the lookahead rule decides the draw order.
	Center *CenterResolver

	// Regions receives the hit regions.  If nil, hit testing is disabled.
	Regions   HotRegionSink
	Transform Transform

	MultiSeries        bool
	ShowPointLines     bool
	UseBorderColor     bool
	ReverseSeriesOrder bool
}

// BuildSurface draws the step ending at array position pos.
//
// The earlier point is the point whose source index is one less than the
// source index of points[pos].  Both segments are submitted to the
// surface painter in the order given by [ResolveOrder].  If p.Mode
// includes OpCalcPath, the outlines of both strips are returned as one
// path; otherwise the result is nil.
func (b *Builder3D) BuildSurface(p SurfaceParams, points []Point3D, pos int) (*path.Data, error) {
	if pos < 0 || pos >= len(points) {
		return nil, fmt.Errorf("position %d of %d points: %w", pos, len(points), ErrInvalidIndex)
	}

	second := points[pos]
	var neighbor *Point3D
	if b.MultiSeries {
		neighbor = &second
	}
	lookup := b.Lookup
	if lookup == nil {
		lookup = DefaultLookup{}
	}
	firstPos, err := lookup.FindPoint(points, second.Index-1, neighbor, pos)
	if err != nil {
		return nil, fmt.Errorf("step to position %d: %w", pos, err)
	}
	first := points[firstPos]

	var center int
	var hasCenter bool
	if b.Center != nil {
		center, hasCenter = b.Center.Center(points)
	}
	order, err := ResolveOrder(points, pos, first, center, hasCenter)
	if err != nil {
		return nil, err
	}

	col, dash, attr := b.surfaceAttributes(p.Prev, first, second)

	// The corner carries the data point of the opposite end, so that each
	// strip has both data points of the step available.
	corner := Point3D{Index: second.Index, X: second.X, Y: first.Y, Z: second.Z}
	firstCorner, lastCorner := corner, corner
	firstCorner.Data = second.Data
	lastCorner.Data = first.Data

	mode := p.Mode
	if b.Regions != nil {
		mode |= OpCalcPath
	}
	newRequest := func(role SegmentRole, start, end Point3D) *SurfaceRequest {
		req := &SurfaceRequest{
			Area:               p.Area,
			Projection:         p.Projection,
			Light:              p.Light,
			Face:               FaceTop,
			DepthZ:             p.DepthZ,
			Depth:              p.Depth,
			Color:              col,
			Dash:               dash,
			Start:              start,
			End:                end,
			Points:             points,
			PointIndex:         pos,
			Mode:               mode,
			Role:               role,
			ShowPointLines:     b.ShowPointLines,
			ReverseSeriesOrder: b.ReverseSeriesOrder,
			MultiSeries:        b.MultiSeries,
			Clipped:            p.Clipped,
		}
		if attr != nil {
			req.BorderColor = attr.BorderColor
			req.BorderWidth = attr.BorderWidth
		}
		return req
	}
	firstReq := newRequest(RoleFirst, first, firstCorner)
	lastReq := newRequest(RoleLast, lastCorner, second)

	submissions := []*SurfaceRequest{firstReq, lastReq}
	if order == OrderReversed {
		submissions[0], submissions[1] = lastReq, firstReq
	}

	// the shared front edge is stroked by the first submission only
	frontLine := true
	var firstPath, lastPath *path.Data
	for _, req := range submissions {
		req.FrontLine = frontLine
		frontLine = false

		res, err := b.Surface.DrawSurface(req)
		if errors.Is(err, ErrDegenerate) {
			Logger().Debug("surface skipped",
				"pos", pos, "role", req.Role, "error", err)
			continue
		} else if err != nil {
			return nil, err
		}
		if req.Role == RoleFirst {
			firstPath = res
		} else {
			lastPath = res
		}
	}

	if b.Regions != nil {
		b.addRegion(lastPath, second.Data, second.Index)
		b.addRegion(firstPath, first.Data, second.Index-1)
	}

	if !p.Mode.Has(OpCalcPath) {
		return nil, nil
	}
	res := &path.Data{}
	appendPath(res, firstPath)
	appendPath(res, lastPath)
	return res, nil
}

// surfaceAttributes chooses the color, dash style and data point used for
// the border of a step.  The previous point of the group wins if it is
// empty, otherwise the endpoint with the larger source index.
func (b *Builder3D) surfaceAttributes(prev, first, second Point3D) (color.Color, DashStyle, *DataPoint) {
	var attr Point3D
	switch {
	case isEmpty(prev):
		attr = prev
	case first.Index > second.Index:
		attr = first
	default:
		attr = second
	}

	dp := attr.Data
	if dp == nil {
		return nil, DashNotSet, nil
	}
	col := dp.Color
	if b.UseBorderColor {
		col = dp.BorderColor
	}
	dash := dp.BorderDash
	if isEmpty(attr) && dp.Color == nil {
		col = emptyPointColor
	}
	if isEmpty(attr) && dash == DashNotSet {
		dash = DashSolid
	}
	return col, dash, dp
}

func isEmpty(p Point3D) bool {
	return p.Empty || p.Data != nil && p.Data.Empty
}

// addRegion registers the outline of one strip as a filled hit region.
func (b *Builder3D) addRegion(p *path.Data, dp *DataPoint, index int) {
	if p == nil || len(p.Cmds) == 0 {
		return
	}
	b.Regions.AddHotRegion(HitRegion{
		Path:       p,
		Filled:     true,
		Coords:     deviceCoords(Outline{Path: p}, b.Transform),
		Point:      dp,
		SeriesName: dp.seriesName(),
		PointIndex: index,
	})
}

// appendPath appends all subpaths of src to dst.
func appendPath(dst, src *path.Data) {
	if src == nil {
		return
	}
	dst.Cmds = append(dst.Cmds, src.Cmds...)
	dst.Coords = append(dst.Coords, src.Coords...)
}
