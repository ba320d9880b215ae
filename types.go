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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Series holds the per-series attributes used when drawing steps.
type Series struct {
	Name         string
	ShadowColor  color.Color
	ShadowOffset float64
}

// DataPoint holds the visual attributes of a single chart value.
// Nil colors and DashNotSet mean "not set".
type DataPoint struct {
	Color       color.Color
	BorderColor color.Color
	BorderWidth float64
	BorderDash  DashStyle

	// Empty marks a placeholder for a missing value.
	Empty bool

	Series *Series
}

// seriesName returns the name of the series owning dp, or "" if unknown.
func (dp *DataPoint) seriesName() string {
	if dp == nil || dp.Series == nil {
		return ""
	}
	return dp.Series.Name
}

// Point2D is a point in device space together with the data point it
// was produced from.
type Point2D struct {
	Pos  vec.Vec2
	Data *DataPoint
}

// Point3D is a projected point of a pseudo-3D chart.
//
// Several series may be interleaved in one slice of points.  Index is the
// position of the point within its own series (the source index); this is
// in general different from the position in the slice.
type Point3D struct {
	Index int     // source index
	X, Y  float64 // position in the chart plane
	Z     float64 // depth position
	Empty bool
	Data  *DataPoint
}

// Attributes are the resolved visual attributes of a segment.
type Attributes struct {
	Color        color.Color
	Width        float64
	Dash         DashStyle
	ShadowColor  color.Color
	ShadowOffset float64
}

// SegmentRole tells whether a segment starts or ends a step.
type SegmentRole int

const (
	// RoleFirst is the segment from the earlier point to the corner.
	RoleFirst SegmentRole = iota

	// RoleLast is the segment from the corner to the later point.
	RoleLast
)

func (r SegmentRole) String() string {
	switch r {
	case RoleFirst:
		return "first"
	case RoleLast:
		return "last"
	default:
		return "invalid"
	}
}

// Segment is one of the two orthogonal lines of a step.
type Segment struct {
	Role       SegmentRole
	Start, End vec.Vec2
	Attr       Attributes
}

// Step is the decomposition of one pair of consecutive points.
type Step struct {
	Corner vec.Vec2
	First  Segment // earlier point to corner
	Last   Segment // corner to later point
}

// HitRegion associates a path with the data point it represents.
type HitRegion struct {
	Path   *path.Data
	Filled bool

	// Coords holds the path vertices in device space, as x/y pairs.
	Coords []float64

	Point      *DataPoint
	SeriesName string
	PointIndex int
}
