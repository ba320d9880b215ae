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

// Package stepline computes the geometry of step-line chart connectors.
//
// A step joins two consecutive chart points by two orthogonal segments
// meeting at a corner point whose x coordinate is taken from the later
// point and whose y coordinate is taken from the earlier point.  The
// package builds these segments for flat charts ([Builder2D]), submits
// them as surface strips for pseudo-3D charts ([Builder3D]), and produces
// hit regions which map device-space paths back to the originating data
// points.
//
// Drawing is delegated to a [LinePainter] or a [SurfacePainter]; hit
// regions are delivered to a [HotRegionSink].  The subpackages raster and
// pdfpaint contain painters for images and PDF pages.
//
// None of the types in this package are safe for concurrent use.  Each
// render pass of a chart area needs its own [CenterResolver].
package stepline
