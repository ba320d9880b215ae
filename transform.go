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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform maps points to device space.
type Transform interface {
	ToDevice(p vec.Vec2) vec.Vec2
}

// MatrixTransform is a Transform given by an affine matrix.
// The zero value maps every point to the origin; use [matrix.Identity]
// for the identity.
type MatrixTransform matrix.Matrix

// ToDevice implements the [Transform] interface.
func (m MatrixTransform) ToDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceCoords flattens the vertices of an outline into x/y pairs in
// device space.  A nil transform is the identity.
func deviceCoords(o Outline, t Transform) []float64 {
	coords := make([]float64, 0, 2*len(o.Path.Coords))
	for _, pt := range o.Path.Coords {
		if t != nil {
			pt = t.ToDevice(pt)
		}
		coords = append(coords, pt.X, pt.Y)
	}
	return coords
}

// Projection maps a point of the 3D chart space to the drawing plane.
type Projection interface {
	Project(x, y, z float64) vec.Vec2
}

// Oblique is a cabinet-style oblique projection.  Depth is drawn along
// a line at Angle degrees above the x axis, shortened by Scale.  The y
// axis of the drawing plane points downwards, as in device space.
type Oblique struct {
	Angle float64
	Scale float64
}

// Project implements the [Projection] interface.
func (o Oblique) Project(x, y, z float64) vec.Vec2 {
	sin, cos := math.Sincos(o.Angle * math.Pi / 180)
	return vec.Vec2{
		X: x + z*o.Scale*cos,
		Y: y - z*o.Scale*sin,
	}
}
