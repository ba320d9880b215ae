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

// Package testcases contains named point sequences for testing and
// benchmarking step-line geometry.
package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is a series of points in device space, drawn as a step line.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2 // device space, y pointing down
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels
	Line   Line
}

// Line gives the line parameters of a test case.
type Line struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash is the name of a dash style, "" for solid lines.
	Dash string
}

// Group is a 3D point arrangement where several series may be
// interleaved in one slice.
type Group struct {
	Name string

	// Index is the source index of each array position, Series the
	// series it belongs to and Y its value.
	Index  []int
	Series []int
	Y      []float64

	// CenterOK and Center give the expected center position.
	CenterOK bool
	Center   int
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
