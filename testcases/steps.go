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

package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var solid4 = Line{
	Width:      4,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}

var basicCases = []TestCase{
	{
		// (0,0), (1,5), (2,2) scaled by 10 and moved away from the border
		Name:   "rise_fall",
		Points: []vec.Vec2{pt(10, 10), pt(20, 60), pt(30, 30)},
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
	{
		Name:   "staircase",
		Points: staircase(8, 56, 8, 6),
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
	{
		Name:   "zigzag",
		Points: zigzag(6, 32, 58, 20, 7),
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
}

var edgeCases = []TestCase{
	{
		// the vertical segments have zero length
		Name:   "flat",
		Points: []vec.Vec2{pt(10, 32), pt(30, 32), pt(54, 32)},
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
	{
		// the horizontal segments have zero length
		Name:   "vertical",
		Points: []vec.Vec2{pt(32, 10), pt(32, 30), pt(32, 54)},
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
	{
		Name:   "single_point",
		Points: []vec.Vec2{pt(32, 32)},
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
	{
		Name:   "backwards",
		Points: []vec.Vec2{pt(54, 10), pt(32, 50), pt(10, 20)},
		Width:  64,
		Height: 64,
		Line:   solid4,
	},
}

var dashCases = []TestCase{
	{
		Name:   "dash",
		Points: []vec.Vec2{pt(5, 50), pt(59, 14)},
		Width:  64,
		Height: 64,
		Line:   Line{Width: 3, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10, Dash: "dash"},
	},
	{
		Name:   "dot",
		Points: []vec.Vec2{pt(5, 50), pt(59, 14)},
		Width:  64,
		Height: 64,
		Line:   Line{Width: 3, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10, Dash: "dot"},
	},
	{
		Name:   "dash_dot_dot",
		Points: staircase(4, 60, 10, 4),
		Width:  64,
		Height: 64,
		Line:   Line{Width: 2, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10, Dash: "dashdotdot"},
	},
}

var strokeCases = []TestCase{
	{
		Name:   "corner_round",
		Points: []vec.Vec2{pt(10, 50), pt(50, 14)},
		Width:  64,
		Height: 64,
		Line:   Line{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "corner_bevel",
		Points: []vec.Vec2{pt(10, 50), pt(50, 14)},
		Width:  64,
		Height: 64,
		Line:   Line{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinBevel, MiterLimit: 10},
	},
}

// staircase returns n points evenly spaced from x1 to x2, starting at
// height y0 and moving down by 50/n per point.
func staircase(x1, x2, y0, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	dx := float64(x2-x1) / float64(n-1)
	for i := range n {
		res[i] = pt(float64(x1)+float64(i)*dx, float64(y0)+float64(i)*(50/float64(n)))
	}
	return res
}

// zigzag returns n points alternating between cy-amplitude/2 and
// cy+amplitude/2, evenly spaced from x1 to x2.
func zigzag(x1, cy, x2, amplitude float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	dx := (x2 - x1) / float64(n-1)
	for i := range n {
		y := cy - amplitude/2
		if i%2 == 1 {
			y = cy + amplitude/2
		}
		res[i] = pt(x1+float64(i)*dx, y)
	}
	return res
}
