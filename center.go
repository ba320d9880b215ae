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

// CenterResolver finds the array position at which the drawing direction
// of a grouped multi-series layout flips.  The result is computed once
// and reused for later calls with the same point slice.
//
// A CenterResolver belongs to one render pass of one chart area and must
// not be shared between concurrent passes.
type CenterResolver struct {
	resolved bool
	pos      int
	ok       bool

	// identity of the slice the result was computed for
	first *Point3D
	n     int
}

// Center returns the array position where the drawing direction flips.
// The result ok is false if points form a single simple series, where
// consecutive source indices always differ by one.
//
// The scan is repeated only if points is a different slice than in the
// previous call, or after [CenterResolver.Reset].
func (c *CenterResolver) Center(points []Point3D) (pos int, ok bool) {
	var first *Point3D
	if len(points) > 0 {
		first = &points[0]
	}
	if c.resolved && c.first == first && c.n == len(points) {
		return c.pos, c.ok
	}

	c.pos, c.ok = findCenter(points)
	c.resolved = true
	c.first = first
	c.n = len(points)
	Logger().Debug("center index resolved", "points", len(points), "pos", c.pos, "ok", c.ok)
	return c.pos, c.ok
}

// Reset discards the memoized result.
func (c *CenterResolver) Reset() {
	*c = CenterResolver{}
}

func findCenter(points []Point3D) (int, bool) {
	for i := 1; i < len(points); i++ {
		d := points[i].Index - points[i-1].Index
		if d != 1 && d != -1 {
			return i - 1, true
		}
	}
	return 0, false
}
