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
	"slices"
	"testing"

	"seehuhn.de/go/stepline/testcases"
)

// groupPoints converts a test group into 3D points.  Series s is placed
// at depth s.
func groupPoints(g testcases.Group) []Point3D {
	series := map[int]*Series{}
	res := make([]Point3D, len(g.Index))
	for i, idx := range g.Index {
		s := 0
		if g.Series != nil {
			s = g.Series[i]
		}
		if series[s] == nil {
			series[s] = &Series{Name: string(rune('a' + s))}
		}
		y := float64(idx)
		if g.Y != nil {
			y = g.Y[i]
		}
		res[i] = Point3D{
			Index: idx,
			X:     float64(10 * idx),
			Y:     y,
			Z:     float64(s),
			Data: &DataPoint{
				Color:       color.Gray{Y: uint8(10 * i)},
				BorderWidth: 1,
				Series:      series[s],
			},
		}
	}
	return res
}

func TestCenterGroups(t *testing.T) {
	for _, g := range testcases.Groups {
		t.Run(g.Name, func(t *testing.T) {
			c := &CenterResolver{}
			pos, ok := c.Center(groupPoints(g))
			if ok != g.CenterOK || ok && pos != g.Center {
				t.Errorf("Center() = %d, %t, want %d, %t", pos, ok, g.Center, g.CenterOK)
			}
		})
	}
}

func TestCenterShortInput(t *testing.T) {
	for _, points := range [][]Point3D{nil, {}, {{Index: 7}}} {
		c := &CenterResolver{}
		if _, ok := c.Center(points); ok {
			t.Errorf("%d points: unexpected center", len(points))
		}
	}
}

func TestCenterMemoized(t *testing.T) {
	points := []Point3D{{Index: 0}, {Index: 1}, {Index: 2}, {Index: 3}}
	c := &CenterResolver{}
	if _, ok := c.Center(points); ok {
		t.Fatal("simple series has a center")
	}

	// modifying the slice in place does not trigger a new scan
	points[2].Index = 7
	if _, ok := c.Center(points); ok {
		t.Error("result was recomputed for the same slice")
	}

	// a different slice does
	other := slices.Clone(points)
	if pos, ok := c.Center(other); !ok || pos != 1 {
		t.Errorf("new slice: Center() = %d, %t, want 1, true", pos, ok)
	}

	// and so does Reset
	c.Reset()
	if pos, ok := c.Center(points); !ok || pos != 1 {
		t.Errorf("after Reset: Center() = %d, %t, want 1, true", pos, ok)
	}
}

func TestCenterLengthChange(t *testing.T) {
	points := []Point3D{{Index: 0}, {Index: 1}, {Index: 2}, {Index: 0}}
	c := &CenterResolver{}
	if _, ok := c.Center(points[:3]); ok {
		t.Fatal("prefix has a center")
	}
	if pos, ok := c.Center(points); !ok || pos != 2 {
		t.Errorf("Center() = %d, %t, want 2, true", pos, ok)
	}
}
