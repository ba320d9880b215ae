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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Regions is a HotRegionSink which keeps all regions in memory and can
// answer hit tests.
type Regions struct {
	List []HitRegion

	// Tolerance is the distance within which a point hits a region whose
	// path could not be widened.
	Tolerance float64
}

// AddHotRegion implements the [HotRegionSink] interface.
func (rs *Regions) AddHotRegion(r HitRegion) {
	rs.List = append(rs.List, r)
}

// HitTest returns the region containing pt.  Regions added later are on
// top of earlier ones.  Closed paths use the nonzero winding rule, open
// paths are hit within Tolerance of the path.
func (rs *Regions) HitTest(pt vec.Vec2) (HitRegion, bool) {
	for i := len(rs.List) - 1; i >= 0; i-- {
		if rs.contains(rs.List[i].Path, pt) {
			return rs.List[i], true
		}
	}
	return HitRegion{}, false
}

func (rs *Regions) contains(p *path.Data, pt vec.Vec2) bool {
	if p == nil {
		return false
	}

	winding := 0
	near := false
	closed := false
	var current, start vec.Vec2
	edge := func(a, b vec.Vec2) {
		winding += crossing(a, b, pt)
		if rs.Tolerance > 0 && distToSegment(pt, a, b) <= rs.Tolerance {
			near = true
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				// implicitly close the previous subpath for winding
				winding += crossing(current, start, pt)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			edge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			edge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			edge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			closed = true
			edge(current, start)
			current = start
		}
	}
	if closed && winding != 0 {
		return true
	}
	return near
}

// crossing returns the signed contribution of the edge a→b to the winding
// number around pt: +1 for an upward edge passing left of pt, -1 for a
// downward one.
func crossing(a, b, pt vec.Vec2) int {
	if a.Y <= pt.Y {
		if b.Y > pt.Y && cross(b.Sub(a), pt.Sub(a)) > 0 {
			return 1
		}
	} else if b.Y <= pt.Y && cross(b.Sub(a), pt.Sub(a)) < 0 {
		return -1
	}
	return 0
}

func distToSegment(pt, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return pt.Sub(a).Length()
	}
	t := max(0, min(1, pt.Sub(a).Dot(d)/l2))
	return pt.Sub(a.Add(d.Mul(t))).Length()
}
