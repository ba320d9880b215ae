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

import "fmt"

// PointLookup locates a point by its source index in a slice which may
// contain several interleaved series.
type PointLookup interface {
	// FindPoint returns the array position of the point with the given
	// source index.  If neighbor is not nil, only points of the same
	// series as neighbor are considered.  The array position hint is
	// where the search starts.
	FindPoint(points []Point3D, index int, neighbor *Point3D, hint int) (int, error)
}

// DefaultLookup is the PointLookup used when none is configured.
// The positions next to the hint are tried first, then all points in
// order.
type DefaultLookup struct{}

// FindPoint implements the [PointLookup] interface.
func (DefaultLookup) FindPoint(points []Point3D, index int, neighbor *Point3D, hint int) (int, error) {
	match := func(pos int) bool {
		p := &points[pos]
		return p.Index == index && (neighbor == nil || sameSeries(p, neighbor))
	}

	if hint >= 0 && hint < len(points) {
		if hint+1 < len(points) && match(hint+1) {
			return hint + 1, nil
		}
		if hint > 0 && match(hint-1) {
			return hint - 1, nil
		}
	}
	for pos := range points {
		if match(pos) {
			return pos, nil
		}
	}
	return 0, fmt.Errorf("source index %d: %w", index, ErrPointNotFound)
}

func sameSeries(a, b *Point3D) bool {
	if a.Data == nil || b.Data == nil {
		return a.Data == b.Data
	}
	if a.Data.Series == b.Data.Series {
		return true
	}
	return a.Data.seriesName() == b.Data.seriesName()
}
