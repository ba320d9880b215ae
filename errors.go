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

import "errors"

var (
	// ErrInvalidIndex is returned when a point index or array position
	// does not address an existing point.
	ErrInvalidIndex = errors.New("stepline: invalid point index")

	// ErrPointNotFound is returned by a PointLookup if no point with the
	// requested source index exists.
	ErrPointNotFound = errors.New("stepline: point not found")

	// ErrDegenerate is returned by painters for geometry which cannot be
	// drawn, for example zero-length or non-finite segments.  Builders
	// recover from this error.
	ErrDegenerate = errors.New("stepline: degenerate geometry")
)
