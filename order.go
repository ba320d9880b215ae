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

// DrawOrder is the order in which the two segments of a 3D step are
// submitted to the surface painter.
type DrawOrder int

const (
	// OrderOriginal submits the segment leaving the earlier point first.
	OrderOriginal DrawOrder = iota

	// OrderReversed submits the segment reaching the later point first.
	OrderReversed
)

func (o DrawOrder) String() string {
	if o == OrderReversed {
		return "reversed"
	}
	return "original"
}

// ResolveOrder decides the draw order of the step ending at array
// position pos, whose earlier point is first.
//
// The order is reversed if the next array slot holds a point with the
// source index of first, since then the group is drawn from the far side
// inwards.  If hasCenter is set, every position at or after center is
// reversed as well, regardless of the lookahead.
func ResolveOrder(points []Point3D, pos int, first Point3D, center int, hasCenter bool) (DrawOrder, error) {
	if pos < 0 || pos >= len(points) {
		return OrderOriginal, fmt.Errorf("position %d of %d points: %w", pos, len(points), ErrInvalidIndex)
	}

	order := OrderOriginal
	if pos+1 < len(points) && points[pos+1].Index == first.Index {
		order = OrderReversed
	}
	// TODO: check with grouped 3D layouts whether the lookahead should
	// win where the two rules disagree.
	if hasCenter && pos >= center {
		order = OrderReversed
	}
	return order, nil
}
