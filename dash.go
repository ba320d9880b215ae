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

// DashStyle selects the dash pattern of a line.
type DashStyle int

const (
	DashNotSet DashStyle = iota
	DashSolid
	DashDash
	DashDashDot
	DashDashDotDot
	DashDot
)

func (d DashStyle) String() string {
	switch d {
	case DashNotSet:
		return "notset"
	case DashSolid:
		return "solid"
	case DashDash:
		return "dash"
	case DashDashDot:
		return "dashdot"
	case DashDashDotDot:
		return "dashdotdot"
	case DashDot:
		return "dot"
	default:
		return "invalid"
	}
}

// ParseDashStyle converts the output of [DashStyle.String] back to a
// DashStyle.
func ParseDashStyle(s string) (DashStyle, bool) {
	for d := DashNotSet; d <= DashDot; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DashNotSet, false
}

// Pattern returns the dash pattern for a line of the given width, as
// alternating on/off lengths.  The result is nil for solid lines.
func (d DashStyle) Pattern(width float64) []float64 {
	var unit []float64
	switch d {
	case DashDash:
		unit = []float64{3, 1}
	case DashDashDot:
		unit = []float64{3, 1, 1, 1}
	case DashDashDotDot:
		unit = []float64{3, 1, 1, 1, 1, 1}
	case DashDot:
		unit = []float64{1, 1}
	default:
		return nil
	}
	// hairlines still get visible gaps
	width = max(width, 1)
	res := make([]float64, len(unit))
	for i, u := range unit {
		res[i] = u * width
	}
	return res
}
