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

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"basic":  basicCases,
	"edge":   edgeCases,
	"dash":   dashCases,
	"stroke": strokeCases,
}

// Groups contains the 3D point arrangements.
var Groups = []Group{
	{
		Name:   "single",
		Index:  []int{0, 1, 2, 3},
		Series: []int{0, 0, 0, 0},
		Y:      []float64{40, 10, 30, 20},
	},
	{
		// two series side by side, category by category
		Name:     "interleaved",
		Index:    []int{0, 0, 1, 1, 2, 2},
		Series:   []int{0, 1, 0, 1, 0, 1},
		Y:        []float64{40, 45, 10, 20, 30, 35},
		CenterOK: true,
		Center:   0,
	},
	{
		// drawn from both ends towards the middle
		Name:     "from_sides",
		Index:    []int{0, 1, 2, 5, 4, 3},
		Series:   []int{0, 0, 0, 0, 0, 0},
		Y:        []float64{40, 10, 30, 20, 25, 15},
		CenterOK: true,
		Center:   2,
	},
}
