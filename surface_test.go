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
	"errors"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stepline/testcases"
)

// surfaceRecorder is a SurfacePainter which remembers all requests.
// If req.Mode has OpCalcPath, the front edge of the strip is returned.
type surfaceRecorder struct {
	reqs []SurfaceRequest
	err  func(req *SurfaceRequest) error
}

func (r *surfaceRecorder) DrawSurface(req *SurfaceRequest) (*path.Data, error) {
	r.reqs = append(r.reqs, *req)
	if r.err != nil {
		if err := r.err(req); err != nil {
			return nil, err
		}
	}
	if !req.Mode.Has(OpCalcPath) {
		return nil, nil
	}
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: req.Start.X, Y: req.Start.Y}).
		LineTo(vec.Vec2{X: req.End.X, Y: req.End.Y}).
		LineTo(vec.Vec2{X: req.End.X, Y: req.End.Y + 1}).
		Close()
	return p, nil
}

func TestBuildSurfaceOriginalOrder(t *testing.T) {
	points := groupPoints(testcases.Groups[0]) // single series
	rec := &surfaceRecorder{}
	b := &Builder3D{Surface: rec, Center: &CenterResolver{}}

	res, err := b.BuildSurface(SurfaceParams{Mode: OpDraw}, points, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Error("path returned without OpCalcPath")
	}
	if len(rec.reqs) != 2 {
		t.Fatalf("%d submissions, want 2", len(rec.reqs))
	}

	first, last := rec.reqs[0], rec.reqs[1]
	if first.Role != RoleFirst || last.Role != RoleLast {
		t.Fatalf("submitted %s, %s", first.Role, last.Role)
	}
	if !first.FrontLine || last.FrontLine {
		t.Errorf("front line flags %t, %t", first.FrontLine, last.FrontLine)
	}

	p1, p3 := points[1], points[2]
	if first.Start.Index != p1.Index || last.End.Index != p3.Index {
		t.Errorf("endpoints %d and %d", first.Start.Index, last.End.Index)
	}
	for _, c := range []Point3D{first.End, last.Start} {
		if c.X != p3.X || c.Y != p1.Y || c.Z != p3.Z {
			t.Errorf("corner at (%g, %g, %g)", c.X, c.Y, c.Z)
		}
	}
	if first.End.Data != p3.Data || last.Start.Data != p1.Data {
		t.Error("corner does not carry the opposite data point")
	}
	if first.Face != FaceTop || first.PointIndex != 2 || len(first.Points) != len(points) {
		t.Errorf("unexpected context %v %d %d", first.Face, first.PointIndex, len(first.Points))
	}
}

func TestBuildSurfaceReversedOrder(t *testing.T) {
	points := groupPoints(testcases.Groups[2]) // from_sides, center 2
	rec := &surfaceRecorder{}
	b := &Builder3D{Surface: rec, Center: &CenterResolver{}}

	// points[3] has source index 5, its predecessor is at position 4
	if _, err := b.BuildSurface(SurfaceParams{Mode: OpDraw}, points, 3); err != nil {
		t.Fatal(err)
	}
	if len(rec.reqs) != 2 {
		t.Fatalf("%d submissions, want 2", len(rec.reqs))
	}
	if rec.reqs[0].Role != RoleLast || rec.reqs[1].Role != RoleFirst {
		t.Errorf("submitted %s, %s", rec.reqs[0].Role, rec.reqs[1].Role)
	}
	if !rec.reqs[0].FrontLine || rec.reqs[1].FrontLine {
		t.Error("front line not granted to the first submission")
	}
	if rec.reqs[1].Start.Index != 4 {
		t.Errorf("earlier point has source index %d", rec.reqs[1].Start.Index)
	}
}

// For every step of every group, exactly one submission strokes the
// front line.
func TestBuildSurfaceFrontLineOnce(t *testing.T) {
	for _, g := range testcases.Groups {
		points := groupPoints(g)
		for pos, p := range points {
			if p.Index == 0 {
				continue
			}
			rec := &surfaceRecorder{}
			b := &Builder3D{Surface: rec, Center: &CenterResolver{}, MultiSeries: true}
			if _, err := b.BuildSurface(SurfaceParams{Mode: OpDraw}, points, pos); err != nil {
				t.Fatalf("%s/%d: %v", g.Name, pos, err)
			}
			count := 0
			for _, req := range rec.reqs {
				if req.FrontLine {
					count++
				}
			}
			if len(rec.reqs) != 2 || count != 1 {
				t.Errorf("%s/%d: %d submissions, %d front lines", g.Name, pos, len(rec.reqs), count)
			}
		}
	}
}

func TestBuildSurfaceRegions(t *testing.T) {
	points := groupPoints(testcases.Groups[0])
	regions := &Regions{}
	b := &Builder3D{Surface: &surfaceRecorder{}, Regions: regions}

	// hit regions need the outlines even if only drawing is requested
	res, err := b.BuildSurface(SurfaceParams{Mode: OpDraw}, points, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Error("path returned without OpCalcPath")
	}
	if len(regions.List) != 2 {
		t.Fatalf("%d regions, want 2", len(regions.List))
	}
	last, first := regions.List[0], regions.List[1]
	if last.PointIndex != 1 || last.Point != points[1].Data {
		t.Errorf("corner→point region attributed to %d", last.PointIndex)
	}
	if first.PointIndex != 0 || first.Point != points[0].Data {
		t.Errorf("point→corner region attributed to %d", first.PointIndex)
	}
	for _, r := range regions.List {
		if !r.Filled || r.SeriesName != "a" || len(r.Coords) != 6 {
			t.Errorf("region %d: filled=%t series=%q coords=%d",
				r.PointIndex, r.Filled, r.SeriesName, len(r.Coords))
		}
	}
}

func TestBuildSurfaceCombinedPath(t *testing.T) {
	points := groupPoints(testcases.Groups[0])
	b := &Builder3D{Surface: &surfaceRecorder{}}

	res, err := b.BuildSurface(SurfaceParams{Mode: OpCalcPath}, points, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || len(res.Cmds) != 8 || len(res.Coords) != 6 {
		t.Fatalf("unexpected combined path %v", res)
	}
	// the segment leaving the earlier point comes first
	if res.Coords[0] != (vec.Vec2{X: points[0].X, Y: points[0].Y}) {
		t.Errorf("path starts at %v", res.Coords[0])
	}
}

func TestBuildSurfaceAttributes(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}

	tests := []struct {
		name           string
		prev           Point3D
		first, second  DataPoint
		useBorderColor bool
		wantColor      color.Color
		wantDash       DashStyle
	}{
		{
			name:      "second",
			first:     DataPoint{Color: red, BorderDash: DashDot},
			second:    DataPoint{Color: blue, BorderDash: DashDash},
			wantColor: blue,
			wantDash:  DashDash,
		},
		{
			name:           "border_color",
			second:         DataPoint{Color: blue, BorderColor: green},
			useBorderColor: true,
			wantColor:      green,
			wantDash:       DashNotSet,
		},
		{
			name:      "empty_prev",
			prev:      Point3D{Data: &DataPoint{Color: red, Empty: true, BorderDash: DashDot}},
			second:    DataPoint{Color: blue},
			wantColor: red,
			wantDash:  DashDot,
		},
		{
			name:      "empty_prev_defaults",
			prev:      Point3D{Empty: true, Data: &DataPoint{}},
			second:    DataPoint{Color: blue, BorderDash: DashDash},
			wantColor: emptyPointColor,
			wantDash:  DashSolid,
		},
		{
			name:      "empty_second",
			second:    DataPoint{Empty: true},
			wantColor: emptyPointColor,
			wantDash:  DashSolid,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			points := []Point3D{
				{Index: 0, X: 0, Y: 10, Data: &test.first},
				{Index: 1, X: 10, Y: 20, Data: &test.second},
			}
			rec := &surfaceRecorder{}
			b := &Builder3D{Surface: rec, UseBorderColor: test.useBorderColor}
			_, err := b.BuildSurface(SurfaceParams{Mode: OpDraw, Prev: test.prev}, points, 1)
			if err != nil {
				t.Fatal(err)
			}
			for _, req := range rec.reqs {
				if req.Color != test.wantColor || req.Dash != test.wantDash {
					t.Errorf("%s: got %v/%s, want %v/%s",
						req.Role, req.Color, req.Dash, test.wantColor, test.wantDash)
				}
			}
		})
	}
}

func TestBuildSurfaceDegenerate(t *testing.T) {
	points := groupPoints(testcases.Groups[0])
	regions := &Regions{}
	rec := &surfaceRecorder{
		err: func(req *SurfaceRequest) error {
			if req.Role == RoleFirst {
				return ErrDegenerate
			}
			return nil
		},
	}
	b := &Builder3D{Surface: rec, Regions: regions}

	res, err := b.BuildSurface(SurfaceParams{Mode: OpCalcPath}, points, 1)
	if err != nil {
		t.Fatalf("degenerate surface not downgraded: %v", err)
	}
	if len(rec.reqs) != 2 {
		t.Errorf("%d submissions, want 2", len(rec.reqs))
	}
	if res == nil || len(res.Cmds) != 4 {
		t.Errorf("unexpected path %v", res)
	}
	if len(regions.List) != 1 || regions.List[0].PointIndex != 1 {
		t.Errorf("unexpected regions %v", regions.List)
	}
}

func TestBuildSurfaceErrors(t *testing.T) {
	points := groupPoints(testcases.Groups[0])

	failure := errors.New("painter failure")
	rec := &surfaceRecorder{err: func(*SurfaceRequest) error { return failure }}
	b := &Builder3D{Surface: rec}
	if _, err := b.BuildSurface(SurfaceParams{Mode: OpDraw}, points, 1); !errors.Is(err, failure) {
		t.Errorf("painter failure: got %v", err)
	}

	b = &Builder3D{Surface: &surfaceRecorder{}}
	if _, err := b.BuildSurface(SurfaceParams{}, points, 0); !errors.Is(err, ErrPointNotFound) {
		t.Errorf("first point: got %v", err)
	}
	if _, err := b.BuildSurface(SurfaceParams{}, points, len(points)); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("position out of range: got %v", err)
	}
}
