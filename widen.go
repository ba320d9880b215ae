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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Pen describes how a polyline is widened into an outline.
// The zero value is not usable; start from [NewPen].
type Pen struct {
	// Width is the full line width.
	Width float64

	// Cap is the style used at the two ends of each dash.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels.  Must be at least 1.
	MiterLimit float64

	// Dash gives alternating on/off lengths.  Nil means solid.
	Dash      []float64
	DashPhase float64

	// Flatness is the maximal distance between round caps or joins and
	// their polygonal approximation.
	Flatness float64
}

// NewPen returns a solid pen with butt caps and miter joins.
func NewPen(width float64) Pen {
	return Pen{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		Flatness:   defaultFlatness,
	}
}

// WithCap returns a copy of the pen using the given cap style.
func (p Pen) WithCap(c graphics.LineCapStyle) Pen {
	p.Cap = c
	return p
}

// WithJoin returns a copy of the pen using the given join style.
func (p Pen) WithJoin(j graphics.LineJoinStyle) Pen {
	p.Join = j
	return p
}

// WithDash returns a copy of the pen using the given dash pattern.
func (p Pen) WithDash(dash []float64, phase float64) Pen {
	p.Dash = append([]float64(nil), dash...)
	p.DashPhase = phase
	return p
}

// Outline is the result of widening a line.
type Outline struct {
	// Path is a closed polygon if Widened is true.  Otherwise it is the
	// original, unwidened line.
	Path *path.Data

	// Widened reports whether the line could be widened.  Zero-length and
	// non-finite input is left as it is.
	Widened bool
}

// Widen returns the outline of the straight line from a to b.  Dashing
// is ignored.
func (p Pen) Widen(a, b vec.Vec2) Outline {
	w := p.newWidener()
	w.addSegment(a, b)
	if !w.usable() || len(w.segs) == 0 {
		Logger().Debug("widening skipped",
			"from", a, "to", b, "width", p.Width)
		return Outline{Path: polyline([]vec.Vec2{a, b}, false)}
	}
	w.strokeOpen(w.segs)
	return Outline{Path: polyline(w.poly, true), Widened: true}
}

// Outlines widens the polyline through pts.  With a dash pattern the
// result has one polygon per dash.  If nothing can be widened, a single
// unwidened outline of pts is returned.
func (p Pen) Outlines(pts []vec.Vec2) []Outline {
	w := p.newWidener()
	for i := 1; i < len(pts); i++ {
		w.addSegment(pts[i-1], pts[i])
	}
	if !w.usable() || len(w.segs) == 0 {
		Logger().Debug("widening skipped", "points", len(pts), "width", p.Width)
		return []Outline{{Path: polyline(pts, false)}}
	}

	var groups [][]widenSegment
	if len(p.Dash) > 0 {
		groups = w.dashes()
	} else {
		groups = [][]widenSegment{w.segs}
	}

	var res []Outline
	for _, segs := range groups {
		w.poly = w.poly[:0]
		if len(segs) == 1 && segs[0].A == segs[0].B {
			// zero-length dash: only round and square caps paint anything
			switch p.Cap {
			case graphics.LineCapRound:
				w.addArc(segs[0].A, p.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			case graphics.LineCapSquare:
				w.addSquare(segs[0].A, segs[0].T, p.Width/2)
			}
		} else {
			w.strokeOpen(segs)
		}
		if len(w.poly) >= 3 {
			res = append(res, Outline{Path: polyline(w.poly, true), Widened: true})
		}
	}
	return res
}

// polyline converts a list of vertices into a path.
func polyline(pts []vec.Vec2, closed bool) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	if closed && len(pts) > 0 {
		p.Close()
	}
	return p
}

// widenSegment is a straight piece of the line being widened.
type widenSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent, A to B
	N    vec.Vec2 // unit normal, 90° CCW from T
}

// widener holds the working buffers of one widening operation.
type widener struct {
	Pen

	segs   []widenSegment
	finite bool
	poly   []vec.Vec2 // outline vertices
}

func (p Pen) newWidener() *widener {
	w := &widener{Pen: p, finite: true}
	if w.MiterLimit < 1 {
		w.MiterLimit = defaultMiterLimit
	}
	if !(w.Flatness > 0) {
		w.Flatness = defaultFlatness
	}
	return w
}

// usable reports whether the pen and all input points allow widening.
func (w *widener) usable() bool {
	return w.finite && w.Width > 0 && !math.IsInf(w.Width, 0)
}

func (w *widener) addSegment(a, b vec.Vec2) {
	if !isFinite(a) || !isFinite(b) {
		w.finite = false
		return
	}
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	w.segs = append(w.segs, widenSegment{A: a, B: b, T: t, N: n})
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// strokeOpen appends the outline of an open polyline to w.poly: start cap,
// the +N side forwards, end cap, then the -N side backwards.  Joins are
// added on the outer side of each corner; on the inner side the two offset
// lines are cut at their intersection.
func (w *widener) strokeOpen(segs []widenSegment) {
	d := w.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	w.addCap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			w.poly = append(w.poly, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			w.poly = append(w.poly, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			w.poly = append(w.poly, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0:
			skip = w.addInner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			w.poly = append(w.poly, seg.B.Add(seg.N.Mul(d)))
			w.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	w.addCap(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			w.poly = append(w.poly, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			w.poly = append(w.poly, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			w.poly = append(w.poly, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			w.poly = append(w.poly, seg.A.Sub(seg.N.Mul(d)))
			w.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = w.addInner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addCap adds the cap at P.  T points away from the line.
func (w *widener) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch w.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		w.poly = append(w.poly, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		w.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra vertices
}

// addInner handles the inner side of a corner.  If the inner offset lines
// intersect, only the intersection is added and the result is true.
func (w *widener) addInner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	cosTheta := T1.Dot(T2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	dir := N1.Add(N2)
	if !positive {
		dir = dir.Mul(-1)
	}
	if dirLen := dir.Length(); cosTheta <= 1-1e-9 && halfAngle >= 1e-9 && dirLen >= 1e-9 {
		dir = dir.Mul(1 / dirLen)
		w.poly = append(w.poly, P.Add(dir.Mul(d/halfAngle)))
		return true
	}
	if positive {
		w.poly = append(w.poly, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		w.poly = append(w.poly, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds the outer join at P, where the tangent turns from T1 to T2.
func (w *widener) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}
	if cosTheta < cuspCosineThreshold {
		// the line doubles back: two caps instead of a join
		w.addCap(P, T1, d)
		w.addCap(P, T2.Mul(-1), d)
		return
	}

	switch w.Join {
	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf > 0 && 1/sinHalf <= w.MiterLimit+1e-10 {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				w.poly = append(w.poly, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
		}
		// miter limit exceeded: bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				w.addArc(P, d, N1, angle, false)
			} else {
				w.addArc(P, d, N1, -angle, false)
			}
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				w.addArc(P, d, N2, -angle, false)
			} else {
				w.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc approximates a circular arc around center by line segments.
// The sweep is in radians, positive meaning counter-clockwise.
func (w *widener) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	n := 1
	if radius > w.Flatness {
		// chord sagitta r(1-cos(θ/2)) must not exceed the flatness
		step := 2 * math.Acos(1-w.Flatness/radius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		}
	}

	dt := sweep / float64(n)
	i0 := 0
	if !includeStart {
		i0 = 1
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		w.poly = append(w.poly, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2d centred at center, aligned with T.
func (w *widener) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	w.poly = append(w.poly,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// dashes splits w.segs at the dash boundaries and returns the "on" parts.
func (w *widener) dashes() [][]widenSegment {
	dash := w.Dash
	total := 0.0
	for _, l := range dash {
		if l < 0 || math.IsNaN(l) {
			return [][]widenSegment{w.segs}
		}
		total += l
	}
	if len(dash)%2 == 1 {
		total *= 2
	}
	if total <= 0 {
		return [][]widenSegment{w.segs}
	}

	phase := math.Mod(w.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= dash[idx%len(dash)] && dash[idx%len(dash)] > 0 {
		phase -= dash[idx%len(dash)]
		idx++
	}
	remaining := dash[idx%len(dash)] - phase
	on := idx%2 == 0

	var res [][]widenSegment
	var cur []widenSegment
	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
			cur = nil
		}
	}

	if on && remaining == 0 {
		s := w.segs[0]
		res = append(res, []widenSegment{{A: s.A, B: s.A, T: s.T, N: s.N}})
		idx++
		remaining = dash[idx%len(dash)]
		on = idx%2 == 0
	}

	for _, seg := range w.segs {
		a := seg.A
		for {
			left := seg.B.Sub(a).Length()
			if remaining >= left {
				if on && left > zeroLengthThreshold {
					cur = append(cur, widenSegment{A: a, B: seg.B, T: seg.T, N: seg.N})
				}
				remaining -= left
				break
			}

			split := a.Add(seg.T.Mul(remaining))
			if on {
				if remaining > zeroLengthThreshold {
					cur = append(cur, widenSegment{A: a, B: split, T: seg.T, N: seg.N})
				} else if len(cur) == 0 {
					// zero-length dash, keeps the tangent for the caps
					cur = append(cur, widenSegment{A: a, B: a, T: seg.T, N: seg.N})
				}
				flush()
			}
			a = split
			idx++
			remaining = dash[idx%len(dash)]
			on = idx%2 == 0
		}
	}
	flush()
	return res
}

// Default values and numerical tolerances.
const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	// zeroLengthThreshold is the minimal length of a segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects segments which need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a line doubling back on itself.
	cuspCosineThreshold = -0.9999
)
