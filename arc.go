// seehuhn.de/go/glyphy - a resolution-independent glyph representation engine
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

package glyphy

import "math"

// Arc is a circular arc from P0 to P1 with depth D = tan(sweep/4), where
// sweep is the signed angle swept from P0 to P1. D == 0 is a straight
// line, |D| == 1 a semicircle; D's sign carries the sweep direction.
type Arc struct {
	P0, P1 Point
	D      float64
}

// NewArcFromThreePoints builds an arc from P0 to P1 on the circle through
// P0, Pm and P1. If complement is false, the returned arc passes through
// Pm (whether that is the short or the long way round); if true, Pm lies
// on the complementary part of the circle, not on the returned arc. This
// is how the spring subdivider builds its two trial half-arcs from a
// Bézier's endpoints and midpoint.
func NewArcFromThreePoints(p0, p1, pm Point, complement bool) Arc {
	if p0.Equal(pm) || p1.Equal(pm) {
		return Arc{P0: p0, P1: p1, D: 0}
	}
	half := (p1.Minus(pm).Angle() - p0.Minus(pm).Angle()) / 2
	if !complement {
		half -= math.Pi / 2
	}
	return Arc{P0: p0, P1: p1, D: math.Tan(half)}
}

// NewArcFromCircle builds the arc of circle c from angle a0 to angle a1.
func NewArcFromCircle(c Circle, a0, a1 float64, complement bool) Arc {
	p0 := c.Center.Add(Vector{math.Cos(a0), math.Sin(a0)}.Scale(c.Radius))
	p1 := c.Center.Add(Vector{math.Cos(a1), math.Sin(a1)}.Scale(c.Radius))
	half := (a1 - a0) / 4
	if !complement {
		half -= math.Pi / 2
	}
	return Arc{P0: p0, P1: p1, D: math.Tan(half)}
}

// IsLine reports whether a's depth is close enough to zero that it should
// be treated as a straight line segment.
func (a Arc) IsLine() bool {
	return math.Abs(a.D) < straightEpsilon
}

// Radius returns the arc's circle radius. Undefined (and not meaningful)
// when a.IsLine().
func (a Arc) Radius() float64 {
	return math.Abs(a.P1.Minus(a.P0).Length() / (2 * sin2atan(a.D)))
}

// Center returns the arc's circle center. Undefined when a.IsLine().
func (a Arc) Center() Point {
	perp := a.P1.Minus(a.P0).Perpendicular()
	return a.P0.Midpoint(a.P1).Add(perp.Scale(1 / (2 * tan2atan(a.D))))
}

// Circle returns the arc's supporting circle.
func (a Arc) Circle() Circle {
	return Circle{Center: a.Center(), Radius: a.Radius()}
}

// ApproximateBezier returns the unique cubic Bézier sharing a's endpoints
// whose control points approximate the arc, and writes an upper bound on
// the deviation between the arc and the returned curve to *errOut (if
// errOut is non-nil).
func (a Arc) ApproximateBezier(errOut *float64) Bezier {
	if errOut != nil {
		*errOut = a.P1.Minus(a.P0).Length() * math.Pow(math.Abs(a.D), 5) / (54 * (1 + a.D*a.D))
	}
	d := a.D
	chord := a.P1.Minus(a.P0)
	perp := chord.Perpendicular()
	p0s := a.P0.Add(chord.Scale((1 - d*d) / 3)).Sub(perp.Scale(2 * d / 3))
	p1s := a.P1.Add(chord.Scale(-(1 - d*d) / 3)).Sub(perp.Scale(2 * d / 3))
	return Bezier{P0: a.P0, P1: p0s, P2: p1s, P3: a.P1}
}

// SectorContainsPoint reports whether p lies in the convex cone from the
// arc's center spanned by P0 and P1 — the angular wedge actually swept by
// the arc. The sign test is flipped for |d|>1 (the "large arc" case),
// where the two-point cone formula alone would pick the wrong side.
func (a Arc) SectorContainsPoint(p Point) bool {
	c := a.Center()
	u := a.P0.Minus(c)
	v := a.P1.Minus(c)
	q := p.Minus(c)
	det := u.DX*v.DY - u.DY*v.DX
	if det == 0 {
		return ((v.DX-u.DX)*(q.DY-u.DY)-(v.DY-u.DY)*(q.DX-u.DX))*a.D < 0
	}
	num1 := (v.DY*q.DX - v.DX*q.DY) * det
	num2 := (u.DX*q.DY - u.DY*q.DX) * det
	inSmallCone := num1 >= 0 && num2 >= 0
	if math.Abs(a.D) <= 1 {
		return inSmallCone
	}
	return !inSmallCone
}

// WedgeContainsPoint reports whether p lies within the arc's own angular
// span measured around the full circle, the same test SectorContainsPoint
// performs; kept as a distinct name because contourWinding's "is the
// circle's leftmost point on this arc" check reads more clearly with it.
func (a Arc) WedgeContainsPoint(p Point) bool {
	return a.SectorContainsPoint(p)
}

// Minus returns the shortest signed vector from p to the arc: its length
// is the unsigned distance, and its sign (via the SignedVector) records
// whether p is "inside" (negative) or "outside" (positive) the arc's
// supporting circle, consistent with the d>0/d<0 sweep-direction
// convention.
func (a Arc) Minus(p Point) SignedVector {
	if a.IsLine() {
		return Segment{a.P0, a.P1}.Minus(p)
	}
	if a.SectorContainsPoint(p) {
		c := a.Center()
		r := a.Radius()
		diff := c.Minus(p).Normalize().Scale(math.Abs(p.Distance(c) - r))
		neg := (p.Distance(c) < r) != (a.D < 0)
		return SignedVector{Vector: diff, Negative: neg}
	}
	d0 := p.SquaredDistance(a.P0)
	d1 := p.SquaredDistance(a.P1)
	other := Arc{P0: a.P0, P1: a.P1, D: (1 + a.D) / (1 - a.D)}
	var nearest Point
	if d0 < d1 {
		nearest = a.P0
	} else {
		nearest = a.P1
	}
	normal := a.Center().Minus(nearest)
	if normal.Length() == 0 {
		return SignedVector{Vector: Vector{}, Negative: true}
	}
	line := Line{N: normal, C: normal.Dot(Vector{nearest.X, nearest.Y})}
	diff := line.NearestPoint(p).Minus(p)
	return SignedVector{Vector: diff, Negative: !other.SectorContainsPoint(p)}
}

// DistanceToPoint returns the unsigned distance from p to the arc: if the
// sector contains p this is ||p-center|-radius|, otherwise the distance to
// the nearer endpoint.
func (a Arc) DistanceToPoint(p Point) float64 {
	if a.IsLine() {
		return Segment{a.P0, a.P1}.DistanceToPoint(p)
	}
	if a.SectorContainsPoint(p) {
		return math.Abs(p.Distance(a.Center()) - a.Radius())
	}
	d0 := p.SquaredDistance(a.P0)
	d1 := p.SquaredDistance(a.P1)
	return math.Sqrt(math.Min(d0, d1))
}

// SquaredDistanceToPoint returns the square of DistanceToPoint, computed
// without the endpoint-distance square root when possible.
func (a Arc) SquaredDistanceToPoint(p Point) float64 {
	if a.IsLine() {
		return Segment{a.P0, a.P1}.SquaredDistanceToPoint(p)
	}
	if a.SectorContainsPoint(p) {
		d := p.Distance(a.Center()) - a.Radius()
		return d * d
	}
	d0 := p.SquaredDistance(a.P0)
	d1 := p.SquaredDistance(a.P1)
	return math.Min(d0, d1)
}

// SignedDistanceToPoint returns DistanceToPoint with a sign: negative
// when p is inside the filled region bounded by the arc, consistent with
// the Minus sign convention.
func (a Arc) SignedDistanceToPoint(p Point) float64 {
	sv := a.Minus(p)
	if sv.Negative {
		return -a.DistanceToPoint(p)
	}
	return a.DistanceToPoint(p)
}

// Tangents returns the arc's tangent vectors at P0 and P1, both pointing
// in the direction of travel from P0 to P1.
func (a Arc) Tangents() (t0, t1 Vector) {
	if a.IsLine() {
		dir := a.P1.Minus(a.P0).Normalize()
		return dir, dir
	}
	c := a.Center()
	sign := 1.0
	if a.D < 0 {
		sign = -1.0
	}
	t0 = a.P0.Minus(c).Perpendicular().Normalize().Scale(sign)
	t1 = a.P1.Minus(c).Perpendicular().Normalize().Scale(sign)
	return t0, t1
}

// Leftmost, Rightmost, Lowest and Highest return the arc's extremal point
// in the given axis direction: the corresponding point on the full circle
// if the sector contains it, else whichever endpoint lies further in that
// direction.
func (a Arc) Leftmost() Point {
	if a.IsLine() {
		if a.P0.X < a.P1.X {
			return a.P0
		}
		return a.P1
	}
	c, r := a.Center(), a.Radius()
	candidate := Point{c.X - r, c.Y}
	if a.SectorContainsPoint(candidate) {
		return candidate
	}
	if a.P0.X < a.P1.X {
		return a.P0
	}
	return a.P1
}

func (a Arc) Rightmost() Point {
	if a.IsLine() {
		if a.P0.X > a.P1.X {
			return a.P0
		}
		return a.P1
	}
	c, r := a.Center(), a.Radius()
	candidate := Point{c.X + r, c.Y}
	if a.SectorContainsPoint(candidate) {
		return candidate
	}
	if a.P0.X > a.P1.X {
		return a.P0
	}
	return a.P1
}

func (a Arc) Lowest() Point {
	if a.IsLine() {
		if a.P0.Y < a.P1.Y {
			return a.P0
		}
		return a.P1
	}
	c, r := a.Center(), a.Radius()
	candidate := Point{c.X, c.Y - r}
	if a.SectorContainsPoint(candidate) {
		return candidate
	}
	if a.P0.Y < a.P1.Y {
		return a.P0
	}
	return a.P1
}

func (a Arc) Highest() Point {
	if a.IsLine() {
		if a.P0.Y > a.P1.Y {
			return a.P0
		}
		return a.P1
	}
	c, r := a.Center(), a.Radius()
	candidate := Point{c.X, c.Y + r}
	if a.SectorContainsPoint(candidate) {
		return candidate
	}
	if a.P0.Y > a.P1.Y {
		return a.P0
	}
	return a.P1
}

// Extents returns the arc's axis-aligned bounding box.
func (a Arc) Extents() Extents {
	l, r := a.Leftmost(), a.Rightmost()
	lo, hi := a.Lowest(), a.Highest()
	return Extents{MinX: l.X, MaxX: r.X, MinY: lo.Y, MaxY: hi.Y}
}

// Minus on Segment: the shortest signed vector from p to the segment,
// used by Arc.Minus/DistanceToPoint when an arc has degenerated to a
// line.
func (s Segment) Minus(p Point) SignedVector {
	v := s.P1.Minus(s.P0)
	w := p.Minus(s.P0)
	vv := v.Dot(v)
	if vv == 0 {
		return SignedVector{Vector: s.P0.Minus(p), Negative: false}
	}
	t := w.Dot(v) / vv
	var nearest Point
	switch {
	case t < 0:
		nearest = s.P0
	case t > 1:
		nearest = s.P1
	default:
		nearest = s.P0.Add(v.Scale(t))
	}
	diff := nearest.Minus(p)
	cross := v.DX*w.DY - v.DY*w.DX
	return SignedVector{Vector: diff, Negative: cross < 0}
}

// Intersects reports whether a and b, as finite arcs (not full circles),
// cross at some point. Used to build the contour-relationship graph: two
// contours that physically cross get a "solid" edge in that graph, as
// opposed to contours that merely nest inside one another.
func (a Arc) Intersects(b Arc) bool {
	for _, p := range arcArcCandidates(a, b) {
		if a.onArc(p) && b.onArc(p) {
			return true
		}
	}
	return false
}

// onArc reports whether p lies on the finite arc a (within tolerance),
// as opposed to merely on its supporting line or circle.
func (a Arc) onArc(p Point) bool {
	if a.IsLine() {
		return Segment{a.P0, a.P1}.ContainsInSpan(p) &&
			math.Abs(Segment{a.P0, a.P1}.DistanceToPoint(p)) < 1e-4
	}
	c, r := a.Center(), a.Radius()
	if math.Abs(p.Distance(c)-r) > 1e-4 {
		return false
	}
	return a.SectorContainsPoint(p)
}

// arcArcCandidates returns the (unfiltered) intersection points of the
// two arcs' supporting lines/circles; callers must still confirm the
// points lie on both finite arcs via onArc.
func arcArcCandidates(a, b Arc) []Point {
	switch {
	case a.IsLine() && b.IsLine():
		la := LineThrough(a.P0, a.P1)
		lb := LineThrough(b.P0, b.P1)
		p := la.Intersect(lb)
		if math.IsInf(p.X, 0) {
			return nil
		}
		return []Point{p}
	case a.IsLine() && !b.IsLine():
		return lineCircleIntersections(a.P0, a.P1, b.Center(), b.Radius())
	case !a.IsLine() && b.IsLine():
		return lineCircleIntersections(b.P0, b.P1, a.Center(), a.Radius())
	default:
		return circleCircleIntersections(a.Center(), a.Radius(), b.Center(), b.Radius())
	}
}

func lineCircleIntersections(p0, p1, center Point, radius float64) []Point {
	d := p1.Minus(p0)
	f := p0.Minus(center)
	A := d.Dot(d)
	if A == 0 {
		return nil
	}
	B := 2 * f.Dot(d)
	C := f.Dot(f) - radius*radius
	disc := B*B - 4*A*C
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-B - sq) / (2 * A)
	t2 := (-B + sq) / (2 * A)
	return []Point{p0.Add(d.Scale(t1)), p0.Add(d.Scale(t2))}
}

func circleCircleIntersections(c0 Point, r0 float64, c1 Point, r1 float64) []Point {
	dv := c1.Minus(c0)
	dist := dv.Length()
	if dist == 0 || dist > r0+r1 || dist < math.Abs(r0-r1) {
		return nil
	}
	a := (r0*r0 - r1*r1 + dist*dist) / (2 * dist)
	h2 := r0*r0 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dir := dv.Normalize()
	mid := c0.Add(dir.Scale(a))
	perp := dir.Perpendicular()
	return []Point{
		mid.Add(perp.Scale(h)),
		mid.Sub(perp.Scale(h)),
	}
}
