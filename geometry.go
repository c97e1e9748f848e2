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

// Package glyphy converts glyph outlines made of lines and quadratic/cubic
// Bézier curves into a compact, texture-addressable encoding of circular
// arcs, from which a signed distance field can be reconstructed at
// arbitrary magnification.
package glyphy

import "math"

const (
	// pointEpsilon is the absolute per-coordinate tolerance used for
	// point equality.
	pointEpsilon = 1e-6
	// straightEpsilon is the tolerance below which an arc's depth is
	// treated as exactly zero (a straight line segment).
	straightEpsilon = 1e-5
	// MaxD is the largest arc depth the blob encoder can represent;
	// larger sweeps must be split into multiple arcs before encoding.
	MaxD = 0.5
)

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Vector is a displacement in the plane.
type Vector struct {
	DX, DY float64
}

// Add returns p+v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.DX, p.Y + v.DY} }

// Sub returns p-v.
func (p Point) Sub(v Vector) Point { return Point{p.X - v.DX, p.Y - v.DY} }

// Minus returns the vector from q to p.
func (p Point) Minus(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y} }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(t float64, q Point) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Minus(q).Length()
}

// SquaredDistance returns the squared Euclidean distance between p and q.
func (p Point) SquaredDistance(q Point) float64 {
	v := p.Minus(q)
	return v.DX*v.DX + v.DY*v.DY
}

// Equal reports whether p and q are equal to within pointEpsilon.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < pointEpsilon && math.Abs(p.Y-q.Y) < pointEpsilon
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{v.DX + w.DX, v.DY + w.DY} }

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.DX - w.DX, v.DY - w.DY} }

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector { return Vector{v.DX * s, v.DY * s} }

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 { return v.DX*w.DX + v.DY*w.DY }

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vector) Perpendicular() Vector { return Vector{-v.DY, v.DX} }

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return math.Hypot(v.DX, v.DY) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Angle returns the direction of v as an angle in radians, via atan2.
func (v Vector) Angle() float64 { return math.Atan2(v.DY, v.DX) }

// tan2atan returns tan(2*atan(d)).
func tan2atan(d float64) float64 { return 2 * d / (1 - d*d) }

// sin2atan returns sin(2*atan(d)).
func sin2atan(d float64) float64 { return 2 * d / (1 + d*d) }

// cos2atan returns cos(2*atan(d)).
func cos2atan(d float64) float64 { return (1 - d*d) / (1 + d*d) }

// Segment is a straight line segment from P0 to P1.
type Segment struct {
	P0, P1 Point
}

// ContainsInSpan reports whether the orthogonal projection of p onto the
// segment's line lies between P0 and P1.
func (s Segment) ContainsInSpan(p Point) bool {
	v := s.P1.Minus(s.P0)
	if v.DX == 0 && v.DY == 0 {
		return false
	}
	w := p.Minus(s.P0)
	t := w.Dot(v) / v.Dot(v)
	return t >= 0 && t <= 1
}

// DistanceToPoint returns the distance from p to the segment.
func (s Segment) DistanceToPoint(p Point) float64 {
	return math.Sqrt(s.SquaredDistanceToPoint(p))
}

// SquaredDistanceToPoint returns the squared distance from p to the segment.
func (s Segment) SquaredDistanceToPoint(p Point) float64 {
	v := s.P1.Minus(s.P0)
	vv := v.Dot(v)
	if vv == 0 {
		return p.SquaredDistance(s.P0)
	}
	w := p.Minus(s.P0)
	t := w.Dot(v) / vv
	if t < 0 {
		return p.SquaredDistance(s.P0)
	}
	if t > 1 {
		return p.SquaredDistance(s.P1)
	}
	proj := s.P0.Add(v.Scale(t))
	return p.SquaredDistance(proj)
}

// Line represents an (infinite) line in the form n·p = c, where n is a
// normal vector (not necessarily unit length) and c a scalar offset.
type Line struct {
	N Vector
	C float64
}

// LineThrough returns the line through p and q.
func LineThrough(p, q Point) Line {
	d := q.Minus(p)
	n := Vector{-d.DY, d.DX}
	c := n.Dot(Vector{p.X, p.Y})
	return Line{N: n, C: c}
}

// Normalized returns an equivalent line whose normal has unit length.
func (l Line) Normalized() Line {
	d := l.N.Length()
	if d == 0 {
		return l
	}
	return Line{N: l.N.Scale(1 / d), C: l.C / d}
}

// Intersect returns the intersection of l and m. If the lines are parallel
// the result has both coordinates equal to +Inf.
func (l Line) Intersect(m Line) Point {
	det := l.N.DX*m.N.DY - l.N.DY*m.N.DX
	if det == 0 {
		return Point{math.Inf(1), math.Inf(1)}
	}
	x := (l.C*m.N.DY - m.C*l.N.DY) / det
	y := (l.N.DX*m.C - m.N.DX*l.C) / det
	return Point{x, y}
}

// SignedDistanceToPoint returns the signed perpendicular distance from p to
// the (normalized) line.
func (l Line) SignedDistanceToPoint(p Point) float64 {
	nl := l.Normalized()
	return nl.N.Dot(Vector{p.X, p.Y}) - nl.C
}

// NearestPoint returns the point on l nearest to p.
func (l Line) NearestPoint(p Point) Point {
	nl := l.Normalized()
	d := nl.N.Dot(Vector{p.X, p.Y}) - nl.C
	return p.Sub(nl.N.Scale(d))
}

// Circle is a circle with the given center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Extents is an axis-aligned bounding box.
type Extents struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyExtents returns the canonical empty extents value.
func EmptyExtents() Extents {
	return Extents{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether e is the empty extents.
func (e Extents) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// Union returns the smallest extents containing both e and f.
func (e Extents) Union(f Extents) Extents {
	if e.IsEmpty() {
		return f
	}
	if f.IsEmpty() {
		return e
	}
	return Extents{
		MinX: math.Min(e.MinX, f.MinX),
		MinY: math.Min(e.MinY, f.MinY),
		MaxX: math.Max(e.MaxX, f.MaxX),
		MaxY: math.Max(e.MaxY, f.MaxY),
	}
}

// SignedVector is a displacement together with a sign used to disambiguate
// which side of a curve a point falls on; negative-length vectors encode
// "distance computed, but point is inside".
type SignedVector struct {
	Vector
	Negative bool
}

// Len returns the signed length of v: negative when v.Negative is set.
func (v SignedVector) Len() float64 {
	l := v.Length()
	if v.Negative {
		return -l
	}
	return l
}
