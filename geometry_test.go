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

import (
	"math"
	"testing"
)

func TestVectorNormalize(t *testing.T) {
	v := Vector{3, 4}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}

	zero := Vector{}.Normalize()
	if zero != (Vector{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestLineSignedDistanceToPoint(t *testing.T) {
	// The x-axis, built from a non-unit normal.
	l := Line{N: Vector{0, 2}, C: 0}
	cases := []struct {
		p    Point
		want float64
	}{
		{Point{0, 1}, 1},
		{Point{0, -1}, -1},
		{Point{5, 0}, 0},
	}
	for _, c := range cases {
		got := l.SignedDistanceToPoint(c.p)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("SignedDistanceToPoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestLineIntersectParallel(t *testing.T) {
	l := LineThrough(Point{0, 0}, Point{1, 0})
	m := LineThrough(Point{0, 1}, Point{1, 1})
	p := l.Intersect(m)
	if !math.IsInf(p.X, 1) && !math.IsInf(p.X, 0) {
		t.Errorf("Intersect of parallel lines = %v, want Inf", p)
	}
}

func TestExtentsUnion(t *testing.T) {
	e := EmptyExtents()
	if !e.IsEmpty() {
		t.Fatal("EmptyExtents should be empty")
	}
	f := Extents{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}
	got := e.Union(f)
	if got != f {
		t.Errorf("Union(empty, f) = %v, want %v", got, f)
	}

	g := Extents{MinX: -1, MinY: 2, MaxX: 3, MaxY: 20}
	want := Extents{MinX: -1, MinY: 0, MaxX: 10, MaxY: 20}
	if got := f.Union(g); got != want {
		t.Errorf("Union(f, g) = %v, want %v", got, want)
	}
}

func TestSegmentDistanceToPoint(t *testing.T) {
	s := Segment{Point{0, 0}, Point{10, 0}}
	cases := []struct {
		p    Point
		want float64
	}{
		{Point{5, 3}, 3},
		{Point{-2, 0}, 2},
		{Point{15, 4}, math.Sqrt(41)},
	}
	for _, c := range cases {
		got := s.DistanceToPoint(c.p)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("DistanceToPoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}
