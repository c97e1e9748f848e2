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

func TestArcQuarterCircle(t *testing.T) {
	// D = tan(pi/8) gives a quarter-circle sweep from (1,0) to (0,1).
	d := math.Tan(math.Pi / 8)
	a := Arc{P0: Point{1, 0}, P1: Point{0, 1}, D: d}

	c := a.Center()
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("Center() = %v, want origin", c)
	}
	if r := a.Radius(); math.Abs(r-1) > 1e-9 {
		t.Errorf("Radius() = %v, want 1", r)
	}
}

func TestArcIsLine(t *testing.T) {
	a := Arc{P0: Point{0, 0}, P1: Point{10, 0}, D: 0}
	if !a.IsLine() {
		t.Error("IsLine() = false, want true for D=0")
	}

	b := Arc{P0: Point{0, 0}, P1: Point{10, 0}, D: 0.3}
	if b.IsLine() {
		t.Error("IsLine() = true, want false for D=0.3")
	}
}

func TestArcSignedDistanceToPointSign(t *testing.T) {
	// A half-circle of radius 1, centered at origin, swept from (1,0)
	// to (-1,0) through the upper half-plane (D=1).
	a := Arc{P0: Point{1, 0}, P1: Point{-1, 0}, D: 1}

	inside := a.SignedDistanceToPoint(Point{0, 0.5})
	if inside >= 0 {
		t.Errorf("SignedDistanceToPoint(inside point) = %v, want negative", inside)
	}

	outside := a.SignedDistanceToPoint(Point{0, 2})
	if outside <= 0 {
		t.Errorf("SignedDistanceToPoint(outside point) = %v, want positive", outside)
	}

	onArc := a.SignedDistanceToPoint(Point{0, 1})
	if math.Abs(onArc) > 1e-9 {
		t.Errorf("SignedDistanceToPoint(on arc) = %v, want ~0", onArc)
	}
}

func TestArcTangentsOfSemicircle(t *testing.T) {
	a := Arc{P0: Point{1, 0}, P1: Point{-1, 0}, D: 1}
	t0, t1 := a.Tangents()

	// Traveling counter-clockwise from (1,0), the tangent points in +Y;
	// arriving at (-1,0) over the top, it points in -Y.
	if t0.DY <= 0 {
		t.Errorf("t0 = %v, want positive DY", t0)
	}
	if t1.DY >= 0 {
		t.Errorf("t1 = %v, want negative DY", t1)
	}
}

func TestArcIntersectsCrossingLines(t *testing.T) {
	a := Arc{P0: Point{-5, 0}, P1: Point{5, 0}, D: 0}
	b := Arc{P0: Point{0, -5}, P1: Point{0, 5}, D: 0}
	if !a.Intersects(b) {
		t.Error("Intersects() = false for crossing segments, want true")
	}

	c := Arc{P0: Point{0, 1}, P1: Point{5, 1}, D: 0}
	if a.Intersects(c) {
		t.Error("Intersects() = true for parallel non-crossing segments, want false")
	}
}

func TestArcIntersectsCircles(t *testing.T) {
	// Two unit circles centered 1 apart, each traversed as a full loop
	// via two semicircle arcs, must intersect.
	left := []Arc{
		{P0: Point{-1, 0}, P1: Point{1, 0}, D: 1},
		{P0: Point{1, 0}, P1: Point{-1, 0}, D: 1},
	}
	right := []Arc{
		{P0: Point{0, 0}, P1: Point{2, 0}, D: 1},
		{P0: Point{2, 0}, P1: Point{0, 0}, D: 1},
	}
	found := false
	for _, a := range left {
		for _, b := range right {
			if a.Intersects(b) {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected overlapping circles to intersect")
	}
}

func TestArcExtentsOfFullSemicircle(t *testing.T) {
	a := Arc{P0: Point{1, 0}, P1: Point{-1, 0}, D: 1}
	e := a.Extents()
	want := Extents{MinX: -1, MaxX: 1, MinY: 0, MaxY: 1}
	if math.Abs(e.MinX-want.MinX) > 1e-9 || math.Abs(e.MaxX-want.MaxX) > 1e-9 ||
		math.Abs(e.MinY-want.MinY) > 1e-9 || math.Abs(e.MaxY-want.MaxY) > 1e-9 {
		t.Errorf("Extents() = %v, want %v", e, want)
	}
}
