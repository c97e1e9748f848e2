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

func TestBezierEvalEndpoints(t *testing.T) {
	b := Bezier{P0: Point{0, 0}, P1: Point{1, 2}, P2: Point{3, 2}, P3: Point{4, 0}}
	if got := b.Eval(0); got != b.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, b.P0)
	}
	if got := b.Eval(1); got != b.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, b.P3)
	}
}

func TestBezierHalveReconnects(t *testing.T) {
	b := Bezier{P0: Point{0, 0}, P1: Point{1, 3}, P2: Point{3, 3}, P3: Point{4, 0}}
	left, right := b.Halve()
	if !left.P0.Equal(b.P0) || !right.P3.Equal(b.P3) {
		t.Errorf("Halve() endpoints = %v / %v, want to bracket %v / %v", left.P0, right.P3, b.P0, b.P3)
	}
	if !left.P3.Equal(right.P0) {
		t.Errorf("Halve() midpoints disagree: %v vs %v", left.P3, right.P0)
	}
	mid := b.Eval(0.5)
	if !left.P3.Equal(mid) {
		t.Errorf("Halve() split point = %v, want Eval(0.5) = %v", left.P3, mid)
	}
}

func TestBezierMidpoint(t *testing.T) {
	b := Bezier{P0: Point{0, 0}, P1: Point{1, 3}, P2: Point{3, 3}, P3: Point{4, 0}}
	m := b.Midpoint()
	e := b.Eval(0.5)
	if math.Abs(m.X-e.X) > 1e-9 || math.Abs(m.Y-e.Y) > 1e-9 {
		t.Errorf("Midpoint() = %v, want %v", m, e)
	}
}

func TestQuadraticToCubic(t *testing.T) {
	p0 := Point{0, 0}
	pc := Point{1, 2}
	p3 := Point{2, 0}
	cubic := QuadraticToCubic(p0, pc, p3)

	// A cubic degree-elevated from a quadratic must agree with the
	// quadratic at every parameter value.
	quad := func(t float64) Point {
		u := 1 - t
		return Point{
			X: u*u*p0.X + 2*u*t*pc.X + t*t*p3.X,
			Y: u*u*p0.Y + 2*u*t*pc.Y + t*t*p3.Y,
		}
	}
	for _, param := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want := quad(param)
		got := cubic.Eval(param)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", param, got, want)
		}
	}
}
