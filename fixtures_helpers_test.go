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

import "seehuhn.de/go/glyphy/fixtures"

// accumulatorShim adapts an *Accumulator to fixtures.Consumer, so this
// package's own tests can replay fixtures.Case values without fixtures
// itself needing to depend on this package.
type accumulatorShim struct{ acc *Accumulator }

func (s accumulatorShim) MoveTo(p fixtures.Pt) { s.acc.MoveTo(Point{p.X, p.Y}) }
func (s accumulatorShim) LineTo(p fixtures.Pt) { s.acc.LineTo(Point{p.X, p.Y}) }
func (s accumulatorShim) ConicTo(p1, p2 fixtures.Pt) {
	s.acc.ConicTo(Point{p1.X, p1.Y}, Point{p2.X, p2.Y})
}
func (s accumulatorShim) CubicTo(p1, p2, p3 fixtures.Pt) {
	s.acc.CubicTo(Point{p1.X, p1.Y}, Point{p2.X, p2.Y}, Point{p3.X, p3.Y})
}

// replayFixture runs c through a fresh Accumulator at the given
// tolerance and returns the resulting endpoint stream.
func replayFixture(c fixtures.Case, tolerance float64) []Endpoint {
	var endpoints []Endpoint
	acc := NewAccumulator(tolerance, func(e Endpoint) bool {
		endpoints = append(endpoints, e)
		return true
	})
	c.Replay(accumulatorShim{acc})
	return endpoints
}

// bezierFromFixture converts a fixtures.BezierCase's plain control
// points into a Bezier.
func bezierFromFixture(c fixtures.BezierCase) Bezier {
	pt := func(p fixtures.Pt) Point { return Point{p.X, p.Y} }
	return Bezier{P0: pt(c.P0), P1: pt(c.P1), P2: pt(c.P2), P3: pt(c.P3)}
}

// findBezierFixture returns the named fixtures.BezierCurves entry, or
// fails the test.
func findBezierFixture(t interface{ Fatalf(string, ...any) }, name string) fixtures.BezierCase {
	for _, c := range fixtures.BezierCurves {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no bezier fixture named %q", name)
	return fixtures.BezierCase{}
}

func findOutlineFixture(t interface{ Fatalf(string, ...any) }, name string) fixtures.Case {
	for _, c := range fixtures.All["outline"] {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no outline fixture named %q", name)
	return fixtures.Case{}
}
