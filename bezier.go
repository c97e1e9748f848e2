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

// Bezier is a cubic Bézier curve.
type Bezier struct {
	P0, P1, P2, P3 Point
}

// QuadraticToCubic lifts a quadratic Bézier (p0, pc, p3) to the equivalent
// cubic, using the standard 2/3 control-point rule.
func QuadraticToCubic(p0, pc, p3 Point) Bezier {
	return Bezier{
		P0: p0,
		P1: p0.Lerp(2.0/3.0, pc),
		P2: p3.Lerp(2.0/3.0, pc),
		P3: p3,
	}
}

// Eval returns the point on the curve at parameter t in [0,1].
func (b Bezier) Eval(t float64) Point {
	u := 1 - t
	c0 := u * u * u
	c1 := 3 * u * u * t
	c2 := 3 * u * t * t
	c3 := t * t * t
	return Point{
		X: c0*b.P0.X + c1*b.P1.X + c2*b.P2.X + c3*b.P3.X,
		Y: c0*b.P0.Y + c1*b.P1.Y + c2*b.P2.Y + c3*b.P3.Y,
	}
}

// Halve splits b at t=0.5 into two sub-curves covering [0,0.5] and
// [0.5,1], using de Casteljau subdivision.
func (b Bezier) Halve() (left, right Bezier) {
	ab := b.P0.Midpoint(b.P1)
	bc := b.P1.Midpoint(b.P2)
	cd := b.P2.Midpoint(b.P3)
	abbc := ab.Midpoint(bc)
	bccd := bc.Midpoint(cd)
	m := abbc.Midpoint(bccd)

	left = Bezier{P0: b.P0, P1: ab, P2: abbc, P3: m}
	right = Bezier{P0: m, P1: bccd, P2: cd, P3: b.P3}
	return left, right
}

// Midpoint returns the point at t=0.5, which is also the shared endpoint
// of the two halves returned by Halve.
func (b Bezier) Midpoint() Point {
	return b.Eval(0.5)
}
