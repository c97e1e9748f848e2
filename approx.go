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

// maxDeviation returns the exact supremum over t in [0,1] of
// |d0*t*(1-t)^2 + d1*t^2*(1-t)|, the magnitude of one coordinate of the
// cubic error polynomial between an arc's approximating Bézier and the
// true arc's own approximating Bézier. The extrema of
// f(t) = d0*t*(1-t)^2 + d1*t^2*(1-t) occur at t=0, t=1 or where
// f'(t) = 0; f is a cubic, so f' is a quadratic in t, giving at most two
// interior critical points.
func maxDeviation(d0, d1 float64) float64 {
	candidates := []float64{0, 1}

	// f(t) = t(1-t) * (d0(1-t) + d1 t)
	// Expanding f and differentiating gives the quadratic
	// f'(t) = 3(d0-d1) t^2 + 2(d1 - 2 d0) t + d0, solved directly here.
	// f(t) = d0*t - 2 d0 t^2 + d0 t^3 + d1 t^2 - d1 t^3
	//      = (d0-d1) t^3 + (d1 - 2 d0) t^2 + d0 t
	a := 3 * (d0 - d1)
	b := 2 * (d1 - 2*d0)
	c := d0
	if a == 0 {
		if b != 0 {
			t := -c / b
			if t >= 0 && t <= 1 {
				candidates = append(candidates, t)
			}
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
				if t >= 0 && t <= 1 {
					candidates = append(candidates, t)
				}
			}
		}
	}

	best := 0.0
	for _, t := range candidates {
		v := math.Abs(d0*t*(1-t)*(1-t) + d1*t*t*(1-t))
		if v > best {
			best = v
		}
	}
	return best
}

// bezierArcDeviation estimates the maximum deviation between the cubic b
// and the arc a, which is assumed to share b's endpoints (a.P0 == b.P0,
// a.P1 == b.P3). This is the "Behdad" estimator: it rebases both curves'
// inner control points onto the chord direction, bounds the resulting
// in-plane offset via maxDeviation, and — away from the near-degenerate
// cases — combines that offset with the arc's own curvature to get a
// tighter bound than the naive sum.
func bezierArcDeviation(b Bezier, a Arc) float64 {
	var ea float64
	b1 := a.ApproximateBezier(&ea)

	chord := b.P3.Minus(b.P0)
	chordLen := chord.Length()
	if chordLen == 0 {
		return ea
	}
	cosA := chord.DX / chordLen
	sinA := chord.DY / chordLen
	rebase := func(v Vector) Vector {
		return Vector{
			DX: v.DX*cosA + v.DY*sinA,
			DY: -v.DX*sinA + v.DY*cosA,
		}
	}

	v0 := rebase(b1.P1.Minus(b.P1))
	v1 := rebase(b1.P2.Minus(b.P2))

	vx := maxDeviation(v0.DX, v1.DX)
	vy := maxDeviation(v0.DY, v1.DY)

	d := a.D
	if math.Abs(d*d-1) < 1e-4 {
		return ea + math.Hypot(vx, vy)
	}

	tanHalfAlpha := 2 * math.Abs(d) / (1 - d*d)
	if math.Abs(vy) < 1e-6 {
		vy = 1e-6
	}
	tanV := vx / vy

	if math.Abs(d) < 1e-6 || tanHalfAlpha < 0 ||
		(-tanHalfAlpha <= tanV && tanV <= tanHalfAlpha) {
		return ea + math.Hypot(vx, vy)
	}

	c := b1.P3.Minus(b1.P0).Length() / 2
	r := c * (d*d + 1) / (2 * math.Abs(d))
	return ea + math.Hypot(c/tanHalfAlpha+vy, c+vx) - r
}

// approximateBezierWithArc computes a single arc approximating b using
// the midpoint two-part construction: split b at its midpoint m, build
// the two trial arcs each endpoint shares with m, bound their deviations
// from their respective half-curves, report the larger as the error, and
// return the arc p0->p3 through m.
func approximateBezierWithArc(b Bezier) (Arc, float64) {
	left, right := b.Halve()
	m := left.P3

	a0 := NewArcFromThreePoints(b.P0, m, b.P3, true)
	a1 := NewArcFromThreePoints(m, b.P3, b.P0, true)

	e0 := bezierArcDeviation(left, a0)
	e1 := bezierArcDeviation(right, a1)

	e := e0
	if e1 > e {
		e = e1
	}

	result := NewArcFromThreePoints(b.P0, b.P3, m, false)
	return result, e
}
