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

// DefaultMaxSegments bounds the outer sweep of ApproximateBezierWithArcs:
// if no segment count up to this value drives every arc's deviation below
// tolerance, the best attempt found is returned along with its true
// (possibly still too large) max error.
const DefaultMaxSegments = 1000

// segment returns the portion of b between parameters t0 and t1.
func (b Bezier) segment(t0, t1 float64) Bezier {
	if math.Abs(t0-t1) < 1e-6 {
		p := b.Eval(t0)
		return Bezier{p, p, p, p}
	}
	_, tail := b.split(t0)
	head, _ := tail.split((t1 - t0) / (1 - t0))
	return head
}

// split divides b into two curves at parameter t.
func (b Bezier) split(t float64) (Bezier, Bezier) {
	p01 := b.P0.Lerp(t, b.P1)
	p12 := b.P1.Lerp(t, b.P2)
	p23 := b.P2.Lerp(t, b.P3)
	p012 := p01.Lerp(t, p12)
	p123 := p12.Lerp(t, p23)
	p0123 := p012.Lerp(t, p123)
	return Bezier{b.P0, p01, p012, p0123}, Bezier{p0123, p123, p23, b.P3}
}

// calcArcs fills arcs and e with one approximating arc and its deviation
// for every knot interval in t, and returns the max and min deviation
// observed.
func calcArcs(b Bezier, t []float64, arcs []Arc, e []float64) (maxE, minE float64) {
	n := len(t) - 1
	minE = math.Inf(1)
	for i := 0; i < n; i++ {
		sub := b.segment(t[i], t[i+1])
		arc, err := approximateBezierWithArc(sub)
		arcs[i] = arc
		e[i] = err
		if err > maxE {
			maxE = err
		}
		if err < minE {
			minE = err
		}
	}
	return maxE, minE
}

// jiggle re-weights the knots t so that segments with large error shrink
// and segments with slack grow, re-running calcArcs after each pass, for
// up to floor(log2(n))+1 passes. It stops early once every segment meets
// tolerance or the per-segment errors are close enough to each other that
// further re-weighting would not help.
func jiggle(b Bezier, t []float64, arcs []Arc, e []float64, tolerance float64) (maxE, minE float64) {
	n := len(t) - 1
	maxJiggle := 0
	if n > 1 {
		maxJiggle = int(math.Log2(float64(n)))
	}
	weight := make([]float64, n)
	for s := 0; s <= maxJiggle; s++ {
		total := 0.0
		for i := 0; i < n; i++ {
			l := t[i+1] - t[i]
			w := l * math.Pow(e[i], -0.3)
			weight[i] = w
			total += w
		}
		for i := 0; i < n; i++ {
			l := weight[i] / total
			t[i+1] = t[i] + l
		}

		maxE, minE = calcArcs(b, t, arcs, e)

		if maxE < tolerance || 2*minE-maxE > tolerance {
			break
		}
	}
	return maxE, minE
}

// ApproximateBezierWithArcs approximates the cubic Bézier b by a sequence
// of circular arcs whose worst-case deviation from the curve is at most
// tolerance. It returns the arcs in order from b.P0 to b.P3, and the
// actual max error achieved — which can exceed tolerance only if
// maxSegments was reached first. A maxSegments of 0 uses
// DefaultMaxSegments.
func ApproximateBezierWithArcs(b Bezier, tolerance float64, maxSegments int) ([]Arc, float64) {
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}

	var t, e []float64
	var arcs []Arc
	var maxE float64

	for n := 1; n <= maxSegments; n++ {
		t = make([]float64, n+1)
		for i := 0; i <= n; i++ {
			t[i] = float64(i) / float64(n)
		}
		arcs = make([]Arc, n)
		e = make([]float64, n)

		var minE float64
		maxE, minE = calcArcs(b, t, arcs, e)

		if minE <= tolerance {
			maxE, _ = jiggle(b, t, arcs, e, tolerance)
		}

		if maxE <= tolerance {
			break
		}
	}

	return arcs, maxE
}
