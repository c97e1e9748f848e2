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

// ArcListExtents returns the bounding box of the arcs described by an
// endpoint stream, or the empty Extents if the stream describes no arcs.
func ArcListExtents(endpoints []Endpoint) Extents {
	ext := EmptyExtents()
	p0 := Point{}
	any := false
	for _, e := range endpoints {
		if e.IsMove() {
			p0 = e.P
			continue
		}
		arc := Arc{P0: p0, P1: e.P, D: e.D}
		ext = ext.Union(arc.Extents())
		p0 = e.P
		any = true
	}
	if !any {
		return EmptyExtents()
	}
	return ext
}

// ReverseContour reverses a single contour's endpoint stream in place:
// the first arc's depth becomes the old last arc's depth (shifted by one
// position), every depth is negated, and the point order is reversed.
func ReverseContour(endpoints []Endpoint) {
	n := len(endpoints)
	if n == 0 {
		return
	}
	d0 := endpoints[0].D
	for i := 0; i < n-1; i++ {
		endpoints[i].D = -endpoints[i+1].D
	}
	endpoints[n-1].D = d0
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		endpoints[i], endpoints[j] = endpoints[j], endpoints[i]
	}
}

// contourRange is a half-open [Start,End) slice of an endpoint stream
// describing one sub-contour.
type contourRange struct {
	Start, End int
}

// splitContours returns the [start,end) ranges of every sub-contour in
// endpoints, delimited by move (D=+Inf) records.
func splitContours(endpoints []Endpoint) []contourRange {
	var ranges []contourRange
	start := 0
	for i := 1; i < len(endpoints); i++ {
		if endpoints[i].IsMove() {
			ranges = append(ranges, contourRange{start, i})
			start = i
		}
	}
	if len(endpoints) > 0 {
		ranges = append(ranges, contourRange{start, len(endpoints)})
	}
	return ranges
}

// contourWinding reports whether the contour endpoints[r.Start:r.End] is
// wound counter-clockwise (true) or clockwise (false), by finding the
// lexicographically lowest-x point and comparing tangent directions (or,
// if that extreme point lies strictly inside an arc rather than at a
// corner, reading the sweep sign of that arc directly).
func contourWinding(endpoints []Endpoint, r contourRange) bool {
	corner := r.Start
	for i := r.Start + 1; i < r.End; i++ {
		if endpoints[i].P.X < endpoints[corner].P.X ||
			(endpoints[i].P.X == endpoints[corner].P.X && endpoints[i].P.Y < endpoints[corner].P.Y) {
			corner = i
		}
	}

	minX := endpoints[corner].P.X
	winner := -1
	p0 := Point{}
	for i := r.Start; i < r.End; i++ {
		ep := endpoints[i]
		if ep.IsMove() || ep.D == 0 {
			p0 = ep.P
			continue
		}
		arc := Arc{P0: p0, P1: ep.P, D: ep.D}
		p0 = ep.P

		c := arc.Center()
		radius := arc.Radius()
		leftPoint := Point{c.X - radius, c.Y}
		if c.X-radius < minX && arc.WedgeContainsPoint(leftPoint) {
			minX = c.X - radius
			winner = i
		}
	}

	if winner == -1 {
		n := r.End - r.Start
		local := corner - r.Start
		prevIdx := r.Start + (local+1)%n
		nextIdx := r.Start + (local-1+n)%n
		if endpoints[nextIdx].P.Equal(endpoints[corner].P) && n > 2 {
			// corner is the contour's start point, so wrapping one step
			// back lands on the duplicate closing point rather than a
			// distinct neighbor; step back one further to the real
			// predecessor.
			nextIdx = r.Start + (local-2+n)%n
		}

		// depthAt returns the depth of the arc ending at endpoints[i],
		// substituting the contour's closing arc depth when i is the
		// move record: for a closed contour that record's point
		// coincides with the last endpoint, which carries the real D.
		depthAt := func(i int) float64 {
			if endpoints[i].IsMove() {
				return endpoints[r.End-1].D
			}
			return endpoints[i].D
		}

		ethis := endpoints[corner]
		eprev := endpoints[prevIdx]
		enext := endpoints[nextIdx]

		inArc := Arc{P0: eprev.P, P1: ethis.P, D: depthAt(corner)}
		outArc := Arc{P0: ethis.P, P1: enext.P, D: depthAt(nextIdx)}
		_, t1 := inArc.Tangents()
		t0, _ := outArc.Tangents()
		in := t1.Scale(-1).Angle()
		out := t0.Angle()
		return in < out
	}

	return endpoints[winner].D > 0
}

// evenOddContainsPoint reports whether p lies inside the closed contour
// endpoints[r.Start:r.End], by casting a ray in the -X direction and
// counting crossings. Only the single-contour case is implemented: the
// general multi-contour even-odd test named alongside winding in the
// original implementation was never completed upstream, and this module
// follows that limitation rather than inventing semantics for it.
func evenOddContainsPoint(endpoints []Endpoint, r contourRange, p Point) bool {
	crossings := 0
	p0 := Point{}
	for i := r.Start; i < r.End; i++ {
		ep := endpoints[i]
		if ep.IsMove() {
			p0 = ep.P
			continue
		}
		p1 := ep.P
		crossesRay := (p0.Y > p.Y) != (p1.Y > p.Y)
		if crossesRay {
			d := ep.D
			var xAtY float64
			if math.Abs(d) < straightEpsilon {
				t := (p.Y - p0.Y) / (p1.Y - p0.Y)
				xAtY = p0.X + t*(p1.X-p0.X)
			} else {
				arc := Arc{P0: p0, P1: p1, D: d}
				c := arc.Center()
				radius := arc.Radius()
				dy := p.Y - c.Y
				if math.Abs(dy) <= radius {
					dx := math.Sqrt(radius*radius - dy*dy)
					// Choose the circle intersection that actually lies on
					// this arc; fall back to the chord midpoint x if
					// neither candidate is on the finite arc (degenerate
					// near-tangential case).
					cand1 := Point{c.X - dx, p.Y}
					cand2 := Point{c.X + dx, p.Y}
					switch {
					case arc.onArc(cand1):
						xAtY = cand1.X
					case arc.onArc(cand2):
						xAtY = cand2.X
					default:
						xAtY = p0.Midpoint(p1).X
					}
				} else {
					xAtY = p0.Midpoint(p1).X
				}
			}
			if xAtY < p.X {
				crossings++
			}
		}
		p0 = p1
	}
	return crossings%2 == 1
}

// processContour reverses a single contour in place if its current
// winding direction disagrees with the requested fill rule, and reports
// whether it did so.
func processContour(endpoints []Endpoint, r contourRange, inverse bool) bool {
	n := r.End - r.Start
	if n < 3 {
		return false
	}
	if !endpoints[r.Start].P.Equal(endpoints[r.End-1].P) {
		return false
	}

	cw := contourWinding(endpoints, r)
	if inverse != cw {
		ReverseContour(endpoints[r.Start:r.End])
		return true
	}
	return false
}

// WindingFromEvenOdd walks every sub-contour of endpoints and reverses it
// in place if its current winding direction does not match inverse. It
// reports whether any contour was modified.
func WindingFromEvenOdd(endpoints []Endpoint, inverse bool) bool {
	any := false
	for _, r := range splitContours(endpoints) {
		if processContour(endpoints, r, inverse) {
			any = true
		}
	}
	return any
}
