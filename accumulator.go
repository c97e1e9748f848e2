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

// Endpoint is one record of the canonical arc endpoint stream: D = +Inf
// marks P as the start of a fresh sub-contour; any other D describes an
// arc of that depth from the previous endpoint to P.
type Endpoint struct {
	P Point
	D float64
}

// IsMove reports whether e is a move (contour-start) record.
func (e Endpoint) IsMove() bool {
	return math.IsInf(e.D, 1)
}

// Accumulator consumes a stream of move/line/conic/cubic path primitives
// and emits the corresponding canonical arc endpoint stream through a
// callback, approximating every cubic with ApproximateBezierWithArcs at
// the configured Tolerance.
//
// An Accumulator is not safe for concurrent use; create one per glyph.
type Accumulator struct {
	// Tolerance bounds the worst-case arc/Bézier deviation passed to
	// ApproximateBezierWithArcs for every cubic segment.
	Tolerance float64

	// Callback receives each emitted endpoint in order. Returning false
	// rejects the endpoint and latches Success to false; all further
	// calls become no-ops.
	Callback func(Endpoint) bool

	current     Point
	numEndpoint int
	maxError    float64
	success     bool
	started     bool
}

// NewAccumulator returns an Accumulator with the given tolerance and
// callback, ready to receive path primitives starting at the origin.
func NewAccumulator(tolerance float64, callback func(Endpoint) bool) *Accumulator {
	return &Accumulator{
		Tolerance: tolerance,
		Callback:  callback,
		success:   true,
	}
}

// Success reports whether every emitted endpoint has been accepted by the
// callback so far.
func (a *Accumulator) Success() bool { return a.success }

// MaxError returns the supremum of the per-Bézier deviations reported by
// ApproximateBezierWithArcs over all CubicTo/ConicTo calls so far.
func (a *Accumulator) MaxError() float64 { return a.maxError }

// NumEndpoints returns the number of endpoints emitted so far.
func (a *Accumulator) NumEndpoints() int { return a.numEndpoint }

func (a *Accumulator) emit(p Point, d float64) {
	if a.started && a.current.Equal(p) {
		return
	}
	if !a.success {
		return
	}
	ok := a.Callback(Endpoint{P: p, D: d})
	if !ok {
		a.success = false
		return
	}
	a.numEndpoint++
	a.current = p
	a.started = true
}

func (a *Accumulator) moveTo(p Point) {
	if !a.started || !a.current.Equal(p) {
		a.emit(p, math.Inf(1))
	}
}

func (a *Accumulator) arc(arc Arc) {
	a.moveTo(arc.P0)
	a.emit(arc.P1, arc.D)
}

// MoveTo starts a new sub-contour at p.
func (a *Accumulator) MoveTo(p Point) {
	a.moveTo(p)
}

// LineTo emits a straight-line arc (depth 0) from the current point to p.
func (a *Accumulator) LineTo(p Point) {
	a.arc(Arc{P0: a.current, P1: p, D: 0})
}

// ConicTo rewrites the quadratic Bézier through control point p1 to
// endpoint p2 as an equivalent cubic and forwards to CubicTo.
func (a *Accumulator) ConicTo(p1, p2 Point) {
	c0 := a.current
	a.CubicTo(c0.Lerp(2.0/3.0, p1), p2.Lerp(2.0/3.0, p1), p2)
}

// CubicTo approximates the cubic Bézier from the current point through
// p1, p2 to p3 with arcs (via ApproximateBezierWithArcs at a.Tolerance)
// and emits each one.
func (a *Accumulator) CubicTo(p1, p2, p3 Point) {
	b := Bezier{P0: a.current, P1: p1, P2: p2, P3: p3}
	arcs, err := ApproximateBezierWithArcs(b, a.Tolerance, 0)
	if err > a.maxError {
		a.maxError = err
	}
	for _, arc := range arcs {
		a.arc(arc)
	}
}

// ArcTo emits a single arc of depth d from the current point to p1,
// bypassing Bézier approximation; used when the caller already has exact
// arc geometry (e.g. when re-emitting arcs already produced by another
// Accumulator).
func (a *Accumulator) ArcTo(p1 Point, d float64) {
	a.arc(Arc{P0: a.current, P1: p1, D: d})
}
