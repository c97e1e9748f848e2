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

// Package fixtures collects reusable test glyphs (as path primitive
// sequences, independent of any particular font) for exercising the arc
// approximation, accumulation, outline, and blob encoding stages.
//
// This package deliberately carries no dependency on seehuhn.de/go/glyphy
// itself, the same way the teacher's testcases package depends only on
// seehuhn.de/go/geom and never on the raster/render package it seeds:
// that keeps fixtures importable from glyphy's own internal (package
// glyphy) tests without an import cycle. Consumers replay a Case onto
// their own Consumer implementation, which is typically a thin adapter
// around a *glyphy.Accumulator.
package fixtures

// Pt is a plain 2D point, independent of glyphy.Point so this package
// does not need to import seehuhn.de/go/glyphy.
type Pt struct {
	X, Y float64
}

// Op is one path-construction primitive, replayed onto a Consumer by
// Case.Replay.
type Op struct {
	Kind       Kind
	P1, P2, P3 Pt
}

// Kind identifies which of Op's points are meaningful.
type Kind int

const (
	MoveTo Kind = iota
	LineTo
	ConicTo
	CubicTo
)

func Move(p Pt) Op          { return Op{Kind: MoveTo, P1: p} }
func Line(p Pt) Op          { return Op{Kind: LineTo, P1: p} }
func Conic(c, p Pt) Op      { return Op{Kind: ConicTo, P1: c, P2: p} }
func Cubic(c1, c2, p Pt) Op { return Op{Kind: CubicTo, P1: c1, P2: c2, P3: p} }
func PT(x, y float64) Pt    { return Pt{X: x, Y: y} }

// Consumer is the subset of *glyphy.Accumulator's API (over Pt rather
// than glyphy.Point) that Replay needs; it lets tests replay a Case onto
// a recording stub as well as onto a real accumulator adapter.
type Consumer interface {
	MoveTo(p Pt)
	LineTo(p Pt)
	ConicTo(p1, p2 Pt)
	CubicTo(p1, p2, p3 Pt)
}

// Case is a single named glyph outline, given as a sequence of path
// primitives, together with the properties an encoded version of it is
// expected to have.
type Case struct {
	Name string // lowercase a-z and _ only

	Ops []Op

	// Contours is the expected number of sub-contours (MoveTo-delimited
	// groups) in the accumulated endpoint stream.
	Contours int

	// Closed, if true, asserts that every contour starts and ends at the
	// same point (required for WindingFromEvenOdd to touch it).
	Closed bool
}

// Replay feeds c's path primitives to dst in order.
func (c Case) Replay(dst Consumer) {
	for _, op := range c.Ops {
		switch op.Kind {
		case MoveTo:
			dst.MoveTo(op.P1)
		case LineTo:
			dst.LineTo(op.P1)
		case ConicTo:
			dst.ConicTo(op.P1, op.P2)
		case CubicTo:
			dst.CubicTo(op.P1, op.P2, op.P3)
		}
	}
}

// All contains every fixture case, grouped by category.
var All = map[string][]Case{
	"outline": outlineCases,
	"bezier":  bezierCases,
	"glyph":   glyphCases,
}
