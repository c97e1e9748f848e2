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

package fixtures

// kappa is the standard control-point offset for a cubic Bezier
// quarter-circle approximation.
const kappa = 0.5522847498307936

// BezierCase names a single cubic Bezier curve (as four plain control
// points, not glyphy.Bezier, for the same no-dependency reason as Pt)
// used to exercise the arc approximation stages directly
// (ApproximateBezierWithArcs and its helpers), independent of any
// path-accumulation machinery.
type BezierCase struct {
	Name           string
	P0, P1, P2, P3 Pt
	Degree         string // "line", "quadratic-like", "quarter_circle", "s_curve", "cusp"
}

var bezierCases = []Case{} // Bezier-level cases live in BezierCurves, not Case/Ops.

// quadToCubic elevates a quadratic Bezier (p0, q, p2) to the equivalent
// cubic's two control points, by the standard 2/3 rule. Duplicated here
// (rather than calling glyphy.QuadraticToCubic) so this package stays
// independent of seehuhn.de/go/glyphy.
func quadToCubic(p0, q, p2 Pt) (c0, c1 Pt) {
	c0 = Pt{p0.X + 2.0/3*(q.X-p0.X), p0.Y + 2.0/3*(q.Y-p0.Y)}
	c1 = Pt{p2.X + 2.0/3*(q.X-p2.X), p2.Y + 2.0/3*(q.Y-p2.Y)}
	return c0, c1
}

// BezierCurves are standalone Bezier fixtures for approx_test.go and
// spring_test.go, which operate one curve at a time rather than
// replaying a full path.
var BezierCurves = []BezierCase{
	{
		Name:   "straight_line",
		P0:     PT(0, 0),
		P1:     PT(10.0/3, 0),
		P2:     PT(20.0/3, 0),
		P3:     PT(10, 0),
		Degree: "line",
	},
	{
		Name:   "quarter_circle",
		P0:     PT(1, 0),
		P1:     PT(1, kappa),
		P2:     PT(kappa, 1),
		P3:     PT(0, 1),
		Degree: "quarter_circle",
	},
	func() BezierCase {
		p0, q, p2 := PT(10, 32), PT(32, 28), PT(54, 32)
		c0, c1 := quadToCubic(p0, q, p2)
		return BezierCase{
			Name:   "shallow_quadratic",
			P0:     p0,
			P1:     c0,
			P2:     c1,
			P3:     p2,
			Degree: "quadratic-like",
		}
	}(),
	{
		// Symmetric S-shaped curve: control points on opposite sides of
		// the chord, forcing at least two arcs to meet tolerance.
		Name:   "s_curve",
		P0:     PT(0, 0),
		P1:     PT(0, 20),
		P2:     PT(20, -20),
		P3:     PT(20, 0),
		Degree: "s_curve",
	},
	{
		// A sharp cusp: both endpoints coincide and the control points
		// sit far out on either side of them, just above the x-axis,
		// producing a near-degenerate curve.
		Name:   "near_cusp",
		P0:     PT(0, 0),
		P1:     PT(30, 0.1),
		P2:     PT(-30, 0.1),
		P3:     PT(0, 0),
		Degree: "cusp",
	},
}
