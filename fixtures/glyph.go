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

// glyphCases are complete, closed glyph-shaped outlines meant to be
// pushed through the full pipeline: accumulation, winding
// normalization, and blob encoding.
var glyphCases = []Case{
	{
		// A thin vertical bar, like the letter "l": straight edges only,
		// degenerates to line-form cells along most of its boundary.
		Name: "bar",
		Ops: []Op{
			Move(PT(40, 0)),
			Line(PT(60, 0)),
			Line(PT(60, 100)),
			Line(PT(40, 100)),
			Line(PT(40, 0)),
		},
		Contours: 1,
		Closed:   true,
	},
	{
		// A circle built from four cubic quarter-arcs, like the outer
		// boundary of "o": every edge needs genuine arc approximation.
		Name: "circle",
		Ops: []Op{
			Move(PT(100, 50)),
			Cubic(PT(100, 77.6), PT(77.6, 100), PT(50, 100)),
			Cubic(PT(22.4, 100), PT(0, 77.6), PT(0, 50)),
			Cubic(PT(0, 22.4), PT(22.4, 0), PT(50, 0)),
			Cubic(PT(77.6, 0), PT(100, 22.4), PT(100, 50)),
		},
		Contours: 1,
		Closed:   true,
	},
	{
		// The letter "o": an outer circle and a smaller, oppositely
		// wound inner circle forming the counter. Two nested contours
		// that never cross, like square_with_hole but with curved
		// edges, so the blob encoder's line-form fast path does not
		// apply to either.
		Name: "o_shape",
		Ops: []Op{
			Move(PT(100, 50)),
			Cubic(PT(100, 77.6), PT(77.6, 100), PT(50, 100)),
			Cubic(PT(22.4, 100), PT(0, 77.6), PT(0, 50)),
			Cubic(PT(0, 22.4), PT(22.4, 0), PT(50, 0)),
			Cubic(PT(77.6, 0), PT(100, 22.4), PT(100, 50)),

			Move(PT(80, 50)),
			Cubic(PT(80, 33.4), PT(66.6, 20), PT(50, 20)),
			Cubic(PT(33.4, 20), PT(20, 33.4), PT(20, 50)),
			Cubic(PT(20, 66.6), PT(33.4, 80), PT(50, 80)),
			Cubic(PT(66.6, 80), PT(80, 66.6), PT(80, 50)),
		},
		Contours: 2,
		Closed:   true,
	},
	{
		// An empty glyph (a space character): no path primitives at all.
		Name:     "empty",
		Ops:      nil,
		Contours: 0,
		Closed:   true,
	},
}
