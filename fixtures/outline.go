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

// outlineCases cover contour splitting, winding, and nesting: the
// shapes WindingFromEvenOdd and the blob encoder's contour bipartition
// need to handle.
var outlineCases = []Case{
	{
		Name: "square_cw",
		Ops: []Op{
			Move(PT(0, 0)),
			Line(PT(0, 10)),
			Line(PT(10, 10)),
			Line(PT(10, 0)),
			Line(PT(0, 0)),
		},
		Contours: 1,
		Closed:   true,
	},
	{
		Name: "square_ccw",
		Ops: []Op{
			Move(PT(0, 0)),
			Line(PT(10, 0)),
			Line(PT(10, 10)),
			Line(PT(0, 10)),
			Line(PT(0, 0)),
		},
		Contours: 1,
		Closed:   true,
	},
	{
		// A square with a smaller square hole: two contours, one nested
		// inside the other, neither crossing the other.
		Name: "square_with_hole",
		Ops: []Op{
			Move(PT(0, 0)),
			Line(PT(20, 0)),
			Line(PT(20, 20)),
			Line(PT(0, 20)),
			Line(PT(0, 0)),

			Move(PT(5, 5)),
			Line(PT(5, 15)),
			Line(PT(15, 15)),
			Line(PT(15, 5)),
			Line(PT(5, 5)),
		},
		Contours: 2,
		Closed:   true,
	},
	{
		// Two squares side by side, overlapping so their boundaries
		// cross: exercises the "solid edge" (crossing) branch of the
		// contour graph rather than nesting.
		Name: "two_overlapping_squares",
		Ops: []Op{
			Move(PT(0, 0)),
			Line(PT(10, 0)),
			Line(PT(10, 10)),
			Line(PT(0, 10)),
			Line(PT(0, 0)),

			Move(PT(5, 5)),
			Line(PT(15, 5)),
			Line(PT(15, 15)),
			Line(PT(5, 15)),
			Line(PT(5, 5)),
		},
		Contours: 2,
		Closed:   true,
	},
	{
		// An open polyline: not a valid fill contour, used to check
		// that WindingFromEvenOdd leaves unclosed contours untouched.
		Name: "open_polyline",
		Ops: []Op{
			Move(PT(0, 0)),
			Line(PT(10, 0)),
			Line(PT(10, 10)),
		},
		Contours: 1,
		Closed:   false,
	},
}
