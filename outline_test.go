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

import (
	"math"
	"testing"
)

// square returns the endpoint stream for fixtures' "square_ccw" case
// (ccw=true) or "square_cw" case (ccw=false) — a 10×10 square wound in
// each direction, for winding/extents/split tests.
func square(t *testing.T, ccw bool) []Endpoint {
	name := "square_cw"
	if ccw {
		name = "square_ccw"
	}
	return replayFixture(findOutlineFixture(t, name), 1e-3)
}

func TestArcListExtents(t *testing.T) {
	e := ArcListExtents(square(t, true))
	want := Extents{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if e != want {
		t.Errorf("ArcListExtents() = %v, want %v", e, want)
	}
}

func TestArcListExtentsEmpty(t *testing.T) {
	e := ArcListExtents(nil)
	if !e.IsEmpty() {
		t.Errorf("ArcListExtents(nil) = %v, want empty", e)
	}
}

func TestReverseContour(t *testing.T) {
	orig := square(t, true)
	rev := make([]Endpoint, len(orig))
	copy(rev, orig)
	ReverseContour(rev)

	if !rev[0].P.Equal(orig[len(orig)-1].P) {
		t.Errorf("reversed start = %v, want %v", rev[0].P, orig[len(orig)-1].P)
	}
	if !rev[len(rev)-1].P.Equal(orig[0].P) {
		t.Errorf("reversed end = %v, want %v", rev[len(rev)-1].P, orig[0].P)
	}

	// Reversing twice must recover the original stream.
	ReverseContour(rev)
	for i := range orig {
		if !rev[i].P.Equal(orig[i].P) || math.Abs(rev[i].D-orig[i].D) > 1e-12 {
			t.Errorf("double reverse mismatch at %d: got %v, want %v", i, rev[i], orig[i])
		}
	}
}

func TestContourWindingDetectsDirection(t *testing.T) {
	ranges := splitContours(square(t, true))
	if len(ranges) != 1 {
		t.Fatalf("got %d contours, want 1", len(ranges))
	}
	ccwStream := square(t, true)
	cwStream := square(t, false)

	cwWinding := contourWinding(cwStream, ranges[0])
	ccwWinding := contourWinding(ccwStream, ranges[0])
	if cwWinding == ccwWinding {
		t.Error("the two oppositely-wound squares reported the same winding direction")
	}
}

func TestWindingFromEvenOddNormalizesDirection(t *testing.T) {
	s := square(t, true)
	changed := WindingFromEvenOdd(s, false)
	w1 := contourWinding(s, contourRange{0, len(s)})

	s2 := square(t, false)
	WindingFromEvenOdd(s2, false)
	w2 := contourWinding(s2, contourRange{0, len(s2)})

	if w1 != w2 {
		t.Error("WindingFromEvenOdd did not normalize both squares to the same winding")
	}
	_ = changed
}

func TestWindingFromEvenOddSkipsOpenContour(t *testing.T) {
	open := []Endpoint{
		{Point{0, 0}, math.Inf(1)},
		{Point{10, 0}, 0},
		{Point{10, 10}, 0},
	}
	before := make([]Endpoint, len(open))
	copy(before, open)

	WindingFromEvenOdd(open, true)
	for i := range open {
		if open[i] != before[i] {
			t.Errorf("open contour was modified at %d: %v != %v", i, open[i], before[i])
		}
	}
}

func TestEvenOddContainsPoint(t *testing.T) {
	s := square(t, true)
	r := contourRange{0, len(s)}
	if !evenOddContainsPoint(s, r, Point{5, 5}) {
		t.Error("center of square reported outside")
	}
	if evenOddContainsPoint(s, r, Point{50, 50}) {
		t.Error("far point reported inside")
	}
}

func TestSplitContoursMultiple(t *testing.T) {
	var all []Endpoint
	all = append(all, square(t, true)...)
	all = append(all, square(t, false)...)
	ranges := splitContours(all)
	if len(ranges) != 2 {
		t.Fatalf("got %d contour ranges, want 2", len(ranges))
	}
	if ranges[0].Start != 0 || ranges[0].End != len(square(t, true)) {
		t.Errorf("first range = %v, want {0,%d}", ranges[0], len(square(t, true)))
	}
}
