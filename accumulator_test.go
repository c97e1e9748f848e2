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

func TestAccumulatorFirstRecordIsMove(t *testing.T) {
	var got []Endpoint
	acc := NewAccumulator(1e-3, func(e Endpoint) bool {
		got = append(got, e)
		return true
	})
	acc.MoveTo(Point{1, 1})
	acc.LineTo(Point{2, 1})
	acc.LineTo(Point{2, 2})

	if len(got) == 0 {
		t.Fatal("no endpoints emitted")
	}
	if !got[0].IsMove() {
		t.Errorf("first endpoint D=%v, want +Inf (move)", got[0].D)
	}
	if !acc.Success() {
		t.Error("Success() = false, want true")
	}
}

func TestAccumulatorRejectsDuplicateMove(t *testing.T) {
	var got []Endpoint
	acc := NewAccumulator(1e-3, func(e Endpoint) bool {
		got = append(got, e)
		return true
	})
	acc.MoveTo(Point{0, 0})
	acc.MoveTo(Point{0, 0}) // redundant, same point: should not emit twice
	acc.LineTo(Point{1, 0})

	moves := 0
	for _, e := range got {
		if e.IsMove() {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("got %d move records, want 1", moves)
	}
}

func TestAccumulatorCallbackRejectionLatches(t *testing.T) {
	count := 0
	acc := NewAccumulator(1e-3, func(e Endpoint) bool {
		count++
		return count < 2
	})
	acc.MoveTo(Point{0, 0})
	acc.LineTo(Point{1, 0})
	acc.LineTo(Point{2, 0})
	acc.LineTo(Point{3, 0})

	if acc.Success() {
		t.Error("Success() = true, want false after rejection")
	}
	if count != 2 {
		t.Errorf("callback invoked %d times, want exactly 2 (stop after rejection)", count)
	}
}

func TestAccumulatorConicMatchesCubicElevation(t *testing.T) {
	var viaConic, viaCubic []Endpoint
	a1 := NewAccumulator(1e-4, func(e Endpoint) bool { viaConic = append(viaConic, e); return true })
	a1.MoveTo(Point{0, 0})
	a1.ConicTo(Point{5, 10}, Point{10, 0})

	c0, c1 := Point{0, 0}.Lerp(2.0/3, Point{5, 10}), Point{10, 0}.Lerp(2.0/3, Point{5, 10})
	a2 := NewAccumulator(1e-4, func(e Endpoint) bool { viaCubic = append(viaCubic, e); return true })
	a2.MoveTo(Point{0, 0})
	a2.CubicTo(c0, c1, Point{10, 0})

	if len(viaConic) != len(viaCubic) {
		t.Fatalf("got %d endpoints via ConicTo, %d via equivalent CubicTo", len(viaConic), len(viaCubic))
	}
	for i := range viaConic {
		if math.Abs(viaConic[i].P.X-viaCubic[i].P.X) > 1e-9 || math.Abs(viaConic[i].P.Y-viaCubic[i].P.Y) > 1e-9 {
			t.Errorf("endpoint %d: ConicTo=%v, CubicTo=%v", i, viaConic[i].P, viaCubic[i].P)
		}
	}
}

func TestAccumulatorArcToBypassesApproximation(t *testing.T) {
	var got []Endpoint
	acc := NewAccumulator(1e-3, func(e Endpoint) bool {
		got = append(got, e)
		return true
	})
	acc.MoveTo(Point{1, 0})
	acc.ArcTo(Point{0, 1}, 0.25)

	if len(got) != 2 {
		t.Fatalf("got %d endpoints, want 2", len(got))
	}
	if got[1].D != 0.25 {
		t.Errorf("arc depth = %v, want 0.25", got[1].D)
	}
}
