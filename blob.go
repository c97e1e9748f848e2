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
	"bytes"
	"math"
)

// GridSize is the default header-grid dimension along the longer glyph
// axis; the shorter axis is squeezed down from this so that cells stay
// (nearly) square.
const GridSize = 24

// maxCoord is the largest quantized coordinate value a cell's 12-bit x/y
// fields can hold.
const maxCoord = 4095

// RGBA is one 32-bit cell of the encoded blob.
type RGBA struct {
	R, G, B, A uint8
}

// sdfFromArcList returns the signed distance from p to the nearest arc in
// endpoints: negative when p is inside the region the arcs bound,
// positive outside, matching Arc.SignedDistanceToPoint's convention. It
// returns +Inf if endpoints describes no arcs.
func sdfFromArcList(endpoints []Endpoint, p Point) float64 {
	best := math.Inf(1)
	havePrev := false
	var p0 Point
	for _, e := range endpoints {
		if e.IsMove() {
			p0 = e.P
			havePrev = true
			continue
		}
		if !havePrev {
			continue
		}
		arc := Arc{P0: p0, P1: e.P, D: e.D}
		d := arc.SignedDistanceToPoint(p)
		if math.Abs(d) < math.Abs(best) {
			best = d
		}
		p0 = e.P
	}
	return best
}

// contourVertex is one node of the contour-relationship graph built by
// rearrangeContours: contours that physically cross get a solid edge;
// contours that merely nest (no crossing, one strictly inside the other)
// get a dotted edge.
type contourVertex struct {
	r            contourRange
	index        int
	dottedEdges  []int
	solidEdges   []int
}

func contoursIntersect(endpoints []Endpoint, c1, c2 contourRange) bool {
	e1 := ArcListExtents(endpoints[c1.Start:c1.End])
	e2 := ArcListExtents(endpoints[c2.Start:c2.End])
	feasible := e1.MinX <= e2.MaxX && e1.MaxX >= e2.MinX &&
		e1.MaxY >= e2.MinY && e1.MinY <= e2.MaxY
	if !feasible {
		return false
	}

	p0a := Point{}
	for j := c1.Start + 1; j < c1.End; j++ {
		if endpoints[j-1].IsMove() {
			p0a = endpoints[j-1].P
		}
		a1 := Arc{P0: p0a, P1: endpoints[j].P, D: endpoints[j].D}
		p0a = endpoints[j].P

		p0b := Point{}
		for i := c2.Start + 1; i < c2.End; i++ {
			if endpoints[i-1].IsMove() {
				p0b = endpoints[i-1].P
			}
			a2 := Arc{P0: p0b, P1: endpoints[i].P, D: endpoints[i].D}
			p0b = endpoints[i].P

			if endpoints[j].IsMove() || endpoints[i].IsMove() {
				continue
			}
			if a1.Intersects(a2) {
				return true
			}
		}
	}
	return false
}

func populateConnectedComponent(contours []contourVertex, current int, seen []bool, out *[]int) {
	if seen[current] {
		return
	}
	seen[current] = true
	*out = append(*out, current)
	for _, k := range contours[current].dottedEdges {
		populateConnectedComponent(contours, contours[k].index, seen, out)
	}
}

func assignContourLevels(contours []contourVertex, current, level int, levels []int) {
	if levels[current] != -1 {
		return
	}
	levels[current] = level
	for _, k := range contours[current].solidEdges {
		assignContourLevels(contours, k, level+1, levels)
	}
}

// rearrangeContours regroups the contours of endpoints into two groups
// such that no two contours within the same group cross one another
// (as far as a two-colouring of the contour graph allows), returning the
// regrouped endpoint stream and the index at which the second group
// begins. Contours that physically cross are joined by a solid edge in
// the contour graph and land on opposite sides of the cutoff; contours
// that merely nest collapse into one graph vertex before the final
// bipartition, so e.g. all three contours of the letter "B" travel
// together even though the two inner counters don't cross each other.
func rearrangeContours(endpoints []Endpoint) ([]Endpoint, int) {
	n := len(endpoints)
	if n == 0 {
		return endpoints, 0
	}

	ranges := splitContours(endpoints)
	contours := make([]contourVertex, len(ranges))
	for i, r := range ranges {
		contours[i] = contourVertex{r: r, index: i}
	}

	for k := range contours {
		for j := 0; j < k; j++ {
			if contoursIntersect(endpoints, contours[k].r, contours[j].r) {
				contours[k].solidEdges = append(contours[k].solidEdges, j)
				contours[j].solidEdges = append(contours[j].solidEdges, k)
				continue
			}
			kInJ := evenOddContainsPoint(endpoints, contours[j].r, endpoints[contours[k].r.Start].P)
			jInK := evenOddContainsPoint(endpoints, contours[k].r, endpoints[contours[j].r.Start].P)
			if kInJ || jInK {
				contours[k].dottedEdges = append(contours[k].dottedEdges, j)
				contours[j].dottedEdges = append(contours[j].dottedEdges, k)
			}
		}
	}

	seen := make([]bool, len(contours))
	var newContours []contourVertex
	rearranged := make([]Endpoint, 0, n)
	for j := range contours {
		if seen[j] {
			continue
		}
		var connected []int
		populateConnectedComponent(contours, j, seen, &connected)

		merged := contourVertex{index: len(newContours)}
		start := len(rearranged)
		for _, k := range connected {
			merged.dottedEdges = append(merged.dottedEdges, contours[k].index)
			contours[k].index = merged.index
			rearranged = append(rearranged, endpoints[contours[k].r.Start:contours[k].r.End]...)
		}
		merged.r = contourRange{start, len(rearranged)}
		newContours = append(newContours, merged)
	}

	for j := range newContours {
		var solid []int
		for _, m := range newContours[j].dottedEdges {
			for _, k := range contours[m].solidEdges {
				edge := contours[k].index
				dup := false
				for _, existing := range solid {
					if existing == edge {
						dup = true
						break
					}
				}
				if !dup {
					solid = append(solid, edge)
				}
			}
		}
		newContours[j].solidEdges = solid
	}

	levels := make([]int, len(newContours))
	for i := range levels {
		levels[i] = -1
	}
	for j := range newContours {
		if levels[j] == -1 {
			assignContourLevels(newContours, j, 0, levels)
		}
	}

	result := make([]Endpoint, n)
	top, bottom := 0, n
	for i, c := range newContours {
		length := c.r.End - c.r.Start
		if levels[i]%2 == 0 {
			copy(result[top:top+length], rearranged[c.r.Start:c.r.End])
			top += length
		} else {
			copy(result[bottom-length:bottom], rearranged[c.r.Start:c.r.End])
			bottom -= length
		}
	}

	return result, top
}

// closestArcsToCell returns the endpoints of every arc that may be
// closest to some point within the cell [c0,c1], along with the side tag
// (+1 outside, -1 inside) and the count of those endpoints belonging to
// the first contour group (the cutoff boundary).
func closestArcsToCell(c0, c1 Point, faraway float64, endpoints []Endpoint, cutoff int) (near []Endpoint, numGroup1 int, side int) {
	c := c0.Midpoint(c1)

	minDist1 := sdfFromArcList(endpoints[:cutoff], c)
	minDist2 := sdfFromArcList(endpoints[cutoff:], c)
	minDist := math.Abs(sdfFromArcList(endpoints, c))

	side = 1
	if minDist1 < 0 {
		side = -1
	}
	if minDist2 < 0 {
		side = -1
	}

	halfDiagonal := c.Distance(c0)
	radiusSquared := (minDist + halfDiagonal) * (minDist + halfDiagonal)

	var nearArcs []Arc
	mainContourArcs := 0

	if minDist-halfDiagonal <= faraway &&
		minDist1 > -halfDiagonal && minDist2 > -halfDiagonal {
		p0 := Point{}
		for i, e := range endpoints {
			if e.IsMove() {
				p0 = e.P
				continue
			}
			arc := Arc{P0: p0, P1: e.P, D: e.D}
			p0 = e.P
			if arc.SquaredDistanceToPoint(c) <= radiusSquared {
				nearArcs = append(nearArcs, arc)
				if i < cutoff {
					mainContourArcs++
				}
			}
		}
	}

	numGroup1 = mainContourArcs
	var p1 Point
	for i, arc := range nearArcs {
		if i == 0 || !p1.Equal(arc.P0) || i == mainContourArcs {
			near = append(near, Endpoint{P: arc.P0, D: math.Inf(1)})
			p1 = arc.P0
			if i < mainContourArcs {
				numGroup1++
			}
		}
		near = append(near, Endpoint{P: arc.P1, D: arc.D})
		p1 = arc.P1
	}
	return near, numGroup1, side
}

func quantize(v, lo, width float64) int {
	return int(math.Round(maxCoord * (v - lo) / width))
}

func dequantize(q int, lo, width float64) float64 {
	return float64(q)/maxCoord*width + lo
}

func arcEndpointEncode(ix, iy int, d float64) RGBA {
	var id int
	if math.IsInf(d, 0) {
		id = 0
	} else {
		id = 128 + int(math.Round(d*127/MaxD))
	}
	return RGBA{
		R: uint8(id),
		G: uint8(ix & 0xFF),
		B: uint8(iy & 0xFF),
		A: uint8(((ix >> 8) << 4) | (iy >> 8)),
	}
}

func arcListEncode(firstGroupLen, offset, numPoints int, side int) RGBA {
	v := RGBA{
		R: uint8(firstGroupLen & 0x7F),
		G: uint8((offset >> 8) & 0xFF),
		B: uint8(offset & 0xFF),
		A: uint8(numPoints & 0xFF),
	}
	if side < 0 && numPoints == 0 {
		v.A = 255
	}
	return v
}

func lineEncode(l Line) RGBA {
	nl := l.Normalized()
	angle := nl.N.Angle()

	ia := int(math.Round(-angle / math.Pi * 0x7FFF))
	ua := uint32(int32(ia)+0x8000) & 0xFFFF

	id := int(math.Round(nl.C * 0x1FFF))
	ud := uint32(int32(id)+0x4000) & 0x7FFF
	ud |= 0x8000

	return RGBA{
		R: uint8(ud >> 8),
		G: uint8(ud & 0xFF),
		B: uint8(ua >> 8),
		A: uint8(ua & 0xFF),
	}
}

// EncodeResult summarizes the output of EncodeBlob.
type EncodeResult struct {
	Cells          []RGBA
	NominalWidth   int
	NominalHeight  int
	Extents        Extents
	AvgFetch       float64
}

// EncodeBlob partitions the glyph described by endpoints into a grid of at
// most GridSize-by-GridSize cells and packs, for every cell, the arcs that
// may be closest to some point in that cell into a texture-addressable
// RGBA blob: a header of NominalWidth*NominalHeight cells followed by a
// deduplicated pool of arc-endpoint (or line-form) cells.
//
// faraway is the padding, in design units, added to the glyph's extents
// and used to decide when a cell is "too far" from the outline to need
// any arcs at all. It reports false if cap is too small to hold the
// result; no partial result is produced in that case.
func EncodeBlob(endpoints []Endpoint, faraway float64, cap int) (EncodeResult, bool) {
	extents := ArcListExtents(endpoints)
	if extents.IsEmpty() {
		if cap < 1 {
			return EncodeResult{}, false
		}
		return EncodeResult{
			Cells:         []RGBA{arcListEncode(0, 0, 0, +1)},
			NominalWidth:  1,
			NominalHeight: 1,
			Extents:       extents,
			AvgFetch:      1,
		}, true
	}

	extents.MinX -= faraway
	extents.MinY -= faraway
	extents.MaxX += faraway
	extents.MaxY += faraway

	glyphWidth := extents.MaxX - extents.MinX
	glyphHeight := extents.MaxY - extents.MinY
	unit := math.Max(glyphWidth, glyphHeight)

	gridW, gridH := GridSize, GridSize
	if glyphWidth > glyphHeight {
		for float64(gridH-1)*unit/float64(gridW) > glyphHeight {
			gridH--
		}
		glyphHeight = float64(gridH) * unit / float64(gridW)
		extents.MaxY = extents.MinY + glyphHeight
	} else {
		for float64(gridW-1)*unit/float64(gridH) > glyphWidth {
			gridW--
		}
		glyphWidth = float64(gridW) * unit / float64(gridH)
		extents.MaxX = extents.MinX + glyphWidth
	}

	cellUnit := unit / math.Max(float64(gridW), float64(gridH))

	headerLen := gridW * gridH
	texData := make([]RGBA, headerLen)
	origin := Point{extents.MinX, extents.MinY}

	rearranged, cutoff := rearrangeContours(endpoints)

	offset := headerLen
	totalArcs := 0

	snap := func(p Point) Point {
		qx := quantize(p.X, extents.MinX, glyphWidth)
		qy := quantize(p.Y, extents.MinY, glyphHeight)
		return Point{dequantize(qx, extents.MinX, glyphWidth), dequantize(qy, extents.MinY, glyphHeight)}
	}

	for row := 0; row < gridH; row++ {
		for col := 0; col < gridW; col++ {
			cp0 := origin.Add(Vector{float64(col) * cellUnit, float64(row) * cellUnit})
			cp1 := origin.Add(Vector{float64(col+1) * cellUnit, float64(row+1) * cellUnit})

			near, numGroup1, side := closestArcsToCell(cp0, cp1, faraway, rearranged, cutoff)

			if len(near) == 2 && near[1].D == 0 {
				center := Point{extents.MinX + glyphWidth*.5, extents.MinY + glyphHeight*.5}
				line := LineThrough(snap(near[0].P), snap(near[1].P))
				line.C -= line.N.Dot(Vector{center.X, center.Y})
				line.C /= unit
				texData[row*gridW+col] = lineEncode(line)
				continue
			}

			if len(near) == 4 && math.IsInf(near[2].D, 1) &&
				near[0].P.Equal(near[3].P) {
				near = []Endpoint{near[2], near[3], near[1]}
			}

			prevOffset := offset
			for _, e := range near {
				qx := quantize(e.P.X, extents.MinX, glyphWidth)
				qy := quantize(e.P.Y, extents.MinY, glyphHeight)
				texData = append(texData, arcEndpointEncode(qx, qy, e.D))
			}

			currentEndpoints := len(texData) - prevOffset

			found := false
			if currentEndpoints > 0 {
				needle := rgbaBytes(texData[prevOffset : prevOffset+currentEndpoints])
				haystackAll := rgbaBytes(texData[headerLen:prevOffset])
				needleLen := currentEndpoints * 4
				for h := 0; h+needleLen <= len(haystackAll); h += 4 {
					if bytes.Equal(haystackAll[h+1:h+needleLen], needle[1:]) {
						found = true
						offset = headerLen + h/4
						break
					}
				}
			}
			if found {
				texData = texData[:prevOffset]
			} else {
				offset = prevOffset
			}

			texData[row*gridW+col] = arcListEncode(numGroup1, offset, currentEndpoints, side)
			offset = len(texData)
			totalArcs += currentEndpoints
		}
	}

	if len(texData) > cap {
		return EncodeResult{}, false
	}

	avgFetch := 1 + float64(totalArcs)/float64(gridW*gridH)

	return EncodeResult{
		Cells:         texData,
		NominalWidth:  gridW,
		NominalHeight: gridH,
		Extents:       extents,
		AvgFetch:      avgFetch,
	}, true
}

func rgbaBytes(cells []RGBA) []byte {
	b := make([]byte, 0, len(cells)*4)
	for _, c := range cells {
		b = append(b, c.R, c.G, c.B, c.A)
	}
	return b
}
