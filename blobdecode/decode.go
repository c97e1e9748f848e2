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

// Package blobdecode implements the bit-exact rules a consumer of a
// glyphy-encoded SDF blob must follow to recover arcs and signed
// distance at an arbitrary fragment. It exists only to let the encoder's
// round-trip and idempotence properties be tested from this Go module;
// production consumers normally do this reconstruction in a fragment
// shader instead.
package blobdecode

import (
	"math"

	"seehuhn.de/go/glyphy"
)

// Grid is a decoded header view of an encoded blob: the cells as
// returned by glyphy.EncodeBlob, the grid dimensions, and the (padded)
// glyph extents the quantized coordinates are relative to.
type Grid struct {
	Cells         []glyphy.RGBA
	Width, Height int
	Extents       glyphy.Extents
}

// cellHeader is the decoded content of one header-grid cell.
type cellHeader struct {
	firstGroupCount int
	offset          int
	numPoints       int
	empty           bool
	isLine          bool
	line            glyphy.Line
}

func decodeHeader(c glyphy.RGBA) cellHeader {
	// Line-form cells store a marker in the high bit of the 16-bit "ud"
	// word formed by R (high byte) and G (low byte), i.e. in R's MSB;
	// the encoder sets that bit only for line cells, and header cells
	// always keep R's MSB (bit 7) clear (7-bit count), so a set high bit
	// in the (R,G) pair unambiguously means line-form.
	ud := uint16(c.R)<<8 | uint16(c.G)
	if ud&0x8000 != 0 {
		ua := uint16(c.B)<<8 | uint16(c.A)
		angle := -float64(int(ua)-0x8000) / 0x7FFF * math.Pi
		distance := float64(int(ud&0x7FFF)-0x4000) / 0x1FFF
		n := glyphy.Vector{DX: math.Cos(angle), DY: math.Sin(angle)}
		return cellHeader{isLine: true, line: glyphy.Line{N: n, C: distance}}
	}

	h := cellHeader{
		firstGroupCount: int(c.R & 0x7F),
		offset:          int(c.G)<<8 | int(c.B),
		numPoints:       int(c.A),
	}
	if c.A == 255 {
		h.empty = true
		h.numPoints = 0
	}
	return h
}

// decodeEndpoint reconstructs one pool endpoint's quantized position and
// depth.
func decodeEndpoint(c glyphy.RGBA, ext glyphy.Extents) glyphy.Endpoint {
	ix := int(c.G) | (int(c.A>>4) << 8)
	iy := int(c.B) | (int(c.A&0xF) << 8)

	w := ext.MaxX - ext.MinX
	h := ext.MaxY - ext.MinY
	x := float64(ix)/4095*w + ext.MinX
	y := float64(iy)/4095*h + ext.MinY

	var d float64
	if c.R == 0 {
		d = math.Inf(1)
	} else {
		d = float64(int(c.R)-128) * glyphy.MaxD / 127
	}
	return glyphy.Endpoint{P: glyphy.Point{X: x, Y: y}, D: d}
}

// SignedDistance reconstructs the signed distance field value at point p
// by locating its header cell, walking its pool entry (or its line-form
// shortcut), and evaluating the nearest arc exactly as
// glyphy.Arc.SignedDistanceToPoint does. faraway must match the value
// passed to glyphy.EncodeBlob.
func (g Grid) SignedDistance(p glyphy.Point, faraway float64) float64 {
	w := g.Extents.MaxX - g.Extents.MinX
	h := g.Extents.MaxY - g.Extents.MinY
	col := int((p.X - g.Extents.MinX) / w * float64(g.Width))
	row := int((p.Y - g.Extents.MinY) / h * float64(g.Height))
	if col < 0 {
		col = 0
	}
	if col >= g.Width {
		col = g.Width - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.Height {
		row = g.Height - 1
	}

	hdr := decodeHeader(g.Cells[row*g.Width+col])

	if hdr.isLine {
		unit := math.Max(w, h)
		center := glyphy.Point{X: g.Extents.MinX + w*.5, Y: g.Extents.MinY + h*.5}
		l := hdr.line
		l.C = l.C*unit + l.N.Dot(glyphy.Vector{DX: center.X, DY: center.Y})
		return l.SignedDistanceToPoint(p)
	}

	if hdr.empty || hdr.numPoints == 0 {
		if hdr.empty {
			return -faraway
		}
		return faraway
	}

	pool := g.Cells[hdr.offset : hdr.offset+hdr.numPoints]
	endpoints := make([]glyphy.Endpoint, len(pool))
	for i, c := range pool {
		endpoints[i] = decodeEndpoint(c, g.Extents)
	}

	best := math.Inf(1)
	havePrev := false
	var p0 glyphy.Point
	for _, e := range endpoints {
		if e.IsMove() {
			p0 = e.P
			havePrev = true
			continue
		}
		if !havePrev {
			continue
		}
		arc := glyphy.Arc{P0: p0, P1: e.P, D: e.D}
		d := arc.SignedDistanceToPoint(p)
		if math.Abs(d) < math.Abs(best) {
			best = d
		}
		p0 = e.P
	}
	return best
}
