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

// Command glyphy-demo loads one glyph from a font, approximates its
// outline with circular arcs, encodes it into an SDF blob, and writes a
// PNG preview reconstructed from the decoded blob next to an independent
// x/image/vector rendering of the same outline for comparison.
//
// Usage:
//
//	glyphy-demo FONT_PATH CHARACTER [ANIMATE?]
//
// ANIMATE, if given any non-empty value, writes a short sequence of PNGs
// that sweep the preview's faraway radius, so the SDF falloff can be
// inspected frame by frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/glyphy"
	"seehuhn.de/go/glyphy/blobdecode"
)

var (
	tolerance = flag.Float64("tolerance", 1e-3, "arc approximation tolerance, in em units")
	faraway   = flag.Float64("faraway", 0.5, "SDF padding radius, in em units")
	gridCap   = flag.Int("cap", 1<<16, "maximum number of cells in the encoded blob")
	ppem      = flag.Float64("ppem", 2048, "pixels-per-em used when loading the glyph outline")
	outSize   = flag.Int("size", 256, "preview image size, in pixels")
	outDir    = flag.String("out", ".", "directory to write preview PNGs into")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s FONT_PATH CHARACTER [ANIMATE?]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	fontPath := args[0]
	ch := []rune(args[1])
	if len(ch) != 1 {
		log.Printf("CHARACTER must be a single rune, got %q", args[1])
		os.Exit(1)
	}
	animate := len(args) >= 3 && args[2] != ""

	endpoints, err := loadGlyphOutline(fontPath, ch[0])
	if err != nil {
		log.Printf("loading glyph: %v", err)
		os.Exit(1)
	}

	glyphy.WindingFromEvenOdd(endpoints, false)

	if animate {
		if err := renderAnimation(endpoints, ch[0]); err != nil {
			log.Printf("rendering animation: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := renderPreview(endpoints, ch[0], *faraway, "preview"); err != nil {
		log.Printf("rendering preview: %v", err)
		os.Exit(1)
	}
	log.Printf("wrote preview for %q to %s", ch[0], *outDir)
}

// loadGlyphOutline opens a font file, looks up the glyph for ch, and
// replays its outline segments through a glyphy.Accumulator, producing
// the glyph's arc-list endpoint stream in em-scaled design units.
func loadGlyphOutline(path string, ch rune) ([]glyphy.Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, ch)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return nil, fmt.Errorf("font has no glyph for %q", ch)
	}

	segs, err := f.LoadGlyph(&buf, idx, fixed.Int26_6(*ppem*64), &sfnt.LoadGlyphOptions{
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	var endpoints []glyphy.Endpoint
	acc := glyphy.NewAccumulator(*tolerance, func(e glyphy.Endpoint) bool {
		endpoints = append(endpoints, e)
		return true
	})

	pt := func(p fixed.Point26_6) glyphy.Point {
		return glyphy.Point{
			X: float64(p.X) / 64 / *ppem,
			Y: float64(p.Y) / 64 / *ppem,
		}
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			acc.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			acc.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			acc.ConicTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			acc.CubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if !acc.Success() {
		return nil, fmt.Errorf("arc approximation rejected an endpoint (max error %v)", acc.MaxError())
	}
	return endpoints, nil
}

// renderPreview encodes endpoints into a blob, decodes it back into a
// Grid, and writes two side-by-side PNG columns: the decoded SDF (mapped
// through a black/white threshold at zero) and an independent
// x/image/vector rasterization of the same outline, for visual
// comparison.
func renderPreview(endpoints []glyphy.Endpoint, ch rune, radius float64, tag string) error {
	res, ok := glyphy.EncodeBlob(endpoints, radius, *gridCap)
	if !ok {
		return fmt.Errorf("EncodeBlob: glyph needs more than %d cells", *gridCap)
	}
	grid := blobdecode.Grid{
		Cells:   res.Cells,
		Width:   res.NominalWidth,
		Height:  res.NominalHeight,
		Extents: res.Extents,
	}

	size := *outSize
	img := image.NewGray(image.Rect(0, 0, 2*size, size))

	ext := res.Extents
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := glyphy.Point{
				X: ext.MinX + (float64(x)+0.5)/float64(size)*(ext.MaxX-ext.MinX),
				Y: ext.MaxY - (float64(y)+0.5)/float64(size)*(ext.MaxY-ext.MinY),
			}
			d := grid.SignedDistance(p, radius)
			img.SetGray(x, y, shade(d))
		}
	}

	vimg := rasterizeDirect(endpoints, ext, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(size+x, y, vimg.GrayAt(x, y))
		}
	}

	name := fmt.Sprintf("%s/glyphy-%c-%s.png", *outDir, ch, tag)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// renderAnimation sweeps the faraway padding across a short sequence of
// frames so the SDF falloff around the outline can be inspected.
func renderAnimation(endpoints []glyphy.Endpoint, ch rune) error {
	const frames = 8
	for i := 0; i < frames; i++ {
		r := *faraway * (float64(i+1) / frames)
		if err := renderPreview(endpoints, ch, r, fmt.Sprintf("frame%02d", i)); err != nil {
			return err
		}
	}
	log.Printf("wrote %d animation frames for %q to %s", frames, ch, *outDir)
	return nil
}

// shade maps a signed distance to a grayscale level: black deep inside,
// white deep outside, with a linear transition over distances from -band
// to +band (band = 0.1 em) around the zero contour.
func shade(d float64) color.Gray {
	const band = 0.1
	t := 0.5 - d/(2*band)
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return color.Gray{Y: uint8(t * 255)}
}

// rasterizeDirect draws the same outline with golang.org/x/image/vector,
// as an independent cross-check of the arc-approximated shape against a
// conventional scanline fill. Each arc is drawn as its straight chord;
// arc depths are ignored.
func rasterizeDirect(endpoints []glyphy.Endpoint, ext glyphy.Extents, size int) *image.Gray {
	r := vector.NewRasterizer(size, size)

	toPx := func(p glyphy.Point) (float32, float32) {
		x := (p.X - ext.MinX) / (ext.MaxX - ext.MinX) * float64(size)
		y := (1 - (p.Y-ext.MinY)/(ext.MaxY-ext.MinY)) * float64(size)
		return float32(x), float32(y)
	}

	started := false
	for _, e := range endpoints {
		x, y := toPx(e.P)
		if e.IsMove() {
			if started {
				r.ClosePath()
			}
			r.MoveTo(x, y)
			started = true
			continue
		}
		r.LineTo(x, y)
	}
	if started {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{255})
	r.Draw(dst, dst.Bounds(), src, image.Point{})

	gray := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := dst.AlphaAt(x, y).A
			gray.SetGray(x, y, color.Gray{Y: 255 - a})
		}
	}
	return gray
}
