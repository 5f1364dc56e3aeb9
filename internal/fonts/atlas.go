package fonts

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	atlasWidth = 512
	glyphPad   = 1
	// fallback is drawn for runes the atlas does not hold.
	fallback = '?'
)

// Glyph locates one rasterized glyph in the atlas.
type Glyph struct {
	// Texture coordinates of the glyph cell.
	U0, V0, U1, V1 float32
	// Offset of the cell's top-left corner from the pen position on the
	// baseline, in pixels.
	OffX, OffY float32
	W, H       float32
	Advance    float32
}

// Quad is a positioned glyph: screen corners and texture corners.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Atlas is a CPU-side alpha texture holding pre-rasterized glyphs of one face
// at one size.
type Atlas struct {
	Image *image.Alpha

	face       font.Face
	glyphs     map[rune]Glyph
	ascent     float32
	lineHeight float32
}

// NewAtlas rasterizes the printable Latin-1 range of the font in data.
func NewAtlas(data []byte, size float32) (*Atlas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	a := &Atlas{face: face, glyphs: make(map[rune]Glyph)}
	m := face.Metrics()
	a.ascent = fixedToFloat(m.Ascent)
	a.lineHeight = fixedToFloat(m.Height)

	runes := make([]rune, 0, 192)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	for r := rune(160); r < 256; r++ {
		runes = append(runes, r)
	}
	a.build(runes)
	return a, nil
}

type placement struct {
	r           rune
	advance     fixed.Int26_6
	x, y, w, h  int
	minX, minY  int
	hasCoverage bool
}

func (a *Atlas) build(runes []rune) {
	var places []placement
	x, y, rowH := glyphPad, glyphPad, 0
	for _, r := range runes {
		bounds, advance, ok := a.face.GlyphBounds(r)
		if !ok {
			continue
		}
		p := placement{
			r:       r,
			advance: advance,
			minX:    bounds.Min.X.Floor(),
			minY:    bounds.Min.Y.Floor(),
		}
		p.w = bounds.Max.X.Ceil() - p.minX
		p.h = bounds.Max.Y.Ceil() - p.minY
		p.hasCoverage = p.w > 0 && p.h > 0
		if p.hasCoverage {
			if x+p.w+glyphPad > atlasWidth {
				x = glyphPad
				y += rowH + glyphPad
				rowH = 0
			}
			p.x, p.y = x, y
			x += p.w + glyphPad
			rowH = max(rowH, p.h)
		}
		places = append(places, p)
	}

	height := nextPow2(y + rowH + glyphPad)
	a.Image = image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	d := &font.Drawer{Dst: a.Image, Src: image.White, Face: a.face}

	tw, th := float32(atlasWidth), float32(height)
	for _, p := range places {
		g := Glyph{Advance: fixedToFloat(p.advance)}
		if p.hasCoverage {
			d.Dot = fixed.Point26_6{
				X: fixed.I(p.x - p.minX),
				Y: fixed.I(p.y - p.minY),
			}
			d.DrawString(string(p.r))
			g.U0 = float32(p.x) / tw
			g.V0 = float32(p.y) / th
			g.U1 = float32(p.x+p.w) / tw
			g.V1 = float32(p.y+p.h) / th
			g.OffX = float32(p.minX)
			g.OffY = float32(p.minY)
			g.W = float32(p.w)
			g.H = float32(p.h)
		}
		a.glyphs[p.r] = g
	}
}

// Ascent returns the distance from the top of a line to its baseline.
func (a *Atlas) Ascent() float32 { return a.ascent }

// LineHeight returns the recommended distance between baselines.
func (a *Atlas) LineHeight() float32 { return a.lineHeight }

// Glyph returns the glyph for r. For runes missing from the atlas it returns
// the fallback glyph and false.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	return a.glyphs[fallback], false
}

// HasGlyph reports whether r was rasterized into the atlas.
func (a *Atlas) HasGlyph(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// Quads lays out text with its layout box top-left at
// (x, y). Newlines start a new line.
func (a *Atlas) Quads(text string, x, y float32) []Quad {
	quads := make([]Quad, 0, len(text))
	penX, baseline := x, y+a.ascent
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			penX = x
			baseline += a.lineHeight
			prev = -1
			continue
		}
		g, _ := a.Glyph(r)
		if prev >= 0 {
			penX += fixedToFloat(a.face.Kern(prev, r))
		}
		if g.W > 0 {
			x0 := penX + g.OffX
			y0 := baseline + g.OffY
			quads = append(quads, Quad{
				X0: x0, Y0: y0, X1: x0 + g.W, Y1: y0 + g.H,
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			})
		}
		penX += g.Advance
		prev = r
	}
	return quads
}

// Measure returns the size of the layout box of text.
func (a *Atlas) Measure(text string) (w, h float32) {
	lineW := float32(0)
	h = a.lineHeight
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			h += a.lineHeight
			prev = -1
			continue
		}
		g, _ := a.Glyph(r)
		if prev >= 0 {
			lineW += fixedToFloat(a.face.Kern(prev, r))
		}
		lineW += g.Advance
		prev = r
	}
	return max(w, lineW), h
}

// Close releases the face.
func (a *Atlas) Close() error {
	return a.face.Close()
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func nextPow2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}
