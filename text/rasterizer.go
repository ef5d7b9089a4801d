// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// subpixels is the number of horizontal and vertical subpixel
// positions that glyph masks are cached for.
const subpixels = 4

// Rasterizer turns queued [Section]s into pixels. It shapes text with
// go-text (HarfBuzz) and fills the glyph outlines of the same font
// with a vector rasterizer. It is not safe for concurrent use.
type Rasterizer struct {
	face   *font.Face
	sfnt   *sfnt.Font
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
	vec    vector.Rasterizer
	lang   language.Language

	size  image.Point
	img   *image.RGBA
	queue []Section

	glyphs map[glyphKey]*glyphMask
}

type glyphKey struct {
	gid    sfnt.GlyphIndex
	ppem   fixed.Int26_6
	fx, fy uint8
}

// glyphMask is a rasterized glyph, with Offset the position
// of the mask's top-left corner relative to the pen.
type glyphMask struct {
	mask   *image.Alpha
	offset image.Point
}

// NewRasterizer returns a new [Rasterizer] for the given font file data,
// drawing into a viewport of the given size. It returns an error if
// the data is not a valid font.
func NewRasterizer(data []byte, size image.Point) (*Rasterizer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}
	r := &Rasterizer{
		face:   face,
		sfnt:   sf,
		lang:   language.NewLanguage("en"),
		glyphs: make(map[glyphKey]*glyphMask),
	}
	r.Resize(size)
	return r, nil
}

// Queue adds the given section to be drawn by the next [Rasterizer.Render].
func (r *Rasterizer) Queue(s Section) {
	r.queue = append(r.queue, s)
}

// Queued returns the sections queued since the last Render.
func (r *Rasterizer) Queued() []Section {
	return r.queue
}

// Resize sets the size of the viewport that text is drawn into.
// Non-positive sizes are ignored.
func (r *Rasterizer) Resize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 || size == r.size {
		return
	}
	r.size = size
	r.img = image.NewRGBA(image.Rectangle{Max: size})
}

// Viewport returns the current size of the viewport.
func (r *Rasterizer) Viewport() image.Point {
	return r.size
}

// Render clears the viewport image to transparent, draws all of the
// queued sections into it in order, and empties the queue.
// The returned image is owned by the Rasterizer and is only valid
// until the next call to Render or Resize.
func (r *Rasterizer) Render() *image.RGBA {
	clear(r.img.Pix)
	for _, s := range r.queue {
		r.drawSection(s)
	}
	r.queue = r.queue[:0]
	return r.img
}

// drawSection draws one section into the viewport image.
func (r *Rasterizer) drawSection(s Section) {
	if s.Size <= 0 || s.Size > MaxSize {
		return
	}
	// the line box [Y, Y+Size) must overlap the viewport
	if s.Y+s.Size <= 0 || s.Y >= float32(r.size.Y) || s.X >= float32(r.size.X) {
		return
	}
	runes := []rune(s.Text)
	if len(runes) == 0 {
		return
	}
	ppem := fixed.Int26_6(math32.Round(s.Size * 64))
	out := r.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      r.face,
		Size:      ppem,
		Script:    detectScript(runes),
		Language:  r.lang,
	})
	met, err := r.sfnt.Metrics(&r.buf, ppem, xfont.HintingNone)
	if err != nil {
		return
	}
	src := image.NewUniform(s.Color)
	penX := s.X
	baseline := s.Y + fixedToFloat(met.Ascent)
	for _, g := range out.Glyphs {
		gx := penX + fixedToFloat(g.XOffset)
		gy := baseline - fixedToFloat(g.YOffset)
		penX += fixedToFloat(g.Advance)
		if gx-s.Size >= float32(r.size.X) {
			break
		}

		ix, iy := math32.Floor(gx), math32.Floor(gy)
		fx := uint8(math32.Floor((gx - ix) * subpixels))
		fy := uint8(math32.Floor((gy - iy) * subpixels))
		gm := r.glyph(glyphKey{gid: sfnt.GlyphIndex(g.GlyphID), ppem: ppem, fx: fx, fy: fy})
		if gm == nil {
			continue
		}
		dr := gm.mask.Bounds().Sub(gm.mask.Bounds().Min).Add(gm.offset).Add(image.Pt(int(ix), int(iy)))
		draw.DrawMask(r.img, dr, src, image.Point{}, gm.mask, image.Point{}, draw.Over)
	}
}

// glyph returns the cached mask for the given glyph, rasterizing it
// if needed. It returns nil for glyphs with no outline, such as spaces.
func (r *Rasterizer) glyph(key glyphKey) *glyphMask {
	if gm, ok := r.glyphs[key]; ok {
		return gm
	}
	gm := r.rasterizeGlyph(key)
	r.glyphs[key] = gm
	return gm
}

func (r *Rasterizer) rasterizeGlyph(key glyphKey) *glyphMask {
	segs, err := r.sfnt.LoadGlyph(&r.buf, key.gid, key.ppem, nil)
	if err != nil || len(segs) == 0 {
		return nil
	}
	ox := float32(key.fx) / subpixels
	oy := float32(key.fy) / subpixels

	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := -minX, -minY
	for _, seg := range segs {
		for _, p := range seg.Args[:segmentArgs(seg.Op)] {
			x, y := ox+fixedToFloat(p.X), oy+fixedToFloat(p.Y)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	bounds := image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Ceil(maxX)), int(math32.Ceil(maxY)),
	)
	if bounds.Empty() {
		return nil
	}
	dx := ox - float32(bounds.Min.X)
	dy := oy - float32(bounds.Min.Y)

	r.vec.Reset(bounds.Dx(), bounds.Dy())
	started := false
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				r.vec.ClosePath()
			}
			started = true
			r.vec.MoveTo(dx+fixedToFloat(a[0].X), dy+fixedToFloat(a[0].Y))
		case sfnt.SegmentOpLineTo:
			r.vec.LineTo(dx+fixedToFloat(a[0].X), dy+fixedToFloat(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			r.vec.QuadTo(
				dx+fixedToFloat(a[0].X), dy+fixedToFloat(a[0].Y),
				dx+fixedToFloat(a[1].X), dy+fixedToFloat(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			r.vec.CubeTo(
				dx+fixedToFloat(a[0].X), dy+fixedToFloat(a[0].Y),
				dx+fixedToFloat(a[1].X), dy+fixedToFloat(a[1].Y),
				dx+fixedToFloat(a[2].X), dy+fixedToFloat(a[2].Y))
		}
	}
	if started {
		r.vec.ClosePath()
	}
	mask := image.NewAlpha(image.Rectangle{Max: bounds.Size()})
	r.vec.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &glyphMask{mask: mask, offset: bounds.Min}
}

// segmentArgs returns the number of points used by the given segment op.
func segmentArgs(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	}
	return 1
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
