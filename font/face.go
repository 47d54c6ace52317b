// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"image"
	"image/draw"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// LoadFlags select how LoadChar fills the glyph slot. The values match
// FreeType's FT_LOAD_* flags.
type LoadFlags int

const (
	LoadDefault LoadFlags = 0
	// LoadNoScale loads the glyph in font units and never renders it.
	LoadNoScale LoadFlags = 1 << 0
	// LoadNoHinting keeps fractional advances.
	LoadNoHinting LoadFlags = 1 << 1
	// LoadRender rasterizes the glyph into an 8-bit coverage bitmap.
	LoadRender LoadFlags = 1 << 2
	// LoadNoBitmap is accepted for compatibility. Embedded bitmaps are
	// never used.
	LoadNoBitmap LoadFlags = 1 << 3
)

// GlyphMetrics is a copy of the glyph slot metrics.
type GlyphMetrics struct {
	// Width and Height are the bitmap size in pixels.
	Width, Height int
	// BearingX is the offset from the pen position to the left bitmap
	// column. BearingY is the offset from the baseline up to the top
	// bitmap row.
	BearingX, BearingY int
	// Advance is the horizontal pen advance in 1/64th pixels. After
	// LoadNoScale it holds whole font units instead, as in FreeType.
	Advance fixed.Int26_6
}

// glyphSlot holds the result of the last LoadChar.
type glyphSlot struct {
	index   sfnt.GlyphIndex
	metrics GlyphMetrics
	bitmap  []byte
	pitch   int
	// buf is the storage reused by bitmap.
	buf []byte
}

// Face is a font face loaded from a Library.
type Face struct {
	lib  *Library
	font *sfnt.Font
	buf  sfnt.Buffer
	// ppem is the vertical pixel size. xscale stretches x coordinates
	// for non-square pixel sizes.
	ppem   fixed.Int26_6
	xscale float32
	slot   glyphSlot
	raster vector.Rasterizer

	index     int
	numFaces  int
	numGlyphs int
	family    string
	styleName string
	style     Style
	weight    Weight
	done      bool
}

// Done finalizes the face. The glyph slot contents become invalid.
func (f *Face) Done() error {
	if f == nil || f.done {
		return ErrInvalidFaceHandle
	}
	delete(f.lib.faces, f)
	f.release()
	return nil
}

func (f *Face) release() {
	f.done = true
	f.font = nil
	f.slot = glyphSlot{}
}

// SetPixelSizes sets the nominal size of the face in pixels. A zero
// dimension copies the other one, and sizes below 1 become 1.
func (f *Face) SetPixelSizes(width, height uint) error {
	if f == nil || f.done {
		return ErrInvalidFaceHandle
	}
	if width == 0 {
		width = height
	} else if height == 0 {
		height = width
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width >= 0xffff {
		width = 0xffff
	}
	if height >= 0xffff {
		height = 0xffff
	}
	f.ppem = fixed.I(int(height))
	f.xscale = float32(width) / float32(height)
	return nil
}

// LoadChar loads the glyph mapped to code into the glyph slot. A code
// without a glyph loads the missing glyph, index 0.
func (f *Face) LoadChar(code rune, flags LoadFlags) error {
	if f == nil || f.done {
		return ErrInvalidFaceHandle
	}
	var x sfnt.GlyphIndex
	if code >= 0 && code <= unicode.MaxRune {
		idx, err := f.font.GlyphIndex(&f.buf, code)
		if err != nil {
			return ErrInvalidCharacterCode
		}
		x = idx
	}
	return f.loadGlyph(x, flags)
}

// LoadGlyph loads the glyph with the given index into the glyph slot.
func (f *Face) LoadGlyph(index int, flags LoadFlags) error {
	if f == nil || f.done {
		return ErrInvalidFaceHandle
	}
	if index < 0 || index >= f.numGlyphs {
		return ErrInvalidGlyphIndex
	}
	return f.loadGlyph(sfnt.GlyphIndex(index), flags)
}

func (f *Face) loadGlyph(x sfnt.GlyphIndex, flags LoadFlags) error {
	ppem, xscale := f.ppem, f.xscale
	hinting := font.HintingFull
	noScale := flags&LoadNoScale != 0
	if noScale {
		ppem, xscale = fixed.I(int(f.font.UnitsPerEm())), 1
		hinting = font.HintingNone
		flags &^= LoadRender
	} else if ppem == 0 {
		return ErrInvalidSizeHandle
	}
	if flags&LoadNoHinting != 0 {
		hinting = font.HintingNone
	}
	bounds, advance, err := f.font.GlyphBounds(&f.buf, x, ppem, hinting)
	if err != nil {
		return ErrInvalidGlyphIndex
	}
	switch {
	case noScale:
		advance = fixed.Int26_6(advance.Round())
	case xscale != 1:
		advance = fixed.Int26_6(float32(advance) * xscale)
		if hinting != font.HintingNone {
			advance = fixed.Int26_6(advance.Round() << 6)
		}
	}
	f.slot.index = x
	f.slot.metrics = GlyphMetrics{Advance: advance}
	f.slot.bitmap = nil
	f.slot.pitch = 0
	if flags&LoadRender == 0 {
		return nil
	}
	return f.render(x, ppem, xscale, bounds)
}

// render rasterizes glyph x into the slot bitmap. bounds is the glyph
// bounding box in 26.6 pixels with y pointing down.
func (f *Face) render(x sfnt.GlyphIndex, ppem fixed.Int26_6, xscale float32, bounds fixed.Rectangle26_6) error {
	if xscale != 1 {
		bounds.Min.X = fixed.Int26_6(float32(bounds.Min.X) * xscale)
		bounds.Max.X = fixed.Int26_6(float32(bounds.Max.X) * xscale)
	}
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := maxX-minX, maxY-minY
	f.slot.metrics.BearingX = minX
	f.slot.metrics.BearingY = -minY
	if w <= 0 || h <= 0 {
		return nil
	}
	segs, err := f.font.LoadGlyph(&f.buf, x, ppem, nil)
	if err != nil {
		return ErrInvalidOutline
	}
	f.slot.metrics.Width, f.slot.metrics.Height = w, h

	n := w * h
	if cap(f.slot.buf) < n {
		f.slot.buf = make([]byte, n)
	}
	pix := f.slot.buf[:n]
	dst := &image.Alpha{Pix: pix, Stride: w, Rect: image.Rect(0, 0, w, h)}

	ox, oy := float32(minX), float32(minY)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64*xscale - ox, float32(p.Y)/64 - oy
	}
	r := &f.raster
	r.Reset(w, h)
	r.DrawOp = draw.Src
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	f.slot.bitmap = pix
	f.slot.pitch = dst.Stride
	return nil
}

// Metrics returns a copy of the glyph slot metrics.
func (f *Face) Metrics() GlyphMetrics {
	if f == nil || f.done {
		return GlyphMetrics{}
	}
	return f.slot.metrics
}

// Bitmap returns the rendered glyph coverage, Height rows of Pitch
// bytes. The slice aliases the glyph slot and is overwritten by the next
// LoadChar on f. It is nil for glyphs that were not rendered or have no
// outline.
func (f *Face) Bitmap() []byte {
	if f == nil || f.done {
		return nil
	}
	return f.slot.bitmap
}

// Pitch returns the number of bytes between bitmap rows. Index rows by
// Pitch, not by Width.
func (f *Face) Pitch() int {
	if f == nil || f.done {
		return 0
	}
	return f.slot.pitch
}

// GlyphIndex returns the index of the glyph in the slot.
func (f *Face) GlyphIndex() int {
	return int(f.slot.index)
}

// FamilyName returns the font family name, such as "Go".
func (f *Face) FamilyName() string {
	return f.family
}

// StyleName returns the subfamily name, such as "Bold Italic".
func (f *Face) StyleName() string {
	return f.styleName
}

// Style reports whether the face is italic, derived from StyleName.
func (f *Face) Style() Style {
	return f.style
}

// Weight returns the face weight, derived from StyleName.
func (f *Face) Weight() Weight {
	return f.weight
}

// NumGlyphs returns the number of glyphs in the face.
func (f *Face) NumGlyphs() int {
	return f.numGlyphs
}

// NumFaces returns the number of faces in the file the face was
// loaded from.
func (f *Face) NumFaces() int {
	return f.numFaces
}

// Index returns the index of the face within its file.
func (f *Face) Index() int {
	return f.index
}

// UnitsPerEM returns the size of the em square in font units, or 0
// after Done.
func (f *Face) UnitsPerEM() int {
	if f == nil || f.done {
		return 0
	}
	return int(f.font.UnitsPerEm())
}
