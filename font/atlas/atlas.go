// SPDX-License-Identifier: Unlicense OR MIT

// Package atlas caches rasterized glyphs of one face in a single
// channel OpenGL texture.
//
// Glyphs are packed left to right in rows (shelves) separated by one
// pixel of padding. A row is as tall as its tallest glyph. Glyphs are
// never evicted: once the texture is full, Glyph returns ErrFull for
// every glyph not already cached.
package atlas

import (
	"errors"

	"gioui.org/shim/font"
	"gioui.org/shim/gl"
	"gioui.org/shim/gpu"
)

var (
	// ErrFull is returned when a glyph no longer fits in the texture.
	ErrFull = errors.New("atlas: texture is full")
	// ErrReleased is returned by Glyph after Release.
	ErrReleased = errors.New("atlas: released")
)

// Glyph describes a cached glyph.
type Glyph struct {
	// U, V is the top-left texture coordinate of the glyph, and UW, VH
	// its extent, all in [0, 1].
	U, V, UW, VH float32
	// Width and Height are the glyph size in pixels. Empty glyphs such
	// as space have zero size and occupy no texture space.
	Width, Height int
	// BearingX and BearingY locate the top-left corner of the glyph
	// relative to the pen position on the baseline, y up.
	BearingX, BearingY int
	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// Atlas is a glyph cache backed by a texture of a Device.
type Atlas struct {
	dev       *gpu.Device
	face      *font.Face
	tex       gl.Texture
	size      int
	pixelSize int

	// Packing cursor.
	x, y, rowHeight int

	glyphs map[rune]Glyph
	// scratch holds bitmaps repacked to Width bytes per row.
	scratch []byte
}

// New allocates a size×size texture on dev and sets the pixel size of
// face to pixelSize. The face must stay open for the life of the Atlas.
func New(dev *gpu.Device, face *font.Face, pixelSize, size int) (*Atlas, error) {
	if pixelSize <= 0 || size <= 0 {
		return nil, errors.New("atlas: pixel size and texture size must be positive")
	}
	if err := face.SetPixelSizes(0, uint(pixelSize)); err != nil {
		return nil, err
	}
	tex := dev.CreateTexture()
	if err := dev.BindTexture(gl.TEXTURE_2D, tex); err != nil {
		return nil, err
	}
	dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	dev.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	dev.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if err := dev.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, size, size, gl.RED, gl.UNSIGNED_BYTE, nil); err != nil {
		dev.DeleteTexture(tex)
		return nil, err
	}
	return &Atlas{
		dev:       dev,
		face:      face,
		tex:       tex,
		size:      size,
		pixelSize: pixelSize,
		glyphs:    make(map[rune]Glyph),
	}, nil
}

// Texture returns the atlas texture. Its single channel is the glyph
// coverage.
func (a *Atlas) Texture() gl.Texture {
	return a.tex
}

// PixelSize returns the font size in pixels.
func (a *Atlas) PixelSize() int {
	return a.pixelSize
}

// Len returns the number of cached glyphs.
func (a *Atlas) Len() int {
	return len(a.glyphs)
}

// Glyph returns the cached glyph for r, rasterizing and uploading it
// first if needed. Glyph leaves the atlas texture bound to
// gl.TEXTURE_2D when it uploads.
func (a *Atlas) Glyph(r rune) (Glyph, error) {
	if a.glyphs == nil {
		return Glyph{}, ErrReleased
	}
	if g, ok := a.glyphs[r]; ok {
		return g, nil
	}
	if err := a.face.LoadChar(r, font.LoadRender); err != nil {
		return Glyph{}, err
	}
	m := a.face.Metrics()
	g := Glyph{
		Width:    m.Width,
		Height:   m.Height,
		BearingX: m.BearingX,
		BearingY: m.BearingY,
		Advance:  float32(m.Advance.Floor()),
	}
	bitmap := a.face.Bitmap()
	if bitmap == nil || m.Width == 0 || m.Height == 0 {
		g.Width, g.Height = 0, 0
		a.glyphs[r] = g
		return g, nil
	}
	if m.Width > a.size {
		return Glyph{}, ErrFull
	}
	// The cursor only moves once the glyph is known to fit.
	x, y, rowHeight := a.x, a.y, a.rowHeight
	if x+m.Width > a.size {
		x = 0
		y += rowHeight + 1
		rowHeight = 0
	}
	if y+m.Height > a.size {
		return Glyph{}, ErrFull
	}
	if err := a.dev.BindTexture(gl.TEXTURE_2D, a.tex); err != nil {
		return Glyph{}, err
	}
	a.dev.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	a.dev.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, m.Width, m.Height, gl.RED, gl.UNSIGNED_BYTE, a.rows(bitmap, a.face.Pitch(), m.Width, m.Height))

	s := float32(a.size)
	g.U, g.V = float32(x)/s, float32(y)/s
	g.UW, g.VH = float32(m.Width)/s, float32(m.Height)/s

	a.x = x + m.Width + 1
	a.y = y
	a.rowHeight = rowHeight
	if m.Height > a.rowHeight {
		a.rowHeight = m.Height
	}
	a.glyphs[r] = g
	return g, nil
}

// rows returns the bitmap with rows of exactly width bytes, as the
// upload expects with an unpack alignment of 1.
func (a *Atlas) rows(bitmap []byte, pitch, width, height int) []byte {
	if pitch == width {
		return bitmap[:width*height]
	}
	n := width * height
	if cap(a.scratch) < n {
		a.scratch = make([]byte, n)
	}
	dst := a.scratch[:n]
	for y := 0; y < height; y++ {
		src := y * pitch
		copy(dst[y*width:(y+1)*width], bitmap[src:src+width])
	}
	return dst
}

// CacheASCII loads the printable ASCII range into the atlas.
func (a *Atlas) CacheASCII() error {
	for r := rune(32); r < 127; r++ {
		if _, err := a.Glyph(r); err != nil {
			return err
		}
	}
	return nil
}

// Measure returns the width of s in pixels as the sum of the glyph
// advances. Glyphs that fail to load count as zero.
func (a *Atlas) Measure(s string) float32 {
	var w float32
	for _, r := range s {
		if g, err := a.Glyph(r); err == nil {
			w += g.Advance
		}
	}
	return w
}

// AppendQuads appends two triangles per visible glyph of s to dst and
// returns the extended slice along with the pen position after the
// last glyph. The pen starts at (x, y) on the baseline, in pixels with
// y pointing down. Each vertex is 4 floats: position x, y and texture
// coordinates u, v. Glyphs that fail to load are skipped.
func (a *Atlas) AppendQuads(dst []float32, s string, x, y float32) ([]float32, float32) {
	for _, r := range s {
		g, err := a.Glyph(r)
		if err != nil {
			continue
		}
		if g.Width == 0 || g.Height == 0 {
			x += g.Advance
			continue
		}
		x0 := x + float32(g.BearingX)
		y0 := y - float32(g.BearingY)
		x1 := x0 + float32(g.Width)
		y1 := y0 + float32(g.Height)
		u0, v0 := g.U, g.V
		u1, v1 := g.U+g.UW, g.V+g.VH
		dst = append(dst,
			x0, y1, u0, v1,
			x1, y1, u1, v1,
			x1, y0, u1, v0,

			x0, y1, u0, v1,
			x1, y0, u1, v0,
			x0, y0, u0, v0,
		)
		x += g.Advance
	}
	return dst, x
}

// Release deletes the atlas texture. The face is left open.
func (a *Atlas) Release() error {
	err := a.dev.DeleteTexture(a.tex)
	a.tex = gl.Texture{}
	a.glyphs = nil
	return err
}
