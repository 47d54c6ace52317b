// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func newTestFace(t *testing.T, opts ...Option) (*Library, *Face) {
	t.Helper()
	lib, err := Init(opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		lib.Done()
	})
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	face, err := lib.NewFace(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	return lib, face
}

func TestFaceProperties(t *testing.T) {
	lib, face := newTestFace(t)
	if got, want := face.FamilyName(), "Go"; got != want {
		t.Errorf("FamilyName = %q, want %q", got, want)
	}
	if face.Style() != Regular || face.Weight() != Normal {
		t.Errorf("style %v weight %v, want Regular Normal", face.Style(), face.Weight())
	}
	if face.NumGlyphs() <= 0 {
		t.Errorf("NumGlyphs = %d", face.NumGlyphs())
	}
	if face.NumFaces() != 1 || face.Index() != 0 {
		t.Errorf("NumFaces = %d, Index = %d", face.NumFaces(), face.Index())
	}
	if face.UnitsPerEM() != 2048 {
		t.Errorf("UnitsPerEM = %d, want 2048", face.UnitsPerEM())
	}
	if lib.Faces() != 1 {
		t.Errorf("Faces = %d, want 1", lib.Faces())
	}
}

func TestPrintableASCII(t *testing.T) {
	_, face := newTestFace(t)
	if err := face.SetPixelSizes(0, 24); err != nil {
		t.Fatal(err)
	}
	for r := rune(32); r < 127; r++ {
		if err := face.LoadChar(r, LoadRender); err != nil {
			t.Fatalf("LoadChar(%q): %v", r, err)
		}
		m := face.Metrics()
		if m.Width < 0 || m.Height < 0 || m.Advance < 0 {
			t.Errorf("%q: negative metrics %+v", r, m)
		}
		bm := face.Bitmap()
		if m.Width == 0 || m.Height == 0 {
			if bm != nil {
				t.Errorf("%q: empty glyph has a %d byte bitmap", r, len(bm))
			}
			continue
		}
		if p := face.Pitch(); p < m.Width {
			t.Errorf("%q: pitch %d < width %d", r, p, m.Width)
		}
		if got, want := len(bm), face.Pitch()*m.Height; got < want {
			t.Errorf("%q: bitmap has %d bytes, want at least %d", r, got, want)
		}
	}
}

func TestRenderCoverage(t *testing.T) {
	_, face := newTestFace(t)
	face.SetPixelSizes(32, 32)
	if err := face.LoadChar('H', LoadRender); err != nil {
		t.Fatal(err)
	}
	m := face.Metrics()
	if m.Width == 0 || m.Height == 0 {
		t.Fatalf("'H' rendered empty: %+v", m)
	}
	// Cap height sits above the baseline.
	if m.BearingY <= 0 || m.BearingY > 32 {
		t.Errorf("BearingY = %d", m.BearingY)
	}
	if m.Advance.Round() <= 0 || m.Advance.Round() > 32 {
		t.Errorf("Advance = %v", m.Advance)
	}
	var solid int
	for _, c := range face.Bitmap() {
		if c >= 0xf0 {
			solid++
		}
	}
	if solid == 0 {
		t.Error("no covered pixels in 'H'")
	}
}

func TestMetricsWithoutRender(t *testing.T) {
	_, face := newTestFace(t)
	face.SetPixelSizes(16, 16)
	if err := face.LoadChar('A', LoadDefault); err != nil {
		t.Fatal(err)
	}
	m := face.Metrics()
	if m.Width != 0 || m.Height != 0 || face.Bitmap() != nil {
		t.Errorf("unrendered glyph has a bitmap: %+v", m)
	}
	if m.Advance <= 0 {
		t.Errorf("Advance = %v", m.Advance)
	}
}

func TestNoScale(t *testing.T) {
	_, face := newTestFace(t)
	// No pixel size is needed for font unit metrics.
	if err := face.LoadChar('M', LoadNoScale|LoadRender); err != nil {
		t.Fatal(err)
	}
	m := face.Metrics()
	if face.Bitmap() != nil {
		t.Error("LoadNoScale rendered a bitmap")
	}
	if adv := int(m.Advance); adv <= 0 || adv > face.UnitsPerEM()*2 {
		t.Errorf("advance %d font units, em %d", adv, face.UnitsPerEM())
	}
	want, err := face.font.GlyphAdvance(&face.buf, face.slot.index, fixed.I(face.UnitsPerEM()), font.HintingNone)
	if err != nil {
		t.Fatal(err)
	}
	if got := int(m.Advance); got != want.Round() {
		t.Errorf("advance %d, want %d raw font units", got, want.Round())
	}
}

func TestNonSquarePixels(t *testing.T) {
	_, face := newTestFace(t)
	face.SetPixelSizes(20, 20)
	face.LoadChar('W', LoadRender)
	square := face.Metrics()

	face.SetPixelSizes(40, 20)
	face.LoadChar('W', LoadRender)
	wide := face.Metrics()

	if wide.Height != square.Height {
		t.Errorf("height changed: %d != %d", wide.Height, square.Height)
	}
	if wide.Width <= square.Width || wide.Advance <= square.Advance {
		t.Errorf("wide %+v not wider than square %+v", wide, square)
	}
}

func TestMissingGlyph(t *testing.T) {
	_, face := newTestFace(t)
	face.SetPixelSizes(0, 16)
	for _, r := range []rune{0x10fffd, -1, 0x7fffffff} {
		if err := face.LoadChar(r, LoadRender); err != nil {
			t.Errorf("LoadChar(%#x): %v", r, err)
		}
		if face.GlyphIndex() != 0 {
			t.Errorf("LoadChar(%#x) loaded glyph %d, want 0", r, face.GlyphIndex())
		}
	}
}

func TestLoadGlyphIndex(t *testing.T) {
	_, face := newTestFace(t)
	face.SetPixelSizes(0, 16)
	if err := face.LoadGlyph(face.NumGlyphs(), LoadRender); err != ErrInvalidGlyphIndex {
		t.Errorf("out of range glyph: got %v, want %v", err, ErrInvalidGlyphIndex)
	}
	if err := face.LoadGlyph(1, LoadRender); err != nil {
		t.Error(err)
	}
}

func TestLoadCharBeforeSize(t *testing.T) {
	_, face := newTestFace(t)
	if err := face.LoadChar('a', LoadRender); err != ErrInvalidSizeHandle {
		t.Errorf("got %v, want %v", err, ErrInvalidSizeHandle)
	}
}

func TestSetPixelSizesNormalizes(t *testing.T) {
	_, face := newTestFace(t)
	if err := face.SetPixelSizes(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := face.LoadChar('a', LoadRender); err != nil {
		t.Fatalf("1px glyph: %v", err)
	}
	if m := face.Metrics(); m.Height > 2 {
		t.Errorf("1px glyph is %d rows", m.Height)
	}
}

func TestMissingFile(t *testing.T) {
	var log bytes.Buffer
	lib, err := Init(WithLogger(&log))
	if err != nil {
		t.Fatal(err)
	}
	defer lib.Done()
	path := filepath.Join(t.TempDir(), "missing.ttf")
	_, err = lib.NewFace(path, 0)
	if err != ErrCannotOpenResource {
		t.Fatalf("got %v, want %v", err, ErrCannotOpenResource)
	}
	want := "[FreeType ERROR] Failed to load font '" + path + "': 1\n"
	if got := log.String(); got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}

func TestBadFontData(t *testing.T) {
	var log bytes.Buffer
	lib, _ := Init(WithLogger(&log))
	defer lib.Done()
	_, err := lib.NewMemoryFace([]byte("definitely not a font"), 0)
	if !errors.Is(err, ErrUnknownFileFormat) {
		t.Errorf("got %v, want %v", err, ErrUnknownFileFormat)
	}
	if Code(err) != 2 {
		t.Errorf("Code = %d, want 2", Code(err))
	}
	if !strings.HasPrefix(log.String(), "[FreeType ERROR] ") {
		t.Errorf("logged %q", log.String())
	}
}

func TestBadFaceIndex(t *testing.T) {
	lib, _ := Init(WithLogger(new(bytes.Buffer)))
	defer lib.Done()
	for _, idx := range []int{-1, 1} {
		if _, err := lib.NewMemoryFace(goregular.TTF, idx); err != ErrInvalidArgument {
			t.Errorf("index %d: got %v, want %v", idx, err, ErrInvalidArgument)
		}
	}
	if lib.Faces() != 0 {
		t.Errorf("failed loads left %d faces", lib.Faces())
	}
}

func TestFaceDone(t *testing.T) {
	lib, face := newTestFace(t)
	face.SetPixelSizes(0, 12)
	if err := face.Done(); err != nil {
		t.Fatal(err)
	}
	if lib.Faces() != 0 {
		t.Errorf("Faces = %d after Done", lib.Faces())
	}
	if err := face.Done(); err != ErrInvalidFaceHandle {
		t.Errorf("second Done: got %v, want %v", err, ErrInvalidFaceHandle)
	}
	if err := face.LoadChar('a', LoadRender); err != ErrInvalidFaceHandle {
		t.Errorf("LoadChar after Done: got %v", err)
	}
	if face.Bitmap() != nil || face.Pitch() != 0 || face.Metrics() != (GlyphMetrics{}) {
		t.Error("glyph slot readable after Done")
	}
}

func TestLibraryDone(t *testing.T) {
	lib, err := Init(WithLogger(new(bytes.Buffer)))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := lib.NewMemoryFace(goregular.TTF, 0)
	b, _ := lib.NewMemoryFace(goregular.TTF, 0)
	if err := lib.Done(); err != nil {
		t.Fatal(err)
	}
	for _, f := range []*Face{a, b} {
		if err := f.SetPixelSizes(0, 12); err != ErrInvalidFaceHandle {
			t.Errorf("face outlived library: %v", err)
		}
	}
	if err := lib.Done(); err != ErrInvalidLibraryHandle {
		t.Errorf("second Done: got %v", err)
	}
	if _, err := lib.NewMemoryFace(goregular.TTF, 0); err != ErrInvalidLibraryHandle {
		t.Errorf("NewMemoryFace after Done: got %v", err)
	}
}

func TestErrorCodes(t *testing.T) {
	if Code(nil) != 0 {
		t.Error("Code(nil) != 0")
	}
	if Code(errors.New("other")) != int(ErrInvalidArgument) {
		t.Error("foreign error not mapped to invalid argument")
	}
	if got, want := ErrInvalidFaceHandle.Error(), "font: invalid face handle (0x23)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := Error(0x99).Error(), "font: error 0x99"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseStyleName(t *testing.T) {
	tests := []struct {
		name   string
		style  Style
		weight Weight
	}{
		{"Regular", Regular, Normal},
		{"Italic", Italic, Normal},
		{"Bold", Regular, Bold},
		{"Bold Italic", Italic, Bold},
		{"Extra Bold", Regular, ExtraBold},
		{"SemiBold Oblique", Italic, SemiBold},
		{"Light", Regular, Light},
		{"ExtraLight", Regular, ExtraLight},
		{"Medium Italic", Italic, Medium},
		{"Heavy", Regular, Black},
		{"", Regular, Normal},
	}
	for _, tc := range tests {
		s, w := parseStyleName(tc.name)
		if s != tc.style || w != tc.weight {
			t.Errorf("%q: got %v %v, want %v %v", tc.name, s, w, tc.style, tc.weight)
		}
	}
}
