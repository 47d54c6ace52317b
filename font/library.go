// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"io"
	"os"

	"golang.org/x/image/font/sfnt"

	"gioui.org/shim/internal/diag"
)

// Library is the root of a set of faces. It must outlive the faces
// loaded from it.
type Library struct {
	log   *diag.Logger
	faces map[*Face]struct{}
	done  bool
}

// Option configures a Library.
type Option func(l *Library)

// WithLogger directs the library diagnostics to w instead of stderr.
func WithLogger(w io.Writer) Option {
	return func(l *Library) {
		l.log = diag.New(w)
	}
}

// Init creates a Library.
func Init(opts ...Option) (*Library, error) {
	l := &Library{faces: make(map[*Face]struct{})}
	for _, o := range opts {
		o(l)
	}
	l.log = diag.Or(l.log)
	return l, nil
}

// Done finalizes the library and every face still open on it.
func (l *Library) Done() error {
	if l == nil || l.done {
		return ErrInvalidLibraryHandle
	}
	for f := range l.faces {
		f.release()
	}
	l.faces = nil
	l.done = true
	return nil
}

// Faces returns the number of open faces.
func (l *Library) Faces() int {
	return len(l.faces)
}

// NewFace opens the font file at path and loads face number index
// from it. Single font files have one face, collections (.ttc, .otc)
// may have several.
func (l *Library) NewFace(path string, index int) (*Face, error) {
	if l == nil || l.done {
		return nil, ErrInvalidLibraryHandle
	}
	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Errorf("FreeType", "Failed to load font '%s': %d", path, int(ErrCannotOpenResource))
		return nil, ErrCannotOpenResource
	}
	f, err := l.newFace(data, index)
	if err != nil {
		l.log.Errorf("FreeType", "Failed to load font '%s': %d", path, Code(err))
		return nil, err
	}
	return f, nil
}

// NewMemoryFace loads face number index from font data held in memory.
// The data must not be modified while the face is open.
func (l *Library) NewMemoryFace(data []byte, index int) (*Face, error) {
	if l == nil || l.done {
		return nil, ErrInvalidLibraryHandle
	}
	f, err := l.newFace(data, index)
	if err != nil {
		l.log.Errorf("FreeType", "Failed to load font from memory: %d", Code(err))
		return nil, err
	}
	return f, nil
}

func (l *Library) newFace(data []byte, index int) (*Face, error) {
	if index < 0 {
		return nil, ErrInvalidArgument
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, ErrUnknownFileFormat
	}
	if index >= c.NumFonts() {
		return nil, ErrInvalidArgument
	}
	fnt, err := c.Font(index)
	if err != nil {
		return nil, ErrInvalidFileFormat
	}
	f := &Face{
		lib:       l,
		font:      fnt,
		index:     index,
		numFaces:  c.NumFonts(),
		numGlyphs: fnt.NumGlyphs(),
	}
	f.family, _ = fnt.Name(&f.buf, sfnt.NameIDFamily)
	f.styleName, _ = fnt.Name(&f.buf, sfnt.NameIDSubfamily)
	f.style, f.weight = parseStyleName(f.styleName)
	l.faces[f] = struct{}{}
	return f, nil
}
