// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont loads the Go fonts into a font.Library.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"gioui.org/shim/font"
)

var faces = map[string][]byte{
	"regular":         goregular.TTF,
	"italic":          goitalic.TTF,
	"bold":            gobold.TTF,
	"bolditalic":      gobolditalic.TTF,
	"medium":          gomedium.TTF,
	"mediumitalic":    gomediumitalic.TTF,
	"mono":            gomono.TTF,
	"monobold":        gomonobold.TTF,
	"monobolditalic":  gomonobolditalic.TTF,
	"monoitalic":      gomonoitalic.TTF,
	"smallcaps":       gosmallcaps.TTF,
	"smallcapsitalic": gosmallcapsitalic.TTF,
}

// Names returns the sorted names accepted by Load.
func Names() []string {
	names := make([]string, 0, len(faces))
	for n := range faces {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Load opens the named Go face in lib.
func Load(lib *font.Library, name string) (*font.Face, error) {
	ttf, ok := faces[name]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown face %q", name)
	}
	return lib.NewMemoryFace(ttf, 0)
}

// Regular opens the Go Regular face in lib.
func Regular(lib *font.Library) (*font.Face, error) {
	return lib.NewMemoryFace(goregular.TTF, 0)
}

// Collection opens every Go face in lib, in the order of Names. On
// error the faces opened so far are released.
func Collection(lib *font.Library) ([]*font.Face, error) {
	var coll []*font.Face
	for _, n := range Names() {
		f, err := lib.NewMemoryFace(faces[n], 0)
		if err != nil {
			for _, f := range coll {
				f.Done()
			}
			return nil, err
		}
		coll = append(coll, f)
	}
	return coll, nil
}
