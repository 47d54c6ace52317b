// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font rasterizes glyphs from TrueType and OpenType files with
FreeType semantics.

A Library owns the faces loaded from it. Each Face has a single glyph
slot: LoadChar overwrites it, and Metrics, Bitmap and Pitch read it.
Status codes are FreeType's integer error values, returned as Error.

Libraries and faces are not safe for concurrent use.
*/
package font

import "strings"

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}

// parseStyleName derives the style and weight from a subfamily name
// such as "Bold Italic".
func parseStyleName(name string) (Style, Weight) {
	n := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	style := Regular
	if strings.Contains(n, "italic") || strings.Contains(n, "oblique") {
		style = Italic
	}
	// Longest names first: "extrabold" contains "bold".
	weights := []struct {
		key string
		w   Weight
	}{
		{"extralight", ExtraLight},
		{"ultralight", ExtraLight},
		{"extrabold", ExtraBold},
		{"ultrabold", ExtraBold},
		{"semibold", SemiBold},
		{"demibold", SemiBold},
		{"thin", Thin},
		{"light", Light},
		{"medium", Medium},
		{"bold", Bold},
		{"black", Black},
		{"heavy", Black},
	}
	for _, e := range weights {
		if strings.Contains(n, e.key) {
			return style, e.w
		}
	}
	return style, Normal
}
