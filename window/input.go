// SPDX-License-Identifier: Unlicense OR MIT

package window

// Hint is a window creation hint. Values match GLFW.
type Hint int

const (
	HintResizable           Hint = 0x00020003
	HintVisible             Hint = 0x00020004
	HintDecorated           Hint = 0x00020005
	HintSamples             Hint = 0x0002100d
	HintContextVersionMajor Hint = 0x00022002
	HintContextVersionMinor Hint = 0x00022003
	HintOpenGLForwardCompat Hint = 0x00022006
	HintOpenGLProfile       Hint = 0x00022008
	HintScaleToMonitor      Hint = 0x0002200c
)

// Hint values.
const (
	False             = 0
	True              = 1
	OpenGLCoreProfile = 0x00032001
)

// Key is a keyboard key. Values match GLFW.
type Key int

const (
	KeyUnknown      Key = -1
	KeySpace        Key = 32
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
)

// Action is a key transition.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	default:
		panic("invalid Action")
	}
}

// ModifierKey is a set of modifier keys held during a key event.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
	ModCapsLock
	ModNumLock
)

// Contain reports whether m contains all of the modifiers in m2.
func (m ModifierKey) Contain(m2 ModifierKey) bool {
	return m&m2 == m2
}
