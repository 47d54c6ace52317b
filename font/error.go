// SPDX-License-Identifier: Unlicense OR MIT

package font

import "fmt"

// Error is a FreeType error code. The zero code means success and is
// never returned as an Error.
type Error int

const (
	ErrCannotOpenResource   Error = 0x01
	ErrUnknownFileFormat    Error = 0x02
	ErrInvalidFileFormat    Error = 0x03
	ErrInvalidArgument      Error = 0x06
	ErrUnimplementedFeature Error = 0x07
	ErrInvalidGlyphIndex    Error = 0x10
	ErrInvalidCharacterCode Error = 0x11
	ErrInvalidOutline       Error = 0x14
	ErrInvalidPixelSize     Error = 0x17
	ErrInvalidHandle        Error = 0x20
	ErrInvalidLibraryHandle Error = 0x21
	ErrInvalidFaceHandle    Error = 0x23
	ErrInvalidSizeHandle    Error = 0x24
	ErrInvalidSlotHandle    Error = 0x25
	ErrOutOfMemory          Error = 0x40
)

var errorNames = map[Error]string{
	ErrCannotOpenResource:   "cannot open resource",
	ErrUnknownFileFormat:    "unknown file format",
	ErrInvalidFileFormat:    "broken file",
	ErrInvalidArgument:      "invalid argument",
	ErrUnimplementedFeature: "unimplemented feature",
	ErrInvalidGlyphIndex:    "invalid glyph index",
	ErrInvalidCharacterCode: "invalid character code",
	ErrInvalidOutline:       "invalid outline",
	ErrInvalidPixelSize:     "invalid pixel size",
	ErrInvalidHandle:        "invalid object handle",
	ErrInvalidLibraryHandle: "invalid library handle",
	ErrInvalidFaceHandle:    "invalid face handle",
	ErrInvalidSizeHandle:    "invalid size handle",
	ErrInvalidSlotHandle:    "invalid glyph slot handle",
	ErrOutOfMemory:          "out of memory",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return fmt.Sprintf("font: %s (0x%02x)", name, int(e))
	}
	return fmt.Sprintf("font: error 0x%02x", int(e))
}

// Code returns the FreeType error code of err, 0 for nil and
// ErrInvalidArgument for errors not produced by this package.
func Code(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(Error); ok {
		return int(e)
	}
	return int(ErrInvalidArgument)
}
