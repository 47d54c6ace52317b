// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

// Error is a value returned by glGetError. NO_ERROR is never
// returned as an Error.
type Error Enum

const (
	NO_ERROR                      Error = 0x0
	INVALID_ENUM                  Error = 0x500
	INVALID_VALUE                 Error = 0x501
	INVALID_OPERATION             Error = 0x502
	STACK_OVERFLOW                Error = 0x503
	STACK_UNDERFLOW               Error = 0x504
	OUT_OF_MEMORY                 Error = 0x505
	INVALID_FRAMEBUFFER_OPERATION Error = 0x506
)

func (e Error) Error() string {
	var name string
	switch e {
	case INVALID_ENUM:
		name = "GL_INVALID_ENUM"
	case INVALID_VALUE:
		name = "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		name = "GL_INVALID_OPERATION"
	case STACK_OVERFLOW:
		name = "GL_STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		name = "GL_STACK_UNDERFLOW"
	case OUT_OF_MEMORY:
		name = "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		name = "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("gl: error 0x%x", uint(e))
	}
	return fmt.Sprintf("gl: %s (0x%x)", name, uint(e))
}
