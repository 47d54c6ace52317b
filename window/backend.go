// SPDX-License-Identifier: Unlicense OR MIT

package window

import "gioui.org/shim/gl"

// Backend is a windowing system. Package native implements it with
// GLFW. Its methods are called from the main thread only.
type Backend interface {
	// SetErrorCallback installs the function receiving asynchronous
	// windowing system errors. It is called before Init.
	SetErrorCallback(func(code int, desc string))
	Init() error
	// WindowHint sets a hint for the next CreateWindow.
	WindowHint(h Hint, value int)
	CreateWindow(width, height int, title string) (Surface, error)
	Terminate()
	PollEvents()
	// Time returns the seconds elapsed since Init.
	Time() float64
}

// Surface is a window with an OpenGL context created by a Backend.
type Surface interface {
	MakeContextCurrent()
	// LoadGL resolves the OpenGL functions of the current context.
	LoadGL() (gl.Functions, error)
	Size() (width, height int)
	FramebufferSize() (width, height int)
	ContentScale() (x, y float32)
	ShouldClose() bool
	SetShouldClose(v bool)
	SwapBuffers()
	SetSizeCallback(func(width, height int))
	SetFramebufferSizeCallback(func(width, height int))
	SetScrollCallback(func(xoff, yoff float64))
	SetCursorPosCallback(func(x, y float64))
	SetKeyCallback(func(key Key, scancode int, action Action, mods ModifierKey))
	Destroy()
}
