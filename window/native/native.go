// SPDX-License-Identifier: Unlicense OR MIT

//go:build !openbsd && !freebsd && !android && !ios && !js
// +build !openbsd,!freebsd,!android,!ios,!js

// Package native implements window.Backend with GLFW 3.3 and loads
// OpenGL through the go-gl bindings.
//
// Importing the package locks the main goroutine to the main OS thread,
// as GLFW and OpenGL require.
package native

import (
	"errors"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/shim/gl"
	"gioui.org/shim/internal/gogl"
	"gioui.org/shim/window"
)

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

// Backend is the GLFW windowing system. The zero value is ready to use.
type Backend struct {
	onError func(code int, desc string)
}

type surface struct {
	b *Backend
	w *glfw.Window
}

var (
	_ window.Backend = (*Backend)(nil)
	_ window.Surface = (*surface)(nil)
)

// New returns a GLFW backend.
func New() *Backend {
	return new(Backend)
}

// SetErrorCallback installs cb for the errors GLFW reports. The go-gl
// bindings return errors rather than calling back, so cb runs when a
// Backend method fails with a GLFW error.
func (b *Backend) SetErrorCallback(cb func(code int, desc string)) {
	b.onError = cb
}

func (b *Backend) report(err error) error {
	var gerr *glfw.Error
	if b.onError != nil && errors.As(err, &gerr) {
		b.onError(int(gerr.Code), gerr.Desc)
	}
	return err
}

func (b *Backend) Init() error {
	return b.report(glfw.Init())
}

func (b *Backend) WindowHint(h window.Hint, value int) {
	glfw.WindowHint(glfw.Hint(h), value)
}

func (b *Backend) CreateWindow(width, height int, title string) (window.Surface, error) {
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, b.report(err)
	}
	return &surface{b: b, w: w}, nil
}

func (b *Backend) Terminate() {
	glfw.Terminate()
}

func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

func (b *Backend) Time() float64 {
	return glfw.GetTime()
}

func (s *surface) MakeContextCurrent() {
	s.w.MakeContextCurrent()
}

func (s *surface) LoadGL() (gl.Functions, error) {
	f, err := gogl.Load()
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *surface) Size() (int, int) {
	return s.w.GetSize()
}

func (s *surface) FramebufferSize() (int, int) {
	return s.w.GetFramebufferSize()
}

func (s *surface) ContentScale() (float32, float32) {
	return s.w.GetContentScale()
}

func (s *surface) ShouldClose() bool {
	return s.w.ShouldClose()
}

func (s *surface) SetShouldClose(v bool) {
	s.w.SetShouldClose(v)
}

func (s *surface) SwapBuffers() {
	s.w.SwapBuffers()
}

func (s *surface) SetSizeCallback(cb func(width, height int)) {
	if cb == nil {
		s.w.SetSizeCallback(nil)
		return
	}
	s.w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		cb(width, height)
	})
}

func (s *surface) SetFramebufferSizeCallback(cb func(width, height int)) {
	if cb == nil {
		s.w.SetFramebufferSizeCallback(nil)
		return
	}
	s.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		cb(width, height)
	})
}

func (s *surface) SetScrollCallback(cb func(xoff, yoff float64)) {
	if cb == nil {
		s.w.SetScrollCallback(nil)
		return
	}
	s.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

func (s *surface) SetCursorPosCallback(cb func(x, y float64)) {
	if cb == nil {
		s.w.SetCursorPosCallback(nil)
		return
	}
	s.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

func (s *surface) SetKeyCallback(cb func(key window.Key, scancode int, action window.Action, mods window.ModifierKey)) {
	if cb == nil {
		s.w.SetKeyCallback(nil)
		return
	}
	s.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		cb(window.Key(key), scancode, window.Action(action), window.ModifierKey(mods))
	})
}

func (s *surface) Destroy() {
	s.w.Destroy()
}
