// SPDX-License-Identifier: Unlicense OR MIT

/*
Package window creates a window with an OpenGL 3.3 core context.

New initializes the windowing system, creates the window and loads the
OpenGL functions of its context. If any stage fails, the resources of
the earlier stages are released and a diagnostic line is written to
stderr:

	[GLFW ERROR] (65543): ...
	Failed to create GLFW window

A Window owns its context. Device returns the GPU facade for it.

Windows must be created and used from the main goroutine, locked to
the main OS thread. Package native does the locking.
*/
package window

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/shim/gl"
	"gioui.org/shim/gpu"
	"gioui.org/shim/internal/diag"
)

var (
	ErrInit         = errors.New("window: failed to initialize the windowing system")
	ErrCreateWindow = errors.New("window: failed to create window")
	ErrLoadGL       = errors.New("window: failed to load OpenGL functions")
)

// forwardCompat reports whether contexts are requested forward
// compatible. macOS only provides core profiles that way.
var forwardCompat = runtime.GOOS == "darwin"

// Config describes the window to create.
type Config struct {
	Title         string
	Width, Height int
	// Hints are applied after the default hints, in ascending Hint
	// order, and override them.
	Hints map[Hint]int
	// OnFramebufferResize, if set, is installed as the framebuffer size
	// callback before the OpenGL functions are loaded.
	OnFramebufferResize SizeCallback
}

type (
	SizeCallback      func(w *Window, width, height int)
	ScrollCallback    func(w *Window, xoff, yoff float64)
	CursorPosCallback func(w *Window, x, y float64)
	KeyCallback       func(w *Window, key Key, scancode int, action Action, mods ModifierKey)
)

// Window is a window with a current OpenGL context.
type Window struct {
	backend Backend
	surface Surface
	dev     *gpu.Device

	userData interface{}

	onSize        SizeCallback
	onFramebuffer SizeCallback
	onScroll      ScrollCallback
	onCursorPos   CursorPosCallback
	onKey         KeyCallback

	destroyed bool
}

// Option configures New.
type Option func(o *options)

type options struct {
	log    *diag.Logger
	device []gpu.Option
}

// WithLogger directs diagnostics to w instead of stderr.
func WithLogger(w io.Writer) Option {
	return func(o *options) {
		o.log = diag.New(w)
	}
}

// WithDeviceOptions passes opts to the gpu.Device of the window.
func WithDeviceOptions(opts ...gpu.Option) Option {
	return func(o *options) {
		o.device = append(o.device, opts...)
	}
}

var defaultHints = []struct {
	h Hint
	v int
}{
	{HintSamples, 4},
	{HintScaleToMonitor, True},
	{HintContextVersionMajor, 3},
	{HintContextVersionMinor, 3},
	{HintOpenGLProfile, OpenGLCoreProfile},
}

// New creates a window from b. On success the window context is current
// and its viewport covers the framebuffer.
func New(b Backend, cfg Config, opts ...Option) (*Window, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	lg := diag.Or(o.log)
	b.SetErrorCallback(func(code int, desc string) {
		lg.Errorf("GLFW", "(%d): %s", code, desc)
	})
	if err := b.Init(); err != nil {
		lg.Printf("Failed to initialize GLFW")
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	for _, d := range defaultHints {
		b.WindowHint(d.h, d.v)
	}
	if forwardCompat {
		b.WindowHint(HintOpenGLForwardCompat, True)
	}
	hints := maps.Keys(cfg.Hints)
	slices.Sort(hints)
	for _, h := range hints {
		b.WindowHint(h, cfg.Hints[h])
	}
	s, err := b.CreateWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		lg.Printf("Failed to create GLFW window")
		b.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	w := &Window{
		backend: b,
		surface: s,
	}
	s.MakeContextCurrent()
	if cfg.OnFramebufferResize != nil {
		w.SetFramebufferSizeCallback(cfg.OnFramebufferResize)
	}
	f, err := s.LoadGL()
	if err != nil {
		lg.Printf("Failed to initialize OpenGL function pointers")
		s.Destroy()
		b.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrLoadGL, err)
	}
	w.dev = gpu.NewDevice(f, o.device...)
	// Multisampling and the viewport need a current context with loaded
	// functions.
	w.dev.Enable(gl.MULTISAMPLE)
	fbw, fbh := s.FramebufferSize()
	w.dev.Viewport(0, 0, fbw, fbh)
	return w, nil
}

// Device returns the GPU facade of the window context, or nil after
// Destroy.
func (w *Window) Device() *gpu.Device {
	if w.destroyed {
		return nil
	}
	return w.dev
}

// SetUserData attaches an arbitrary value to the window, replacing any
// previous value. Callbacks use it to find their context.
func (w *Window) SetUserData(v interface{}) {
	w.userData = v
}

// UserData returns the value last passed to SetUserData.
func (w *Window) UserData() interface{} {
	return w.userData
}

// SetSizeCallback sets the window size callback and returns the
// previous one. A nil cb removes the callback.
func (w *Window) SetSizeCallback(cb SizeCallback) SizeCallback {
	prev := w.onSize
	if w.destroyed {
		return prev
	}
	w.onSize = cb
	if cb == nil {
		w.surface.SetSizeCallback(nil)
	} else {
		w.surface.SetSizeCallback(func(width, height int) {
			cb(w, width, height)
		})
	}
	return prev
}

// SetFramebufferSizeCallback sets the framebuffer size callback, in
// pixels, and returns the previous one.
func (w *Window) SetFramebufferSizeCallback(cb SizeCallback) SizeCallback {
	prev := w.onFramebuffer
	if w.destroyed {
		return prev
	}
	w.onFramebuffer = cb
	if cb == nil {
		w.surface.SetFramebufferSizeCallback(nil)
	} else {
		w.surface.SetFramebufferSizeCallback(func(width, height int) {
			cb(w, width, height)
		})
	}
	return prev
}

// SetScrollCallback sets the scroll callback and returns the previous
// one.
func (w *Window) SetScrollCallback(cb ScrollCallback) ScrollCallback {
	prev := w.onScroll
	if w.destroyed {
		return prev
	}
	w.onScroll = cb
	if cb == nil {
		w.surface.SetScrollCallback(nil)
	} else {
		w.surface.SetScrollCallback(func(xoff, yoff float64) {
			cb(w, xoff, yoff)
		})
	}
	return prev
}

// SetCursorPosCallback sets the cursor position callback and returns
// the previous one. Positions are in screen coordinates relative to the
// top-left corner of the content area.
func (w *Window) SetCursorPosCallback(cb CursorPosCallback) CursorPosCallback {
	prev := w.onCursorPos
	if w.destroyed {
		return prev
	}
	w.onCursorPos = cb
	if cb == nil {
		w.surface.SetCursorPosCallback(nil)
	} else {
		w.surface.SetCursorPosCallback(func(x, y float64) {
			cb(w, x, y)
		})
	}
	return prev
}

// SetKeyCallback sets the key callback and returns the previous one.
func (w *Window) SetKeyCallback(cb KeyCallback) KeyCallback {
	prev := w.onKey
	if w.destroyed {
		return prev
	}
	w.onKey = cb
	if cb == nil {
		w.surface.SetKeyCallback(nil)
	} else {
		w.surface.SetKeyCallback(func(key Key, scancode int, action Action, mods ModifierKey) {
			cb(w, key, scancode, action, mods)
		})
	}
	return prev
}

// Size returns the size of the content area in screen coordinates.
func (w *Window) Size() (width, height int) {
	if w.destroyed {
		return 0, 0
	}
	return w.surface.Size()
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	if w.destroyed {
		return 0, 0
	}
	return w.surface.FramebufferSize()
}

// ContentScale returns the ratio between the current DPI and the
// platform default DPI.
func (w *Window) ContentScale() (x, y float32) {
	if w.destroyed {
		return 0, 0
	}
	return w.surface.ContentScale()
}

// ShouldClose reports whether the user asked to close the window. It
// is true after Destroy.
func (w *Window) ShouldClose() bool {
	if w.destroyed {
		return true
	}
	return w.surface.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	if w.destroyed {
		return
	}
	w.surface.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	if w.destroyed {
		return
	}
	w.surface.SwapBuffers()
}

// PollEvents processes pending events and runs the callbacks they
// trigger.
func (w *Window) PollEvents() {
	if w.destroyed {
		return
	}
	w.backend.PollEvents()
}

// Time returns the seconds elapsed since the windowing system was
// initialized.
func (w *Window) Time() float64 {
	if w.destroyed {
		return 0
	}
	return w.backend.Time()
}

// Destroy destroys the window and its context and terminates the
// windowing system. Objects of the Device are released with the
// context. Destroy is idempotent.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.surface.Destroy()
	w.backend.Terminate()
}
