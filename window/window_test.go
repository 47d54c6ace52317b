// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"gioui.org/shim/gl"
	"gioui.org/shim/internal/gltest"
)

// fakeBackend records the calls made by New and fails the stage named
// by failAt.
type fakeBackend struct {
	calls   []string
	failAt  string
	onError func(code int, desc string)
	hints   map[Hint]int
	surface *fakeSurface
	funcs   *gltest.Functions
	now     float64
}

type fakeSurface struct {
	b           *fakeBackend
	shouldClose bool
	size        [2]int
	fbSize      [2]int

	onSize        func(width, height int)
	onFramebuffer func(width, height int)
	onScroll      func(xoff, yoff float64)
	onCursorPos   func(x, y float64)
	onKey         func(key Key, scancode int, action Action, mods ModifierKey)
}

func newFakeBackend(failAt string) *fakeBackend {
	return &fakeBackend{
		failAt: failAt,
		hints:  make(map[Hint]int),
		funcs:  gltest.New(),
	}
}

func (b *fakeBackend) call(name string) error {
	b.calls = append(b.calls, name)
	if name == b.failAt {
		// Windowing systems report the reason through the error callback.
		if b.onError != nil {
			b.onError(65543, "Requested OpenGL version 3.3 unavailable")
		}
		return fmt.Errorf("%s failed", name)
	}
	return nil
}

func (b *fakeBackend) SetErrorCallback(cb func(code int, desc string)) {
	b.calls = append(b.calls, "SetErrorCallback")
	b.onError = cb
}

func (b *fakeBackend) Init() error {
	return b.call("Init")
}

func (b *fakeBackend) WindowHint(h Hint, value int) {
	b.hints[h] = value
}

func (b *fakeBackend) CreateWindow(width, height int, title string) (Surface, error) {
	if err := b.call("CreateWindow"); err != nil {
		return nil, err
	}
	b.surface = &fakeSurface{
		b:      b,
		size:   [2]int{width, height},
		fbSize: [2]int{2 * width, 2 * height},
	}
	return b.surface, nil
}

func (b *fakeBackend) Terminate() {
	b.call("Terminate")
}

func (b *fakeBackend) PollEvents() {
	b.call("PollEvents")
}

func (b *fakeBackend) Time() float64 {
	return b.now
}

func (s *fakeSurface) MakeContextCurrent() {
	s.b.call("MakeContextCurrent")
}

func (s *fakeSurface) LoadGL() (gl.Functions, error) {
	if err := s.b.call("LoadGL"); err != nil {
		return nil, err
	}
	return s.b.funcs, nil
}

func (s *fakeSurface) Size() (int, int) {
	return s.size[0], s.size[1]
}

func (s *fakeSurface) FramebufferSize() (int, int) {
	s.b.call("FramebufferSize")
	return s.fbSize[0], s.fbSize[1]
}

func (s *fakeSurface) ContentScale() (float32, float32) {
	return 2, 2
}

func (s *fakeSurface) ShouldClose() bool {
	return s.shouldClose
}

func (s *fakeSurface) SetShouldClose(v bool) {
	s.shouldClose = v
}

func (s *fakeSurface) SwapBuffers() {
	s.b.call("SwapBuffers")
}

func (s *fakeSurface) SetSizeCallback(cb func(width, height int)) {
	s.onSize = cb
}

func (s *fakeSurface) SetFramebufferSizeCallback(cb func(width, height int)) {
	s.b.call("SetFramebufferSizeCallback")
	s.onFramebuffer = cb
}

func (s *fakeSurface) SetScrollCallback(cb func(xoff, yoff float64)) {
	s.onScroll = cb
}

func (s *fakeSurface) SetCursorPosCallback(cb func(x, y float64)) {
	s.onCursorPos = cb
}

func (s *fakeSurface) SetKeyCallback(cb func(key Key, scancode int, action Action, mods ModifierKey)) {
	s.onKey = cb
}

func (s *fakeSurface) Destroy() {
	s.b.call("Destroy")
}

func TestNew(t *testing.T) {
	b := newFakeBackend("")
	var log bytes.Buffer
	w, err := New(b, Config{Title: "test", Width: 800, Height: 600}, WithLogger(&log))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"SetErrorCallback", "Init", "CreateWindow", "MakeContextCurrent", "LoadGL", "FramebufferSize"}
	if got := b.calls; !slices.Equal(got, want) {
		t.Errorf("calls %v, want %v", got, want)
	}
	// MULTISAMPLE must be enabled before the viewport is set.
	gcalls := b.funcs.Calls
	if len(gcalls) != 2 || gcalls[0] != "Enable" || gcalls[1] != "Viewport" {
		t.Errorf("GL calls %v, want [Enable Viewport]", gcalls)
	}
	if !b.funcs.Enabled(gl.MULTISAMPLE) {
		t.Error("MULTISAMPLE not enabled")
	}
	if got, want := b.funcs.ViewportRect(), [4]int{0, 0, 1600, 1200}; got != want {
		t.Errorf("viewport %v, want framebuffer size %v", got, want)
	}
	if w.Device() == nil {
		t.Error("no device")
	}
	if log.Len() != 0 {
		t.Errorf("logged %q on success", log.String())
	}
}

func TestDefaultHints(t *testing.T) {
	b := newFakeBackend("")
	if _, err := New(b, Config{Width: 1, Height: 1}, WithLogger(new(bytes.Buffer))); err != nil {
		t.Fatal(err)
	}
	want := map[Hint]int{
		HintSamples:             4,
		HintScaleToMonitor:      True,
		HintContextVersionMajor: 3,
		HintContextVersionMinor: 3,
		HintOpenGLProfile:       OpenGLCoreProfile,
	}
	if forwardCompat {
		want[HintOpenGLForwardCompat] = True
	}
	if len(b.hints) != len(want) {
		t.Errorf("hints %v, want %v", b.hints, want)
	}
	for h, v := range want {
		if b.hints[h] != v {
			t.Errorf("hint %#x = %d, want %d", h, b.hints[h], v)
		}
	}
}

func TestConfigHintsOverride(t *testing.T) {
	b := newFakeBackend("")
	cfg := Config{
		Width:  1,
		Height: 1,
		Hints: map[Hint]int{
			HintSamples:   0,
			HintDecorated: False,
		},
	}
	if _, err := New(b, cfg, WithLogger(new(bytes.Buffer))); err != nil {
		t.Fatal(err)
	}
	if b.hints[HintSamples] != 0 {
		t.Errorf("samples %d, want override 0", b.hints[HintSamples])
	}
	if v, ok := b.hints[HintDecorated]; !ok || v != False {
		t.Error("decorated hint not applied")
	}
}

func TestForwardCompat(t *testing.T) {
	defer func(v bool) { forwardCompat = v }(forwardCompat)
	for _, fc := range []bool{false, true} {
		forwardCompat = fc
		b := newFakeBackend("")
		if _, err := New(b, Config{Width: 1, Height: 1}, WithLogger(new(bytes.Buffer))); err != nil {
			t.Fatal(err)
		}
		if _, ok := b.hints[HintOpenGLForwardCompat]; ok != fc {
			t.Errorf("forwardCompat=%v: hint set %v", fc, ok)
		}
	}
}

func TestStageFailures(t *testing.T) {
	tests := []struct {
		stage string
		err   error
		msg   string
		calls []string
	}{
		{
			stage: "Init",
			err:   ErrInit,
			msg:   "Failed to initialize GLFW",
			calls: []string{"SetErrorCallback", "Init"},
		},
		{
			stage: "CreateWindow",
			err:   ErrCreateWindow,
			msg:   "Failed to create GLFW window",
			calls: []string{"SetErrorCallback", "Init", "CreateWindow", "Terminate"},
		},
		{
			stage: "LoadGL",
			err:   ErrLoadGL,
			msg:   "Failed to initialize OpenGL function pointers",
			calls: []string{"SetErrorCallback", "Init", "CreateWindow", "MakeContextCurrent", "LoadGL", "Destroy", "Terminate"},
		},
	}
	for _, test := range tests {
		t.Run(test.stage, func(t *testing.T) {
			b := newFakeBackend(test.stage)
			var log bytes.Buffer
			w, err := New(b, Config{Width: 640, Height: 480}, WithLogger(&log))
			if w != nil {
				t.Error("window returned on failure")
			}
			if !errors.Is(err, test.err) {
				t.Errorf("got %v, want %v", err, test.err)
			}
			if !slices.Equal(b.calls, test.calls) {
				t.Errorf("calls %v, want %v", b.calls, test.calls)
			}
			if len(b.funcs.Calls) != 0 {
				t.Errorf("GL called after failure: %v", b.funcs.Calls)
			}
			lines := strings.Split(strings.TrimSuffix(log.String(), "\n"), "\n")
			want := []string{
				"[GLFW ERROR] (65543): Requested OpenGL version 3.3 unavailable",
				test.msg,
			}
			if !slices.Equal(lines, want) {
				t.Errorf("logged %q, want %q", lines, want)
			}
		})
	}
}

func TestUserData(t *testing.T) {
	w, _ := newTestWindow(t)
	if w.UserData() != nil {
		t.Errorf("initial user data %v", w.UserData())
	}
	type state struct{ n int }
	s1, s2 := &state{1}, &state{2}
	w.SetUserData(s1)
	if w.UserData().(*state) != s1 {
		t.Error("pointer not returned")
	}
	w.SetUserData(s2)
	if w.UserData().(*state) != s2 {
		t.Error("last write lost")
	}
	w.SetUserData(nil)
	if w.UserData() != nil {
		t.Error("nil not returned")
	}
}

func TestCallbacks(t *testing.T) {
	w, b := newTestWindow(t)
	s := b.surface
	w.SetUserData("ctx")

	var got []string
	if prev := w.SetKeyCallback(func(w *Window, key Key, scancode int, action Action, mods ModifierKey) {
		got = append(got, fmt.Sprintf("key %v %d %v %v %v", w.UserData(), key, action, mods.Contain(ModShift), mods.Contain(ModControl)))
	}); prev != nil {
		t.Error("previous key callback not nil")
	}
	w.SetSizeCallback(func(w *Window, width, height int) {
		got = append(got, fmt.Sprintf("size %dx%d", width, height))
	})
	w.SetScrollCallback(func(w *Window, xoff, yoff float64) {
		got = append(got, fmt.Sprintf("scroll %v,%v", xoff, yoff))
	})
	w.SetCursorPosCallback(func(w *Window, x, y float64) {
		got = append(got, fmt.Sprintf("cursor %v,%v", x, y))
	})
	w.SetFramebufferSizeCallback(func(w *Window, width, height int) {
		got = append(got, fmt.Sprintf("fb %dx%d", width, height))
	})

	s.onKey(KeyEscape, 9, Press, ModShift)
	s.onSize(320, 200)
	s.onScroll(0, -1.5)
	s.onCursorPos(10.5, 20)
	s.onFramebuffer(640, 400)

	want := []string{
		"key ctx 256 Press true false",
		"size 320x200",
		"scroll 0,-1.5",
		"cursor 10.5,20",
		"fb 640x400",
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	if prev := w.SetKeyCallback(nil); prev == nil {
		t.Error("previous key callback lost")
	}
	if s.onKey != nil {
		t.Error("key callback not removed")
	}
}

func TestFramebufferCallbackAtCreation(t *testing.T) {
	b := newFakeBackend("")
	var resized [2]int
	cfg := Config{
		Width:  100,
		Height: 100,
		OnFramebufferResize: func(w *Window, width, height int) {
			resized = [2]int{width, height}
		},
	}
	w, err := New(b, cfg, WithLogger(new(bytes.Buffer)))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"SetErrorCallback", "Init", "CreateWindow", "MakeContextCurrent", "SetFramebufferSizeCallback", "LoadGL", "FramebufferSize"}
	if !slices.Equal(b.calls, want) {
		t.Errorf("calls %v, want %v", b.calls, want)
	}
	b.surface.onFramebuffer(300, 150)
	if resized != [2]int{300, 150} {
		t.Errorf("resize callback got %v", resized)
	}
	if w.SetFramebufferSizeCallback(nil) == nil {
		t.Error("creation callback not returned as previous")
	}
}

func TestPassThroughs(t *testing.T) {
	w, b := newTestWindow(t)
	if x, y := w.Size(); x != 640 || y != 480 {
		t.Errorf("Size = %d, %d", x, y)
	}
	if x, y := w.FramebufferSize(); x != 1280 || y != 960 {
		t.Errorf("FramebufferSize = %d, %d", x, y)
	}
	if x, y := w.ContentScale(); x != 2 || y != 2 {
		t.Errorf("ContentScale = %v, %v", x, y)
	}
	if w.ShouldClose() {
		t.Error("ShouldClose before close")
	}
	w.SetShouldClose(true)
	if !w.ShouldClose() {
		t.Error("SetShouldClose ignored")
	}
	b.now = 1.25
	if w.Time() != 1.25 {
		t.Errorf("Time = %v", w.Time())
	}
	w.PollEvents()
	w.SwapBuffers()
	n := len(b.calls)
	if b.calls[n-2] != "PollEvents" || b.calls[n-1] != "SwapBuffers" {
		t.Errorf("calls %v", b.calls)
	}
}

func TestDestroy(t *testing.T) {
	w, b := newTestWindow(t)
	w.Destroy()
	w.Destroy()
	var n int
	for _, c := range b.calls {
		if c == "Destroy" || c == "Terminate" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("Destroy and Terminate called %d times in total, want 2", n)
	}
	if !w.ShouldClose() {
		t.Error("destroyed window does not report ShouldClose")
	}
	if w.Device() != nil {
		t.Error("device outlived window")
	}
	calls := len(b.calls)
	w.SwapBuffers()
	w.PollEvents()
	w.SetSizeCallback(func(*Window, int, int) {})
	if x, y := w.Size(); x != 0 || y != 0 {
		t.Errorf("Size after Destroy = %d, %d", x, y)
	}
	if len(b.calls) != calls {
		t.Errorf("backend called after Destroy: %v", b.calls[calls:])
	}
}

func newTestWindow(t *testing.T) (*Window, *fakeBackend) {
	t.Helper()
	b := newFakeBackend("")
	w, err := New(b, Config{Title: "test", Width: 640, Height: 480}, WithLogger(new(bytes.Buffer)))
	if err != nil {
		t.Fatal(err)
	}
	return w, b
}
