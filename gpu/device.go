// SPDX-License-Identifier: Unlicense OR MIT

// Package gpu is a thin facade over an OpenGL 3.3 core context.
//
// A Device wraps the function table of one context. Every method maps
// to at most one OpenGL call, plus status queries where noted. The
// Device records the names of the objects it created, and methods given
// a deleted or foreign name return ErrInvalidHandle without calling
// OpenGL. The zero handle is always accepted where OpenGL accepts 0,
// for example to unbind.
//
// A Device must only be used from the thread that owns its context.
package gpu

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/shim/gl"
	"gioui.org/shim/internal/diag"
)

// ErrInvalidHandle is returned for operations on object names that were
// deleted or never created by the Device.
var ErrInvalidHandle = errors.New("gpu: invalid object handle")

// Kind identifies a class of OpenGL objects.
type Kind uint8

const (
	KindBuffer Kind = iota
	KindVertexArray
	KindTexture
	KindShader
	KindProgram

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindVertexArray:
		return "vertex array"
	case KindTexture:
		return "texture"
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	default:
		panic("invalid Kind")
	}
}

// Device is the GPU facade for one OpenGL context.
type Device struct {
	funcs gl.Functions
	// debug receives compile and upload diagnostics, if set.
	debug *diag.Logger
	live  [kindCount]map[uint]struct{}
}

// Option configures a Device.
type Option func(d *Device)

// WithDebugLog enables compile status and texture upload diagnostics.
// A nil w logs to stderr.
func WithDebugLog(w io.Writer) Option {
	return func(d *Device) {
		if w == nil {
			d.debug = diag.Stderr()
			return
		}
		d.debug = diag.New(w)
	}
}

// NewDevice returns a Device calling f. The context behind f must be
// current.
func NewDevice(f gl.Functions, opts ...Option) *Device {
	d := &Device{funcs: f}
	for i := range d.live {
		d.live[i] = make(map[uint]struct{})
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Functions returns the underlying function table. Objects created
// through it are not tracked by the Device.
func (d *Device) Functions() gl.Functions {
	return d.funcs
}

// Live returns the number of live objects of kind k created through d.
func (d *Device) Live(k Kind) int {
	return len(d.live[k])
}

// Leaks returns the sorted names of every live object of kind k.
func (d *Device) Leaks(k Kind) []uint {
	names := maps.Keys(d.live[k])
	slices.Sort(names)
	return names
}

func (d *Device) track(k Kind, name uint) {
	if name != 0 {
		d.live[k][name] = struct{}{}
	}
}

func (d *Device) forget(k Kind, name uint) {
	delete(d.live[k], name)
}

// check validates a non-zero name of kind k.
func (d *Device) check(k Kind, name uint) error {
	if name == 0 {
		return nil
	}
	if _, ok := d.live[k][name]; !ok {
		return fmt.Errorf("%w: %s %d", ErrInvalidHandle, k, name)
	}
	return nil
}

// checkLive is check that also rejects the zero name.
func (d *Device) checkLive(k Kind, name uint) error {
	if name == 0 {
		return fmt.Errorf("%w: %s 0", ErrInvalidHandle, k)
	}
	return d.check(k, name)
}

// GetError returns the oldest pending OpenGL error flag, or nil.
func (d *Device) GetError() error {
	if e := d.funcs.GetError(); e != gl.Enum(gl.NO_ERROR) {
		return gl.Error(e)
	}
	return nil
}

// maxErrorFlags bounds the loop in drainErrors. A lost context may
// keep reporting errors forever.
const maxErrorFlags = 16

// drainErrors clears every pending error flag and returns the first.
func (d *Device) drainErrors() error {
	var first error
	for i := 0; i < maxErrorFlags; i++ {
		e := d.funcs.GetError()
		if e == gl.Enum(gl.NO_ERROR) {
			break
		}
		if first == nil {
			first = gl.Error(e)
		}
	}
	return first
}
