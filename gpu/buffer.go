// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "gioui.org/shim/gl"

// CreateBuffer generates a single buffer name.
func (d *Device) CreateBuffer() gl.Buffer {
	var b [1]gl.Buffer
	d.funcs.GenBuffers(b[:])
	d.track(KindBuffer, b[0].V)
	return b[0]
}

// CreateBuffers generates n buffer names in one call.
func (d *Device) CreateBuffers(n int) []gl.Buffer {
	if n <= 0 {
		return nil
	}
	bufs := make([]gl.Buffer, n)
	d.funcs.GenBuffers(bufs)
	for _, b := range bufs {
		d.track(KindBuffer, b.V)
	}
	return bufs
}

func (d *Device) BindBuffer(target gl.Enum, b gl.Buffer) error {
	if err := d.check(KindBuffer, b.V); err != nil {
		return err
	}
	d.funcs.BindBuffer(target, b)
	return nil
}

// BufferData replaces the storage of the buffer bound to target with a
// copy of data.
func (d *Device) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	d.funcs.BufferData(target, len(data), data, usage)
}

// BufferDataSize allocates size bytes of uninitialized storage for the
// buffer bound to target.
func (d *Device) BufferDataSize(target gl.Enum, size int, usage gl.Enum) {
	d.funcs.BufferData(target, size, nil, usage)
}

// BufferSubData overwrites part of the buffer bound to target.
func (d *Device) BufferSubData(target gl.Enum, offset int, data []byte) {
	d.funcs.BufferSubData(target, offset, data)
}

func (d *Device) DeleteBuffer(b gl.Buffer) error {
	if b.V == 0 {
		return nil
	}
	if err := d.check(KindBuffer, b.V); err != nil {
		return err
	}
	d.funcs.DeleteBuffers([]gl.Buffer{b})
	d.forget(KindBuffer, b.V)
	return nil
}

// CreateVertexArray generates a single vertex array name.
func (d *Device) CreateVertexArray() gl.VertexArray {
	var a [1]gl.VertexArray
	d.funcs.GenVertexArrays(a[:])
	d.track(KindVertexArray, a[0].V)
	return a[0]
}

// CreateVertexArrays generates n vertex array names in one call.
func (d *Device) CreateVertexArrays(n int) []gl.VertexArray {
	if n <= 0 {
		return nil
	}
	arrs := make([]gl.VertexArray, n)
	d.funcs.GenVertexArrays(arrs)
	for _, a := range arrs {
		d.track(KindVertexArray, a.V)
	}
	return arrs
}

func (d *Device) BindVertexArray(a gl.VertexArray) error {
	if err := d.check(KindVertexArray, a.V); err != nil {
		return err
	}
	d.funcs.BindVertexArray(a)
	return nil
}

// VertexAttribPointer describes attribute a as size components of type
// ty, read from the bound ARRAY_BUFFER at byte offset with the given
// stride.
func (d *Device) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	d.funcs.VertexAttribPointer(a, size, ty, normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(a gl.Attrib) {
	d.funcs.EnableVertexAttribArray(a)
}

// VertexAttribDivisor makes attribute a advance once per divisor
// instances instead of once per vertex. Zero restores per vertex.
func (d *Device) VertexAttribDivisor(a gl.Attrib, divisor int) {
	d.funcs.VertexAttribDivisor(a, divisor)
}

// VertexAttrib4f sets the constant value of attribute a, used while its
// array is disabled.
func (d *Device) VertexAttrib4f(a gl.Attrib, v0, v1, v2, v3 float32) {
	d.funcs.VertexAttrib4f(a, v0, v1, v2, v3)
}

func (d *Device) DeleteVertexArray(a gl.VertexArray) error {
	if a.V == 0 {
		return nil
	}
	if err := d.check(KindVertexArray, a.V); err != nil {
		return err
	}
	d.funcs.DeleteVertexArrays([]gl.VertexArray{a})
	d.forget(KindVertexArray, a.V)
	return nil
}

func (d *Device) DrawArrays(mode gl.Enum, first, count int) {
	d.funcs.DrawArrays(mode, first, count)
}

func (d *Device) DrawArraysInstanced(mode gl.Enum, first, count, instances int) {
	d.funcs.DrawArraysInstanced(mode, first, count, instances)
}

// DrawElements draws count indices of type ty read from the bound
// ELEMENT_ARRAY_BUFFER at byte offset.
func (d *Device) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	d.funcs.DrawElements(mode, count, ty, offset)
}
