// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "gioui.org/shim/gl"

func (d *Device) PointSize(size float32) {
	d.funcs.PointSize(size)
}

func (d *Device) Enable(cap gl.Enum) {
	d.funcs.Enable(cap)
}

func (d *Device) Disable(cap gl.Enum) {
	d.funcs.Disable(cap)
}

func (d *Device) BlendFunc(sfactor, dfactor gl.Enum) {
	d.funcs.BlendFunc(sfactor, dfactor)
}

func (d *Device) Viewport(x, y, width, height int) {
	d.funcs.Viewport(x, y, width, height)
}

// Clear sets the clear color and clears the color buffer.
func (d *Device) Clear(red, green, blue, alpha float32) {
	d.funcs.ClearColor(red, green, blue, alpha)
	d.funcs.Clear(gl.COLOR_BUFFER_BIT)
}

// GetInteger returns the first value of an integer state variable.
func (d *Device) GetInteger(pname gl.Enum) int {
	var v [1]int
	d.funcs.GetIntegerv(pname, v[:])
	return v[0]
}

// GetIntegerv fills dst with the values of an integer state variable,
// such as the four values of gl.VIEWPORT.
func (d *Device) GetIntegerv(pname gl.Enum, dst []int) {
	d.funcs.GetIntegerv(pname, dst)
}
