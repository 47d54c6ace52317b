// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "gioui.org/shim/gl"

// CreateTexture generates a single texture name.
func (d *Device) CreateTexture() gl.Texture {
	var t [1]gl.Texture
	d.funcs.GenTextures(t[:])
	d.track(KindTexture, t[0].V)
	return t[0]
}

func (d *Device) BindTexture(target gl.Enum, t gl.Texture) error {
	if err := d.check(KindTexture, t.V); err != nil {
		return err
	}
	d.funcs.BindTexture(target, t)
	return nil
}

// ActiveTexture selects the texture unit, gl.TEXTURE0 and up, that
// BindTexture affects.
func (d *Device) ActiveTexture(unit gl.Enum) {
	d.funcs.ActiveTexture(unit)
}

func (d *Device) TexParameteri(target, pname gl.Enum, param int) {
	d.funcs.TexParameteri(target, pname, param)
}

// TexImage2D specifies the image of the texture bound to target. Rows
// of data are read with the current unpack alignment. A nil data
// allocates the image without initializing it.
//
// TexImage2D drains the OpenGL error flags after the upload and returns
// the first one as a gl.Error.
func (d *Device) TexImage2D(target gl.Enum, level, internalFormat, width, height int, format, ty gl.Enum, data []byte) error {
	d.funcs.TexImage2D(target, level, internalFormat, width, height, format, ty, data)
	err := d.drainErrors()
	if d.debug != nil {
		if err != nil {
			d.debug.Printf("OpenGL error: %d", uint(err.(gl.Error)))
		} else {
			d.debug.Printf("glTexImage2D called successfully")
		}
	}
	return err
}

// TexSubImage2D replaces the width×height region at (x, y) of the
// texture bound to target.
func (d *Device) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	d.funcs.TexSubImage2D(target, level, x, y, width, height, format, ty, data)
}

func (d *Device) GenerateMipmap(target gl.Enum) {
	d.funcs.GenerateMipmap(target)
}

// PixelStorei sets a pixel storage mode, typically gl.UNPACK_ALIGNMENT.
func (d *Device) PixelStorei(pname gl.Enum, param int) {
	d.funcs.PixelStorei(pname, param)
}

func (d *Device) DeleteTexture(t gl.Texture) error {
	if t.V == 0 {
		return nil
	}
	if err := d.check(KindTexture, t.V); err != nil {
		return err
	}
	d.funcs.DeleteTextures([]gl.Texture{t})
	d.forget(KindTexture, t.V)
	return nil
}
