// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"gioui.org/shim/font/atlas"
	"gioui.org/shim/gl"
	"gioui.org/shim/gpu"
	gunsafe "gioui.org/shim/internal/unsafe"
)

const textVert = `#version 330 core
layout (location = 0) in vec2 pos;
layout (location = 1) in vec2 uv;
uniform vec2 resolution;
out vec2 vUV;
void main() {
	vec2 ndc = pos / resolution * 2.0 - 1.0;
	gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
	vUV = uv;
}
`

const textFrag = `#version 330 core
in vec2 vUV;
uniform sampler2D glyphs;
uniform vec4 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color.rgb, color.a * texture(glyphs, vUV).r);
}
`

// textRenderer draws lines of text from a glyph atlas.
type textRenderer struct {
	dev   *gpu.Device
	atlas *atlas.Atlas
	prog  gl.Program
	vao   gl.VertexArray
	vbo   gl.Buffer

	resolution gl.Uniform
	color      gl.Uniform

	verts []float32
}

func newTextRenderer(dev *gpu.Device, a *atlas.Atlas) (*textRenderer, error) {
	prog, err := dev.NewProgram(textVert, textFrag)
	if err != nil {
		return nil, err
	}
	r := &textRenderer{dev: dev, atlas: a, prog: prog}
	for _, u := range []struct {
		name string
		loc  *gl.Uniform
	}{
		{"resolution", &r.resolution},
		{"color", &r.color},
	} {
		loc, err := dev.GetUniformLocation(prog, u.name)
		if err != nil {
			dev.DeleteProgram(prog)
			return nil, err
		}
		if !loc.Valid() {
			dev.DeleteProgram(prog)
			return nil, fmt.Errorf("uniform %s not found", u.name)
		}
		*u.loc = loc
	}
	r.vao = dev.CreateVertexArray()
	r.vbo = dev.CreateBuffer()
	dev.BindVertexArray(r.vao)
	dev.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	const stride = 4 * 4
	dev.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, 0)
	dev.EnableVertexAttribArray(0)
	dev.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, 2*4)
	dev.EnableVertexAttribArray(1)
	dev.BindVertexArray(gl.VertexArray{})
	return r, nil
}

// begin prepares the pipeline for a frame of the given framebuffer
// size, in pixels.
func (r *textRenderer) begin(width, height int) {
	d := r.dev
	d.Viewport(0, 0, width, height)
	d.Enable(gl.BLEND)
	d.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	d.UseProgram(r.prog)
	d.Uniform2f(r.resolution, float32(width), float32(height))
	// The glyphs sampler defaults to texture unit 0.
	d.ActiveTexture(gl.TEXTURE0)
	d.BindVertexArray(r.vao)
}

// draw draws s with its baseline at (x, y), scaled by scale.
func (r *textRenderer) draw(s string, x, y, scale float32, color [4]float32) error {
	r.verts, _ = r.atlas.AppendQuads(r.verts[:0], s, 0, 0)
	if len(r.verts) == 0 {
		return nil
	}
	for i := 0; i < len(r.verts); i += 4 {
		r.verts[i] = x + r.verts[i]*scale
		r.verts[i+1] = y + r.verts[i+1]*scale
	}
	d := r.dev
	if err := d.BindTexture(gl.TEXTURE_2D, r.atlas.Texture()); err != nil {
		return err
	}
	d.Uniform4f(r.color, color[0], color[1], color[2], color[3])
	if err := d.BindBuffer(gl.ARRAY_BUFFER, r.vbo); err != nil {
		return err
	}
	d.BufferData(gl.ARRAY_BUFFER, gunsafe.BytesView(r.verts), gl.DYNAMIC_DRAW)
	d.DrawArrays(gl.TRIANGLES, 0, len(r.verts)/4)
	return nil
}

func (r *textRenderer) release() {
	r.dev.DeleteBuffer(r.vbo)
	r.dev.DeleteVertexArray(r.vao)
	r.dev.DeleteProgram(r.prog)
}
