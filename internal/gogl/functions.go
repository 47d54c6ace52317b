// SPDX-License-Identifier: Unlicense OR MIT

// Package gogl implements gl.Functions on top of the go-gl
// OpenGL 3.3 core profile bindings.
package gogl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	giogl "gioui.org/shim/gl"
	gunsafe "gioui.org/shim/internal/unsafe"
)

// Functions calls straight into the loaded OpenGL entry points.
type Functions struct {
	// Scratch space for single name Gen/Delete calls.
	names []uint32
}

// Load resolves the OpenGL entry points for the current context.
func Load() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func (f *Functions) scratch(n int) []uint32 {
	if cap(f.names) < n {
		f.names = make([]uint32, n)
	}
	return f.names[:n]
}

func (f *Functions) ActiveTexture(texture giogl.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (f *Functions) AttachShader(p giogl.Program, s giogl.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindBuffer(target giogl.Enum, b giogl.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindTexture(target giogl.Enum, t giogl.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BindVertexArray(a giogl.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (f *Functions) BlendFunc(sfactor, dfactor giogl.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (f *Functions) BufferData(target giogl.Enum, size int, data []byte, usage giogl.Enum) {
	gl.BufferData(uint32(target), size, bytesPtr(data), uint32(usage))
}

func (f *Functions) BufferSubData(target giogl.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), unsafe.Pointer(&data[0]))
}

func (f *Functions) Clear(mask giogl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s giogl.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *Functions) CreateProgram() giogl.Program {
	return giogl.Program{V: uint(gl.CreateProgram())}
}

func (f *Functions) CreateShader(ty giogl.Enum) giogl.Shader {
	return giogl.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *Functions) DeleteBuffers(bufs []giogl.Buffer) {
	if len(bufs) == 0 {
		return
	}
	names := f.scratch(len(bufs))
	for i, b := range bufs {
		names[i] = uint32(b.V)
	}
	gl.DeleteBuffers(int32(len(names)), &names[0])
}

func (f *Functions) DeleteProgram(p giogl.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteShader(s giogl.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteTextures(texs []giogl.Texture) {
	if len(texs) == 0 {
		return
	}
	names := f.scratch(len(texs))
	for i, t := range texs {
		names[i] = uint32(t.V)
	}
	gl.DeleteTextures(int32(len(names)), &names[0])
}

func (f *Functions) DeleteVertexArrays(arrs []giogl.VertexArray) {
	if len(arrs) == 0 {
		return
	}
	names := f.scratch(len(arrs))
	for i, a := range arrs {
		names[i] = uint32(a.V)
	}
	gl.DeleteVertexArrays(int32(len(names)), &names[0])
}

func (f *Functions) Disable(cap giogl.Enum) {
	gl.Disable(uint32(cap))
}

func (f *Functions) DrawArrays(mode giogl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawArraysInstanced(mode giogl.Enum, first, count, instances int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

func (f *Functions) DrawElements(mode giogl.Enum, count int, ty giogl.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), gl.PtrOffset(offset))
}

func (f *Functions) Enable(cap giogl.Enum) {
	gl.Enable(uint32(cap))
}

func (f *Functions) EnableVertexAttribArray(a giogl.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) GenBuffers(dst []giogl.Buffer) {
	if len(dst) == 0 {
		return
	}
	names := f.scratch(len(dst))
	gl.GenBuffers(int32(len(names)), &names[0])
	for i, n := range names {
		dst[i] = giogl.Buffer{V: uint(n)}
	}
}

func (f *Functions) GenTextures(dst []giogl.Texture) {
	if len(dst) == 0 {
		return
	}
	names := f.scratch(len(dst))
	gl.GenTextures(int32(len(names)), &names[0])
	for i, n := range names {
		dst[i] = giogl.Texture{V: uint(n)}
	}
}

func (f *Functions) GenVertexArrays(dst []giogl.VertexArray) {
	if len(dst) == 0 {
		return
	}
	names := f.scratch(len(dst))
	gl.GenVertexArrays(int32(len(names)), &names[0])
	for i, n := range names {
		dst[i] = giogl.VertexArray{V: uint(n)}
	}
}

func (f *Functions) GenerateMipmap(target giogl.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (f *Functions) GetError() giogl.Enum {
	return giogl.Enum(gl.GetError())
}

func (f *Functions) GetIntegerv(pname giogl.Enum, dst []int) {
	// Large enough for every pname in a 3.3 core context.
	var p [16]int32
	gl.GetIntegerv(uint32(pname), &p[0])
	for i := range dst {
		if i == len(p) {
			break
		}
		dst[i] = int(p[i])
	}
}

func (f *Functions) GetProgrami(p giogl.Program, pname giogl.Enum) int {
	var i int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetProgramInfoLog(p giogl.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p.V), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p.V), logLength, nil, &buf[0])
	return gunsafe.GoString(buf)
}

func (f *Functions) GetShaderi(s giogl.Shader, pname giogl.Enum) int {
	var i int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetShaderInfoLog(s giogl.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s.V), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s.V), logLength, nil, &buf[0])
	return gunsafe.GoString(buf)
}

func (f *Functions) GetUniformLocation(p giogl.Program, name string) giogl.Uniform {
	return giogl.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), gl.Str(name+"\x00")))}
}

func (f *Functions) LinkProgram(p giogl.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *Functions) PixelStorei(pname giogl.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (f *Functions) PointSize(size float32) {
	gl.PointSize(size)
}

func (f *Functions) ShaderSource(s giogl.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *Functions) TexImage2D(target giogl.Enum, level int, internalFormat int, width, height int, format, ty giogl.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), bytesPtr(data))
}

func (f *Functions) TexParameteri(target, pname giogl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexSubImage2D(target giogl.Enum, level int, x, y, width, height int, format, ty giogl.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), bytesPtr(data))
}

func (f *Functions) Uniform1f(dst giogl.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform2f(dst giogl.Uniform, v0, v1 float32) {
	gl.Uniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) Uniform3f(dst giogl.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(int32(dst.V), v0, v1, v2)
}

func (f *Functions) Uniform4f(dst giogl.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) UniformMatrix4fv(dst giogl.Uniform, transpose bool, values []float32) {
	if len(values) < 16 {
		return
	}
	gl.UniformMatrix4fv(int32(dst.V), int32(len(values)/16), transpose, &values[0])
}

func (f *Functions) UseProgram(p giogl.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttrib4f(a giogl.Attrib, v0, v1, v2, v3 float32) {
	gl.VertexAttrib4f(uint32(a), v0, v1, v2, v3)
}

func (f *Functions) VertexAttribDivisor(a giogl.Attrib, divisor int) {
	gl.VertexAttribDivisor(uint32(a), uint32(divisor))
}

func (f *Functions) VertexAttribPointer(dst giogl.Attrib, size int, ty giogl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func bytesPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
