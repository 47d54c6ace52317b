// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides an in-memory gl.Functions for tests. It
// tracks object names, bindings, texture contents and the error flag
// closely enough to check the facades above it without a GPU.
package gltest

import (
	"fmt"
	"strings"

	"gioui.org/shim/gl"
)

// Texture is the storage of a texture object.
type Texture struct {
	Width, Height int
	Format        gl.Enum
	// Pix holds one byte per texel for RED/UNSIGNED_BYTE storage.
	Pix     []byte
	Params  map[gl.Enum]int
	Mipmaps int
}

type shader struct {
	ty       gl.Enum
	src      string
	compiled bool
}

type program struct {
	shaders []uint
	linked  bool
}

// Functions implements gl.Functions in memory.
type Functions struct {
	// Calls records every entry point name in call order.
	Calls []string
	// Ints answers GetIntegerv for pnames other than VIEWPORT.
	Ints map[gl.Enum][]int

	next     uint
	buffers  map[uint][]byte
	arrays   map[uint]bool
	textures map[uint]*Texture
	shaders  map[uint]*shader
	programs map[uint]*program
	errs     []gl.Enum

	boundBuffers map[gl.Enum]uint
	boundTexture uint
	activeUnit   gl.Enum
	unpackAlign  int
	enabled      map[gl.Enum]bool
	viewport     [4]int
	clearColor   [4]float32
	used         uint
	uniforms     map[int][]float32
}

func New() *Functions {
	return &Functions{
		Ints:         make(map[gl.Enum][]int),
		buffers:      make(map[uint][]byte),
		arrays:       make(map[uint]bool),
		textures:     make(map[uint]*Texture),
		shaders:      make(map[uint]*shader),
		programs:     make(map[uint]*program),
		boundBuffers: make(map[gl.Enum]uint),
		enabled:      make(map[gl.Enum]bool),
		uniforms:     make(map[int][]float32),
		activeUnit:   gl.TEXTURE0,
		unpackAlign:  4,
	}
}

// Objects returns the number of live driver objects of every kind.
func (f *Functions) Objects() int {
	return len(f.buffers) + len(f.arrays) + len(f.textures) + len(f.shaders) + len(f.programs)
}

// PushError raises an error flag as if a call had failed.
func (f *Functions) PushError(e gl.Enum) {
	f.errs = append(f.errs, e)
}

// Texture returns the storage of texture t, or nil.
func (f *Functions) Texture(t gl.Texture) *Texture {
	return f.textures[t.V]
}

// Enabled reports whether cap is enabled.
func (f *Functions) Enabled(cap gl.Enum) bool {
	return f.enabled[cap]
}

// ViewportRect returns the last viewport rectangle.
func (f *Functions) ViewportRect() [4]int {
	return f.viewport
}

// ClearedColor returns the last clear color.
func (f *Functions) ClearedColor() [4]float32 {
	return f.clearColor
}

// UniformValue returns the values last stored at location loc.
func (f *Functions) UniformValue(loc gl.Uniform) []float32 {
	return f.uniforms[loc.V]
}

// Called reports whether the entry point name was called.
func (f *Functions) Called(name string) bool {
	for _, c := range f.Calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *Functions) call(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *Functions) gen() uint {
	f.next++
	return f.next
}

func (f *Functions) ActiveTexture(texture gl.Enum) {
	f.call("ActiveTexture")
	if texture < gl.TEXTURE0 || texture >= gl.TEXTURE0+32 {
		f.PushError(gl.Enum(gl.INVALID_ENUM))
		return
	}
	f.activeUnit = texture
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.call("AttachShader")
	prog, ok := f.programs[p.V]
	if !ok || f.shaders[s.V] == nil {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	prog.shaders = append(prog.shaders, s.V)
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.call("BindBuffer")
	f.boundBuffers[target] = b.V
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.call("BindTexture")
	if t.V != 0 && f.textures[t.V] == nil {
		f.textures[t.V] = &Texture{Params: make(map[gl.Enum]int)}
	}
	f.boundTexture = t.V
}

func (f *Functions) BindVertexArray(a gl.VertexArray) {
	f.call("BindVertexArray")
}

func (f *Functions) BlendFunc(sfactor, dfactor gl.Enum) {
	f.call("BlendFunc")
}

func (f *Functions) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	f.call("BufferData")
	b := f.boundBuffers[target]
	if b == 0 {
		f.PushError(gl.Enum(gl.INVALID_OPERATION))
		return
	}
	if size < 0 {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	store := make([]byte, size)
	copy(store, data)
	f.buffers[b] = store
}

func (f *Functions) BufferSubData(target gl.Enum, offset int, data []byte) {
	f.call("BufferSubData")
	b := f.boundBuffers[target]
	store := f.buffers[b]
	if b == 0 || offset < 0 || offset+len(data) > len(store) {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	copy(store[offset:], data)
}

// BufferContents returns the storage of buffer b.
func (f *Functions) BufferContents(b gl.Buffer) []byte {
	return f.buffers[b.V]
}

func (f *Functions) Clear(mask gl.Enum) {
	f.call("Clear")
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.call("ClearColor")
	f.clearColor = [4]float32{red, green, blue, alpha}
}

// CompileShader accepts any source that declares a main function.
func (f *Functions) CompileShader(s gl.Shader) {
	f.call("CompileShader")
	sh, ok := f.shaders[s.V]
	if !ok {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	sh.compiled = strings.Contains(sh.src, "void main(")
}

func (f *Functions) CreateProgram() gl.Program {
	f.call("CreateProgram")
	n := f.gen()
	f.programs[n] = new(program)
	return gl.Program{V: n}
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	f.call("CreateShader")
	if ty != gl.VERTEX_SHADER && ty != gl.FRAGMENT_SHADER {
		f.PushError(gl.Enum(gl.INVALID_ENUM))
		return gl.Shader{}
	}
	n := f.gen()
	f.shaders[n] = &shader{ty: ty}
	return gl.Shader{V: n}
}

func (f *Functions) DeleteBuffers(bufs []gl.Buffer) {
	f.call("DeleteBuffers")
	for _, b := range bufs {
		delete(f.buffers, b.V)
	}
}

func (f *Functions) DeleteProgram(p gl.Program) {
	f.call("DeleteProgram")
	delete(f.programs, p.V)
}

func (f *Functions) DeleteShader(s gl.Shader) {
	f.call("DeleteShader")
	delete(f.shaders, s.V)
}

func (f *Functions) DeleteTextures(texs []gl.Texture) {
	f.call("DeleteTextures")
	for _, t := range texs {
		delete(f.textures, t.V)
	}
}

func (f *Functions) DeleteVertexArrays(arrs []gl.VertexArray) {
	f.call("DeleteVertexArrays")
	for _, a := range arrs {
		delete(f.arrays, a.V)
	}
}

func (f *Functions) Disable(cap gl.Enum) {
	f.call("Disable")
	f.enabled[cap] = false
}

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.call("DrawArrays")
}

func (f *Functions) DrawArraysInstanced(mode gl.Enum, first, count, instances int) {
	f.call("DrawArraysInstanced")
}

func (f *Functions) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.call("DrawElements")
}

func (f *Functions) Enable(cap gl.Enum) {
	f.call("Enable")
	f.enabled[cap] = true
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	f.call("EnableVertexAttribArray")
}

func (f *Functions) GenBuffers(dst []gl.Buffer) {
	f.call("GenBuffers")
	for i := range dst {
		n := f.gen()
		f.buffers[n] = nil
		dst[i] = gl.Buffer{V: n}
	}
}

func (f *Functions) GenTextures(dst []gl.Texture) {
	f.call("GenTextures")
	for i := range dst {
		n := f.gen()
		f.textures[n] = &Texture{Params: make(map[gl.Enum]int)}
		dst[i] = gl.Texture{V: n}
	}
}

func (f *Functions) GenVertexArrays(dst []gl.VertexArray) {
	f.call("GenVertexArrays")
	for i := range dst {
		n := f.gen()
		f.arrays[n] = true
		dst[i] = gl.VertexArray{V: n}
	}
}

func (f *Functions) GenerateMipmap(target gl.Enum) {
	f.call("GenerateMipmap")
	if t := f.textures[f.boundTexture]; t != nil {
		t.Mipmaps++
	}
}

func (f *Functions) GetError() gl.Enum {
	if len(f.errs) == 0 {
		return 0
	}
	e := f.errs[0]
	f.errs = f.errs[1:]
	return e
}

func (f *Functions) GetIntegerv(pname gl.Enum, dst []int) {
	f.call("GetIntegerv")
	var src []int
	switch pname {
	case gl.VIEWPORT:
		src = f.viewport[:]
	case gl.UNPACK_ALIGNMENT:
		src = []int{f.unpackAlign}
	case gl.CURRENT_PROGRAM:
		src = []int{int(f.used)}
	case gl.TEXTURE_BINDING_2D:
		src = []int{int(f.boundTexture)}
	case gl.ACTIVE_TEXTURE:
		src = []int{int(f.activeUnit)}
	default:
		src = f.Ints[pname]
	}
	copy(dst, src)
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	prog := f.programs[p.V]
	if prog == nil {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	}
	return 0
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	prog := f.programs[p.V]
	if prog == nil || prog.linked {
		return ""
	}
	return "error: linking with uncompiled/unspecialized shader"
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	sh := f.shaders[s.V]
	if sh == nil {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.SHADER_TYPE:
		return int(sh.ty)
	}
	return 0
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	sh := f.shaders[s.V]
	if sh == nil || sh.compiled {
		return ""
	}
	return "0:1(1): error: syntax error, unexpected end of file\n"
}

// GetUniformLocation numbers uniforms by program and name length so
// distinct names map to distinct locations in tests.
func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	prog := f.programs[p.V]
	if prog == nil || !prog.linked || name == "" {
		return gl.Uniform{V: -1}
	}
	return gl.Uniform{V: int(p.V)*100 + len(name)}
}

func (f *Functions) LinkProgram(p gl.Program) {
	f.call("LinkProgram")
	prog := f.programs[p.V]
	if prog == nil {
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	prog.linked = len(prog.shaders) > 0
	for _, s := range prog.shaders {
		if sh := f.shaders[s]; sh == nil || !sh.compiled {
			prog.linked = false
		}
	}
}

func (f *Functions) PixelStorei(pname gl.Enum, param int) {
	f.call("PixelStorei")
	if pname == gl.UNPACK_ALIGNMENT {
		switch param {
		case 1, 2, 4, 8:
			f.unpackAlign = param
		default:
			f.PushError(gl.Enum(gl.INVALID_VALUE))
		}
	}
}

func (f *Functions) PointSize(size float32) {
	f.call("PointSize")
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	f.call("ShaderSource")
	if sh := f.shaders[s.V]; sh != nil {
		sh.src = src
	}
}

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	f.call("TexImage2D")
	t := f.textures[f.boundTexture]
	switch {
	case t == nil:
		f.PushError(gl.Enum(gl.INVALID_OPERATION))
		return
	case width < 0 || height < 0 || level < 0:
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	t.Width, t.Height, t.Format = width, height, format
	t.Pix = make([]byte, width*height)
	if data != nil && format == gl.RED && ty == gl.UNSIGNED_BYTE {
		f.unpack(t, 0, 0, width, height, data)
	}
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.call("TexParameteri")
	if t := f.textures[f.boundTexture]; t != nil {
		t.Params[pname] = param
	}
}

func (f *Functions) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.call("TexSubImage2D")
	t := f.textures[f.boundTexture]
	switch {
	case t == nil:
		f.PushError(gl.Enum(gl.INVALID_OPERATION))
		return
	case x < 0 || y < 0 || width < 0 || height < 0 || x+width > t.Width || y+height > t.Height:
		f.PushError(gl.Enum(gl.INVALID_VALUE))
		return
	}
	if format == gl.RED && ty == gl.UNSIGNED_BYTE {
		f.unpack(t, x, y, width, height, data)
	}
}

// unpack copies width×height single byte texels from data, honoring
// the unpack alignment for the source row stride.
func (f *Functions) unpack(t *Texture, x, y, width, height int, data []byte) {
	stride := (width + f.unpackAlign - 1) / f.unpackAlign * f.unpackAlign
	for row := 0; row < height; row++ {
		src := row * stride
		if src+width > len(data) {
			panic(fmt.Sprintf("gltest: texture upload reads past the end of data (row %d, stride %d, len %d)", row, stride, len(data)))
		}
		dst := (y+row)*t.Width + x
		copy(t.Pix[dst:dst+width], data[src:src+width])
	}
}

func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	f.call("Uniform1f")
	f.uniforms[dst.V] = []float32{v}
}

func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.call("Uniform2f")
	f.uniforms[dst.V] = []float32{v0, v1}
}

func (f *Functions) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.call("Uniform3f")
	f.uniforms[dst.V] = []float32{v0, v1, v2}
}

func (f *Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.call("Uniform4f")
	f.uniforms[dst.V] = []float32{v0, v1, v2, v3}
}

func (f *Functions) UniformMatrix4fv(dst gl.Uniform, transpose bool, values []float32) {
	f.call("UniformMatrix4fv")
	f.uniforms[dst.V] = append([]float32(nil), values...)
}

func (f *Functions) UseProgram(p gl.Program) {
	f.call("UseProgram")
	f.used = p.V
}

func (f *Functions) VertexAttrib4f(a gl.Attrib, v0, v1, v2, v3 float32) {
	f.call("VertexAttrib4f")
}

func (f *Functions) VertexAttribDivisor(a gl.Attrib, divisor int) {
	f.call("VertexAttribDivisor")
}

func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.call("VertexAttribPointer")
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.call("Viewport")
	f.viewport = [4]int{x, y, width, height}
}

var _ gl.Functions = (*Functions)(nil)
