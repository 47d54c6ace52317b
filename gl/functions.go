// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the table of OpenGL entry points driven by the gpu
// facade. Implementations must be called from the thread that owns the
// current context.
//
// The Gen and Delete methods keep the batch form of the C API: they
// fill or consume a slice of names.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	BlendFunc(sfactor, dfactor Enum)
	// BufferData allocates size bytes for the bound buffer and copies
	// data into it when data is not nil.
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	DeleteBuffers(bufs []Buffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTextures(texs []Texture)
	DeleteVertexArrays(arrs []VertexArray)
	Disable(cap Enum)
	DrawArrays(mode Enum, first, count int)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	GenBuffers(dst []Buffer)
	GenTextures(dst []Texture)
	GenVertexArrays(dst []VertexArray)
	GenerateMipmap(target Enum)
	GetError() Enum
	GetIntegerv(pname Enum, dst []int)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int)
	PointSize(size float32)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int, internalFormat int, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte)
	Uniform1f(dst Uniform, v float32)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	// UniformMatrix4fv uploads len(values)/16 matrices.
	UniformMatrix4fv(dst Uniform, transpose bool, values []float32)
	UseProgram(p Program)
	VertexAttrib4f(a Attrib, v0, v1, v2, v3 float32)
	VertexAttribDivisor(a Attrib, divisor int)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
