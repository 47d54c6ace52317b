// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"
	"strings"

	"gioui.org/shim/gl"
)

// CompileResult is the outcome of compiling a shader or linking a
// program.
type CompileResult struct {
	OK bool
	// Log is the trimmed info log. Drivers may report warnings even
	// when OK is true.
	Log string
}

// CreateShader creates a shader object of type ty, gl.VERTEX_SHADER or
// gl.FRAGMENT_SHADER. It returns the zero Shader on failure.
func (d *Device) CreateShader(ty gl.Enum) gl.Shader {
	s := d.funcs.CreateShader(ty)
	d.track(KindShader, s.V)
	return s
}

func (d *Device) ShaderSource(s gl.Shader, src string) error {
	if err := d.checkLive(KindShader, s.V); err != nil {
		return err
	}
	d.funcs.ShaderSource(s, src)
	return nil
}

// CompileShader compiles s and reports its compile status and info log.
func (d *Device) CompileShader(s gl.Shader) (CompileResult, error) {
	if err := d.checkLive(KindShader, s.V); err != nil {
		return CompileResult{}, err
	}
	d.funcs.CompileShader(s)
	res := CompileResult{
		OK:  d.funcs.GetShaderi(s, gl.COMPILE_STATUS) == gl.TRUE,
		Log: strings.TrimSpace(d.funcs.GetShaderInfoLog(s)),
	}
	if d.debug != nil {
		if res.OK {
			d.debug.Printf("shader %d compiled successfully", s.V)
		} else {
			d.debug.Printf("ERROR::SHADER::COMPILATION_FAILED\n%s", res.Log)
		}
	}
	return res, nil
}

// GetShaderi queries a shader parameter such as gl.COMPILE_STATUS.
func (d *Device) GetShaderi(s gl.Shader, pname gl.Enum) (int, error) {
	if err := d.checkLive(KindShader, s.V); err != nil {
		return 0, err
	}
	return d.funcs.GetShaderi(s, pname), nil
}

func (d *Device) DeleteShader(s gl.Shader) error {
	if s.V == 0 {
		return nil
	}
	if err := d.check(KindShader, s.V); err != nil {
		return err
	}
	d.funcs.DeleteShader(s)
	d.forget(KindShader, s.V)
	return nil
}

func (d *Device) CreateProgram() gl.Program {
	p := d.funcs.CreateProgram()
	d.track(KindProgram, p.V)
	return p
}

func (d *Device) AttachShader(p gl.Program, s gl.Shader) error {
	if err := d.checkLive(KindProgram, p.V); err != nil {
		return err
	}
	if err := d.checkLive(KindShader, s.V); err != nil {
		return err
	}
	d.funcs.AttachShader(p, s)
	return nil
}

// LinkProgram links p and reports its link status and info log.
func (d *Device) LinkProgram(p gl.Program) (CompileResult, error) {
	if err := d.checkLive(KindProgram, p.V); err != nil {
		return CompileResult{}, err
	}
	d.funcs.LinkProgram(p)
	return CompileResult{
		OK:  d.funcs.GetProgrami(p, gl.LINK_STATUS) == gl.TRUE,
		Log: strings.TrimSpace(d.funcs.GetProgramInfoLog(p)),
	}, nil
}

// UseProgram installs p for subsequent draws. The zero Program
// uninstalls the current one.
func (d *Device) UseProgram(p gl.Program) error {
	if err := d.check(KindProgram, p.V); err != nil {
		return err
	}
	d.funcs.UseProgram(p)
	return nil
}

func (d *Device) DeleteProgram(p gl.Program) error {
	if p.V == 0 {
		return nil
	}
	if err := d.check(KindProgram, p.V); err != nil {
		return err
	}
	d.funcs.DeleteProgram(p)
	d.forget(KindProgram, p.V)
	return nil
}

// GetUniformLocation returns the location of the named uniform. The
// location is invalid, see gl.Uniform.Valid, if p has no active uniform
// of that name.
func (d *Device) GetUniformLocation(p gl.Program, name string) (gl.Uniform, error) {
	if err := d.checkLive(KindProgram, p.V); err != nil {
		return gl.Uniform{V: -1}, err
	}
	return d.funcs.GetUniformLocation(p, name), nil
}

// NewProgram compiles a vertex and a fragment shader and links them
// into a program. The shader objects are deleted before NewProgram
// returns.
func (d *Device) NewProgram(vsSrc, fsSrc string) (gl.Program, error) {
	vs, err := d.newShader(gl.VERTEX_SHADER, vsSrc)
	if err != nil {
		return gl.Program{}, err
	}
	defer d.DeleteShader(vs)
	fs, err := d.newShader(gl.FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return gl.Program{}, err
	}
	defer d.DeleteShader(fs)
	prog := d.CreateProgram()
	if !prog.Valid() {
		return gl.Program{}, errors.New("glCreateProgram failed")
	}
	for _, sh := range []gl.Shader{vs, fs} {
		if err := d.AttachShader(prog, sh); err != nil {
			d.DeleteProgram(prog)
			return gl.Program{}, err
		}
	}
	res, err := d.LinkProgram(prog)
	if err != nil {
		d.DeleteProgram(prog)
		return gl.Program{}, err
	}
	if !res.OK {
		d.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", res.Log)
	}
	return prog, nil
}

func (d *Device) newShader(ty gl.Enum, src string) (gl.Shader, error) {
	sh := d.CreateShader(ty)
	if !sh.Valid() {
		return gl.Shader{}, errors.New("glCreateShader failed")
	}
	if err := d.ShaderSource(sh, src); err != nil {
		d.DeleteShader(sh)
		return gl.Shader{}, err
	}
	res, err := d.CompileShader(sh)
	if err != nil {
		d.DeleteShader(sh)
		return gl.Shader{}, err
	}
	if !res.OK {
		d.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compilation failed: %s", res.Log)
	}
	return sh, nil
}

func (d *Device) Uniform1f(u gl.Uniform, v float32) {
	d.funcs.Uniform1f(u, v)
}

func (d *Device) Uniform2f(u gl.Uniform, v0, v1 float32) {
	d.funcs.Uniform2f(u, v0, v1)
}

func (d *Device) Uniform3f(u gl.Uniform, v0, v1, v2 float32) {
	d.funcs.Uniform3f(u, v0, v1, v2)
}

func (d *Device) Uniform4f(u gl.Uniform, v0, v1, v2, v3 float32) {
	d.funcs.Uniform4f(u, v0, v1, v2, v3)
}

// UniformMatrix4fv uploads one or more column major 4×4 matrices. The
// length of values must be a multiple of 16.
func (d *Device) UniformMatrix4fv(u gl.Uniform, transpose bool, values []float32) {
	if len(values)%16 != 0 {
		panic(fmt.Errorf("gpu: %d matrix values is not a multiple of 16", len(values)))
	}
	if len(values) == 0 {
		return
	}
	d.funcs.UniformMatrix4fv(u, transpose, values)
}
