// This file is part of Postfx.
//
// Postfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Postfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Postfx.  If not, see <https://www.gnu.org/licenses/>.

package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
	"github.com/jetsetilly/postfx/logger"
)

// attribute locations used by the full-screen quad.
const (
	attribVert = 0
	attribUV   = 1
)

type program struct {
	name     string
	handle   uint32
	uniforms map[string]int32
}

// NewProgram implements the gpu.Context interface. Compile and link errors
// are returned to the caller.
func (ctx *Context) NewProgram(src gpu.ShaderSource) (gpu.Program, error) {
	prg := &program{
		name:     src.Name,
		uniforms: make(map[string]int32),
	}

	vertHandle, err := compileShader(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return nil, curated.Errorf(gpu.CompileFailed, src.Name, err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return nil, curated.Errorf(gpu.CompileFailed, src.Name, err)
	}
	defer gl.DeleteShader(fragHandle)

	prg.handle = gl.CreateProgram()
	gl.AttachShader(prg.handle, vertHandle)
	gl.AttachShader(prg.handle, fragHandle)
	gl.BindAttribLocation(prg.handle, attribVert, gl.Str("in_vert\x00"))
	gl.BindAttribLocation(prg.handle, attribUV, gl.Str("in_uv\x00"))
	gl.BindFragDataLocation(prg.handle, 0, gl.Str("out_color\x00"))
	gl.LinkProgram(prg.handle)

	var status int32
	gl.GetProgramiv(prg.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prg.handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prg.handle, logLength, nil, gl.Str(log))
		prg.Release()
		return nil, curated.Errorf(gpu.CompileFailed, src.Name, strings.TrimRight(log, "\x00"))
	}

	logger.Logf(logger.Allow, "opengl", "compiled %s program", src.Name)

	return prg, nil
}

func compileShader(typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// the log length includes the NULL character
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, curated.Errorf("%s", strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}

// location of named uniform. locations are cached.
func (prg *program) location(name string) int32 {
	if loc, ok := prg.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(prg.handle, gl.Str(name+"\x00"))
	prg.uniforms[name] = loc
	return loc
}

func (prg *program) Name() string {
	return prg.name
}

func (prg *program) SetInt(name string, v int32) {
	gl.UseProgram(prg.handle)
	gl.Uniform1i(prg.location(name), v)
}

func (prg *program) SetFloat(name string, v float32) {
	gl.UseProgram(prg.handle)
	gl.Uniform1f(prg.location(name), v)
}

func (prg *program) SetFloats(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.UseProgram(prg.handle)
	gl.Uniform1fv(prg.location(name), int32(len(v)), &v[0])
}

func (prg *program) SetVec2(name string, v mgl32.Vec2) {
	gl.UseProgram(prg.handle)
	gl.Uniform2f(prg.location(name), v[0], v[1])
}

func (prg *program) SetVec4(name string, v mgl32.Vec4) {
	gl.UseProgram(prg.handle)
	gl.Uniform4f(prg.location(name), v[0], v[1], v[2], v[3])
}

func (prg *program) Release() {
	if prg.handle != 0 {
		gl.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}
