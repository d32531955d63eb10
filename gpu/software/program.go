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

package software

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

// Sampler returns the colour of the texture bound to a sampler slot at the
// texture coordinate. An empty slot returns zero for all channels.
type Sampler func(slot int32, uv mgl32.Vec2) mgl32.Vec4

// Fragment is the software equivalent of a fragment shader. It is called once
// for every pixel of the destination with the texture coordinate of the
// centre of the pixel.
type Fragment func(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4

// Uniforms holds the uniform values of a program. Values that have not been
// set are zero.
type Uniforms struct {
	ints   map[string]int32
	floats map[string]float32
	arrays map[string][]float32
	vec2s  map[string]mgl32.Vec2
	vec4s  map[string]mgl32.Vec4
}

func newUniforms() Uniforms {
	return Uniforms{
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		arrays: make(map[string][]float32),
		vec2s:  make(map[string]mgl32.Vec2),
		vec4s:  make(map[string]mgl32.Vec4),
	}
}

// Int returns the value of the named integer or sampler uniform.
func (u *Uniforms) Int(name string) int32 {
	return u.ints[name]
}

// Float returns the value of the named float uniform.
func (u *Uniforms) Float(name string) float32 {
	return u.floats[name]
}

// Floats returns the value of the named float array uniform.
func (u *Uniforms) Floats(name string) []float32 {
	return u.arrays[name]
}

// Vec2 returns the value of the named vec2 uniform.
func (u *Uniforms) Vec2(name string) mgl32.Vec2 {
	return u.vec2s[name]
}

// Vec4 returns the value of the named vec4 uniform.
func (u *Uniforms) Vec4(name string) mgl32.Vec4 {
	return u.vec4s[name]
}

type program struct {
	ctx      *Context
	name     string
	fragment Fragment
	uniforms Uniforms
	released bool
}

// NewProgram implements the gpu.Context interface. The name of the shader
// source must match a registered fragment function.
func (ctx *Context) NewProgram(src gpu.ShaderSource) (gpu.Program, error) {
	f, ok := ctx.fragments[src.Name]
	if !ok {
		return nil, curated.Errorf(gpu.CompileFailed, src.Name, "no fragment function")
	}
	ctx.allocated++
	prg := &program{
		ctx:      ctx,
		name:     src.Name,
		fragment: f,
		uniforms: newUniforms(),
	}
	ctx.programs[src.Name] = prg
	return prg, nil
}

// Program returns the most recently created program with the name. Returns
// nil if no program of that name has been created or if it has been
// released.
func (ctx *Context) Program(name string) gpu.Program {
	prg, ok := ctx.programs[name]
	if !ok || prg.released {
		return nil
	}
	return prg
}

// Uniform returns the uniform values of a program created by a software
// context.
func Uniform(prg gpu.Program) *Uniforms {
	return &prg.(*program).uniforms
}

func (prg *program) Name() string {
	return prg.name
}

func (prg *program) SetInt(name string, v int32) {
	prg.uniforms.ints[name] = v
}

func (prg *program) SetFloat(name string, v float32) {
	prg.uniforms.floats[name] = v
}

func (prg *program) SetFloats(name string, v []float32) {
	prg.uniforms.arrays[name] = append([]float32{}, v...)
}

func (prg *program) SetVec2(name string, v mgl32.Vec2) {
	prg.uniforms.vec2s[name] = v
}

func (prg *program) SetVec4(name string, v mgl32.Vec4) {
	prg.uniforms.vec4s[name] = v
}

func (prg *program) Release() {
	if prg.released {
		return
	}
	prg.released = true
	prg.ctx.allocated--
}
