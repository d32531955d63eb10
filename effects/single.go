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

package effects

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gpu"
)

// single is the shared implementation of effects that have one shader
// program and draw in one pass.
type single struct {
	Base
	env Environment
	prg gpu.Program
}

func newSingle(env Environment, src gpu.ShaderSource) (single, error) {
	prg, err := env.Ctx.NewProgram(src)
	if err != nil {
		return single{}, err
	}
	prg.SetInt("t_source", 0)
	return single{env: env, prg: prg}, nil
}

// Apply implements the Effect interface.
func (s *single) Apply(b framebuffer.Binding) {
	b.Bind(s.env.Ctx, 0)
	s.env.Quad.Render(s.prg)
}

// Release implements the Effect interface. The settings of a released
// effect can still be changed but they have no effect.
func (s *single) Release() {
	if s.prg != nil {
		s.prg.Release()
		s.prg = nil
	}
}

func (s *single) setFloat(name string, v float32) {
	if s.prg != nil {
		s.prg.SetFloat(name, v)
	}
}

func (s *single) setVec2(name string, v mgl32.Vec2) {
	if s.prg != nil {
		s.prg.SetVec2(name, v)
	}
}

func (s *single) setVec4(name string, v mgl32.Vec4) {
	if s.prg != nil {
		s.prg.SetVec4(name, v)
	}
}
