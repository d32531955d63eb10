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
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/gpu"
)

// Draw is a record of a single call to Quad.Render().
type Draw struct {
	Program     string
	Destination gpu.Framebuffer

	// textures sampled by the program, indexed by sampler slot. slots that
	// were bound but not sampled are not included
	Sources map[int32]gpu.Texture

	// the destination texture was also sampled during the draw
	Feedback bool
}

func (d Draw) String() string {
	return fmt.Sprintf("%s (%d sources)", d.Program, len(d.Sources))
}

type quad struct {
	ctx      *Context
	released bool
}

// NewQuad implements the gpu.Context interface.
func (ctx *Context) NewQuad() (gpu.Quad, error) {
	ctx.allocated++
	return &quad{ctx: ctx}, nil
}

// Render implements the gpu.Quad interface. Panics if the program or quad
// has been released, or if the bound framebuffer has been released.
func (q *quad) Render(prg gpu.Program) {
	p := prg.(*program)
	if q.released || p.released {
		panic(fmt.Sprintf("software: render with released resource (%s)", p.name))
	}

	dst := q.ctx.bound.(*framebuffer)
	if dst.released || dst.tex.released {
		panic(fmt.Sprintf("software: render to released framebuffer (%s)", p.name))
	}

	draw := Draw{
		Program:     p.name,
		Destination: dst,
		Sources:     make(map[int32]gpu.Texture),
	}

	sampler := func(slot int32, uv mgl32.Vec2) mgl32.Vec4 {
		if slot < 0 || slot >= maxSlots {
			return mgl32.Vec4{}
		}
		t := q.ctx.slots[slot]
		if t == nil || t.released {
			return mgl32.Vec4{}
		}
		if _, ok := draw.Sources[slot]; !ok {
			draw.Sources[slot] = t
			if t == dst.tex {
				draw.Feedback = true
			}
		}
		return t.sample(uv)
	}

	w := dst.tex.width
	h := dst.tex.height

	// results are written to a new slice so that feedback does not change
	// the values being sampled
	out := make([]mgl32.Vec4, len(dst.tex.pix))
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			uv := mgl32.Vec2{
				(float32(x) + 0.5) / float32(w),
				(float32(y) + 0.5) / float32(h),
			}
			out[y*w+x] = dst.tex.store(p.fragment(&p.uniforms, uv, sampler))
		}
	}
	dst.tex.pix = out

	if q.ctx.tracing {
		q.ctx.trace = append(q.ctx.trace, draw)
	}
}

func (q *quad) Release() {
	if q.released {
		return
	}
	q.released = true
	q.ctx.allocated--
}

// StartTrace clears the draw trace and starts recording.
func (ctx *Context) StartTrace() {
	ctx.tracing = true
	ctx.trace = nil
}

// StopTrace stops recording and returns the recorded draws.
func (ctx *Context) StopTrace() []Draw {
	ctx.tracing = false
	return ctx.trace
}
