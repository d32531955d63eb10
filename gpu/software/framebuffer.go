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
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

type framebuffer struct {
	ctx      *Context
	tex      *texture
	screen   bool
	released bool
}

// NewFramebuffer implements the gpu.Context interface.
func (ctx *Context) NewFramebuffer(tex gpu.Texture) (gpu.Framebuffer, error) {
	t, ok := tex.(*texture)
	if !ok || t.released {
		return nil, curated.Errorf(gpu.AllocationFailed, "framebuffer requires a live texture")
	}
	ctx.allocated++
	return &framebuffer{ctx: ctx, tex: t}, nil
}

func (fb *framebuffer) Dimensions() (int32, int32) {
	return fb.tex.Dimensions()
}

func (fb *framebuffer) Format() gpu.Format {
	return fb.tex.format
}

// Texture returns nil for the screen framebuffer.
func (fb *framebuffer) Texture() gpu.Texture {
	if fb.screen {
		return nil
	}
	return fb.tex
}

func (fb *framebuffer) Release() {
	if fb.screen || fb.released {
		return
	}
	fb.released = true
	fb.ctx.allocated--
}
