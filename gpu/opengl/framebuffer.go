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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

type framebuffer struct {
	fbo uint32
	tex *texture
}

// NewFramebuffer implements the gpu.Context interface. The framebuffer does
// not own the texture and releasing the framebuffer does not release the
// texture.
func (ctx *Context) NewFramebuffer(tex gpu.Texture) (gpu.Framebuffer, error) {
	t, ok := tex.(*texture)
	if !ok || t.id == 0 {
		return nil, curated.Errorf(gpu.AllocationFailed, "framebuffer requires a live texture")
	}

	fb := &framebuffer{tex: t}

	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.id, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)

	// restore previous binding
	if ctx.bound != nil {
		ctx.BindFramebuffer(ctx.bound)
	}

	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Release()
		return nil, curated.Errorf(gpu.AllocationFailed, fmt.Sprintf("incomplete framebuffer (%#x)", status))
	}

	return fb, nil
}

func (fb *framebuffer) Dimensions() (int32, int32) {
	return fb.tex.Dimensions()
}

func (fb *framebuffer) Format() gpu.Format {
	return fb.tex.format
}

func (fb *framebuffer) Texture() gpu.Texture {
	return fb.tex
}

func (fb *framebuffer) Release() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
}
