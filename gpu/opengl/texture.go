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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

type texture struct {
	id     uint32
	width  int32
	height int32
	format gpu.Format
}

// NewTexture implements the gpu.Context interface.
func (ctx *Context) NewTexture(width int32, height int32, format gpu.Format) (gpu.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(gpu.AllocationFailed, "texture size must be positive")
	}

	tex := &texture{
		width:  width,
		height: height,
		format: format,
	}

	var internal int32
	var typ uint32
	switch format {
	case gpu.FormatHDR:
		internal = gl.RGBA16F
		typ = gl.FLOAT
	default:
		internal = gl.RGBA8
		typ = gl.UNSIGNED_BYTE
	}

	// clear any previous error so that we can check the result of the
	// allocation
	_ = gl.GetError()

	gl.GenTextures(1, &tex.id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, width, height, 0, gl.RGBA, typ, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if e := gl.GetError(); e != gl.NO_ERROR {
		tex.Release()
		return nil, curated.Errorf(gpu.AllocationFailed, glError(e))
	}

	return tex, nil
}

func (tex *texture) Dimensions() (int32, int32) {
	return tex.width, tex.height
}

func (tex *texture) Format() gpu.Format {
	return tex.format
}

func (tex *texture) Release() {
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}

func glError(e uint32) string {
	switch e {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	}
	return "unknown error"
}
