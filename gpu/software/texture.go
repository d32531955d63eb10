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
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

// largest value that can be represented by a 16 bit float.
const maxHalfFloat = 65504.0

// sampling positions this close to a texel centre are snapped to the centre.
// this means a same-sized copy reads exactly one texel.
const snap = 1.0 / 4096.0

type texture struct {
	ctx      *Context
	width    int32
	height   int32
	format   gpu.Format
	pix      []mgl32.Vec4
	released bool
}

func newTexture(ctx *Context, width int32, height int32, format gpu.Format) *texture {
	return &texture{
		ctx:    ctx,
		width:  width,
		height: height,
		format: format,
		pix:    make([]mgl32.Vec4, width*height),
	}
}

// NewTexture implements the gpu.Context interface.
func (ctx *Context) NewTexture(width int32, height int32, format gpu.Format) (gpu.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(gpu.AllocationFailed, "texture size must be positive")
	}
	ctx.allocated++
	return newTexture(ctx, width, height, format), nil
}

func (tex *texture) Dimensions() (int32, int32) {
	return tex.width, tex.height
}

func (tex *texture) Format() gpu.Format {
	return tex.format
}

func (tex *texture) Release() {
	if tex.released {
		return
	}
	tex.released = true
	tex.pix = nil
	tex.ctx.allocated--
}

// store a colour value with the precision of the texture format.
func (tex *texture) store(c mgl32.Vec4) mgl32.Vec4 {
	switch tex.format {
	case gpu.FormatHDR:
		for i := range c {
			c[i] = clamp(c[i], -maxHalfFloat, maxHalfFloat)
		}
	default:
		for i := range c {
			c[i] = math32.Floor(clamp(c[i], 0.0, 1.0)*255.0+0.5) / 255.0
		}
	}
	return c
}

func (tex *texture) texel(x int32, y int32) mgl32.Vec4 {
	x = clampi(x, 0, tex.width-1)
	y = clampi(y, 0, tex.height-1)
	return tex.pix[y*tex.width+x]
}

// sample texture at the texture coordinate using bilinear filtering.
func (tex *texture) sample(uv mgl32.Vec2) mgl32.Vec4 {
	fx := uv[0]*float32(tex.width) - 0.5
	fy := uv[1]*float32(tex.height) - 0.5

	x0, tx := snapped(fx)
	y0, ty := snapped(fy)

	if tx == 0 && ty == 0 {
		return tex.texel(x0, y0)
	}

	c00 := tex.texel(x0, y0)
	c10 := tex.texel(x0+1, y0)
	c01 := tex.texel(x0, y0+1)
	c11 := tex.texel(x0+1, y0+1)

	bottom := c00.Mul(1 - tx).Add(c10.Mul(tx))
	top := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return bottom.Mul(1 - ty).Add(top.Mul(ty))
}

// snapped returns the integer and fractional part of a texel coordinate.
func snapped(f float32) (int32, float32) {
	i := math32.Floor(f)
	t := f - i
	if t < snap {
		t = 0
	} else if t > 1-snap {
		t = 0
		i++
	}
	return int32(i), t
}

func clamp(v float32, lo float32, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

func clampi(v int32, lo int32, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
