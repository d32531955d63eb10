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
	"github.com/jetsetilly/postfx/shaders"
)

// fragment functions for every program in the shaders package. each function
// does the same work as the GLSL of the same name.
var builtinFragments = map[string]Fragment{
	shaders.NameBlit:         blit,
	shaders.NameExtractBlurX: extractBlurX,
	shaders.NameBlurYPower:   blurYPower,
	shaders.NameApplyBloom:   applyBloom,
	shaders.NameTonemap:      tonemap,
	shaders.NameVignette:     vignette,
	shaders.NameGreyScale:    greyScale,
	shaders.NameSplitTone:    splitTone,
	shaders.NameChromatic:    chromatic,
}

var lumaWeights = mgl32.Vec3{0.2126, 0.7152, 0.0722}

func luminance(c mgl32.Vec3) float32 {
	return c.Dot(lumaWeights)
}

func mix(a mgl32.Vec3, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func smoothstep(edge0 float32, edge1 float32, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func blit(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	return tex(u.Int("t_source"), uv)
}

// blur accumulates weighted samples along the step direction. the extract
// function is applied to each sample before it is weighted.
func blur(u *Uniforms, uv mgl32.Vec2, tex Sampler, step mgl32.Vec2, extract func(mgl32.Vec3) mgl32.Vec3) mgl32.Vec3 {
	weights := u.Floats("u_weights")
	sum := u.Float("u_weight_sum")
	if sum == 0 {
		return mgl32.Vec3{}
	}

	src := u.Int("t_source")
	mid := len(weights) / 2

	var acc mgl32.Vec3
	for i, w := range weights {
		offset := step.Mul(float32(i - mid))
		c := tex(src, uv.Add(offset)).Vec3()
		acc = acc.Add(extract(c).Mul(w))
	}
	return acc.Mul(1 / sum)
}

func extractBlurX(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	texel := u.Vec2("u_texel_size")
	threshold := u.Float("u_threshold")
	c := blur(u, uv, tex, mgl32.Vec2{texel[0], 0}, func(c mgl32.Vec3) mgl32.Vec3 {
		if luminance(c) < threshold {
			return mgl32.Vec3{}
		}
		return c
	})
	return c.Vec4(1)
}

func blurYPower(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	texel := u.Vec2("u_texel_size")
	c := blur(u, uv, tex, mgl32.Vec2{0, texel[1]}, func(c mgl32.Vec3) mgl32.Vec3 {
		return c
	})
	return c.Mul(u.Float("u_power")).Vec4(1)
}

func applyBloom(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	src := tex(u.Int("t_source"), uv)
	half := tex(u.Int("t_half"), uv).Vec3()
	quarter := tex(u.Int("t_quater"), uv).Vec3()
	return src.Vec3().Add(half).Add(quarter).Vec4(src[3])
}

func tonemap(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	src := tex(u.Int("t_source"), uv)
	c := src.Vec3().Mul(u.Float("u_exposure"))
	l := luminance(c)
	if l > 0 {
		w := math32.Max(u.Float("u_threshold"), 0.0001)
		lt := l * (1 + l/(w*w)) / (1 + l)
		c = c.Mul(lt / l)
	}
	for i := range c {
		c[i] = clamp(c[i], 0, 1)
	}
	return c.Vec4(clamp(src[3], 0, 1))
}

func vignette(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	src := tex(u.Int("t_source"), uv)
	d := uv.Sub(mgl32.Vec2{0.5, 0.5}).Len() * 2
	t := smoothstep(u.Float("u_inner_distance"), u.Float("u_outer_distance"), d)
	col := u.Vec4("u_color")
	return mix(src.Vec3(), col.Vec3(), t*col[3]).Vec4(src[3])
}

func greyScale(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	src := tex(u.Int("t_source"), uv)
	l := luminance(src.Vec3())
	return mix(src.Vec3(), mgl32.Vec3{l, l, l}, u.Float("u_strength")).Vec4(src[3])
}

func splitTone(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	src := tex(u.Int("t_source"), uv)
	l := luminance(src.Vec3())
	t := clamp(l+u.Float("u_balance"), 0, 1)
	shadow := u.Vec4("u_shadow_color")
	highlight := u.Vec4("u_highlight_color")
	tint := shadow.Mul(1 - t).Add(highlight.Mul(t))
	toned := mgl32.Vec3{src[0] * tint[0], src[1] * tint[1], src[2] * tint[2]}
	return mix(src.Vec3(), toned, tint[3]).Vec4(src[3])
}

func chromatic(u *Uniforms, uv mgl32.Vec2, tex Sampler) mgl32.Vec4 {
	slot := u.Int("t_source")
	texel := u.Vec2("u_texel_size")
	amount := u.Float("u_amount")
	d := uv.Sub(mgl32.Vec2{0.5, 0.5}).Mul(2 * amount)
	offset := mgl32.Vec2{d[0] * texel[0], d[1] * texel[1]}

	src := tex(slot, uv)
	r := tex(slot, uv.Add(offset))[0]
	b := tex(slot, uv.Sub(offset))[2]
	return mgl32.Vec4{r, src[1], b, src[3]}
}
