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
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gpu"
	"github.com/jetsetilly/postfx/shaders"
)

// Bloom adds a glow around the bright parts of the frame.
//
// The source is downsampled to half and then quarter resolution. Each of
// these is blurred with a separable Gaussian blur: the horizontal pass only
// accepts pixels brighter than the threshold and the vertical pass scales
// the result by the power. The two blurred layers are then added to the
// source.
type Bloom struct {
	Base
	env Environment

	extractBlurX gpu.Program
	blurYPower   gpu.Program
	applyBloom   gpu.Program

	// private buffers. the front of each flip is the ping target and the back
	// is the pong target
	half    *framebuffer.Flip
	quarter *framebuffer.Flip

	threshold float32

	// the power is stored halved
	power float32
}

// NewBloom is a Factory for the Bloom effect.
func NewBloom(env Environment) (*Bloom, error) {
	if err := framebuffer.ValidateSize(env.Width, env.Height); err != nil {
		return nil, err
	}

	bl := &Bloom{env: env}

	var err error
	defer func() {
		if err != nil {
			bl.Release()
		}
	}()

	bl.extractBlurX, err = env.Ctx.NewProgram(shaders.ExtractBlurX())
	if err != nil {
		return nil, err
	}
	bl.blurYPower, err = env.Ctx.NewProgram(shaders.BlurYPower())
	if err != nil {
		return nil, err
	}
	bl.applyBloom, err = env.Ctx.NewProgram(shaders.ApplyBloom())
	if err != nil {
		return nil, err
	}

	weights := BlurCoefficients(shaders.BlurTaps)
	var sum float32
	for _, w := range weights {
		sum += w
	}
	for _, prg := range []gpu.Program{bl.extractBlurX, bl.blurYPower} {
		prg.SetInt("t_source", 0)
		prg.SetFloats("u_weights", weights)
		prg.SetFloat("u_weight_sum", sum)
	}

	bl.applyBloom.SetInt("t_source", 0)
	bl.applyBloom.SetInt("t_half", 1)
	bl.applyBloom.SetInt("t_quater", 2)

	hw, hh := halfSize(env.Width, env.Height)
	bl.half, err = framebuffer.NewFlip(env.Ctx, hw, hh, gpu.FormatHDR)
	if err != nil {
		return nil, err
	}
	qw, qh := quarterSize(env.Width, env.Height)
	bl.quarter, err = framebuffer.NewFlip(env.Ctx, qw, qh, gpu.FormatHDR)
	if err != nil {
		return nil, err
	}

	bl.SetThreshold(1.0)
	bl.SetPower(1.0)

	return bl, nil
}

func halfSize(width int32, height int32) (int32, int32) {
	return (width + 1) / 2, (height + 1) / 2
}

func quarterSize(width int32, height int32) (int32, int32) {
	return (width + 3) / 4, (height + 3) / 4
}

// Kind implements the Effect interface.
func (bl *Bloom) Kind() Kind {
	return KindBloom
}

// Resize implements the Effect interface.
func (bl *Bloom) Resize(width int32, height int32) error {
	if err := framebuffer.ValidateSize(width, height); err != nil {
		return err
	}
	if bl.half != nil {
		if err := bl.half.Resize(halfSize(width, height)); err != nil {
			return err
		}
	}
	if bl.quarter != nil {
		if err := bl.quarter.Resize(quarterSize(width, height)); err != nil {
			return err
		}
	}
	bl.env.Width = width
	bl.env.Height = height
	return nil
}

// Half returns the half resolution buffer.
func (bl *Bloom) Half() *framebuffer.Flip {
	return bl.half
}

// Quarter returns the quarter resolution buffer.
func (bl *Bloom) Quarter() *framebuffer.Flip {
	return bl.quarter
}

// Apply implements the Effect interface.
func (bl *Bloom) Apply(b framebuffer.Binding) {
	ctx := bl.env.Ctx

	// downsample source to the ping target of both buffers
	bl.half.Front().BindAsFramebuffer()
	ctx.BindTexture(0, b.Source)
	bl.env.Quad.Render(bl.env.Blit)

	bl.quarter.Front().BindAsFramebuffer()
	bl.half.Front().BindAsTexture(0)
	bl.env.Quad.Render(bl.env.Blit)

	bl.blur(bl.half)
	bl.blur(bl.quarter)

	// composite
	b.Bind(ctx, 0)
	bl.half.Front().BindAsTexture(1)
	bl.quarter.Front().BindAsTexture(2)
	bl.env.Quad.Render(bl.applyBloom)
}

// blur the ping target of the buffer. the result is in the ping target.
func (bl *Bloom) blur(flp *framebuffer.Flip) {
	ctx := bl.env.Ctx

	w, h := flp.Dimensions()
	texel := mgl32.Vec2{1.0 / float32(w), 1.0 / float32(h)}
	bl.extractBlurX.SetVec2("u_texel_size", texel)
	bl.blurYPower.SetVec2("u_texel_size", texel)

	// ping to pong
	flp.Process(func() {
		ctx.BindTexture(0, flp.Texture())
		bl.env.Quad.Render(bl.extractBlurX)
	})

	// pong back to ping
	flp.Process(func() {
		ctx.BindTexture(0, flp.Texture())
		bl.env.Quad.Render(bl.blurYPower)
	})
}

// Release implements the Effect interface. The threshold and power of a
// released bloom can still be set but they have no effect.
func (bl *Bloom) Release() {
	for _, prg := range []*gpu.Program{&bl.extractBlurX, &bl.blurYPower, &bl.applyBloom} {
		if *prg != nil {
			(*prg).Release()
			*prg = nil
		}
	}
	if bl.half != nil {
		bl.half.Release()
		bl.half = nil
	}
	if bl.quarter != nil {
		bl.quarter.Release()
		bl.quarter = nil
	}
}

// Threshold is the luminance below which a pixel does not contribute to the
// bloom.
func (bl *Bloom) Threshold() float32 {
	return bl.threshold
}

// SetThreshold sets the luminance threshold.
func (bl *Bloom) SetThreshold(v float32) {
	bl.threshold = v
	if bl.extractBlurX != nil {
		bl.extractBlurX.SetFloat("u_threshold", v)
	}
}

// Power is the strength of the bloom. The value returned is the value given
// to SetPower().
func (bl *Bloom) Power() float32 {
	return bl.power * 2
}

// SetPower sets the strength of the bloom. The value is halved before it is
// given to the shader.
func (bl *Bloom) SetPower(v float32) {
	bl.power = v * 0.5
	if bl.blurYPower != nil {
		bl.blurYPower.SetFloat("u_power", bl.power)
	}
}

// BlurCoefficients returns count weights of a symmetric Gaussian kernel. The
// standard deviation is a third of the distance from the centre to the edge
// of the kernel. The weights are not normalised.
func BlurCoefficients(count int) []float32 {
	mid := count / 2
	stdev := float32(mid) / 3.0

	coefficients := make([]float32, count)
	for x := 0; x <= mid; x++ {
		f := gaussian(float32(mid-x), stdev)
		coefficients[x] = f
		coefficients[count-1-x] = f
	}

	return coefficients
}

func gaussian(distance float32, stdev float32) float32 {
	preamble := 1.0 / math32.Sqrt(2.0*math32.Pi*stdev*stdev)
	exponent := -(distance * distance) / (2.0 * stdev * stdev)
	return preamble * math32.Exp(exponent)
}
