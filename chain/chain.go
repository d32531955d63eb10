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

package chain

import (
	"fmt"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gpu"
	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/shaders"
)

// UnknownEffect is the pattern of the error returned by RemoveEffect() when
// the effect is not in the chain.
const UnknownEffect = "chain: effect is not in chain (%s)"

// Chain applies a list of effects to a frame.
type Chain struct {
	ctx gpu.Context

	width  int32
	height int32

	// a failed resize could not be undone. the buffers and effects may not
	// match the width and height fields
	stale bool

	effects []effects.Effect

	ldr *framebuffer.Flip

	// nil when HDR is not enabled
	hdr *framebuffer.Flip

	quad gpu.Quad
	blit gpu.Program
}

// NewChain is the preferred method of initialisation for the Chain type.
func NewChain(ctx gpu.Context, width int32, height int32, hdr bool) (*Chain, error) {
	if err := framebuffer.ValidateSize(width, height); err != nil {
		return nil, err
	}

	c := &Chain{
		ctx:    ctx,
		width:  width,
		height: height,
	}

	var err error
	defer func() {
		if err != nil {
			c.Release()
		}
	}()

	c.quad, err = ctx.NewQuad()
	if err != nil {
		return nil, err
	}

	c.blit, err = ctx.NewProgram(shaders.Blit())
	if err != nil {
		return nil, err
	}
	c.blit.SetInt("t_source", 0)

	c.ldr, err = framebuffer.NewFlip(ctx, width, height, gpu.FormatLDR)
	if err != nil {
		return nil, err
	}

	if hdr {
		err = c.SetHDR(true)
		if err != nil {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "chain", "created (%dx%d)", width, height)

	return c, nil
}

func (c *Chain) String() string {
	s := fmt.Sprintf("%dx%d", c.width, c.height)
	if c.hdr != nil {
		s = fmt.Sprintf("%s hdr", s)
	}
	for _, e := range c.effects {
		if e.Enabled() {
			s = fmt.Sprintf("%s, %s", s, e.Kind())
		} else {
			s = fmt.Sprintf("%s, (%s)", s, e.Kind())
		}
	}
	return s
}

// environment for new effects.
func (c *Chain) environment() effects.Environment {
	return effects.Environment{
		Ctx:    c.ctx,
		Quad:   c.quad,
		Blit:   c.blit,
		Width:  c.width,
		Height: c.height,
	}
}

// Add creates a new effect with the factory and appends it to the end of the
// chain. The effect is returned so that its parameters can be set.
func Add[T effects.Effect](c *Chain, factory effects.Factory[T]) (T, error) {
	e, err := factory(c.environment())
	if err != nil {
		var none T
		return none, err
	}
	c.effects = append(c.effects, e)
	logger.Logf(logger.Allow, "chain", "added %s effect", e.Kind())
	return e, nil
}

// RemoveEffect removes the effect from the chain and releases it.
func (c *Chain) RemoveEffect(e effects.Effect) error {
	for i := range c.effects {
		if c.effects[i] == e {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			e.Release()
			logger.Logf(logger.Allow, "chain", "removed %s effect", e.Kind())
			return nil
		}
	}
	return curated.Errorf(UnknownEffect, e.Kind())
}

// ResetEffects removes and releases every effect in the chain.
func (c *Chain) ResetEffects() {
	for _, e := range c.effects {
		e.Release()
	}
	c.effects = c.effects[:0]
}

// Effect returns the first effect of the kind. Returns false if there is no
// effect of that kind in the chain.
func (c *Chain) Effect(kind effects.Kind) (effects.Effect, bool) {
	for _, e := range c.effects {
		if e.Kind() == kind {
			return e, true
		}
	}
	return nil, false
}

// Effects returns a copy of the list of effects in the order they are
// applied.
func (c *Chain) Effects() []effects.Effect {
	l := make([]effects.Effect, len(c.effects))
	copy(l, c.effects)
	return l
}

// ApplyEffects applies every enabled effect to the source texture. The final
// result is written to the destination framebuffer. If destination is nil
// then the result is written to the screen.
func (c *Chain) ApplyEffects(source gpu.Texture, destination gpu.Framebuffer) {
	if destination == nil {
		destination = c.ctx.Screen()
	}

	c.ctx.EnableOnly()

	first := -1
	last := -1
	for i, e := range c.effects {
		if e.Enabled() {
			if first == -1 {
				first = i
			}
			last = i
		}
	}

	if first == -1 {
		framebuffer.Binding{Source: source, Destination: destination}.Bind(c.ctx, 0)
		c.quad.Render(c.blit)
		return
	}

	isHdr := c.hdr != nil

	for i, e := range c.effects {
		if !e.Enabled() {
			continue
		}

		buf := c.ldr
		if isHdr {
			buf = c.hdr
		}
		buf.Flip()

		b := framebuffer.Binding{
			Source:      buf.Texture(),
			Destination: buf.Framebuffer(),
		}

		if e.Tonemapping() {
			b.Destination = c.ldr.Framebuffer()
		}
		if i == first {
			b.Source = source
		}
		if i == last {
			b.Destination = destination
		}

		e.Apply(b)

		if e.Tonemapping() {
			isHdr = false
		}
	}
}

// Resize the chain's buffers and every effect. Resizing to the current size
// does nothing.
//
// If any buffer or effect fails to resize then everything is returned to the
// previous size and the error is returned.
func (c *Chain) Resize(width int32, height int32) error {
	if err := framebuffer.ValidateSize(width, height); err != nil {
		return err
	}
	if !c.stale && width == c.width && height == c.height {
		return nil
	}

	if err := c.resize(width, height); err != nil {
		if rerr := c.resize(c.width, c.height); rerr != nil {
			c.stale = true
			logger.Logf(logger.Allow, "chain", "cannot restore size (%dx%d): %v", c.width, c.height, rerr)
		} else {
			c.stale = false
		}
		return err
	}

	c.width = width
	c.height = height
	c.stale = false
	logger.Logf(logger.Allow, "chain", "resized (%dx%d)", width, height)

	return nil
}

// resize every buffer and effect. a failure does not stop the remaining
// owners being resized. the first error is returned.
func (c *Chain) resize(width int32, height int32) error {
	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}

	if err := c.ldr.Resize(width, height); err != nil {
		keep(err)
	}
	if c.hdr != nil {
		if err := c.hdr.Resize(width, height); err != nil {
			keep(err)
		}
	}
	for _, e := range c.effects {
		if err := e.Resize(width, height); err != nil {
			keep(err)
		}
	}

	return first
}

// Dimensions returns the current frame size.
func (c *Chain) Dimensions() (int32, int32) {
	return c.width, c.height
}

// SetHDR enables or disables HDR processing. The HDR buffer is allocated when
// HDR is enabled and released when it is disabled.
func (c *Chain) SetHDR(hdr bool) error {
	if hdr == (c.hdr != nil) {
		return nil
	}

	if hdr {
		flp, err := framebuffer.NewFlip(c.ctx, c.width, c.height, gpu.FormatHDR)
		if err != nil {
			return err
		}
		c.hdr = flp
		logger.Log(logger.Allow, "chain", "hdr enabled")
	} else {
		c.hdr.Release()
		c.hdr = nil
		logger.Log(logger.Allow, "chain", "hdr disabled")
	}

	return nil
}

// HDR returns true if HDR processing is enabled.
func (c *Chain) HDR() bool {
	return c.hdr != nil
}

// Release every effect and all GPU resources owned by the chain. The chain
// should not be used after Release().
func (c *Chain) Release() {
	c.ResetEffects()
	if c.ldr != nil {
		c.ldr.Release()
		c.ldr = nil
	}
	if c.hdr != nil {
		c.hdr.Release()
		c.hdr = nil
	}
	if c.blit != nil {
		c.blit.Release()
		c.blit = nil
	}
	if c.quad != nil {
		c.quad.Release()
		c.quad = nil
	}
}
