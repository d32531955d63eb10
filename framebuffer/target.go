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

package framebuffer

import (
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

// InvalidSize is returned when a target is given a zero or negative size.
const InvalidSize = "framebuffer: invalid size (%dx%d)"

// ValidateSize returns an InvalidSize error if either dimension is not
// positive.
func ValidateSize(width int32, height int32) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidSize, width, height)
	}
	return nil
}

// Target is a texture and a framebuffer attached to it.
type Target struct {
	ctx    gpu.Context
	format gpu.Format

	width  int32
	height int32

	tex gpu.Texture
	fb  gpu.Framebuffer
}

// NewTarget is the preferred method of initialisation for the Target type.
func NewTarget(ctx gpu.Context, width int32, height int32, format gpu.Format) (*Target, error) {
	tgt := &Target{
		ctx:    ctx,
		format: format,
	}
	if err := tgt.Resize(width, height); err != nil {
		return nil, err
	}
	return tgt, nil
}

// Resize releases the existing texture and framebuffer and allocates new
// ones of the specified size. The size is checked before any GPU resource is
// released or allocated.
//
// If the allocation fails the target is left in a released state and the
// error is returned.
func (tgt *Target) Resize(width int32, height int32) error {
	if err := ValidateSize(width, height); err != nil {
		return err
	}

	tgt.Release()

	tex, err := tgt.ctx.NewTexture(width, height, tgt.format)
	if err != nil {
		return err
	}

	fb, err := tgt.ctx.NewFramebuffer(tex)
	if err != nil {
		tex.Release()
		return err
	}

	tgt.tex = tex
	tgt.fb = fb
	tgt.width = width
	tgt.height = height

	return nil
}

// Release the texture and framebuffer. It is safe to call Release() on a
// released target.
func (tgt *Target) Release() {
	if tgt.fb != nil {
		tgt.fb.Release()
		tgt.fb = nil
	}
	if tgt.tex != nil {
		tgt.tex.Release()
		tgt.tex = nil
	}
	tgt.width = 0
	tgt.height = 0
}

// Allocated returns true if the target has a texture and framebuffer.
func (tgt *Target) Allocated() bool {
	return tgt.tex != nil && tgt.fb != nil
}

// BindAsTexture binds the texture to the sampler slot.
func (tgt *Target) BindAsTexture(slot int) {
	tgt.ctx.BindTexture(slot, tgt.tex)
}

// BindAsFramebuffer makes the target the draw destination.
func (tgt *Target) BindAsFramebuffer() {
	tgt.ctx.BindFramebuffer(tgt.fb)
}

// Dimensions returns the width and height of the target. A released target
// has zero dimensions.
func (tgt *Target) Dimensions() (int32, int32) {
	return tgt.width, tgt.height
}

// Format returns the pixel format of the target.
func (tgt *Target) Format() gpu.Format {
	return tgt.format
}

// Texture returns the texture of the target.
func (tgt *Target) Texture() gpu.Texture {
	return tgt.tex
}

// Framebuffer returns the framebuffer of the target.
func (tgt *Target) Framebuffer() gpu.Framebuffer {
	return tgt.fb
}
