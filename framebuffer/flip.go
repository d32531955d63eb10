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
	"github.com/jetsetilly/postfx/gpu"
)

// Flip provides a two paged framebuffer.
type Flip struct {
	flip    [2]*Target
	flipIdx int
}

// NewFlip is the preferred method of initialisation of the Flip type.
func NewFlip(ctx gpu.Context, width int32, height int32, format gpu.Format) (*Flip, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	fb := &Flip{}
	for i := range fb.flip {
		var err error
		fb.flip[i], err = NewTarget(ctx, width, height, format)
		if err != nil {
			fb.Release()
			return nil, err
		}
	}

	return fb, nil
}

// Release both targets. It is safe to call Release() more than once.
func (fb *Flip) Release() {
	for _, t := range fb.flip {
		if t != nil {
			t.Release()
		}
	}
}

// Resize both targets. The size is checked before either target is changed.
func (fb *Flip) Resize(width int32, height int32) error {
	if err := ValidateSize(width, height); err != nil {
		return err
	}
	for _, t := range fb.flip {
		if err := t.Resize(width, height); err != nil {
			fb.Release()
			return err
		}
	}
	return nil
}

// Flip swaps the front and back targets.
func (fb *Flip) Flip() {
	fb.flipIdx++
	if fb.flipIdx >= len(fb.flip) {
		fb.flipIdx = 0
	}
}

// Front returns the target holding the result of the most recent draw.
func (fb *Flip) Front() *Target {
	return fb.flip[fb.flipIdx]
}

// Back returns the target that is the destination of the next draw.
func (fb *Flip) Back() *Target {
	return fb.flip[(fb.flipIdx+1)%len(fb.flip)]
}

// Texture returns the texture of the front target.
func (fb *Flip) Texture() gpu.Texture {
	return fb.Front().Texture()
}

// Framebuffer returns the framebuffer of the back target.
func (fb *Flip) Framebuffer() gpu.Framebuffer {
	return fb.Back().Framebuffer()
}

// Process binds the back target as the draw destination, runs the draw
// function and then flips. The result of the draw is returned and is the
// same as the texture returned by Texture().
func (fb *Flip) Process(draw func()) gpu.Texture {
	fb.Back().BindAsFramebuffer()
	draw()
	fb.Flip()
	return fb.Texture()
}

// Dimensions returns the width and height of the targets.
func (fb *Flip) Dimensions() (int32, int32) {
	return fb.flip[0].Dimensions()
}

// Format returns the pixel format of the targets.
func (fb *Flip) Format() gpu.Format {
	return fb.flip[0].Format()
}
