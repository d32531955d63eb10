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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/shaders"
)

// ChromaticAberration moves the red and blue channels away from the green
// channel. The separation increases towards the edges of the frame.
type ChromaticAberration struct {
	single
	amount float32
}

// NewChromaticAberration is a Factory for the ChromaticAberration effect.
func NewChromaticAberration(env Environment) (*ChromaticAberration, error) {
	s, err := newSingle(env, shaders.Chromatic())
	if err != nil {
		return nil, err
	}
	ca := &ChromaticAberration{single: s}
	ca.SetAmount(2.0)
	if err := ca.Resize(env.Width, env.Height); err != nil {
		ca.Release()
		return nil, err
	}
	return ca, nil
}

// Kind implements the Effect interface.
func (ca *ChromaticAberration) Kind() Kind {
	return KindChromaticAberration
}

// Resize implements the Effect interface.
func (ca *ChromaticAberration) Resize(width int32, height int32) error {
	if err := framebuffer.ValidateSize(width, height); err != nil {
		return err
	}
	ca.setVec2("u_texel_size", mgl32.Vec2{1.0 / float32(width), 1.0 / float32(height)})
	return nil
}

// Amount is the separation of the channels at the corners of the frame, in
// texels.
func (ca *ChromaticAberration) Amount() float32 {
	return ca.amount
}

// SetAmount sets the separation of the channels.
func (ca *ChromaticAberration) SetAmount(v float32) {
	ca.amount = v
	ca.setFloat("u_amount", v)
}
