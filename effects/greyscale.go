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
	"github.com/jetsetilly/postfx/shaders"
)

// GreyScale removes colour from the frame.
type GreyScale struct {
	single
	strength float32
}

// NewGreyScale is a Factory for the GreyScale effect.
func NewGreyScale(env Environment) (*GreyScale, error) {
	s, err := newSingle(env, shaders.GreyScale())
	if err != nil {
		return nil, err
	}
	gs := &GreyScale{single: s}
	gs.SetStrength(1.0)
	return gs, nil
}

// Kind implements the Effect interface.
func (gs *GreyScale) Kind() Kind {
	return KindGreyScale
}

// Strength of the effect. Zero leaves the colour unchanged.
func (gs *GreyScale) Strength() float32 {
	return gs.strength
}

// SetStrength sets the strength of the effect.
func (gs *GreyScale) SetStrength(v float32) {
	gs.strength = v
	gs.setFloat("u_strength", v)
}
