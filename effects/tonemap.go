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

// Tonemap converts HDR values to LDR with the extended Reinhard operator.
// It is the point in the chain where processing moves from the HDR buffers to
// the LDR buffers.
type Tonemap struct {
	single
	threshold float32
	exposure  float32
}

// NewTonemap is a Factory for the Tonemap effect.
func NewTonemap(env Environment) (*Tonemap, error) {
	s, err := newSingle(env, shaders.Tonemap())
	if err != nil {
		return nil, err
	}
	tm := &Tonemap{single: s}
	tm.SetThreshold(1.0)
	tm.SetExposure(1.0)
	return tm, nil
}

// Kind implements the Effect interface.
func (tm *Tonemap) Kind() Kind {
	return KindTonemap
}

// Tonemapping implements the Effect interface.
func (tm *Tonemap) Tonemapping() bool {
	return true
}

// Threshold is the luminance that maps to white.
func (tm *Tonemap) Threshold() float32 {
	return tm.threshold
}

// SetThreshold sets the luminance that maps to white.
func (tm *Tonemap) SetThreshold(v float32) {
	tm.threshold = v
	tm.setFloat("u_threshold", v)
}

// Exposure is applied to the source before tonemapping.
func (tm *Tonemap) Exposure() float32 {
	return tm.exposure
}

// SetExposure sets the exposure multiplier.
func (tm *Tonemap) SetExposure(v float32) {
	tm.exposure = v
	tm.setFloat("u_exposure", v)
}
