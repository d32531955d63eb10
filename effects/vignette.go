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
	"github.com/jetsetilly/postfx/shaders"
)

// Vignette blends the edges of the frame towards a colour. Distances are
// measured from the centre of the frame, where 1.0 is the middle of an edge.
type Vignette struct {
	single
	innerDistance float32
	outerDistance float32
	color         mgl32.Vec4
}

// NewVignette is a Factory for the Vignette effect.
func NewVignette(env Environment) (*Vignette, error) {
	s, err := newSingle(env, shaders.Vignette())
	if err != nil {
		return nil, err
	}
	vg := &Vignette{single: s}
	vg.SetInnerDistance(1.0)
	vg.SetOuterDistance(2.0)
	vg.SetColor(mgl32.Vec4{0.0, 0.0, 0.0, 1.0})
	return vg, nil
}

// Kind implements the Effect interface.
func (vg *Vignette) Kind() Kind {
	return KindVignette
}

// InnerDistance is the distance at which the vignette starts.
func (vg *Vignette) InnerDistance() float32 {
	return vg.innerDistance
}

// SetInnerDistance sets the distance at which the vignette starts.
func (vg *Vignette) SetInnerDistance(v float32) {
	vg.innerDistance = v
	vg.setFloat("u_inner_distance", v)
}

// OuterDistance is the distance at which the vignette is at full strength.
func (vg *Vignette) OuterDistance() float32 {
	return vg.outerDistance
}

// SetOuterDistance sets the distance at which the vignette is at full
// strength.
func (vg *Vignette) SetOuterDistance(v float32) {
	vg.outerDistance = v
	vg.setFloat("u_outer_distance", v)
}

// Color of the vignette. The alpha channel is the strength.
func (vg *Vignette) Color() mgl32.Vec4 {
	return vg.color
}

// SetColor sets the colour of the vignette.
func (vg *Vignette) SetColor(v mgl32.Vec4) {
	vg.color = v
	vg.setVec4("u_color", v)
}
