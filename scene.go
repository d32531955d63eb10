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

package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// disc is a bright object in the test scene.
type disc struct {
	color  mgl32.Vec4
	radius float32
	orbit  float32
	speed  float32
	phase  float32
}

// scene generates an HDR test image: a dark gradient with bright discs
// moving across it. The discs are brighter than 1.0 so that bloom and
// tonemapping have something to work with.
type scene struct {
	width  int32
	height int32
	pix    []mgl32.Vec4
	discs  []disc
}

func newScene(width int32, height int32) *scene {
	scn := &scene{
		discs: []disc{
			{color: mgl32.Vec4{4.0, 3.2, 2.0, 1.0}, radius: 0.06, orbit: 0.25, speed: 0.7, phase: 0.0},
			{color: mgl32.Vec4{0.8, 2.5, 4.0, 1.0}, radius: 0.04, orbit: 0.35, speed: -0.4, phase: 2.1},
			{color: mgl32.Vec4{6.0, 0.5, 0.5, 1.0}, radius: 0.02, orbit: 0.15, speed: 1.3, phase: 4.2},
		},
	}
	scn.resize(width, height)
	return scn
}

func (scn *scene) resize(width int32, height int32) {
	scn.width = width
	scn.height = height
	scn.pix = make([]mgl32.Vec4, width*height)
}

// render the scene at time t, measured in seconds. Row zero of the returned
// pixels is the bottom row of the image.
func (scn *scene) render(t float32) []mgl32.Vec4 {
	aspect := float32(scn.width) / float32(scn.height)

	centres := make([]mgl32.Vec2, len(scn.discs))
	for i, d := range scn.discs {
		a := d.phase + t*d.speed
		centres[i] = mgl32.Vec2{
			0.5*aspect + d.orbit*math32.Cos(a),
			0.5 + d.orbit*math32.Sin(a),
		}
	}

	for y := int32(0); y < scn.height; y++ {
		v := (float32(y) + 0.5) / float32(scn.height)
		background := mgl32.Vec4{0.02 + 0.08*v, 0.03 + 0.05*v, 0.08 + 0.12*v, 1.0}

		for x := int32(0); x < scn.width; x++ {
			p := mgl32.Vec2{(float32(x) + 0.5) / float32(scn.height), v}
			c := background

			for i, d := range scn.discs {
				dist := p.Sub(centres[i]).Len()

				// one pixel of anti-aliasing at the edge of the disc
				edge := 1.0 / float32(scn.height)
				cover := 1.0 - (dist-d.radius)/edge
				if cover <= 0.0 {
					continue
				}
				if cover > 1.0 {
					cover = 1.0
				}
				c = c.Mul(1.0 - cover).Add(d.color.Mul(cover))
			}
			c[3] = 1.0

			scn.pix[y*scn.width+x] = c
		}
	}

	return scn.pix
}
