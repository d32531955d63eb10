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
	"testing"

	"github.com/jetsetilly/postfx/test"
)

func TestScene(t *testing.T) {
	scn := newScene(64, 32)
	pix := scn.render(0.0)
	test.DemandEquality(t, len(pix), 64*32)

	// the discs are HDR valued and the background is not
	var bright int
	for _, p := range pix {
		test.ExpectEquality(t, p[3], float32(1.0))
		if p[0] > 1.0 || p[1] > 1.0 || p[2] > 1.0 {
			bright++
		}
	}
	test.ExpectSuccess(t, bright > 0)
	test.ExpectSuccess(t, bright < len(pix)/2)

	// discs move over time
	a := append(pix[:0:0], pix...)
	b := scn.render(1.0)
	var changed bool
	for i := range a {
		if a[i] != b[i] {
			changed = true
			break
		}
	}
	test.ExpectSuccess(t, changed)

	scn.resize(16, 16)
	test.ExpectEquality(t, len(scn.render(0.0)), 16*16)
}
