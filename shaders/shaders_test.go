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

package shaders_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/postfx/shaders"
	"github.com/jetsetilly/postfx/test"
)

func TestVersionHeader(t *testing.T) {
	for _, src := range []struct {
		name string
		fn   func() string
	}{
		{shaders.NameBlit, func() string { return shaders.Blit().Fragment }},
		{shaders.NameExtractBlurX, func() string { return shaders.ExtractBlurX().Fragment }},
		{shaders.NameTonemap, func() string { return shaders.Tonemap().Vertex }},
	} {
		test.ExpectSuccess(t, strings.HasPrefix(src.fn(), "#version 150 core\n"), src.name)
	}
}

func TestBlurTaps(t *testing.T) {
	define := fmt.Sprintf("#define TAPS %d\n", shaders.BlurTaps)

	test.ExpectSuccess(t, strings.Contains(shaders.ExtractBlurX().Fragment, define))
	test.ExpectSuccess(t, strings.Contains(shaders.BlurYPower().Fragment, define))
	test.ExpectFailure(t, strings.Contains(shaders.Blit().Fragment, define))

	// the define must follow the version directive
	test.ExpectEquality(t, strings.Index(shaders.BlurYPower().Fragment, "#version"), 0)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, shaders.ApplyBloom().Name, shaders.NameApplyBloom)
	test.ExpectEquality(t, shaders.Chromatic().Name, shaders.NameChromatic)
}
