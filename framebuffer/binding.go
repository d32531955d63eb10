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
	"fmt"

	"github.com/jetsetilly/postfx/gpu"
)

// Binding is the source texture and destination framebuffer of one draw.
type Binding struct {
	Source      gpu.Texture
	Destination gpu.Framebuffer
}

func (b Binding) String() string {
	sw, sh := b.Source.Dimensions()
	dw, dh := b.Destination.Dimensions()
	return fmt.Sprintf("%dx%d -> %dx%d", sw, sh, dw, dh)
}

// Bind makes the destination the draw target and binds the source to the
// sampler slot.
func (b Binding) Bind(ctx gpu.Context, slot int) {
	ctx.BindFramebuffer(b.Destination)
	ctx.BindTexture(slot, b.Source)
}
