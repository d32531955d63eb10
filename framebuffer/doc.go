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

// Package framebuffer provides the render targets used by the post
// processing chain and its effects.
//
// A Target is one texture with a framebuffer attached to it. The texture and
// framebuffer are always allocated and released together.
//
//	tgt, err := framebuffer.NewTarget(ctx, 800, 600, gpu.FormatHDR)
//
// A Flip is a pair of targets of the same size and format. One target is
// the front and the other is the back. The front target holds the result of
// the most recent draw and the back target is the destination of the next
// draw. The Flip() function swaps front and back and does no GPU work.
//
// The Process() function binds the back target, runs the supplied draw
// function and then flips, so that the result of the draw is available with
// Texture():
//
//	flp.Process(func() {
//		ctx.BindTexture(0, src)
//		quad.Render(prg)
//	})
//	result := flp.Texture()
//
// A Binding is the source texture and destination framebuffer of one effect
// invocation. It does not own either.
package framebuffer
