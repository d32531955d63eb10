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

// Package chain applies an ordered list of effects to a frame.
//
// The Chain owns one LDR framebuffer.Flip and, when HDR is enabled, one HDR
// framebuffer.Flip. Each enabled effect is given a framebuffer.Binding made
// by flipping one of these buffers, so that the source of every effect is the
// output of the previous enabled effect.
//
// Processing starts in HDR space when HDR is enabled. After a tonemapping
// effect has been applied, the remaining effects work in LDR space.
//
// The first enabled effect reads directly from the texture given to
// ApplyEffects() and the last enabled effect writes directly to the
// destination framebuffer. When there is only one enabled effect the Chain's
// buffers are not used at all. When there are no enabled effects the source
// is copied to the destination.
//
// Effects are added with the Add() function, which takes an effects.Factory:
//
//	bl, err := chain.Add(c, effects.NewBloom)
//	if err != nil {
//		return err
//	}
//	bl.SetThreshold(0.9)
//
// All functions must be called from the goroutine that owns the GPU context.
package chain
