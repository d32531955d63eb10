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

// Package effects contains the image effects that can be added to a post
// processing chain.
//
// Every effect implements the Effect interface. The Kind() function
// identifies the effect variant and is used by the chain to find an effect
// of a given kind. Effects are created by a Factory, which is given the
// Environment of the chain: the GPU context, the full-screen quad and blit
// program owned by the chain, and the current frame size.
//
// Effect parameters are set with Set*() functions. The new value is pushed
// to the shader program immediately.
//
// User defined effects should embed the Base type and return KindCustom
// from Kind(). The Apply() function of Base panics, so a user defined effect
// must provide its own.
package effects
