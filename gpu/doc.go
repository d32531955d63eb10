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

// Package gpu defines the small set of GPU operations needed by the post
// processing chain. Concrete implementations are in the opengl package, for
// use with a real OpenGL 3.2 context, and the software package, which runs
// the same pipeline on the CPU.
//
// The interfaces are deliberately narrow. A Context can allocate textures
// and framebuffers, compile shader programs and draw a full-screen quad. It
// also keeps track of which framebuffer is the current draw destination and
// which textures are bound to the sampler slots.
//
// Every GPU backed object must be released explicitly with Release(). Calling
// Release() more than once is safe.
package gpu
