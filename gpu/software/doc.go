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

// Package software implements the gpu interfaces on the CPU. It is used by
// the headless RENDER mode of the postfx command and by the tests of the
// packages that drive the GPU.
//
// Shader programs are not compiled. Instead, the name of the shader source is
// used to select a Go function that does the same work as the GLSL fragment
// shader. The functions for the shaders in the shaders package are built in.
// Other functions can be added with Context.RegisterFragment().
//
// Textures in FormatLDR are stored with 8 bits of precision and are clamped
// to the range 0.0 to 1.0. Textures in FormatHDR keep the floating point
// value, clamped to the range of a 16 bit float.
//
// Sampling is bilinear with clamp-to-edge wrapping. Texture row zero is the
// bottom row, as it is in OpenGL. Conversion to and from image.Image flips
// the rows.
//
// The context counts the textures, framebuffers, programs and quads that are
// currently allocated. A trace of draw operations can also be recorded. Both
// are useful for testing.
package software
