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

package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// sentinal error patterns.
const (
	AllocationFailed = "gpu: allocation failed: %v"
	CompileFailed    = "gpu: shader (%s): %v"
)

// Format of the pixels in a texture.
type Format int

// List of valid Format values.
const (
	// FormatLDR is four channels of 8 bits. Values are clamped to the range
	// 0.0 to 1.0.
	FormatLDR Format = iota

	// FormatHDR is four channels of 16 bit floating point.
	FormatHDR
)

func (f Format) String() string {
	switch f {
	case FormatLDR:
		return "LDR"
	case FormatHDR:
		return "HDR"
	}
	return "unknown format"
}

// Texture is a 2D, four channel texture that can be sampled by a shader
// program.
type Texture interface {
	Dimensions() (int32, int32)
	Format() Format
	Release()
}

// Framebuffer is a draw destination. Offscreen framebuffers are attached to
// a texture. The screen framebuffer returns nil from Texture().
type Framebuffer interface {
	Dimensions() (int32, int32)
	Format() Format
	Texture() Texture
	Release()
}

// Program is a compiled shader program. Uniform values are pushed to the
// program immediately. Setting a uniform that the program does not use is
// not an error.
type Program interface {
	Name() string
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetFloats(name string, v []float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec4(name string, v mgl32.Vec4)
	Release()
}

// Quad is a full-screen quad. Render() runs the program once for every pixel
// of the currently bound framebuffer.
type Quad interface {
	Render(prg Program)
	Release()
}

// ShaderSource is the source text of a vertex and fragment shader pair.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// Context is the GPU context supplied by the host.
type Context interface {
	NewTexture(width int32, height int32, format Format) (Texture, error)
	NewFramebuffer(tex Texture) (Framebuffer, error)
	NewProgram(src ShaderSource) (Program, error)
	NewQuad() (Quad, error)

	// Screen is the presentation framebuffer
	Screen() Framebuffer

	// BindTexture binds tex to the sampler slot. A nil texture unbinds the
	// slot
	BindTexture(slot int, tex Texture)

	// BindFramebuffer makes fb the current draw destination. The viewport is
	// set to the dimensions of the framebuffer
	BindFramebuffer(fb Framebuffer)

	// EnableOnly resets the blending and depth test state so that a draw
	// writes the fragment output unmodified
	EnableOnly()
}
