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

// Package shaders contains the GLSL source for every program used by the
// post processing chain. The source files are embedded in the binary.
//
// The shader files do not contain a #version directive. The header is added
// by the functions in this package along with any compile time constants.
package shaders

import (
	_ "embed"
	"fmt"

	"github.com/jetsetilly/postfx/gpu"
)

// BlurTaps is the number of weights in the bloom blur kernel. The blur
// shaders are compiled with the same value.
const BlurTaps = 11

// header added to all shader source.
const header = "#version 150 core\n"

// names of shader programs. the software renderer uses the name to select
// the equivalent Go implementation.
const (
	NameBlit         = "blit"
	NameExtractBlurX = "extract_blur_x"
	NameBlurYPower   = "blur_y_power"
	NameApplyBloom   = "apply_bloom"
	NameTonemap      = "tonemap"
	NameVignette     = "vignette"
	NameGreyScale    = "greyscale"
	NameSplitTone    = "splittone"
	NameChromatic    = "chromatic"
)

//go:embed "fullscreen.vert"
var FullscreenVertexShader []byte

//go:embed "blit.frag"
var BlitShader []byte

//go:embed "extract_blur_x.frag"
var ExtractBlurXShader []byte

//go:embed "blur_y_power.frag"
var BlurYPowerShader []byte

//go:embed "apply_bloom.frag"
var ApplyBloomShader []byte

//go:embed "tonemap.frag"
var TonemapShader []byte

//go:embed "vignette.frag"
var VignetteShader []byte

//go:embed "greyscale.frag"
var GreyScaleShader []byte

//go:embed "splittone.frag"
var SplitToneShader []byte

//go:embed "chromatic.frag"
var ChromaticShader []byte

// Source returns the source of a named program that uses the full-screen
// vertex shader.
func Source(name string, fragment []byte) gpu.ShaderSource {
	return gpu.ShaderSource{
		Name:     name,
		Vertex:   header + string(FullscreenVertexShader),
		Fragment: header + string(fragment),
	}
}

// blurSource adds the kernel size definition to the blur shaders.
func blurSource(name string, fragment []byte) gpu.ShaderSource {
	src := Source(name, fragment)
	src.Fragment = fmt.Sprintf("%s#define TAPS %d\n%s", header, BlurTaps, fragment)
	return src
}

// Blit copies the texture at slot zero.
func Blit() gpu.ShaderSource {
	return Source(NameBlit, BlitShader)
}

// ExtractBlurX is the threshold and horizontal blur pass of the bloom effect.
func ExtractBlurX() gpu.ShaderSource {
	return blurSource(NameExtractBlurX, ExtractBlurXShader)
}

// BlurYPower is the vertical blur and power pass of the bloom effect.
func BlurYPower() gpu.ShaderSource {
	return blurSource(NameBlurYPower, BlurYPowerShader)
}

// ApplyBloom composites the blurred layers onto the source.
func ApplyBloom() gpu.ShaderSource {
	return Source(NameApplyBloom, ApplyBloomShader)
}

// Tonemap converts HDR values to LDR.
func Tonemap() gpu.ShaderSource {
	return Source(NameTonemap, TonemapShader)
}

// Vignette darkens the edges of the frame.
func Vignette() gpu.ShaderSource {
	return Source(NameVignette, VignetteShader)
}

// GreyScale removes colour.
func GreyScale() gpu.ShaderSource {
	return Source(NameGreyScale, GreyScaleShader)
}

// SplitTone tints shadows and highlights.
func SplitTone() gpu.ShaderSource {
	return Source(NameSplitTone, SplitToneShader)
}

// Chromatic separates the red and blue channels.
func Chromatic() gpu.ShaderSource {
	return Source(NameChromatic, ChromaticShader)
}
