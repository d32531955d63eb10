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

package software

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

// Upload replaces the contents of the texture. The number of pixels must
// match the dimensions of the texture. Row zero is the bottom row.
func (ctx *Context) Upload(tex gpu.Texture, pixels []mgl32.Vec4) error {
	t := tex.(*texture)
	if t.released {
		return curated.Errorf(gpu.AllocationFailed, "upload to released texture")
	}
	if len(pixels) != len(t.pix) {
		return curated.Errorf(gpu.AllocationFailed, "pixel count does not match texture size")
	}
	for i, c := range pixels {
		t.pix[i] = t.store(c)
	}
	return nil
}

// Fill every pixel of the texture with the colour.
func (ctx *Context) Fill(tex gpu.Texture, c mgl32.Vec4) {
	t := tex.(*texture)
	v := t.store(c)
	for i := range t.pix {
		t.pix[i] = v
	}
}

// Pixels returns a copy of the pixels of the framebuffer. Row zero is the
// bottom row. The screen framebuffer can be read with this function.
func (ctx *Context) Pixels(fb gpu.Framebuffer) []mgl32.Vec4 {
	return append([]mgl32.Vec4{}, fb.(*framebuffer).tex.pix...)
}

// TexturePixels returns a copy of the pixels of the texture.
func (ctx *Context) TexturePixels(tex gpu.Texture) []mgl32.Vec4 {
	return append([]mgl32.Vec4{}, tex.(*texture).pix...)
}

// NewTextureFromImage creates a texture with the contents of the image.
func (ctx *Context) NewTextureFromImage(img image.Image, format gpu.Format) (gpu.Texture, error) {
	b := img.Bounds()
	tex, err := ctx.NewTexture(int32(b.Dx()), int32(b.Dy()), format)
	if err != nil {
		return nil, err
	}
	t := tex.(*texture)

	for y := 0; y < b.Dy(); y++ {
		row := int32(b.Dy()-1-y) * t.width
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			t.pix[row+int32(x)] = t.store(mgl32.Vec4{
				float32(c.R) / 0xffff,
				float32(c.G) / 0xffff,
				float32(c.B) / 0xffff,
				float32(c.A) / 0xffff,
			})
		}
	}

	return tex, nil
}

// Image returns the contents of the framebuffer as an 8 bit image. Values
// outside the range 0.0 to 1.0 are clamped.
func (ctx *Context) Image(fb gpu.Framebuffer) *image.NRGBA {
	t := fb.(*framebuffer).tex
	img := image.NewNRGBA(image.Rect(0, 0, int(t.width), int(t.height)))

	toByte := func(v float32) uint8 {
		return uint8(clamp(v, 0, 1)*255.0 + 0.5)
	}

	for y := int32(0); y < t.height; y++ {
		row := (t.height - 1 - y) * t.width
		for x := int32(0); x < t.width; x++ {
			c := t.pix[row+x]
			img.SetNRGBA(int(x), int(y), color.NRGBA{
				R: toByte(c[0]),
				G: toByte(c[1]),
				B: toByte(c[2]),
				A: toByte(c[3]),
			})
		}
	}

	return img
}
