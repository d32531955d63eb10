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

// Package opengl implements the gpu interfaces for an OpenGL 3.2 core
// context. The context must be current on the calling thread before
// NewContext() is called and all functions must be called from that thread.
package opengl

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
	"github.com/jetsetilly/postfx/logger"
)

// Context implements the gpu.Context interface.
type Context struct {
	screen *screen

	// the framebuffer most recently bound with BindFramebuffer()
	bound gpu.Framebuffer
}

// NewContext is the preferred method of initialisation for the Context type.
// The width and height are the dimensions of the window's drawable area.
func NewContext(width int32, height int32) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf("opengl: %v", err)
	}

	logger.Logf(logger.Allow, "opengl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "opengl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "opengl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	ctx := &Context{
		screen: &screen{width: width, height: height},
	}
	ctx.bound = ctx.screen

	return ctx, nil
}

// SetScreenSize should be called whenever the drawable area of the window
// changes size.
func (ctx *Context) SetScreenSize(width int32, height int32) {
	ctx.screen.width = width
	ctx.screen.height = height
}

// Screen implements the gpu.Context interface.
func (ctx *Context) Screen() gpu.Framebuffer {
	return ctx.screen
}

// BindTexture implements the gpu.Context interface.
func (ctx *Context) BindTexture(slot int, tex gpu.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	if tex == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex.(*texture).id)
}

// BindFramebuffer implements the gpu.Context interface.
func (ctx *Context) BindFramebuffer(fb gpu.Framebuffer) {
	ctx.bound = fb
	switch fb := fb.(type) {
	case *screen:
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	case *framebuffer:
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	}
	w, h := fb.Dimensions()
	gl.Viewport(0, 0, w, h)
}

// EnableOnly implements the gpu.Context interface.
func (ctx *Context) EnableOnly() {
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.SCISSOR_TEST)
}

// Upload replaces the contents of the texture. The number of pixels must
// match the dimensions of the texture.
func (ctx *Context) Upload(tex gpu.Texture, pixels []mgl32.Vec4) error {
	t := tex.(*texture)
	if len(pixels) != int(t.width*t.height) {
		return curated.Errorf(gpu.AllocationFailed, "pixel count does not match texture size")
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.width, t.height, gl.RGBA, gl.FLOAT, gl.Ptr(&pixels[0]))
	return nil
}

// Clear the currently bound framebuffer.
func (ctx *Context) Clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// screen is the default framebuffer.
type screen struct {
	width  int32
	height int32
}

func (scr *screen) Dimensions() (int32, int32) {
	return scr.width, scr.height
}

func (scr *screen) Format() gpu.Format {
	return gpu.FormatLDR
}

func (scr *screen) Texture() gpu.Texture {
	return nil
}

// Release does nothing. The screen is owned by the window.
func (scr *screen) Release() {
}
