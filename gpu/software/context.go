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
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

// the number of sampler slots.
const maxSlots = 16

// Context implements the gpu.Context interface.
type Context struct {
	screen *framebuffer

	bound gpu.Framebuffer
	slots [maxSlots]*texture

	fragments map[string]Fragment

	// most recently created program for each name
	programs map[string]*program

	// number of live resources
	allocated int

	// draw trace is only recorded when tracing is true
	tracing bool
	trace   []Draw
}

// NewContext is the preferred method of initialisation for the Context type.
// The width and height are the dimensions of the screen framebuffer.
func NewContext(width int32, height int32) (*Context, error) {
	ctx := &Context{
		fragments: make(map[string]Fragment),
		programs:  make(map[string]*program),
	}
	for n, f := range builtinFragments {
		ctx.fragments[n] = f
	}

	if err := ctx.ResizeScreen(width, height); err != nil {
		return nil, err
	}
	ctx.bound = ctx.screen

	return ctx, nil
}

// ResizeScreen changes the dimensions of the screen framebuffer. The contents
// of the screen are lost.
func (ctx *Context) ResizeScreen(width int32, height int32) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(gpu.AllocationFailed, "screen size must be positive")
	}
	ctx.screen = &framebuffer{
		ctx:    ctx,
		screen: true,
		tex:    newTexture(ctx, width, height, gpu.FormatLDR),
	}
	if ctx.bound != nil && ctx.bound.(*framebuffer).screen {
		ctx.bound = ctx.screen
	}
	return nil
}

// RegisterFragment adds a fragment function to the context. Programs created
// with a ShaderSource of the same name will use the function.
func (ctx *Context) RegisterFragment(name string, f Fragment) {
	ctx.fragments[name] = f
}

// Allocated returns the number of textures, framebuffers, programs and quads
// that have not been released. The screen is not included.
func (ctx *Context) Allocated() int {
	return ctx.allocated
}

// Screen implements the gpu.Context interface.
func (ctx *Context) Screen() gpu.Framebuffer {
	return ctx.screen
}

// BindTexture implements the gpu.Context interface.
func (ctx *Context) BindTexture(slot int, tex gpu.Texture) {
	if tex == nil {
		ctx.slots[slot] = nil
		return
	}
	ctx.slots[slot] = tex.(*texture)
}

// BindFramebuffer implements the gpu.Context interface.
func (ctx *Context) BindFramebuffer(fb gpu.Framebuffer) {
	ctx.bound = fb
}

// EnableOnly implements the gpu.Context interface. There is no blending in
// the software renderer so the function does nothing.
func (ctx *Context) EnableOnly() {
}
