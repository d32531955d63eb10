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

package main

import (
	"fmt"

	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/version"
	"github.com/veandco/go-sdl2/sdl"
)

// window is an SDL window with an OpenGL 3.2 core context.
type window struct {
	win       *sdl.Window
	glContext sdl.GLContext
}

// newWindow must be called from the main thread.
func newWindow(width int32, height int32) (*window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	w := &window{}

	w.win, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, version.Version()),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	w.glContext, err = w.win.GLCreateContext()
	if err != nil {
		_ = w.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = w.win.GLMakeCurrent(w.glContext)
	if err != nil {
		_ = w.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(1): %v", err)
	}

	return w, nil
}

// destroy cleans up the resources.
func (w *window) destroy() error {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.win != nil {
		err := w.win.Destroy()
		if err != nil {
			return err
		}
		w.win = nil
	}
	sdl.Quit()
	return nil
}

// drawableSize returns the dimensions of the window's framebuffer. This can
// differ from the window size on high DPI displays.
func (w *window) drawableSize() (int32, int32) {
	return w.win.GLGetDrawableSize()
}

func (w *window) swap() {
	w.win.GLSwap()
}
