// This file is part of rendertarget.
//
// rendertarget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rendertarget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rendertarget.  If not, see <https://www.gnu.org/licenses/>.

//go:build !glfw

package glcontext

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/rendertarget/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const tag = "sdl"

// Context is a window with a current OpenGL context.
type Context struct {
	window    *sdl.Window
	glContext sdl.GLContext
}

// New creates a window and GL context according to the Config. The GL context
// is current on return.
func New(cfg Config) (*Context, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if cfg.Core {
		err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, tag, "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.Visible {
		flags |= sdl.WINDOW_SHOWN
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	ctx := &Context{}

	ctx.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Width, cfg.Height, flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	ctx.glContext, err = ctx.window.GLCreateContext()
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	err = ctx.window.GLMakeCurrent(ctx.glContext)
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	profile, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_PROFILE_MASK)
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	var profileName string
	switch profile {
	case sdl.GL_CONTEXT_PROFILE_CORE:
		profileName = " core"
	case sdl.GL_CONTEXT_PROFILE_COMPATIBILITY:
		profileName = " compatibility"
	case sdl.GL_CONTEXT_PROFILE_ES:
		profileName = " ES"
	}
	logger.Logf(logger.Allow, tag, "using GL version %d.%d%s", major, minor, profileName)

	return ctx, nil
}

// Service handles pending window events. Returns false if the window has been
// asked to close.
func (ctx *Context) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}

// Swap the window's front and back buffers.
func (ctx *Context) Swap() {
	ctx.window.GLSwap()
}

// Size returns the size of the window's default framebuffer in pixels.
func (ctx *Context) Size() (int32, int32) {
	return ctx.window.GLGetDrawableSize()
}

// Destroy the GL context and window.
func (ctx *Context) Destroy() error {
	if ctx.glContext != nil {
		sdl.GLDeleteContext(ctx.glContext)
		ctx.glContext = nil
	}

	var err error
	if ctx.window != nil {
		err = ctx.window.Destroy()
		ctx.window = nil
	}

	sdl.Quit()

	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	return nil
}
