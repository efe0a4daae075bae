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

//go:build glfw

package glcontext

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/rendertarget/logger"
)

const tag = "glfw"

// Context is a window with a current OpenGL context.
type Context struct {
	window *glfw.Window
}

// New creates a window and GL context according to the Config. The GL context
// is current on return.
func New(cfg Config) (*Context, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	logger.Logf(logger.Allow, tag, "version %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	if cfg.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	win.MakeContextCurrent()

	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	major := win.GetAttrib(glfw.ContextVersionMajor)
	minor := win.GetAttrib(glfw.ContextVersionMinor)
	var profileName string
	switch win.GetAttrib(glfw.OpenGLProfile) {
	case glfw.OpenGLCoreProfile:
		profileName = " core"
	case glfw.OpenGLCompatProfile:
		profileName = " compatibility"
	}
	logger.Logf(logger.Allow, tag, "using GL version %d.%d%s", major, minor, profileName)

	return &Context{window: win}, nil
}

// Service handles pending window events. Returns false if the window has been
// asked to close.
func (ctx *Context) Service() bool {
	glfw.PollEvents()
	return !ctx.window.ShouldClose()
}

// Swap the window's front and back buffers.
func (ctx *Context) Swap() {
	ctx.window.SwapBuffers()
}

// Size returns the size of the window's default framebuffer in pixels.
func (ctx *Context) Size() (int32, int32) {
	w, h := ctx.window.GetFramebufferSize()
	return int32(w), int32(h)
}

// Destroy the GL context and window.
func (ctx *Context) Destroy() error {
	if ctx.window != nil {
		ctx.window.Destroy()
		ctx.window = nil
	}
	glfw.Terminate()
	return nil
}
