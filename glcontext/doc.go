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

// Package glcontext creates a window with an OpenGL context and makes the
// context current. The window is a means to an end: framebuffer objects need
// a context to exist in but the contents of the window are not important.
//
// By default SDL is used to create the window. Building with the glfw tag
// selects GLFW instead.
//
// SDL and GLFW both require that windowing functions are called from the
// main thread. The New() function locks the calling goroutine to its OS
// thread. Every other function of the Context must be called from the same
// goroutine.
package glcontext

// Config for the window and GL context.
type Config struct {
	Title  string
	Width  int32
	Height int32

	// the OpenGL version and whether the core profile is required
	Major int
	Minor int
	Core  bool

	// the window is hidden unless Visible is true
	Visible bool
}
