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

// Package gldevice implements the framebuffer.Device interface with the
// go-gl bindings.
//
// By default the OpenGL 3.2 core profile is used. Building with the gl21 tag
// selects OpenGL 2.1 instead, for older drivers. The GL version required by
// the selected implementation is given by Required and should be used when
// creating the GL context.
//
// A Device must be created, with New(), after the GL context has been made
// current. It can then only be used from the goroutine that created it.
// Using it from any other goroutine causes a panic.
package gldevice

// Requirement describes the GL context needed by the Device.
type Requirement struct {
	Major int
	Minor int
	Core  bool
}
