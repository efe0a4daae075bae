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

// Package framebuffer wraps an OpenGL framebuffer object. The RenderTarget
// type allocates any number of named color attachments, plus an optional
// depth attachment, and makes the result available as a render destination.
//
// A RenderTarget has fixed dimensions, chosen at creation with
// NewRenderTarget(). Attachments are declared between calls to
// BeginConfiguration() and EndConfiguration():
//
//	rt := framebuffer.NewRenderTarget(256, 256)
//	rt.BeginConfiguration(dev, true)
//	err := rt.AddAttachment(dev, "albedo", framebuffer.Presets["rgba8"], framebuffer.ColorAttachment(0))
//	...
//	err = rt.EndConfiguration(dev)
//
// The target can then be bound for drawing:
//
//	rt.Bind(dev)
//	// OpenGL draw operations
//	framebuffer.Unbind(dev)
//
// The texture of an attachment is found by name with LookupTexture(). Names
// are case insensitive. The lookup functions never fail; they return a
// sentinel value (0, InvalidEnum or NotFound) if the name is not known.
//
// The package makes no OpenGL calls directly. Every function that touches the
// GPU takes a Device argument, which must be backed by a GL context that is
// current in the calling goroutine. The gldevice package provides the
// implementation used in practice.
package framebuffer
