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

package framebuffer

// Device is the graphics context that a RenderTarget issues its commands to.
// Implementations forward each call to the native graphics API. The context
// behind the Device must be current in the calling goroutine.
//
// Handle values of zero are never valid GPU objects and are used by the
// RenderTarget to indicate that no object is allocated.
type Device interface {
	// frame buffers. binding zero makes the default (window) framebuffer
	// the render destination
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(id uint32)

	// render buffers. AttachDepthRenderbuffer() allocates depth storage of
	// the specified size for the render buffer and attaches it to the depth
	// slot of the currently bound framebuffer
	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	AttachDepthRenderbuffer(id uint32, width int32, height int32)

	// textures. AllocateTexture() binds the texture, applies the wrap and
	// filter parameters and allocates storage of the specified size.
	// AttachTexture() attaches the texture to a slot of the currently bound
	// framebuffer
	GenTexture() uint32
	DeleteTexture(id uint32)
	AllocateTexture(id uint32, width int32, height int32, spec TextureSpec)
	AttachTexture(slot Enum, id uint32)
	UnbindTexture()

	// DisableColorBuffers sets both the draw and read buffer of the currently
	// bound framebuffer to none. DrawBuffers() sets the list of draw buffers;
	// an empty list is the same as disabling draw buffers
	DisableColorBuffers()
	DrawBuffers(slots []Enum)

	// CheckStatus returns the completeness status of the currently bound
	// framebuffer
	CheckStatus() Status
}

// Status is the result of the native framebuffer completeness check.
type Status int

// List of valid Status values.
const (
	StatusComplete Status = iota
	StatusUnsupported
	StatusMissingAttachment
	StatusIncompleteAttachment
	StatusMissingDrawBuffer
	StatusMissingReadBuffer
	StatusMultisampleMismatch
	StatusUnknown
)

var statusMessages = map[Status]string{
	StatusComplete:             "complete",
	StatusUnsupported:          "unsupported framebuffer format",
	StatusMissingAttachment:    "missing attachment",
	StatusIncompleteAttachment: "attachment type error",
	StatusMissingDrawBuffer:    "missing draw buffer",
	StatusMissingReadBuffer:    "missing read buffer",
	StatusMultisampleMismatch:  "attached images must have the same number of samples",
	StatusUnknown:              "fatal error",
}

func (s Status) String() string {
	if m, ok := statusMessages[s]; ok {
		return m
	}
	return statusMessages[StatusUnknown]
}
