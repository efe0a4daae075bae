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

//go:build !gl21

package gldevice

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/rendertarget/assert"
	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/logger"
)

const tag = "gl32"

// Required is the GL context needed by the Device.
var Required = Requirement{Major: 3, Minor: 2, Core: true}

// Device forwards framebuffer operations to an OpenGL 3.2 context.
type Device struct {
	owner assert.Owner

	// reusable buffer for DrawBuffers()
	buffers []uint32
}

var _ framebuffer.Device = (*Device)(nil)

// New is the preferred method of initialisation of the Device type. The GL
// context must be current in the calling goroutine.
func New() (*Device, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, tag, "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, tag, "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, tag, "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var n int32
	gl.GetIntegerv(gl.MAX_COLOR_ATTACHMENTS, &n)
	logger.Logf(logger.Allow, tag, "max color attachments: %d", n)

	return &Device{
		owner: assert.NewOwner(),
	}, nil
}

func (dev *Device) GenFramebuffer() uint32 {
	dev.owner.Check(tag)
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (dev *Device) DeleteFramebuffer(id uint32) {
	dev.owner.Check(tag)
	gl.DeleteFramebuffers(1, &id)
}

func (dev *Device) BindFramebuffer(id uint32) {
	dev.owner.Check(tag)
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
}

func (dev *Device) GenRenderbuffer() uint32 {
	dev.owner.Check(tag)
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (dev *Device) DeleteRenderbuffer(id uint32) {
	dev.owner.Check(tag)
	gl.DeleteRenderbuffers(1, &id)
}

func (dev *Device) AttachDepthRenderbuffer(id uint32, width int32, height int32) {
	dev.owner.Check(tag)
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, id)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

func (dev *Device) GenTexture() uint32 {
	dev.owner.Check(tag)
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (dev *Device) DeleteTexture(id uint32) {
	dev.owner.Check(tag)
	gl.DeleteTextures(1, &id)
}

func (dev *Device) AllocateTexture(id uint32, width int32, height int32, spec framebuffer.TextureSpec) {
	dev.owner.Check(tag)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, spec.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, spec.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, spec.Filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, spec.Filter)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		spec.InternalFormat, width, height, 0,
		uint32(spec.SourceFormat), uint32(spec.PixelType),
		nil)
}

func (dev *Device) AttachTexture(slot framebuffer.Enum, id uint32) {
	dev.owner.Check(tag)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, uint32(slot), gl.TEXTURE_2D, id, 0)
}

func (dev *Device) UnbindTexture() {
	dev.owner.Check(tag)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (dev *Device) DisableColorBuffers() {
	dev.owner.Check(tag)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
}

func (dev *Device) DrawBuffers(slots []framebuffer.Enum) {
	dev.owner.Check(tag)
	if len(slots) == 0 {
		gl.DrawBuffer(gl.NONE)
		return
	}
	dev.buffers = dev.buffers[:0]
	for _, s := range slots {
		dev.buffers = append(dev.buffers, uint32(s))
	}
	gl.DrawBuffers(int32(len(dev.buffers)), &dev.buffers[0])
}

func (dev *Device) CheckStatus() framebuffer.Status {
	dev.owner.Check(tag)
	return translateStatus(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
}

// translateStatus converts the result of glCheckFramebufferStatus() to a
// framebuffer.Status value
func translateStatus(status uint32) framebuffer.Status {
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		return framebuffer.StatusComplete
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return framebuffer.StatusUnsupported
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return framebuffer.StatusMissingAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return framebuffer.StatusIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return framebuffer.StatusMissingDrawBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return framebuffer.StatusMissingReadBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return framebuffer.StatusMultisampleMismatch
	}
	logger.Logf(logger.Allow, tag, "unrecognised framebuffer status (%#04x)", status)
	return framebuffer.StatusUnknown
}

// Viewport sets the area of the current framebuffer that is drawn to.
func (dev *Device) Viewport(width int32, height int32) {
	dev.owner.Check(tag)
	gl.Viewport(0, 0, width, height)
}

// Clear the color and depth buffers of the current framebuffer. Every draw
// buffer is cleared to the same color.
func (dev *Device) Clear(r, g, b, a float32) {
	dev.owner.Check(tag)
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixel returns the RGBA value of a single pixel of the attachment in the
// specified slot of the current framebuffer.
func (dev *Device) ReadPixel(slot framebuffer.Enum, x int32, y int32) [4]uint8 {
	dev.owner.Check(tag)
	var p [4]uint8
	gl.ReadBuffer(uint32(slot))
	gl.ReadPixels(x, y, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&p[0]))
	gl.ReadBuffer(gl.NONE)
	return p
}
