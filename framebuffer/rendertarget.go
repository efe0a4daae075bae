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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/rendertarget/logger"
)

// RenderTarget is an off-screen render destination with any number of named
// color attachments and an optional depth attachment.
type RenderTarget struct {
	width  int32
	height int32

	state State

	fbo uint32
	rbo uint32

	// attachments in the order they were added. the index of an attachment
	// is its position in this slice
	attachments []Attachment

	// lower-case name to position in attachments
	names map[string]int

	// draw buffer list, built by EndConfiguration()
	drawBuffers []Enum
}

// NewRenderTarget is the preferred method of initialisation of the
// RenderTarget type. The dimensions of the target cannot be changed.
func NewRenderTarget(width int32, height int32) *RenderTarget {
	return &RenderTarget{
		width:  width,
		height: height,
		names:  make(map[string]int),
	}
}

func (rt *RenderTarget) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%dx%d %s", rt.width, rt.height, rt.state))
	for i, a := range rt.attachments {
		if i == 0 {
			s.WriteString(": ")
		} else {
			s.WriteString(", ")
		}
		s.WriteString(a.Name)
	}
	if rt.rbo != 0 {
		s.WriteString(" (depth)")
	}
	return s.String()
}

// Dimensions returns the width and height of the target.
func (rt *RenderTarget) Dimensions() (width int32, height int32) {
	return rt.width, rt.height
}

// State returns the current state of the target.
func (rt *RenderTarget) State() State {
	return rt.state
}

// HasDepth returns true if a depth buffer is allocated.
func (rt *RenderTarget) HasDepth() bool {
	return rt.rbo != 0
}

// Len returns the number of attachments.
func (rt *RenderTarget) Len() int {
	return len(rt.attachments)
}

// Attachments returns a copy of the attachment list in the order the
// attachments were added.
func (rt *RenderTarget) Attachments() []Attachment {
	c := make([]Attachment, len(rt.attachments))
	copy(c, rt.attachments)
	return c
}

// Clear releases every GPU object owned by the target and forgets all
// attachments. It is safe to call Clear() on a target that is already clear.
func (rt *RenderTarget) Clear(dev Device) {
	Unbind(dev)
	dev.UnbindTexture()

	released := rt.fbo != 0 || rt.rbo != 0 || len(rt.attachments) > 0

	for _, a := range rt.attachments {
		if a.Texture != 0 {
			dev.DeleteTexture(a.Texture)
		}
	}

	if rt.fbo != 0 {
		dev.DeleteFramebuffer(rt.fbo)
	}
	rt.fbo = 0

	if rt.rbo != 0 {
		dev.DeleteRenderbuffer(rt.rbo)
	}
	rt.rbo = 0

	rt.attachments = rt.attachments[:0]
	clear(rt.names)
	rt.drawBuffers = rt.drawBuffers[:0]
	rt.state = Uninitialized

	if released {
		logger.Logf(logger.Allow, "framebuffer", "%dx%d target released", rt.width, rt.height)
	}
}

// BeginConfiguration clears the target and allocates a new framebuffer, with a
// depth buffer if useDepth is true. Attachments can then be added with
// AddAttachment().
//
// The framebuffer is left bound. Color draw and read buffers are disabled
// until EndConfiguration() is called.
func (rt *RenderTarget) BeginConfiguration(dev Device, useDepth bool) {
	rt.Clear(dev)

	rt.fbo = dev.GenFramebuffer()
	dev.BindFramebuffer(rt.fbo)

	if useDepth {
		rt.rbo = dev.GenRenderbuffer()
		dev.AttachDepthRenderbuffer(rt.rbo, rt.width, rt.height)
	}

	dev.DisableColorBuffers()

	rt.state = Configuring
}

// AddAttachment allocates a texture for the named attachment and attaches it
// to the specified slot. The texture has the same dimensions as the target.
//
// Returns a ConfigurationError if the target is not being configured or if the
// name has already been used. Names are case insensitive.
func (rt *RenderTarget) AddAttachment(dev Device, name string, spec TextureSpec, slot Enum) error {
	if rt.state != Configuring {
		return ConfigurationError{Op: "add attachment", Reason: NotConfiguring, Name: name}
	}

	name = strings.ToLower(name)
	if _, ok := rt.names[name]; ok {
		return ConfigurationError{Op: "add attachment", Reason: DuplicateAttachment, Name: name}
	}

	tex := dev.GenTexture()
	dev.AllocateTexture(tex, rt.width, rt.height, spec)
	dev.AttachTexture(slot, tex)

	rt.names[name] = len(rt.attachments)
	rt.attachments = append(rt.attachments, Attachment{
		Name:    name,
		Texture: tex,
		Slot:    slot,
		Index:   len(rt.attachments),
		Spec:    spec,
	})

	return nil
}

// EndConfiguration checks that the framebuffer is complete and readies the
// target for binding.
//
// Returns a ConfigurationError if the target is not being configured. Returns
// a FramebufferError if the framebuffer is incomplete, in which case the
// target is cleared and must be configured again before use.
func (rt *RenderTarget) EndConfiguration(dev Device) error {
	if rt.state != Configuring {
		return ConfigurationError{Op: "end configuration", Reason: NotConfiguring}
	}

	dev.UnbindTexture()

	if status := dev.CheckStatus(); status != StatusComplete {
		err := FramebufferError{Status: status}
		logger.Log(logger.Allow, "framebuffer", err)
		rt.Clear(dev)
		return err
	}

	Unbind(dev)

	rt.drawBuffers = rt.drawBuffers[:0]
	for _, a := range rt.attachments {
		rt.drawBuffers = append(rt.drawBuffers, a.Slot)
	}

	rt.state = Ready
	logger.Logf(logger.Allow, "framebuffer", "configured %s", rt)

	return nil
}

// Bind makes the target the current render destination and sets the draw
// buffers to the attachments, in the order they were added. Bind does
// nothing unless the target is ready.
func (rt *RenderTarget) Bind(dev Device) {
	if rt.state != Ready || rt.fbo == 0 {
		return
	}
	dev.BindFramebuffer(rt.fbo)
	dev.DrawBuffers(rt.drawBuffers)
}

// Unbind makes the default (window) framebuffer the current render
// destination.
func Unbind(dev Device) {
	dev.BindFramebuffer(0)
}

func (rt *RenderTarget) lookup(name string) (Attachment, bool) {
	i, ok := rt.names[strings.ToLower(name)]
	if !ok {
		return Attachment{}, false
	}
	return rt.attachments[i], true
}

// LookupTexture returns the texture ID of the named attachment. Returns zero if
// there is no such attachment.
func (rt *RenderTarget) LookupTexture(name string) uint32 {
	if a, ok := rt.lookup(name); ok {
		return a.Texture
	}
	return 0
}

// LookupAttachmentSlot returns the slot of the named attachment. Returns
// InvalidEnum if there is no such attachment.
func (rt *RenderTarget) LookupAttachmentSlot(name string) Enum {
	if a, ok := rt.lookup(name); ok {
		return a.Slot
	}
	return InvalidEnum
}

// LookupIndex returns the index of the named attachment. Returns NotFound if
// there is no such attachment.
func (rt *RenderTarget) LookupIndex(name string) int {
	if a, ok := rt.lookup(name); ok {
		return a.Index
	}
	return NotFound
}
