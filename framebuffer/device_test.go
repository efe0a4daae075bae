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

package framebuffer_test

import (
	"fmt"

	"github.com/jetsetilly/rendertarget/framebuffer"
)

// recorder is an implementation of the framebuffer.Device interface. it keeps
// track of the GPU objects that have been created and deleted and records
// every call as a string
type recorder struct {
	nextID uint32

	framebuffers  map[uint32]bool
	renderbuffers map[uint32]bool
	textures      map[uint32]framebuffer.TextureSpec

	boundFramebuffer uint32
	drawBuffers      []framebuffer.Enum

	// the status to return from CheckStatus()
	status framebuffer.Status

	calls []string
}

func newRecorder() *recorder {
	return &recorder{
		framebuffers:  make(map[uint32]bool),
		renderbuffers: make(map[uint32]bool),
		textures:      make(map[uint32]framebuffer.TextureSpec),
	}
}

func (r *recorder) call(s string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(s, args...))
}

func (r *recorder) gen() uint32 {
	r.nextID++
	return r.nextID
}

// live returns the number of GPU objects that have not been deleted
func (r *recorder) live() int {
	return len(r.framebuffers) + len(r.renderbuffers) + len(r.textures)
}

func (r *recorder) GenFramebuffer() uint32 {
	id := r.gen()
	r.framebuffers[id] = true
	r.call("gen framebuffer %d", id)
	return id
}

func (r *recorder) DeleteFramebuffer(id uint32) {
	delete(r.framebuffers, id)
	r.call("delete framebuffer %d", id)
}

func (r *recorder) BindFramebuffer(id uint32) {
	r.boundFramebuffer = id
	r.call("bind framebuffer %d", id)
}

func (r *recorder) GenRenderbuffer() uint32 {
	id := r.gen()
	r.renderbuffers[id] = true
	r.call("gen renderbuffer %d", id)
	return id
}

func (r *recorder) DeleteRenderbuffer(id uint32) {
	delete(r.renderbuffers, id)
	r.call("delete renderbuffer %d", id)
}

func (r *recorder) AttachDepthRenderbuffer(id uint32, width int32, height int32) {
	r.call("attach depth %d %dx%d", id, width, height)
}

func (r *recorder) GenTexture() uint32 {
	id := r.gen()
	r.textures[id] = framebuffer.TextureSpec{}
	r.call("gen texture %d", id)
	return id
}

func (r *recorder) DeleteTexture(id uint32) {
	delete(r.textures, id)
	r.call("delete texture %d", id)
}

func (r *recorder) AllocateTexture(id uint32, width int32, height int32, spec framebuffer.TextureSpec) {
	r.textures[id] = spec
	r.call("allocate texture %d %dx%d", id, width, height)
}

func (r *recorder) AttachTexture(slot framebuffer.Enum, id uint32) {
	r.call("attach texture %d to %#04x", id, slot)
}

func (r *recorder) UnbindTexture() {
	r.call("unbind texture")
}

func (r *recorder) DisableColorBuffers() {
	r.call("disable color buffers")
}

func (r *recorder) DrawBuffers(slots []framebuffer.Enum) {
	r.drawBuffers = append(r.drawBuffers[:0], slots...)
	r.call("draw buffers %v", slots)
}

func (r *recorder) CheckStatus() framebuffer.Status {
	r.call("check status")
	return r.status
}
