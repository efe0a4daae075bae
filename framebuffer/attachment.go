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

// State of the RenderTarget.
type State int

// List of valid State values.
const (
	Uninitialized State = iota
	Configuring
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configuring:
		return "configuring"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// Attachment is a named texture attached to a slot of the framebuffer.
type Attachment struct {
	// the lower-case name of the attachment
	Name string

	// the texture ID. this is the value that should be used when sampling
	// from the attachment
	Texture uint32

	// the framebuffer slot the texture is attached to
	Slot Enum

	// the order in which the attachment was added, starting from zero. the
	// index is the same as the attachment's position in the draw buffer list
	Index int

	Spec TextureSpec
}
