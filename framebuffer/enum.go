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

// Enum is an OpenGL enumeration value. Values of this type are passed to the
// Device unchanged.
type Enum uint32

// OpenGL enumeration values used by the package. The values are those
// defined by the Khronos registry and are the same in every GL version.
const (
	None            Enum = 0x0000
	InvalidEnum     Enum = 0x0500
	colorAttachment Enum = 0x8CE0
	DepthAttachment Enum = 0x8D00
)

// MaxColorAttachments is the number of color attachment slots that can be
// named with ColorAttachment(). Drivers may support fewer.
const MaxColorAttachments = 16

// ColorAttachment returns the slot for color attachment n. Values of n outside
// the range 0 to MaxColorAttachments-1 return InvalidEnum.
func ColorAttachment(n int) Enum {
	if n < 0 || n >= MaxColorAttachments {
		return InvalidEnum
	}
	return colorAttachment + Enum(n)
}

// IsColorAttachment returns true if the slot is one of the color attachment
// slots.
func IsColorAttachment(slot Enum) bool {
	return slot >= colorAttachment && slot < colorAttachment+MaxColorAttachments
}

// NotFound is returned by LookupIndex() for an unknown name.
const NotFound = -1
