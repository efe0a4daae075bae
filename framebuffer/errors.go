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

import "fmt"

// ConfigurationReason describes how a RenderTarget was misused.
type ConfigurationReason int

// List of valid ConfigurationReason values.
const (
	// the operation is only allowed between BeginConfiguration() and
	// EndConfiguration()
	NotConfiguring ConfigurationReason = iota

	// the attachment name is already in use. names are case insensitive
	DuplicateAttachment
)

// ConfigurationError is returned when an operation is not allowed by the
// current state of the RenderTarget.
type ConfigurationError struct {
	// the operation that was refused. for example, "add attachment"
	Op string

	Reason ConfigurationReason

	// the attachment name, if any, given to the operation
	Name string
}

func (e ConfigurationError) Error() string {
	switch e.Reason {
	case DuplicateAttachment:
		return fmt.Sprintf("framebuffer: %s: attachment %s already exists", e.Op, e.Name)
	case NotConfiguring:
		return fmt.Sprintf("framebuffer: %s: not allowed outside of configuration", e.Op)
	}
	return fmt.Sprintf("framebuffer: %s: configuration error", e.Op)
}

// FramebufferError is returned by EndConfiguration() when the framebuffer fails
// the completeness check.
type FramebufferError struct {
	Status Status
}

func (e FramebufferError) Error() string {
	return fmt.Sprintf("framebuffer: incomplete: %s", e.Status)
}
