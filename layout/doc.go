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

// Package layout describes the attachments of a render target in a form that
// can be given on the command line.
//
// A layout string is a comma separated list of entries. The entry "depth"
// requests a depth buffer. Every other entry is a color attachment:
//
//	name:preset[:slot[:wrap[:filter]]]
//
// The preset is one of the names in framebuffer.Presets. The slot is the
// color attachment number and defaults to the position of the entry among
// the color attachments. The wrap and filter values are the names in
// framebuffer.WrapModes and framebuffer.FilterModes. They default to the
// values of the preset. For example:
//
//	depth,albedo:rgba8,normal:rgba16f,position:rgba32f:2:clamp:nearest
//
// The Apply() function configures a framebuffer.RenderTarget with the layout.
package layout
