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
	"sort"
)

// TextureSpec describes the texture allocated for an attachment.
type TextureSpec struct {
	// the internal format of the texture. for example, RGBA8
	InternalFormat int32

	// format and pixel type of the (absent) source data. these have to be
	// compatible with the internal format even though no data is uploaded
	SourceFormat Enum
	PixelType    Enum

	// applied to both the S and T axes
	Wrap int32

	// applied to both magnification and minification
	Filter int32
}

// texture format values
const (
	formatRed        = 0x1903
	formatRG         = 0x8227
	formatRGB        = 0x1907
	formatRGBA       = 0x1908
	formatRGBA8      = 0x8058
	formatRGBA16F    = 0x881A
	formatRGBA32F    = 0x8814
	formatR32F       = 0x822E
	formatRG16F      = 0x822F
	formatR11G11B10F = 0x8C3A
	typeUnsignedByte = 0x1401
	typeFloat        = 0x1406
)

// WrapModes are the texture wrap modes by name.
var WrapModes = map[string]int32{
	"clamp":  0x812F,
	"border": 0x812D,
	"repeat": 0x2901,
	"mirror": 0x8370,
}

// FilterModes are the texture filter modes by name.
var FilterModes = map[string]int32{
	"nearest": 0x2600,
	"linear":  0x2601,
}

// Presets are commonly used attachment formats by name. Each preset uses
// clamp wrapping and linear filtering.
var Presets = map[string]TextureSpec{
	"rgba8": {
		InternalFormat: formatRGBA8,
		SourceFormat:   formatRGBA,
		PixelType:      typeUnsignedByte,
	},
	"rgba16f": {
		InternalFormat: formatRGBA16F,
		SourceFormat:   formatRGBA,
		PixelType:      typeFloat,
	},
	"rgba32f": {
		InternalFormat: formatRGBA32F,
		SourceFormat:   formatRGBA,
		PixelType:      typeFloat,
	},
	"r32f": {
		InternalFormat: formatR32F,
		SourceFormat:   formatRed,
		PixelType:      typeFloat,
	},
	"rg16f": {
		InternalFormat: formatRG16F,
		SourceFormat:   formatRG,
		PixelType:      typeFloat,
	},
	"r11g11b10f": {
		InternalFormat: formatR11G11B10F,
		SourceFormat:   formatRGB,
		PixelType:      typeFloat,
	},
}

func init() {
	for k, p := range Presets {
		p.Wrap = WrapModes["clamp"]
		p.Filter = FilterModes["linear"]
		Presets[k] = p
	}
}

// PresetNames returns the names of the Presets in alphabetical order.
func PresetNames() []string {
	return sortedKeys(Presets)
}

// WrapNames returns the names of the WrapModes in alphabetical order.
func WrapNames() []string {
	return sortedKeys(WrapModes)
}

// FilterNames returns the names of the FilterModes in alphabetical order.
func FilterNames() []string {
	return sortedKeys(FilterModes)
}

func sortedKeys[V any](m map[string]V) []string {
	n := make([]string, 0, len(m))
	for k := range m {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
