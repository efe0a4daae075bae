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

package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/rendertarget/framebuffer"
)

// the entry that requests a depth buffer
const depthEntry = "depth"

// Attachment is a single color attachment in a Layout.
type Attachment struct {
	Name   string
	Preset string

	// the color attachment number
	Slot int

	// empty strings indicate the preset's value should be used
	Wrap   string
	Filter string
}

// Spec returns the texture specification for the attachment.
func (a Attachment) Spec() framebuffer.TextureSpec {
	spec := framebuffer.Presets[a.Preset]
	if a.Wrap != "" {
		spec.Wrap = framebuffer.WrapModes[a.Wrap]
	}
	if a.Filter != "" {
		spec.Filter = framebuffer.FilterModes[a.Filter]
	}
	return spec
}

func (a Attachment) String() string {
	s := fmt.Sprintf("%s:%s:%d", a.Name, a.Preset, a.Slot)
	if a.Wrap != "" || a.Filter != "" {
		s = fmt.Sprintf("%s:%s", s, a.Wrap)
	}
	if a.Filter != "" {
		s = fmt.Sprintf("%s:%s", s, a.Filter)
	}
	return s
}

// Layout is the description of a render target's attachments.
type Layout struct {
	Depth       bool
	Attachments []Attachment
}

func (l Layout) String() string {
	var s []string
	if l.Depth {
		s = append(s, depthEntry)
	}
	for _, a := range l.Attachments {
		s = append(s, a.String())
	}
	return strings.Join(s, ",")
}

// Parse a layout string. See the package documentation for the format.
func Parse(s string) (Layout, error) {
	var l Layout

	names := make(map[string]bool)
	slots := make(map[int]bool)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.EqualFold(entry, depthEntry) {
			l.Depth = true
			continue
		}

		a, err := parseAttachment(entry, len(l.Attachments))
		if err != nil {
			return Layout{}, err
		}

		key := strings.ToLower(a.Name)
		if names[key] {
			return Layout{}, fmt.Errorf("layout: attachment %s specified more than once", a.Name)
		}
		names[key] = true

		if slots[a.Slot] {
			return Layout{}, fmt.Errorf("layout: slot %d used by more than one attachment", a.Slot)
		}
		slots[a.Slot] = true

		l.Attachments = append(l.Attachments, a)
	}

	return l, nil
}

func parseAttachment(entry string, position int) (Attachment, error) {
	f := strings.Split(entry, ":")
	if len(f) < 2 || len(f) > 5 {
		return Attachment{}, fmt.Errorf("layout: %s: expected name:preset[:slot[:wrap[:filter]]]", entry)
	}
	for i := range f {
		f[i] = strings.TrimSpace(f[i])
	}

	a := Attachment{
		Name:   f[0],
		Preset: strings.ToLower(f[1]),
		Slot:   position,
	}

	if a.Name == "" {
		return Attachment{}, fmt.Errorf("layout: %s: attachment has no name", entry)
	}
	if strings.EqualFold(a.Name, depthEntry) {
		return Attachment{}, fmt.Errorf("layout: %s: %s is not a valid attachment name", entry, a.Name)
	}
	if _, ok := framebuffer.Presets[a.Preset]; !ok {
		return Attachment{}, fmt.Errorf("layout: %s: unknown preset (%s)", entry, f[1])
	}

	if len(f) > 2 && f[2] != "" {
		n, err := strconv.Atoi(f[2])
		if err != nil {
			return Attachment{}, fmt.Errorf("layout: %s: slot: %w", entry, err)
		}
		a.Slot = n
	}
	if framebuffer.ColorAttachment(a.Slot) == framebuffer.InvalidEnum {
		return Attachment{}, fmt.Errorf("layout: %s: slot must be between 0 and %d", entry, framebuffer.MaxColorAttachments-1)
	}

	if len(f) > 3 && f[3] != "" {
		a.Wrap = strings.ToLower(f[3])
		if _, ok := framebuffer.WrapModes[a.Wrap]; !ok {
			return Attachment{}, fmt.Errorf("layout: %s: unknown wrap mode (%s)", entry, f[3])
		}
	}

	if len(f) > 4 && f[4] != "" {
		a.Filter = strings.ToLower(f[4])
		if _, ok := framebuffer.FilterModes[a.Filter]; !ok {
			return Attachment{}, fmt.Errorf("layout: %s: unknown filter mode (%s)", entry, f[4])
		}
	}

	return a, nil
}

// Apply configures the render target with the layout. Any existing
// configuration of the render target is lost. If an error occurs the render
// target is cleared.
func (l Layout) Apply(dev framebuffer.Device, rt *framebuffer.RenderTarget) error {
	rt.BeginConfiguration(dev, l.Depth)

	for _, a := range l.Attachments {
		err := rt.AddAttachment(dev, a.Name, a.Spec(), framebuffer.ColorAttachment(a.Slot))
		if err != nil {
			rt.Clear(dev)
			return fmt.Errorf("layout: %w", err)
		}
	}

	err := rt.EndConfiguration(dev)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	return nil
}
