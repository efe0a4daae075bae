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

package layout_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/layout"
	"github.com/jetsetilly/rendertarget/test"
)

// device is a minimal implementation of framebuffer.Device. it counts the
// number of GPU objects in existence
type device struct {
	id     uint32
	live   int
	specs  map[uint32]framebuffer.TextureSpec
	slots  map[framebuffer.Enum]uint32
	status framebuffer.Status
}

func newDevice() *device {
	return &device{
		specs: make(map[uint32]framebuffer.TextureSpec),
		slots: make(map[framebuffer.Enum]uint32),
	}
}

func (d *device) gen() uint32 {
	d.id++
	d.live++
	return d.id
}

func (d *device) GenFramebuffer() uint32 { return d.gen() }
func (d *device) DeleteFramebuffer(_ uint32) { d.live-- }
func (d *device) BindFramebuffer(_ uint32) {}
func (d *device) GenRenderbuffer() uint32 { return d.gen() }
func (d *device) DeleteRenderbuffer(_ uint32) { d.live-- }
func (d *device) AttachDepthRenderbuffer(_ uint32, _, _ int32) {}
func (d *device) GenTexture() uint32 { return d.gen() }
func (d *device) DeleteTexture(_ uint32) { d.live-- }
func (d *device) AttachTexture(slot framebuffer.Enum, id uint32) { d.slots[slot] = id }
func (d *device) UnbindTexture() {}
func (d *device) DisableColorBuffers() {}
func (d *device) DrawBuffers(_ []framebuffer.Enum) {}
func (d *device) CheckStatus() framebuffer.Status { return d.status }

func (d *device) AllocateTexture(id uint32, _, _ int32, spec framebuffer.TextureSpec) {
	d.specs[id] = spec
}

func TestParse(t *testing.T) {
	l, err := layout.Parse("depth, albedo:rgba8, normal:RGBA16F, position:rgba32f:5:repeat:nearest")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l.Depth)
	test.DemandEquality(t, len(l.Attachments), 3)

	test.ExpectEquality(t, l.Attachments[0], layout.Attachment{Name: "albedo", Preset: "rgba8", Slot: 0})
	test.ExpectEquality(t, l.Attachments[1], layout.Attachment{Name: "normal", Preset: "rgba16f", Slot: 1})
	test.ExpectEquality(t, l.Attachments[2], layout.Attachment{Name: "position", Preset: "rgba32f", Slot: 5, Wrap: "repeat", Filter: "nearest"})

	spec := l.Attachments[2].Spec()
	test.ExpectEquality(t, spec.InternalFormat, framebuffer.Presets["rgba32f"].InternalFormat)
	test.ExpectEquality(t, spec.Wrap, framebuffer.WrapModes["repeat"])
	test.ExpectEquality(t, spec.Filter, framebuffer.FilterModes["nearest"])

	// attachment without overrides uses the preset unchanged
	test.ExpectEquality(t, l.Attachments[0].Spec(), framebuffer.Presets["rgba8"])
}

func TestParseEmpty(t *testing.T) {
	l, err := layout.Parse("")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, l.Depth)
	test.ExpectEquality(t, len(l.Attachments), 0)

	l, err = layout.Parse("depth")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l.Depth)
	test.ExpectEquality(t, len(l.Attachments), 0)
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"albedo",
		"albedo:",
		":rgba8",
		"albedo:rgba9",
		"albedo:rgba8:x",
		"albedo:rgba8:16",
		"albedo:rgba8:-1",
		"albedo:rgba8:0:wobble",
		"albedo:rgba8:0:clamp:blurry",
		"albedo:rgba8:0:clamp:linear:extra",
		"depth:rgba8",
		"albedo:rgba8,ALBEDO:rgba16f",
		"albedo:rgba8:1,normal:rgba8:1",
	}

	for _, s := range bad {
		_, err := layout.Parse(s)
		test.ExpectFailure(t, err, s)
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{
		"",
		"depth",
		"depth,albedo:rgba8:0",
		"albedo:rgba8:3:repeat,normal:rg16f:0::nearest,spec:r32f:1:mirror:linear",
	} {
		l, err := layout.Parse(s)
		test.DemandSuccess(t, err, s)
		test.ExpectEquality(t, l.String(), s)

		// parsing the string form again produces the same string
		m, err := layout.Parse(l.String())
		test.DemandSuccess(t, err, s)
		test.ExpectEquality(t, m.String(), s)
	}
}

func TestApply(t *testing.T) {
	l, err := layout.Parse("depth,albedo:rgba8,normal:rgba16f:3:repeat")
	test.DemandSuccess(t, err)

	dev := newDevice()
	rt := framebuffer.NewRenderTarget(320, 200)
	test.DemandSuccess(t, l.Apply(dev, rt))

	test.ExpectEquality(t, rt.State(), framebuffer.Ready)
	test.ExpectSuccess(t, rt.HasDepth())
	test.ExpectEquality(t, rt.LookupIndex("albedo"), 0)
	test.ExpectEquality(t, rt.LookupIndex("normal"), 1)
	test.ExpectEquality(t, rt.LookupAttachmentSlot("normal"), framebuffer.ColorAttachment(3))

	tex := rt.LookupTexture("normal")
	test.ExpectEquality(t, dev.slots[framebuffer.ColorAttachment(3)], tex)
	test.ExpectEquality(t, dev.specs[tex].Wrap, framebuffer.WrapModes["repeat"])

	// framebuffer, renderbuffer and two textures
	test.ExpectEquality(t, dev.live, 4)

	// applying a second layout replaces the first
	l, err = layout.Parse("color:rgba8")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, l.Apply(dev, rt))
	test.ExpectFailure(t, rt.HasDepth())
	test.ExpectEquality(t, rt.LookupIndex("albedo"), framebuffer.NotFound)
	test.ExpectEquality(t, rt.LookupIndex("color"), 0)
	test.ExpectEquality(t, dev.live, 2)
}

func TestApplyIncomplete(t *testing.T) {
	l, err := layout.Parse("albedo:rgba8")
	test.DemandSuccess(t, err)

	dev := newDevice()
	dev.status = framebuffer.StatusUnsupported

	rt := framebuffer.NewRenderTarget(320, 200)
	err = l.Apply(dev, rt)
	test.DemandFailure(t, err)

	var ferr framebuffer.FramebufferError
	test.DemandSuccess(t, errors.As(err, &ferr))
	test.ExpectEquality(t, ferr.Status, framebuffer.StatusUnsupported)
	test.ExpectEquality(t, err.Error(), "layout: framebuffer: incomplete: unsupported framebuffer format")

	test.ExpectEquality(t, rt.State(), framebuffer.Uninitialized)
	test.ExpectEquality(t, dev.live, 0)
}

func TestApplyDuplicate(t *testing.T) {
	// a layout built directly, rather than with Parse(), is not checked for
	// duplicate names until it is applied
	l := layout.Layout{
		Attachments: []layout.Attachment{
			{Name: "albedo", Preset: "rgba8", Slot: 0},
			{Name: "Albedo", Preset: "rgba8", Slot: 1},
		},
	}

	dev := newDevice()
	rt := framebuffer.NewRenderTarget(320, 200)
	err := l.Apply(dev, rt)
	test.DemandFailure(t, err)

	var cerr framebuffer.ConfigurationError
	test.DemandSuccess(t, errors.As(err, &cerr))
	test.ExpectEquality(t, cerr.Reason, framebuffer.DuplicateAttachment)

	test.ExpectEquality(t, rt.State(), framebuffer.Uninitialized)
	test.ExpectEquality(t, dev.live, 0)
}
