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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/glcontext"
	"github.com/jetsetilly/rendertarget/gldevice"
	"github.com/jetsetilly/rendertarget/layout"
	"github.com/jetsetilly/rendertarget/logger"
	"github.com/jetsetilly/rendertarget/modalflag"
	"github.com/jetsetilly/rendertarget/statsview"
	"github.com/jetsetilly/rendertarget/version"
)

const defaultLayout = "depth,albedo:rgba8,normal:rgba16f"

func init() {
	// windowing and GL calls must happen on the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PRESETS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PRESETS":
		err = presets(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(10)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("layout format is a comma separated list of entries. the entry 'depth' requests\n"+
		"a depth buffer. every other entry is name:preset[:slot[:wrap[:filter]]]\n"+
		"default layout is %s", defaultLayout))

	width := md.AddInt("width", 256, "width of render target")
	height := md.AddInt("height", 256, "height of render target")
	spec := md.AddString("layout", defaultLayout, "attachments of render target")
	frames := md.AddInt("frames", 1, "number of frames to render")
	visible := md.AddBool("visible", false, "show window")
	log := md.AddBool("log", false, "echo log to stdout")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("render target dimensions must be greater than zero")
	}
	if *frames <= 0 {
		return fmt.Errorf("number of frames must be greater than zero")
	}

	l, err := layout.Parse(*spec)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	ctx, err := glcontext.New(glcontext.Config{
		Title:   version.ApplicationName,
		Width:   int32(*width),
		Height:  int32(*height),
		Major:   gldevice.Required.Major,
		Minor:   gldevice.Required.Minor,
		Core:    gldevice.Required.Core,
		Visible: *visible,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := ctx.Destroy(); err != nil {
			logger.Log(logger.Allow, "main", err)
		}
	}()

	dev, err := gldevice.New()
	if err != nil {
		return err
	}

	rt := framebuffer.NewRenderTarget(int32(*width), int32(*height))
	defer rt.Clear(dev)

	err = l.Apply(dev, rt)
	if err != nil {
		return err
	}

	var clr [4]float32
	for i := 0; i < *frames && ctx.Service(); i++ {
		clr = frameColor(i)

		rt.Bind(dev)
		dev.Viewport(rt.Dimensions())
		dev.Clear(clr[0], clr[1], clr[2], clr[3])
		framebuffer.Unbind(dev)

		dev.Viewport(ctx.Size())
		dev.Clear(0.0, 0.0, 0.0, 1.0)
		ctx.Swap()
	}

	w := tabwriter.NewWriter(md.Output, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", rt)
	fmt.Fprintf(w, "index\tname\ttexture\tslot\tpixel\n")

	rt.Bind(dev)
	for _, a := range rt.Attachments() {
		px := dev.ReadPixel(a.Slot, 0, 0)
		fmt.Fprintf(w, "%d\t%s\t%d\t%#04x\t%v\n", a.Index, a.Name, a.Texture, a.Slot, px)
	}
	framebuffer.Unbind(dev)

	fmt.Fprintf(w, "cleared to %v\n", clr)
	return w.Flush()
}

// frameColor returns the color to clear the render target with for frame n.
// the color changes every frame so that a stale attachment is noticeable
func frameColor(n int) [4]float32 {
	v := float32(n%8) / 7.0
	return [4]float32{v, 1.0 - v, 0.5, 1.0}
}

func presets(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	w := tabwriter.NewWriter(md.Output, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "preset\tinternal\tformat\ttype\n")
	for _, n := range framebuffer.PresetNames() {
		s := framebuffer.Presets[n]
		fmt.Fprintf(w, "%s\t%#04x\t%#04x\t%#04x\n", n, s.InternalFormat, s.SourceFormat, s.PixelType)
	}
	fmt.Fprintf(w, "\nwrap modes\t%v\n", framebuffer.WrapNames())
	fmt.Fprintf(w, "filter modes\t%v\n", framebuffer.FilterNames())
	return w.Flush()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	io.WriteString(md.Output, fmt.Sprintf("%s %s\n", version.ApplicationName, v))
	if *revision {
		io.WriteString(md.Output, fmt.Sprintf("%s\n", r))
	}
	return nil
}
