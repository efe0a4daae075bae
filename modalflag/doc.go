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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// A Modes struct is initialised with the program arguments, the modes are
// added and the arguments parsed:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "presets", "version")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default and is selected if the first argument is
// not a sub-mode. Mode names are case insensitive and are always returned in
// upper case by Mode().
//
// Flags for the selected mode are added after a call to NewMode() and before
// the next call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		width := md.AddInt("width", 256, "width of render target")
//		p, err := md.Parse()
//		...
//	}
//
// Asking for help with -help or -h prints the flags for the current mode along
// with the available sub-modes.
package modalflag
