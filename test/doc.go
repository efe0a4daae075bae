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

// Package test contains helper functions to remove common boilerplate from
// the testing of the rendertarget packages.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report failure with t.Fatalf() and are
// useful when further tests depend on the value being correct. For example,
// testing the length of a slice before iterating over it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that the nil value is considered a success. This is because of how
// errors usually work (nil indicates no error).
//
// The optional tags arguments are prepended to any failure message. They are
// useful for identifying which iteration of a loop caused the failure.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. CompareWriter.Compare() can then be used to test for
// equality.
package test
