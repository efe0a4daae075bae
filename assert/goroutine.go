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

// Package assert contains checks for conditions that must never happen. A
// failed check is a programming error and causes a panic.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the goroutine in which the function is
// called. The ID is taken from the first line of the goroutine's stack trace.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it. Resources that are tied to a
// single goroutine, such as a current GL context, embed an Owner and call
// Check() before every use.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GetGoRoutineID()}
}

// Check panics if the calling goroutine is not the owning goroutine. The
// context argument is included in the panic message.
func (o Owner) Check(context string) {
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("%s: used from goroutine %d but owned by goroutine %d", context, id, o.id))
	}
}
