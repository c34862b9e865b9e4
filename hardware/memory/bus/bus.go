// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package bus

import (
	"fmt"
)

// Device is implemented by anything that can be attached to the bus.
type Device interface {
	// Peek is called for a read access that is not satisfied by the page
	// table. The read may have side effects.
	Peek(address uint16) uint8

	// Poke is called for a write access that is not satisfied by the page
	// table. Returns false if the write was not handled by the device.
	Poke(address uint16, data uint8) bool
}

// AccessKind indicates the direction in which the page can be accessed.
type AccessKind int

// List of valid AccessKind values.
const (
	PageRead AccessKind = iota
	PageWrite
	PageReadWrite
)

func (k AccessKind) String() string {
	switch k {
	case PageRead:
		return "read"
	case PageWrite:
		return "write"
	case PageReadWrite:
		return "read/write"
	}
	panic("unknown AccessKind")
}

// PageAccess describes how a single page of the address space is to be
// accessed by the host.
//
// The slices are views into buffers owned by the device. The host must not
// keep them beyond the lifetime of the device and must only access them from
// the emulation goroutine. Index zero of each slice corresponds to the first
// address of the page. A nil slice means that the host must pass accesses of
// that type to the Device.
type PageAccess struct {
	Kind   AccessKind
	Device Device

	// data returned by a read access
	PeekBase []uint8

	// location of data written by a write access
	PokeBase []uint8

	// annotations of each address in the page. used by tools to record which
	// addresses have been executed or traced
	CodeAccessBase []uint8
}

func (a PageAccess) String() string {
	return fmt.Sprintf("%s peek=%v poke=%v code=%v", a.Kind, a.PeekBase != nil, a.PokeBase != nil, a.CodeAccessBase != nil)
}

// CanRead returns true if a read access can be satisfied without calling the
// Device.
func (a PageAccess) CanRead() bool {
	return a.Kind != PageWrite && a.PeekBase != nil
}

// CanWrite returns true if a write access can be satisfied without calling the
// Device.
func (a PageAccess) CanWrite() bool {
	return a.Kind != PageRead && a.PokeBase != nil
}

// PageRegistrar is implemented by the host and is used by a device to install
// itself into the address space.
type PageRegistrar interface {
	SetPageAccess(page uint16, access PageAccess)
}

// DataBus is implemented by a host that can report the state of the data bus.
type DataBus interface {
	// DataBusState returns the value on the data bus. Bits set in the mask
	// argument are not being driven and so take a floating value.
	DataBusState(mask uint8) uint8
}

// WritePortMonitor is implemented by a host that wants to be notified when a
// device has performed a write as a consequence of a read access.
type WritePortMonitor interface {
	ReadFromWritePort(address uint16)
}

// BankLock is implemented by a host that can freeze the state of devices.
// Usually this is a debugger that wants to inspect memory without the
// inspection causing side effects.
type BankLock interface {
	BankLocked() bool
}
