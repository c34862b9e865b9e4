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

package system

import (
	"fmt"

	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/bus"
	"github.com/jetsetilly/commavid/hardware/memory/memorymap"
	"github.com/jetsetilly/commavid/logger"
)

// CodeAccessExecuted is the flag set in a device's code access buffer when an
// address is fetched as an instruction.
const CodeAccessExecuted = uint8(0x01)

// System is the host for devices on the bus.
type System struct {
	env *environment.Environment

	pages [memorymap.NumPages]bus.PageAccess

	// the most recent value to be placed on the data bus
	dataBusState uint8

	// count of every access to the bus
	cycles int64

	// freeze device state. see bus.BankLock interface
	locked bool

	// the number of times a device has reported a write caused by a read
	writePortReads int
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem(env *environment.Environment) *System {
	sys := &System{
		env: env,
	}
	env.Random.SetClock(sys)
	sys.Reset()
	return sys
}

func (sys *System) String() string {
	return fmt.Sprintf("cycles=%d bus=%#02x locked=%v", sys.cycles, sys.dataBusState, sys.locked)
}

// Reset empties the page table and the data bus. Devices will need to be
// installed again.
func (sys *System) Reset() {
	for i := range sys.pages {
		sys.pages[i] = bus.PageAccess{}
	}
	sys.dataBusState = 0
	sys.cycles = 0
	sys.writePortReads = 0
}

// Cycles implements the random.Clock interface.
func (sys *System) Cycles() int64 {
	return sys.cycles
}

// SetPageAccess implements the bus.PageRegistrar interface.
func (sys *System) SetPageAccess(page uint16, access bus.PageAccess) {
	sys.pages[int(page)%len(sys.pages)] = access
}

// GetPageAccess returns the access description for the page.
func (sys *System) GetPageAccess(page uint16) bus.PageAccess {
	return sys.pages[int(page)%len(sys.pages)]
}

// DataBusState implements the bus.DataBus interface.
func (sys *System) DataBusState(mask uint8) uint8 {
	if sys.env.Prefs.RandomPins.Get().(bool) {
		return (sys.dataBusState &^ mask) | (uint8(sys.env.Random.Rewindable(0x100)) & mask)
	}
	return sys.dataBusState
}

// SetDataBusState forces the value on the data bus. In a complete emulation
// the data bus would be driven by the CPU and the other chips.
func (sys *System) SetDataBusState(data uint8) {
	sys.dataBusState = data
}

// BankLocked implements the bus.BankLock interface.
func (sys *System) BankLocked() bool {
	return sys.locked
}

// SetBankLocked freezes or unfreezes the state of all attached devices.
func (sys *System) SetBankLocked(locked bool) {
	sys.locked = locked
}

// ReadFromWritePort implements the bus.WritePortMonitor interface.
func (sys *System) ReadFromWritePort(address uint16) {
	sys.writePortReads++
	logger.Logf(sys.env, "system", "read from write port (%#04x)", address)
}

// WritePortReads returns the number of times a device has reported a write
// caused by a read.
func (sys *System) WritePortReads() int {
	return sys.writePortReads
}

// Peek is a read access by the CPU.
func (sys *System) Peek(address uint16) uint8 {
	sys.cycles++

	a := sys.pages[memorymap.Page(address)]

	var data uint8
	if a.CanRead() {
		data = a.PeekBase[address&memorymap.PageMask]
	} else if a.Device != nil {
		data = a.Device.Peek(address)
	} else {
		data = sys.DataBusState(0xff)
	}

	sys.dataBusState = data
	return data
}

// Fetch is a read access by the CPU of an instruction byte. It is the same as
// Peek() except that the address is marked as executed in the code access
// buffer of the device, if it has one.
func (sys *System) Fetch(address uint16) uint8 {
	data := sys.Peek(address)
	a := sys.pages[memorymap.Page(address)]
	if a.CodeAccessBase != nil {
		a.CodeAccessBase[address&memorymap.PageMask] |= CodeAccessExecuted
	}
	return data
}

// Poke is a write access by the CPU. Returns false if nothing handled the
// write.
func (sys *System) Poke(address uint16, data uint8) bool {
	sys.cycles++
	sys.dataBusState = data

	a := sys.pages[memorymap.Page(address)]

	if a.CanWrite() {
		a.PokeBase[address&memorymap.PageMask] = data
		return true
	}
	if a.Device != nil {
		return a.Device.Poke(address, data)
	}
	return false
}

// PeekPassive implements the bus.DebuggerBus interface.
func (sys *System) PeekPassive(address uint16) uint8 {
	a := sys.pages[memorymap.Page(address)]
	if a.CanRead() {
		return a.PeekBase[address&memorymap.PageMask]
	}
	return sys.dataBusState
}

// Patch implements the bus.DebuggerBus interface.
func (sys *System) Patch(address uint16, data uint8) bool {
	a := sys.pages[memorymap.Page(address)]
	if p, ok := a.Device.(bus.Patchable); ok {
		return p.Patch(address, data)
	}
	return false
}
