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

package mapper

import (
	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/bus"
	"github.com/jetsetilly/commavid/serializer"
)

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses. For
// convenience, functions with an address argument receive that address
// normalised to a range of 0x0000 to 0x0fff.
type CartMapper interface {
	ID() string

	// Name is the identity of the mapper used to tag saved state.
	Name() string

	// Snapshot returns a copy of the mapper with its own copy of the volatile
	// state. Plumb attaches the mapper to a new environment.
	Snapshot() CartMapper
	Plumb(env *environment.Environment)

	// Install the mapper into the host's address space. Install can be
	// called more than once and will always produce the same mapping.
	Install(host bus.PageRegistrar)

	// Reset volatile areas of the cartridge. Sets the bank changed flag.
	Reset()

	// Peek and Poke implement the bus.Device interface.
	bus.Device

	// Patch writes to the cartridge ignoring the read/write restrictions of
	// the hardware. Sets the bank changed flag.
	Patch(addr uint16, data uint8) bool

	// BankChanged returns true if the mapping or contents of the cartridge
	// has changed since the last call to BankChanged().
	BankChanged() bool

	NumBanks() int
	GetBank(addr uint16) BankInfo

	// Save and Load the volatile state of the mapper.
	Save(s *serializer.Serializer) error
	Load(s *serializer.Serializer) error
}

// CartImage is implemented by mappers that can return their ROM image.
type CartImage interface {
	// GetImage returns the live ROM data. The returned slice must not be
	// modified.
	GetImage() []uint8
}

// CartRAMbus is implemented for catridges that have on-board RAM.
type CartRAMbus interface {
	GetRAM() []CartRAM

	// Update the value at the index of the specified RAM bank. Note that this
	// is not the address; it refers to the Data array as returned by GetRAM()
	PutRAM(bank int, idx int, data uint8)
}

// CartRAM represents a single segment of RAM in the cartridge. A cartridge may
// contain more than one segment of RAM. The Label field can help distinguish
// between the different segments.
//
// The Origin field specifies the address of the lowest byte in RAM. The Data
// field is a copy of the actual bytes in the cartidge RAM. Because Data is in
// addressable space, the address of a byte in RAM can be calculated from
// Origin and the index of Data.
type CartRAM struct {
	Label  string
	Origin uint16
	Data   []uint8
	Mapped bool
}
