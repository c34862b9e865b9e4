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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/bus"
	"github.com/jetsetilly/commavid/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/commavid/hardware/memory/memorymap"
	"github.com/jetsetilly/commavid/logger"
	"github.com/jetsetilly/commavid/serializer"
)

// from bankswitch_sizes.txt:
//
// -CV: Commavid. This is a 2K ROM with 1K of RAM. The 1K of RAM is accessed
// at 1000-13FF for reading and 1400-17FF for writing. The 2K of ROM sits at
// 1800-1FFF. Reading from the write port will write whatever value happens
// to be on the data bus into the RAM.
//
// Some cartridge images are 4K long. The first 1K of the file is the
// initial contents of the RAM, the next 1K is unused and the last 2K is the
// ROM. Useful for MagiCard program listings.
//
// cartridges:
//	- MagiCard
//	- Video Life
type commavid struct {
	env *environment.Environment

	mappingID   string
	description string

	// the 2K ROM image
	image []uint8

	// contents of RAM after a reset. nil if the cartridge data did not
	// include a RAM image
	initialRAM []uint8

	// annotations for every address in the cartridge. the first 2K covers the
	// ROM and the last 1K covers the RAM. the buffer is referenced by the host
	// through the CodeAccessBase of each page and is not used by the mapper
	// itself
	codeAccess []uint8

	// the host the cartridge has been installed into. nil if the cartridge
	// has not been installed
	host bus.PageRegistrar

	// the mapping or content of the cartridge has changed
	bankChanged bool

	// rewindable state
	state *commavidState
}

// sizes of the different areas of the commavid cartridge
const (
	commavidImageSize      = 2048
	commavidRAMSize        = 1024
	commavidCombinedSize   = 4096
	commavidCodeAccessSize = commavidImageSize + commavidRAMSize
)

// masks used to mirror an address into the ROM image and RAM
const (
	commavidImageMask = uint16(commavidImageSize - 1)
	commavidRAMMask   = uint16(commavidRAMSize - 1)
)

// origin and memtop of each region of the address space. these are
// normalised cartridge addresses. add memorymap.OriginCart for the address
// in the primary mirror
const (
	commavidOriginReadPort  = uint16(0x0000)
	commavidMemtopReadPort  = uint16(0x03ff)
	commavidOriginWritePort = uint16(0x0400)
	commavidMemtopWritePort = uint16(0x07ff)
	commavidOriginROM       = uint16(0x0800)
	commavidMemtopROM       = uint16(0x0fff)
)

// the identity of the cartridge in saved state
const commavidName = "CartridgeCV"

// NewCommaVid creates a new commavid cartridge from the data. The data must
// be either 2048 or 4096 bytes long.
func NewCommaVid(env *environment.Environment, data []byte) (mapper.CartMapper, error) {
	return newCommaVid(env, data)
}

func newCommaVid(env *environment.Environment, data []byte) (*commavid, error) {
	cart := &commavid{
		env:         env,
		mappingID:   "CV",
		description: "CommaVid",
		image:       make([]uint8, commavidImageSize),
		codeAccess:  make([]uint8, commavidCodeAccessSize),
		state:       newCommavidState(),
	}

	switch len(data) {
	case commavidImageSize:
		copy(cart.image, data)
	case commavidCombinedSize:
		copy(cart.image, data[commavidImageSize:])
		cart.initialRAM = make([]uint8, commavidRAMSize)
		copy(cart.initialRAM, data[:commavidRAMSize])
	default:
		return nil, fmt.Errorf("%s: %w: wrong number of bytes in the cartridge data (%d)", cart.mappingID, ErrConstruction, len(data))
	}

	cart.Reset()

	return cart, nil
}

func (cart *commavid) String() string {
	if cart.initialRAM != nil {
		return fmt.Sprintf("%s [%s] RAM from image", cart.mappingID, cart.description)
	}
	return fmt.Sprintf("%s [%s]", cart.mappingID, cart.description)
}

// ID implements the mapper.CartMapper interface.
func (cart *commavid) ID() string {
	return cart.mappingID
}

// Name implements the mapper.CartMapper interface.
func (cart *commavid) Name() string {
	return commavidName
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *commavid) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *commavid) Plumb(env *environment.Environment) {
	cart.env = env
}

// Reset implements the mapper.CartMapper interface.
func (cart *commavid) Reset() {
	if cart.initialRAM != nil {
		copy(cart.state.ram, cart.initialRAM)
	} else {
		for i := range cart.state.ram {
			if cart.env.Prefs.RandomState.Get().(bool) {
				cart.state.ram[i] = uint8(cart.env.Random.NoRewind(0xff))
			} else {
				cart.state.ram[i] = 0
			}
		}
	}

	cart.bankChanged = true
}

// page returns a view of a single page of the buffer. the capacity of the view
// is limited so the host cannot reach beyond the page.
func page(buf []uint8, idx uint16) []uint8 {
	return buf[idx : idx+memorymap.PageSize : idx+memorymap.PageSize]
}

// Install implements the mapper.CartMapper interface.
func (cart *commavid) Install(host bus.PageRegistrar) {
	cart.host = host

	// map ROM image into the system
	for addr := commavidOriginROM; addr <= commavidMemtopROM; addr += memorymap.PageSize {
		idx := addr & commavidImageMask
		host.SetPageAccess(memorymap.Page(addr|memorymap.OriginCart), bus.PageAccess{
			Kind:           bus.PageRead,
			Device:         cart,
			PeekBase:       page(cart.image, idx),
			CodeAccessBase: page(cart.codeAccess, idx),
		})
	}

	// writes to the write port go straight to RAM. reads of the write port
	// are not described by the page and so will be handled by Peek()
	for addr := commavidOriginWritePort; addr <= commavidMemtopWritePort; addr += memorymap.PageSize {
		idx := addr & commavidRAMMask
		host.SetPageAccess(memorymap.Page(addr|memorymap.OriginCart), bus.PageAccess{
			Kind:     bus.PageWrite,
			Device:   cart,
			PokeBase: page(cart.state.ram, idx),
		})
	}

	// reads from the read port come straight from RAM
	for addr := commavidOriginReadPort; addr <= commavidMemtopReadPort; addr += memorymap.PageSize {
		idx := addr & commavidRAMMask
		host.SetPageAccess(memorymap.Page(addr|memorymap.OriginCart), bus.PageAccess{
			Kind:           bus.PageRead,
			Device:         cart,
			PeekBase:       page(cart.state.ram, idx),
			CodeAccessBase: page(cart.codeAccess, commavidImageSize+idx),
		})
	}
}

// Peek implements the bus.Device interface.
func (cart *commavid) Peek(addr uint16) uint8 {
	if addr&memorymap.CartridgeBits > commavidMemtopWritePort {
		return cart.image[addr&commavidImageMask]
	}

	// reading from the write port triggers an unwanted write of whatever is
	// on the data bus
	var data uint8
	if db, ok := cart.host.(bus.DataBus); ok {
		data = db.DataBusState(0xff)
	}

	if l, ok := cart.host.(bus.BankLock); ok && l.BankLocked() {
		return data
	}

	if m, ok := cart.host.(bus.WritePortMonitor); ok {
		m.ReadFromWritePort(addr)
	}

	cart.state.ram[addr&commavidRAMMask] = data
	return data
}

// Poke implements the bus.Device interface.
//
// Writes to RAM are handled by the page table set up by Install() and never
// reach this function. There is nothing else in the cartridge that can be
// written to.
func (cart *commavid) Poke(_ uint16, _ uint8) bool {
	return false
}

// Patch implements the mapper.CartMapper interface.
func (cart *commavid) Patch(addr uint16, data uint8) bool {
	addr &= memorymap.CartridgeBits

	// patching ignores the read/write restrictions of the RAM ports. patching
	// either port writes to RAM
	if addr <= commavidMemtopWritePort {
		cart.state.ram[addr&commavidRAMMask] = data
	} else {
		cart.image[addr&commavidImageMask] = data
	}

	cart.bankChanged = true
	return true
}

// BankChanged implements the mapper.CartMapper interface.
func (cart *commavid) BankChanged() bool {
	changed := cart.bankChanged
	cart.bankChanged = false
	return changed
}

// GetImage implements the mapper.CartImage interface.
func (cart *commavid) GetImage() []uint8 {
	return cart.image
}

// HasInitialRAM returns true if the cartridge data included a RAM image.
func (cart *commavid) HasInitialRAM() bool {
	return cart.initialRAM != nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *commavid) NumBanks() int {
	return 1
}

// GetBank implements the mapper.CartMapper interface.
func (cart *commavid) GetBank(addr uint16) mapper.BankInfo {
	return mapper.BankInfo{Number: 0, IsRAM: addr&memorymap.CartridgeBits <= commavidMemtopWritePort}
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *commavid) GetRAM() []mapper.CartRAM {
	r := make([]mapper.CartRAM, 1)
	r[0] = mapper.CartRAM{
		Label:  "CommaVid",
		Origin: memorymap.OriginCart | commavidOriginReadPort,
		Data:   make([]uint8, len(cart.state.ram)),
		Mapped: true,
	}
	copy(r[0].Data, cart.state.ram)
	return r
}

// PutRAM implements the mapper.CartRAMbus interface.
func (cart *commavid) PutRAM(_ int, idx int, data uint8) {
	cart.state.ram[idx] = data
}

// Save implements the mapper.CartMapper interface.
func (cart *commavid) Save(s *serializer.Serializer) error {
	s.PutString(cart.Name())
	if err := s.PutByteArray(cart.state.ram); err != nil {
		logger.Logf(cart.env, cart.mappingID, "save: %v", err)
		return fmt.Errorf("%s: %w: %w", cart.mappingID, ErrSave, err)
	}
	return nil
}

// Load implements the mapper.CartMapper interface.
func (cart *commavid) Load(s *serializer.Serializer) error {
	name, err := s.GetString()
	if err != nil {
		logger.Logf(cart.env, cart.mappingID, "load: %v", err)
		return fmt.Errorf("%s: %w: %w", cart.mappingID, ErrLoad, err)
	}

	if name != cart.Name() {
		return fmt.Errorf("%s: %w (%s)", cart.mappingID, ErrNotMyState, name)
	}

	// read into a temporary buffer so that RAM is left untouched if the
	// state is incomplete
	ram := make([]uint8, commavidRAMSize)
	if err := s.GetByteArray(ram); err != nil {
		logger.Logf(cart.env, cart.mappingID, "load: %v", err)
		return fmt.Errorf("%s: %w: %w", cart.mappingID, ErrLoad, err)
	}
	copy(cart.state.ram, ram)

	return nil
}

// rewindable state for the commavid cartridge.
type commavidState struct {
	ram []uint8
}

func newCommavidState() *commavidState {
	return &commavidState{
		ram: make([]uint8, commavidRAMSize),
	}
}

// Snapshot implements the mapper.CartMapper interface.
func (s *commavidState) Snapshot() *commavidState {
	n := *s
	n.ram = make([]uint8, len(s.ram))
	copy(n.ram, s.ram)
	return &n
}
