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
	"crypto/sha1"
	"fmt"
	"strings"

	"github.com/jetsetilly/commavid/cartridgeloader"
	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/bus"
	"github.com/jetsetilly/commavid/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/commavid/logger"
	"github.com/jetsetilly/commavid/serializer"
)

// Cartridge defines the information and operations for a VCS cartridge.
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces. nil if no cartridge is attached
	mapper mapper.CartMapper
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type.
func NewCartridge(env *environment.Environment) *Cartridge {
	cart := &Cartridge{env: env}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return "ejected"
	}
	return fmt.Sprintf("%s (%s)", cart.Filename, cart.mapper)
}

// ID returns the cartridge mapping ID.
func (cart *Cartridge) ID() string {
	if cart.IsEjected() {
		return "-"
	}
	return cart.mapper.ID()
}

// Eject removes the cartridge. Any host the cartridge was installed into
// must be reset before the cartridge memory is discarded.
func (cart *Cartridge) Eject() {
	cart.Filename = ""
	cart.Hash = ""
	cart.mapper = nil
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper == nil
}

// GetMapper returns the current cartridge mapper. Returns nil if no
// cartridge is attached.
func (cart *Cartridge) GetMapper() mapper.CartMapper {
	return cart.mapper
}

// Attach the cartridge data from the loader. The loader will be asked to load
// the data if it has not done so already.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.Eject()

	if err := cartload.Load(); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cartload.Data))
	if cartload.Hash != "" && cartload.Hash != hash {
		return fmt.Errorf("cartridge: %w", ErrUnexpectedHash)
	}

	var create mapperCreator
	var err error

	mapping := strings.ToUpper(cartload.Mapping)
	switch mapping {
	case "", cartridgeloader.AutoMapping:
		create, err = cart.fingerprint(cartload.Data)
		if err != nil {
			return err
		}
	case "CV":
		create = NewCommaVid
	default:
		return fmt.Errorf("cartridge: %w (%s)", ErrUnsupportedMapping, mapping)
	}

	m, err := create(cart.env, cartload.Data)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	cart.mapper = m
	cart.Filename = cartload.Filename
	cart.Hash = hash

	logger.Logf(cart.env, "cartridge", "attached %s as %s", cartload.ShortName(), m.ID())

	return nil
}

// Install the cartridge into the host address space.
func (cart *Cartridge) Install(host bus.PageRegistrar) error {
	if cart.IsEjected() {
		return fmt.Errorf("cartridge: %w", ErrNoCartridge)
	}
	cart.mapper.Install(host)
	return nil
}

// Reset volatile areas of the cartridge.
func (cart *Cartridge) Reset() {
	if cart.IsEjected() {
		return
	}
	cart.mapper.Reset()
}

// Peek implements the bus.Device interface. An ejected cartridge returns zero.
func (cart *Cartridge) Peek(addr uint16) uint8 {
	if cart.IsEjected() {
		return 0
	}
	return cart.mapper.Peek(addr)
}

// Poke implements the bus.Device interface.
func (cart *Cartridge) Poke(addr uint16, data uint8) bool {
	if cart.IsEjected() {
		return false
	}
	return cart.mapper.Poke(addr, data)
}

// Patch writes to cartridge memory ignoring the hardware restrictions.
func (cart *Cartridge) Patch(addr uint16, data uint8) bool {
	if cart.IsEjected() {
		return false
	}
	return cart.mapper.Patch(addr, data)
}

// BankChanged returns true if the mapping or contents of the cartridge has
// changed since the previous call.
func (cart *Cartridge) BankChanged() bool {
	if cart.IsEjected() {
		return false
	}
	return cart.mapper.BankChanged()
}

// GetBank returns information about the bank at the address.
func (cart *Cartridge) GetBank(addr uint16) mapper.BankInfo {
	if cart.IsEjected() {
		return mapper.BankInfo{}
	}
	return cart.mapper.GetBank(addr)
}

// GetImage returns the ROM image of the cartridge. The returned slice must
// not be modified.
func (cart *Cartridge) GetImage() ([]uint8, error) {
	if cart.IsEjected() {
		return nil, fmt.Errorf("cartridge: %w", ErrNoCartridge)
	}
	if img, ok := cart.mapper.(mapper.CartImage); ok {
		return img.GetImage(), nil
	}
	return nil, fmt.Errorf("cartridge: %s does not expose its image", cart.mapper.ID())
}

// GetRAMbus returns the mapper's RAM bus, if it has one.
func (cart *Cartridge) GetRAMbus() mapper.CartRAMbus {
	if r, ok := cart.mapper.(mapper.CartRAMbus); ok {
		return r
	}
	return nil
}

// Save the volatile state of the cartridge.
func (cart *Cartridge) Save(s *serializer.Serializer) error {
	if cart.IsEjected() {
		return fmt.Errorf("cartridge: %w", ErrNoCartridge)
	}
	return cart.mapper.Save(s)
}

// Load the volatile state of the cartridge.
func (cart *Cartridge) Load(s *serializer.Serializer) error {
	if cart.IsEjected() {
		return fmt.Errorf("cartridge: %w", ErrNoCartridge)
	}
	return cart.mapper.Load(s)
}
