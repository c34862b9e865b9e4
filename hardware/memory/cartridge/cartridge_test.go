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

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/commavid/cartridgeloader"
	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/cartridge"
	"github.com/jetsetilly/commavid/hardware/memory/system"
	"github.com/jetsetilly/commavid/serializer"
	"github.com/jetsetilly/commavid/test"
)

// a 2K image that contains the STA $F400,Y instruction
func commavidROM() []byte {
	data := make([]byte, 2048)
	copy(data[0x100:], []byte{0x99, 0x00, 0xf4})
	return data
}

func newCartridge(t *testing.T) (*cartridge.Cartridge, *system.System) {
	t.Helper()
	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return cartridge.NewCartridge(env), system.NewSystem(env)
}

func TestEjected(t *testing.T) {
	cart, sys := newCartridge(t)

	test.ExpectSuccess(t, cart.IsEjected())
	test.ExpectEquality(t, cart.ID(), "-")
	test.ExpectEquality(t, cart.String(), "ejected")
	test.ExpectEquality(t, cart.Peek(0x1000), 0x00)
	test.ExpectFailure(t, cart.Poke(0x1400, 0x00))
	test.ExpectFailure(t, cart.Patch(0x1400, 0x00))
	test.ExpectFailure(t, cart.BankChanged())

	test.ExpectError(t, cart.Install(sys), cartridge.ErrNoCartridge)
	_, err := cart.GetImage()
	test.ExpectError(t, err, cartridge.ErrNoCartridge)

	var buf bytes.Buffer
	test.ExpectError(t, cart.Save(serializer.NewWriter(&buf)), cartridge.ErrNoCartridge)
	test.ExpectError(t, cart.Load(serializer.NewReader(&buf)), cartridge.ErrNoCartridge)
}

func TestFingerprint(t *testing.T) {
	cart, sys := newCartridge(t)

	// 2K image with signature
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", commavidROM(), ""))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "CV")
	test.ExpectSuccess(t, cart.Install(sys))

	// 4K image with the alternative signature in the ROM half
	data := make([]byte, 4096)
	copy(data[0x0900:], []byte{0x9d, 0xff, 0xf3})
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", data, cartridgeloader.AutoMapping))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "CV")

	// signature in the RAM half only is not enough
	data = make([]byte, 4096)
	copy(data[0x0100:], []byte{0x9d, 0xff, 0xf3})
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", data, ""))
	test.ExpectError(t, err, cartridge.ErrUnsupportedMapping)
	test.ExpectSuccess(t, cart.IsEjected())

	// no signature
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", make([]byte, 2048), ""))
	test.ExpectError(t, err, cartridge.ErrUnsupportedMapping)

	// wrong size
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", make([]byte, 8192), ""))
	test.ExpectError(t, err, cartridge.ErrUnsupportedMapping)
}

func TestForcedMapping(t *testing.T) {
	cart, _ := newCartridge(t)

	// no signature is required if the mapping is specified
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", make([]byte, 2048), "cv"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "CV")

	// the file extension implies the mapping
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.cv", make([]byte, 2048), ""))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "CV")

	// but the size must still be correct
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", make([]byte, 1000), "CV"))
	test.ExpectError(t, err, cartridge.ErrConstruction)

	err = cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", make([]byte, 2048), "F8"))
	test.ExpectError(t, err, cartridge.ErrUnsupportedMapping)
}

func TestUnexpectedHash(t *testing.T) {
	cart, _ := newCartridge(t)

	ld := cartridgeloader.NewLoaderFromData("test.bin", commavidROM(), "")
	ld.Hash = "0000"
	test.ExpectFailure(t, cart.Attach(ld))
	test.ExpectSuccess(t, cart.IsEjected())
}

func TestAttached(t *testing.T) {
	cart, sys := newCartridge(t)

	rom := commavidROM()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("test.bin", rom, "")))
	test.DemandSuccess(t, cart.Install(sys))

	img, err := cart.GetImage()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(img, rom))

	test.ExpectSuccess(t, sys.Poke(0x1400, 0x42))
	test.ExpectEquality(t, sys.Peek(0x1000), 0x42)
	test.ExpectEquality(t, sys.Peek(0x1901), 0x00)
	test.ExpectEquality(t, sys.Peek(0x1902), 0xf4)

	var buf bytes.Buffer
	test.DemandSuccess(t, cart.Save(serializer.NewWriter(&buf)))

	cart.Reset()
	test.ExpectEquality(t, sys.Peek(0x1000), 0x00)

	test.DemandSuccess(t, cart.Load(serializer.NewReader(&buf)))
	test.ExpectEquality(t, sys.Peek(0x1000), 0x42)

	rambus := cart.GetRAMbus()
	test.DemandSuccess(t, rambus != nil)
	test.ExpectEquality(t, rambus.GetRAM()[0].Data[0], 0x42)

	test.ExpectSuccess(t, cart.GetBank(0x1000).IsRAM)

	cart.Eject()
	test.ExpectSuccess(t, cart.IsEjected())
	test.ExpectEquality(t, cart.Filename, "")
}
