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
	"bytes"
	"testing"

	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/bus"
	"github.com/jetsetilly/commavid/hardware/memory/memorymap"
	"github.com/jetsetilly/commavid/hardware/memory/system"
	"github.com/jetsetilly/commavid/serializer"
	"github.com/jetsetilly/commavid/test"
)

func newTestEnvironment(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

// 2K of ROM where every byte is the low byte of its index
func countingImage() []byte {
	data := make([]byte, commavidImageSize)
	for i := range data {
		data[i] = uint8(i)
	}
	return data
}

// 4K combined image. the RAM part is filled with the ram value and the ROM
// part is a counting sequence
func combinedImage(ram uint8) []byte {
	data := make([]byte, commavidCombinedSize)
	for i := 0; i < commavidRAMSize; i++ {
		data[i] = ram
	}
	copy(data[commavidImageSize:], countingImage())
	return data
}

// install the cartridge into a new system
func installCommaVid(t *testing.T, data []byte) (*commavid, *system.System) {
	t.Helper()
	env := newTestEnvironment(t)
	cart, err := newCommaVid(env, data)
	test.DemandSuccess(t, err)
	sys := system.NewSystem(env)
	cart.Install(sys)
	return cart, sys
}

func TestCommaVidConstruction(t *testing.T) {
	env := newTestEnvironment(t)

	for _, n := range []int{0, 1, 1024, 2047, 2049, 3072, 4095, 4097, 8192} {
		_, err := NewCommaVid(env, make([]byte, n))
		test.ExpectError(t, err, ErrConstruction, n)
	}

	// the image is a copy of the data
	data := countingImage()
	cart, err := newCommaVid(env, data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(cart.GetImage(), data))
	test.ExpectFailure(t, cart.HasInitialRAM())
	data[0] = 0xff
	test.ExpectEquality(t, cart.GetImage()[0], 0x00)

	test.ExpectEquality(t, cart.ID(), "CV")
	test.ExpectEquality(t, cart.Name(), "CartridgeCV")
	test.ExpectEquality(t, cart.NumBanks(), 1)
}

func TestCommaVidCombinedImage(t *testing.T) {
	env := newTestEnvironment(t)

	data := combinedImage(0xaa)

	// the unused kilobyte is never seen
	for i := commavidRAMSize; i < commavidImageSize; i++ {
		data[i] = 0x55
	}

	cart, err := newCommaVid(env, data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.HasInitialRAM())
	test.ExpectSuccess(t, bytes.Equal(cart.GetImage(), data[commavidImageSize:]))
	test.ExpectSuccess(t, bytes.Equal(cart.state.ram, data[:commavidRAMSize]))
	test.ExpectEquality(t, cart.GetImage()[5], 0x05)

	for i, v := range cart.state.ram {
		if !test.ExpectEquality(t, v, 0xaa, i) {
			break
		}
	}
}

func TestCommaVidReset(t *testing.T) {
	// reset with RAM image is idempotent
	cart, _ := installCommaVid(t, combinedImage(0xaa))
	cart.Reset()
	once := make([]uint8, commavidRAMSize)
	copy(once, cart.state.ram)
	cart.Reset()
	test.ExpectSuccess(t, bytes.Equal(once, cart.state.ram))

	// changes to RAM are undone by reset
	cart.state.ram[10] = 0x01
	cart.Reset()
	test.ExpectEquality(t, cart.state.ram[10], 0xaa)

	// without a RAM image the RAM is cleared
	cart, sys := installCommaVid(t, countingImage())
	for i := uint16(0); i < commavidRAMSize; i++ {
		sys.Poke(memorymap.OriginCart|commavidOriginWritePort|i, 0x55)
	}
	test.ExpectEquality(t, cart.state.ram[0], 0x55)
	cart.Reset()
	for i, v := range cart.state.ram {
		if !test.ExpectEquality(t, v, 0x00, i) {
			break
		}
	}

	// reset always sets the bank changed flag
	cart.BankChanged()
	cart.Reset()
	test.ExpectSuccess(t, cart.BankChanged())
	test.ExpectFailure(t, cart.BankChanged())
}

func TestCommaVidRandomReset(t *testing.T) {
	cart, _ := installCommaVid(t, countingImage())
	cart.env.Prefs.RandomState.Set(true)

	cart.Reset()

	// it is possible but unlikely that every value is zero
	var nonZero bool
	for _, v := range cart.state.ram {
		if v != 0 {
			nonZero = true
			break
		}
	}
	test.ExpectSuccess(t, nonZero)

	// RAM image takes priority over the random state preference
	cart, _ = installCommaVid(t, combinedImage(0xaa))
	cart.env.Prefs.RandomState.Set(true)
	cart.Reset()
	test.ExpectEquality(t, cart.state.ram[0], 0xaa)
}

func TestCommaVidInstall(t *testing.T) {
	cart, sys := installCommaVid(t, countingImage())

	for addr := uint16(0x1000); addr <= 0x1fff; addr += memorymap.PageSize {
		a := sys.GetPageAccess(memorymap.Page(addr))
		test.ExpectEquality(t, a.Device, bus.Device(cart), addr)
		test.ExpectEquality(t, len(a.PeekBase) <= int(memorymap.PageSize), true, addr)
		test.ExpectEquality(t, len(a.PokeBase) <= int(memorymap.PageSize), true, addr)

		switch {
		case addr < 0x1400:
			test.ExpectEquality(t, a.Kind, bus.PageRead, addr)
			test.ExpectEquality(t, cap(a.PeekBase), int(memorymap.PageSize), addr)
		case addr < 0x1800:
			test.ExpectEquality(t, a.Kind, bus.PageWrite, addr)
			test.ExpectEquality(t, cap(a.PokeBase), int(memorymap.PageSize), addr)
			test.ExpectFailure(t, a.CanRead(), addr)
		default:
			test.ExpectEquality(t, a.Kind, bus.PageRead, addr)
			test.ExpectFailure(t, a.CanWrite(), addr)
		}
	}

	// installing a second time makes no difference
	before := make([]bus.PageAccess, memorymap.NumPages)
	for p := range before {
		before[p] = sys.GetPageAccess(uint16(p))
	}
	cart.Install(sys)
	for p := range before {
		a := sys.GetPageAccess(uint16(p))
		test.ExpectEquality(t, a.Kind, before[p].Kind, p)
		if len(a.PeekBase) > 0 {
			test.ExpectEquality(t, &a.PeekBase[0], &before[p].PeekBase[0], p)
		}
		if len(a.PokeBase) > 0 {
			test.ExpectEquality(t, &a.PokeBase[0], &before[p].PokeBase[0], p)
		}
	}

	// the ROM is visible through the page table
	test.ExpectEquality(t, sys.Peek(0x1800), 0x00)
	test.ExpectEquality(t, sys.Peek(0x1805), 0x05)
	test.ExpectEquality(t, sys.Peek(0x1fff), 0xff)

	// fetching marks the address as executed
	sys.Fetch(0x1810)
	test.ExpectEquality(t, cart.codeAccess[0x0010], system.CodeAccessExecuted)
}

func TestCommaVidReadWritePorts(t *testing.T) {
	cart, sys := installCommaVid(t, countingImage())

	// writes to the write port are seen in the read port
	test.ExpectSuccess(t, sys.Poke(0x1400, 0x12))
	test.ExpectSuccess(t, sys.Poke(0x17ff, 0x34))
	test.ExpectEquality(t, sys.Peek(0x1000), 0x12)
	test.ExpectEquality(t, sys.Peek(0x13ff), 0x34)
	test.ExpectEquality(t, cart.state.ram[0x000], 0x12)
	test.ExpectEquality(t, cart.state.ram[0x3ff], 0x34)

	// writes to the read port or the ROM are not handled
	test.ExpectFailure(t, sys.Poke(0x1000, 0x56))
	test.ExpectFailure(t, sys.Poke(0x1800, 0x56))
	test.ExpectEquality(t, cart.state.ram[0x000], 0x12)
	test.ExpectEquality(t, cart.image[0x000], 0x00)

	// poke through the normal path is never handled
	for _, addr := range []uint16{0x0000, 0x0400, 0x0800, 0x1000, 0x1400, 0x1800, 0xffff} {
		test.ExpectFailure(t, cart.Poke(addr, 0xff), addr)
	}
}

func TestCommaVidReadFromWritePort(t *testing.T) {
	cart, sys := installCommaVid(t, countingImage())

	// reading the write port puts the value of the data bus into RAM
	sys.SetDataBusState(0x9e)
	test.ExpectEquality(t, cart.Peek(0x1421), 0x9e)
	test.ExpectEquality(t, cart.state.ram[0x021], 0x9e)
	test.ExpectEquality(t, sys.WritePortReads(), 1)

	// and the same through the system
	sys.SetDataBusState(0x4f)
	test.ExpectEquality(t, sys.Peek(0x1422), 0x4f)
	test.ExpectEquality(t, cart.state.ram[0x022], 0x4f)
	test.ExpectEquality(t, sys.WritePortReads(), 2)

	// value is seen in the read port
	test.ExpectEquality(t, sys.Peek(0x1022), 0x4f)

	// lock prevents the write but the data bus value is still returned
	sys.SetBankLocked(true)
	sys.SetDataBusState(0x11)
	test.ExpectEquality(t, cart.Peek(0x1421), 0x11)
	test.ExpectEquality(t, cart.state.ram[0x021], 0x9e)
	test.ExpectEquality(t, sys.WritePortReads(), 2)
	sys.SetBankLocked(false)

	// reads of the ROM never touch RAM
	before := make([]uint8, commavidRAMSize)
	copy(before, cart.state.ram)
	sys.SetDataBusState(0xee)
	test.ExpectEquality(t, cart.Peek(0x1805), 0x05)
	test.ExpectSuccess(t, bytes.Equal(before, cart.state.ram))
}

func TestCommaVidNoHost(t *testing.T) {
	env := newTestEnvironment(t)
	cart, err := newCommaVid(env, countingImage())
	test.DemandSuccess(t, err)

	// a cartridge that has not been installed sees an undriven data bus
	cart.state.ram[0x10] = 0xff
	test.ExpectEquality(t, cart.Peek(0x1410), 0x00)
	test.ExpectEquality(t, cart.state.ram[0x10], 0x00)
}

func TestCommaVidMirrors(t *testing.T) {
	cart, sys := installCommaVid(t, countingImage())

	// every cartridge mirror sees the same ROM
	for _, origin := range []uint16{0x1000, 0x3000, 0x5000, 0x7000, 0x9000, 0xb000, 0xd000, 0xf000} {
		test.ExpectEquality(t, cart.Peek(origin|0x0800), cart.Peek(0x1800), origin)
		test.ExpectEquality(t, cart.Peek(origin|0x0fff), 0xff, origin)
		test.ExpectEquality(t, sys.Peek(origin|0x0805), 0x05, origin)
	}

	// RAM is mirrored in both ports
	sys.SetDataBusState(0x77)
	cart.Peek(0xf400)
	test.ExpectEquality(t, sys.Peek(0x1000), 0x77)
	test.ExpectEquality(t, sys.Peek(0xf000), 0x77)

	sys.Poke(0x57ff, 0x66)
	test.ExpectEquality(t, sys.Peek(0x13ff), 0x66)

	// the lower half of the write port quirk is the read port. the host only
	// calls Peek() for the write port but the quirk covers the whole of the
	// RAM area
	sys.SetDataBusState(0x21)
	test.ExpectEquality(t, cart.Peek(0x1003), 0x21)
	test.ExpectEquality(t, cart.state.ram[0x003], 0x21)
}

func TestCommaVidPatch(t *testing.T) {
	cart, sys := installCommaVid(t, countingImage())
	cart.BankChanged()

	// patching the read port and the write port both write to RAM
	test.ExpectSuccess(t, cart.Patch(0x1010, 0xab))
	test.ExpectEquality(t, cart.state.ram[0x010], 0xab)
	test.ExpectSuccess(t, cart.BankChanged())
	test.ExpectFailure(t, cart.BankChanged())

	test.ExpectSuccess(t, cart.Patch(0x1411, 0xcd))
	test.ExpectEquality(t, cart.state.ram[0x011], 0xcd)
	test.ExpectSuccess(t, cart.BankChanged())

	// patching the ROM
	test.ExpectSuccess(t, cart.Patch(0xf805, 0xef))
	test.ExpectEquality(t, cart.image[0x005], 0xef)
	test.ExpectSuccess(t, cart.BankChanged())

	// the page table shares the patched memory
	test.ExpectEquality(t, sys.Peek(0x1805), 0xef)
	test.ExpectEquality(t, sys.Peek(0x1010), 0xab)

	// patching through the system
	test.ExpectSuccess(t, sys.Patch(0x1806, 0x01))
	test.ExpectEquality(t, sys.PeekPassive(0x1806), 0x01)
}

func TestCommaVidSaveLoad(t *testing.T) {
	cart, _ := installCommaVid(t, countingImage())
	for i := range cart.state.ram {
		cart.state.ram[i] = uint8(i * 3)
	}
	saved := make([]uint8, commavidRAMSize)
	copy(saved, cart.state.ram)

	var buf bytes.Buffer
	test.DemandSuccess(t, cart.Save(serializer.NewWriter(&buf)))
	state := buf.Bytes()

	// the state is the tag and the RAM
	test.ExpectEquality(t, len(state), 4+len(commavidName)+commavidRAMSize)
	test.ExpectSuccess(t, bytes.Equal(state[4:4+len(commavidName)], []byte(commavidName)))

	// change RAM and then restore
	cart.Reset()
	test.ExpectFailure(t, bytes.Equal(saved, cart.state.ram))
	test.ExpectSuccess(t, cart.Load(serializer.NewReader(bytes.NewReader(state))))
	test.ExpectSuccess(t, bytes.Equal(saved, cart.state.ram))
}

func TestCommaVidLoadFailures(t *testing.T) {
	cart, _ := installCommaVid(t, combinedImage(0xaa))
	before := make([]uint8, commavidRAMSize)
	copy(before, cart.state.ram)

	// state for a different cartridge
	var buf bytes.Buffer
	w := serializer.NewWriter(&buf)
	test.DemandSuccess(t, w.PutString("CartridgeF8"))
	test.DemandSuccess(t, w.PutByteArray(make([]uint8, commavidRAMSize)))
	err := cart.Load(serializer.NewReader(bytes.NewReader(buf.Bytes())))
	test.ExpectError(t, err, ErrNotMyState)
	test.ExpectSuccess(t, bytes.Equal(before, cart.state.ram))

	// state that is too short
	buf.Reset()
	w = serializer.NewWriter(&buf)
	test.DemandSuccess(t, w.PutString(commavidName))
	test.DemandSuccess(t, w.PutByteArray(make([]uint8, commavidRAMSize/2)))
	err = cart.Load(serializer.NewReader(bytes.NewReader(buf.Bytes())))
	test.ExpectError(t, err, ErrLoad)
	test.ExpectSuccess(t, bytes.Equal(before, cart.state.ram))

	// empty state
	err = cart.Load(serializer.NewReader(bytes.NewReader(nil)))
	test.ExpectError(t, err, ErrLoad)
	test.ExpectSuccess(t, bytes.Equal(before, cart.state.ram))
}

func TestCommaVidSaveFailure(t *testing.T) {
	cart, _ := installCommaVid(t, countingImage())

	// not enough room for all of the RAM
	w, err := test.NewCappedWriter(100)
	test.DemandSuccess(t, err)
	err = cart.Save(serializer.NewWriter(w))
	test.ExpectError(t, err, ErrSave)
}

func TestCommaVidSnapshot(t *testing.T) {
	cart, _ := installCommaVid(t, countingImage())
	cart.state.ram[0] = 0x01

	snapshot := cart.Snapshot().(*commavid)
	cart.state.ram[0] = 0x02

	test.ExpectEquality(t, snapshot.state.ram[0], 0x01)
	test.ExpectEquality(t, cart.state.ram[0], 0x02)

	env := newTestEnvironment(t)
	env.Label = "snapshot"
	snapshot.Plumb(env)
	test.ExpectFailure(t, snapshot.env.IsMainEmulation())
}

func TestCommaVidRAMbus(t *testing.T) {
	cart, sys := installCommaVid(t, countingImage())

	ram := cart.GetRAM()
	test.DemandEquality(t, len(ram), 1)
	test.ExpectEquality(t, ram[0].Origin, 0x1000)
	test.ExpectEquality(t, len(ram[0].Data), commavidRAMSize)

	cart.PutRAM(0, 0x20, 0x99)
	test.ExpectEquality(t, sys.Peek(0x1020), 0x99)

	// GetRAM() returns a copy
	test.ExpectEquality(t, ram[0].Data[0x20], 0x00)

	test.ExpectSuccess(t, cart.GetBank(0x1000).IsRAM)
	test.ExpectSuccess(t, cart.GetBank(0x1400).IsRAM)
	test.ExpectFailure(t, cart.GetBank(0x1800).IsRAM)
}
