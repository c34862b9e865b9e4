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

package memorymap

// The origin and memory top of the cartridge area of memory. The cartridge
// occupies the upper half of the 8K address space seen by the 6507.
const (
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Memtop is the top most address of memory in the VCS. It is the same as the
// cartridge memtop.
const Memtop = uint16(0x1fff)

// CartridgeBits identifies the bits in an address that are relevent to the
// cartridge address. Useful for discounting those bits that determine the
// cartridge mirror. For example, the following will be true:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
const CartridgeBits = OriginCart ^ MemtopCart

// Cartridge memory is mirrored in a number of places in the address space. The
// most useful mirror is the Fxxx mirror which many programmers use when
// writing assembly programs.
const (
	OriginCartFxxxMirror = uint16(0xf000)
	MemtopCartFxxxMirror = uint16(0xffff)
)

// The address space is divided into pages. A page is the smallest unit of
// memory that can be mapped by a device onto the bus.
const (
	PageShift = 6
	PageSize  = uint16(1) << PageShift
	PageMask  = PageSize - 1
	NumPages  = int(Memtop>>PageShift) + 1
)

// Page returns the page number of the address. The address is normalised
// before the page is calculated so mirror addresses map to the same page.
func Page(address uint16) uint16 {
	return (address & Memtop) >> PageShift
}

// IsCartridge returns true if the address refers to cartridge space, in any
// mirror.
func IsCartridge(address uint16) bool {
	return address&OriginCart == OriginCart
}

// MapAddress translates the address argument from mirror space to primary
// space.
func MapAddress(address uint16) uint16 {
	return address & Memtop
}
