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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents and to page numbers.
//
// The VCS has 13 address lines which gives an 8K address space. Addresses
// above 0x1fff are mirrors of the 8K space. The cartridge is selected when
// address line 12 is high. Mirrors of the cartridge area are therefore found
// at 0x1000, 0x3000, 0x5000 and so on, the most commonly used being 0xf000.
//
// Pages are PageSize bytes long. A device registers a description of each
// page it occupies with the bus (see the bus package) and the bus uses the
// description to satisfy accesses without calling back into the device.
package memorymap
