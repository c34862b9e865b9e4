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

// Package cartridge implements loading and mapping of cartridge memory.
//
// The only cartridge type supported is the CommaVid cartridge. The CommaVid
// is a 2K ROM with 1K of RAM. The RAM has separate read and write ports and
// reading from the write port will write the floating value of the data bus
// to RAM. See the commentary for the commavid type for details.
//
// The string in quotation marks is the identifier that should be used to
// specify the mapping in the Mapping field of cartridgeloader.Loader. An
// empty string or "AUTO" tells the cartridge system to make a best guess.
//
//	CommaVid		"CV"
//
// The Cartridge type is the container for the mapper. The mapper is installed
// into a host (see the bus package) with the Install() function. After that
// the host satisfies most accesses through the page table and only calls the
// cartridge for accesses that have side effects.
//
// Saved state is a tagged record. The tag is the name of the mapper and the
// rest of the record is specific to the mapper. Loading a record with a
// different tag will fail with ErrNotMyState without changing the cartridge.
package cartridge
