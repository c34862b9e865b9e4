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

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	// PeekPassive reads the address without side effects. Addresses that
	// cannot be read without side effects return the floating value of the
	// data bus.
	PeekPassive(address uint16) uint8

	// Patch writes to the address ignoring any hardware restrictions.
	Patch(address uint16, data uint8) bool
}

// Patchable is implemented by devices that can be patched through the
// DebuggerBus.
type Patchable interface {
	Patch(address uint16, data uint8) bool
}
