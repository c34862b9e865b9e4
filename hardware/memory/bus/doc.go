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

// Package bus defines the interfaces between a device attached to the VCS
// address/data bus and the host that owns the bus.
//
// A device describes the address space it occupies by registering a
// PageAccess for every page with the host's PageRegistrar. The host can then
// satisfy most accesses directly from the buffers referenced by the
// PageAccess, without calling into the device. Accesses that are not covered
// by a PageAccess are passed to the Device interface.
//
// The remaining interfaces are capabilities that a host may or may not have.
// A device should check for them with a type assertion and behave sensibly
// when the capability is missing.
//
// The DebuggerBus is for the exclusive use of debuggers and tools.
package bus
